package main // Entry point package

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/gtsarchive/gts-backend/internal/bootstrap"
	"github.com/gtsarchive/gts-backend/internal/config"
	"github.com/gtsarchive/gts-backend/internal/database"
	"github.com/gtsarchive/gts-backend/internal/handler"
	"github.com/gtsarchive/gts-backend/internal/middleware"
	"github.com/gtsarchive/gts-backend/internal/queue"
	"github.com/gtsarchive/gts-backend/internal/repository"
	"github.com/gtsarchive/gts-backend/internal/router"
)

func main() {
	// Load .env for local development; in production the variables come
	// from the environment and the file is simply absent.
	_ = godotenv.Load()

	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName, cfg.DBSSLMode)
	if err != nil {
		log.Fatalf("database connect failed: %v", err)
	}
	defer db.Close()

	// Redis backs the response cache and the rate limiter. nil is fine:
	// both middlewares degrade to pass-through.
	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Println("redis unavailable; response cache and rate limiting disabled")
	}

	users := repository.NewUserRepo(db)
	tokens := repository.NewTokenRepo(db)
	authors := repository.NewAuthorRepo(db)
	professors := repository.NewProfessorRepo(db)
	refs := repository.NewReferenceRepo(db)
	theses := repository.NewThesisRepo(db)

	bootstrap.SeedReferenceData(db, refs)

	authH := handler.NewAuthHandler(cfg, db, users, authors, professors, tokens)
	thesisH := handler.NewThesisHandler(db, users, authors, refs, theses)
	refH := handler.NewReferenceHandler(professors, refs)

	cache := middleware.NewRedisCache(config.LoadCacheConfig(), rdb)
	rl := middleware.NewRateLimit(config.LoadRateLimitConfig(), rdb)

	e := echo.New()
	e.Use(echomw.Logger())
	e.Use(echomw.Recover())
	e.Use(echomw.CORS())

	router.RegisterRoutes(e)
	router.RegisterAuth(e, authH, cfg.JWTSecret, rl)
	router.RegisterTheses(e, thesisH, refH, cfg.JWTSecret, cache, rl)

	// Background consumer mirrors submissions into logs/submission.log.
	// It reconnects on its own and never takes the API down.
	go func() {
		if err := queue.StartSubmissionConsumer(); err != nil {
			log.Printf("submission consumer stopped: %v", err)
		}
	}()

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)

	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
