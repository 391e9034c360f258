package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4"

	"github.com/gtsarchive/gts-backend/internal/handler"
	"github.com/gtsarchive/gts-backend/internal/middleware"
	"github.com/gtsarchive/gts-backend/internal/model"
)

// RegisterRoutes registers routes that need no dependencies. Currently only
// the health check used by load balancers.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", handler.Health)
}

// RegisterAuth wires the authentication endpoints. Register and login are
// open but rate limited; refresh and logout work on the refresh token
// alone. /api/me sits behind JWT so clients can probe token validity.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler, jwtSecret string, rl echo.MiddlewareFunc) {
	g := e.Group("/api")
	g.POST("/register", a.Register, rl)
	g.POST("/login", a.Login, rl)
	g.POST("/auth/refresh", a.Refresh)
	g.POST("/auth/logout", a.Logout)

	auth := e.Group("/api")
	auth.Use(middleware.JWTAuth(jwtSecret))
	auth.Use(middleware.RequireRole(model.RoleAuthor, model.RoleProfessor))
	auth.GET("/me", a.Me)
}

// RegisterTheses wires the thesis catalogue. Reads are public; the list
// endpoints whose responses only change on writes go through the Redis
// response cache. Writes require a valid access token with an AUTHOR or
// PROFESSOR role and are rate limited.
func RegisterTheses(e *echo.Echo, t *handler.ThesisHandler, r *handler.ReferenceHandler, jwtSecret string, cache, rl echo.MiddlewareFunc) {
	pub := e.Group("/api")
	pub.GET("/theses", t.Search, cache)
	pub.GET("/my-theses", t.MyTheses)
	pub.GET("/professors", r.GetProfessors, cache)
	pub.GET("/professors/:id/theses", t.ProfessorTheses)
	pub.GET("/universities", r.GetUniversities, cache)
	pub.GET("/institutes", r.GetInstitutes, cache)

	priv := e.Group("/api")
	priv.Use(middleware.JWTAuth(jwtSecret))
	priv.Use(middleware.RequireRole(model.RoleAuthor, model.RoleProfessor))
	priv.POST("/theses", t.Submit, rl)
	priv.PUT("/theses/:thesis_no", t.Update, rl)
}
