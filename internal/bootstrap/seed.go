// Package bootstrap seeds the reference tables on first start so the
// client's dropdowns are never empty on a fresh database. Seeding is
// skipped entirely when any university row already exists.
package bootstrap

import (
	"context"
	"database/sql"
	"log"
	"time"

	"github.com/gtsarchive/gts-backend/internal/repository"
)

// SeedReferenceData inserts a small set of universities, institutes and
// languages when the database is empty. It runs in one transaction; a
// partial seed is never left behind. Errors are logged, not fatal: a
// handle on an already seeded database must still boot.
func SeedReferenceData(db *sql.DB, refs *repository.ReferenceRepo) {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	n, err := refs.CountUniversities(ctx)
	if err != nil {
		log.Printf("bootstrap: reference count failed: %v", err)
		return
	}
	if n > 0 {
		return
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		log.Printf("bootstrap: begin seed tx failed: %v", err)
		return
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	universities := []string{
		"Istanbul Technical University",
		"Middle East Technical University",
		"Bogazici University",
	}
	institutes := []struct {
		name string
		uni  int
	}{
		{"Institute of Science and Technology", 1},
		{"Institute of Social Sciences", 1},
		{"Graduate School of Natural and Applied Sciences", 2},
		{"Graduate School of Informatics", 2},
		{"Institute for Graduate Studies", 3},
	}
	languages := []string{"English", "Turkish", "German", "French"}

	for _, u := range universities {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO universities (university_name) VALUES ($1)`, u); err != nil {
			log.Printf("bootstrap: seed university failed: %v", err)
			return
		}
	}
	for _, i := range institutes {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO institutes (institute_name, university_id) VALUES ($1, $2)`, i.name, i.uni); err != nil {
			log.Printf("bootstrap: seed institute failed: %v", err)
			return
		}
	}
	for _, l := range languages {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO languages (language_name) VALUES ($1) ON CONFLICT (language_name) DO NOTHING`, l); err != nil {
			log.Printf("bootstrap: seed language failed: %v", err)
			return
		}
	}

	if err := tx.Commit(); err != nil {
		log.Printf("bootstrap: commit seed tx failed: %v", err)
		return
	}
	committed = true
	log.Printf("bootstrap: seeded %d universities, %d institutes, %d languages",
		len(universities), len(institutes), len(languages))
}
