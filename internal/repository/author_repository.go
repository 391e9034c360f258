package repository

import (
	"context"
	"database/sql"
	"strings"

	"github.com/gtsarchive/gts-backend/internal/model"
)

// AuthorRepo provides access to the `authors` table. Author rows are
// created either at registration or lazily by the submission transaction
// when a thesis arrives for an email that has no profile yet.
type AuthorRepo struct{ DB *sql.DB }

func NewAuthorRepo(db *sql.DB) *AuthorRepo { return &AuthorRepo{DB: db} }

// ResolveByEmailTx returns the author ID for the given email, creating the
// row when absent. The lookup-or-create is a single upsert backed by the
// unique constraint on authors.email, so two concurrent submissions for the
// same unseen author converge on one row instead of racing a SELECT-then-
// INSERT. The DO UPDATE arm is a no-op refresh of the name; it exists so
// RETURNING always yields a row.
func (r *AuthorRepo) ResolveByEmailTx(ctx context.Context, tx *sql.Tx, name, email string, universityID uint64) (uint64, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return 0, ErrAuthorNotFound
	}
	if universityID == 0 {
		universityID = model.DefaultUniversityID
	}
	var id uint64
	err := tx.QueryRowContext(ctx,
		`INSERT INTO authors (author_name, email, university_id)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (email) DO UPDATE SET author_name = EXCLUDED.author_name
		 RETURNING author_id`,
		name, email, universityID).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

// ExistsTx reports whether an author row with the given id exists. The
// submission transaction uses it when the caller supplied an explicit
// author_id, so a dangling reference aborts before the thesis insert.
func (r *AuthorRepo) ExistsTx(ctx context.Context, tx *sql.Tx, id uint64) (bool, error) {
	var one int
	err := tx.QueryRowContext(ctx,
		`SELECT 1 FROM authors WHERE author_id = $1`, id).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// GetByID fetches a single author row.
func (r *AuthorRepo) GetByID(ctx context.Context, id uint64) (model.Author, error) {
	var a model.Author
	err := r.DB.QueryRowContext(ctx,
		`SELECT author_id, author_name, COALESCE(email, ''), university_id
		 FROM authors WHERE author_id = $1 LIMIT 1`,
		id).Scan(&a.ID, &a.Name, &a.Email, &a.UniversityID)
	return a, err
}
