package repository

import (
	"context"
	"database/sql"
	"strings"

	"github.com/gtsarchive/gts-backend/internal/model"
)

// ProfessorRepo provides access to the `professors` table.
type ProfessorRepo struct{ DB *sql.DB }

func NewProfessorRepo(db *sql.DB) *ProfessorRepo { return &ProfessorRepo{DB: db} }

// CreateTx inserts a professor profile inside the caller's transaction and
// returns the generated ID. Registration calls this in the same transaction
// as the users insert so the account and its profile appear atomically.
func (r *ProfessorRepo) CreateTx(ctx context.Context, tx *sql.Tx, name, email, title string, universityID, instituteID uint64) (uint64, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	var id uint64
	err := tx.QueryRowContext(ctx,
		`INSERT INTO professors (professor_name, email, professor_title, university_id, institute_id)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING professor_id`,
		name, email, title, universityID, instituteID).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

// List returns all professors ordered by name, for the client's supervisor
// dropdowns.
func (r *ProfessorRepo) List(ctx context.Context) ([]model.Professor, error) {
	rows, err := r.DB.QueryContext(ctx,
		`SELECT professor_id, professor_name, COALESCE(email, ''), COALESCE(professor_title, ''),
		        COALESCE(university_id, 0), COALESCE(institute_id, 0)
		 FROM professors
		 ORDER BY professor_name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]model.Professor, 0)
	for rows.Next() {
		var p model.Professor
		if err := rows.Scan(&p.ID, &p.Name, &p.Email, &p.Title, &p.UniversityID, &p.InstituteID); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
