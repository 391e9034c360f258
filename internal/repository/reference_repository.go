package repository

import (
	"context"
	"database/sql"
	"strings"

	"github.com/gtsarchive/gts-backend/internal/model"
)

// ReferenceRepo provides access to the reference tables: universities,
// institutes and languages. Universities and institutes are read-mostly and
// feed the client's dropdowns; languages grow on demand when submissions
// carry unseen language names.
type ReferenceRepo struct{ DB *sql.DB }

func NewReferenceRepo(db *sql.DB) *ReferenceRepo { return &ReferenceRepo{DB: db} }

// ResolveLanguageTx returns the language ID for the given name, creating
// the row when absent. Like author resolution this is a single upsert
// against the unique language_name constraint, so there is no window for a
// duplicate row between lookup and insert.
func (r *ReferenceRepo) ResolveLanguageTx(ctx context.Context, tx *sql.Tx, name string) (uint64, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return model.DefaultLanguageID, nil
	}
	var id uint64
	err := tx.QueryRowContext(ctx,
		`INSERT INTO languages (language_name)
		 VALUES ($1)
		 ON CONFLICT (language_name) DO UPDATE SET language_name = EXCLUDED.language_name
		 RETURNING language_id`,
		name).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

// ListUniversities returns all universities ordered by name.
func (r *ReferenceRepo) ListUniversities(ctx context.Context) ([]model.University, error) {
	rows, err := r.DB.QueryContext(ctx,
		`SELECT university_id, university_name FROM universities ORDER BY university_name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]model.University, 0)
	for rows.Next() {
		var u model.University
		if err := rows.Scan(&u.ID, &u.Name); err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// ListInstitutes returns institutes, optionally filtered to one university.
// universityID == 0 means no filter.
func (r *ReferenceRepo) ListInstitutes(ctx context.Context, universityID uint64) ([]model.Institute, error) {
	q := `SELECT institute_id, institute_name, university_id FROM institutes`
	args := []any{}
	if universityID != 0 {
		q += ` WHERE university_id = $1`
		args = append(args, universityID)
	}
	q += ` ORDER BY institute_name`
	rows, err := r.DB.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]model.Institute, 0)
	for rows.Next() {
		var i model.Institute
		if err := rows.Scan(&i.ID, &i.Name, &i.UniversityID); err != nil {
			return nil, err
		}
		out = append(out, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// CountUniversities is used by the bootstrap seeder to decide whether the
// reference tables need initial data.
func (r *ReferenceRepo) CountUniversities(ctx context.Context) (int64, error) {
	var n int64
	err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM universities`).Scan(&n)
	return n, err
}
