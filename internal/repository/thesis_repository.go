package repository

import (
	"context"
	"database/sql"
	"strconv"
	"strings"

	"github.com/gtsarchive/gts-backend/internal/model"
)

// ThesisRepo provides CRUD operations for theses and their keywords. The
// submission flow is transactional: every method suffixed Tx runs inside
// the caller's *sql.Tx and the caller commits or rolls back. No partial
// thesis (row without its keywords, keyword without its row) is ever
// visible to readers.
type ThesisRepo struct{ DB *sql.DB }

func NewThesisRepo(db *sql.DB) *ThesisRepo { return &ThesisRepo{DB: db} }

// NextThesisNoTx allocates the next public thesis number from the
// thesis_no_seq sequence. Sequence allocation is atomic in Postgres, so
// numbers are unique and monotonic across concurrent submissions; there is
// no collision-and-retry path.
func (r *ThesisRepo) NextThesisNoTx(ctx context.Context, tx *sql.Tx) (uint64, error) {
	var no uint64
	if err := tx.QueryRowContext(ctx, `SELECT nextval('thesis_no_seq')`).Scan(&no); err != nil {
		return 0, err
	}
	return no, nil
}

// CreateTx inserts a new thesis row within the scope of an existing
// transaction. The submission date is set by the database clock; the
// populated value is read back into the record.
func (r *ThesisRepo) CreateTx(ctx context.Context, tx *sql.Tx, t *model.Thesis) error {
	var cosup sql.NullInt64
	if t.CosupervisorID != nil {
		cosup = sql.NullInt64{Int64: int64(*t.CosupervisorID), Valid: true}
	}
	return tx.QueryRowContext(ctx,
		`INSERT INTO thesis
		   (thesis_no, title, abstract, year, page_count, type,
		    author_id, language_id, institute_id, supervisor_id, cosupervisor_id, submission_date)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, NOW())
		 RETURNING submission_date`,
		t.ThesisNo, t.Title, t.Abstract, t.Year, t.PageCount, t.Type,
		t.AuthorID, t.LanguageID, t.InstituteID, t.SupervisorID, cosup,
	).Scan(&t.SubmissionDate)
}

// UpdateTx rewrites the mutable fields of an existing thesis identified by
// its number. It returns sql.ErrNoRows when the thesis does not exist so
// the edit endpoint can answer 404 and roll back.
func (r *ThesisRepo) UpdateTx(ctx context.Context, tx *sql.Tx, t *model.Thesis) error {
	var cosup sql.NullInt64
	if t.CosupervisorID != nil {
		cosup = sql.NullInt64{Int64: int64(*t.CosupervisorID), Valid: true}
	}
	res, err := tx.ExecContext(ctx,
		`UPDATE thesis
		 SET title = $2, abstract = $3, year = $4, page_count = $5, type = $6,
		     language_id = $7, institute_id = $8, supervisor_id = $9, cosupervisor_id = $10
		 WHERE thesis_no = $1`,
		t.ThesisNo, t.Title, t.Abstract, t.Year, t.PageCount, t.Type,
		t.LanguageID, t.InstituteID, t.SupervisorID, cosup)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// OwnerEmailTx returns the email of the author who owns the given thesis,
// for the edit endpoint's ownership check. sql.ErrNoRows means the thesis
// does not exist.
func (r *ThesisRepo) OwnerEmailTx(ctx context.Context, tx *sql.Tx, thesisNo uint64) (string, error) {
	var email sql.NullString
	err := tx.QueryRowContext(ctx,
		`SELECT a.email
		 FROM thesis t
		 LEFT JOIN authors a ON a.author_id = t.author_id
		 WHERE t.thesis_no = $1`,
		thesisNo).Scan(&email)
	if err != nil {
		return "", err
	}
	return strings.ToLower(email.String), nil
}

// CreateKeywordsBulkTx inserts one keyword row per word in a single
// statement, all referencing the same thesis number. Passing an empty slice
// has no effect and returns nil.
func (r *ThesisRepo) CreateKeywordsBulkTx(ctx context.Context, tx *sql.Tx, thesisNo uint64, words []string) error {
	if len(words) == 0 {
		return nil
	}
	var sb strings.Builder
	sb.WriteString(`INSERT INTO keywords (thesis_no, keyword) VALUES `)
	args := make([]any, 0, len(words)+1)
	args = append(args, thesisNo)
	for i, w := range words {
		if i > 0 {
			sb.WriteString(",")
		}
		args = append(args, w)
		sb.WriteString("($1, $" + strconv.Itoa(len(args)) + ")")
	}
	_, err := tx.ExecContext(ctx, sb.String(), args...)
	return err
}

// ReplaceKeywordsTx drops all keyword rows of a thesis and inserts the new
// set. Used by the edit flow; runs in the same transaction as the thesis
// update so readers never observe a half-replaced tag set.
func (r *ThesisRepo) ReplaceKeywordsTx(ctx context.Context, tx *sql.Tx, thesisNo uint64, words []string) error {
	if _, err := tx.ExecContext(ctx, `DELETE FROM keywords WHERE thesis_no = $1`, thesisNo); err != nil {
		return err
	}
	return r.CreateKeywordsBulkTx(ctx, tx, thesisNo, words)
}

// KeywordsByThesis returns the keyword strings of one thesis, ordered by
// insertion (keyword_id).
func (r *ThesisRepo) KeywordsByThesis(ctx context.Context, thesisNo uint64) ([]string, error) {
	rows, err := r.DB.QueryContext(ctx,
		`SELECT keyword FROM keywords WHERE thesis_no = $1 ORDER BY keyword_id`, thesisNo)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]string, 0)
	for rows.Next() {
		var w string
		if err := rows.Scan(&w); err != nil {
			return nil, err
		}
		out = append(out, w)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
