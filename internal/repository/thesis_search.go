package repository

import (
	"context"
	"database/sql"
	"strconv"
	"strings"
	"time"
)

// ThesisSearchQuery defines the optional filters of the public search
// endpoint. Zero values mean "no filter" for that dimension; the literal
// sentinel "All" sent by older clients is treated the same way. Filters are
// conjunctive with each other; Search alone is an inclusive OR over title
// and author name.
type ThesisSearchQuery struct {
	Search   string // case-insensitive substring of title OR author name
	Type     string // exact degree type (Master/Doctorate/...)
	Language string // exact language name
	Year     int    // exact year, 0 = any
	Limit    int    // row cap; callers clamp to 1..100
}

// ThesisSummary is one row of the search and listing responses: the thesis
// joined with author, language, institute, university and supervisor names.
type ThesisSummary struct {
	ThesisNo         uint64  `json:"thesis_no"`
	Title            string  `json:"title"`
	Abstract         string  `json:"abstract"`
	Year             int     `json:"year"`
	PageCount        int     `json:"page_count"`
	Type             string  `json:"type"`
	AuthorName       string  `json:"author_name"`
	LanguageName     string  `json:"language_name"`
	InstituteName    string  `json:"institute_name"`
	UniversityName   string  `json:"university_name"`
	SupervisorName   string  `json:"supervisor_name"`
	CosupervisorName *string `json:"cosupervisor_name,omitempty"`
	SubmissionDate   string  `json:"submission_date"`
}

// selectSummary is the joined projection shared by all listing queries.
// LEFT JOINs keep theses visible even when a reference row is missing.
const selectSummary = `
	SELECT t.thesis_no, t.title, t.abstract, t.year, t.page_count, t.type,
	       a.author_name, l.language_name, i.institute_name, u.university_name,
	       p.professor_name AS supervisor_name, cp.professor_name AS cosupervisor_name,
	       t.submission_date
	FROM thesis t
	LEFT JOIN authors a      ON a.author_id = t.author_id
	LEFT JOIN languages l    ON l.language_id = t.language_id
	LEFT JOIN institutes i   ON i.institute_id = t.institute_id
	LEFT JOIN universities u ON u.university_id = i.university_id
	LEFT JOIN professors p   ON p.professor_id = t.supervisor_id
	LEFT JOIN professors cp  ON cp.professor_id = t.cosupervisor_id`

// buildSearchSQL assembles the WHERE clause and argument list for a search.
// Every request re-runs the full filtered scan; there is no cursor, only
// the row cap.
func buildSearchSQL(q ThesisSearchQuery) (string, []any) {
	where := []string{}
	args := []any{}

	next := func() string { return "$" + strconv.Itoa(len(args)) }

	if s := strings.TrimSpace(q.Search); s != "" {
		args = append(args, "%"+s+"%")
		ph := next()
		where = append(where, "(t.title ILIKE "+ph+" OR a.author_name ILIKE "+ph+")")
	}
	if q.Type != "" && q.Type != "All" {
		args = append(args, q.Type)
		where = append(where, "t.type = "+next())
	}
	if q.Language != "" && q.Language != "All" {
		args = append(args, q.Language)
		where = append(where, "l.language_name = "+next())
	}
	if q.Year != 0 {
		args = append(args, q.Year)
		where = append(where, "t.year = "+next())
	}

	sqlStr := selectSummary
	if len(where) > 0 {
		sqlStr += "\n\tWHERE " + strings.Join(where, " AND ")
	}
	args = append(args, q.Limit)
	sqlStr += "\n\tORDER BY t.submission_date DESC, t.year DESC\n\tLIMIT " + next()
	return sqlStr, args
}

// Search runs the filtered, joined read query of the public catalogue.
func (r *ThesisRepo) Search(ctx context.Context, q ThesisSearchQuery) ([]ThesisSummary, error) {
	sqlStr, args := buildSearchSQL(q)
	rows, err := r.DB.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}
	return scanSummaries(rows)
}

// ListByAuthorName returns the submission history of one author, newest
// first. The published contract of /api/my-theses filters by display name.
func (r *ThesisRepo) ListByAuthorName(ctx context.Context, authorName string) ([]ThesisSummary, error) {
	rows, err := r.DB.QueryContext(ctx,
		selectSummary+`
	WHERE a.author_name = $1
	ORDER BY t.submission_date DESC, t.year DESC`,
		authorName)
	if err != nil {
		return nil, err
	}
	return scanSummaries(rows)
}

// ListByProfessor returns theses supervised or co-supervised by the given
// professor, newest first.
func (r *ThesisRepo) ListByProfessor(ctx context.Context, professorID uint64) ([]ThesisSummary, error) {
	rows, err := r.DB.QueryContext(ctx,
		selectSummary+`
	WHERE t.supervisor_id = $1 OR t.cosupervisor_id = $1
	ORDER BY t.submission_date DESC, t.year DESC`,
		professorID)
	if err != nil {
		return nil, err
	}
	return scanSummaries(rows)
}

// scanSummaries drains a joined result set into summaries, normalizing
// nullable reference names to empty strings and dates to YYYY-MM-DD.
func scanSummaries(rows *sql.Rows) ([]ThesisSummary, error) {
	defer rows.Close()
	out := make([]ThesisSummary, 0)
	for rows.Next() {
		var (
			s          ThesisSummary
			author     sql.NullString
			language   sql.NullString
			institute  sql.NullString
			university sql.NullString
			supervisor sql.NullString
			cosup      sql.NullString
			submitted  time.Time
		)
		if err := rows.Scan(
			&s.ThesisNo, &s.Title, &s.Abstract, &s.Year, &s.PageCount, &s.Type,
			&author, &language, &institute, &university, &supervisor, &cosup,
			&submitted,
		); err != nil {
			return nil, err
		}
		s.AuthorName = author.String
		s.LanguageName = language.String
		s.InstituteName = institute.String
		s.UniversityName = university.String
		s.SupervisorName = supervisor.String
		if cosup.Valid {
			cn := cosup.String
			s.CosupervisorName = &cn
		}
		s.SubmissionDate = submitted.UTC().Format("2006-01-02")
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
