package model

import "time"

// Degree types stored in thesis.type. The column is a plain string so new
// degree kinds can be added without a migration; these are the values the
// client offers.
const (
	DegreeMaster    = "Master"
	DegreeDoctorate = "Doctorate"
)

// Thesis is the core record of the system, stored in the `thesis` table.
// ThesisNo is the public identifier; it is allocated from a database
// sequence so it is unique and monotonic. CosupervisorID is optional and,
// when present, must differ from SupervisorID.
type Thesis struct {
	ThesisNo       uint64
	Title          string
	Abstract       string
	Year           int
	PageCount      int
	Type           string
	AuthorID       uint64
	LanguageID     uint64
	InstituteID    uint64
	SupervisorID   uint64
	CosupervisorID *uint64
	SubmissionDate time.Time
}

// Keyword is a free-text tag attached to a thesis by its number. Multiple
// keywords per thesis are allowed and no uniqueness is enforced.
type Keyword struct {
	ID       uint64
	ThesisNo uint64
	Word     string
}
