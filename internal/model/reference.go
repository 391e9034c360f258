package model

// University is reference data for the `universities` table.
type University struct {
	ID   uint64
	Name string
}

// Institute belongs to exactly one university (foreign key university_id).
type Institute struct {
	ID           uint64
	Name         string
	UniversityID uint64
}

// Language is reference data keyed by name. Rows are created on demand when
// a submission carries an unseen language string; language_name is unique.
type Language struct {
	ID   uint64
	Name string
}

// DefaultLanguageID is used when a submission supplies no language at all.
const DefaultLanguageID = 1
