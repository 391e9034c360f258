package model

// Professor is the profile of a supervising user as stored in the
// `professors` table. A professor belongs to one institute of one
// university and appears on theses as supervisor or co-supervisor.
type Professor struct {
	ID           uint64
	Name         string
	Email        string
	Title        string
	UniversityID uint64
	InstituteID  uint64
}
