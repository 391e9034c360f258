package model

// Author is the profile of a thesis-submitting user as stored in the
// `authors` table. The email is the natural key: resolution during
// submission always goes through it and the column carries a unique
// constraint, so concurrent submissions by the same unregistered author
// cannot create duplicate rows.
type Author struct {
	ID           uint64
	Name         string
	Email        string
	UniversityID uint64
}

// DefaultUniversityID is assigned when an author row is created lazily
// during submission and no affiliation was supplied.
const DefaultUniversityID = 1
