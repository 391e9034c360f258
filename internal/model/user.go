package model

import "time"

// Role values stored in users.role. An AUTHOR owns a profile row in the
// authors table, a PROFESSOR owns one in the professors table.
const (
	RoleAuthor    = "AUTHOR"
	RoleProfessor = "PROFESSOR"
)

// User represents a login account as stored in the `users` table. It is the
// credential record only; bibliographic identity lives in the Author and
// Professor profile entities.
//
// Fields:
//
//	ID           – primary key identifier of the user.
//	Email        – unique email address, stored lowercase.
//	PasswordHash – bcrypt hashed password.
//	FullName     – display name used to build the profile row at registration.
//	Role         – AUTHOR or PROFESSOR.
//	CreatedAt    – timestamp of creation.
//	UpdatedAt    – timestamp of last update.
type User struct {
	ID           uint64
	Email        string
	PasswordHash string
	FullName     string
	Role         string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
