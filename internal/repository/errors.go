// Package repository implements the data access layer on top of
// database/sql and Postgres. This file defines error values shared by the
// repositories so handlers can translate failure scenarios into HTTP
// statuses without inspecting driver errors themselves.
package repository

import (
	"errors"

	"github.com/lib/pq"
)

// ErrEmailExists is returned when an insert collides with the unique email
// constraint on the users table. Handlers translate it into HTTP 409.
var ErrEmailExists = errors.New("email already exists")

// ErrForbidden is returned when the caller attempts an operation on a
// resource they do not own, e.g. editing another author's thesis. Handlers
// translate it into HTTP 403.
var ErrForbidden = errors.New("forbidden")

// ErrAuthorNotFound is returned when author resolution fails hard: the
// submitting user has no account row to resolve a profile from. The whole
// submission transaction must abort when it is seen.
var ErrAuthorNotFound = errors.New("author not found")

// isUniqueViolation reports whether err is a Postgres unique constraint
// violation (SQLSTATE 23505).
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}
