package repository

import (
	"context"
	"database/sql"
	"strings"

	"github.com/gtsarchive/gts-backend/internal/model"
	"github.com/gtsarchive/gts-backend/internal/utils"
)

// UserRepo provides access to the `users` table.
type UserRepo struct{ DB *sql.DB }

func NewUserRepo(db *sql.DB) *UserRepo { return &UserRepo{DB: db} }

// CreateTx inserts a user inside the caller's transaction and returns the
// generated ID. The password is bcrypt-hashed before it touches the wire.
// A duplicate email surfaces as ErrEmailExists so registration can report
// 409 without partial state (the caller rolls back).
func (r *UserRepo) CreateTx(ctx context.Context, tx *sql.Tx, email, password, fullName, role string, cost int) (uint64, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	hash, err := utils.HashPassword(password, cost)
	if err != nil {
		return 0, err
	}
	var id uint64
	err = tx.QueryRowContext(ctx,
		`INSERT INTO users (email, password_hash, full_name, role)
		 VALUES ($1, $2, $3, $4)
		 RETURNING user_id`,
		email, hash, fullName, role).Scan(&id)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, ErrEmailExists
		}
		return 0, err
	}
	return id, nil
}

// GetByEmail fetches a user by normalized email.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (model.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	var u model.User
	err := r.DB.QueryRowContext(ctx,
		`SELECT user_id, email, password_hash, full_name, role, created_at, updated_at
		 FROM users WHERE email = $1 LIMIT 1`,
		email).Scan(&u.ID, &u.Email, &u.PasswordHash, &u.FullName, &u.Role, &u.CreatedAt, &u.UpdatedAt)
	return u, err
}

// GetByID fetches a user by id.
func (r *UserRepo) GetByID(ctx context.Context, id uint64) (model.User, error) {
	var u model.User
	err := r.DB.QueryRowContext(ctx,
		`SELECT user_id, email, password_hash, full_name, role, created_at, updated_at
		 FROM users WHERE user_id = $1 LIMIT 1`,
		id).Scan(&u.ID, &u.Email, &u.PasswordHash, &u.FullName, &u.Role, &u.CreatedAt, &u.UpdatedAt)
	return u, err
}

// GetByIDTx is GetByID inside an open transaction. The submission
// transaction uses it to resolve the submitting user's identity; a missing
// row is a hard precondition failure and aborts the whole transaction.
func (r *UserRepo) GetByIDTx(ctx context.Context, tx *sql.Tx, id uint64) (model.User, error) {
	var u model.User
	err := tx.QueryRowContext(ctx,
		`SELECT user_id, email, password_hash, full_name, role, created_at, updated_at
		 FROM users WHERE user_id = $1 LIMIT 1`,
		id).Scan(&u.ID, &u.Email, &u.PasswordHash, &u.FullName, &u.Role, &u.CreatedAt, &u.UpdatedAt)
	return u, err
}
