package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/kelasin/kelasin-api/internal/models"
)

// UserRepository provides database access for user accounts.
type UserRepository struct {
	db *sqlx.DB
}

// NewUserRepository creates a new instance of UserRepository.
func NewUserRepository(db *sqlx.DB) *UserRepository {
	return &UserRepository{db: db}
}

// ExistsByUsernameOrEmail reports whether a user already claimed either
// unique field.
func (r *UserRepository) ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error) {
	const query = `SELECT 1 FROM users WHERE username = $1 OR email = $2 LIMIT 1`
	var exists int
	if err := r.db.GetContext(ctx, &exists, query, username, email); err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		return false, fmt.Errorf("check username or email: %w", err)
	}
	return true, nil
}

// Create inserts a new user and fills the generated ID.
func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	const query = `INSERT INTO users (full_name, username, email, password_hash, verification_token, verified)
		VALUES ($1, $2, $3, $4, $5, $6) RETURNING id, created_at`
	row := r.db.QueryRowxContext(ctx, query,
		user.FullName, user.Username, user.Email, user.PasswordHash, user.VerificationToken, user.Verified)
	if err := row.Scan(&user.ID, &user.CreatedAt); err != nil {
		return fmt.Errorf("create user: %w", err)
	}
	return nil
}

// FindByEmail returns a user by email address.
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	const query = `SELECT id, full_name, username, email, password_hash, verification_token, verified, created_at FROM users WHERE email = $1 LIMIT 1`
	var user models.User
	if err := r.db.GetContext(ctx, &user, query, email); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("find user by email: %w", err)
	}
	return &user, nil
}

// FindByID returns a user by primary key.
func (r *UserRepository) FindByID(ctx context.Context, id int64) (*models.User, error) {
	const query = `SELECT id, full_name, username, email, password_hash, verification_token, verified, created_at FROM users WHERE id = $1 LIMIT 1`
	var user models.User
	if err := r.db.GetContext(ctx, &user, query, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("find user by id: %w", err)
	}
	return &user, nil
}

// FindByVerificationToken returns the unverified user holding the token.
func (r *UserRepository) FindByVerificationToken(ctx context.Context, token string) (*models.User, error) {
	const query = `SELECT id, full_name, username, email, password_hash, verification_token, verified, created_at FROM users WHERE verification_token = $1 LIMIT 1`
	var user models.User
	if err := r.db.GetContext(ctx, &user, query, token); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("find user by verification token: %w", err)
	}
	return &user, nil
}

// MarkVerified flips the verified flag and clears the token. The token is
// cleared exactly once; a consumed token can never match again.
func (r *UserRepository) MarkVerified(ctx context.Context, id int64) error {
	const query = `UPDATE users SET verified = TRUE, verification_token = NULL WHERE id = $1`
	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("mark user verified: %w", err)
	}
	return nil
}

// List returns all users ordered by primary key.
func (r *UserRepository) List(ctx context.Context) ([]models.User, error) {
	const query = `SELECT id, full_name, username, email, password_hash, verification_token, verified, created_at FROM users ORDER BY id ASC`
	var users []models.User
	if err := r.db.SelectContext(ctx, &users, query); err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}
