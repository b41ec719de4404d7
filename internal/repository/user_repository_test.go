package repository

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kelasin/kelasin-api/internal/models"
)

func newUserMock(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	return sqlx.NewDb(db, "sqlmock"), mock, func() { db.Close() }
}

func TestUserRepositoryExistsByUsernameOrEmail(t *testing.T) {
	db, mock, cleanup := newUserMock(t)
	defer cleanup()
	repo := NewUserRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT 1 FROM users WHERE username = $1 OR email = $2 LIMIT 1")).
		WithArgs("budi", "budi@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"?column?"}).AddRow(1))

	exists, err := repo.ExistsByUsernameOrEmail(context.Background(), "budi", "budi@example.com")
	require.NoError(t, err)
	assert.True(t, exists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepositoryExistsByUsernameOrEmailNoMatch(t *testing.T) {
	db, mock, cleanup := newUserMock(t)
	defer cleanup()
	repo := NewUserRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT 1 FROM users WHERE username = $1 OR email = $2 LIMIT 1")).
		WithArgs("budi", "budi@example.com").
		WillReturnError(sql.ErrNoRows)

	exists, err := repo.ExistsByUsernameOrEmail(context.Background(), "budi", "budi@example.com")
	require.NoError(t, err)
	assert.False(t, exists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepositoryCreate(t *testing.T) {
	db, mock, cleanup := newUserMock(t)
	defer cleanup()
	repo := NewUserRepository(db)

	token := "token-123"
	created := time.Now()
	mock.ExpectQuery("INSERT INTO users").
		WithArgs("Budi Santoso", "budi", "budi@example.com", "hash", &token, false).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(int64(7), created))

	user := &models.User{
		FullName:          "Budi Santoso",
		Username:          "budi",
		Email:             "budi@example.com",
		PasswordHash:      "hash",
		VerificationToken: &token,
	}
	err := repo.Create(context.Background(), user)
	require.NoError(t, err)
	assert.Equal(t, int64(7), user.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepositoryFindByVerificationToken(t *testing.T) {
	db, mock, cleanup := newUserMock(t)
	defer cleanup()
	repo := NewUserRepository(db)

	token := "token-123"
	rows := sqlmock.NewRows([]string{"id", "full_name", "username", "email", "password_hash", "verification_token", "verified", "created_at"}).
		AddRow(int64(7), "Budi Santoso", "budi", "budi@example.com", "hash", token, false, time.Now())
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, full_name, username, email, password_hash, verification_token, verified, created_at FROM users WHERE verification_token = $1 LIMIT 1")).
		WithArgs(token).
		WillReturnRows(rows)

	user, err := repo.FindByVerificationToken(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, "budi", user.Username)
	assert.False(t, user.Verified)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepositoryMarkVerified(t *testing.T) {
	db, mock, cleanup := newUserMock(t)
	defer cleanup()
	repo := NewUserRepository(db)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE users SET verified = TRUE, verification_token = NULL WHERE id = $1")).
		WithArgs(int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.MarkVerified(context.Background(), 7)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepositoryList(t *testing.T) {
	db, mock, cleanup := newUserMock(t)
	defer cleanup()
	repo := NewUserRepository(db)

	rows := sqlmock.NewRows([]string{"id", "full_name", "username", "email", "password_hash", "verification_token", "verified", "created_at"}).
		AddRow(int64(1), "Budi Santoso", "budi", "budi@example.com", "hash", nil, true, time.Now()).
		AddRow(int64(2), "Siti Aminah", "siti", "siti@example.com", "hash", nil, false, time.Now())
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, full_name, username, email, password_hash, verification_token, verified, created_at FROM users ORDER BY id ASC")).
		WillReturnRows(rows)

	users, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, users, 2)
	assert.NoError(t, mock.ExpectationsWereMet())
}
