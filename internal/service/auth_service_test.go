package service

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/kelasin/kelasin-api/internal/models"
	appErrors "github.com/kelasin/kelasin-api/pkg/errors"
	"github.com/kelasin/kelasin-api/pkg/jobs"
)

type userRepoStub struct {
	users  map[int64]*models.User
	nextID int64
	err    error
}

func newUserRepoStub() *userRepoStub {
	return &userRepoStub{users: make(map[int64]*models.User), nextID: 1}
}

func (s *userRepoStub) ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error) {
	if s.err != nil {
		return false, s.err
	}
	for _, u := range s.users {
		if u.Username == username || u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (s *userRepoStub) Create(ctx context.Context, user *models.User) error {
	if s.err != nil {
		return s.err
	}
	user.ID = s.nextID
	user.CreatedAt = time.Now()
	s.nextID++
	clone := *user
	s.users[user.ID] = &clone
	return nil
}

func (s *userRepoStub) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	if s.err != nil {
		return nil, s.err
	}
	for _, u := range s.users {
		if u.Email == email {
			clone := *u
			return &clone, nil
		}
	}
	return nil, sql.ErrNoRows
}

func (s *userRepoStub) FindByID(ctx context.Context, id int64) (*models.User, error) {
	if s.err != nil {
		return nil, s.err
	}
	if u, ok := s.users[id]; ok {
		clone := *u
		return &clone, nil
	}
	return nil, sql.ErrNoRows
}

func (s *userRepoStub) FindByVerificationToken(ctx context.Context, token string) (*models.User, error) {
	if s.err != nil {
		return nil, s.err
	}
	for _, u := range s.users {
		if u.VerificationToken != nil && *u.VerificationToken == token {
			clone := *u
			return &clone, nil
		}
	}
	return nil, sql.ErrNoRows
}

func (s *userRepoStub) MarkVerified(ctx context.Context, id int64) error {
	if s.err != nil {
		return s.err
	}
	if u, ok := s.users[id]; ok {
		u.Verified = true
		u.VerificationToken = nil
	}
	return nil
}

func (s *userRepoStub) List(ctx context.Context) ([]models.User, error) {
	if s.err != nil {
		return nil, s.err
	}
	result := make([]models.User, 0, len(s.users))
	for _, u := range s.users {
		result = append(result, *u)
	}
	return result, nil
}

type mailQueueStub struct {
	jobs []jobs.Job
	err  error
}

func (s *mailQueueStub) Enqueue(job jobs.Job) error {
	if s.err != nil {
		return s.err
	}
	s.jobs = append(s.jobs, job)
	return nil
}

func newTestAuthService(repo *userRepoStub, mail *mailQueueStub) *AuthService {
	return NewAuthService(repo, mail, nil, nil, nil, AuthConfig{TokenSecret: "test-secret", TokenExpiry: time.Hour})
}

func validRegisterRequest() models.RegisterRequest {
	return models.RegisterRequest{
		FullName: "Budi Santoso",
		Username: "budi",
		Email:    "budi@example.com",
		Password: "rahasia123",
	}
}

func TestAuthServiceRegister(t *testing.T) {
	repo := newUserRepoStub()
	mail := &mailQueueStub{}
	svc := newTestAuthService(repo, mail)

	err := svc.Register(context.Background(), validRegisterRequest())
	require.NoError(t, err)

	require.Len(t, repo.users, 1)
	user := repo.users[1]
	assert.False(t, user.Verified)
	require.NotNil(t, user.VerificationToken)
	assert.NotEmpty(t, *user.VerificationToken)
	assert.NotEqual(t, "rahasia123", user.PasswordHash)

	require.Len(t, mail.jobs, 1)
	assert.Equal(t, JobTypeVerificationMail, mail.jobs[0].Type)
}

func TestAuthServiceRegisterDuplicate(t *testing.T) {
	repo := newUserRepoStub()
	svc := newTestAuthService(repo, &mailQueueStub{})

	require.NoError(t, svc.Register(context.Background(), validRegisterRequest()))

	err := svc.Register(context.Background(), validRegisterRequest())
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrConflict.Code, appErr.Code)
	assert.Equal(t, appErrors.ErrConflict.Status, appErr.Status)
}

func TestAuthServiceRegisterMailFailureStillSucceeds(t *testing.T) {
	repo := newUserRepoStub()
	mail := &mailQueueStub{err: errors.New("queue full")}
	svc := newTestAuthService(repo, mail)

	err := svc.Register(context.Background(), validRegisterRequest())
	require.NoError(t, err)
	assert.Len(t, repo.users, 1)
}

func TestAuthServiceRegisterInvalidPayload(t *testing.T) {
	svc := newTestAuthService(newUserRepoStub(), &mailQueueStub{})

	req := validRegisterRequest()
	req.Password = "short"
	err := svc.Register(context.Background(), req)
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestAuthServiceVerifyEmailConsumesToken(t *testing.T) {
	repo := newUserRepoStub()
	svc := newTestAuthService(repo, &mailQueueStub{})
	require.NoError(t, svc.Register(context.Background(), validRegisterRequest()))
	token := *repo.users[1].VerificationToken

	require.NoError(t, svc.VerifyEmail(context.Background(), token))
	assert.True(t, repo.users[1].Verified)
	assert.Nil(t, repo.users[1].VerificationToken)

	// The consumed token no longer matches anything.
	err := svc.VerifyEmail(context.Background(), token)
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrNotFound.Status, appErrors.FromError(err).Status)
}

func TestAuthServiceVerifyEmailUnknownToken(t *testing.T) {
	svc := newTestAuthService(newUserRepoStub(), &mailQueueStub{})

	err := svc.VerifyEmail(context.Background(), "no-such-token")
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrNotFound.Status, appErrors.FromError(err).Status)
}

func TestAuthServiceLogin(t *testing.T) {
	repo := newUserRepoStub()
	svc := newTestAuthService(repo, &mailQueueStub{})

	hash, err := bcrypt.GenerateFromPassword([]byte("rahasia123"), bcrypt.DefaultCost)
	require.NoError(t, err)
	repo.users[1] = &models.User{ID: 1, Email: "budi@example.com", PasswordHash: string(hash), Verified: true}

	result, err := svc.Login(context.Background(), models.LoginRequest{Email: "budi@example.com", Password: "rahasia123"})
	require.NoError(t, err)
	require.NotEmpty(t, result.Token)

	claims, err := svc.ValidateToken(result.Token)
	require.NoError(t, err)
	assert.Equal(t, int64(1), claims.UserID)
}

func TestAuthServiceLoginFailuresAreIndistinguishable(t *testing.T) {
	repo := newUserRepoStub()
	svc := newTestAuthService(repo, &mailQueueStub{})

	hash, err := bcrypt.GenerateFromPassword([]byte("rahasia123"), bcrypt.DefaultCost)
	require.NoError(t, err)
	repo.users[1] = &models.User{ID: 1, Email: "budi@example.com", PasswordHash: string(hash)}

	_, unknownErr := svc.Login(context.Background(), models.LoginRequest{Email: "ghost@example.com", Password: "rahasia123"})
	_, wrongErr := svc.Login(context.Background(), models.LoginRequest{Email: "budi@example.com", Password: "salah"})
	require.Error(t, unknownErr)
	require.Error(t, wrongErr)

	unknown := appErrors.FromError(unknownErr)
	wrong := appErrors.FromError(wrongErr)
	assert.Equal(t, unknown.Message, wrong.Message)
	assert.Equal(t, unknown.Status, wrong.Status)
}

func TestAuthServiceValidateTokenRejectsGarbage(t *testing.T) {
	svc := newTestAuthService(newUserRepoStub(), &mailQueueStub{})

	_, err := svc.ValidateToken("not-a-token")
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrForbidden.Status, appErr.Status)
	assert.Equal(t, "Invalid Token", appErr.Message)
}

func TestAuthServiceGetUserNotFound(t *testing.T) {
	svc := newTestAuthService(newUserRepoStub(), &mailQueueStub{})

	_, err := svc.GetUser(context.Background(), 42)
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrNotFound.Status, appErrors.FromError(err).Status)
}
