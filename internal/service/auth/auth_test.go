package auth

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/closetdev/wardrobe/internal/models"
	"github.com/closetdev/wardrobe/internal/repo"
	"github.com/closetdev/wardrobe/internal/tokens"
)

func newTestService(t *testing.T) *Service {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.RevokedToken{}); err != nil {
		t.Fatalf("failed to migrate tables: %v", err)
	}

	return &Service{
		Repo:      repo.NewGormRepo(db),
		JWTSecret: []byte("test_secret"),
		TokenTTL:  time.Hour,
	}
}

func TestSignupThenLogin(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()

	user, err := s.Signup(ctx, "a@x.com", "pw1")
	require.NoError(t, err)
	require.NotZero(t, user.ID)
	require.NotEqual(t, "pw1", user.PasswordHash)

	token, err := s.Login(ctx, "a@x.com", "pw1")
	require.NoError(t, err)

	claims, err := tokens.Parse(token, s.JWTSecret)
	require.NoError(t, err)
	id, err := claims.UserID()
	require.NoError(t, err)
	require.Equal(t, user.ID, id)
}

func TestSignupValidation(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()

	_, err := s.Signup(ctx, "", "pw")
	require.ErrorIs(t, err, ErrMissingFields)

	_, err = s.Signup(ctx, "a@x.com", "")
	require.ErrorIs(t, err, ErrMissingFields)

	_, err = s.Signup(ctx, "a@x.com", "pw1")
	require.NoError(t, err)

	_, err = s.Signup(ctx, "a@x.com", "pw2")
	require.ErrorIs(t, err, ErrEmailExists)
}

func TestSignupNormalizesEmailCase(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()

	_, err := s.Signup(ctx, "A@X.com", "pw1")
	require.NoError(t, err)

	_, err = s.Signup(ctx, "a@x.com", "pw2")
	require.ErrorIs(t, err, ErrEmailExists)

	_, err = s.Login(ctx, " A@x.COM ", "pw1")
	require.NoError(t, err)
}

func TestLoginGenericFailure(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()

	_, err := s.Signup(ctx, "a@x.com", "pw1")
	require.NoError(t, err)

	_, err = s.Login(ctx, "a@x.com", "wrong")
	require.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = s.Login(ctx, "missing@x.com", "pw1")
	require.ErrorIs(t, err, ErrInvalidCredentials, "unknown email and wrong password must be indistinguishable")
}

func TestLogoutIdempotent(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()

	_, err := s.Signup(ctx, "a@x.com", "pw1")
	require.NoError(t, err)
	token, err := s.Login(ctx, "a@x.com", "pw1")
	require.NoError(t, err)

	claims, err := tokens.Parse(token, s.JWTSecret)
	require.NoError(t, err)

	require.NoError(t, s.Logout(ctx, token, claims))
	require.NoError(t, s.Logout(ctx, token, claims))

	revoked, err := s.Repo.TokenRevoked(ctx, tokens.Sha256Hex(token))
	require.NoError(t, err)
	require.True(t, revoked)
}
