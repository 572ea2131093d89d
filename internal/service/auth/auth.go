package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/closetdev/wardrobe/internal/hash"
	"github.com/closetdev/wardrobe/internal/logging"
	"github.com/closetdev/wardrobe/internal/models"
	"github.com/closetdev/wardrobe/internal/repo"
	"github.com/closetdev/wardrobe/internal/tokens"
)

var (
	ErrMissingFields = errors.New("email and password are required")
	ErrEmailExists   = errors.New("email already exists")
	// ErrInvalidCredentials covers both unknown email and wrong password, so
	// a login response never reveals which one failed.
	ErrInvalidCredentials = errors.New("invalid email or password")
)

type Service struct {
	Repo      *repo.GormRepo
	JWTSecret []byte
	TokenTTL  time.Duration
}

// NormalizeEmail folds case before uniqueness checks and lookups, so two
// signups differing only in case land on the same account.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *Service) Signup(ctx context.Context, email, password string) (*models.User, error) {
	l := logging.FromContext(ctx).With("svc", "auth.signup")

	email = NormalizeEmail(email)
	if email == "" || password == "" {
		return nil, ErrMissingFields
	}

	pwHash, err := hash.HashPassword(password)
	if err != nil {
		l.Error("signup failed", "reason", "cannot hash password", "error", err)
		return nil, err
	}

	user := models.User{
		Email:        email,
		PasswordHash: pwHash,
	}
	if err := s.Repo.CreateUser(ctx, &user); err != nil {
		if errors.Is(err, repo.ErrDuplicateEmail) {
			return nil, ErrEmailExists
		}
		l.Error("signup failed", "error", err)
		return nil, err
	}
	return &user, nil
}

func (s *Service) Login(ctx context.Context, email, password string) (string, error) {
	l := logging.FromContext(ctx).With("svc", "auth.login")

	email = NormalizeEmail(email)
	user, err := s.Repo.UserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return "", ErrInvalidCredentials
		}
		l.Error("login failed", "error", err)
		return "", err
	}

	if !hash.CheckPassword(user.PasswordHash, password) {
		return "", ErrInvalidCredentials
	}

	token, err := tokens.Issue(user.ID, s.JWTSecret, s.ttl())
	if err != nil {
		l.Error("login failed", "reason", "cannot sign token", "error", err)
		return "", err
	}
	return token, nil
}

// Logout revokes the presented token until its natural expiry. Idempotent.
func (s *Service) Logout(ctx context.Context, rawToken string, claims *tokens.Claims) error {
	userID, err := claims.UserID()
	if err != nil {
		return err
	}
	return s.Repo.RevokeToken(ctx, tokens.Sha256Hex(rawToken), userID, claims.ExpiresAt.Time)
}

func (s *Service) ttl() time.Duration {
	if s.TokenTTL > 0 {
		return s.TokenTTL
	}
	return tokens.DefaultTTL
}
