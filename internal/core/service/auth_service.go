package service

import (
	"context"
	"errors"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/fcamara/user-address-api/internal/core/domain"
	"github.com/fcamara/user-address-api/internal/core/ports"
)

// dummyHash is compared against when no user matches the presented email, so
// an unknown email costs the same bcrypt work as a wrong password and both
// paths return the same error.
var dummyHash = []byte("$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy")

// AuthService resolves credentials and bearer tokens into principals.
type AuthService struct {
	users ports.UserRepository
	codec *TokenCodec
	log   zerolog.Logger
}

func NewAuthService(users ports.UserRepository, codec *TokenCodec, log zerolog.Logger) *AuthService {
	return &AuthService{users: users, codec: codec, log: log}
}

// Login verifies an email/password pair and returns a signed token. Email
// matching is case-insensitive. Unknown email and wrong password are not
// distinguishable from the outside.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return "", domain.ErrInvalidCredentials
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			// Keep the miss path as expensive as a mismatch.
			_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
			return "", domain.ErrInvalidCredentials
		}
		return "", err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", domain.ErrInvalidCredentials
	}

	token, err := s.codec.Issue(user)
	if err != nil {
		return "", err
	}

	s.log.Info().Str("user_id", user.ID).Msg("user logged in")
	return token, nil
}

// ResolveToken verifies a bearer token and loads the current user record for
// the embedded id. Role and email come from the record, so a role change is
// visible on the very next request even for an already-issued token.
func (s *AuthService) ResolveToken(ctx context.Context, token string) (*domain.Principal, error) {
	claims, err := s.codec.Verify(token)
	if err != nil {
		return nil, err
	}

	user, err := s.users.FindByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	return &domain.Principal{ID: user.ID, Email: user.Email, Role: user.Role}, nil
}
