package ports

import (
	"context"

	"github.com/fcamara/user-address-api/internal/core/domain"
)

// AuthService resolves presented credentials into an authenticated identity.
type AuthService interface {
	// Login verifies an email/password pair and returns a signed bearer
	// token for the matching user. Unknown email and wrong password both
	// fail with domain.ErrInvalidCredentials.
	Login(ctx context.Context, email, password string) (string, error)
	// ResolveToken verifies a bearer token and returns the caller's
	// Principal with role and email re-read from the current user record.
	ResolveToken(ctx context.Context, token string) (*domain.Principal, error)
}
