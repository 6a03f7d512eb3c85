package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/fcamara/user-address-api/internal/core/domain"
)

// TokenClaims is the claim set embedded in issued tokens. Subject carries
// the user's email, UserID the account identifier. Role is deliberately not
// embedded: it is re-read from the store on every request.
type TokenClaims struct {
	UserID string `json:"userId"`
	jwt.RegisteredClaims
}

// TokenCodec issues and verifies HS256-signed bearer tokens. The clock is
// injectable so expiry behaviour is deterministic in tests.
type TokenCodec struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewTokenCodec creates a TokenCodec. A non-positive ttl falls back to 24h;
// a nil now falls back to time.Now.
func NewTokenCodec(secret []byte, ttl time.Duration, now func() time.Time) *TokenCodec {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	if now == nil {
		now = time.Now
	}
	return &TokenCodec{secret: secret, ttl: ttl, now: now}
}

// Issue signs a token for user with issuedAt=now and expiresAt=now+TTL.
func (c *TokenCodec) Issue(user *domain.User) (string, error) {
	now := c.now().UTC()
	claims := TokenClaims{
		UserID: user.ID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.Email,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
		},
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(c.secret)
}

// Verify parses and validates a token. The signature is checked before any
// claim is surfaced; a bad signature, malformed structure, wrong signing
// method or expired token all yield domain.ErrInvalidCredentials. A token is
// already invalid exactly at its expiry instant.
func (c *TokenCodec) Verify(token string) (*TokenClaims, error) {
	claims := &TokenClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return c.secret, nil
	}, jwt.WithTimeFunc(func() time.Time { return c.now().UTC() }), jwt.WithExpirationRequired())
	if err != nil || !parsed.Valid {
		return nil, domain.ErrInvalidCredentials
	}
	return claims, nil
}
