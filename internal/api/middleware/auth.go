package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/fcamara/user-address-api/internal/core/domain"
)

// principalKey is the echo context key the authenticated Principal is stored
// under.
const principalKey = "principal"

// TokenResolver turns a bearer token into an authenticated Principal.
type TokenResolver interface {
	ResolveToken(ctx context.Context, token string) (*domain.Principal, error)
}

// Auth extracts the bearer token from the Authorization header, resolves it
// into a Principal and injects it into the request context. The resolver
// re-reads role and email from the store, so the injected Principal is
// always current.
func Auth(resolver TokenResolver) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			principal, err := resolver.ResolveToken(c.Request().Context(), parts[1])
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			c.Set(principalKey, *principal)
			return next(c)
		}
	}
}

// PrincipalFromContext returns the Principal injected by Auth.
func PrincipalFromContext(c echo.Context) (domain.Principal, bool) {
	p, ok := c.Get(principalKey).(domain.Principal)
	return p, ok
}
