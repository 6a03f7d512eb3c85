package ports

import (
	"context"

	"github.com/fcamara/user-address-api/internal/core/domain"
)

// PostalGateway resolves a postal code into address fields. Implementations
// return domain.ErrZipCodeNotFound when the code is unknown or the lookup
// does not produce a usable result.
type PostalGateway interface {
	Lookup(ctx context.Context, zipCode string) (*domain.PostalAddress, error)
}
