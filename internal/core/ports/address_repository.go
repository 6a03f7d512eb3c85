package ports

import (
	"context"

	"github.com/fcamara/user-address-api/internal/core/domain"
)

// AddressRepository defines persistence operations for addresses.
// Implementations return domain.ErrAddressNotFound on lookup misses.
type AddressRepository interface {
	FindByID(ctx context.Context, id string) (*domain.Address, error)
	// FindByIDAndOwner returns the address only when it exists and belongs
	// to ownerID.
	FindByIDAndOwner(ctx context.Context, id, ownerID string) (*domain.Address, error)
	FindAllByOwner(ctx context.Context, ownerID string, q PageQuery) ([]*domain.Address, int64, error)
	// FindAllExcludingOwner pages over every address not owned by ownerID.
	FindAllExcludingOwner(ctx context.Context, ownerID string, q PageQuery) ([]*domain.Address, int64, error)
	CountByOwner(ctx context.Context, ownerID string) (int64, error)
	Count(ctx context.Context) (int64, error)
	// Save inserts the address when no document with its id exists and
	// replaces it otherwise.
	Save(ctx context.Context, address *domain.Address) error
	Delete(ctx context.Context, address *domain.Address) error
}
