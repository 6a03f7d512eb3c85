package ports

import (
	"context"

	"github.com/fcamara/user-address-api/internal/core/domain"
)

// AddressInput carries the caller-supplied fields of an address. Street,
// district, city and state are always derived from the postal lookup, never
// accepted from the caller.
type AddressInput struct {
	ZipCode    string
	Number     string
	Complement string
}

// AddressResult is the service-level view of an address.
type AddressResult struct {
	ID         string
	ZipCode    string
	Number     string
	Complement string
	Street     string
	District   string
	City       string
	State      string
	UserID     string
}

// ListAddressesResult is one page of addresses.
type ListAddressesResult struct {
	Items      []AddressResult
	Total      int64
	Page       int
	Size       int
	TotalPages int
}

// AddressService defines use-case operations for the address lifecycle.
type AddressService interface {
	// Create attaches a new address to the caller, enriched via the postal
	// lookup.
	Create(ctx context.Context, p domain.Principal, input AddressInput) (*AddressResult, error)
	// CreateForUser attaches a new address to another user. Admin only; the
	// target user must exist.
	CreateForUser(ctx context.Context, p domain.Principal, userID string, input AddressInput) (*AddressResult, error)
	ListOwn(ctx context.Context, p domain.Principal, q PageQuery) (*ListAddressesResult, error)
	// ListByUser pages over another user's addresses. Admin only.
	ListByUser(ctx context.Context, p domain.Principal, userID string, q PageQuery) (*ListAddressesResult, error)
	// ListOthers pages over every address except the caller's own. Admin only.
	ListOthers(ctx context.Context, p domain.Principal, q PageQuery) (*ListAddressesResult, error)
	// Count returns the global address count for admins and the caller's own
	// count for everyone else.
	Count(ctx context.Context, p domain.Principal) (int64, error)
	GetByID(ctx context.Context, p domain.Principal, id string) (*AddressResult, error)
	// Update re-runs the postal enrichment and overwrites street, district,
	// city and state even when only number or complement changed.
	Update(ctx context.Context, p domain.Principal, id string, input AddressInput) (*AddressResult, error)
	Delete(ctx context.Context, p domain.Principal, id string) error
}
