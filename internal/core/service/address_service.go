package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/fcamara/user-address-api/internal/core/domain"
	"github.com/fcamara/user-address-api/internal/core/ports"
)

// AddressService implements the address lifecycle. Permission is decided
// before any mutation; the postal lookup is the only external call allowed
// to run before persistence since it is idempotent and side-effect free.
type AddressService struct {
	addresses ports.AddressRepository
	users     ports.UserRepository
	postal    ports.PostalGateway
	log       zerolog.Logger
}

func NewAddressService(addresses ports.AddressRepository, users ports.UserRepository, postal ports.PostalGateway, log zerolog.Logger) *AddressService {
	return &AddressService{addresses: addresses, users: users, postal: postal, log: log}
}

// Create attaches a new address to the caller.
func (s *AddressService) Create(ctx context.Context, p domain.Principal, input ports.AddressInput) (*ports.AddressResult, error) {
	if err := domain.Authorize(p, domain.OpAddressCreate, p.ID); err != nil {
		return nil, err
	}
	return s.create(ctx, p.ID, input)
}

// CreateForUser attaches a new address to another user. Admin only; the
// target must exist.
func (s *AddressService) CreateForUser(ctx context.Context, p domain.Principal, userID string, input ports.AddressInput) (*ports.AddressResult, error) {
	if err := domain.Authorize(p, domain.OpAddressCreate, userID); err != nil {
		return nil, err
	}

	exists, err := s.users.ExistsByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrUserNotFound
	}

	return s.create(ctx, userID, input)
}

func (s *AddressService) create(ctx context.Context, ownerID string, input ports.AddressInput) (*ports.AddressResult, error) {
	if input.ZipCode == "" || input.Number == "" {
		return nil, domain.ErrInvalidInput
	}

	enriched, err := s.postal.Lookup(ctx, input.ZipCode)
	if err != nil {
		return nil, err
	}

	address := &domain.Address{
		ID:         uuid.NewString(),
		ZipCode:    input.ZipCode,
		Number:     input.Number,
		Complement: input.Complement,
		Street:     enriched.Street,
		District:   enriched.District,
		City:       enriched.City,
		State:      enriched.State,
		UserID:     ownerID,
	}

	if err := s.addresses.Save(ctx, address); err != nil {
		return nil, err
	}

	s.log.Info().Str("address_id", address.ID).Str("user_id", ownerID).Msg("address created")
	return toAddressResult(address), nil
}

// ListOwn pages over the caller's own addresses.
func (s *AddressService) ListOwn(ctx context.Context, p domain.Principal, q ports.PageQuery) (*ports.ListAddressesResult, error) {
	if err := domain.Authorize(p, domain.OpAddressListOwn, p.ID); err != nil {
		return nil, err
	}

	q = normalizeQuery(q, "state")
	items, total, err := s.addresses.FindAllByOwner(ctx, p.ID, q)
	if err != nil {
		return nil, err
	}
	return toAddressPage(items, total, q), nil
}

// ListByUser pages over another user's addresses. Admin only.
func (s *AddressService) ListByUser(ctx context.Context, p domain.Principal, userID string, q ports.PageQuery) (*ports.ListAddressesResult, error) {
	if err := domain.Authorize(p, domain.OpAddressListByUser, userID); err != nil {
		return nil, err
	}

	exists, err := s.users.ExistsByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrUserNotFound
	}

	q = normalizeQuery(q, "state")
	items, total, err := s.addresses.FindAllByOwner(ctx, userID, q)
	if err != nil {
		return nil, err
	}
	return toAddressPage(items, total, q), nil
}

// ListOthers pages over every address except the caller's own. Admin only.
func (s *AddressService) ListOthers(ctx context.Context, p domain.Principal, q ports.PageQuery) (*ports.ListAddressesResult, error) {
	if err := domain.Authorize(p, domain.OpAddressListAll, ""); err != nil {
		return nil, err
	}

	q = normalizeQuery(q, "state")
	items, total, err := s.addresses.FindAllExcludingOwner(ctx, p.ID, q)
	if err != nil {
		return nil, err
	}
	return toAddressPage(items, total, q), nil
}

// Count returns the global address count for admins and the caller's own
// count for everyone else. This is result shaping, not an access decision,
// so no policy check applies.
func (s *AddressService) Count(ctx context.Context, p domain.Principal) (int64, error) {
	if p.Role == domain.RoleAdmin {
		return s.addresses.Count(ctx)
	}
	return s.addresses.CountByOwner(ctx, p.ID)
}

// GetByID returns a single address. Owners see their own; admins any. A
// non-owner non-admin gets ErrForbidden, never a masked not-found.
func (s *AddressService) GetByID(ctx context.Context, p domain.Principal, id string) (*ports.AddressResult, error) {
	if p.Role == domain.RoleAdmin {
		address, err := s.addresses.FindByID(ctx, id)
		if err != nil {
			return nil, err
		}
		return toAddressResult(address), nil
	}

	address, err := s.addresses.FindByIDAndOwner(ctx, id, p.ID)
	if err == nil {
		return toAddressResult(address), nil
	}
	if !errors.Is(err, domain.ErrAddressNotFound) {
		return nil, err
	}

	// Distinguish "does not exist" from "owned by someone else".
	other, err := s.addresses.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := domain.Authorize(p, domain.OpAddressRead, other.UserID); err != nil {
		return nil, err
	}
	return toAddressResult(other), nil
}

// Update edits an address. The postal enrichment re-runs on every update and
// overwrites street, district, city and state even when only number or
// complement changed, so the stored view always reflects the latest lookup.
func (s *AddressService) Update(ctx context.Context, p domain.Principal, id string, input ports.AddressInput) (*ports.AddressResult, error) {
	address, err := s.addresses.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := domain.Authorize(p, domain.OpAddressUpdate, address.UserID); err != nil {
		return nil, err
	}

	if input.ZipCode == "" || input.Number == "" {
		return nil, domain.ErrInvalidInput
	}

	enriched, err := s.postal.Lookup(ctx, input.ZipCode)
	if err != nil {
		return nil, err
	}

	address.ZipCode = input.ZipCode
	address.Number = input.Number
	address.Complement = input.Complement
	address.Street = enriched.Street
	address.District = enriched.District
	address.City = enriched.City
	address.State = enriched.State

	if err := s.addresses.Save(ctx, address); err != nil {
		return nil, err
	}

	s.log.Info().Str("address_id", address.ID).Msg("address updated")
	return toAddressResult(address), nil
}

// Delete removes an address. Owners may delete their own; admins any.
func (s *AddressService) Delete(ctx context.Context, p domain.Principal, id string) error {
	address, err := s.addresses.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if err := domain.Authorize(p, domain.OpAddressDelete, address.UserID); err != nil {
		return err
	}

	if err := s.addresses.Delete(ctx, address); err != nil {
		return err
	}

	s.log.Info().Str("address_id", id).Msg("address deleted")
	return nil
}

func toAddressResult(a *domain.Address) *ports.AddressResult {
	return &ports.AddressResult{
		ID:         a.ID,
		ZipCode:    a.ZipCode,
		Number:     a.Number,
		Complement: a.Complement,
		Street:     a.Street,
		District:   a.District,
		City:       a.City,
		State:      a.State,
		UserID:     a.UserID,
	}
}

func toAddressPage(items []*domain.Address, total int64, q ports.PageQuery) *ports.ListAddressesResult {
	results := make([]ports.AddressResult, 0, len(items))
	for _, a := range items {
		results = append(results, *toAddressResult(a))
	}
	return &ports.ListAddressesResult{
		Items:      results,
		Total:      total,
		Page:       q.Page,
		Size:       q.Size,
		TotalPages: totalPages(total, q.Size),
	}
}
