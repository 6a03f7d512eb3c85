package service

import (
	"context"
	"sort"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/fcamara/user-address-api/internal/core/domain"
	"github.com/fcamara/user-address-api/internal/core/ports"
)

// --- user repository stub ---

type stubUserRepo struct {
	users map[string]*domain.User // keyed by id
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	if u, ok := r.users[id]; ok {
		return cloneUser(u), nil
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	for _, u := range r.users {
		if u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (r *stubUserRepo) ExistsByID(_ context.Context, id string) (bool, error) {
	_, ok := r.users[id]
	return ok, nil
}

func (r *stubUserRepo) Save(_ context.Context, user *domain.User) error {
	for id, u := range r.users {
		if id != user.ID && u.Email == user.Email {
			return domain.ErrEmailInUse
		}
	}
	r.users[user.ID] = cloneUser(user)
	return nil
}

func (r *stubUserRepo) DeleteByID(_ context.Context, id string) error {
	if _, ok := r.users[id]; !ok {
		return domain.ErrUserNotFound
	}
	delete(r.users, id)
	return nil
}

func (r *stubUserRepo) FindAll(_ context.Context, q ports.PageQuery) ([]*domain.User, int64, error) {
	all := make([]*domain.User, 0, len(r.users))
	for _, u := range r.users {
		all = append(all, cloneUser(u))
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Name < all[j].Name })

	start := q.Page * q.Size
	if start > len(all) {
		start = len(all)
	}
	end := start + q.Size
	if end > len(all) {
		end = len(all)
	}
	return all[start:end], int64(len(r.users)), nil
}

func (r *stubUserRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.users)), nil
}

// --- address repository stub ---

type stubAddressRepo struct {
	addresses map[string]*domain.Address
}

func newStubAddressRepo() *stubAddressRepo {
	return &stubAddressRepo{addresses: make(map[string]*domain.Address)}
}

func cloneAddress(a *domain.Address) *domain.Address {
	if a == nil {
		return nil
	}
	clone := *a
	return &clone
}

func (r *stubAddressRepo) FindByID(_ context.Context, id string) (*domain.Address, error) {
	if a, ok := r.addresses[id]; ok {
		return cloneAddress(a), nil
	}
	return nil, domain.ErrAddressNotFound
}

func (r *stubAddressRepo) FindByIDAndOwner(_ context.Context, id, ownerID string) (*domain.Address, error) {
	if a, ok := r.addresses[id]; ok && a.UserID == ownerID {
		return cloneAddress(a), nil
	}
	return nil, domain.ErrAddressNotFound
}

func (r *stubAddressRepo) filtered(keep func(*domain.Address) bool) []*domain.Address {
	var out []*domain.Address
	for _, a := range r.addresses {
		if keep(a) {
			out = append(out, cloneAddress(a))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func page(all []*domain.Address, q ports.PageQuery) ([]*domain.Address, int64) {
	total := int64(len(all))
	start := q.Page * q.Size
	if start > len(all) {
		start = len(all)
	}
	end := start + q.Size
	if end > len(all) {
		end = len(all)
	}
	return all[start:end], total
}

func (r *stubAddressRepo) FindAllByOwner(_ context.Context, ownerID string, q ports.PageQuery) ([]*domain.Address, int64, error) {
	items, total := page(r.filtered(func(a *domain.Address) bool { return a.UserID == ownerID }), q)
	return items, total, nil
}

func (r *stubAddressRepo) FindAllExcludingOwner(_ context.Context, ownerID string, q ports.PageQuery) ([]*domain.Address, int64, error) {
	items, total := page(r.filtered(func(a *domain.Address) bool { return a.UserID != ownerID }), q)
	return items, total, nil
}

func (r *stubAddressRepo) CountByOwner(_ context.Context, ownerID string) (int64, error) {
	var n int64
	for _, a := range r.addresses {
		if a.UserID == ownerID {
			n++
		}
	}
	return n, nil
}

func (r *stubAddressRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.addresses)), nil
}

func (r *stubAddressRepo) Save(_ context.Context, address *domain.Address) error {
	r.addresses[address.ID] = cloneAddress(address)
	return nil
}

func (r *stubAddressRepo) Delete(_ context.Context, address *domain.Address) error {
	if _, ok := r.addresses[address.ID]; !ok {
		return domain.ErrAddressNotFound
	}
	delete(r.addresses, address.ID)
	return nil
}

// --- postal gateway stub ---

type stubPostalGateway struct {
	results map[string]domain.PostalAddress
	calls   int
}

func newStubPostalGateway() *stubPostalGateway {
	return &stubPostalGateway{results: make(map[string]domain.PostalAddress)}
}

func (g *stubPostalGateway) Lookup(_ context.Context, zipCode string) (*domain.PostalAddress, error) {
	g.calls++
	if r, ok := g.results[zipCode]; ok {
		clone := r
		return &clone, nil
	}
	return nil, domain.ErrZipCodeNotFound
}

// --- helpers ---

func mustHash(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	return string(hash)
}

func seedUser(t *testing.T, repo *stubUserRepo, id, email string, role domain.Role, password string) *domain.User {
	t.Helper()
	user := &domain.User{
		ID:           id,
		Name:         id,
		Email:        email,
		PasswordHash: mustHash(t, password),
		Role:         role,
	}
	if err := repo.Save(context.Background(), user); err != nil {
		t.Fatalf("seed user %s: %v", id, err)
	}
	return user
}
