package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/fcamara/user-address-api/internal/core/domain"
	"github.com/fcamara/user-address-api/internal/core/ports"
)

// UserService implements the user lifecycle: registration, lookup, listing,
// update and deletion. Every authenticated operation goes through
// domain.Authorize before the store is touched.
type UserService struct {
	users     ports.UserRepository
	addresses ports.AddressRepository
	log       zerolog.Logger
}

func NewUserService(users ports.UserRepository, addresses ports.AddressRepository, log zerolog.Logger) *UserService {
	return &UserService{users: users, addresses: addresses, log: log}
}

// Create registers a new user with role USER. Email is lowercased before the
// uniqueness check so matching stays case-insensitive end to end.
func (s *UserService) Create(ctx context.Context, input ports.CreateUserInput) (*ports.UserResult, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))
	if input.Name == "" || email == "" || input.Password == "" {
		return nil, domain.ErrInvalidInput
	}

	exists, err := s.users.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrEmailInUse
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		ID:           uuid.NewString(),
		Name:         input.Name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         domain.RoleUser,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.users.Save(ctx, user); err != nil {
		// The unique index can still race past the ExistsByEmail check.
		return nil, err
	}

	s.log.Info().Str("user_id", user.ID).Msg("user created")
	return s.toResult(ctx, user)
}

// GetByID returns a user. Callers may fetch themselves; admins anyone.
func (s *UserService) GetByID(ctx context.Context, p domain.Principal, id string) (*ports.UserResult, error) {
	if err := domain.Authorize(p, domain.OpUserRead, id); err != nil {
		return nil, err
	}

	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.toResult(ctx, user)
}

// GetCurrent returns the caller's own record.
func (s *UserService) GetCurrent(ctx context.Context, p domain.Principal) (*ports.UserResult, error) {
	user, err := s.users.FindByID(ctx, p.ID)
	if err != nil {
		return nil, err
	}
	return s.toResult(ctx, user)
}

// List returns one page of all users. Admin only.
func (s *UserService) List(ctx context.Context, p domain.Principal, q ports.PageQuery) (*ports.ListUsersResult, error) {
	if err := domain.Authorize(p, domain.OpUserList, ""); err != nil {
		return nil, err
	}

	q = normalizeQuery(q, "name")
	users, total, err := s.users.FindAll(ctx, q)
	if err != nil {
		return nil, err
	}

	items := make([]ports.UserResult, 0, len(users))
	for _, u := range users {
		r, err := s.toResult(ctx, u)
		if err != nil {
			return nil, err
		}
		items = append(items, *r)
	}

	return &ports.ListUsersResult{
		Items:      items,
		Total:      total,
		Page:       q.Page,
		Size:       q.Size,
		TotalPages: totalPages(total, q.Size),
	}, nil
}

// Count returns the total number of users. Admin only.
func (s *UserService) Count(ctx context.Context, p domain.Principal) (int64, error) {
	if err := domain.Authorize(p, domain.OpUserCount, ""); err != nil {
		return 0, err
	}
	return s.users.Count(ctx)
}

// Update edits a user. Name and email always apply; the role field applies
// only when the acting principal is an admin and is silently ignored
// otherwise, so a non-admin editing their own record still succeeds with the
// original role.
func (s *UserService) Update(ctx context.Context, p domain.Principal, id string, input ports.UpdateUserInput) (*ports.UserResult, error) {
	if err := domain.Authorize(p, domain.OpUserUpdate, id); err != nil {
		return nil, err
	}

	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	email := strings.ToLower(strings.TrimSpace(input.Email))
	if input.Name == "" || email == "" {
		return nil, domain.ErrInvalidInput
	}

	user.Name = input.Name
	user.Email = email
	if p.Role == domain.RoleAdmin && input.Role != "" {
		if !input.Role.Valid() {
			return nil, domain.ErrInvalidInput
		}
		user.Role = input.Role
	}

	if err := s.users.Save(ctx, user); err != nil {
		return nil, err
	}

	s.log.Info().Str("user_id", user.ID).Msg("user updated")
	return s.toResult(ctx, user)
}

// Delete removes a user. Callers may delete themselves; admins anyone.
func (s *UserService) Delete(ctx context.Context, p domain.Principal, id string) error {
	if err := domain.Authorize(p, domain.OpUserDelete, id); err != nil {
		return err
	}

	exists, err := s.users.ExistsByID(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return domain.ErrUserNotFound
	}

	if err := s.users.DeleteByID(ctx, id); err != nil {
		return err
	}

	s.log.Info().Str("user_id", id).Msg("user deleted")
	return nil
}

func (s *UserService) toResult(ctx context.Context, u *domain.User) (*ports.UserResult, error) {
	count, err := s.addresses.CountByOwner(ctx, u.ID)
	if err != nil {
		return nil, err
	}
	return &ports.UserResult{
		ID:           u.ID,
		Name:         u.Name,
		Email:        u.Email,
		Role:         u.Role,
		CreatedAt:    u.CreatedAt,
		AddressCount: count,
	}, nil
}
