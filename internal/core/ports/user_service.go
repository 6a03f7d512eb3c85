package ports

import (
	"context"
	"time"

	"github.com/fcamara/user-address-api/internal/core/domain"
)

// CreateUserInput carries the data for public registration. Email is
// normalised to lowercase by the service; role always defaults to USER.
type CreateUserInput struct {
	Name     string
	Email    string
	Password string
}

// UpdateUserInput carries an edit to an existing user. Role is applied only
// when the acting principal is an admin; for everyone else the field is
// silently ignored. An empty Role means "no change requested".
type UpdateUserInput struct {
	Name  string
	Email string
	Role  domain.Role
}

// UserResult is the service-level view of a user. AddressCount is the number
// of addresses currently owned by the user.
type UserResult struct {
	ID           string
	Name         string
	Email        string
	Role         domain.Role
	CreatedAt    time.Time
	AddressCount int64
}

// ListUsersResult is one page of users.
type ListUsersResult struct {
	Items      []UserResult
	Total      int64
	Page       int
	Size       int
	TotalPages int
}

// UserService defines use-case operations for the user lifecycle. Every
// operation except Create takes the authenticated Principal and applies the
// authorization policy before touching the store.
type UserService interface {
	Create(ctx context.Context, input CreateUserInput) (*UserResult, error)
	GetByID(ctx context.Context, p domain.Principal, id string) (*UserResult, error)
	GetCurrent(ctx context.Context, p domain.Principal) (*UserResult, error)
	List(ctx context.Context, p domain.Principal, q PageQuery) (*ListUsersResult, error)
	Count(ctx context.Context, p domain.Principal) (int64, error)
	Update(ctx context.Context, p domain.Principal, id string, input UpdateUserInput) (*UserResult, error)
	Delete(ctx context.Context, p domain.Principal, id string) error
}
