package ports

import (
	"context"

	"github.com/fcamara/user-address-api/internal/core/domain"
)

// UserRepository defines persistence operations for users. Implementations
// return domain.ErrUserNotFound on lookup misses and domain.ErrEmailInUse on
// unique-index violations.
type UserRepository interface {
	FindByID(ctx context.Context, id string) (*domain.User, error)
	// FindByEmail expects an already-lowercased email.
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	ExistsByID(ctx context.Context, id string) (bool, error)
	// Save inserts the user when no document with its id exists and replaces
	// it otherwise.
	Save(ctx context.Context, user *domain.User) error
	DeleteByID(ctx context.Context, id string) error
	// FindAll returns one page of users plus the total count.
	FindAll(ctx context.Context, q PageQuery) ([]*domain.User, int64, error)
	Count(ctx context.Context) (int64, error)
}
