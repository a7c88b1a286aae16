package ports

import (
	"context"

	"github.com/foundly/lostfound-api/internal/core/domain"
)

// UserRepository defines persistence operations for user accounts.
type UserRepository interface {
	// Create inserts a new user. Returns domain.ErrUserExists when the
	// email is already taken (unique index).
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	// FindByIDs returns the users for the given ids, keyed by id.
	// Missing ids are simply absent from the result.
	FindByIDs(ctx context.Context, ids []string) (map[string]*domain.User, error)
	// UpdateName changes only the display name and returns the updated user.
	UpdateName(ctx context.Context, id, name string) (*domain.User, error)
}
