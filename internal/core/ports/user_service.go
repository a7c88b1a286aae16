package ports

import (
	"context"

	"github.com/foundly/lostfound-api/internal/core/domain"
)

// UserService defines profile operations for the authenticated caller.
type UserService interface {
	Profile(ctx context.Context, userID string) (*domain.User, error)
	// MyItems returns the caller's postings, newest first.
	MyItems(ctx context.Context, userID string) ([]*domain.Item, error)
	// UpdateName changes the display name; no other field is updatable.
	UpdateName(ctx context.Context, userID, name string) (*domain.User, error)
}
