package ports

import (
	"context"
	"time"

	"github.com/foundly/lostfound-api/internal/core/domain"
)

// CreateItemInput carries all data needed to create a posting. ReportedBy is
// always the authenticated caller; client-supplied owner values are ignored
// upstream. IdempotencyKey is optional and makes creation safely retryable.
type CreateItemInput struct {
	Name           string
	Description    string
	Category       domain.ItemCategory
	Type           domain.ItemType
	Location       string
	Date           time.Time
	Contact        string
	ReportedBy     string
	IdempotencyKey string
}

// UpdateItemInput is a partial update request. Nil fields are untouched.
type UpdateItemInput struct {
	Name        *string
	Description *string
	Category    *domain.ItemCategory
	Type        *domain.ItemType
	Location    *string
	Date        *time.Time
	Contact     *string
	Status      *domain.ItemStatus
}

// ItemService defines use-case operations for postings. Mutating operations
// take the acting identity so ownership and role rules are enforced in one
// place.
type ItemService interface {
	Create(ctx context.Context, input CreateItemInput) (*domain.Item, error)
	Get(ctx context.Context, id string) (*domain.Item, error)
	List(ctx context.Context, filter ListItemsFilter) ([]*domain.Item, error)
	Update(ctx context.Context, id string, actor domain.Identity, input UpdateItemInput) (*domain.Item, error)
	Delete(ctx context.Context, id string, actor domain.Identity) error
	// Resolve transitions an active item to resolved and stamps ResolvedAt.
	Resolve(ctx context.Context, id string, actor domain.Identity) (*domain.Item, error)
	Stats(ctx context.Context) (*ItemStats, error)
}
