package ports

import (
	"context"
	"time"

	"github.com/foundly/lostfound-api/internal/core/domain"
)

// ListItemsFilter carries the query parameters for listing items.
// Empty fields mean "no filter". Search is matched case-insensitively as a
// substring of name, description, or location.
type ListItemsFilter struct {
	Type       string
	Category   string
	Status     string
	Search     string
	ReportedBy string // scope to a single owner (my-items)
}

// ItemPatch is a partial update. Nil fields are left untouched.
type ItemPatch struct {
	Name        *string
	Description *string
	Category    *domain.ItemCategory
	Type        *domain.ItemType
	Location    *string
	Date        *time.Time
	Contact     *string
	Status      *domain.ItemStatus
	ResolvedAt  *time.Time
}

// ItemStats holds the aggregate counts for the admin dashboard.
type ItemStats struct {
	TotalItems    int64 `json:"totalItems"`
	LostItems     int64 `json:"lostItems"`
	FoundItems    int64 `json:"foundItems"`
	ResolvedCases int64 `json:"resolvedCases"`
}

// ItemRepository defines persistence operations for items.
type ItemRepository interface {
	Insert(ctx context.Context, item *domain.Item) (*domain.Item, error)
	FindByID(ctx context.Context, id string) (*domain.Item, error)
	// List returns matching items sorted by creation time descending.
	List(ctx context.Context, filter ListItemsFilter) ([]*domain.Item, error)
	// Update applies patch and returns the updated item.
	Update(ctx context.Context, id string, patch ItemPatch) (*domain.Item, error)
	Delete(ctx context.Context, id string) error
	Stats(ctx context.Context) (*ItemStats, error)
}
