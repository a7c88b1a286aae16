package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/foundly/lostfound-api/internal/core/domain"
	"github.com/foundly/lostfound-api/internal/core/ports"
	"github.com/foundly/lostfound-api/internal/metrics"
)

// IdempotencyStore abstracts the replay-detection store (Redis). Lookup
// returns the item id previously recorded for a key, or "" when unseen.
type IdempotencyStore interface {
	Lookup(ctx context.Context, key string) (string, error)
	Remember(ctx context.Context, key, itemID string) error
}

// ItemService implements posting use cases. It orchestrates the item and
// user repositories so every item leaving the API carries the expanded
// reporter projection.
type ItemService struct {
	items  ports.ItemRepository
	users  ports.UserRepository
	idem   IdempotencyStore
	logger zerolog.Logger
}

func NewItemService(items ports.ItemRepository, users ports.UserRepository, idem IdempotencyStore, logger zerolog.Logger) *ItemService {
	return &ItemService{items: items, users: users, idem: idem, logger: logger}
}

// Create persists a new posting owned by input.ReportedBy. When an
// idempotency key is provided and already seen, the previously created item
// is returned without side effects.
func (s *ItemService) Create(ctx context.Context, input ports.CreateItemInput) (*domain.Item, error) {
	if input.IdempotencyKey != "" && s.idem != nil {
		id, err := s.idem.Lookup(ctx, input.IdempotencyKey)
		if err != nil {
			s.logger.Warn().Err(err).Msg("idempotency lookup failed, creating anyway")
		} else if id != "" {
			existing, err := s.items.FindByID(ctx, id)
			if err == nil {
				s.logger.Info().Str("idempotency_key", input.IdempotencyKey).Str("item_id", id).Msg("idempotent replay")
				return s.expandOne(ctx, existing)
			}
		}
	}

	now := time.Now().UTC()
	item := &domain.Item{
		Name:        input.Name,
		Description: input.Description,
		Category:    input.Category,
		Type:        input.Type,
		Location:    input.Location,
		Date:        input.Date,
		Contact:     input.Contact,
		Status:      domain.StatusActive,
		ReportedBy:  input.ReportedBy,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := s.items.Insert(ctx, item)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to create item")
		return nil, err
	}

	if input.IdempotencyKey != "" && s.idem != nil {
		if err := s.idem.Remember(ctx, input.IdempotencyKey, created.ID); err != nil {
			s.logger.Warn().Err(err).Str("item_id", created.ID).Msg("failed to record idempotency key")
		}
	}

	metrics.ItemsReportedTotal.WithLabelValues(string(created.Type), string(created.Category)).Inc()
	s.logger.Info().
		Str("item_id", created.ID).
		Str("type", string(created.Type)).
		Str("reported_by", created.ReportedBy).
		Msg("item reported")

	return s.expandOne(ctx, created)
}

func (s *ItemService) Get(ctx context.Context, id string) (*domain.Item, error) {
	item, err := s.items.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.expandOne(ctx, item)
}

func (s *ItemService) List(ctx context.Context, filter ports.ListItemsFilter) ([]*domain.Item, error) {
	items, err := s.items.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	return s.expandMany(ctx, items)
}

// Update merges the provided fields into the item. Only the owner or an
// admin may update.
func (s *ItemService) Update(ctx context.Context, id string, actor domain.Identity, input ports.UpdateItemInput) (*domain.Item, error) {
	item, err := s.items.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !item.OwnedBy(actor.ID) && !actor.IsAdmin() {
		return nil, domain.ErrForbidden
	}

	updated, err := s.items.Update(ctx, id, ports.ItemPatch{
		Name:        input.Name,
		Description: input.Description,
		Category:    input.Category,
		Type:        input.Type,
		Location:    input.Location,
		Date:        input.Date,
		Contact:     input.Contact,
		Status:      input.Status,
	})
	if err != nil {
		return nil, err
	}
	return s.expandOne(ctx, updated)
}

// Delete removes the item. Only the owner or an admin may delete.
func (s *ItemService) Delete(ctx context.Context, id string, actor domain.Identity) error {
	item, err := s.items.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if !item.OwnedBy(actor.ID) && !actor.IsAdmin() {
		return domain.ErrForbidden
	}

	if err := s.items.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info().Str("item_id", id).Str("deleted_by", actor.ID).Msg("item deleted")
	return nil
}

// Resolve transitions an active item to resolved and stamps ResolvedAt.
func (s *ItemService) Resolve(ctx context.Context, id string, actor domain.Identity) (*domain.Item, error) {
	item, err := s.items.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !item.OwnedBy(actor.ID) && !actor.IsAdmin() {
		return nil, domain.ErrForbidden
	}
	if item.Status == domain.StatusResolved {
		return nil, domain.ErrAlreadyResolved
	}

	now := time.Now().UTC()
	resolved := domain.StatusResolved
	updated, err := s.items.Update(ctx, id, ports.ItemPatch{
		Status:     &resolved,
		ResolvedAt: &now,
	})
	if err != nil {
		return nil, err
	}

	metrics.ItemsResolvedTotal.WithLabelValues(string(updated.Type)).Inc()
	s.logger.Info().Str("item_id", id).Str("resolved_by", actor.ID).Msg("item resolved")

	return s.expandOne(ctx, updated)
}

func (s *ItemService) Stats(ctx context.Context) (*ports.ItemStats, error) {
	return s.items.Stats(ctx)
}

// expandOne attaches the reporter projection to a single item.
func (s *ItemService) expandOne(ctx context.Context, item *domain.Item) (*domain.Item, error) {
	user, err := s.users.FindByID(ctx, item.ReportedBy)
	if err != nil {
		if err == domain.ErrUserNotFound {
			// Reporter account gone: return the item without the projection
			// rather than failing the whole read.
			return item, nil
		}
		return nil, err
	}
	item.Reporter = reporterOf(user)
	return item, nil
}

// expandMany attaches reporter projections with a single batched user fetch.
func (s *ItemService) expandMany(ctx context.Context, items []*domain.Item) ([]*domain.Item, error) {
	if len(items) == 0 {
		return items, nil
	}

	seen := make(map[string]struct{}, len(items))
	ids := make([]string, 0, len(items))
	for _, it := range items {
		if _, ok := seen[it.ReportedBy]; !ok {
			seen[it.ReportedBy] = struct{}{}
			ids = append(ids, it.ReportedBy)
		}
	}

	users, err := s.users.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	for _, it := range items {
		if u, ok := users[it.ReportedBy]; ok {
			it.Reporter = reporterOf(u)
		}
	}
	return items, nil
}

func reporterOf(u *domain.User) *domain.Reporter {
	return &domain.Reporter{
		ID:          u.ID,
		Name:        u.Name,
		Email:       u.Email,
		AvatarColor: u.AvatarColor,
	}
}
