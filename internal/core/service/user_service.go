package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/foundly/lostfound-api/internal/core/domain"
	"github.com/foundly/lostfound-api/internal/core/ports"
)

// UserService implements profile operations for the authenticated caller.
type UserService struct {
	users  ports.UserRepository
	items  ports.ItemRepository
	logger zerolog.Logger
}

func NewUserService(users ports.UserRepository, items ports.ItemRepository, logger zerolog.Logger) *UserService {
	return &UserService{users: users, items: items, logger: logger}
}

func (s *UserService) Profile(ctx context.Context, userID string) (*domain.User, error) {
	return s.users.FindByID(ctx, userID)
}

// MyItems returns the caller's postings, newest first. No reporter expansion
// is needed: the caller already is the reporter.
func (s *UserService) MyItems(ctx context.Context, userID string) ([]*domain.Item, error) {
	return s.items.List(ctx, ports.ListItemsFilter{ReportedBy: userID})
}

// UpdateName changes only the display name; any other submitted field has
// already been dropped by the handler.
func (s *UserService) UpdateName(ctx context.Context, userID, name string) (*domain.User, error) {
	user, err := s.users.UpdateName(ctx, userID, name)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("user_id", userID).Msg("profile name updated")
	return user, nil
}
