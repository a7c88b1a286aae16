package ports

import (
	"context"

	"github.com/foundly/lostfound-api/internal/core/domain"
)

// AuthService issues bearer credentials.
type AuthService interface {
	// Register creates an account and returns a signed token plus the user.
	Register(ctx context.Context, name, email, password string) (string, *domain.User, error)
	// Login verifies credentials and returns a signed token plus the user.
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
}
