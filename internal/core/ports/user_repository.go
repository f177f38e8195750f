package ports

import (
	"context"

	"github.com/vibefolio/vibefolio-api/internal/core/domain"
)

// UserRepository defines the interface for account and profile persistence.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	// List returns users newest first, skipping offset rows.
	List(ctx context.Context, limit, offset int) ([]*domain.User, int64, error)
	UpdateRole(ctx context.Context, id, role string) (*domain.User, error)
	Count(ctx context.Context) (int64, error)
}
