package ports

import (
	"context"

	"github.com/vibefolio/vibefolio-api/internal/core/domain"
)

// ListProjectsFilter carries all query parameters for listing projects.
// Soft-deleted projects are always excluded.
type ListProjectsFilter struct {
	Category string // empty = every category
	UserID   string // optional: only projects of this creator
	Search   string // optional: case-insensitive match on title or content
	Limit    int    // max rows (capped by the service)
}

// ProjectRepository defines persistence operations for projects.
type ProjectRepository interface {
	Create(ctx context.Context, p *domain.Project) error
	// FindByID returns domain.ErrProjectNotFound for missing or deleted projects.
	FindByID(ctx context.Context, id string) (*domain.Project, error)
	List(ctx context.Context, filter ListProjectsFilter) ([]*domain.Project, error)
	Update(ctx context.Context, p *domain.Project) error
	SoftDelete(ctx context.Context, id string) error
	// SetLikes stores the denormalised like counter.
	SetLikes(ctx context.Context, id string, likes int64) error
	Count(ctx context.Context) (int64, error)
}
