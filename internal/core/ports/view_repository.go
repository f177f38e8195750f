package ports

import (
	"context"

	"github.com/vibefolio/vibefolio-api/internal/core/domain"
)

// ViewRepository handles view persistence and the atomic view counter.
type ViewRepository interface {
	// IncrementViews atomically adds one to the project's view counter and
	// returns the new value.
	IncrementViews(ctx context.Context, projectID string) (int64, error)

	// InsertView persists a view to the project_views audit collection.
	InsertView(ctx context.Context, view *domain.ProjectView) error
}
