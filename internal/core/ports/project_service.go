package ports

import (
	"context"

	"github.com/vibefolio/vibefolio-api/internal/core/domain"
)

// CreateProjectInput carries all data needed to publish a project.
type CreateProjectInput struct {
	UserID        string
	Title         string
	Category      string
	ContentText   string
	ThumbnailURL  string
	RenderingType string
	CustomData    map[string]any
}

// UpdateProjectInput carries a partial update. Nil fields are left untouched.
type UpdateProjectInput struct {
	ID            string
	UserID        string
	Title         *string
	Category      *string
	ContentText   *string
	ThumbnailURL  *string
	RenderingType *string
	CustomData    map[string]any
}

// ListProjectsInput carries all parameters for the list endpoint.
type ListProjectsInput struct {
	Category string
	UserID   string
	Search   string
	Limit    int
}

// ProjectService defines use-case operations for projects.
type ProjectService interface {
	CreateProject(ctx context.Context, input CreateProjectInput) (*domain.Project, error)
	GetProject(ctx context.Context, id string) (*domain.Project, error)
	ListProjects(ctx context.Context, input ListProjectsInput) ([]*domain.Project, error)
	UpdateProject(ctx context.Context, input UpdateProjectInput) (*domain.Project, error)
	// DeleteProject soft-deletes the project. Only the owner may delete it.
	DeleteProject(ctx context.Context, id, userID string) error
}
