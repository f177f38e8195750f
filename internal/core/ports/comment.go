package ports

import (
	"context"

	"github.com/vibefolio/vibefolio-api/internal/core/domain"
)

type CommentRepository interface {
	Create(ctx context.Context, c *domain.Comment) error
	FindByID(ctx context.Context, id string) (*domain.Comment, error)
	// ListByProject returns the live comments of a project, oldest first.
	ListByProject(ctx context.Context, projectID string) ([]*domain.Comment, error)
	SoftDelete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}

// CreateCommentInput carries a new comment or reply.
type CreateCommentInput struct {
	ProjectID       string
	UserID          string
	Content         string
	ParentID        string
	MentionedUserID string
}

type CommentService interface {
	ListComments(ctx context.Context, projectID string) ([]*domain.Comment, error)
	CreateComment(ctx context.Context, input CreateCommentInput) (*domain.Comment, error)
	DeleteComment(ctx context.Context, id, userID string) error
}
