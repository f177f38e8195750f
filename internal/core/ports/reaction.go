package ports

import (
	"context"

	"github.com/vibefolio/vibefolio-api/internal/core/domain"
)

type ReactionRepository interface {
	// Toggle removes the reaction when present and adds it otherwise. It
	// reports whether the reaction exists afterwards.
	Toggle(ctx context.Context, r domain.Reaction) (bool, error)
	Count(ctx context.Context, kind domain.ReactionKind, projectID string) (int64, error)
	// ProjectIDs lists the projects a user reacted to, newest first.
	ProjectIDs(ctx context.Context, kind domain.ReactionKind, userID string) ([]string, error)
}

// ToggleResult is the state of a reaction after a toggle.
type ToggleResult struct {
	Active bool
	Count  int64
}

type ReactionService interface {
	Toggle(ctx context.Context, kind domain.ReactionKind, projectID, userID string) (*ToggleResult, error)
	ListMine(ctx context.Context, kind domain.ReactionKind, userID string) ([]string, error)
}
