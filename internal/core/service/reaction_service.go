package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/vibefolio/vibefolio-api/internal/core/domain"
	"github.com/vibefolio/vibefolio-api/internal/core/ports"
)

type ReactionService struct {
	reactions ports.ReactionRepository
	projects  ports.ProjectRepository
	log       zerolog.Logger
}

func NewReactionService(reactions ports.ReactionRepository, projects ports.ProjectRepository, log zerolog.Logger) *ReactionService {
	return &ReactionService{reactions: reactions, projects: projects, log: log}
}

// Toggle flips a like or bookmark and returns the new count. Likes are also
// mirrored onto the project document.
func (s *ReactionService) Toggle(ctx context.Context, kind domain.ReactionKind, projectID, userID string) (*ports.ToggleResult, error) {
	if !kind.Valid() || userID == "" {
		return nil, domain.ErrInvalidInput
	}
	if _, err := s.projects.FindByID(ctx, projectID); err != nil {
		return nil, err
	}

	active, err := s.reactions.Toggle(ctx, domain.Reaction{
		Kind:      kind,
		UserID:    userID,
		ProjectID: projectID,
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		return nil, fmt.Errorf("toggle %s: %w", kind, err)
	}

	count, err := s.reactions.Count(ctx, kind, projectID)
	if err != nil {
		return nil, fmt.Errorf("count %s: %w", kind, err)
	}

	if kind == domain.ReactionLike {
		if err := s.projects.SetLikes(ctx, projectID, count); err != nil {
			s.log.Warn().Err(err).Str("project_id", projectID).Msg("failed to update like counter")
		}
	}
	return &ports.ToggleResult{Active: active, Count: count}, nil
}

func (s *ReactionService) ListMine(ctx context.Context, kind domain.ReactionKind, userID string) ([]string, error) {
	if !kind.Valid() || userID == "" {
		return nil, domain.ErrInvalidInput
	}
	ids, err := s.reactions.ProjectIDs(ctx, kind, userID)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", kind, err)
	}
	if ids == nil {
		ids = []string{}
	}
	return ids, nil
}
