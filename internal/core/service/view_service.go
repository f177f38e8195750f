package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/vibefolio/vibefolio-api/internal/core/domain"
	"github.com/vibefolio/vibefolio-api/internal/core/ports"
)

// ViewDeduper abstracts the per-viewer view window (Redis).
type ViewDeduper interface {
	IsDuplicate(ctx context.Context, projectID, viewer string) (bool, error)
	Mark(ctx context.Context, projectID, viewer string) error
}

type viewService struct {
	projectRepo ports.ProjectRepository
	viewRepo    ports.ViewRepository
	dedup       ViewDeduper
	log         zerolog.Logger
}

// NewViewService returns a ViewService implementation.
func NewViewService(
	projectRepo ports.ProjectRepository,
	viewRepo ports.ViewRepository,
	dedup ViewDeduper,
	log zerolog.Logger,
) ports.ViewService {
	return &viewService{
		projectRepo: projectRepo,
		viewRepo:    viewRepo,
		dedup:       dedup,
		log:         log,
	}
}

// Process deduplicates and counts a single project view.
func (s *viewService) Process(ctx context.Context, in ports.ViewInput) error {
	// Repeat views inside the window are silently skipped.
	isDup, err := s.dedup.IsDuplicate(ctx, in.ProjectID, in.Viewer)
	if err != nil {
		s.log.Warn().Err(err).Str("project_id", in.ProjectID).Msg("dedup check failed, counting anyway")
	} else if isDup {
		s.log.Debug().Str("project_id", in.ProjectID).Str("viewer", in.Viewer).Msg("duplicate view skipped")
		return nil
	}

	if _, err := s.projectRepo.FindByID(ctx, in.ProjectID); err != nil {
		return fmt.Errorf("process view: %w", err)
	}

	if markErr := s.dedup.Mark(ctx, in.ProjectID, in.Viewer); markErr != nil {
		s.log.Warn().Err(markErr).Str("project_id", in.ProjectID).Msg("failed to set dedup key")
	}

	views, err := s.viewRepo.IncrementViews(ctx, in.ProjectID)
	if err != nil {
		return fmt.Errorf("process view: increment: %w", err)
	}

	viewedAt := in.ViewedAt
	if viewedAt.IsZero() {
		viewedAt = time.Now().UTC()
	}
	audit := &domain.ProjectView{ProjectID: in.ProjectID, Viewer: in.Viewer, ViewedAt: viewedAt}
	if err := s.viewRepo.InsertView(ctx, audit); err != nil {
		s.log.Warn().Err(err).Str("project_id", in.ProjectID).Msg("failed to insert view audit")
	}

	s.log.Debug().
		Str("project_id", in.ProjectID).
		Int64("views", views).
		Msg("view processed")

	return nil
}
