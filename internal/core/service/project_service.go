package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/vibefolio/vibefolio-api/internal/core/domain"
	"github.com/vibefolio/vibefolio-api/internal/core/ports"
)

const (
	defaultListLimit = 20
	maxListLimit     = 100
)

type ProjectService struct {
	repo   ports.ProjectRepository
	users  ports.UserRepository
	logger zerolog.Logger
}

func NewProjectService(repo ports.ProjectRepository, users ports.UserRepository, logger zerolog.Logger) *ProjectService {
	return &ProjectService{repo: repo, users: users, logger: logger}
}

// CreateProject publishes a project owned by input.UserID. The author block
// is denormalised from the owner's profile.
func (s *ProjectService) CreateProject(ctx context.Context, input ports.CreateProjectInput) (*domain.Project, error) {
	title := strings.TrimSpace(input.Title)
	category := strings.TrimSpace(input.Category)
	if input.UserID == "" || title == "" || category == "" {
		return nil, fmt.Errorf("create project: %w", domain.ErrInvalidInput)
	}

	now := time.Now().UTC()
	project := &domain.Project{
		UserID:        input.UserID,
		Category:      category,
		Title:         title,
		ContentText:   input.ContentText,
		ThumbnailURL:  input.ThumbnailURL,
		RenderingType: input.RenderingType,
		CustomData:    input.CustomData,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if owner, err := s.users.FindByID(ctx, input.UserID); err == nil {
		profile := owner.Profile()
		project.Author = &domain.Author{
			UserID:          owner.ID,
			Nickname:        profile.Nickname,
			ProfileImageURL: profile.ProfileImageURL,
		}
	} else {
		s.logger.Warn().Err(err).Str("user_id", input.UserID).Msg("author lookup failed")
	}

	if err := s.repo.Create(ctx, project); err != nil {
		s.logger.Error().Err(err).Msg("failed to create project")
		return nil, err
	}

	s.logger.Info().Str("project_id", project.ID).Str("user_id", input.UserID).Msg("project created")
	return project, nil
}

func (s *ProjectService) GetProject(ctx context.Context, id string) (*domain.Project, error) {
	if id == "" {
		return nil, domain.ErrProjectNotFound
	}
	return s.repo.FindByID(ctx, id)
}

// ListProjects returns live projects newest first. The "all" and "korea"
// categories do not filter.
func (s *ProjectService) ListProjects(ctx context.Context, input ports.ListProjectsInput) ([]*domain.Project, error) {
	category := strings.TrimSpace(input.Category)
	if category == domain.CategoryAll || category == domain.CategoryKorea {
		category = ""
	}

	limit := input.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}

	projects, err := s.repo.List(ctx, ports.ListProjectsFilter{
		Category: category,
		UserID:   input.UserID,
		Search:   strings.TrimSpace(input.Search),
		Limit:    limit,
	})
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	return projects, nil
}

func (s *ProjectService) UpdateProject(ctx context.Context, input ports.UpdateProjectInput) (*domain.Project, error) {
	project, err := s.owned(ctx, input.ID, input.UserID)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		title := strings.TrimSpace(*input.Title)
		if title == "" {
			return nil, fmt.Errorf("update project: %w", domain.ErrInvalidInput)
		}
		project.Title = title
	}
	if input.Category != nil {
		project.Category = *input.Category
	}
	if input.ContentText != nil {
		project.ContentText = *input.ContentText
	}
	if input.ThumbnailURL != nil {
		project.ThumbnailURL = *input.ThumbnailURL
	}
	if input.RenderingType != nil {
		project.RenderingType = *input.RenderingType
	}
	if input.CustomData != nil {
		project.CustomData = input.CustomData
	}
	project.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, project); err != nil {
		return nil, fmt.Errorf("update project: %w", err)
	}
	return project, nil
}

func (s *ProjectService) DeleteProject(ctx context.Context, id, userID string) error {
	if _, err := s.owned(ctx, id, userID); err != nil {
		return err
	}
	if err := s.repo.SoftDelete(ctx, id); err != nil {
		return fmt.Errorf("delete project: %w", err)
	}
	s.logger.Info().Str("project_id", id).Str("user_id", userID).Msg("project deleted")
	return nil
}

// owned loads a project and checks that userID owns it.
func (s *ProjectService) owned(ctx context.Context, id, userID string) (*domain.Project, error) {
	project, err := s.GetProject(ctx, id)
	if err != nil {
		return nil, err
	}
	if !project.OwnedBy(userID) {
		return nil, domain.ErrForbidden
	}
	return project, nil
}
