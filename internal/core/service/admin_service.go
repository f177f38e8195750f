package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/vibefolio/vibefolio-api/internal/core/domain"
	"github.com/vibefolio/vibefolio-api/internal/core/ports"
)

type AdminService struct {
	users    ports.UserRepository
	projects ports.ProjectRepository
	comments ports.CommentRepository
	log      zerolog.Logger
}

func NewAdminService(
	users ports.UserRepository,
	projects ports.ProjectRepository,
	comments ports.CommentRepository,
	log zerolog.Logger,
) *AdminService {
	return &AdminService{users: users, projects: projects, comments: comments, log: log}
}

// Stats counts users, projects and comments concurrently.
func (s *AdminService) Stats(ctx context.Context) (*ports.DashboardStats, error) {
	var stats ports.DashboardStats
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() (err error) {
		stats.Users, err = s.users.Count(ctx)
		return err
	})
	g.Go(func() (err error) {
		stats.Projects, err = s.projects.Count(ctx)
		return err
	})
	g.Go(func() (err error) {
		stats.Comments, err = s.comments.Count(ctx)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("dashboard stats: %w", err)
	}
	return &stats, nil
}

func (s *AdminService) ListUsers(ctx context.Context, page, limit int) (*ports.ListUsersResult, error) {
	if page < 1 {
		page = 1
	}
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}

	users, total, err := s.users.List(ctx, limit, (page-1)*limit)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return &ports.ListUsersResult{Items: users, Total: total, Page: page, Limit: limit}, nil
}

// ChangeRole promotes or demotes a user. Open sessions pick the new role up
// on their next request.
func (s *AdminService) ChangeRole(ctx context.Context, userID, role string) (*domain.User, error) {
	if !domain.ValidRole(role) {
		return nil, domain.ErrInvalidRole
	}
	user, err := s.users.UpdateRole(ctx, userID, role)
	if err != nil {
		return nil, err
	}
	s.log.Info().Str("user_id", userID).Str("role", role).Msg("role changed")
	return user, nil
}
