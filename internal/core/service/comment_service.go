package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/vibefolio/vibefolio-api/internal/core/domain"
	"github.com/vibefolio/vibefolio-api/internal/core/ports"
)

const maxCommentLength = 2000

type CommentService struct {
	comments ports.CommentRepository
	projects ports.ProjectRepository
	users    ports.UserRepository
	log      zerolog.Logger
}

func NewCommentService(
	comments ports.CommentRepository,
	projects ports.ProjectRepository,
	users ports.UserRepository,
	log zerolog.Logger,
) *CommentService {
	return &CommentService{comments: comments, projects: projects, users: users, log: log}
}

// ListComments returns the root comments of a project with their replies.
func (s *CommentService) ListComments(ctx context.Context, projectID string) ([]*domain.Comment, error) {
	flat, err := s.comments.ListByProject(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}
	return domain.ThreadComments(flat), nil
}

func (s *CommentService) CreateComment(ctx context.Context, in ports.CreateCommentInput) (*domain.Comment, error) {
	content := strings.TrimSpace(in.Content)
	if in.UserID == "" || content == "" || len(content) > maxCommentLength {
		return nil, fmt.Errorf("create comment: %w", domain.ErrInvalidInput)
	}

	if _, err := s.projects.FindByID(ctx, in.ProjectID); err != nil {
		return nil, err
	}

	if in.ParentID != "" {
		parent, err := s.comments.FindByID(ctx, in.ParentID)
		if err != nil {
			return nil, err
		}
		if parent.ProjectID != in.ProjectID {
			return nil, fmt.Errorf("create comment: parent belongs to another project: %w", domain.ErrInvalidInput)
		}
		// Replies to replies attach to the thread root.
		if parent.ParentID != "" {
			in.ParentID = parent.ParentID
		}
	}

	comment := &domain.Comment{
		ProjectID:       in.ProjectID,
		UserID:          in.UserID,
		Content:         content,
		ParentID:        in.ParentID,
		MentionedUserID: in.MentionedUserID,
		CreatedAt:       time.Now().UTC(),
		Replies:         []*domain.Comment{},
	}

	if user, err := s.users.FindByID(ctx, in.UserID); err == nil {
		profile := user.Profile()
		comment.Author = &domain.Author{UserID: user.ID, Nickname: profile.Nickname, ProfileImageURL: profile.ProfileImageURL}
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		s.log.Warn().Err(err).Str("user_id", in.UserID).Msg("comment author lookup failed")
	}

	if err := s.comments.Create(ctx, comment); err != nil {
		return nil, fmt.Errorf("create comment: %w", err)
	}
	return comment, nil
}

// DeleteComment soft-deletes a comment owned by userID.
func (s *CommentService) DeleteComment(ctx context.Context, id, userID string) error {
	comment, err := s.comments.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if userID == "" || comment.UserID != userID {
		return domain.ErrForbidden
	}
	return s.comments.SoftDelete(ctx, id)
}
