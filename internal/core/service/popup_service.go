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

type PopupService struct {
	repo ports.PopupRepository
	log  zerolog.Logger
	now  func() time.Time
}

func NewPopupService(repo ports.PopupRepository, log zerolog.Logger) *PopupService {
	return &PopupService{repo: repo, log: log, now: time.Now}
}

func (s *PopupService) ListPopups(ctx context.Context) ([]*domain.Popup, error) {
	popups, err := s.repo.List(ctx, false)
	if err != nil {
		return nil, fmt.Errorf("list popups: %w", err)
	}
	return popups, nil
}

func (s *PopupService) ActivePopup(ctx context.Context) (*domain.Popup, error) {
	popups, err := s.repo.List(ctx, true)
	if err != nil {
		return nil, fmt.Errorf("list popups: %w", err)
	}
	now := s.now().UTC()
	for _, p := range popups {
		if p.Live(now) {
			return p, nil
		}
	}
	return nil, domain.ErrPopupNotFound
}

// CreatePopup requires a title. Without an explicit order the popup goes
// after every existing one.
func (s *PopupService) CreatePopup(ctx context.Context, adminID string, in ports.PopupInput) (*domain.Popup, error) {
	now := s.now().UTC()
	popup := &domain.Popup{
		LinkText:  domain.DefaultPopupLinkText,
		IsActive:  true,
		CreatedBy: adminID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if in.DisplayOrder == nil {
		existing, err := s.repo.List(ctx, false)
		if err != nil {
			return nil, fmt.Errorf("list popups: %w", err)
		}
		for _, p := range existing {
			if p.DisplayOrder >= popup.DisplayOrder {
				popup.DisplayOrder = p.DisplayOrder + 1
			}
		}
	}
	if err := applyPopupInput(popup, in); err != nil {
		return nil, err
	}
	if err := validatePopup(popup); err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, popup); err != nil {
		return nil, fmt.Errorf("create popup: %w", err)
	}

	s.log.Info().Str("popup_id", popup.ID).Str("admin_id", adminID).Msg("popup created")
	return popup, nil
}

func (s *PopupService) UpdatePopup(ctx context.Context, id string, in ports.PopupInput) (*domain.Popup, error) {
	popup, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := applyPopupInput(popup, in); err != nil {
		return nil, err
	}
	if err := validatePopup(popup); err != nil {
		return nil, err
	}
	if err := s.save(ctx, popup); err != nil {
		return nil, err
	}
	return popup, nil
}

func (s *PopupService) TogglePopup(ctx context.Context, id string) (*domain.Popup, error) {
	popup, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	popup.IsActive = !popup.IsActive
	if err := s.save(ctx, popup); err != nil {
		return nil, err
	}
	s.log.Info().Str("popup_id", id).Bool("active", popup.IsActive).Msg("popup toggled")
	return popup, nil
}

func (s *PopupService) DeletePopup(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func (s *PopupService) save(ctx context.Context, p *domain.Popup) error {
	p.UpdatedAt = s.now().UTC()
	if err := s.repo.Update(ctx, p); err != nil {
		return fmt.Errorf("update popup: %w", err)
	}
	return nil
}

func applyPopupInput(p *domain.Popup, in ports.PopupInput) error {
	if in.Title != nil {
		p.Title = strings.TrimSpace(*in.Title)
	}
	if in.Content != nil {
		p.Content = *in.Content
	}
	if in.ImageURL != nil {
		p.ImageURL = strings.TrimSpace(*in.ImageURL)
	}
	if in.LinkURL != nil {
		p.LinkURL = strings.TrimSpace(*in.LinkURL)
	}
	if in.LinkText != nil {
		p.LinkText = strings.TrimSpace(*in.LinkText)
	}
	if in.IsActive != nil {
		p.IsActive = *in.IsActive
	}
	if in.DisplayOrder != nil {
		p.DisplayOrder = *in.DisplayOrder
	}

	var err error
	if in.StartDate != nil {
		if p.StartDate, err = parseDay(*in.StartDate); err != nil {
			return err
		}
	}
	if in.EndDate != nil {
		if p.EndDate, err = parseDay(*in.EndDate); err != nil {
			return err
		}
	}
	return nil
}

func validatePopup(p *domain.Popup) error {
	if p.Title == "" {
		return fmt.Errorf("popup: title is required: %w", domain.ErrInvalidInput)
	}
	if p.StartDate != nil && p.EndDate != nil && p.EndDate.Before(*p.StartDate) {
		return fmt.Errorf("popup: end date before start date: %w", domain.ErrInvalidInput)
	}
	if p.LinkText == "" {
		p.LinkText = domain.DefaultPopupLinkText
	}
	return nil
}

// parseDay reads a YYYY-MM-DD day as UTC midnight. An empty string yields nil.
func parseDay(s string) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	d, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q: %w", s, domain.ErrInvalidInput)
	}
	return &d, nil
}
