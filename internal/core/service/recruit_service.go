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

type RecruitService struct {
	repo ports.RecruitRepository
	log  zerolog.Logger
}

func NewRecruitService(repo ports.RecruitRepository, log zerolog.Logger) *RecruitService {
	return &RecruitService{repo: repo, log: log}
}

func (s *RecruitService) ListRecruitItems(ctx context.Context, itemType string) ([]*domain.RecruitItem, error) {
	if itemType != "" && !domain.ValidRecruitType(itemType) {
		return nil, fmt.Errorf("recruit: unknown type %q: %w", itemType, domain.ErrInvalidInput)
	}
	items, err := s.repo.List(ctx, ports.ListRecruitFilter{Type: itemType, ActiveOnly: true})
	if err != nil {
		return nil, fmt.Errorf("list recruit items: %w", err)
	}
	return items, nil
}

// CreateRecruitItem requires a title, a description and a date. Items are
// jobs unless told otherwise.
func (s *RecruitService) CreateRecruitItem(ctx context.Context, adminID string, in ports.RecruitInput) (*domain.RecruitItem, error) {
	now := time.Now().UTC()
	item := &domain.RecruitItem{
		Type:      domain.RecruitJob,
		IsActive:  true,
		CreatedBy: adminID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	applyRecruitInput(item, in)

	if err := validateRecruitItem(item); err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, item); err != nil {
		return nil, fmt.Errorf("create recruit item: %w", err)
	}

	s.log.Info().Str("item_id", item.ID).Str("type", item.Type).Str("admin_id", adminID).Msg("recruit item created")
	return item, nil
}

func (s *RecruitService) UpdateRecruitItem(ctx context.Context, id string, in ports.RecruitInput) (*domain.RecruitItem, error) {
	item, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	applyRecruitInput(item, in)
	item.UpdatedAt = time.Now().UTC()

	if err := validateRecruitItem(item); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, item); err != nil {
		return nil, fmt.Errorf("update recruit item: %w", err)
	}
	return item, nil
}

func (s *RecruitService) DeleteRecruitItem(ctx context.Context, id string) error {
	item, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	item.IsActive = false
	item.UpdatedAt = time.Now().UTC()
	if err := s.repo.Update(ctx, item); err != nil {
		return fmt.Errorf("deactivate recruit item: %w", err)
	}
	s.log.Info().Str("item_id", id).Msg("recruit item deactivated")
	return nil
}

func applyRecruitInput(item *domain.RecruitItem, in ports.RecruitInput) {
	set := func(dst *string, v *string) {
		if v != nil {
			*dst = strings.TrimSpace(*v)
		}
	}
	set(&item.Title, in.Title)
	set(&item.Description, in.Description)
	set(&item.Type, in.Type)
	set(&item.Date, in.Date)
	set(&item.Location, in.Location)
	set(&item.Prize, in.Prize)
	set(&item.Salary, in.Salary)
	set(&item.Company, in.Company)
	set(&item.EmploymentType, in.EmploymentType)
	set(&item.Link, in.Link)
	set(&item.Thumbnail, in.Thumbnail)
	if in.IsActive != nil {
		item.IsActive = *in.IsActive
	}
}

func validateRecruitItem(item *domain.RecruitItem) error {
	if item.Title == "" || item.Description == "" || item.Date == "" {
		return fmt.Errorf("recruit: title, description and date are required: %w", domain.ErrInvalidInput)
	}
	if !domain.ValidRecruitType(item.Type) {
		return fmt.Errorf("recruit: unknown type %q: %w", item.Type, domain.ErrInvalidInput)
	}
	if _, err := time.Parse(time.DateOnly, item.Date); err != nil {
		return fmt.Errorf("recruit: invalid date %q: %w", item.Date, domain.ErrInvalidInput)
	}
	return nil
}
