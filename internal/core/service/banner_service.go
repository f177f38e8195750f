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

type BannerService struct {
	repo ports.BannerRepository
	log  zerolog.Logger
}

func NewBannerService(repo ports.BannerRepository, log zerolog.Logger) *BannerService {
	return &BannerService{repo: repo, log: log}
}

func (s *BannerService) ListBanners(ctx context.Context, filter ports.ListBannersFilter) ([]*domain.Banner, error) {
	banners, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list banners: %w", err)
	}
	return banners, nil
}

// CreateBanner requires a title and an image. New banners are active and
// shown on the discover page unless told otherwise.
func (s *BannerService) CreateBanner(ctx context.Context, adminID string, in ports.BannerInput) (*domain.Banner, error) {
	now := time.Now().UTC()
	banner := &domain.Banner{
		PageType:  domain.PageDiscover,
		IsActive:  true,
		CreatedBy: adminID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	applyBannerInput(banner, in)

	if err := validateBanner(banner); err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, banner); err != nil {
		return nil, fmt.Errorf("create banner: %w", err)
	}

	s.log.Info().Str("banner_id", banner.ID).Str("admin_id", adminID).Msg("banner created")
	return banner, nil
}

func (s *BannerService) UpdateBanner(ctx context.Context, id string, in ports.BannerInput) (*domain.Banner, error) {
	banner, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	applyBannerInput(banner, in)
	banner.UpdatedAt = time.Now().UTC()

	if err := validateBanner(banner); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, banner); err != nil {
		return nil, fmt.Errorf("update banner: %w", err)
	}
	return banner, nil
}

func (s *BannerService) DeleteBanner(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func applyBannerInput(b *domain.Banner, in ports.BannerInput) {
	if in.Title != nil {
		b.Title = strings.TrimSpace(*in.Title)
	}
	if in.ImageURL != nil {
		b.ImageURL = strings.TrimSpace(*in.ImageURL)
	}
	if in.LinkURL != nil {
		b.LinkURL = *in.LinkURL
	}
	if in.PageType != nil {
		b.PageType = *in.PageType
	}
	if in.DisplayOrder != nil {
		b.DisplayOrder = *in.DisplayOrder
	}
	if in.IsActive != nil {
		b.IsActive = *in.IsActive
	}
}

func validateBanner(b *domain.Banner) error {
	if b.Title == "" || b.ImageURL == "" {
		return fmt.Errorf("banner: title and image are required: %w", domain.ErrInvalidInput)
	}
	if b.PageType != domain.PageDiscover && b.PageType != domain.PageConnect {
		return fmt.Errorf("banner: unknown page type %q: %w", b.PageType, domain.ErrInvalidInput)
	}
	return nil
}
