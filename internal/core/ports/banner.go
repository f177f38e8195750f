package ports

import (
	"context"

	"github.com/vibefolio/vibefolio-api/internal/core/domain"
)

// ListBannersFilter selects banners for a page. Results are ordered by
// display_order ascending.
type ListBannersFilter struct {
	PageType   string
	ActiveOnly bool
}

type BannerRepository interface {
	Create(ctx context.Context, b *domain.Banner) error
	FindByID(ctx context.Context, id string) (*domain.Banner, error)
	List(ctx context.Context, filter ListBannersFilter) ([]*domain.Banner, error)
	Update(ctx context.Context, b *domain.Banner) error
	Delete(ctx context.Context, id string) error
}

// BannerInput is used for both create and update. Nil fields are left
// untouched on update.
type BannerInput struct {
	Title        *string
	ImageURL     *string
	LinkURL      *string
	PageType     *string
	DisplayOrder *int
	IsActive     *bool
}

type BannerService interface {
	ListBanners(ctx context.Context, filter ListBannersFilter) ([]*domain.Banner, error)
	CreateBanner(ctx context.Context, adminID string, input BannerInput) (*domain.Banner, error)
	UpdateBanner(ctx context.Context, id string, input BannerInput) (*domain.Banner, error)
	DeleteBanner(ctx context.Context, id string) error
}
