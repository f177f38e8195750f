package ports

import (
	"context"

	"github.com/vibefolio/vibefolio-api/internal/core/domain"
)

// ListRecruitFilter selects recruit items. Results are ordered by date
// ascending.
type ListRecruitFilter struct {
	Type       string
	ActiveOnly bool
}

type RecruitRepository interface {
	Create(ctx context.Context, item *domain.RecruitItem) error
	FindByID(ctx context.Context, id string) (*domain.RecruitItem, error)
	List(ctx context.Context, filter ListRecruitFilter) ([]*domain.RecruitItem, error)
	Update(ctx context.Context, item *domain.RecruitItem) error
}

// RecruitInput is used for both create and update. Nil fields are left
// untouched on update.
type RecruitInput struct {
	Title          *string
	Description    *string
	Type           *string
	Date           *string
	Location       *string
	Prize          *string
	Salary         *string
	Company        *string
	EmploymentType *string
	Link           *string
	Thumbnail      *string
	IsActive       *bool
}

type RecruitService interface {
	// ListRecruitItems returns active items of the given type (all types when
	// empty).
	ListRecruitItems(ctx context.Context, itemType string) ([]*domain.RecruitItem, error)
	CreateRecruitItem(ctx context.Context, adminID string, input RecruitInput) (*domain.RecruitItem, error)
	UpdateRecruitItem(ctx context.Context, id string, input RecruitInput) (*domain.RecruitItem, error)
	// DeleteRecruitItem deactivates the item.
	DeleteRecruitItem(ctx context.Context, id string) error
}
