package ports

import (
	"context"

	"github.com/vibefolio/vibefolio-api/internal/core/domain"
)

type PopupRepository interface {
	Create(ctx context.Context, p *domain.Popup) error
	FindByID(ctx context.Context, id string) (*domain.Popup, error)
	// List returns popups ordered by display_order ascending.
	List(ctx context.Context, activeOnly bool) ([]*domain.Popup, error)
	Update(ctx context.Context, p *domain.Popup) error
	Delete(ctx context.Context, id string) error
}

// PopupInput is used for both create and update. Nil fields are left
// untouched; an empty date string clears that bound.
type PopupInput struct {
	Title        *string
	Content      *string
	ImageURL     *string
	LinkURL      *string
	LinkText     *string
	IsActive     *bool
	StartDate    *string
	EndDate      *string
	DisplayOrder *int
}

type PopupService interface {
	ListPopups(ctx context.Context) ([]*domain.Popup, error)
	// ActivePopup returns the first live popup, or domain.ErrPopupNotFound.
	ActivePopup(ctx context.Context) (*domain.Popup, error)
	CreatePopup(ctx context.Context, adminID string, input PopupInput) (*domain.Popup, error)
	UpdatePopup(ctx context.Context, id string, input PopupInput) (*domain.Popup, error)
	TogglePopup(ctx context.Context, id string) (*domain.Popup, error)
	DeletePopup(ctx context.Context, id string) error
}
