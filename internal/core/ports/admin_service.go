package ports

import (
	"context"

	"github.com/vibefolio/vibefolio-api/internal/core/domain"
)

// DashboardStats is the summary shown on the admin landing page.
type DashboardStats struct {
	Users    int64
	Projects int64
	Comments int64
}

// ListUsersResult is a page of accounts.
type ListUsersResult struct {
	Items []*domain.User
	Total int64
	Page  int
	Limit int
}

type AdminService interface {
	Stats(ctx context.Context) (*DashboardStats, error)
	ListUsers(ctx context.Context, page, limit int) (*ListUsersResult, error)
	ChangeRole(ctx context.Context, userID, role string) (*domain.User, error)
}
