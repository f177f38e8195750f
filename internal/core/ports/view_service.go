package ports

import (
	"context"
	"time"
)

// ViewInput is the DTO passed from the transport layer to ViewService.
type ViewInput struct {
	ProjectID string
	Viewer    string // user id, or client address for anonymous viewers
	ViewedAt  time.Time
}

// ViewService processes recorded project views.
type ViewService interface {
	Process(ctx context.Context, view ViewInput) error
}
