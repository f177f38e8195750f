package domain

import (
	"errors"
	"time"
)

var ErrBannerNotFound = errors.New("banner not found")

// Banner page types.
const (
	PageDiscover = "discover"
	PageConnect  = "connect"
)

// Banner is an admin-curated promotional slot shown on a listing page.
type Banner struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	ImageURL     string    `json:"image_url"`
	LinkURL      string    `json:"link_url"`
	PageType     string    `json:"page_type"`
	DisplayOrder int       `json:"display_order"`
	IsActive     bool      `json:"is_active"`
	CreatedBy    string    `json:"created_by"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
