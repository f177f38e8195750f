package domain

import (
	"errors"
	"time"
)

var (
	ErrProjectNotFound = errors.New("project not found")
	ErrForbidden       = errors.New("access forbidden")
	ErrInvalidInput    = errors.New("invalid input")
)

// Categories that mean "no category filter" on listings.
const (
	CategoryAll   = "all"
	CategoryKorea = "korea"
)

// Author is the public view of a project's owner.
type Author struct {
	UserID          string `json:"user_id" bson:"user_id"`
	Nickname        string `json:"nickname" bson:"nickname"`
	ProfileImageURL string `json:"profile_image_url" bson:"profile_image_url"`
}

// Project is a portfolio entry uploaded by a creator.
type Project struct {
	ID            string         `json:"id"`
	UserID        string         `json:"user_id"`
	Author        *Author        `json:"author,omitempty"`
	Category      string         `json:"category"`
	Title         string         `json:"title"`
	ContentText   string         `json:"content_text"`
	ThumbnailURL  string         `json:"thumbnail_url"`
	RenderingType string         `json:"rendering_type"`
	CustomData    map[string]any `json:"custom_data,omitempty"`
	Views         int64          `json:"views"`
	Likes         int64          `json:"likes"`
	IsDeleted     bool           `json:"-"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
}

// OwnedBy reports whether userID owns the project.
func (p *Project) OwnedBy(userID string) bool {
	return userID != "" && p.UserID == userID
}

// ProjectView records a single view of a project.
type ProjectView struct {
	ProjectID string
	Viewer    string
	ViewedAt  time.Time
}
