package domain

import (
	"errors"
	"time"
)

var ErrPopupNotFound = errors.New("popup not found")

const DefaultPopupLinkText = "Learn more"

// Popup is an admin-managed announcement shown once per visit. StartDate and
// EndDate bound the days it may appear; nil means unbounded.
type Popup struct {
	ID           string     `json:"id"`
	Title        string     `json:"title"`
	Content      string     `json:"content"`
	ImageURL     string     `json:"image_url"`
	LinkURL      string     `json:"link_url"`
	LinkText     string     `json:"link_text"`
	IsActive     bool       `json:"is_active"`
	StartDate    *time.Time `json:"start_date"`
	EndDate      *time.Time `json:"end_date"`
	DisplayOrder int        `json:"display_order"`
	CreatedBy    string     `json:"created_by"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// Live reports whether the popup is active and scheduled for now. The end
// date is inclusive.
func (p *Popup) Live(now time.Time) bool {
	if !p.IsActive {
		return false
	}
	if p.StartDate != nil && now.Before(*p.StartDate) {
		return false
	}
	if p.EndDate != nil && !now.Before(p.EndDate.AddDate(0, 0, 1)) {
		return false
	}
	return true
}
