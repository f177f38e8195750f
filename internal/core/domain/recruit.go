package domain

import (
	"errors"
	"time"
)

var ErrRecruitItemNotFound = errors.New("recruit item not found")

// Recruit item types.
const (
	RecruitJob     = "job"
	RecruitContest = "contest"
	RecruitEvent   = "event"
)

func ValidRecruitType(t string) bool {
	return t == RecruitJob || t == RecruitContest || t == RecruitEvent
}

// RecruitItem is a job opening, contest or event listed on the recruit
// board. Date is a calendar day (YYYY-MM-DD); deleting an item only
// deactivates it.
type RecruitItem struct {
	ID             string    `json:"id"`
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	Type           string    `json:"type"`
	Date           string    `json:"date"`
	Location       string    `json:"location,omitempty"`
	Prize          string    `json:"prize,omitempty"`
	Salary         string    `json:"salary,omitempty"`
	Company        string    `json:"company,omitempty"`
	EmploymentType string    `json:"employment_type,omitempty"`
	Link           string    `json:"link,omitempty"`
	Thumbnail      string    `json:"thumbnail,omitempty"`
	IsActive       bool      `json:"is_active"`
	CreatedBy      string    `json:"created_by"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
