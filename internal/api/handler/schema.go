package handler

import (
	"github.com/vibefolio/vibefolio-api/internal/core/domain"
)

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Auth ---

type registerRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Nickname string `json:"nickname" validate:"max=50"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type authResponse struct {
	Token string       `json:"token,omitempty"`
	User  *domain.User `json:"user,omitempty"`
}

type meResponse struct {
	domain.AdminState
	Email   string          `json:"email,omitempty"`
	Profile *domain.Profile `json:"profile"`
}

// --- Projects ---

type listProjectsQuery struct {
	Category string `query:"category"`
	UserID   string `query:"user_id"`
	Search   string `query:"search"`
	Limit    int    `query:"limit" validate:"gte=0,lte=100"`
}

type createProjectRequest struct {
	Title         string         `json:"title"          validate:"required,max=200"`
	Category      string         `json:"category"       validate:"required"`
	ContentText   string         `json:"content_text"`
	ThumbnailURL  string         `json:"thumbnail_url"`
	RenderingType string         `json:"rendering_type"`
	CustomData    map[string]any `json:"custom_data"`
}

type updateProjectRequest struct {
	Title         *string        `json:"title"          validate:"omitempty,min=1,max=200"`
	Category      *string        `json:"category"       validate:"omitempty,min=1"`
	ContentText   *string        `json:"content_text"`
	ThumbnailURL  *string        `json:"thumbnail_url"`
	RenderingType *string        `json:"rendering_type"`
	CustomData    map[string]any `json:"custom_data"`
}

type listProjectsResponse struct {
	Items []*domain.Project `json:"items"`
	Count int               `json:"count"`
}

type viewResponse struct {
	Views  int64 `json:"views"`
	Queued bool  `json:"queued"`
}

// --- Comments ---

type createCommentRequest struct {
	Content         string `json:"content"           validate:"required,max=2000"`
	ParentID        string `json:"parent_comment_id"`
	MentionedUserID string `json:"mentioned_user_id"`
}

// --- Reactions ---

type toggleResponse struct {
	Active bool  `json:"active"`
	Count  int64 `json:"count"`
}

type projectIDsResponse struct {
	ProjectIDs []string `json:"project_ids"`
}

// --- Banners ---

type listBannersQuery struct {
	PageType   string `query:"page_type"   validate:"omitempty,oneof=discover connect"`
	ActiveOnly bool   `query:"active_only"`
}

type bannerRequest struct {
	Title        *string `json:"title"         validate:"omitempty,min=1"`
	ImageURL     *string `json:"image_url"     validate:"omitempty,min=1"`
	LinkURL      *string `json:"link_url"`
	PageType     *string `json:"page_type"     validate:"omitempty,oneof=discover connect"`
	DisplayOrder *int    `json:"display_order" validate:"omitempty,gte=0"`
	IsActive     *bool   `json:"is_active"`
}

// --- Popups ---

// Dates are YYYY-MM-DD; an empty string clears the bound.
type popupRequest struct {
	Title        *string `json:"title"         validate:"omitempty,min=1"`
	Content      *string `json:"content"`
	ImageURL     *string `json:"image_url"`
	LinkURL      *string `json:"link_url"`
	LinkText     *string `json:"link_text"     validate:"omitempty,max=40"`
	IsActive     *bool   `json:"is_active"`
	StartDate    *string `json:"start_date"`
	EndDate      *string `json:"end_date"`
	DisplayOrder *int    `json:"display_order" validate:"omitempty,gte=0"`
}

// --- Recruit ---

type listRecruitQuery struct {
	Type string `query:"type" validate:"omitempty,oneof=job contest event"`
}

type recruitRequest struct {
	Title          *string `json:"title"           validate:"omitempty,min=1,max=200"`
	Description    *string `json:"description"     validate:"omitempty,min=1"`
	Type           *string `json:"type"            validate:"omitempty,oneof=job contest event"`
	Date           *string `json:"date"`
	Location       *string `json:"location"`
	Prize          *string `json:"prize"`
	Salary         *string `json:"salary"`
	Company        *string `json:"company"`
	EmploymentType *string `json:"employment_type"`
	Link           *string `json:"link"`
	Thumbnail      *string `json:"thumbnail"`
	IsActive       *bool   `json:"is_active"`
}

type recruitListResponse struct {
	Items []*domain.RecruitItem `json:"items"`
}

// --- Admin ---

type statsResponse struct {
	Users    int64 `json:"users"`
	Projects int64 `json:"projects"`
	Comments int64 `json:"comments"`
}

type listUsersQuery struct {
	Page  int `query:"page"  validate:"gte=0"`
	Limit int `query:"limit" validate:"gte=0,lte=100"`
}

type listUsersResponse struct {
	Items []*domain.User `json:"items"`
	Total int64          `json:"total"`
	Page  int            `json:"page"`
	Limit int            `json:"limit"`
}

type changeRoleRequest struct {
	Role string `json:"role" validate:"required,oneof=admin user"`
}
