package domain

import (
	"errors"
	"strings"
	"time"
)

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

const (
	DefaultNickname     = "Unknown"
	DefaultProfileImage = "/globe.svg"
)

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrUserExists         = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthenticated    = errors.New("authentication required")
	ErrSessionExpired     = errors.New("session expired")
	ErrInvalidRole        = errors.New("invalid role")
	ErrRateLimited        = errors.New("too many requests")
)

// User models a registered creator.
type User struct {
	ID              string    `json:"id"`
	Email           string    `json:"email"`
	PasswordHash    string    `json:"-"`
	Nickname        string    `json:"nickname"`
	ProfileImageURL string    `json:"profile_image_url"`
	Role            string    `json:"role"`
	IsActive        bool      `json:"is_active"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// Profile returns the profile view of u, filling the display defaults.
func (u *User) Profile() *Profile {
	p := &Profile{
		Role:            u.Role,
		Nickname:        u.Nickname,
		ProfileImageURL: u.ProfileImageURL,
	}
	if p.Role == "" {
		p.Role = RoleUser
	}
	if p.Nickname == "" {
		p.Nickname = DefaultNickname
	}
	if p.ProfileImageURL == "" {
		p.ProfileImageURL = DefaultProfileImage
	}
	return p
}

// NicknameFromEmail returns the local part of email, used when a user
// registers without a nickname.
func NicknameFromEmail(email string) string {
	local, _, _ := strings.Cut(email, "@")
	return local
}

// ValidRole reports whether role may be assigned to a user.
func ValidRole(role string) bool {
	return role == RoleAdmin || role == RoleUser
}
