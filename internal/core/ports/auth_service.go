package ports

import (
	"context"
	"time"

	"github.com/vibefolio/vibefolio-api/internal/core/domain"
)

// RegisterInput carries the sign-up form.
type RegisterInput struct {
	Email    string
	Password string
	Nickname string
}

// LoginResult is returned by every successful sign-in.
type LoginResult struct {
	Token     string
	SessionID string
	ExpiresAt time.Time
	User      *domain.User
}

type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*domain.User, error)
	Login(ctx context.Context, email, password string) (*LoginResult, error)
	// LoginWithIdentity signs in a user vouched for by an external identity
	// provider, creating the account on first use.
	LoginWithIdentity(ctx context.Context, email, nickname string) (*LoginResult, error)
	Logout(ctx context.Context, sessionID string) error
}
