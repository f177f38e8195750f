package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/vibefolio/vibefolio-api/internal/core/domain"
	"github.com/vibefolio/vibefolio-api/internal/core/ports"
)

// ActivityStore tracks the last activity of each session (Redis). A session
// whose record expired is considered signed out.
type ActivityStore interface {
	Start(ctx context.Context, sessionID string) error
	// Touch refreshes the record and reports whether it still existed.
	Touch(ctx context.Context, sessionID string) (bool, error)
	End(ctx context.Context, sessionID string) error
}

const minPasswordLength = 6

// AuthService implements registration, login and logout.
type AuthService struct {
	repo     ports.UserRepository
	tokens   *TokenManager
	activity ActivityStore
	log      zerolog.Logger
}

func NewAuthService(repo ports.UserRepository, tokens *TokenManager, activity ActivityStore, log zerolog.Logger) *AuthService {
	return &AuthService{repo: repo, tokens: tokens, activity: activity, log: log}
}

func (s *AuthService) Register(ctx context.Context, in ports.RegisterInput) (*domain.User, error) {
	email := normalizeEmail(in.Email)
	if email == "" || len(in.Password) < minPasswordLength {
		return nil, fmt.Errorf("register: %w", domain.ErrInvalidInput)
	}

	if _, err := s.repo.FindByEmail(ctx, email); err == nil {
		return nil, domain.ErrUserExists
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, fmt.Errorf("register: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	nickname := strings.TrimSpace(in.Nickname)
	if nickname == "" {
		nickname = domain.NicknameFromEmail(email)
	}

	now := time.Now().UTC()
	user := &domain.User{
		Email:           email,
		PasswordHash:    string(hash),
		Nickname:        nickname,
		ProfileImageURL: domain.DefaultProfileImage,
		Role:            domain.RoleUser,
		IsActive:        true,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, err
	}
	s.log.Info().Str("user_id", created.ID).Msg("user registered")
	return created, nil
}

// Login returns domain.ErrInvalidCredentials for an unknown email, a wrong
// password and a deactivated account alike.
func (s *AuthService) Login(ctx context.Context, email, password string) (*ports.LoginResult, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if !user.IsActive || user.PasswordHash == "" {
		return nil, domain.ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, domain.ErrInvalidCredentials
	}

	return s.startSession(ctx, user)
}

func (s *AuthService) LoginWithIdentity(ctx context.Context, email, nickname string) (*ports.LoginResult, error) {
	email = normalizeEmail(email)
	if email == "" {
		return nil, domain.ErrInvalidCredentials
	}

	user, err := s.repo.FindByEmail(ctx, email)
	switch {
	case errors.Is(err, domain.ErrUserNotFound):
		if nickname == "" {
			nickname = domain.NicknameFromEmail(email)
		}
		now := time.Now().UTC()
		user, err = s.repo.Create(ctx, &domain.User{
			Email:           email,
			Nickname:        nickname,
			ProfileImageURL: domain.DefaultProfileImage,
			Role:            domain.RoleUser,
			IsActive:        true,
			CreatedAt:       now,
			UpdatedAt:       now,
		})
		if err != nil {
			return nil, fmt.Errorf("provision user: %w", err)
		}
		s.log.Info().Str("user_id", user.ID).Msg("user provisioned from identity provider")
	case err != nil:
		return nil, err
	}

	if !user.IsActive {
		return nil, domain.ErrInvalidCredentials
	}
	return s.startSession(ctx, user)
}

func (s *AuthService) Logout(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil
	}
	return s.activity.End(ctx, sessionID)
}

func (s *AuthService) startSession(ctx context.Context, user *domain.User) (*ports.LoginResult, error) {
	token, sid, exp, err := s.tokens.Issue(user)
	if err != nil {
		return nil, err
	}
	if err := s.activity.Start(ctx, sid); err != nil {
		return nil, fmt.Errorf("start session: %w", err)
	}

	s.log.Info().Str("user_id", user.ID).Str("session_id", sid).Msg("session started")
	return &ports.LoginResult{Token: token, SessionID: sid, ExpiresAt: exp, User: user}, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
