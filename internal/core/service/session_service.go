package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"

	"github.com/vibefolio/vibefolio-api/internal/core/domain"
	"github.com/vibefolio/vibefolio-api/internal/core/ports"
	"github.com/vibefolio/vibefolio-api/internal/core/session"
)

const profileLoadTimeout = 5 * time.Second

// ProfileService loads profiles for session providers. Concurrent loads of
// the same user share one repository call. The shared call is detached from
// the caller that started it; each caller still stops waiting when its own
// context ends.
type ProfileService struct {
	users   ports.UserRepository
	group   singleflight.Group
	timeout time.Duration
}

func NewProfileService(users ports.UserRepository) *ProfileService {
	return &ProfileService{users: users, timeout: profileLoadTimeout}
}

func (s *ProfileService) LoadProfile(ctx context.Context, userID string) (*domain.Profile, error) {
	ch := s.group.DoChan(userID, func() (interface{}, error) {
		lctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.timeout)
		defer cancel()

		user, err := s.users.FindByID(lctx, userID)
		if err != nil {
			return nil, fmt.Errorf("load profile: %w", err)
		}
		return user.Profile(), nil
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		p := *res.Val.(*domain.Profile)
		return &p, nil
	}
}

// tokenIdentity resolves the identity behind one access token. A token whose
// activity record has lapsed resolves to domain.ErrSessionExpired.
type tokenIdentity struct {
	token    string
	tokens   *TokenManager
	activity ActivityStore
}

func (t tokenIdentity) CurrentIdentity(ctx context.Context) (*domain.Identity, error) {
	if t.token == "" {
		return nil, nil
	}
	claims, err := t.tokens.Parse(t.token)
	if err != nil {
		return nil, err
	}

	alive, err := t.activity.Touch(ctx, claims.SessionID)
	if err != nil {
		return nil, fmt.Errorf("touch session: %w", err)
	}
	if !alive {
		return nil, domain.ErrSessionExpired
	}

	return &domain.Identity{ID: claims.Subject, Email: claims.Email, SessionID: claims.SessionID}, nil
}

// SessionFactory builds one session.Provider per incoming request.
type SessionFactory struct {
	tokens   *TokenManager
	activity ActivityStore
	profiles session.ProfileLoader
	timeout  time.Duration
	log      zerolog.Logger
}

func NewSessionFactory(
	tokens *TokenManager,
	activity ActivityStore,
	profiles session.ProfileLoader,
	timeout time.Duration,
	log zerolog.Logger,
) *SessionFactory {
	return &SessionFactory{
		tokens:   tokens,
		activity: activity,
		profiles: profiles,
		timeout:  timeout,
		log:      log,
	}
}

// New returns an unresolved provider for token. An empty token yields an
// anonymous session once resolved.
func (f *SessionFactory) New(token string) *session.Provider {
	return session.NewProvider(
		tokenIdentity{token: token, tokens: f.tokens, activity: f.activity},
		f.profiles,
		session.WithResolveTimeout(f.timeout),
		session.WithLogger(f.log),
	)
}
