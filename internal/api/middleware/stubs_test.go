package middleware

import (
	"context"

	"github.com/vibefolio/vibefolio-api/internal/core/domain"
	"github.com/vibefolio/vibefolio-api/internal/core/session"
)

// tokenUsers maps access tokens to identities and profiles.
type tokenUsers map[string]*domain.User

type tokenIdentity struct {
	token string
	users tokenUsers
	block bool
}

func (t tokenIdentity) CurrentIdentity(ctx context.Context) (*domain.Identity, error) {
	if t.block {
		<-ctx.Done()
		return nil, ctx.Err()
	}
	u, ok := t.users[t.token]
	if !ok {
		return nil, nil
	}
	return &domain.Identity{ID: u.ID, Email: u.Email, SessionID: "sid-" + u.ID}, nil
}

func (u tokenUsers) LoadProfile(_ context.Context, userID string) (*domain.Profile, error) {
	for _, user := range u {
		if user.ID == userID {
			return user.Profile(), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

type stubOpener struct {
	users  tokenUsers
	block  bool
	tokens []string
}

func (o *stubOpener) New(token string) *session.Provider {
	o.tokens = append(o.tokens, token)
	return session.NewProvider(tokenIdentity{token: token, users: o.users, block: o.block}, o.users)
}

func newOpener() *stubOpener {
	return &stubOpener{users: tokenUsers{
		"admin-token": {ID: "u-admin", Email: "admin@vibefolio.dev", Role: domain.RoleAdmin},
		"user-token":  {ID: "u-user", Email: "user@vibefolio.dev", Role: domain.RoleUser},
	}}
}
