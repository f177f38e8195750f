package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/vibefolio/vibefolio-api/internal/core/domain"
)

// ---------------------------------------------------------------------------
// Stubs
// ---------------------------------------------------------------------------

type identityFunc func(ctx context.Context) (*domain.Identity, error)

func (f identityFunc) CurrentIdentity(ctx context.Context) (*domain.Identity, error) { return f(ctx) }

type profileFunc func(ctx context.Context, userID string) (*domain.Profile, error)

func (f profileFunc) LoadProfile(ctx context.Context, userID string) (*domain.Profile, error) {
	return f(ctx, userID)
}

func staticIdentity(id *domain.Identity, err error) identityFunc {
	return func(context.Context) (*domain.Identity, error) { return id, err }
}

func staticProfile(p *domain.Profile, err error) profileFunc {
	return func(context.Context, string) (*domain.Profile, error) { return p, err }
}

func recv(t *testing.T, ch <-chan domain.AuthState) domain.AuthState {
	t.Helper()
	select {
	case s, ok := <-ch:
		if !ok {
			t.Fatalf("subscription closed unexpectedly")
		}
		return s
	case <-time.After(time.Second):
		t.Fatalf("timed out waiting for snapshot")
	}
	return domain.AuthState{}
}

// ---------------------------------------------------------------------------
// Tests
// ---------------------------------------------------------------------------

func TestProvider_InitialStateIsLoading(t *testing.T) {
	p := NewProvider(nil, nil)
	if s := p.Snapshot(); !s.Loading || s.Identity != nil || s.Profile != nil {
		t.Fatalf("unexpected initial state: %+v", s)
	}
}

func TestProvider_ResolveSuccess(t *testing.T) {
	p := NewProvider(
		staticIdentity(&domain.Identity{ID: "u1", Email: "a@b.com"}, nil),
		staticProfile(&domain.Profile{Role: domain.RoleAdmin}, nil),
	)

	s := p.Resolve(context.Background())
	if s.Loading || s.Identity == nil || s.Identity.ID != "u1" {
		t.Fatalf("unexpected state: %+v", s)
	}
	if s.Profile == nil || s.Profile.Role != domain.RoleAdmin {
		t.Fatalf("expected admin profile, got %+v", s.Profile)
	}
}

func TestProvider_ResolveIdentityFailureEndsAnonymous(t *testing.T) {
	p := NewProvider(staticIdentity(nil, errors.New("network down")), nil)

	s := p.Resolve(context.Background())
	if s.Loading || s.Identity != nil {
		t.Fatalf("expected resolved anonymous state, got %+v", s)
	}
}

func TestProvider_ResolveProfileFailureKeepsIdentity(t *testing.T) {
	p := NewProvider(
		staticIdentity(&domain.Identity{ID: "u2"}, nil),
		staticProfile(nil, errors.New("profile table unavailable")),
	)

	s := p.Resolve(context.Background())
	if s.Loading || s.Identity == nil || s.Profile != nil {
		t.Fatalf("expected identity without profile, got %+v", s)
	}
	if domain.DeriveAdminState(s).IsAdmin {
		t.Fatalf("partial profile must not be admin")
	}
}

func TestProvider_ResolveTimesOutOnHungSource(t *testing.T) {
	block := make(chan struct{})
	defer close(block)

	hung := identityFunc(func(context.Context) (*domain.Identity, error) {
		<-block // ignores ctx on purpose
		return &domain.Identity{ID: "late"}, nil
	})
	p := NewProvider(hung, nil, WithResolveTimeout(20*time.Millisecond))

	start := time.Now()
	s := p.Resolve(context.Background())
	if time.Since(start) > time.Second {
		t.Fatalf("resolve did not honour the timeout")
	}
	if s.Loading || s.Identity != nil {
		t.Fatalf("expected anonymous state after timeout, got %+v", s)
	}
}

func TestProvider_SubscribeReceivesCurrentThenUpdates(t *testing.T) {
	p := NewProvider(
		staticIdentity(&domain.Identity{ID: "u1"}, nil),
		staticProfile(&domain.Profile{Role: domain.RoleUser}, nil),
	)
	ch, cancel := p.Subscribe()
	defer cancel()

	if s := recv(t, ch); !s.Loading {
		t.Fatalf("expected loading snapshot first, got %+v", s)
	}

	p.Resolve(context.Background())
	if s := recv(t, ch); s.Loading || s.Identity == nil {
		t.Fatalf("expected resolved snapshot, got %+v", s)
	}
}

func TestProvider_SlowSubscriberSeesLatestState(t *testing.T) {
	p := NewProvider(nil, staticProfile(&domain.Profile{Role: domain.RoleUser}, nil))
	ch, cancel := p.Subscribe()
	defer cancel()

	p.SignIn(context.Background(), &domain.Identity{ID: "u1"})
	p.SignOut()
	p.SignIn(context.Background(), &domain.Identity{ID: "u3"})

	s := recv(t, ch)
	if s.Identity == nil || s.Identity.ID != "u3" {
		t.Fatalf("expected coalesced latest state u3, got %+v", s)
	}
}

func TestProvider_SignOutDuringResolveWins(t *testing.T) {
	entered := make(chan struct{})
	release := make(chan struct{})
	slow := identityFunc(func(context.Context) (*domain.Identity, error) {
		close(entered)
		<-release
		return &domain.Identity{ID: "stale"}, nil
	})
	p := NewProvider(slow, nil)

	done := make(chan domain.AuthState, 1)
	go func() { done <- p.Resolve(context.Background()) }()

	<-entered
	p.SignOut()
	close(release)

	s := <-done
	if s.Identity != nil || s.Loading {
		t.Fatalf("stale resolution overwrote sign-out: %+v", s)
	}
}

func TestProvider_UserUpdatedReloadsProfile(t *testing.T) {
	role := domain.RoleUser
	loader := profileFunc(func(context.Context, string) (*domain.Profile, error) {
		return &domain.Profile{Role: role}, nil
	})
	p := NewProvider(staticIdentity(&domain.Identity{ID: "u1"}, nil), loader)
	p.Resolve(context.Background())

	role = domain.RoleAdmin
	p.UserUpdated(context.Background())

	if !domain.DeriveAdminState(p.Snapshot()).IsAdmin {
		t.Fatalf("expected promoted profile after UserUpdated")
	}
}

func TestProvider_CloseClosesSubscriptionsAndDropsWrites(t *testing.T) {
	p := NewProvider(nil, nil)
	ch, cancel := p.Subscribe()
	defer cancel()
	<-ch // initial snapshot

	p.Close()
	if _, ok := <-ch; ok {
		t.Fatalf("expected closed channel after Close")
	}

	p.SignIn(context.Background(), &domain.Identity{ID: "u1"})
	if s := p.Snapshot(); s.Identity != nil {
		t.Fatalf("write after Close was applied: %+v", s)
	}

	late, _ := p.Subscribe()
	if _, ok := <-late; ok {
		t.Fatalf("subscribe after Close must return a closed channel")
	}
}

func TestProvider_CancelIsIdempotent(t *testing.T) {
	p := NewProvider(nil, nil)
	_, cancel := p.Subscribe()
	cancel()
	cancel()
	p.SignOut() // must not panic on a removed subscriber
}
