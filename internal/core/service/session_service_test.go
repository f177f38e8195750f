package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/vibefolio/vibefolio-api/internal/core/domain"
)

func newSessionFactory(users *stubUserRepo, activity *stubActivity, tokens *TokenManager) *SessionFactory {
	return NewSessionFactory(tokens, activity, NewProfileService(users), time.Second, zerolog.Nop())
}

func issueFor(t *testing.T, tokens *TokenManager, activity *stubActivity, user *domain.User) string {
	t.Helper()
	token, sid, _, err := tokens.Issue(user)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	_ = activity.Start(context.Background(), sid)
	return token
}

func TestSessionFactory_ResolvesAdmin(t *testing.T) {
	users := newStubUserRepo()
	users.users["u1"] = &domain.User{ID: "u1", Email: "a@b.com", Role: domain.RoleAdmin}
	activity := newStubActivity()
	tokens := NewTokenManager("secret", time.Hour)
	f := newSessionFactory(users, activity, tokens)

	p := f.New(issueFor(t, tokens, activity, users.users["u1"]))
	defer p.Close()

	st := domain.DeriveAdminState(p.Resolve(context.Background()))
	if !st.IsAdmin || st.IsLoading || st.UserID == nil || *st.UserID != "u1" {
		t.Fatalf("unexpected admin state: %+v", st)
	}
}

func TestSessionFactory_AnonymousCases(t *testing.T) {
	users := newStubUserRepo()
	users.users["u1"] = &domain.User{ID: "u1", Role: domain.RoleAdmin}
	activity := newStubActivity()
	tokens := NewTokenManager("secret", time.Hour)
	f := newSessionFactory(users, activity, tokens)

	expired, _, _, _ := tokens.Issue(users.users["u1"]) // no activity record

	for name, token := range map[string]string{
		"no token":      "",
		"garbage token": "not-a-jwt",
		"idle session":  expired,
	} {
		p := f.New(token)
		s := p.Resolve(context.Background())
		p.Close()
		if s.Loading || s.Identity != nil {
			t.Fatalf("%s: expected anonymous resolved state, got %+v", name, s)
		}
	}
}

func TestSessionFactory_ActivityErrorFailsClosed(t *testing.T) {
	users := newStubUserRepo()
	users.users["u1"] = &domain.User{ID: "u1", Role: domain.RoleAdmin}
	activity := newStubActivity()
	tokens := NewTokenManager("secret", time.Hour)
	token := issueFor(t, tokens, activity, users.users["u1"])
	activity.touchErr = errors.New("redis down")

	p := newSessionFactory(users, activity, tokens).New(token)
	defer p.Close()
	if st := domain.DeriveAdminState(p.Resolve(context.Background())); st.IsAdmin {
		t.Fatalf("activity failure must not grant admin: %+v", st)
	}
}

func TestSessionFactory_ProfileFailureKeepsIdentityAsUser(t *testing.T) {
	users := newStubUserRepo()
	users.users["u1"] = &domain.User{ID: "u1", Role: domain.RoleAdmin}
	activity := newStubActivity()
	tokens := NewTokenManager("secret", time.Hour)
	token := issueFor(t, tokens, activity, users.users["u1"])
	users.findErr = errors.New("mongo down")

	p := newSessionFactory(users, activity, tokens).New(token)
	defer p.Close()
	st := domain.DeriveAdminState(p.Resolve(context.Background()))
	if st.IsAdmin || st.UserID == nil || st.UserRole == nil || *st.UserRole != domain.RoleUser {
		t.Fatalf("expected non-admin user state, got %+v", st)
	}
}

func TestProfileService_ReturnsIndependentCopies(t *testing.T) {
	users := newStubUserRepo()
	users.users["u1"] = &domain.User{ID: "u1", Role: domain.RoleAdmin, Nickname: "root"}
	svc := NewProfileService(users)

	var wg sync.WaitGroup
	profiles := make([]*domain.Profile, 8)
	for i := range profiles {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			p, err := svc.LoadProfile(context.Background(), "u1")
			if err != nil {
				t.Errorf("load profile: %v", err)
				return
			}
			profiles[i] = p
		}(i)
	}
	wg.Wait()

	for _, p := range profiles {
		if p == nil || p.Role != domain.RoleAdmin || p.Nickname != "root" {
			t.Fatalf("unexpected profile: %+v", p)
		}
	}
	if profiles[0] == profiles[1] {
		t.Fatalf("callers must not share a profile pointer")
	}
	if users.finds > len(profiles) {
		t.Fatalf("expected at most %d lookups, got %d", len(profiles), users.finds)
	}
}

// gatedUserRepo blocks FindByID until released or until the lookup context
// ends.
type gatedUserRepo struct {
	*stubUserRepo
	entered chan struct{}
	release chan struct{}
}

func (r *gatedUserRepo) FindByID(ctx context.Context, id string) (*domain.User, error) {
	select {
	case r.entered <- struct{}{}:
	default:
	}
	select {
	case <-r.release:
		return r.stubUserRepo.FindByID(ctx, id)
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func TestProfileService_CancelledCallerDoesNotFailOthers(t *testing.T) {
	users := &gatedUserRepo{
		stubUserRepo: newStubUserRepo(),
		entered:      make(chan struct{}, 1),
		release:      make(chan struct{}),
	}
	users.users["admin1"] = &domain.User{ID: "admin1", Role: domain.RoleAdmin, Nickname: "root"}
	svc := NewProfileService(users)

	type result struct {
		p   *domain.Profile
		err error
	}
	first := make(chan result, 1)
	second := make(chan result, 1)

	ctxA, cancelA := context.WithCancel(context.Background())
	go func() {
		p, err := svc.LoadProfile(ctxA, "admin1")
		first <- result{p, err}
	}()
	select {
	case <-users.entered:
	case <-time.After(time.Second):
		t.Fatalf("lookup never started")
	}

	go func() {
		p, err := svc.LoadProfile(context.Background(), "admin1")
		second <- result{p, err}
	}()
	time.Sleep(20 * time.Millisecond)

	cancelA()
	select {
	case r := <-first:
		if !errors.Is(r.err, context.Canceled) || r.p != nil {
			t.Fatalf("cancelled caller: expected context.Canceled, got %+v %v", r.p, r.err)
		}
	case <-time.After(time.Second):
		t.Fatalf("cancelled caller kept waiting")
	}

	close(users.release)
	select {
	case r := <-second:
		if r.err != nil {
			t.Fatalf("live caller failed: %v", r.err)
		}
		if r.p == nil || r.p.Role != domain.RoleAdmin {
			t.Fatalf("live caller got %+v", r.p)
		}
	case <-time.After(time.Second):
		t.Fatalf("live caller never returned")
	}
}
