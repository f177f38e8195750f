package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/vibefolio/vibefolio-api/internal/core/domain"
	"github.com/vibefolio/vibefolio-api/internal/core/ports"
)

func newAuthSvc(repo *stubUserRepo, activity *stubActivity) *AuthService {
	return NewAuthService(repo, NewTokenManager("secret", time.Hour), activity, zerolog.Nop())
}

func registerAlice(t *testing.T, svc *AuthService) *domain.User {
	t.Helper()
	user, err := svc.Register(context.Background(), ports.RegisterInput{Email: "Alice@Example.com", Password: "pass123"})
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	return user
}

func TestAuthService_Register_Success(t *testing.T) {
	svc := newAuthSvc(newStubUserRepo(), newStubActivity())

	user := registerAlice(t, svc)
	if user.PasswordHash == "pass123" {
		t.Fatalf("expected password to be hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("pass123")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
	if user.Email != "alice@example.com" {
		t.Fatalf("expected normalised email, got %s", user.Email)
	}
	if user.Role != domain.RoleUser || !user.IsActive {
		t.Fatalf("unexpected role/active: %s %v", user.Role, user.IsActive)
	}
	if user.Nickname != "alice" {
		t.Fatalf("expected nickname from email, got %q", user.Nickname)
	}
}

func TestAuthService_Register_Validation(t *testing.T) {
	svc := newAuthSvc(newStubUserRepo(), newStubActivity())

	cases := []ports.RegisterInput{
		{Email: "", Password: "pass123"},
		{Email: "a@b.com", Password: ""},
		{Email: "a@b.com", Password: "12345"},
	}
	for _, in := range cases {
		if _, err := svc.Register(context.Background(), in); !errors.Is(err, domain.ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput for %+v, got %v", in, err)
		}
	}
}

func TestAuthService_Register_Duplicate(t *testing.T) {
	svc := newAuthSvc(newStubUserRepo(), newStubActivity())
	registerAlice(t, svc)

	_, err := svc.Register(context.Background(), ports.RegisterInput{Email: "alice@example.com", Password: "other123"})
	if !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	repo := newStubUserRepo()
	activity := newStubActivity()
	svc := newAuthSvc(repo, activity)
	user := registerAlice(t, svc)

	res, err := svc.Login(context.Background(), "alice@example.com", "pass123")
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if res.Token == "" || res.SessionID == "" {
		t.Fatalf("expected token and session id, got %+v", res)
	}
	if !activity.live[res.SessionID] {
		t.Fatalf("expected activity record for the new session")
	}

	claims, err := svc.tokens.Parse(res.Token)
	if err != nil {
		t.Fatalf("parse token: %v", err)
	}
	if claims.Subject != user.ID || claims.Role != domain.RoleUser || claims.SessionID != res.SessionID {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestAuthService_Login_FailuresShareOneError(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthSvc(repo, newStubActivity())
	user := registerAlice(t, svc)

	if _, err := svc.Login(context.Background(), "alice@example.com", "wrong"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("wrong password: expected ErrInvalidCredentials, got %v", err)
	}
	if _, err := svc.Login(context.Background(), "ghost@example.com", "pass123"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("unknown user: expected ErrInvalidCredentials, got %v", err)
	}

	repo.users[user.ID].IsActive = false
	if _, err := svc.Login(context.Background(), "alice@example.com", "pass123"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("inactive user: expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_ActivityFailure(t *testing.T) {
	activity := newStubActivity()
	svc := newAuthSvc(newStubUserRepo(), activity)
	registerAlice(t, svc)

	activity.startErr = errors.New("redis down")
	if _, err := svc.Login(context.Background(), "alice@example.com", "pass123"); err == nil {
		t.Fatalf("expected error when the session cannot be recorded")
	}
}

func TestAuthService_LoginWithIdentity_ProvisionsOnce(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthSvc(repo, newStubActivity())

	first, err := svc.LoginWithIdentity(context.Background(), "bob@example.com", "")
	if err != nil {
		t.Fatalf("LoginWithIdentity returned error: %v", err)
	}
	if first.User.Nickname != "bob" || first.User.Role != domain.RoleUser {
		t.Fatalf("unexpected provisioned user: %+v", first.User)
	}

	second, err := svc.LoginWithIdentity(context.Background(), "bob@example.com", "Bobby")
	if err != nil {
		t.Fatalf("second LoginWithIdentity returned error: %v", err)
	}
	if second.User.ID != first.User.ID || len(repo.users) != 1 {
		t.Fatalf("expected the existing account to be reused")
	}

	// Provisioned accounts have no password.
	if _, err := svc.Login(context.Background(), "bob@example.com", ""); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected password login to fail, got %v", err)
	}
}

func TestAuthService_Logout(t *testing.T) {
	activity := newStubActivity()
	svc := newAuthSvc(newStubUserRepo(), activity)
	registerAlice(t, svc)

	res, err := svc.Login(context.Background(), "alice@example.com", "pass123")
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if err := svc.Logout(context.Background(), res.SessionID); err != nil {
		t.Fatalf("Logout returned error: %v", err)
	}
	if activity.live[res.SessionID] {
		t.Fatalf("expected activity record to be removed")
	}
}

func TestTokenManager_RejectsForeignAndExpiredTokens(t *testing.T) {
	m := NewTokenManager("secret", time.Minute)
	token, _, _, err := m.Issue(&domain.User{ID: "u1", Email: "a@b.com", Role: domain.RoleAdmin})
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	if _, err := NewTokenManager("other", time.Minute).Parse(token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for foreign secret, got %v", err)
	}

	m.now = func() time.Time { return time.Now().Add(2 * time.Minute) }
	if _, err := m.Parse(token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for expired token, got %v", err)
	}
}
