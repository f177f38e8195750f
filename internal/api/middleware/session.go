package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/vibefolio/vibefolio-api/internal/core/domain"
	"github.com/vibefolio/vibefolio-api/internal/core/session"
)

// SessionCookie carries the access token for browser clients.
const SessionCookie = "vf_session"

const (
	authStateKey  = "auth_state"
	adminStateKey = "admin_state"
)

// SessionOpener creates the per-request session provider for a token.
type SessionOpener interface {
	New(token string) *session.Provider
}

// Session resolves the caller once per request and stores both the AuthState
// and its derived AdminState on the context. Anonymous requests pass through.
func Session(opener SessionOpener) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			p := opener.New(TokenFromRequest(c))
			defer p.Close()

			state := p.Resolve(c.Request().Context())
			SetAuthState(c, state)
			return next(c)
		}
	}
}

// RequireAuth rejects anonymous callers with 401.
func RequireAuth() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if state, ok := AuthStateFrom(c); !ok || !state.Authenticated() {
				return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
			}
			return next(c)
		}
	}
}

// TokenFromRequest returns the bearer token, falling back to the session
// cookie. It returns "" when neither is present.
func TokenFromRequest(c echo.Context) string {
	if h := c.Request().Header.Get(echo.HeaderAuthorization); h != "" {
		scheme, token, ok := strings.Cut(h, " ")
		if ok && strings.EqualFold(scheme, "bearer") {
			return strings.TrimSpace(token)
		}
		return ""
	}
	if ck, err := c.Cookie(SessionCookie); err == nil {
		return ck.Value
	}
	return ""
}

// AuthStateFrom returns the AuthState stored by Session or AdminGuard.
func AuthStateFrom(c echo.Context) (domain.AuthState, bool) {
	s, ok := c.Get(authStateKey).(domain.AuthState)
	return s, ok
}

// AdminStateFrom returns the AdminState derived for this request. Without
// Session it reports a non-admin that is still loading.
func AdminStateFrom(c echo.Context) domain.AdminState {
	if s, ok := c.Get(adminStateKey).(domain.AdminState); ok {
		return s
	}
	return domain.AdminState{IsLoading: true}
}

// SetAuthState stores s and its derived AdminState on the context.
func SetAuthState(c echo.Context, s domain.AuthState) {
	c.Set(authStateKey, s)
	c.Set(adminStateKey, domain.DeriveAdminState(s))
}
