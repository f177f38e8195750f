package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/vibefolio/vibefolio-api/internal/api/metrics"
	"github.com/vibefolio/vibefolio-api/internal/api/middleware"
	"github.com/vibefolio/vibefolio-api/internal/core/domain"
	"github.com/vibefolio/vibefolio-api/internal/core/ports"
	"github.com/vibefolio/vibefolio-api/internal/infrastructure/oidc"
)

const (
	oidcStateCookie = "vf_oidc_state"
	oidcNonceCookie = "vf_oidc_nonce"
	oidcCookieTTL   = 10 * time.Minute
)

// IdentityProvider is the external sign-in flow used by OIDCLogin and
// OIDCCallback.
type IdentityProvider interface {
	Begin() (authURL, state, nonce string, err error)
	Exchange(ctx context.Context, code, nonce string) (*oidc.Identity, error)
}

type AuthHandler struct {
	authService  ports.AuthService
	idp          IdentityProvider
	secureCookie bool
	log          zerolog.Logger
}

// NewAuthHandler builds the handler. idp may be nil, in which case the OIDC
// routes answer 404.
func NewAuthHandler(authService ports.AuthService, idp IdentityProvider, secureCookie bool, log zerolog.Logger) *AuthHandler {
	return &AuthHandler{authService: authService, idp: idp, secureCookie: secureCookie, log: log}
}

// Register creates a new user account.
//
// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "User registration details"
// @Success      201   {object}  authResponse
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Failure      429   {object}  errorResponse
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	user, err := h.authService.Register(c.Request().Context(), ports.RegisterInput{
		Email:    req.Email,
		Password: req.Password,
		Nickname: req.Nickname,
	})
	if err != nil {
		return err
	}

	metrics.RegistrationsTotal.Inc()
	return c.JSON(http.StatusCreated, authResponse{User: user})
}

// Login authenticates a user, returns a token and sets the session cookie.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  authResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      429   {object}  errorResponse
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	res, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("password", "failure").Inc()
		if errors.Is(err, domain.ErrInvalidCredentials) {
			return c.JSON(http.StatusUnauthorized, errorResponse{Error: "invalid email or password"})
		}
		return err
	}

	metrics.LoginsTotal.WithLabelValues("password", "success").Inc()
	c.SetCookie(h.sessionCookie(res.Token, res.ExpiresAt))
	return c.JSON(http.StatusOK, authResponse{Token: res.Token, User: res.User})
}

// Logout ends the current session and clears the cookie.
//
// @Summary      Logout
// @Tags         auth
// @Security     BearerAuth
// @Success      204
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	if id, err := currentIdentity(c); err == nil {
		if err := h.authService.Logout(c.Request().Context(), id.SessionID); err != nil {
			h.log.Warn().Err(err).Str("user_id", id.ID).Msg("logout: failed to end session")
		}
	}
	c.SetCookie(h.sessionCookie("", time.Unix(0, 0)))
	return c.NoContent(http.StatusNoContent)
}

// Me returns the admin state derived for the caller.
//
// @Summary      Current session
// @Tags         auth
// @Produce      json
// @Success      200  {object}  meResponse
// @Router       /auth/me [get]
func (h *AuthHandler) Me(c echo.Context) error {
	resp := meResponse{AdminState: middleware.AdminStateFrom(c)}
	if state, ok := middleware.AuthStateFrom(c); ok && state.Identity != nil {
		resp.Email = state.Identity.Email
		resp.Profile = state.Profile
	}
	return c.JSON(http.StatusOK, resp)
}

// OIDCLogin starts the authorization code flow.
//
// @Summary      Start OIDC sign-in
// @Tags         auth
// @Success      302
// @Failure      404  {object}  errorResponse
// @Router       /auth/oidc/login [get]
func (h *AuthHandler) OIDCLogin(c echo.Context) error {
	if h.idp == nil {
		return echo.ErrNotFound
	}
	authURL, state, nonce, err := h.idp.Begin()
	if err != nil {
		return err
	}
	c.SetCookie(h.flowCookie(oidcStateCookie, state, oidcCookieTTL))
	c.SetCookie(h.flowCookie(oidcNonceCookie, nonce, oidcCookieTTL))
	return c.Redirect(http.StatusFound, authURL)
}

// OIDCCallback completes the flow, signs the user in and goes home.
//
// @Summary      OIDC callback
// @Tags         auth
// @Param        code   query  string  true  "Authorization code"
// @Param        state  query  string  true  "Opaque state"
// @Success      303
// @Failure      401  {object}  errorResponse
// @Router       /auth/callback [get]
func (h *AuthHandler) OIDCCallback(c echo.Context) error {
	if h.idp == nil {
		return echo.ErrNotFound
	}

	stateCk, err1 := c.Cookie(oidcStateCookie)
	nonceCk, err2 := c.Cookie(oidcNonceCookie)
	c.SetCookie(h.flowCookie(oidcStateCookie, "", -1))
	c.SetCookie(h.flowCookie(oidcNonceCookie, "", -1))
	if err1 != nil || err2 != nil || stateCk.Value == "" || stateCk.Value != c.QueryParam("state") {
		metrics.LoginsTotal.WithLabelValues("oidc", "failure").Inc()
		return c.JSON(http.StatusUnauthorized, errorResponse{Error: "invalid login state"})
	}

	ctx := c.Request().Context()
	ident, err := h.idp.Exchange(ctx, c.QueryParam("code"), nonceCk.Value)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("oidc", "failure").Inc()
		h.log.Warn().Err(err).Msg("oidc exchange failed")
		return c.JSON(http.StatusUnauthorized, errorResponse{Error: "sign-in failed"})
	}

	res, err := h.authService.LoginWithIdentity(ctx, ident.Email, ident.Name)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("oidc", "failure").Inc()
		if errors.Is(err, domain.ErrInvalidCredentials) {
			return c.JSON(http.StatusUnauthorized, errorResponse{Error: "sign-in failed"})
		}
		return err
	}

	metrics.LoginsTotal.WithLabelValues("oidc", "success").Inc()
	c.SetCookie(h.sessionCookie(res.Token, res.ExpiresAt))
	return c.Redirect(http.StatusSeeOther, "/")
}

func (h *AuthHandler) sessionCookie(value string, expires time.Time) *http.Cookie {
	ck := &http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    value,
		Path:     "/",
		Expires:  expires,
		HttpOnly: true,
		Secure:   h.secureCookie,
		SameSite: http.SameSiteLaxMode,
	}
	if value == "" {
		ck.MaxAge = -1
	}
	return ck
}

func (h *AuthHandler) flowCookie(name, value string, ttl time.Duration) *http.Cookie {
	ck := &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/auth",
		HttpOnly: true,
		Secure:   h.secureCookie,
		SameSite: http.SameSiteLaxMode,
	}
	if ttl < 0 {
		ck.MaxAge = -1
	} else {
		ck.MaxAge = int(ttl.Seconds())
	}
	return ck
}
