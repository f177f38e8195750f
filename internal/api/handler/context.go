package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/vibefolio/vibefolio-api/internal/api/middleware"
	"github.com/vibefolio/vibefolio-api/internal/core/domain"
)

// currentIdentity returns the identity resolved by the Session middleware,
// or domain.ErrUnauthenticated.
func currentIdentity(c echo.Context) (*domain.Identity, error) {
	state, ok := middleware.AuthStateFrom(c)
	if !ok || !state.Authenticated() {
		return nil, domain.ErrUnauthenticated
	}
	return state.Identity, nil
}

// viewerKey identifies a viewer for view deduplication.
func viewerKey(c echo.Context) string {
	if id, err := currentIdentity(c); err == nil {
		return "user:" + id.ID
	}
	return "ip:" + c.RealIP()
}
