package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// RequireAdmin gates API routes on the derived admin flag: 401 for anonymous
// callers, 403 JSON for signed-in non-admins. Must run after Session.
func RequireAdmin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			admin := AdminStateFrom(c)
			if admin.UserID == nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
			}
			if !admin.IsAdmin {
				return c.JSON(http.StatusForbidden, map[string]string{"error": "forbidden"})
			}
			return next(c)
		}
	}
}
