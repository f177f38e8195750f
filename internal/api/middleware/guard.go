package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/vibefolio/vibefolio-api/internal/api/metrics"
	"github.com/vibefolio/vibefolio-api/internal/core/guard"
)

// AdminGuard protects administrator pages. Each request mounts a fresh guard
// on a fresh session provider: admins reach next, everyone else gets a single
// 303 redirect to denyPath and never sees the page.
func AdminGuard(opener SessionOpener, denyPath string, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx := c.Request().Context()

			p := opener.New(TokenFromRequest(c))
			defer p.Close()

			var navErr error
			g := guard.New(guard.NavigatorFunc(func(path string) {
				c.Response().Header().Set(echo.HeaderCacheControl, "no-store")
				navErr = c.Redirect(http.StatusSeeOther, path)
			}), guard.WithDestination(denyPath))

			p.Start(ctx)
			st := g.Run(ctx, p)

			switch st {
			case guard.Authorized:
				metrics.GuardDecisionsTotal.WithLabelValues(st.String()).Inc()
				SetAuthState(c, p.Snapshot())
				return next(c)
			case guard.Denied:
				metrics.GuardDecisionsTotal.WithLabelValues(st.String()).Inc()
				log.Debug().Str("path", c.Request().URL.Path).Msg("admin page denied")
				return navErr
			default:
				metrics.GuardDecisionsTotal.WithLabelValues("abandoned").Inc()
				log.Debug().Err(ctx.Err()).Str("path", c.Request().URL.Path).Msg("admin page abandoned")
				return nil
			}
		}
	}
}
