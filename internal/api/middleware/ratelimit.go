package middleware

import (
	"context"
	"math"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/vibefolio/vibefolio-api/internal/api/metrics"
	redisdb "github.com/vibefolio/vibefolio-api/internal/infrastructure/db/redis"
)

// Limiter counts requests per scope and client.
type Limiter interface {
	Allow(ctx context.Context, scope, client string, limit redisdb.Limit) (redisdb.Decision, error)
}

// RateLimit rejects clients over limit with 429 and Retry-After. Clients are
// keyed by echo's RealIP (first X-Forwarded-For hop, then X-Real-IP, then the
// peer address). Limiter failures let the request through.
func RateLimit(l Limiter, scope string, limit redisdb.Limit, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			d, err := l.Allow(c.Request().Context(), scope, c.RealIP(), limit)
			if err != nil {
				log.Warn().Err(err).Str("scope", scope).Msg("rate limiter unavailable")
				return next(c)
			}

			h := c.Response().Header()
			h.Set("X-RateLimit-Limit", strconv.FormatInt(limit.Requests, 10))
			h.Set("X-RateLimit-Remaining", strconv.FormatInt(d.Remaining, 10))

			if !d.Allowed {
				metrics.RateLimitedTotal.WithLabelValues(scope).Inc()
				h.Set("Retry-After", strconv.Itoa(int(math.Ceil(d.RetryAfter.Seconds()))))
				return c.JSON(http.StatusTooManyRequests, map[string]string{"error": "too many requests"})
			}
			return next(c)
		}
	}
}
