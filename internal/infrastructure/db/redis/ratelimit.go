package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Limit is a fixed-window quota.
type Limit struct {
	Requests int64
	Window   time.Duration
}

// Quotas applied at the edge, per client address.
var (
	LimitLogin  = Limit{Requests: 5, Window: time.Minute}
	LimitSignup = Limit{Requests: 3, Window: time.Hour}
	LimitAPI    = Limit{Requests: 60, Window: time.Minute}
	LimitUpload = Limit{Requests: 10, Window: time.Minute}
)

// Decision is the outcome of one Allow call.
type Decision struct {
	Allowed    bool
	Remaining  int64
	RetryAfter time.Duration
}

// RateLimiter counts requests in fixed windows.
// Key format: ratelimit:<scope>:<client>:<window_start_unix>
type RateLimiter struct {
	client *redis.Client
	now    func() time.Time
}

func NewRateLimiter(client *redis.Client) *RateLimiter {
	return &RateLimiter{client: client, now: time.Now}
}

// Allow counts one request of client against limit.
func (l *RateLimiter) Allow(ctx context.Context, scope, client string, limit Limit) (Decision, error) {
	now := l.now()
	start, retry := windowBounds(now, limit.Window)
	key := fmt.Sprintf("ratelimit:%s:%s:%d", scope, client, start.Unix())

	pipe := l.client.TxPipeline()
	incr := pipe.Incr(ctx, key)
	pipe.Expire(ctx, key, limit.Window)
	if _, err := pipe.Exec(ctx); err != nil {
		return Decision{Allowed: true}, fmt.Errorf("rate limit: %w", err)
	}

	return decide(incr.Val(), limit, retry), nil
}

// windowBounds returns the start of the window containing now and the time
// left until it closes.
func windowBounds(now time.Time, window time.Duration) (time.Time, time.Duration) {
	start := now.Truncate(window)
	return start, start.Add(window).Sub(now)
}

func decide(count int64, limit Limit, retry time.Duration) Decision {
	if count > limit.Requests {
		return Decision{Allowed: false, Remaining: 0, RetryAfter: retry}
	}
	return Decision{Allowed: true, Remaining: limit.Requests - count}
}
