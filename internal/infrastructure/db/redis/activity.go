package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const defaultIdleTimeout = 30 * time.Minute

// ActivityStore records the last activity of each session. A record lives for
// the idle timeout and is pushed back on every authenticated request, so an
// idle session expires on its own.
// Key format: activity:<session_id>
type ActivityStore struct {
	client *redis.Client
	idle   time.Duration
}

func NewActivityStore(client *redis.Client, idle time.Duration) *ActivityStore {
	if idle <= 0 {
		idle = defaultIdleTimeout
	}
	return &ActivityStore{client: client, idle: idle}
}

func (s *ActivityStore) Start(ctx context.Context, sessionID string) error {
	if err := s.client.Set(ctx, activityKey(sessionID), time.Now().UTC().Unix(), s.idle).Err(); err != nil {
		return fmt.Errorf("activity start: %w", err)
	}
	return nil
}

// Touch extends the record. It reports false when the record already expired.
func (s *ActivityStore) Touch(ctx context.Context, sessionID string) (bool, error) {
	ok, err := s.client.Expire(ctx, activityKey(sessionID), s.idle).Result()
	if err != nil {
		return false, fmt.Errorf("activity touch: %w", err)
	}
	return ok, nil
}

func (s *ActivityStore) End(ctx context.Context, sessionID string) error {
	return s.client.Del(ctx, activityKey(sessionID)).Err()
}

func activityKey(sessionID string) string {
	return "activity:" + sessionID
}
