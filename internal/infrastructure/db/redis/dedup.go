package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const defaultViewWindow = time.Hour

// ViewDeduper suppresses repeat views of a project by the same viewer.
// Key format: view:<project_id>:<viewer>
type ViewDeduper struct {
	client *redis.Client
	window time.Duration
}

// NewViewDeduper creates a ViewDeduper. A non-positive window means one hour.
func NewViewDeduper(client *redis.Client, window time.Duration) *ViewDeduper {
	if window <= 0 {
		window = defaultViewWindow
	}
	return &ViewDeduper{client: client, window: window}
}

// IsDuplicate reports whether viewer already viewed the project in the window.
func (d *ViewDeduper) IsDuplicate(ctx context.Context, projectID, viewer string) (bool, error) {
	n, err := d.client.Exists(ctx, viewKey(projectID, viewer)).Result()
	if err != nil {
		return false, fmt.Errorf("dedup check: %w", err)
	}
	return n > 0, nil
}

// Mark opens the window for this viewer.
func (d *ViewDeduper) Mark(ctx context.Context, projectID, viewer string) error {
	return d.client.Set(ctx, viewKey(projectID, viewer), "1", d.window).Err()
}

func viewKey(projectID, viewer string) string {
	return fmt.Sprintf("view:%s:%s", projectID, viewer)
}
