package redis

import (
	"testing"
	"time"
)

func TestWindowBounds(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 15, 40, 0, time.UTC)

	start, retry := windowBounds(now, time.Minute)
	if !start.Equal(time.Date(2026, 3, 1, 10, 15, 0, 0, time.UTC)) {
		t.Fatalf("unexpected window start: %v", start)
	}
	if retry != 20*time.Second {
		t.Fatalf("expected 20s until reset, got %v", retry)
	}

	start, retry = windowBounds(now, time.Hour)
	if !start.Equal(time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)) || retry != 44*time.Minute+20*time.Second {
		t.Fatalf("unexpected hourly window: %v %v", start, retry)
	}
}

func TestDecide(t *testing.T) {
	d := decide(5, LimitLogin, 10*time.Second)
	if !d.Allowed || d.Remaining != 0 {
		t.Fatalf("fifth login must pass: %+v", d)
	}

	d = decide(6, LimitLogin, 10*time.Second)
	if d.Allowed || d.RetryAfter != 10*time.Second {
		t.Fatalf("sixth login must be rejected with retry: %+v", d)
	}

	d = decide(1, LimitAPI, time.Second)
	if !d.Allowed || d.Remaining != 59 {
		t.Fatalf("unexpected api decision: %+v", d)
	}
}

func TestKeys(t *testing.T) {
	if got := viewKey("p1", "u1"); got != "view:p1:u1" {
		t.Fatalf("unexpected view key %q", got)
	}
	if got := activityKey("sid"); got != "activity:sid" {
		t.Fatalf("unexpected activity key %q", got)
	}
}
