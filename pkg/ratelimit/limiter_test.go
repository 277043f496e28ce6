package ratelimit

import (
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/tifofan/football-proxy/pkg/apierror"
)

func newTestLimiter(t *testing.T) (*Limiter, *time.Time) {
	t.Helper()

	limiter := NewLimiter(zerolog.Nop())
	current := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	limiter.now = func() time.Time { return current }

	return limiter, &current
}

func TestLimiter_ExactlyNWithinWindow(t *testing.T) {
	limiter, _ := newTestLimiter(t)

	const limit = 5
	for i := 0; i < limit; i++ {
		if err := limiter.Check("getTeam:ip:1.2.3.4", limit, time.Minute); err != nil {
			t.Fatalf("request %d unexpectedly denied: %v", i+1, err)
		}
	}

	err := limiter.Check("getTeam:ip:1.2.3.4", limit, time.Minute)
	if err == nil {
		t.Fatal("request over the limit was allowed")
	}

	apiErr, ok := apierror.As(err)
	if !ok {
		t.Fatalf("denial is not an apierror: %v", err)
	}
	if apiErr.Code != "rate_limited" || apiErr.Status != 429 {
		t.Errorf("denial = %s/%d, want rate_limited/429", apiErr.Code, apiErr.Status)
	}
	if apiErr.RetryAfter != 60 {
		t.Errorf("RetryAfter = %d, want 60 (full window remaining)", apiErr.RetryAfter)
	}
}

func TestLimiter_RetryAfterShrinksWithinWindow(t *testing.T) {
	limiter, now := newTestLimiter(t)

	if err := limiter.Check("k", 1, time.Minute); err != nil {
		t.Fatalf("first request denied: %v", err)
	}

	*now = now.Add(45 * time.Second)
	err := limiter.Check("k", 1, time.Minute)
	apiErr, ok := apierror.As(err)
	if !ok {
		t.Fatalf("expected rate_limited error, got %v", err)
	}
	if apiErr.RetryAfter != 15 {
		t.Errorf("RetryAfter = %d, want 15", apiErr.RetryAfter)
	}
}

func TestLimiter_WindowResets(t *testing.T) {
	limiter, now := newTestLimiter(t)

	const limit = 3
	for i := 0; i < limit; i++ {
		if err := limiter.Check("k", limit, time.Minute); err != nil {
			t.Fatalf("request %d denied: %v", i+1, err)
		}
	}
	if err := limiter.Check("k", limit, time.Minute); err == nil {
		t.Fatal("over-limit request allowed")
	}

	// At resetAt the window has lapsed and a fresh one begins.
	*now = now.Add(time.Minute)
	for i := 0; i < limit; i++ {
		if err := limiter.Check("k", limit, time.Minute); err != nil {
			t.Fatalf("request %d after reset denied: %v", i+1, err)
		}
	}
}

func TestLimiter_KeysAreIndependent(t *testing.T) {
	limiter, _ := newTestLimiter(t)

	if err := limiter.Check("getTeam:ip:1.1.1.1", 1, time.Minute); err != nil {
		t.Fatalf("first key denied: %v", err)
	}
	if err := limiter.Check("getTeam:ip:2.2.2.2", 1, time.Minute); err != nil {
		t.Errorf("second key affected by first key's window: %v", err)
	}
	if err := limiter.Check("getMatches:ip:1.1.1.1", 1, time.Minute); err != nil {
		t.Errorf("second endpoint affected by first endpoint's window: %v", err)
	}

	var apiErr *apierror.Error
	if err := limiter.Check("getTeam:ip:1.1.1.1", 1, time.Minute); !errors.As(err, &apiErr) {
		t.Errorf("exhausted key unexpectedly allowed: %v", err)
	}
}
