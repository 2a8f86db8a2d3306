package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
)

func TestLoginLimiter_Allow(t *testing.T) {
	limiter := NewLoginLimiter(5, 15*time.Minute)
	now := time.Now()

	for i := 0; i < 5; i++ {
		if ok, _ := limiter.Allow("10.0.0.1", now); !ok {
			t.Fatalf("attempt %d should be allowed", i+1)
		}
	}

	ok, retryAfter := limiter.Allow("10.0.0.1", now)
	if ok {
		t.Fatalf("sixth attempt within the window must be rejected")
	}
	if retryAfter != 15*time.Minute {
		t.Fatalf("expected the full window as retry hint, got %v", retryAfter)
	}
}

func TestLoginLimiter_RetryHintTracksInjectedClock(t *testing.T) {
	limiter := NewLoginLimiter(2, 10*time.Minute)
	now := time.Now()

	limiter.Allow("10.0.0.1", now)
	limiter.Allow("10.0.0.1", now)

	// The hint is computed against the caller's clock, not the wall clock.
	_, retryAfter := limiter.Allow("10.0.0.1", now.Add(4*time.Minute))
	if retryAfter != 6*time.Minute {
		t.Fatalf("expected 6m remaining, got %v", retryAfter)
	}
}

func TestLoginLimiter_WindowReset(t *testing.T) {
	limiter := NewLoginLimiter(5, 15*time.Minute)
	now := time.Now()

	for i := 0; i < 6; i++ {
		limiter.Allow("10.0.0.1", now)
	}
	if ok, _ := limiter.Allow("10.0.0.1", now); ok {
		t.Fatalf("expected rejection within the window")
	}

	later := now.Add(15*time.Minute + time.Second)
	if ok, _ := limiter.Allow("10.0.0.1", later); !ok {
		t.Fatalf("expected the counter to reset after the window")
	}
}

func TestLoginLimiter_PerAddress(t *testing.T) {
	limiter := NewLoginLimiter(5, 15*time.Minute)
	now := time.Now()

	for i := 0; i < 6; i++ {
		limiter.Allow("10.0.0.1", now)
	}
	if ok, _ := limiter.Allow("10.0.0.2", now); !ok {
		t.Fatalf("a throttled address must not affect other addresses")
	}
}

func TestLoginLimiter_SweepDropsExpired(t *testing.T) {
	limiter := NewLoginLimiter(5, time.Minute)
	now := time.Now()

	limiter.Allow("10.0.0.1", now)
	limiter.Allow("10.0.0.2", now)

	limiter.Allow("10.0.0.3", now.Add(2*time.Minute))

	limiter.mu.Lock()
	defer limiter.mu.Unlock()
	if len(limiter.attempts) != 1 {
		t.Fatalf("expected expired windows swept, got %d entries", len(limiter.attempts))
	}
}

func TestLoginLimiter_Middleware(t *testing.T) {
	limiter := NewLoginLimiter(2, 15*time.Minute)
	e := echo.New()
	handler := limiter.Middleware()(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	attempt := func() (int, string) {
		req := httptest.NewRequest(http.MethodPost, "/admin/login", nil)
		req.RemoteAddr = "10.0.0.1:52000"
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		err := handler(c)
		if err == nil {
			return rec.Code, ""
		}
		var httpErr *echo.HTTPError
		if !errors.As(err, &httpErr) {
			t.Fatalf("expected *echo.HTTPError, got %v", err)
		}
		return httpErr.Code, c.Response().Header().Get("Retry-After")
	}

	for i := 0; i < 2; i++ {
		if code, _ := attempt(); code != http.StatusOK {
			t.Fatalf("attempt %d: expected 200, got %d", i+1, code)
		}
	}

	code, retryAfter := attempt()
	if code != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %d", code)
	}
	if retryAfter == "" {
		t.Fatalf("expected Retry-After header on 429")
	}
}
