package middleware

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/habitatmx/realestate-api/internal/api/metrics"
)

// LoginLimiter caps attempts per client address over a fixed window.
// Counters are process-local and reset on restart; increments are atomic
// per key under the mutex, so concurrent attempts from one address never
// undercount.
type LoginLimiter struct {
	mu       sync.Mutex
	max      int
	window   time.Duration
	attempts map[string]*windowCounter
}

type windowCounter struct {
	count      int
	windowEnds time.Time
}

// NewLoginLimiter builds a limiter allowing max attempts per window.
func NewLoginLimiter(max int, window time.Duration) *LoginLimiter {
	if max <= 0 {
		max = 5
	}
	if window <= 0 {
		window = 15 * time.Minute
	}
	return &LoginLimiter{
		max:      max,
		window:   window,
		attempts: make(map[string]*windowCounter),
	}
}

// Allow records an attempt for addr and reports whether it is within the
// limit, along with how long until the window resets when it is not.
func (l *LoginLimiter) Allow(addr string, now time.Time) (bool, time.Duration) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.sweep(now)

	counter, ok := l.attempts[addr]
	if !ok || now.After(counter.windowEnds) {
		l.attempts[addr] = &windowCounter{count: 1, windowEnds: now.Add(l.window)}
		return true, 0
	}

	counter.count++
	if counter.count > l.max {
		return false, counter.windowEnds.Sub(now)
	}
	return true, 0
}

// sweep lazily drops expired windows so the map does not grow unbounded.
func (l *LoginLimiter) sweep(now time.Time) {
	for addr, counter := range l.attempts {
		if now.After(counter.windowEnds) {
			delete(l.attempts, addr)
		}
	}
}

// Middleware rejects over-limit requests with 429 and a Retry-After hint.
func (l *LoginLimiter) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ok, retryAfter := l.Allow(c.RealIP(), time.Now())
			if !ok {
				metrics.LoginRateLimitedTotal.Inc()
				seconds := int(retryAfter.Seconds()) + 1
				c.Response().Header().Set("Retry-After", strconv.Itoa(seconds))
				return echo.NewHTTPError(http.StatusTooManyRequests, "too many login attempts, try again later")
			}
			return next(c)
		}
	}
}
