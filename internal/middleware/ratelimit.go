package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
)

// sweepEvery controls how often Allow walks the whole attempts map to drop
// clients that went quiet, keeping memory bounded under sustained abuse.
const sweepEvery = 256

// LoginRateLimiter tracks login attempts per client IP over a sliding
// window.  State is process-local and resets on restart, which is
// acceptable at this scale.
type LoginRateLimiter struct {
	mu       sync.Mutex
	max      int
	window   time.Duration
	attempts map[string][]time.Time
	calls    int
	now      func() time.Time // replaced in tests
}

// NewLoginRateLimiter allows up to max attempts per client within window.
func NewLoginRateLimiter(max int, window time.Duration) *LoginRateLimiter {
	return &LoginRateLimiter{
		max:      max,
		window:   window,
		attempts: make(map[string][]time.Time),
		now:      time.Now,
	}
}

// Allow records an attempt for ip and reports whether it is within the
// limit.  Rejected attempts are not recorded, so a blocked client regains
// access as soon as older attempts slide out of the window.
func (l *LoginRateLimiter) Allow(ip string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	l.calls++
	if l.calls%sweepEvery == 0 {
		l.sweep(now)
	}

	kept := l.prune(l.attempts[ip], now)
	if len(kept) >= l.max {
		l.attempts[ip] = kept
		return false
	}
	l.attempts[ip] = append(kept, now)
	return true
}

// prune drops timestamps that fell out of the window.
func (l *LoginRateLimiter) prune(ts []time.Time, now time.Time) []time.Time {
	cutoff := now.Add(-l.window)
	kept := ts[:0]
	for _, t := range ts {
		if t.After(cutoff) {
			kept = append(kept, t)
		}
	}
	return kept
}

// sweep evicts IPs whose every attempt is stale and stores the pruned
// slices back, since prune compacts in place.  Caller holds the lock.
func (l *LoginRateLimiter) sweep(now time.Time) {
	for ip, ts := range l.attempts {
		if kept := l.prune(ts, now); len(kept) == 0 {
			delete(l.attempts, ip)
		} else {
			l.attempts[ip] = kept
		}
	}
}

// Middleware rejects over-limit clients with 429 before the handler runs,
// regardless of credential correctness.
func (l *LoginRateLimiter) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ip := c.RealIP()
			if ip == "" {
				ip = "unknown"
			}
			if !l.Allow(ip) {
				return c.JSON(http.StatusTooManyRequests, echo.Map{"error": "Trop de tentatives. Attendez 15 minutes."})
			}
			return next(c)
		}
	}
}
