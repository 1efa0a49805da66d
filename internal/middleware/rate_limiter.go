package middleware

import (
	"strings"
	"sync"
	"time"

	"finpulse-api/internal/errors"
	"finpulse-api/internal/handlers"

	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"
)

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

var (
	visitors = make(map[string]*visitor)
	mu       sync.RWMutex

	cleanupOnce sync.Once

	// Ingestion is bursty when bank webhooks replay, so the burst allowance
	// sits above the sustained per-second rate.
	requestsPerSecond = 5
	burstSize         = 10
)

// RateLimiter enforces a per-client-IP token bucket across all routes.
func RateLimiter() echo.MiddlewareFunc {
	cleanupOnce.Do(func() {
		go cleanupVisitors()
	})

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !getVisitor(getIP(c)).Allow() {
				return handlers.SendError(c, errors.SystemRateLimitExceeded)
			}
			return next(c)
		}
	}
}

// RateLimiterWithConfig overrides the sustained rate and burst size. Buckets
// created before the override keep their original settings.
func RateLimiterWithConfig(rps int, burst int) echo.MiddlewareFunc {
	mu.Lock()
	requestsPerSecond = rps
	burstSize = burst
	mu.Unlock()

	return RateLimiter()
}

func getVisitor(ip string) *rate.Limiter {
	mu.Lock()
	defer mu.Unlock()

	if v, ok := visitors[ip]; ok {
		v.lastSeen = time.Now()
		return v.limiter
	}

	limiter := rate.NewLimiter(rate.Limit(requestsPerSecond), burstSize)
	visitors[ip] = &visitor{limiter: limiter, lastSeen: time.Now()}
	return limiter
}

// getIP resolves the client address, trusting proxy headers before the socket
// peer. Only the first hop of X-Forwarded-For counts; later entries are
// appended by intermediaries and can be spoofed by the client anyway.
func getIP(c echo.Context) string {
	if xff := c.Request().Header.Get("X-Forwarded-For"); xff != "" {
		return strings.TrimSpace(strings.SplitN(xff, ",", 2)[0])
	}
	if xri := c.Request().Header.Get("X-Real-IP"); xri != "" {
		return xri
	}
	return c.RealIP()
}

func cleanupVisitors() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		mu.Lock()
		for ip, v := range visitors {
			if time.Since(v.lastSeen) > 3*time.Minute {
				delete(visitors, ip)
			}
		}
		mu.Unlock()
	}
}
