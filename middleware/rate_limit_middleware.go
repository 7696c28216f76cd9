package middleware

import (
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"newsdeck/utils/logger"

	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"
)

// ClientRateLimitConfig bounds requests per client IP.
type ClientRateLimitConfig struct {
	RequestsPerSecond float64
	Burst             int
	// Paths with one of these prefixes are never limited.
	SkipPrefixes []string
	// Idle limiters are evicted after this long.
	IdleTTL time.Duration
}

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// ClientRateLimitMiddleware returns 429 once a client exceeds its token bucket.
// RequestsPerSecond <= 0 disables it.
func ClientRateLimitMiddleware(cfg ClientRateLimitConfig) echo.MiddlewareFunc {
	if cfg.RequestsPerSecond <= 0 {
		return func(next echo.HandlerFunc) echo.HandlerFunc {
			return next
		}
	}
	if cfg.Burst <= 0 {
		cfg.Burst = 1
	}
	if cfg.IdleTTL <= 0 {
		cfg.IdleTTL = 10 * time.Minute
	}

	var mu sync.Mutex
	limiters := make(map[string]*clientLimiter)
	lastSweep := time.Now()

	allow := func(ip string, now time.Time) bool {
		mu.Lock()
		defer mu.Unlock()

		if now.Sub(lastSweep) > cfg.IdleTTL {
			for key, l := range limiters {
				if now.Sub(l.lastSeen) > cfg.IdleTTL {
					delete(limiters, key)
				}
			}
			lastSweep = now
		}

		l, ok := limiters[ip]
		if !ok {
			l = &clientLimiter{limiter: rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), cfg.Burst)}
			limiters[ip] = l
		}
		l.lastSeen = now
		return l.limiter.AllowN(now, 1)
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			path := c.Request().URL.Path
			for _, prefix := range cfg.SkipPrefixes {
				if strings.HasPrefix(path, prefix) {
					return next(c)
				}
			}

			ip := clientIP(c)
			if !allow(ip, time.Now()) {
				logger.Logger.WarnContext(c.Request().Context(), "client rate limit exceeded", "client_ip", ip, "path", path)
				return echo.NewHTTPError(http.StatusTooManyRequests, "Too many requests")
			}
			return next(c)
		}
	}
}

// clientIP prefers X-Real-IP, then the first valid X-Forwarded-For entry,
// then the socket address.
func clientIP(c echo.Context) string {
	req := c.Request()
	if ip := strings.TrimSpace(req.Header.Get("X-Real-IP")); net.ParseIP(ip) != nil {
		return ip
	}
	if xff := req.Header.Get("X-Forwarded-For"); xff != "" {
		for _, ip := range strings.Split(xff, ",") {
			ip = strings.TrimSpace(ip)
			if net.ParseIP(ip) != nil {
				return ip
			}
		}
	}
	if host, _, err := net.SplitHostPort(req.RemoteAddr); err == nil && net.ParseIP(host) != nil {
		return host
	}
	return "unknown"
}
