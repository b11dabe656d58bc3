package middleware

import (
	"strings"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"

	apperrors "slidealbum-service/app/utils/errors"
)

// RateLimiter applies per-IP request limits, with a much tighter budget on
// the login endpoint where credential stuffing would land.
type RateLimiter struct {
	visitors map[string]*visitor
	mutex    sync.Mutex
}

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// NewRateLimiter creates a rate limiter and starts its cleanup loop.
func NewRateLimiter() *RateLimiter {
	rl := &RateLimiter{
		visitors: make(map[string]*visitor),
	}
	go rl.cleanupVisitors()
	return rl
}

// RateLimit returns the Echo middleware enforcing the limits.
func (rl *RateLimiter) RateLimit() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ip := c.RealIP()

			var limit rate.Limit
			var burst int

			switch {
			case strings.HasSuffix(c.Request().URL.Path, "/login"):
				limit = rate.Every(time.Minute)
				burst = 5
			default:
				limit = rate.Every(time.Second)
				burst = 20
			}

			if !rl.allow(ip, c.Request().URL.Path, limit, burst) {
				return apperrors.ErrRateLimitExceeded
			}
			return next(c)
		}
	}
}

// allow keys visitors by ip and path class so the login budget is not
// consumed by ordinary traffic from the same address.
func (rl *RateLimiter) allow(ip, path string, limit rate.Limit, burst int) bool {
	key := ip
	if strings.HasSuffix(path, "/login") {
		key = ip + "|login"
	}

	rl.mutex.Lock()
	defer rl.mutex.Unlock()

	v, exists := rl.visitors[key]
	if !exists {
		v = &visitor{limiter: rate.NewLimiter(limit, burst)}
		rl.visitors[key] = v
	}
	v.lastSeen = time.Now()
	return v.limiter.Allow()
}

func (rl *RateLimiter) cleanupVisitors() {
	for {
		time.Sleep(time.Minute)

		rl.mutex.Lock()
		for key, v := range rl.visitors {
			if time.Since(v.lastSeen) > 3*time.Minute {
				delete(rl.visitors, key)
			}
		}
		rl.mutex.Unlock()
	}
}
