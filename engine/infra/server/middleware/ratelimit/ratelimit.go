// Package ratelimit applies a per-client request rate limit in front of the
// API. The store is in-memory: limits are per process and reset on restart,
// which is acceptable for a single-instance gateway.
package ratelimit

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	"github.com/RumanAkhtar/lms-app-backend/pkg/config"
	"github.com/RumanAkhtar/lms-app-backend/pkg/logger"
)

// Excluded paths are liveness and scrape endpoints probed by machines.
var excludedPaths = map[string]struct{}{
	"/api/health": {},
	"/metrics":    {},
}

// Manager owns the limiter instance behind the middleware.
type Manager struct {
	limiter *limiter.Limiter
	enabled bool
}

// NewManager creates a rate limit manager from configuration.
func NewManager(cfg *config.RateLimitConfig) *Manager {
	if !cfg.Enabled || cfg.Limit <= 0 {
		return &Manager{enabled: false}
	}
	period := cfg.Period
	if period <= 0 {
		period = time.Minute
	}
	rate := limiter.Rate{
		Period: period,
		Limit:  cfg.Limit,
	}
	return &Manager{
		limiter: limiter.New(memory.NewStore(), rate),
		enabled: true,
	}
}

// Middleware limits requests per client IP and exposes the standard
// X-RateLimit headers.
func (m *Manager) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !m.enabled {
			c.Next()
			return
		}
		if _, excluded := excludedPaths[c.Request.URL.Path]; excluded {
			c.Next()
			return
		}
		limiterCtx, err := m.limiter.Get(c.Request.Context(), c.ClientIP())
		if err != nil {
			log := logger.FromContext(c.Request.Context())
			log.Error("rate limiter failure, letting request through", "error", err)
			c.Next()
			return
		}
		c.Header("X-RateLimit-Limit", strconv.FormatInt(limiterCtx.Limit, 10))
		c.Header("X-RateLimit-Remaining", strconv.FormatInt(limiterCtx.Remaining, 10))
		c.Header("X-RateLimit-Reset", strconv.FormatInt(limiterCtx.Reset, 10))
		if limiterCtx.Reached {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error":   "RateLimited",
				"message": "too many requests, slow down",
			})
			return
		}
		c.Next()
	}
}
