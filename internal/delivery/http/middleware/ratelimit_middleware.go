package middleware

import (
	"net"
	"net/http"
	"strings"

	"safeclinic/config"
	"safeclinic/pkg/response"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// rateLimitScript increments the per-client counter and arms the window
// expiry atomically. KEYS[1] = counter key, ARGV[1] = window in millis.
var rateLimitScript = redis.NewScript(`
local current = redis.call('INCR', KEYS[1])
if current == 1 then
	redis.call('PEXPIRE', KEYS[1], ARGV[1])
end
return current
`)

// RateLimitMiddleware applies a fixed-window request limit per client IP,
// counted in Redis so the limit holds across instances.
type RateLimitMiddleware struct {
	log         *logrus.Logger
	redisClient *redis.Client
	window      int64
	max         int64
}

func NewRateLimitMiddleware(log *logrus.Logger, redisClient *redis.Client, cfg config.RateLimitConfig) *RateLimitMiddleware {
	return &RateLimitMiddleware{
		log:         log,
		redisClient: redisClient,
		window:      cfg.Window.Milliseconds(),
		max:         int64(cfg.Max),
	}
}

func (m *RateLimitMiddleware) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := "ratelimit:" + clientIP(r)

		count, err := rateLimitScript.Run(r.Context(), m.redisClient, []string{key}, m.window).Int64()
		if err != nil {
			// Fail open: a Redis outage must not take down the API.
			m.log.Warnf("Rate limit check failed: %+v", err)
			next.ServeHTTP(w, r)
			return
		}

		if count > m.max {
			response.TooManyRequests(w, "Muitas requisições. Tente novamente mais tarde.")
			return
		}

		next.ServeHTTP(w, r)
	})
}

// clientIP resolves the originating address, trusting X-Forwarded-For when a
// proxy is in front.
func clientIP(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		parts := strings.Split(forwarded, ",")
		return strings.TrimSpace(parts[0])
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
