package middleware

import (
	"context"
	"net"
	"net/http"
	"time"

	"github.com/stagepass/core-service/internal/transport/http/response"
)

// Limiter is the shared fixed-window limiter contract (redis-backed in
// production, fail-open on backend errors).
type Limiter interface {
	AllowRequest(ctx context.Context, ip string, limit int, window time.Duration) (bool, error)
}

func RateLimit(limiter Limiter, limit int, window time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip, _, err := net.SplitHostPort(r.RemoteAddr)
			if err != nil {
				ip = r.RemoteAddr
			}

			ok, _ := limiter.AllowRequest(r.Context(), ip, limit, window)
			if !ok {
				response.Fail(w, http.StatusTooManyRequests, "too many requests", "rate_limited")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
