package middleware

import (
	"net/http"

	"golang.org/x/time/rate"

	"github.com/KefouegFrank/zenithis-test-technique-backend/internal/api/httpx"
)

// RateLimit applies a process-wide token bucket of rps requests per second
// with a burst of the same size. rps <= 0 disables limiting.
func RateLimit(rps int) func(http.Handler) http.Handler {
	if rps <= 0 {
		return func(next http.Handler) http.Handler { return next }
	}
	limiter := rate.NewLimiter(rate.Limit(rps), rps)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.Allow() {
				httpx.Fail(w, http.StatusTooManyRequests, "Too many requests", "")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
