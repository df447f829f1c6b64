package ratelimit

import (
	"log/slog"
	"net"
	"net/http"
)

// Middleware rejects requests of clients exceeding the limiter allowance.
// Requests matching none of the given methods pass through untouched.
// The limited handler is served instead of the next one when set.
func Middleware(limiter *Limiter, limited http.Handler, methods ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		fn := func(w http.ResponseWriter, r *http.Request) {
			if !matchMethod(r.Method, methods) {
				next.ServeHTTP(w, r)
				return
			}

			key := ClientIP(r)

			if !limiter.Allow(key) {
				slog.WarnContext(r.Context(), "rate limit exceeded", slog.String("client", key))

				if limited != nil {
					limited.ServeHTTP(w, r)
					return
				}

				http.Error(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
				return
			}

			next.ServeHTTP(w, r)
		}

		return http.HandlerFunc(fn)
	}
}

func ClientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}

	return host
}

func matchMethod(method string, methods []string) bool {
	if len(methods) == 0 {
		return true
	}

	for _, m := range methods {
		if m == method {
			return true
		}
	}

	return false
}
