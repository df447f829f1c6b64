package security

import "net/http"

type Headers struct {
	FrameOptions          string
	ContentTypeOptions    string
	ReferrerPolicy        string
	ContentSecurityPolicy string
	StrictTransport       string
}

// Middleware sets the non-empty security headers on every response.
func Middleware(headers Headers) func(http.Handler) http.Handler {
	values := map[string]string{
		"X-Frame-Options":           headers.FrameOptions,
		"X-Content-Type-Options":    headers.ContentTypeOptions,
		"Referrer-Policy":           headers.ReferrerPolicy,
		"Content-Security-Policy":   headers.ContentSecurityPolicy,
		"Strict-Transport-Security": headers.StrictTransport,
	}

	for name, value := range values {
		if value == "" {
			delete(values, name)
		}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			for name, value := range values {
				w.Header().Set(name, value)
			}

			next.ServeHTTP(w, r)
		})
	}
}
