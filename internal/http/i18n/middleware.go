package i18n

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/bornholm/signin/internal/slogx"
	"github.com/invopop/ctxi18n"
)

// Middleware localizes the request context from its Accept-Language header,
// falling back to defaultLang.
func Middleware(defaultLang string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		fn := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			lang := defaultLang

			if acceptLanguage := r.Header.Get("Accept-Language"); acceptLanguage != "" {
				lang = acceptLanguage
			}

			ctx := WithLocale(r.Context(), lang, defaultLang)

			next.ServeHTTP(w, r.WithContext(ctx))
		})

		return http.HandlerFunc(fn)
	}
}

// WithLocale returns a context using the first available locale among the
// given ones. The context is returned untouched if none is available.
func WithLocale(ctx context.Context, langs ...string) context.Context {
	for _, lang := range langs {
		localized, err := ctxi18n.WithLocale(ctx, lang)
		if err == nil {
			return localized
		}

		slog.WarnContext(ctx, "could not set locale", slog.String("lang", lang), slogx.Error(err))
	}

	return ctx
}
