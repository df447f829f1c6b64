package authn

import (
	"log/slog"
	"net/http"

	commonComp "github.com/bornholm/signin/internal/http/handler/webui/common/component"
	"github.com/pkg/errors"
)

// Middleware only lets requests carrying a session user through, others
// are redirected to the login page.
func (h *Handler) Middleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		fn := func(w http.ResponseWriter, r *http.Request) {
			user, err := h.retrieveSessionUser(r)
			if err != nil {
				if !errors.Is(err, errSessionNotFound) {
					slog.ErrorContext(r.Context(), "could not retrieve user from session", slog.Any("error", errors.WithStack(err)))
				}

				http.Redirect(w, r, h.loginURL(r), http.StatusSeeOther)
				return
			}

			ctx := r.Context()
			ctx = WithContextUser(ctx, user)

			r = r.WithContext(ctx)

			next.ServeHTTP(w, r)
		}

		return http.HandlerFunc(fn)
	}
}

func (h *Handler) loginURL(r *http.Request) string {
	return string(commonComp.BaseURL(r.Context(), commonComp.WithJoinedPath("auth", "login")))
}

func (h *Handler) homeURL(r *http.Request) string {
	return string(commonComp.BaseURL(r.Context(), commonComp.WithJoinedPath()))
}

func (h *Handler) providersURL(r *http.Request) string {
	return string(commonComp.BaseURL(r.Context(), commonComp.WithJoinedPath("auth", "providers")))
}
