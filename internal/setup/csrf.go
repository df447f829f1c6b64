package setup

import (
	"context"
	"crypto/sha256"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/bornholm/signin/internal/config"
	"github.com/bornholm/signin/internal/crypto"
	"github.com/bornholm/signin/internal/http/handler/webui/common"
	"github.com/gorilla/csrf"
	"github.com/invopop/ctxi18n/i18n"
	"github.com/pkg/errors"
)

const csrfFieldName = "csrf_token"

func getCSRFMiddlewareFromConfig(ctx context.Context, conf *config.Config) (func(http.Handler) http.Handler, error) {
	var key []byte
	if conf.HTTP.Security.CSRF.Key == "" {
		slog.WarnContext(ctx, "no csrf key configured, forms will not survive a restart")

		random, err := crypto.RandomBytes(32)
		if err != nil {
			return nil, errors.Wrap(err, "could not generate csrf key")
		}

		key = random
	} else {
		sum := sha256.Sum256([]byte(conf.HTTP.Security.CSRF.Key))
		key = sum[:]
	}

	baseURL, err := url.Parse(conf.HTTP.BaseURL)
	if err != nil {
		return nil, errors.Wrapf(err, "could not parse base url '%s'", conf.HTTP.BaseURL)
	}

	plaintext := baseURL.Scheme == "http"

	protect := csrf.Protect(
		key,
		csrf.Secure(!plaintext),
		csrf.Path("/"),
		csrf.FieldName(csrfFieldName),
		csrf.SameSite(csrf.SameSiteLaxMode),
		csrf.TrustedOrigins(trustedHosts(conf.HTTP.Security.CSRF.TrustedOrigins)),
		csrf.ErrorHandler(http.HandlerFunc(handleCSRFFailure)),
	)

	return func(next http.Handler) http.Handler {
		protected := protect(next)

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if plaintext {
				r = csrf.PlaintextHTTPRequest(r)
			}

			protected.ServeHTTP(w, r)
		})
	}, nil
}

func handleCSRFFailure(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	reason := csrf.FailureReason(r)
	if reason == nil {
		reason = errors.New("csrf validation failed")
	}

	slog.WarnContext(ctx, "csrf validation failed", slog.Any("error", errors.WithStack(reason)))

	common.HandleError(w, r, common.NewError(reason, i18n.T(ctx, "common.error.csrf"), http.StatusForbidden))
}

// trustedHosts returns the hosts of the given origins, gorilla/csrf
// comparing request origins by host.
func trustedHosts(origins []string) []string {
	hosts := make([]string, 0, len(origins))

	for _, o := range origins {
		o = strings.TrimSpace(o)
		if o == "" {
			continue
		}

		if u, err := url.Parse(o); err == nil && u.Host != "" {
			hosts = append(hosts, u.Host)
			continue
		}

		hosts = append(hosts, o)
	}

	return hosts
}
