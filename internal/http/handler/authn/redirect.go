package authn

import (
	"net/http"
	"net/url"
	"strings"

	httpCtx "github.com/bornholm/signin/internal/http/context"
	commonComp "github.com/bornholm/signin/internal/http/handler/webui/common/component"
	httpURL "github.com/bornholm/signin/internal/http/url"
)

// redirectURL resolves relative urls against the base url and keeps the
// absolute ones belonging to a trusted origin. Others give the home url.
func (h *Handler) redirectURL(r *http.Request, rawURL string) string {
	fallback := h.homeURL(r)

	if rawURL == "" || strings.HasPrefix(rawURL, "//") || strings.Contains(rawURL, `\`) {
		return fallback
	}

	u, err := url.Parse(rawURL)
	if err != nil {
		return fallback
	}

	if !u.IsAbs() {
		if u.Host == "" && strings.HasPrefix(u.Path, "/") {
			return string(commonComp.BaseURL(r.Context(), commonComp.WithJoinedPath(u.Path), withQueryOf(u)))
		}

		return fallback
	}

	trusted := append([]string{httpCtx.BaseURL(r.Context()).String()}, h.trustedOrigins...)

	for _, rawOrigin := range trusted {
		origin, err := url.Parse(rawOrigin)
		if err != nil {
			continue
		}

		if strings.EqualFold(origin.Scheme, u.Scheme) && strings.EqualFold(origin.Host, u.Host) {
			return u.String()
		}
	}

	return fallback
}

// withQueryOf carries the query and fragment of u over to the mutated url.
func withQueryOf(u *url.URL) httpURL.MutationFunc {
	return func(mutated *url.URL) {
		mutated.RawQuery = u.RawQuery
		mutated.Fragment = u.Fragment
	}
}
