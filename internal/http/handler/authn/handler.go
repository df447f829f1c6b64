package authn

import (
	"context"
	"html/template"
	"net/http"

	"github.com/bornholm/signin/internal/http/ratelimit"
	commonComp "github.com/bornholm/signin/internal/http/handler/webui/common/component"
	"github.com/bornholm/signin/internal/identity"
	"github.com/gorilla/sessions"
	"github.com/pkg/errors"
)

type Handler struct {
	mux            *http.ServeMux
	sessionStore   sessions.Store
	sessionName    string
	providers      []Provider
	authenticator  identity.Authenticator
	journal        Journal
	socialSignIn   bool
	callbackURL    string
	signUpURL      string
	tagline        template.HTML
	trustedOrigins []string

	// submitCredentials handles credentials submissions, throttled when a
	// login limiter is configured
	submitCredentials http.Handler
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

func NewHandler(sessionStore sessions.Store, authenticator identity.Authenticator, funcs ...OptionFunc) (*Handler, error) {
	opts := NewOptions(funcs...)

	tagline, err := commonComp.Markdown(opts.Tagline)
	if err != nil {
		return nil, errors.Wrap(err, "could not render tagline")
	}

	h := &Handler{
		mux:            http.NewServeMux(),
		sessionStore:   sessionStore,
		sessionName:    opts.SessionName,
		providers:      opts.Providers,
		authenticator:  authenticator,
		journal:        opts.Journal,
		socialSignIn:   opts.SocialSignIn,
		callbackURL:    opts.CallbackURL,
		signUpURL:      opts.SignUpURL,
		tagline:        tagline,
		trustedOrigins: append([]string{opts.CallbackURL}, opts.TrustedOrigins...),
	}

	h.submitCredentials = http.HandlerFunc(h.handleCredentials)
	if opts.LoginLimiter != nil {
		throttle := ratelimit.Middleware(opts.LoginLimiter, http.HandlerFunc(h.handleTooManyAttempts), http.MethodPost)
		h.submitCredentials = throttle(h.submitCredentials)
	}

	h.mux.HandleFunc("GET /login", h.getLoginPage)
	h.mux.HandleFunc("POST /login", h.handleLoginForm)
	h.mux.Handle("GET /providers/{provider}", withContextProvider(http.HandlerFunc(h.handleProvider)))
	h.mux.Handle("GET /providers/{provider}/callback", withContextProvider(http.HandlerFunc(h.handleProviderCallback)))
	h.mux.HandleFunc("GET /logout", h.handleLogout)
	h.mux.Handle("GET /providers/{provider}/logout", withContextProvider(http.HandlerFunc(h.handleProviderLogout)))

	return h, nil
}

var _ http.Handler = &Handler{}

// withContextProvider exposes the path provider where gothic looks for it.
func withContextProvider(h http.Handler) http.Handler {
	fn := func(w http.ResponseWriter, r *http.Request) {
		provider := r.PathValue("provider")
		r = r.WithContext(context.WithValue(r.Context(), "provider", provider))
		h.ServeHTTP(w, r)
	}

	return http.HandlerFunc(fn)
}
