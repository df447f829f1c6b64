package authn

import (
	"github.com/bornholm/signin/internal/http/handler/authn/component"
	"github.com/bornholm/signin/internal/http/ratelimit"
)

type Provider = component.Provider

type Options struct {
	Providers       []component.Provider
	SessionName     string
	SocialSignIn    bool
	CallbackURL     string
	SignUpURL       string
	Tagline         string
	TrustedOrigins  []string
	Journal         Journal
	LoginLimiter    *ratelimit.Limiter
}

type OptionFunc func(opts *Options)

func NewOptions(funcs ...OptionFunc) *Options {
	opts := &Options{
		Providers:    make([]Provider, 0),
		SessionName:  "signin_auth",
		SocialSignIn: false,
		CallbackURL:  "/",
		SignUpURL:    "/register",
	}

	for _, fn := range funcs {
		fn(opts)
	}

	return opts
}

func WithProviders(providers ...Provider) OptionFunc {
	return func(opts *Options) {
		opts.Providers = providers
	}
}

func WithSessionName(sessionName string) OptionFunc {
	return func(opts *Options) {
		opts.SessionName = sessionName
	}
}

// WithSocialSignIn opens the provider sign-in to everyone. When disabled,
// provider buttons only warn the user to use credentials.
func WithSocialSignIn(enabled bool) OptionFunc {
	return func(opts *Options) {
		opts.SocialSignIn = enabled
	}
}

// WithCallbackURL sets where users land after a provider sign-in.
func WithCallbackURL(callbackURL string) OptionFunc {
	return func(opts *Options) {
		opts.CallbackURL = callbackURL
	}
}

func WithSignUpURL(signUpURL string) OptionFunc {
	return func(opts *Options) {
		opts.SignUpURL = signUpURL
	}
}

// WithTagline sets the markdown text displayed under the login title.
func WithTagline(tagline string) OptionFunc {
	return func(opts *Options) {
		opts.Tagline = tagline
	}
}

// WithTrustedOrigins lists the origins, besides the base url, the
// identity service may redirect users to.
func WithTrustedOrigins(origins ...string) OptionFunc {
	return func(opts *Options) {
		opts.TrustedOrigins = origins
	}
}

func WithJournal(journal Journal) OptionFunc {
	return func(opts *Options) {
		opts.Journal = journal
	}
}

// WithLoginLimiter throttles the credentials form submissions per client.
func WithLoginLimiter(limiter *ratelimit.Limiter) OptionFunc {
	return func(opts *Options) {
		opts.LoginLimiter = limiter
	}
}
