package config

import "time"

type HTTP struct {
	BaseURL   string    `env:"BASE_URL,expand" envDefault:"http://localhost:3002"`
	Address   string    `env:"ADDRESS,expand" envDefault:":3002"`
	Authn     Authn     `envPrefix:"AUTHN_"`
	Home      Home      `envPrefix:"HOME_"`
	Session   Session   `envPrefix:"SESSION_"`
	Security  Security  `envPrefix:"SECURITY_"`
	RateLimit RateLimit `envPrefix:"RATE_LIMIT_"`
	Pprof     Pprof     `envPrefix:"PPROF_"`
	// AssetsMaxAge is the browser cache lifetime of static assets
	AssetsMaxAge time.Duration `env:"ASSETS_MAX_AGE" envDefault:"1h"`
}

type Authn struct {
	Providers    AuthProviders `envPrefix:"PROVIDERS_"`
	CallbackURLs CallbackURLs  `envPrefix:"CALLBACK_URL_"`
	SignUpURL    string        `env:"SIGN_UP_URL" envDefault:"/register"`
	Tagline      string        `env:"TAGLINE" envDefault:"Be social, outgoing and fun, explore events and get whats fits you right."`
}

type Home struct {
	ActivityLimit int `env:"ACTIVITY_LIMIT" envDefault:"10"`
}

type CallbackURLs struct {
	Development string `env:"DEVELOPMENT" envDefault:"http://localhost:3000"`
	Production  string `env:"PRODUCTION" envDefault:"https://events-all.vercel.app"`
}

type Session struct {
	Keys   []string `env:"KEYS" envSeparator:","`
	Cookie Cookie   `envPrefix:"COOKIE_"`
}

type Cookie struct {
	Path     string        `env:"PATH" envDefault:"/"`
	HTTPOnly bool          `env:"HTTP_ONLY" envDefault:"true"`
	Secure   bool          `env:"SECURE" envDefault:"false"`
	MaxAge   time.Duration `env:"MAX_AGE" envDefault:"24h"`
}

type Security struct {
	CSRF    CSRF    `envPrefix:"CSRF_"`
	Headers Headers `envPrefix:"HEADERS_"`
}

type CSRF struct {
	Enabled        bool     `env:"ENABLED" envDefault:"true"`
	Key            string   `env:"KEY"`
	TrustedOrigins []string `env:"TRUSTED_ORIGINS" envSeparator:","`
}

type Headers struct {
	FrameOptions          string `env:"FRAME_OPTIONS" envDefault:"DENY"`
	ContentTypeOptions    string `env:"CONTENT_TYPE_OPTIONS" envDefault:"nosniff"`
	ReferrerPolicy        string `env:"REFERRER_POLICY" envDefault:"strict-origin-when-cross-origin"`
	ContentSecurityPolicy string `env:"CONTENT_SECURITY_POLICY" envDefault:"default-src 'self'; img-src 'self' data:; style-src 'self'; script-src 'self'"`
}

type RateLimit struct {
	Enabled bool          `env:"ENABLED" envDefault:"true"`
	Rate    float64       `env:"RATE" envDefault:"0.5"`
	Burst   int           `env:"BURST" envDefault:"5"`
	TTL     time.Duration `env:"TTL" envDefault:"3m"`
}

type Pprof struct {
	Enabled bool `env:"ENABLED" envDefault:"false"`
}

type AuthProviders struct {
	Google OAuth2Provider `envPrefix:"GOOGLE_"`
	Github OAuth2Provider `envPrefix:"GITHUB_"`
	Gitea  GiteaProvider  `envPrefix:"GITEA_"`
	OIDC   OIDCProvider   `envPrefix:"OIDC_"`
}

type OAuth2Provider struct {
	Key    string   `env:"KEY"`
	Secret string   `env:"SECRET"`
	Scopes []string `env:"SCOPES" envSeparator:","`
}

type OIDCProvider struct {
	OAuth2Provider
	DiscoveryURL string `env:"DISCOVERY_URL"`
	Icon         string `env:"ICON"`
	Label        string `env:"LABEL" envDefault:"OpenID Connect"`
}

type GiteaProvider struct {
	OAuth2Provider
	TokenURL   string `env:"TOKEN_URL"`
	AuthURL    string `env:"AUTH_URL"`
	ProfileURL string `env:"PROFILE_URL"`
	Label      string `env:"LABEL" envDefault:"Gitea"`
}
