package setup

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/bornholm/signin/internal/config"
	"github.com/bornholm/signin/internal/http/handler/authn"
	"github.com/markbates/goth"
	"github.com/markbates/goth/gothic"
	"github.com/markbates/goth/providers/gitea"
	"github.com/markbates/goth/providers/github"
	"github.com/markbates/goth/providers/google"
	"github.com/markbates/goth/providers/openidConnect"
	"github.com/pkg/errors"
)

var getAuthnHandlerFromConfig = createFromConfigOnce(func(ctx context.Context, conf *config.Config) (*authn.Handler, error) {
	sessionStore, err := getSessionStoreFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.Wrap(err, "could not configure session store from config")
	}

	gothProviders, providers, err := getProvidersFromConfig(conf)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	goth.UseProviders(gothProviders...)
	gothic.Store = sessionStore

	authenticator, err := getIdentityClientFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.Wrap(err, "could not configure identity client from config")
	}

	journal, err := getJournalFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.Wrap(err, "could not configure sign-in journal from config")
	}

	limiter, err := getLoginLimiterFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.Wrap(err, "could not configure login rate limiter from config")
	}

	socialSignIn := conf.IsDevelopment()
	if !socialSignIn {
		slog.InfoContext(ctx, "social sign-in restricted", slog.String("environment", conf.Environment))
	}

	opts := []authn.OptionFunc{
		authn.WithProviders(providers...),
		authn.WithSocialSignIn(socialSignIn),
		authn.WithCallbackURL(conf.CallbackURL()),
		authn.WithTrustedOrigins(conf.HTTP.Authn.CallbackURLs.Development, conf.HTTP.Authn.CallbackURLs.Production),
		authn.WithSignUpURL(conf.HTTP.Authn.SignUpURL),
		authn.WithTagline(conf.HTTP.Authn.Tagline),
		authn.WithJournal(journal),
	}

	if limiter != nil {
		opts = append(opts, authn.WithLoginLimiter(limiter))
	}

	handler, err := authn.NewHandler(sessionStore, authenticator, opts...)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return handler, nil
})

func getProvidersFromConfig(conf *config.Config) ([]goth.Provider, []authn.Provider, error) {
	gothProviders := make([]goth.Provider, 0)
	providers := make([]authn.Provider, 0)

	callbackURL := func(provider string) string {
		return fmt.Sprintf("%s/auth/providers/%s/callback", conf.HTTP.BaseURL, provider)
	}

	scopes := func(configured []string, defaults ...string) []string {
		if len(configured) > 0 {
			return configured
		}
		return defaults
	}

	if conf.HTTP.Authn.Providers.Google.Key != "" && conf.HTTP.Authn.Providers.Google.Secret != "" {
		googleProvider := google.New(
			conf.HTTP.Authn.Providers.Google.Key,
			conf.HTTP.Authn.Providers.Google.Secret,
			callbackURL("google"),
			scopes(conf.HTTP.Authn.Providers.Google.Scopes, "email", "profile")...,
		)

		gothProviders = append(gothProviders, googleProvider)

		providers = append(providers, authn.Provider{
			ID:    googleProvider.Name(),
			Label: "Google",
			Icon:  "google.svg",
		})
	}

	if conf.HTTP.Authn.Providers.Github.Key != "" && conf.HTTP.Authn.Providers.Github.Secret != "" {
		githubProvider := github.New(
			conf.HTTP.Authn.Providers.Github.Key,
			conf.HTTP.Authn.Providers.Github.Secret,
			callbackURL("github"),
			scopes(conf.HTTP.Authn.Providers.Github.Scopes, "user:email")...,
		)

		gothProviders = append(gothProviders, githubProvider)

		providers = append(providers, authn.Provider{
			ID:    githubProvider.Name(),
			Label: "Github",
			Icon:  "github.svg",
		})
	}

	if conf.HTTP.Authn.Providers.Gitea.Key != "" && conf.HTTP.Authn.Providers.Gitea.Secret != "" {
		giteaProvider := gitea.NewCustomisedURL(
			conf.HTTP.Authn.Providers.Gitea.Key,
			conf.HTTP.Authn.Providers.Gitea.Secret,
			callbackURL("gitea"),
			conf.HTTP.Authn.Providers.Gitea.AuthURL,
			conf.HTTP.Authn.Providers.Gitea.TokenURL,
			conf.HTTP.Authn.Providers.Gitea.ProfileURL,
			conf.HTTP.Authn.Providers.Gitea.Scopes...,
		)

		gothProviders = append(gothProviders, giteaProvider)

		providers = append(providers, authn.Provider{
			ID:    giteaProvider.Name(),
			Label: conf.HTTP.Authn.Providers.Gitea.Label,
		})
	}

	if conf.HTTP.Authn.Providers.OIDC.Key != "" && conf.HTTP.Authn.Providers.OIDC.Secret != "" {
		oidcProvider, err := openidConnect.New(
			conf.HTTP.Authn.Providers.OIDC.Key,
			conf.HTTP.Authn.Providers.OIDC.Secret,
			callbackURL("openid-connect"),
			conf.HTTP.Authn.Providers.OIDC.DiscoveryURL,
			scopes(conf.HTTP.Authn.Providers.OIDC.Scopes, "openid", "email", "profile")...,
		)
		if err != nil {
			return nil, nil, errors.Wrap(err, "could not configure oidc provider")
		}

		gothProviders = append(gothProviders, oidcProvider)

		providers = append(providers, authn.Provider{
			ID:    oidcProvider.Name(),
			Label: conf.HTTP.Authn.Providers.OIDC.Label,
			Icon:  conf.HTTP.Authn.Providers.OIDC.Icon,
		})
	}

	return gothProviders, providers, nil
}
