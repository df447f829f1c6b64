package setup

import (
	"context"

	"github.com/bornholm/signin/internal/config"
	"github.com/bornholm/signin/internal/http"
	"github.com/bornholm/signin/internal/http/handler/health"
	"github.com/bornholm/signin/internal/http/handler/metrics"
	"github.com/bornholm/signin/internal/http/handler/webui"
	"github.com/bornholm/signin/internal/http/handler/webui/common"
	"github.com/bornholm/signin/internal/http/i18n"
	"github.com/bornholm/signin/internal/http/pprof"
	"github.com/bornholm/signin/internal/http/security"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
)

func NewHTTPServerFromConfig(ctx context.Context, conf *config.Config) (*http.Server, error) {
	authn, err := getAuthnHandlerFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.Wrap(err, "could not configure authn handler from config")
	}

	store, err := getStoreFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.Wrap(err, "could not configure store from config")
	}

	journal, err := getJournalFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.Wrap(err, "could not configure sign-in journal from config")
	}

	middlewares := []http.Middleware{
		security.Middleware(security.Headers{
			FrameOptions:          conf.HTTP.Security.Headers.FrameOptions,
			ContentTypeOptions:    conf.HTTP.Security.Headers.ContentTypeOptions,
			ReferrerPolicy:        conf.HTTP.Security.Headers.ReferrerPolicy,
			ContentSecurityPolicy: conf.HTTP.Security.Headers.ContentSecurityPolicy,
		}),
		i18n.Middleware(conf.I18n.DefaultLanguage),
	}

	if conf.HTTP.Security.CSRF.Enabled {
		csrfMiddleware, err := getCSRFMiddlewareFromConfig(ctx, conf)
		if err != nil {
			return nil, errors.Wrap(err, "could not configure csrf middleware from config")
		}

		middlewares = append(middlewares, csrfMiddleware)
	}

	authnMiddleware := authn.Middleware()

	home := webui.NewHandler(journal, webui.WithActivityLimit(conf.HTTP.Home.ActivityLimit))

	options := []http.OptionFunc{
		http.WithAddress(conf.HTTP.Address),
		http.WithBaseURL(conf.HTTP.BaseURL),
		http.WithMiddlewares(middlewares...),
		http.WithMount("/assets/", common.NewHandler(conf.HTTP.AssetsMaxAge)),
		http.WithMount("/auth/", authn),
		http.WithMount("/health", health.NewHandler(map[string]health.Pinger{"store": store})),
		http.WithMount("/", authnMiddleware(home)),
	}

	if conf.Metrics.Enabled {
		collector := metrics.NewJournalCollector(journal, conf.Metrics.JournalWindow)
		if err := prometheus.Register(collector); err != nil {
			return nil, errors.Wrap(err, "could not register sign-in journal collector")
		}

		options = append(options, http.WithMount("/metrics/", metrics.NewHandler(nil)))
	}

	if conf.HTTP.Pprof.Enabled {
		options = append(options, http.WithMount("/pprof/", authnMiddleware(pprof.NewHandler())))
	}

	server := http.NewServer(options...)

	return server, nil
}
