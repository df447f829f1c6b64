package setup

import (
	"context"
	"log/slog"

	"github.com/bornholm/signin/internal/config"
	"github.com/bornholm/signin/internal/http/ratelimit"
)

var getLoginLimiterFromConfig = createFromConfigOnce(func(ctx context.Context, conf *config.Config) (*ratelimit.Limiter, error) {
	if !conf.HTTP.RateLimit.Enabled {
		return nil, nil
	}

	return ratelimit.NewLimiter(conf.HTTP.RateLimit.Rate, conf.HTTP.RateLimit.Burst, conf.HTTP.RateLimit.TTL), nil
})

// StartLoginLimiterCleanup evicts idle clients from the login rate limiter
// until the context is canceled.
func StartLoginLimiterCleanup(ctx context.Context, conf *config.Config) error {
	limiter, err := getLoginLimiterFromConfig(ctx, conf)
	if err != nil {
		return err
	}

	if limiter == nil {
		slog.DebugContext(ctx, "login rate limit disabled")
		return nil
	}

	go limiter.Run(ctx)

	return nil
}
