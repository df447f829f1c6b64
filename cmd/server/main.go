package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/bornholm/signin/internal/config"
	"github.com/bornholm/signin/internal/setup"
	"github.com/bornholm/signin/internal/slogx"
	_ "github.com/joho/godotenv/autoload"
	"github.com/pkg/errors"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	conf, err := config.Parse()
	if err != nil {
		slog.ErrorContext(ctx, "could not parse config", slog.Any("error", errors.WithStack(err)))
		os.Exit(1)
	}

	logger := slog.New(slogx.ContextHandler{
		Handler: slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level:     conf.Logger.Level,
			AddSource: true,
		}),
	})

	slog.SetDefault(logger)

	slog.DebugContext(ctx, "using configuration", slog.String("environment", conf.Environment), slog.String("baseURL", conf.HTTP.BaseURL))

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)

	go func() {
		slog.InfoContext(ctx, "use ctrl+c to interrupt")
		<-sig
		cancel()
	}()

	if err := setup.StartLoginLimiterCleanup(ctx, conf); err != nil {
		slog.ErrorContext(ctx, "could not start login rate limiter", slogx.Error(errors.WithStack(err)))
		os.Exit(1)
	}

	if err := setup.StartJournalRetention(ctx, conf); err != nil {
		slog.ErrorContext(ctx, "could not start sign-in journal retention", slogx.Error(errors.WithStack(err)))
		os.Exit(1)
	}

	server, err := setup.NewHTTPServerFromConfig(ctx, conf)
	if err != nil {
		slog.ErrorContext(ctx, "could not setup http server", slogx.Error(errors.WithStack(err)))
		os.Exit(1)
	}

	slog.InfoContext(ctx, "starting server", slog.String("address", conf.HTTP.Address), slog.Bool("socialSignIn", conf.IsDevelopment()))

	if err := server.Run(ctx); err != nil {
		slog.Error("could not run server", slogx.Error(errors.WithStack(err)))
		os.Exit(1)
	}
}
