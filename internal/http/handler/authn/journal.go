package authn

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/bornholm/signin/internal/http/ratelimit"
	"github.com/bornholm/signin/internal/store"
	"github.com/pkg/errors"
)

// Journal keeps track of sign-in attempts.
type Journal interface {
	Record(ctx context.Context, event *store.SignInEvent) error
}

func (h *Handler) record(ctx context.Context, r *http.Request, method store.SignInMethod, email string, outcome store.SignInOutcome, status int) {
	signInAttempts.WithLabelValues(string(method), string(outcome)).Inc()

	slog.InfoContext(ctx, "sign-in attempt", slog.String("method", string(method)), slog.String("outcome", string(outcome)), slog.Int("status", status))

	if h.journal == nil {
		return
	}

	event := store.NewSignInEvent(method, email, outcome, status, ratelimit.ClientIP(r))

	if err := h.journal.Record(ctx, event); err != nil {
		slog.ErrorContext(ctx, "could not record sign-in event", slog.Any("error", errors.WithStack(err)))
	}
}
