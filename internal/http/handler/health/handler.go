package health

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/pkg/errors"
)

// Pinger checks a dependency is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Handler struct {
	mux     *http.ServeMux
	pingers map[string]Pinger
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

func NewHandler(pingers map[string]Pinger) *Handler {
	h := &Handler{
		mux:     http.NewServeMux(),
		pingers: pingers,
	}

	h.mux.HandleFunc("GET /", h.getHealthCheck)

	return h
}

type healthStatus struct {
	Status    string `json:"status"`
	Error     string `json:"error,omitempty"`
	Timestamp string `json:"timestamp"`
}

func (h *Handler) getHealthCheck(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	status := healthStatus{
		Status:    "healthy",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}

	code := http.StatusOK

	for name, pinger := range h.pingers {
		if err := pinger.Ping(ctx); err != nil {
			slog.ErrorContext(ctx, "health check failed", slog.String("dependency", name), slog.Any("error", errors.WithStack(err)))
			status.Status = "unhealthy"
			status.Error = name + " unavailable"
			code = http.StatusServiceUnavailable
			break
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(status); err != nil {
		slog.ErrorContext(ctx, "could not encode health status", slog.Any("error", errors.WithStack(err)))
	}
}

var _ http.Handler = &Handler{}
