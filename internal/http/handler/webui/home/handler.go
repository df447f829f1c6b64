package home

import (
	"context"
	"net/http"

	"github.com/bornholm/signin/internal/store"
)

// Activity lists the sign-in events of an account, most recent first.
type Activity interface {
	ListByEmail(ctx context.Context, email string, limit int) ([]*store.SignInEvent, error)
}

type Handler struct {
	mux           *http.ServeMux
	activity      Activity
	activityLimit int
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

func NewHandler(activity Activity, activityLimit int) *Handler {
	h := &Handler{
		mux:           http.NewServeMux(),
		activity:      activity,
		activityLimit: activityLimit,
	}

	h.mux.HandleFunc("GET /{$}", h.getIndexPage)

	return h
}

var _ http.Handler = &Handler{}
