package webui

import (
	"net/http"
	"strings"

	homeModule "github.com/bornholm/signin/internal/http/handler/webui/home"
)

type Handler struct {
	mux *http.ServeMux
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

func NewHandler(activity homeModule.Activity, funcs ...OptionFunc) *Handler {
	opts := NewOptions(funcs...)

	mux := http.NewServeMux()

	h := &Handler{
		mux: mux,
	}

	mount(mux, "/", homeModule.NewHandler(activity, opts.ActivityLimit))

	return h
}

func mount(mux *http.ServeMux, prefix string, handler http.Handler) {
	trimmed := strings.TrimSuffix(prefix, "/")

	if len(trimmed) > 0 {
		mux.Handle(prefix, http.StripPrefix(trimmed, handler))
	} else {
		mux.Handle(prefix, handler)
	}
}

var _ http.Handler = &Handler{}
