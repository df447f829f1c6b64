package pprof

import (
	"expvar"
	"net/http"
	"net/http/pprof"
)

type Handler struct {
	mux *http.ServeMux
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

// NewHandler serves the runtime profiles. It is meant to be mounted only
// when profiling is explicitly enabled.
func NewHandler() *Handler {
	mux := http.NewServeMux()

	routes := map[string]http.Handler{
		"GET /":        http.HandlerFunc(pprof.Index),
		"GET /cmdline": http.HandlerFunc(pprof.Cmdline),
		"GET /profile": http.HandlerFunc(pprof.Profile),
		"GET /symbol":  http.HandlerFunc(pprof.Symbol),
		"POST /symbol": http.HandlerFunc(pprof.Symbol),
		"GET /trace":   http.HandlerFunc(pprof.Trace),
		"GET /vars":    expvar.Handler(),
		"GET /{name}": http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			pprof.Handler(r.PathValue("name")).ServeHTTP(w, r)
		}),
	}

	for pattern, handler := range routes {
		mux.Handle(pattern, handler)
	}

	return &Handler{mux}
}

var _ http.Handler = &Handler{}
