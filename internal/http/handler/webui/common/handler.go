package common

import (
	"embed"
	"fmt"
	"io/fs"
	"net/http"
	"time"
)

//go:embed assets/*
var assetsFS embed.FS

// Handler serves the static assets shared by every page.
type Handler struct {
	mux *http.ServeMux
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

func NewHandler(maxAge time.Duration) *Handler {
	handler := &Handler{
		mux: http.NewServeMux(),
	}

	assets, err := fs.Sub(assetsFS, "assets")
	if err != nil {
		panic(err)
	}

	fileServer := http.FileServerFS(assets)
	cacheControl := fmt.Sprintf("public, max-age=%d", int(maxAge.Seconds()))

	handler.mux.Handle("GET /", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", cacheControl)
		fileServer.ServeHTTP(w, r)
	}))

	return handler
}

var _ http.Handler = &Handler{}
