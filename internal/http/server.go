package http

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/xid"
	sloghttp "github.com/samber/slog-http"

	httpCtx "github.com/bornholm/signin/internal/http/context"
	"github.com/bornholm/signin/internal/slogx"
)

const requestIDHeader = "X-Request-Id"

type Server struct {
	opts *Options
}

func (s *Server) Handler() http.Handler {
	mux := &http.ServeMux{}
	for mountpoint, handler := range s.opts.Mounts {
		mount(mux, mountpoint, handler)
	}

	var handler http.Handler = mux

	for i := len(s.opts.Middlewares) - 1; i >= 0; i-- {
		handler = s.opts.Middlewares[i](handler)
	}

	handler = sloghttp.Recovery(handler)
	handler = sloghttp.New(slog.Default())(handler)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			requestID := r.Header.Get(requestIDHeader)
			if requestID == "" {
				requestID = xid.New().String()
			}

			w.Header().Set(requestIDHeader, requestID)

			ctx = slogx.WithAttrs(ctx, slog.String("requestID", requestID))
			ctx = httpCtx.SetBaseURL(ctx, s.opts.BaseURL)
			ctx = httpCtx.SetCurrentURL(ctx, r.URL)

			r = r.WithContext(ctx)

			next.ServeHTTP(w, r)
		})
	}(handler)
}

func (s *Server) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	server := http.Server{
		Addr:              s.opts.Address,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.opts.ShutdownTimeout)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			slog.ErrorContext(ctx, "could not shutdown server", slogx.Error(err))
		}
	}()

	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.WithStack(err)
	}

	return nil
}

// mount strips subtree prefixes (ending with a slash) from the request
// path. Exact paths are handed over untouched.
func mount(mux *http.ServeMux, prefix string, handler http.Handler) {
	if !strings.HasSuffix(prefix, "/") {
		mux.Handle(prefix, handler)
		return
	}

	trimmed := strings.TrimSuffix(prefix, "/")

	if len(trimmed) > 0 {
		mux.Handle(prefix, http.StripPrefix(trimmed, handler))
	} else {
		mux.Handle(prefix, handler)
	}
}

func NewServer(funcs ...OptionFunc) *Server {
	opts := NewOptions(funcs...)
	return &Server{
		opts: opts,
	}
}
