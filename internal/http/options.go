package http

import (
	"net/http"
	"time"
)

type Middleware func(http.Handler) http.Handler

type Options struct {
	Address         string
	BaseURL         string
	Mounts          map[string]http.Handler
	Middlewares     []Middleware
	ShutdownTimeout time.Duration
}

type OptionFunc func(opts *Options)

func NewOptions(funcs ...OptionFunc) *Options {
	opts := &Options{
		Address:         ":3002",
		BaseURL:         "",
		Mounts:          map[string]http.Handler{},
		Middlewares:     make([]Middleware, 0),
		ShutdownTimeout: 10 * time.Second,
	}
	for _, fn := range funcs {
		fn(opts)
	}
	return opts
}

func WithMount(prefix string, handler http.Handler) OptionFunc {
	return func(opts *Options) {
		opts.Mounts[prefix] = handler
	}
}

// WithMiddlewares appends middlewares applied to every mount, the first one
// being the outermost.
func WithMiddlewares(middlewares ...Middleware) OptionFunc {
	return func(opts *Options) {
		opts.Middlewares = append(opts.Middlewares, middlewares...)
	}
}

func WithBaseURL(baseURL string) OptionFunc {
	return func(opts *Options) {
		opts.BaseURL = baseURL
	}
}

func WithAddress(addr string) OptionFunc {
	return func(opts *Options) {
		opts.Address = addr
	}
}

func WithShutdownTimeout(timeout time.Duration) OptionFunc {
	return func(opts *Options) {
		opts.ShutdownTimeout = timeout
	}
}
