package identity

import (
	"net/http"
	"time"

	"github.com/hashicorp/go-cleanhttp"
)

type Options struct {
	HTTPClient *http.Client
	Timeout    time.Duration
}

type OptionFunc func(opts *Options)

func NewOptions(funcs ...OptionFunc) *Options {
	opts := &Options{
		HTTPClient: cleanhttp.DefaultPooledClient(),
		Timeout:    10 * time.Second,
	}

	for _, fn := range funcs {
		fn(opts)
	}

	return opts
}

func WithHTTPClient(client *http.Client) OptionFunc {
	return func(opts *Options) {
		opts.HTTPClient = client
	}
}

func WithTimeout(timeout time.Duration) OptionFunc {
	return func(opts *Options) {
		opts.Timeout = timeout
	}
}
