package context

import (
	"context"
	"net/url"

	"github.com/pkg/errors"
)

// BaseURL returns the public URL the server is reachable at.
// It panics when the server did not populate the context.
func BaseURL(ctx context.Context) *url.URL {
	baseURL, ok := ctx.Value(keyBaseURL).(*url.URL)
	if !ok {
		panic(errors.New("no base url in context"))
	}

	cloned := *baseURL

	return &cloned
}

func SetBaseURL(ctx context.Context, rawBaseURL string) context.Context {
	baseURL, err := url.Parse(rawBaseURL)
	if err != nil {
		panic(errors.Wrapf(err, "invalid base url '%s'", rawBaseURL))
	}

	return context.WithValue(ctx, keyBaseURL, baseURL)
}

func CurrentURL(ctx context.Context) *url.URL {
	currentURL, ok := ctx.Value(keyCurrentURL).(*url.URL)
	if !ok {
		panic(errors.New("no current url in context"))
	}

	cloned := *currentURL

	return &cloned
}

func SetCurrentURL(ctx context.Context, u *url.URL) context.Context {
	return context.WithValue(ctx, keyCurrentURL, u)
}
