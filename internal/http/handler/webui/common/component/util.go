package component

import (
	"context"

	"github.com/a-h/templ"
	httpCtx "github.com/bornholm/signin/internal/http/context"
	httpURL "github.com/bornholm/signin/internal/http/url"
)

var (
	WithPath        = httpURL.WithPath
	WithPathf       = httpURL.WithPathf
	WithJoinedPath  = httpURL.WithJoinedPath
	WithoutValues   = httpURL.WithoutValues
	WithValuesReset = httpURL.WithValuesReset
	WithValues      = httpURL.WithValues
)

func BaseURL(ctx context.Context, funcs ...httpURL.MutationFunc) templ.SafeURL {
	baseURL := httpCtx.BaseURL(ctx)
	mutated := httpURL.Mutate(baseURL, funcs...)
	return templ.SafeURL(mutated.String())
}

func CurrentURL(ctx context.Context, funcs ...httpURL.MutationFunc) templ.SafeURL {
	currentURL := httpCtx.CurrentURL(ctx)
	mutated := httpURL.Mutate(currentURL, funcs...)
	return templ.SafeURL(mutated.String())
}

func MatchPath(ctx context.Context, path string) bool {
	currentURL := httpCtx.CurrentURL(ctx)
	return currentURL.Path == path
}
