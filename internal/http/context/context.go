package context

type contextKey string

const (
	keyBaseURL    contextKey = "baseURL"
	keyCurrentURL contextKey = "currentURL"
)
