package webui

type Options struct {
	ActivityLimit int
}

type OptionFunc func(opts *Options)

func NewOptions(funcs ...OptionFunc) *Options {
	opts := &Options{
		ActivityLimit: 10,
	}
	for _, fn := range funcs {
		fn(opts)
	}
	return opts
}

// WithActivityLimit sets how many sign-in events the home page lists.
func WithActivityLimit(limit int) OptionFunc {
	return func(opts *Options) {
		opts.ActivityLimit = limit
	}
}
