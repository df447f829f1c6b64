package form

// FormOptions holds configuration for form behavior
type FormOptions struct {
	// DefaultValues are used for fields absent from the submitted request
	DefaultValues map[string]string
	// KeepSensitive echoes sensitive values back when rendering
	KeepSensitive bool
}

type FormOptionFunc func(opts *FormOptions)

func NewFormOptions(funcs ...FormOptionFunc) *FormOptions {
	opts := &FormOptions{
		DefaultValues: make(map[string]string),
		KeepSensitive: false,
	}

	for _, fn := range funcs {
		fn(opts)
	}

	return opts
}

func WithDefaultValues(values map[string]string) FormOptionFunc {
	return func(opts *FormOptions) {
		opts.DefaultValues = values
	}
}

func WithKeepSensitive(keep bool) FormOptionFunc {
	return func(opts *FormOptions) {
		opts.KeepSensitive = keep
	}
}
