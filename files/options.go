package files

import "log/slog"

// Option configures a File.
type Option func(*options)

type options struct {
	defaults func(*File)
	logger   *slog.Logger
	indent   string
	noLoad   bool
}

func defaultOptions() options {
	return options{
		logger: slog.Default(),
		indent: "  ",
	}
}

// WithDefaults sets the hook that registers default values with
// File.SetDefault. It runs on every load; when the file does not exist yet
// it runs first and its defaults become the initial file content.
func WithDefaults(fn func(f *File)) Option {
	return func(o *options) {
		o.defaults = fn
	}
}

// WithLogger sets the logger used to report values that fail to parse.
// Default: slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithIndent sets the indentation used when writing the file. An empty
// indent writes compact JSON. Default: two spaces.
func WithIndent(indent string) Option {
	return func(o *options) {
		o.indent = indent
	}
}

// WithoutLoad makes Open skip the initial load. Call Reload before reading.
func WithoutLoad() Option {
	return func(o *options) {
		o.noLoad = true
	}
}
