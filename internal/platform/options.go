package platform

import (
	"log/slog"

	"github.com/aretw0/tally/pkg/core"
)

// options holds the internal configuration for file-backed operations.
type options struct {
	logger *slog.Logger
	format string
	strict bool
}

// Option defines a functional option for Open and Save.
type Option func(*options)

// defaultOptions returns the default configuration.
func defaultOptions() *options {
	return &options{
		logger: slog.Default(),
	}
}

// WithLogger sets the logger handed to the store and used for file operations.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithFormat forces a format ("json", "yaml", "csv") instead of guessing from the extension.
func WithFormat(format string) Option {
	return func(o *options) {
		o.format = format
	}
}

// WithStrict rejects unknown fields when decoding JSON and YAML.
func WithStrict(strict bool) Option {
	return func(o *options) {
		o.strict = strict
	}
}

func (o *options) storeOptions() []core.Option {
	return []core.Option{core.WithLogger(o.logger)}
}
