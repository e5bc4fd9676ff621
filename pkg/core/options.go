package core

import (
	"io"
	"log/slog"
)

// options holds the configuration for a Store.
type options struct {
	logger   *slog.Logger
	capacity int
}

// Option defines a functional option for configuring a Store.
type Option func(*options)

// defaultOptions returns the default configuration.
func defaultOptions() *options {
	return &options{
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		capacity: 0,
	}
}

// WithLogger sets the logger for the store.
// A nil logger keeps the default, which discards everything.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithCapacity preallocates room for n records.
func WithCapacity(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.capacity = n
		}
	}
}
