package tally

import (
	"log/slog"

	"github.com/aretw0/tally/internal/platform"
	"github.com/aretw0/tally/pkg/core"
	"github.com/shopspring/decimal"
)

// Version of the library. Overridden at build time with -ldflags "-X github.com/aretw0/tally.Version=...".
var Version = "0.1.0-dev"

// --- Types ---

// Record is a public alias for core.Record.
type Record = core.Record

// Store is a public alias for core.Store.
type Store = core.Store

// Entry is a public alias for the serialized record shape.
type Entry = core.Entry

// Patch is a public alias for the optional fields of an update.
type Patch = core.Patch

// ValidationError is a public alias for core.ValidationError.
type ValidationError = core.ValidationError

// --- Configuration ---

// Option configures a Store.
type Option = core.Option

// WithLogger sets the logger for the store.
func WithLogger(logger *slog.Logger) Option {
	return core.WithLogger(logger)
}

// WithCapacity preallocates room for n records.
func WithCapacity(n int) Option {
	return core.WithCapacity(n)
}

// --- Factory ---

// New creates an empty in-memory Store.
func New(opts ...Option) *Store {
	return core.NewStore(opts...)
}

// NewRecord creates a detached record.
func NewRecord(title string, amount decimal.Decimal) (*Record, error) {
	return core.NewRecord(title, amount)
}

// NewRecordFromFloat converts amount at the boundary and creates a detached record.
func NewRecordFromFloat(title string, amount float64) (*Record, error) {
	d, err := core.AmountFromFloat(amount)
	if err != nil {
		return nil, err
	}
	return core.NewRecord(title, d)
}

// ParseAmount converts decimal text into an amount.
func ParseAmount(s string) (decimal.Decimal, error) {
	return core.ParseAmount(s)
}

// Sum adds up the amounts of records.
func Sum(records []*Record) decimal.Decimal {
	return core.Sum(records)
}

// --- Files ---

// FileOption configures Open and Save.
type FileOption = platform.Option

// WithFormat forces a file format ("json", "yaml", "csv").
func WithFormat(format string) FileOption {
	return platform.WithFormat(format)
}

// WithStrict rejects unknown fields when decoding.
func WithStrict(strict bool) FileOption {
	return platform.WithStrict(strict)
}

// WithFileLogger sets the logger used while reading and writing files.
func WithFileLogger(logger *slog.Logger) FileOption {
	return platform.WithLogger(logger)
}

// Open loads a store from an export file.
func Open(path string, opts ...FileOption) (*Store, error) {
	return platform.Open(path, opts...)
}

// Save writes the store's export to path.
func Save(store *Store, path string, opts ...FileOption) error {
	return platform.Save(store, path, opts...)
}
