package core

import (
	"errors"
	"fmt"
)

// Common errors.
var (
	ErrEmptyTitle       = errors.New("empty title")
	ErrNegativeAmount   = errors.New("negative amount")
	ErrInvalidAmount    = errors.New("invalid amount")
	ErrAmountPrecision  = errors.New("amount exceeds precision")
	ErrInvalidID        = errors.New("invalid id")
	ErrInvalidTimestamp = errors.New("invalid timestamp")
	ErrTimestampOrder   = errors.New("updated_at before created_at")
	ErrNilRecord        = errors.New("record is nil")
)

// ValidationError reports an invalid value supplied to a record or store operation.
// The operation that returned it had no effect.
type ValidationError struct {
	Field string
	Value any
	Err   error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s %q: %v", e.Field, fmt.Sprint(e.Value), e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

func invalid(field string, value any, err error) *ValidationError {
	return &ValidationError{Field: field, Value: value, Err: err}
}
