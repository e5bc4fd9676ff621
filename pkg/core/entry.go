package core

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

const (
	timestampLayout      = "2006-01-02T15:04:05Z"
	timestampMicroLayout = "2006-01-02T15:04:05.000000Z"
)

// Entry is the serialized shape of a Record. Downstream consumers depend on
// its field names and timestamp format.
type Entry struct {
	ID        string      `json:"id" yaml:"id" validate:"required,uuid"`
	Title     string      `json:"title" yaml:"title" validate:"required"`
	Amount    json.Number `json:"amount" yaml:"amount" validate:"required,numeric"`
	CreatedAt string      `json:"created_at" yaml:"created_at" validate:"required"`
	UpdatedAt string      `json:"updated_at" yaml:"updated_at" validate:"required"`
}

// Serialize returns the record's structured form. It has no side effects.
func (r *Record) Serialize() Entry {
	return Entry{
		ID:        r.id.String(),
		Title:     r.title,
		Amount:    json.Number(r.amount.String()),
		CreatedAt: FormatTimestamp(r.createdAt),
		UpdatedAt: FormatTimestamp(r.updatedAt),
	}
}

// FormatTimestamp renders t in UTC as ISO-8601 with a trailing "Z". The
// fractional part is omitted when it is zero and printed as six digits otherwise.
func FormatTimestamp(t time.Time) string {
	t = t.UTC()
	if t.Nanosecond()/int(time.Microsecond) == 0 {
		return t.Format(timestampLayout)
	}
	return t.Format(timestampMicroLayout)
}

// ParseTimestamp accepts any RFC 3339 time and normalizes it to UTC.
func ParseTimestamp(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, err
	}
	return t.UTC().Truncate(time.Microsecond), nil
}

// RestoreRecord rebuilds a record from its serialized form, keeping its id and
// timestamps. It is the inverse of Serialize and enforces the same invariants
// as NewRecord.
func RestoreRecord(e Entry) (*Record, error) {
	id, err := uuid.Parse(e.ID)
	if err != nil {
		return nil, invalid("id", e.ID, ErrInvalidID)
	}
	if err := checkTitle(e.Title); err != nil {
		return nil, err
	}
	amount, err := ParseAmount(e.Amount.String())
	if err != nil {
		return nil, err
	}
	created, err := ParseTimestamp(e.CreatedAt)
	if err != nil {
		return nil, invalid("created_at", e.CreatedAt, ErrInvalidTimestamp)
	}
	updated, err := ParseTimestamp(e.UpdatedAt)
	if err != nil {
		return nil, invalid("updated_at", e.UpdatedAt, ErrInvalidTimestamp)
	}
	if updated.Before(created) {
		return nil, invalid("updated_at", e.UpdatedAt, ErrTimestampOrder)
	}

	return &Record{
		id:        id,
		title:     e.Title,
		amount:    amount,
		createdAt: created,
		updatedAt: updated,
	}, nil
}
