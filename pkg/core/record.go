package core

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// clock is swapped in tests.
var clock = time.Now

// stamp returns the current UTC time at the resolution the serialized form keeps.
func stamp() time.Time {
	return clock().UTC().Truncate(time.Microsecond)
}

// Record is the central entity of the domain: one expense entry.
// Fields are reachable only through accessors so a Record can never hold an
// empty title, a negative amount or an UpdatedAt earlier than CreatedAt.
type Record struct {
	id        uuid.UUID
	title     string
	amount    decimal.Decimal
	createdAt time.Time
	updatedAt time.Time
}

// Patch holds the optional fields of an update. Nil fields are left unchanged.
type Patch struct {
	Title  *string
	Amount *decimal.Decimal
}

// NewRecord creates a detached record with a fresh random id.
func NewRecord(title string, amount decimal.Decimal) (*Record, error) {
	if err := checkTitle(title); err != nil {
		return nil, err
	}
	if err := checkAmount(amount); err != nil {
		return nil, err
	}

	now := stamp()
	return &Record{
		id:        uuid.New(),
		title:     title,
		amount:    amount,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func (r *Record) ID() uuid.UUID {
	return r.id
}

func (r *Record) Title() string {
	return r.title
}

func (r *Record) Amount() decimal.Decimal {
	return r.amount
}

func (r *Record) CreatedAt() time.Time {
	return r.createdAt
}

func (r *Record) UpdatedAt() time.Time {
	return r.updatedAt
}

// Update applies p. Every supplied field is validated before any is written, so
// a failed update leaves the record untouched. A successful update refreshes
// UpdatedAt, including an empty Patch.
func (r *Record) Update(p Patch) error {
	if p.Title != nil {
		if err := checkTitle(*p.Title); err != nil {
			return err
		}
	}
	if p.Amount != nil {
		if err := checkAmount(*p.Amount); err != nil {
			return err
		}
	}

	if p.Title != nil {
		r.title = *p.Title
	}
	if p.Amount != nil {
		r.amount = *p.Amount
	}
	r.touch()
	return nil
}

// touch refreshes updatedAt without letting it move backwards if the wall clock does.
func (r *Record) touch() {
	now := stamp()
	if now.Before(r.updatedAt) {
		now = r.updatedAt
	}
	r.updatedAt = now
}

func checkTitle(title string) error {
	if title == "" {
		return invalid("title", title, ErrEmptyTitle)
	}
	return nil
}
