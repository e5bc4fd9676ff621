package core

import (
	"log/slog"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// Store is an ordered, in-memory collection of records.
//
// Insertion order is preserved and observable through Export. The store owns
// the pointers it holds: a *Record returned by GetByID or GetByTitle is the
// store's own copy, so updates made through it are visible to later calls.
//
// Store does no locking. Callers sharing one across goroutines must guard
// every call with a single external mutex.
type Store struct {
	records []*Record
	log     *slog.Logger
}

// NewStore creates an empty Store.
func NewStore(opts ...Option) *Store {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	return &Store{
		records: make([]*Record, 0, o.capacity),
		log:     o.logger,
	}
}

// AddRecord appends r. Uniqueness is not checked here; it follows from ids
// being random.
func (s *Store) AddRecord(r *Record) error {
	if r == nil {
		return ErrNilRecord
	}
	s.records = append(s.records, r)
	s.log.Debug("record added", "id", r.id, "title", r.title, "count", len(s.records))
	return nil
}

// RemoveRecord removes the record with the given id and reports whether one was found.
func (s *Store) RemoveRecord(id uuid.UUID) bool {
	_, idx, ok := lo.FindIndexOf(s.records, func(r *Record) bool {
		return r.id == id
	})
	if !ok {
		s.log.Debug("record not found for removal", "id", id)
		return false
	}

	copy(s.records[idx:], s.records[idx+1:])
	s.records[len(s.records)-1] = nil
	s.records = s.records[:len(s.records)-1]

	s.log.Debug("record removed", "id", id, "count", len(s.records))
	return true
}

// GetByID returns the record with the given id. The boolean is false when no
// record matches; that is not an error.
func (s *Store) GetByID(id uuid.UUID) (*Record, bool) {
	return lo.Find(s.records, func(r *Record) bool {
		return r.id == id
	})
}

// GetByTitle returns every record whose title equals title exactly, in store
// order. No match yields an empty slice and a nil error.
func (s *Store) GetByTitle(title string) ([]*Record, error) {
	if err := checkTitle(title); err != nil {
		s.log.Warn("title lookup rejected", "error", err)
		return nil, err
	}
	return lo.Filter(s.records, func(r *Record, _ int) bool {
		return r.title == title
	}), nil
}

// Export serializes every record in store order.
func (s *Store) Export() []Entry {
	return lo.Map(s.records, func(r *Record, _ int) Entry {
		return r.Serialize()
	})
}

// Len returns the number of records held.
func (s *Store) Len() int {
	return len(s.records)
}

// Total sums the amounts of every record held.
func (s *Store) Total() decimal.Decimal {
	return Sum(s.records)
}

// Sum adds up the amounts of records, such as the result of GetByTitle.
func Sum(records []*Record) decimal.Decimal {
	return lo.Reduce(records, func(sum decimal.Decimal, r *Record, _ int) decimal.Decimal {
		return sum.Add(r.amount)
	}, decimal.Zero)
}
