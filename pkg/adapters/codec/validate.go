package codec

import (
	"fmt"

	"github.com/aretw0/tally/pkg/core"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// validateEntries checks the shape of decoded entries. Domain invariants are
// enforced later by core.RestoreRecord.
func validateEntries(entries []core.Entry) error {
	for i, e := range entries {
		if err := validate.Struct(e); err != nil {
			return fmt.Errorf("entry %d: %w", i, err)
		}
	}
	return nil
}

// Load restores entries into store in order. Nothing is added unless every
// entry is valid.
func Load(store *core.Store, entries []core.Entry) error {
	records := make([]*core.Record, 0, len(entries))
	for i, e := range entries {
		r, err := core.RestoreRecord(e)
		if err != nil {
			return fmt.Errorf("entry %d: %w", i, err)
		}
		records = append(records, r)
	}
	for _, r := range records {
		if err := store.AddRecord(r); err != nil {
			return err
		}
	}
	return nil
}
