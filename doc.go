// Package tally is the Composition Root for the Tally expense store.
//
// It re-exports the domain types from pkg/core and wires the file codecs of
// pkg/adapters/codec for callers that want a single import.
//
// Tally keeps expense records in memory, in insertion order. Each record holds
// a random id, a title, a fixed-point amount and UTC creation/update
// timestamps, and validates itself on every mutation.
//
// Features:
//
//   - **Fixed-point amounts**: amounts are decimals with two fractional digits, never floats.
//   - **Atomic updates**: a rejected update leaves the record untouched.
//   - **Stable export**: Export produces the serialized shape in store order.
//   - **Codecs**: JSON, YAML and CSV readers/writers for exported entries.
//
// The store does no locking; guard it externally when sharing it between goroutines.
//
// Usage:
//
//	store := tally.New(tally.WithLogger(logger))
//
//	lunch, err := tally.NewRecord("Lunch", decimal.RequireFromString("12.50"))
//	if err != nil {
//		return err
//	}
//	_ = store.AddRecord(lunch)
//
//	entries := store.Export()
package tally
