package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/aretw0/tally"
	"github.com/aretw0/tally/pkg/adapters/codec"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

var demoOut string

// demoCmd walks through the add/update/remove cycle and prints the resulting export.
var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run a sample add/update/remove session and print the export",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		store, err := runDemo(slog.Default())
		if err != nil {
			fatal("Demo failed", err)
		}

		if demoOut != "" {
			if err := tally.Save(store, demoOut, tally.WithFileLogger(slog.Default())); err != nil {
				fatal("Failed to save export", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Export with %d records written to '%s'.\n", store.Len(), demoOut)
			return
		}

		if err := writeExport(cmd.OutOrStdout(), store, format); err != nil {
			fatal("Failed to write export", err)
		}
	},
}

func runDemo(logger *slog.Logger) (*tally.Store, error) {
	store := tally.New(tally.WithLogger(logger))

	seed := []struct {
		title  string
		amount float64
	}{
		{"Lunch", 12.50},
		{"Coffee", 3.75},
		{"Lunch", 15.00},
	}
	records := make([]*tally.Record, 0, len(seed))
	for _, s := range seed {
		r, err := tally.NewRecordFromFloat(s.title, s.amount)
		if err != nil {
			return nil, err
		}
		if err := store.AddRecord(r); err != nil {
			return nil, err
		}
		records = append(records, r)
	}

	amount, err := tally.ParseAmount("13.00")
	if err != nil {
		return nil, err
	}
	if err := records[0].Update(tally.Patch{Amount: lo.ToPtr(amount)}); err != nil {
		return nil, err
	}
	store.RemoveRecord(records[1].ID())

	return store, nil
}

func writeExport(w io.Writer, store *tally.Store, format string) error {
	s, err := codec.ForFormat(format, false)
	if err != nil {
		return err
	}
	data, err := s.Encode(store.Export())
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

func init() {
	rootCmd.AddCommand(demoCmd)
	demoCmd.Flags().StringVarP(&demoOut, "out", "o", "", "Write the export to a file instead of stdout")
}
