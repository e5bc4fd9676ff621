package main

import (
	"fmt"
	"log/slog"

	"github.com/aretw0/tally"
	"github.com/spf13/cobra"
)

var (
	convertInFormat string
	convertStrict   bool
)

// convertCmd represents the convert command
var convertCmd = &cobra.Command{
	Use:   "convert [in] [out]",
	Short: "Convert an export between formats",
	Long: `Load an export file into a store, validating every record, and write it back out.
Formats are taken from the file extensions unless --in-format or --format is given.
Without [out] the result is printed to stdout in --format.`,
	Args: cobra.RangeArgs(1, 2),
	Run: func(cmd *cobra.Command, args []string) {
		in := args[0]

		readOpts := []tally.FileOption{
			tally.WithStrict(convertStrict),
			tally.WithFileLogger(slog.Default()),
		}
		if convertInFormat != "" {
			readOpts = append(readOpts, tally.WithFormat(convertInFormat))
		}

		store, err := tally.Open(in, readOpts...)
		if err != nil {
			fatal("Failed to load export", err)
		}

		if len(args) == 1 {
			if err := writeExport(cmd.OutOrStdout(), store, format); err != nil {
				fatal("Failed to write export", err)
			}
			return
		}

		out := args[1]
		writeOpts := []tally.FileOption{tally.WithFileLogger(slog.Default())}
		if cmd.Flags().Changed("format") {
			writeOpts = append(writeOpts, tally.WithFormat(format))
		}
		if err := tally.Save(store, out, writeOpts...); err != nil {
			fatal("Failed to save export", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Converted %d records from '%s' to '%s'.\n", store.Len(), in, out)
	},
}

func init() {
	rootCmd.AddCommand(convertCmd)
	convertCmd.Flags().StringVar(&convertInFormat, "in-format", "", "Input format (json, yaml, csv)")
	convertCmd.Flags().BoolVar(&convertStrict, "strict", false, "Reject unknown fields")
}
