package main

import (
	"fmt"
	"log/slog"

	"github.com/aretw0/tally"
	"github.com/spf13/cobra"
)

var totalTitle string

var totalCmd = &cobra.Command{
	Use:   "total [file]",
	Short: "Sum the amounts in an export file",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		store, err := tally.Open(args[0], tally.WithFileLogger(slog.Default()))
		if err != nil {
			fatal("Failed to load export", err)
		}

		if totalTitle == "" {
			fmt.Fprintf(cmd.OutOrStdout(), "%d records, total %s\n", store.Len(), store.Total().StringFixed(2))
			return
		}

		matches, err := store.GetByTitle(totalTitle)
		if err != nil {
			fatal("Invalid title", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%d records titled %q, total %s\n", len(matches), totalTitle, tally.Sum(matches).StringFixed(2))
	},
}

func init() {
	rootCmd.AddCommand(totalCmd)
	totalCmd.Flags().StringVar(&totalTitle, "title", "", "Only count records with this exact title")
}
