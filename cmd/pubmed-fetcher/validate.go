// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/pubmed-fetcher/internal/report"
)

var validateCmd = &cobra.Command{
	Use:   "validate <file.csv>",
	Short: "Check a CSV report written by fetch",
	Long: `Validate checks that a CSV report has the expected header and that every
row has a PubMed ID, a title, and at least one non-academic author.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("opening report: %w", err)
		}
		defer f.Close()

		n, err := report.ValidateCSV(f)
		if err != nil {
			return fmt.Errorf("%s: %w", args[0], err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s: valid (%d rows)\n", args[0], n)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
