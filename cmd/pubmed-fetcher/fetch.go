// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/pubmed-fetcher/internal/classify"
	"github.com/pdiddy/pubmed-fetcher/internal/pipeline"
	"github.com/pdiddy/pubmed-fetcher/internal/pubmed"
	"github.com/pdiddy/pubmed-fetcher/internal/report"
	"github.com/pdiddy/pubmed-fetcher/pkg/types"
)

var fetchCmd = &cobra.Command{
	Use:   "fetch <query...>",
	Short: "Search PubMed and report papers with non-academic authors",
	Long: `Fetch runs a PubMed search, retrieves the matching articles, and keeps
those with at least one non-academic author. The query words are joined with
spaces and passed to PubMed unchanged, so the full PubMed query syntax works.

Without --file the report prints as a console table. With --file and no
--format the report is written as CSV.`,
	Example: `  pubmed-fetcher fetch "cancer immunotherapy"
  pubmed-fetcher fetch -f results.csv 'crispr AND 2023[dp]'
  pubmed-fetcher fetch --format sqlite -f reports.db --max-results 50 kras`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		query := strings.Join(args, " ")
		rulesFile, _ := cmd.Flags().GetString("rules")
		outFile, _ := cmd.Flags().GetString("file")

		rules, err := classifierRules(rulesFile)
		if err != nil {
			return err
		}

		rc := types.ReportConfig{
			Format:     types.ReportFormat(viper.GetString("report.format")),
			OutputFile: outFile,
		}
		if rc.Format == "" {
			rc.Format = types.FormatTable
			if outFile != "" {
				rc.Format = types.FormatCSV
			}
		}
		if !rc.Format.Valid() {
			return fmt.Errorf("unknown format %q (want table, csv, json, yaml, or sqlite)", rc.Format)
		}
		if rc.Format == types.FormatSQLite && outFile == "" {
			return fmt.Errorf("--format sqlite requires --file")
		}

		src := pubmed.NewClient(sourceConfig(), nil)
		b := report.NewBuilder(classify.New(rules))

		res, err := pipeline.Run(cmd.Context(), src, b, query)
		if err != nil {
			return err
		}
		return writeReport(cmd.Context(), cmd.OutOrStdout(), rc, res)
	},
}

func init() {
	f := fetchCmd.Flags()
	f.StringP("file", "f", "", "write the report to this file instead of stdout")
	f.String("format", "", "report format: table, csv, json, yaml, sqlite")
	f.Int("max-results", pubmed.DefaultMaxResults, "maximum PubMed IDs to fetch")
	f.Duration("timeout", 0, "HTTP timeout per request (default from config, 30s)")
	f.String("rules", "", "YAML file with classifier keyword lists")

	_ = viper.BindPFlag("report.format", f.Lookup("format"))
	_ = viper.BindPFlag("source.max_results", f.Lookup("max-results"))
	_ = viper.BindPFlag("source.timeout", f.Lookup("timeout"))

	rootCmd.AddCommand(fetchCmd)
}

// writeReport renders res in rc.Format to rc.OutputFile, or to stdout when no
// file is set. A status line goes to stdout after a file write.
func writeReport(ctx context.Context, stdout io.Writer, rc types.ReportConfig, res pipeline.Result) error {
	if rc.Format == types.FormatSQLite {
		runID, err := report.WriteSQLite(ctx, rc.OutputFile, res.File())
		if err != nil {
			return err
		}
		fmt.Fprintf(stdout, "Saved run %d (%d papers) to %s\n", runID, res.Kept(), rc.OutputFile)
		return nil
	}

	if rc.OutputFile == "" {
		return render(stdout, rc.Format, res)
	}

	f, err := os.Create(rc.OutputFile)
	if err != nil {
		return fmt.Errorf("creating %s: %w", rc.OutputFile, err)
	}
	if err := render(f, rc.Format, res); err != nil {
		f.Close()
		os.Remove(rc.OutputFile)
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", rc.OutputFile, err)
	}
	fmt.Fprintf(stdout, "Results saved to %s\n", rc.OutputFile)
	return nil
}

func render(w io.Writer, format types.ReportFormat, res pipeline.Result) error {
	var err error
	switch format {
	case types.FormatTable:
		report.FormatTable(w, res.Rows)
	case types.FormatCSV:
		err = report.WriteCSV(w, res.Rows)
	case types.FormatJSON:
		err = report.FormatJSON(w, res.Rows)
	case types.FormatYAML:
		err = report.WriteYAML(w, res.File())
	default:
		err = fmt.Errorf("unsupported format")
	}
	if err != nil {
		return fmt.Errorf("writing %s report: %w", format, err)
	}
	return nil
}
