// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/pubmed-fetcher/internal/classify"
)

var classifyCmd = &cobra.Command{
	Use:   "classify <affiliation...>",
	Short: "Classify one affiliation string as academic or non-academic",
	Long: `Classify applies the author classifier to a single affiliation and prints
the decision together with the signals that produced it. When --email is not
given, the email is extracted from the affiliation text.`,
	Example: `  pubmed-fetcher classify "Genentech Inc., South San Francisco, CA"
  pubmed-fetcher classify --email jo@startup.io "Dept. of Chemistry"`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		affiliation := strings.Join(args, " ")
		email, _ := cmd.Flags().GetString("email")
		rulesFile, _ := cmd.Flags().GetString("rules")

		rules, err := classifierRules(rulesFile)
		if err != nil {
			return err
		}
		if email == "" {
			email = classify.ExtractEmail(affiliation)
		}

		printDecision(cmd.OutOrStdout(), email, classify.New(rules).Explain(affiliation, email))
		return nil
	},
}

func init() {
	classifyCmd.Flags().String("email", "", "author email (default: extracted from the affiliation)")
	classifyCmd.Flags().String("rules", "", "YAML file with classifier keyword lists")

	rootCmd.AddCommand(classifyCmd)
}

func printDecision(w io.Writer, email string, d classify.Decision) {
	verdict := "academic"
	if d.NonAcademic {
		verdict = "non-academic"
	}
	fmt.Fprintf(w, "%-18s %s\n", "Decision:", verdict)
	fmt.Fprintf(w, "%-18s %s\n", "Email:", orNone(email))
	fmt.Fprintf(w, "%-18s %s\n", "Academic keyword:", orNone(d.AcademicKeyword))
	fmt.Fprintf(w, "%-18s %s\n", "Company keyword:", orNone(d.CompanyKeyword))
	fmt.Fprintf(w, "%-18s %s\n", "Commercial domain:", orNone(d.CommercialDomain))
}

func orNone(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
