package main

import (
	"fmt"

	"github.com/SAP-F-2025/employability-assessment/internal/content"
	"github.com/SAP-F-2025/employability-assessment/internal/scoring"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate question bank and suggestion files",
	Long:  "Checks the question bank and suggestion table against their JSON schemas and the scoring rules. Omitted paths validate the built-in content.",
	RunE:  runValidate,
}

var (
	validateBank        string
	validateSuggestions string
)

func init() {
	validateCmd.Flags().StringVar(&validateBank, "bank", "", "Path to question bank JSON")
	validateCmd.Flags().StringVar(&validateSuggestions, "suggestions", "", "Path to suggestion table JSON")
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, _ []string) error {
	c, err := content.Load(validateBank, validateSuggestions)
	if err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	out := cmd.OutOrStdout()
	_, _ = fmt.Fprintf(out, "Question bank OK: %d questions\n", len(c.Bank))
	for _, m := range scoring.Modules {
		_, _ = fmt.Fprintf(out, "  %s: %d questions\n", m, countModule(c.Bank, m))
	}
	missing := c.Suggestions.MissingEntries()
	if len(missing) == 0 {
		_, _ = fmt.Fprintf(out, "Suggestion table OK: every range has advice\n")
		return nil
	}
	_, _ = fmt.Fprintf(out, "Suggestion table OK with %d missing entries (shown as not found):\n", len(missing))
	for _, entry := range missing {
		_, _ = fmt.Fprintf(out, "  %s\n", entry)
	}
	return nil
}

func countModule(bank scoring.Bank, m scoring.Module) int {
	n := 0
	for _, q := range bank {
		if q.Module == m {
			n++
		}
	}
	return n
}
