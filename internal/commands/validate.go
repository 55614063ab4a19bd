package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ohada-dev/fisc/internal/ledger"
)

func newValidateCommand() *cobra.Command {
	var country string

	cmd := &cobra.Command{
		Use:   "validate <entries.csv>",
		Short: "Check entries against the double-entry and VAT rules",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd, args[0], defaultCountry(country))
		},
	}

	cmd.Flags().StringVar(&country, "country", "", "jurisdiction code for the VAT rules")

	return cmd
}

func runValidate(cmd *cobra.Command, path, country string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	entries, err := ledger.ReadEntries(f)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	out := cmd.OutOrStdout()
	failed := 0
	for _, e := range entries {
		report := ledger.ValidateEntry(e, country)
		if report.Valid() && len(report.Warnings) == 0 {
			fmt.Fprintf(out, "%s: OK\n", e.Piece)
			continue
		}
		if !report.Valid() {
			failed++
		}
		fmt.Fprintf(out, "%s:\n", e.Piece)
		for _, issue := range report.Errors {
			fmt.Fprintf(out, "  error   %s\n", issue)
		}
		for _, issue := range report.Warnings {
			fmt.Fprintf(out, "  warning %s\n", issue)
		}
	}

	fmt.Fprintf(out, "%d entries checked, %d with errors\n", len(entries), failed)
	if failed > 0 {
		return fmt.Errorf("%d of %d entries failed validation", failed, len(entries))
	}
	return nil
}
