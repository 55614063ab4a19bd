package commands

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/ohada-dev/fisc/internal/id"
	"github.com/ohada-dev/fisc/internal/ledger"
	"github.com/ohada-dev/fisc/internal/toolkit"
)

func newEntryCommand() *cobra.Command {
	entryCmd := &cobra.Command{
		Use:   "entry",
		Short: "Journal entry generation",
	}
	entryCmd.AddCommand(newEntryGenerateCommand())
	return entryCmd
}

func newEntryGenerateCommand() *cobra.Command {
	var (
		operation, dateStr, piece               string
		supplier, customer, description         string
		seq                                     int
		exclTax, vat, vatRate, amount           float64
		gross, employeeCharges, employerCharges float64
		incomeTax, collected, deductible        float64
		out                                     string
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Build a balanced entry from an operation template",
		Long: `Build a balanced entry from an operation template. Templates:
purchase_goods, purchase_services, sale_goods, sale_services, payroll,
social_payment, customer_settlement, supplier_settlement,
asset_acquisition, depreciation, tax_accrual, vat_return.

Generation is deterministic: the same parameters always produce the
same entry. Without --piece, the reference is derived from the
template's journal, the date and --seq.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			date, err := time.Parse("2006-01-02", dateStr)
			if err != nil {
				return fmt.Errorf("invalid date: %w", err)
			}

			op, err := toolkit.BuildOperation(map[string]any{
				"operation":           operation,
				"excl_tax":            exclTax,
				"vat":                 vat,
				"vat_rate":            vatRate,
				"amount":              amount,
				"gross":               gross,
				"employee_charges":    employeeCharges,
				"employer_charges":    employerCharges,
				"income_tax_withheld": incomeTax,
				"collected":           collected,
				"deductible":          deductible,
				"supplier":            supplier,
				"customer":            customer,
				"description":         description,
			})
			if err != nil {
				return err
			}

			entry, err := ledger.Generate(date, piece, op)
			if err != nil {
				return err
			}
			if entry.Piece == "" {
				entry.Piece = id.PieceForDate(entry.Journal, date, seq)
			}

			if out != "" {
				if err := appendEntryCSV(out, entry); err != nil {
					return err
				}
			}
			return printJSON(cmd, toolkit.EntryMap(entry))
		},
	}

	cmd.Flags().StringVar(&operation, "operation", "", "operation template name")
	cmd.Flags().StringVar(&dateStr, "date", "", "entry date, YYYY-MM-DD")
	cmd.Flags().StringVar(&piece, "piece", "", "piece reference (derived when empty)")
	cmd.Flags().IntVar(&seq, "seq", 1, "sequence number for the derived piece reference")
	cmd.Flags().Float64Var(&exclTax, "excl-tax", 0, "amount excluding tax")
	cmd.Flags().Float64Var(&vat, "vat", 0, "VAT amount (computed from --vat-rate when omitted)")
	cmd.Flags().Float64Var(&vatRate, "vat-rate", 0, "VAT rate, %")
	cmd.Flags().Float64Var(&amount, "amount", 0, "amount for single-amount templates")
	cmd.Flags().Float64Var(&gross, "gross", 0, "gross salaries (payroll template)")
	cmd.Flags().Float64Var(&employeeCharges, "employee-charges", 0, "employee contributions (payroll template)")
	cmd.Flags().Float64Var(&employerCharges, "employer-charges", 0, "employer contributions (payroll template)")
	cmd.Flags().Float64Var(&incomeTax, "income-tax", 0, "income tax withheld (payroll template)")
	cmd.Flags().Float64Var(&collected, "collected", 0, "collected VAT (vat_return template)")
	cmd.Flags().Float64Var(&deductible, "deductible", 0, "deductible VAT (vat_return template)")
	cmd.Flags().StringVar(&supplier, "supplier", "", "supplier name")
	cmd.Flags().StringVar(&customer, "customer", "", "customer name")
	cmd.Flags().StringVar(&description, "description", "", "description for asset and depreciation templates")
	cmd.Flags().StringVar(&out, "out", "", "append the entry to this CSV file")
	_ = cmd.MarkFlagRequired("operation")
	_ = cmd.MarkFlagRequired("date")

	return cmd
}

// appendEntryCSV rewrites the file with the existing entries plus the
// new one, creating it when missing.
func appendEntryCSV(path string, entry ledger.Entry) error {
	var entries []ledger.Entry

	if f, err := os.Open(path); err == nil {
		entries, err = ledger.ReadEntries(f)
		f.Close()
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("opening %s: %w", path, err)
	}

	entries = append(entries, entry)

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	defer f.Close()
	return ledger.WriteEntries(f, entries)
}
