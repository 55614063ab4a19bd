package commands

import (
	"github.com/spf13/cobra"
)

func newISCommand() *cobra.Command {
	var country string
	var accounting, reintegrations, deductions, losses, turnover, advances float64

	cmd := &cobra.Command{
		Use:   "is",
		Short: "Corporate tax (IS) for one fiscal year",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTool(cmd, "is_calculate", map[string]any{
				"country":           defaultCountry(country),
				"accounting_result": accounting,
				"reintegrations":    reintegrations,
				"deductions":        deductions,
				"prior_losses":      losses,
				"turnover":          turnover,
				"advance_payments":  advances,
			})
		},
	}

	cmd.Flags().StringVar(&country, "country", "", "jurisdiction code (e.g. CI, CM, SN)")
	cmd.Flags().Float64Var(&accounting, "accounting-result", 0, "accounting result before tax")
	cmd.Flags().Float64Var(&reintegrations, "reintegrations", 0, "tax reintegrations (added back)")
	cmd.Flags().Float64Var(&deductions, "deductions", 0, "tax deductions (subtracted)")
	cmd.Flags().Float64Var(&losses, "prior-losses", 0, "carried-forward deficits")
	cmd.Flags().Float64Var(&turnover, "turnover", 0, "annual turnover, for the minimum tax")
	cmd.Flags().Float64Var(&advances, "advances", 0, "advance payments already made")

	return cmd
}

func newVATCommand() *cobra.Command {
	var country string
	var amount, rate float64
	var inclusive bool

	cmd := &cobra.Command{
		Use:   "vat",
		Short: "VAT on an amount",
		Long: `VAT on an amount. With --rate the computation uses that rate alone;
without it the country's scale applies, including any surtax stage.
With --inclusive the amount is tax-inclusive and the base is recovered.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if inclusive {
				return runTool(cmd, "vat_extract", map[string]any{
					"amount_incl_tax": amount,
					"rate":            rate,
				})
			}
			if cmd.Flags().Changed("rate") {
				return runTool(cmd, "vat_compute", map[string]any{
					"amount_excl_tax": amount,
					"rate":            rate,
				})
			}
			return runTool(cmd, "vat_country", map[string]any{
				"country":         defaultCountry(country),
				"amount_excl_tax": amount,
			})
		},
	}

	cmd.Flags().StringVar(&country, "country", "", "jurisdiction code")
	cmd.Flags().Float64Var(&amount, "amount", 0, "amount in currency units")
	cmd.Flags().Float64Var(&rate, "rate", 18, "VAT rate, %")
	cmd.Flags().BoolVar(&inclusive, "inclusive", false, "amount is tax-inclusive")

	return cmd
}

func newIRPPCommand() *cobra.Command {
	var country string
	var income, abatement float64
	var married bool
	var children int

	cmd := &cobra.Command{
		Use:   "irpp",
		Short: "Personal income tax with family quotient",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTool(cmd, "irpp_calculate", map[string]any{
				"country":        defaultCountry(country),
				"gross_income":   income,
				"abatement_rate": abatement,
				"married":        married,
				"children":       children,
			})
		},
	}

	cmd.Flags().StringVar(&country, "country", "", "jurisdiction code")
	cmd.Flags().Float64Var(&income, "income", 0, "annual gross income")
	cmd.Flags().Float64Var(&abatement, "abatement", 0, "abatement rate override, % (0 = statutory)")
	cmd.Flags().BoolVar(&married, "married", false, "married taxpayer")
	cmd.Flags().IntVar(&children, "children", 0, "dependent children")

	return cmd
}

func newPayrollCommand() *cobra.Command {
	var country string
	var salary, hourlyRate, transport, meal float64
	var overtime []float64
	var cadre bool

	cmd := &cobra.Command{
		Use:   "payroll",
		Short: "Social contributions for one employee-month",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTool(cmd, "payroll_calculate", map[string]any{
				"country":             defaultCountry(country),
				"base_salary":         salary,
				"hourly_rate":         hourlyRate,
				"overtime_hours":      overtime,
				"cadre":               cadre,
				"transport_allowance": transport,
				"meal_allowance":      meal,
			})
		},
	}

	cmd.Flags().StringVar(&country, "country", "", "jurisdiction code")
	cmd.Flags().Float64Var(&salary, "salary", 0, "monthly taxable salary")
	cmd.Flags().Float64Var(&hourlyRate, "hourly-rate", 0, "hourly rate for overtime")
	cmd.Flags().Float64SliceVar(&overtime, "overtime", nil, "overtime hours per majoration bracket")
	cmd.Flags().BoolVar(&cadre, "cadre", false, "executive category")
	cmd.Flags().Float64Var(&transport, "transport", 0, "transport allowance")
	cmd.Flags().Float64Var(&meal, "meal", 0, "meal allowance")

	return cmd
}

func newWithholdingCommand() *cobra.Command {
	var country, incomeType string
	var gross float64

	cmd := &cobra.Command{
		Use:   "withholding",
		Short: "Withholding at source on a payment",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTool(cmd, "withholding_calculate", map[string]any{
				"country":     defaultCountry(country),
				"income_type": incomeType,
				"gross":       gross,
			})
		},
	}

	cmd.Flags().StringVar(&country, "country", "", "jurisdiction code")
	cmd.Flags().StringVar(&incomeType, "type", "", "income type (bic, bnc, rents, dividends, interest, nonresident)")
	cmd.Flags().Float64Var(&gross, "gross", 0, "gross amount paid")
	_ = cmd.MarkFlagRequired("type")

	return cmd
}
