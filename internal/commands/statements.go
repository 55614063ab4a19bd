package commands

import (
	"github.com/spf13/cobra"
)

func newSIGCommand() *cobra.Command {
	var (
		salesGoods, cogs, salesProduced, stored, capitalized   float64
		consumed, subsidies, taxes, personnel                  float64
		otherIncome, otherCosts, depreciation, reversals       float64
		finIncome, finCosts, extraIncome, extraCosts, totalTax float64
	)

	cmd := &cobra.Command{
		Use:   "sig",
		Short: "SYSCOHADA intermediate management balances",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTool(cmd, "sig_compute", map[string]any{
				"sales_goods":            salesGoods,
				"cost_of_goods_sold":     cogs,
				"sales_produced":         salesProduced,
				"production_stored":      stored,
				"production_capitalized": capitalized,
				"intermediate_consumed":  consumed,
				"operating_subsidies":    subsidies,
				"taxes_and_duties":       taxes,
				"personnel_costs":        personnel,
				"other_operating_income": otherIncome,
				"other_operating_costs":  otherCosts,
				"depreciation":           depreciation,
				"reversals":              reversals,
				"financial_income":       finIncome,
				"financial_costs":        finCosts,
				"extraordinary_income":   extraIncome,
				"extraordinary_costs":    extraCosts,
				"income_tax":             totalTax,
			})
		},
	}

	cmd.Flags().Float64Var(&salesGoods, "sales-goods", 0, "ventes de marchandises")
	cmd.Flags().Float64Var(&cogs, "cost-of-goods", 0, "coût d'achat des marchandises vendues")
	cmd.Flags().Float64Var(&salesProduced, "sales-produced", 0, "production vendue")
	cmd.Flags().Float64Var(&stored, "production-stored", 0, "production stockée")
	cmd.Flags().Float64Var(&capitalized, "production-capitalized", 0, "production immobilisée")
	cmd.Flags().Float64Var(&consumed, "intermediate-consumed", 0, "consommations intermédiaires")
	cmd.Flags().Float64Var(&subsidies, "subsidies", 0, "subventions d'exploitation")
	cmd.Flags().Float64Var(&taxes, "taxes", 0, "impôts et taxes (hors IS)")
	cmd.Flags().Float64Var(&personnel, "personnel", 0, "charges de personnel")
	cmd.Flags().Float64Var(&otherIncome, "other-income", 0, "autres produits d'exploitation")
	cmd.Flags().Float64Var(&otherCosts, "other-costs", 0, "autres charges d'exploitation")
	cmd.Flags().Float64Var(&depreciation, "depreciation", 0, "dotations aux amortissements")
	cmd.Flags().Float64Var(&reversals, "reversals", 0, "reprises de provisions")
	cmd.Flags().Float64Var(&finIncome, "financial-income", 0, "produits financiers")
	cmd.Flags().Float64Var(&finCosts, "financial-costs", 0, "charges financières")
	cmd.Flags().Float64Var(&extraIncome, "extraordinary-income", 0, "produits HAO")
	cmd.Flags().Float64Var(&extraCosts, "extraordinary-costs", 0, "charges HAO")
	cmd.Flags().Float64Var(&totalTax, "income-tax", 0, "impôt sur le résultat")

	return cmd
}

func newRatiosCommand() *cobra.Command {
	var (
		fixedAssets, inventory, receivables, cash        float64
		equity, longTermDebt, payables, taxSocial, draft float64
		revenue, netIncome, ebe, purchases, cogs         float64
	)

	cmd := &cobra.Command{
		Use:   "ratios",
		Short: "Financial analysis ratios",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTool(cmd, "ratios_compute", map[string]any{
				"fixed_assets":         fixedAssets,
				"inventory":            inventory,
				"receivables":          receivables,
				"cash":                 cash,
				"equity":               equity,
				"long_term_debt":       longTermDebt,
				"payables":             payables,
				"tax_social_liability": taxSocial,
				"bank_overdraft":       draft,
				"revenue":              revenue,
				"net_income":           netIncome,
				"ebe":                  ebe,
				"purchases":            purchases,
				"cost_of_goods":        cogs,
			})
		},
	}

	cmd.Flags().Float64Var(&fixedAssets, "fixed-assets", 0, "actif immobilisé net")
	cmd.Flags().Float64Var(&inventory, "inventory", 0, "stocks")
	cmd.Flags().Float64Var(&receivables, "receivables", 0, "créances clients")
	cmd.Flags().Float64Var(&cash, "cash", 0, "trésorerie actif")
	cmd.Flags().Float64Var(&equity, "equity", 0, "capitaux propres")
	cmd.Flags().Float64Var(&longTermDebt, "long-term-debt", 0, "dettes financières")
	cmd.Flags().Float64Var(&payables, "payables", 0, "dettes fournisseurs")
	cmd.Flags().Float64Var(&taxSocial, "tax-social", 0, "dettes fiscales et sociales")
	cmd.Flags().Float64Var(&draft, "overdraft", 0, "trésorerie passif")
	cmd.Flags().Float64Var(&revenue, "revenue", 0, "chiffre d'affaires")
	cmd.Flags().Float64Var(&netIncome, "net-income", 0, "résultat net")
	cmd.Flags().Float64Var(&ebe, "ebe", 0, "excédent brut d'exploitation")
	cmd.Flags().Float64Var(&purchases, "purchases", 0, "achats TTC annuels")
	cmd.Flags().Float64Var(&cogs, "cost-of-goods", 0, "coût d'achat des marchandises vendues")

	return cmd
}

func newCashflowCommand() *cobra.Command {
	var (
		fixedAssets, inventory, receivables, cash        float64
		equity, longTermDebt, payables, taxSocial, draft float64
		netIncome, depreciation, reversals               float64
		disposalGains, disposalValues                    float64
	)

	cmd := &cobra.Command{
		Use:   "cashflow",
		Short: "Working capital, financing need and self-financing capacity",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTool(cmd, "working_capital_compute", map[string]any{
				"fixed_assets":         fixedAssets,
				"inventory":            inventory,
				"receivables":          receivables,
				"cash":                 cash,
				"equity":               equity,
				"long_term_debt":       longTermDebt,
				"payables":             payables,
				"tax_social_liability": taxSocial,
				"bank_overdraft":       draft,
				"net_income":           netIncome,
				"depreciation":         depreciation,
				"reversals":            reversals,
				"disposal_gains":       disposalGains,
				"disposal_values":      disposalValues,
			})
		},
	}

	cmd.Flags().Float64Var(&fixedAssets, "fixed-assets", 0, "actif immobilisé net")
	cmd.Flags().Float64Var(&inventory, "inventory", 0, "stocks")
	cmd.Flags().Float64Var(&receivables, "receivables", 0, "créances clients")
	cmd.Flags().Float64Var(&cash, "cash", 0, "trésorerie actif")
	cmd.Flags().Float64Var(&equity, "equity", 0, "capitaux propres")
	cmd.Flags().Float64Var(&longTermDebt, "long-term-debt", 0, "dettes financières")
	cmd.Flags().Float64Var(&payables, "payables", 0, "dettes fournisseurs")
	cmd.Flags().Float64Var(&taxSocial, "tax-social", 0, "dettes fiscales et sociales")
	cmd.Flags().Float64Var(&draft, "overdraft", 0, "trésorerie passif")
	cmd.Flags().Float64Var(&netIncome, "net-income", 0, "résultat net")
	cmd.Flags().Float64Var(&depreciation, "depreciation", 0, "dotations aux amortissements")
	cmd.Flags().Float64Var(&reversals, "reversals", 0, "reprises de provisions")
	cmd.Flags().Float64Var(&disposalGains, "disposal-gains", 0, "produits de cession")
	cmd.Flags().Float64Var(&disposalValues, "disposal-values", 0, "valeurs comptables cédées")

	return cmd
}

func newBreakEvenCommand() *cobra.Command {
	var revenue, variableCosts, fixedCosts float64

	cmd := &cobra.Command{
		Use:   "breakeven",
		Short: "Break-even point and dead point",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTool(cmd, "breakeven_compute", map[string]any{
				"revenue":        revenue,
				"variable_costs": variableCosts,
				"fixed_costs":    fixedCosts,
			})
		},
	}

	cmd.Flags().Float64Var(&revenue, "revenue", 0, "chiffre d'affaires")
	cmd.Flags().Float64Var(&variableCosts, "variable-costs", 0, "charges variables")
	cmd.Flags().Float64Var(&fixedCosts, "fixed-costs", 0, "charges fixes")

	return cmd
}
