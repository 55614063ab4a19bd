// Package tax implements the OHADA statutory calculators: corporate tax
// (IS), VAT (TVA), personal income tax (IRPP), payroll contributions and
// withholding at source. Every calculator is a pure function of its
// inputs plus the immutable rates tables; identical inputs always yield
// identical results.
package tax

import (
	"github.com/ohada-dev/fisc/internal/money"
	"github.com/ohada-dev/fisc/internal/rates"
)

// ISInput carries the corporate-tax computation inputs. Amounts arrive
// as plain numbers from the boundary; negative adjustments are valid
// domain states, not errors.
type ISInput struct {
	Country          string
	AccountingResult float64
	Reintegrations   float64
	Deductions       float64
	PriorLosses      float64 // carried-forward deficits available
	Turnover         float64
	AdvancePayments  float64
}

// ISResult is the structured corporate-tax outcome. NetTax may be
// negative: that is a refund/credit position, not an error.
type ISResult struct {
	Country          rates.Country
	Rate             float64
	MinimumRate      float64
	TaxableResultRaw money.Money
	ImputedLosses    money.Money
	TaxableResult    money.Money
	GrossTax         money.Money
	MinimumTax       money.Money
	TaxDue           money.Money
	NetTax           money.Money
	Installment      money.Money // next-year quarterly advance, TaxDue ÷ 4
}

// CalculateIS runs the corporate-tax computation for one fiscal year.
func CalculateIS(in ISInput) ISResult {
	scale := rates.IS(in.Country)

	accounting := money.FromFloat(in.AccountingResult)
	raw := accounting.
		Add(money.FromFloat(in.Reintegrations)).
		Sub(money.FromFloat(in.Deductions))

	// Losses reduce a positive raw result, never push it negative.
	// Unused losses remain in the carry-forward ledger, outside this
	// calculator.
	imputed := money.Zero
	if raw.IsPositive() {
		imputed = money.Min(money.FromFloat(in.PriorLosses), raw)
	}
	taxable := raw.Sub(imputed)

	gross := money.Zero
	if taxable.IsPositive() {
		gross = taxable.Percent(scale.Rate).RoundUnit()
	}

	minimum := money.FromFloat(in.Turnover).Percent(scale.MinimumRate).RoundUnit()
	due := money.Max(gross, minimum)
	net := due.Sub(money.FromFloat(in.AdvancePayments))
	installment, _ := due.DivInt(4)

	return ISResult{
		Country:          rates.Detect(in.Country),
		Rate:             scale.Rate,
		MinimumRate:      scale.MinimumRate,
		TaxableResultRaw: raw,
		ImputedLosses:    imputed,
		TaxableResult:    taxable,
		GrossTax:         gross,
		MinimumTax:       minimum,
		TaxDue:           due,
		NetTax:           net,
		Installment:      installment.RoundUnit(),
	}
}
