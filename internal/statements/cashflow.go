package statements

import (
	"github.com/ohada-dev/fisc/internal/money"
)

// WorkingCapitalResult is the FR / BFR / trésorerie nette triptych plus
// the self-financing capacity.
type WorkingCapitalResult struct {
	WorkingCapital     money.Money // fonds de roulement
	WorkingCapitalNeed money.Money // besoin en fonds de roulement
	NetCash            money.Money // trésorerie nette = FR − BFR
	CAF                money.Money // capacité d'autofinancement
}

// CAFInput holds the P&L lines feeding the self-financing capacity.
type CAFInput struct {
	NetIncome      float64
	Depreciation   float64 // dotations
	Reversals      float64 // reprises
	DisposalGains  float64 // produits de cession
	DisposalValues float64 // valeurs comptables des cessions
}

// ComputeWorkingCapital derives FR, BFR and net cash from the balance
// sheet, and the CAF from the income statement.
func ComputeWorkingCapital(b BalanceSheet, caf CAFInput) WorkingCapitalResult {
	permanent := money.FromFloat(b.Equity).Add(money.FromFloat(b.LongTermDebt))
	fr := permanent.Sub(money.FromFloat(b.FixedAssets))

	bfr := money.FromFloat(b.Inventory).
		Add(money.FromFloat(b.Receivables)).
		Sub(money.FromFloat(b.Payables)).
		Sub(money.FromFloat(b.TaxSocialLiability))

	capacity := money.FromFloat(caf.NetIncome).
		Add(money.FromFloat(caf.Depreciation)).
		Sub(money.FromFloat(caf.Reversals)).
		Sub(money.FromFloat(caf.DisposalGains)).
		Add(money.FromFloat(caf.DisposalValues))

	return WorkingCapitalResult{
		WorkingCapital:     fr,
		WorkingCapitalNeed: bfr,
		NetCash:            fr.Sub(bfr),
		CAF:                capacity,
	}
}
