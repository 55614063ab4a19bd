// Package statements computes the SYSCOHADA financial-statement
// aggregates: the SIG cascade, ratio analysis, working capital and
// self-financing capacity, and the break-even point. Calculators
// consume raw ledger aggregates, never individual entries.
package statements

import (
	"github.com/ohada-dev/fisc/internal/money"
)

// Aggregates are the raw profit-and-loss aggregates of one fiscal year,
// as summed from the ledger by the caller.
type Aggregates struct {
	SalesGoods            float64 // ventes de marchandises
	CostOfGoodsSold       float64 // coût d'achat des marchandises vendues
	SalesProduced         float64 // production vendue (biens et services)
	ProductionStored      float64 // production stockée (may be negative)
	ProductionCapitalized float64 // production immobilisée
	IntermediateConsumed  float64 // achats consommés + services extérieurs
	OperatingSubsidies    float64 // subventions d'exploitation
	TaxesAndDuties        float64 // impôts et taxes (hors IS)
	PersonnelCosts        float64 // charges de personnel
	OtherOperatingIncome  float64
	OtherOperatingCosts   float64
	Depreciation          float64 // dotations aux amortissements et provisions
	Reversals             float64 // reprises de provisions
	FinancialIncome       float64
	FinancialCosts        float64
	ExtraordinaryIncome   float64 // produits HAO
	ExtraordinaryCosts    float64 // charges HAO
	IncomeTax             float64 // impôt sur le résultat
}

// SIGResult is the cascade of intermediate management balances.
type SIGResult struct {
	Revenue            money.Money // chiffre d'affaires
	CommercialMargin   money.Money // marge commerciale
	Production         money.Money // production de l'exercice
	ValueAdded         money.Money // valeur ajoutée
	EBE                money.Money // excédent brut d'exploitation
	OperatingResult    money.Money // résultat d'exploitation
	FinancialResult    money.Money // résultat financier
	OrdinaryResult     money.Money // résultat des activités ordinaires
	ExtraordinaryNet   money.Money // résultat hors activités ordinaires
	NetResult          money.Money // résultat net
	ValueAddedRate     float64     // VA ÷ CA, %
	EBERate            float64     // EBE ÷ CA, %
}

// ComputeSIG runs the SYSCOHADA cascade. Negative intermediate balances
// are legitimate (a loss-making year) and flow through unchanged.
func ComputeSIG(a Aggregates) SIGResult {
	salesGoods := money.FromFloat(a.SalesGoods)
	revenue := salesGoods.Add(money.FromFloat(a.SalesProduced))

	margin := salesGoods.Sub(money.FromFloat(a.CostOfGoodsSold))
	production := money.FromFloat(a.SalesProduced).
		Add(money.FromFloat(a.ProductionStored)).
		Add(money.FromFloat(a.ProductionCapitalized))

	valueAdded := margin.Add(production).Sub(money.FromFloat(a.IntermediateConsumed))
	ebe := valueAdded.
		Add(money.FromFloat(a.OperatingSubsidies)).
		Sub(money.FromFloat(a.TaxesAndDuties)).
		Sub(money.FromFloat(a.PersonnelCosts))

	operating := ebe.
		Add(money.FromFloat(a.OtherOperatingIncome)).
		Add(money.FromFloat(a.Reversals)).
		Sub(money.FromFloat(a.OtherOperatingCosts)).
		Sub(money.FromFloat(a.Depreciation))

	financial := money.FromFloat(a.FinancialIncome).Sub(money.FromFloat(a.FinancialCosts))
	ordinary := operating.Add(financial)
	extraordinary := money.FromFloat(a.ExtraordinaryIncome).Sub(money.FromFloat(a.ExtraordinaryCosts))
	net := ordinary.Add(extraordinary).Sub(money.FromFloat(a.IncomeTax))

	return SIGResult{
		Revenue:          revenue,
		CommercialMargin: margin,
		Production:       production,
		ValueAdded:       valueAdded,
		EBE:              ebe,
		OperatingResult:  operating,
		FinancialResult:  financial,
		OrdinaryResult:   ordinary,
		ExtraordinaryNet: extraordinary,
		NetResult:        net,
		ValueAddedRate:   percentOf(valueAdded, revenue),
		EBERate:          percentOf(ebe, revenue),
	}
}

// percentOf returns part ÷ whole as a percentage rounded to 2 places,
// or 0 when the denominator is zero.
func percentOf(part, whole money.Money) float64 {
	if whole.IsZero() {
		return 0
	}
	ratio, err := part.MulInt(100).Div(whole)
	if err != nil {
		return 0
	}
	return ratio.Round(2, money.RoundHalfUp).Float64()
}
