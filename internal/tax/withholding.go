package tax

import (
	"fmt"

	"github.com/ohada-dev/fisc/internal/money"
	"github.com/ohada-dev/fisc/internal/rates"
)

// WithholdingInput carries one payment subject to withholding at source.
type WithholdingInput struct {
	Country string
	Income  rates.IncomeType
	Gross   float64
}

// WithholdingResult couples the tax outcome to its accounting
// treatment: the two are always consumed together downstream.
type WithholdingResult struct {
	Country       rates.Country
	Income        rates.IncomeType
	Rate          float64
	Gross         money.Money
	Withheld      money.Money
	Net           money.Money
	Applied       bool
	Note          string // set when a minimum threshold waives the withholding
	DebitAccount  string
	CreditAccount string
}

// CalculateWithholding applies the per-country, per-income-type flat
// rate. A gross amount under the jurisdiction's minimum threshold yields
// zero withholding with a descriptive note, not an error; an unknown
// income type is a contract violation and fails.
func CalculateWithholding(in WithholdingInput) (WithholdingResult, error) {
	entry, ok := rates.Withholding(in.Country, in.Income)
	if !ok {
		return WithholdingResult{}, fmt.Errorf("unknown income type %q", in.Income)
	}

	gross := money.FromFloat(in.Gross)
	res := WithholdingResult{
		Country:       rates.Detect(in.Country),
		Income:        in.Income,
		Rate:          entry.Rate,
		Gross:         gross,
		Net:           gross,
		DebitAccount:  entry.DebitAccount,
		CreditAccount: entry.CreditAccount,
	}

	if entry.MinimumBase > 0 && gross.LessThan(money.FromInt(entry.MinimumBase)) {
		res.Rate = 0
		res.Note = fmt.Sprintf("montant inférieur au seuil de %d, pas de retenue", entry.MinimumBase)
		return res, nil
	}

	res.Withheld = gross.Percent(entry.Rate).RoundUnit()
	res.Net = gross.Sub(res.Withheld)
	res.Applied = true
	return res, nil
}
