package tax

import (
	"github.com/ohada-dev/fisc/internal/money"
	"github.com/ohada-dev/fisc/internal/rates"
)

// IRPPInput carries the personal-income-tax inputs. An AbatementRate of
// zero means "use the jurisdiction's professional-expense abatement".
type IRPPInput struct {
	Country       string
	GrossIncome   float64 // annual gross
	AbatementRate float64 // %, optional override
	Married       bool
	Children      int
}

// BracketLine is one row of the per-bracket trace, retained for audit.
type BracketLine struct {
	Min  money.Money
	Max  money.Money // zero for the unbounded top bracket
	Rate float64
	Base money.Money // income-per-part taxed in this bracket
	Tax  money.Money
}

// IRPPResult is the structured income-tax outcome.
type IRPPResult struct {
	Country       rates.Country
	Parts         float64
	AbatementRate float64
	Abatement     money.Money
	NetTaxable    money.Money
	IncomePerPart money.Money
	Trace         []BracketLine
	TaxPerPart    money.Money
	GrossTax      money.Money
	Surtax        money.Money
	NetTax        money.Money
	EffectiveRate float64 // net tax ÷ gross income, %
}

// FamilyParts applies the jurisdiction's quotient rules: base parts,
// marriage supplement, per-child weight with a child cap, then the hard
// parts cap.
func FamilyParts(q rates.QuotientRules, married bool, children int) float64 {
	parts := q.Base
	if married {
		parts += q.MarriedExtra
	}
	if children > q.MaxChildren {
		children = q.MaxChildren
	}
	if children > 0 {
		parts += float64(children) * q.PerChild
	}
	if q.MaxParts > 0 && parts > q.MaxParts {
		parts = q.MaxParts
	}
	return parts
}

// CalculateIRPP runs the progressive family-quotient computation.
func CalculateIRPP(in IRPPInput) IRPPResult {
	scale := rates.IRPP(in.Country)

	abatementRate := in.AbatementRate
	if abatementRate == 0 {
		abatementRate = scale.AbatementRate
	}
	if abatementRate == 0 {
		abatementRate = rates.DefaultAbatementRate
	}

	gross := money.FromFloat(in.GrossIncome)
	abatement := gross.Percent(abatementRate).RoundUnit()
	netTaxable := gross.Sub(abatement)
	if netTaxable.IsNegative() {
		netTaxable = money.Zero
	}

	parts := FamilyParts(scale.Quotient, in.Married, in.Children)
	perPart, _ := netTaxable.Div(money.FromFloat(parts))

	trace := make([]BracketLine, 0, len(scale.Brackets))
	taxPerPart := money.Zero
	for _, b := range scale.Brackets {
		low := money.FromInt(b.Min)
		if !perPart.GreaterThan(low) {
			break
		}
		top := perPart
		if b.Max != 0 {
			top = money.Min(perPart, money.FromInt(b.Max))
		}
		base := top.Sub(low)
		lineTax := base.Percent(b.Rate)
		taxPerPart = taxPerPart.Add(lineTax)
		trace = append(trace, BracketLine{
			Min:  low,
			Max:  money.FromInt(b.Max),
			Rate: b.Rate,
			Base: base.RoundUnit(),
			Tax:  lineTax.RoundUnit(),
		})
	}

	grossTax := taxPerPart.MulFloat(parts).RoundUnit()
	surtax := money.Zero
	if scale.SurtaxRate > 0 {
		surtax = grossTax.Percent(scale.SurtaxRate).RoundUnit()
	}
	netTax := grossTax.Add(surtax)

	effective := 0.0
	if gross.IsPositive() {
		if ratio, err := netTax.MulInt(100).Div(gross); err == nil {
			effective = ratio.Round(2, money.RoundHalfUp).Float64()
		}
	}

	return IRPPResult{
		Country:       rates.Detect(in.Country),
		Parts:         parts,
		AbatementRate: abatementRate,
		Abatement:     abatement,
		NetTaxable:    netTaxable,
		IncomePerPart: perPart.RoundUnit(),
		Trace:         trace,
		TaxPerPart:    taxPerPart.RoundUnit(),
		GrossTax:      grossTax,
		Surtax:        surtax,
		NetTax:        netTax,
		EffectiveRate: effective,
	}
}
