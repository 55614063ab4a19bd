package tax

import (
	"github.com/ohada-dev/fisc/internal/money"
	"github.com/ohada-dev/fisc/internal/rates"
)

// ComputeVAT returns round(amountExclTax × rate ÷ 100). The product is
// kept at full precision and rounded exactly once.
func ComputeVAT(amountExclTax money.Money, rate float64) money.Money {
	return amountExclTax.Percent(rate).RoundUnit()
}

// ComputeInclTax returns the tax-inclusive amount.
func ComputeInclTax(amountExclTax money.Money, rate float64) money.Money {
	return amountExclTax.Add(ComputeVAT(amountExclTax, rate))
}

// ComputeExclTax recovers the tax-exclusive amount from a tax-inclusive
// one: round(incl × 100 ÷ (100 + rate)). A rate of -100 surfaces as
// money.ErrDivisionByZero.
func ComputeExclTax(amountInclTax money.Money, rate float64) (money.Money, error) {
	q, err := amountInclTax.MulInt(100).Div(money.FromFloat(rate).Add(money.FromInt(100)))
	if err != nil {
		return money.Zero, err
	}
	return q.RoundUnit(), nil
}

// VATBreakdown is the per-country VAT outcome, including the
// VAT-on-VAT surtax stage where the jurisdiction levies one.
type VATBreakdown struct {
	Country    rates.Country
	Rate       float64
	SurtaxRate float64
	Base       money.Money // amount excluding tax
	VAT        money.Money // base-rate VAT, rounded
	Surtax     money.Money // surtax on the VAT, rounded separately
	TotalVAT   money.Money
	InclTax    money.Money
}

// CountryVAT computes VAT on an exclusive amount using the country's
// normal rate. Surtax jurisdictions (Cameroon's communal centimes,
// Congo's centimes additionnels) require two sequential roundings —
// base VAT first, then the surtax on that rounded VAT — to match the
// statutory output. A single combined rate drifts by a unit on large
// bases.
func CountryVAT(code string, amountExclTax money.Money) VATBreakdown {
	scale := rates.VAT(code)

	vat := ComputeVAT(amountExclTax, scale.Normal)
	surtax := money.Zero
	if scale.SurtaxRate > 0 {
		surtax = vat.Percent(scale.SurtaxRate).RoundUnit()
	}
	total := vat.Add(surtax)

	return VATBreakdown{
		Country:    rates.Detect(code),
		Rate:       scale.Normal,
		SurtaxRate: scale.SurtaxRate,
		Base:       amountExclTax,
		VAT:        vat,
		Surtax:     surtax,
		TotalVAT:   total,
		InclTax:    amountExclTax.Add(total),
	}
}
