package tax

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ohada-dev/fisc/internal/money"
	"github.com/ohada-dev/fisc/internal/rates"
)

func TestFamilyParts(t *testing.T) {
	q := rates.QuotientRules{Base: 1, MarriedExtra: 1, PerChild: 0.5, MaxChildren: 6, MaxParts: 5}
	tests := []struct {
		married  bool
		children int
		want     float64
	}{
		{false, 0, 1},
		{true, 0, 2},
		{true, 2, 3},
		{true, 6, 5},
		{true, 10, 5},  // children capped at 6, then parts capped at 5
		{false, 12, 4}, // 1 + 6×0.5
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FamilyParts(q, tt.married, tt.children),
			"married=%v children=%d", tt.married, tt.children)
	}
}

func TestCalculateIRPP_SingleNoChildren(t *testing.T) {
	res := CalculateIRPP(IRPPInput{Country: "CI", GrossIncome: 10_000_000})

	assert.Equal(t, 1.0, res.Parts)
	assert.Equal(t, 20.0, res.AbatementRate)
	assert.True(t, res.Abatement.Equal(money.FromInt(2_000_000)))
	assert.True(t, res.NetTaxable.Equal(money.FromInt(8_000_000)))
	// 540,000×16% + 1,260,000×21% + 2,160,000×24% + 3,140,000×28%
	assert.True(t, res.GrossTax.Equal(money.FromInt(1_748_600)), "gross = %s", res.GrossTax)
	assert.True(t, res.NetTax.Equal(res.GrossTax))
	assert.Equal(t, 17.49, res.EffectiveRate)
}

func TestCalculateIRPP_QuotientLowersTax(t *testing.T) {
	single := CalculateIRPP(IRPPInput{Country: "CI", GrossIncome: 10_000_000})
	family := CalculateIRPP(IRPPInput{Country: "CI", GrossIncome: 10_000_000, Married: true, Children: 2})

	assert.Equal(t, 3.0, family.Parts)
	assert.True(t, family.NetTax.LessThan(single.NetTax))
	// Per-part income 2,666,666.67 stops in the 21% bracket.
	assert.True(t, family.GrossTax.Equal(money.FromInt(1_032_000)), "gross = %s", family.GrossTax)
}

func TestCalculateIRPP_CameroonSurtax(t *testing.T) {
	res := CalculateIRPP(IRPPInput{Country: "CM", GrossIncome: 6_000_000})

	assert.Equal(t, 30.0, res.AbatementRate)
	assert.True(t, res.NetTaxable.Equal(money.FromInt(4_200_000)))
	// 2,000,000×10% + 1,000,000×15% + 1,200,000×25% = 650,000
	assert.True(t, res.GrossTax.Equal(money.FromInt(650_000)))
	assert.True(t, res.Surtax.Equal(money.FromInt(65_000)))
	assert.True(t, res.NetTax.Equal(money.FromInt(715_000)))
	assert.Equal(t, 11.92, res.EffectiveRate)
}

func TestCalculateIRPP_TraceIsRetained(t *testing.T) {
	res := CalculateIRPP(IRPPInput{Country: "CI", GrossIncome: 10_000_000})

	require.Len(t, res.Trace, 5)
	assert.Equal(t, 0.0, res.Trace[0].Rate)
	assert.True(t, res.Trace[0].Tax.IsZero())
	assert.Equal(t, 16.0, res.Trace[1].Rate)
	assert.True(t, res.Trace[1].Base.Equal(money.FromInt(540_000)))
	assert.True(t, res.Trace[1].Tax.Equal(money.FromInt(86_400)))
	// Top reached bracket is open-ended on the traced income.
	assert.Equal(t, 28.0, res.Trace[4].Rate)

	sum := money.Zero
	for _, line := range res.Trace {
		sum = sum.Add(line.Tax)
	}
	assert.True(t, sum.Equal(res.TaxPerPart), "trace sums to the per-part tax")
}

func TestCalculateIRPP_AbatementOverride(t *testing.T) {
	res := CalculateIRPP(IRPPInput{Country: "CI", GrossIncome: 1_000_000, AbatementRate: 50})
	assert.Equal(t, 50.0, res.AbatementRate)
	assert.True(t, res.NetTaxable.Equal(money.FromInt(500_000)))
}

func TestCalculateIRPP_ZeroIncome(t *testing.T) {
	res := CalculateIRPP(IRPPInput{Country: "SN", GrossIncome: 0})
	assert.True(t, res.NetTax.IsZero())
	assert.Equal(t, 0.0, res.EffectiveRate)
	assert.Empty(t, res.Trace)
}

func TestCalculateIRPP_BelowFirstThreshold(t *testing.T) {
	// Senegal's first bracket is 0% up to 630,000.
	res := CalculateIRPP(IRPPInput{Country: "SN", GrossIncome: 800_000})
	assert.True(t, res.NetTax.IsZero(), "net = %s", res.NetTax)
}

func TestCalculateIRPP_UnknownCountryUsesDefaultScale(t *testing.T) {
	unknown := CalculateIRPP(IRPPInput{Country: "XX", GrossIncome: 5_000_000})
	ci := CalculateIRPP(IRPPInput{Country: "CI", GrossIncome: 5_000_000})
	assert.True(t, unknown.NetTax.Equal(ci.NetTax))
}
