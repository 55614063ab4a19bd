package statements

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ohada-dev/fisc/internal/money"
)

func sampleYear() Aggregates {
	return Aggregates{
		SalesGoods:           50_000_000,
		CostOfGoodsSold:      30_000_000,
		SalesProduced:        20_000_000,
		ProductionStored:     1_000_000,
		IntermediateConsumed: 12_000_000,
		OperatingSubsidies:   500_000,
		TaxesAndDuties:       1_500_000,
		PersonnelCosts:       15_000_000,
		OtherOperatingIncome: 200_000,
		OtherOperatingCosts:  700_000,
		Depreciation:         3_000_000,
		Reversals:            300_000,
		FinancialIncome:      100_000,
		FinancialCosts:       900_000,
		ExtraordinaryIncome:  400_000,
		ExtraordinaryCosts:   150_000,
		IncomeTax:            2_000_000,
	}
}

func TestComputeSIG_Cascade(t *testing.T) {
	res := ComputeSIG(sampleYear())

	assert.True(t, res.Revenue.Equal(money.FromInt(70_000_000)))
	assert.True(t, res.CommercialMargin.Equal(money.FromInt(20_000_000)))
	assert.True(t, res.Production.Equal(money.FromInt(21_000_000)))
	// 20M + 21M − 12M
	assert.True(t, res.ValueAdded.Equal(money.FromInt(29_000_000)))
	// 29M + 0.5M − 1.5M − 15M
	assert.True(t, res.EBE.Equal(money.FromInt(13_000_000)))
	// 13M + 0.2M + 0.3M − 0.7M − 3M
	assert.True(t, res.OperatingResult.Equal(money.FromInt(9_800_000)))
	assert.True(t, res.FinancialResult.Equal(money.FromInt(-800_000)))
	assert.True(t, res.OrdinaryResult.Equal(money.FromInt(9_000_000)))
	assert.True(t, res.ExtraordinaryNet.Equal(money.FromInt(250_000)))
	assert.True(t, res.NetResult.Equal(money.FromInt(7_250_000)))

	assert.Equal(t, 41.43, res.ValueAddedRate)
	assert.Equal(t, 18.57, res.EBERate)
}

func TestComputeSIG_LossYearFlowsThrough(t *testing.T) {
	res := ComputeSIG(Aggregates{
		SalesGoods:      10_000_000,
		CostOfGoodsSold: 12_000_000,
		PersonnelCosts:  3_000_000,
	})
	assert.True(t, res.CommercialMargin.IsNegative())
	assert.True(t, res.NetResult.Equal(money.FromInt(-5_000_000)))
}

func TestComputeSIG_ZeroRevenue(t *testing.T) {
	res := ComputeSIG(Aggregates{})
	assert.True(t, res.NetResult.IsZero())
	assert.Equal(t, 0.0, res.ValueAddedRate)
}

func sampleBalance() BalanceSheet {
	return BalanceSheet{
		FixedAssets:        40_000_000,
		Inventory:          8_000_000,
		Receivables:        12_000_000,
		Cash:               5_000_000,
		Equity:             35_000_000,
		LongTermDebt:       15_000_000,
		Payables:           10_000_000,
		TaxSocialLiability: 5_000_000,
	}
}

func TestComputeRatios(t *testing.T) {
	res := ComputeRatios(RatiosInput{
		Balance:     sampleBalance(),
		Revenue:     70_000_000,
		NetIncome:   7_000_000,
		EBE:         13_000_000,
		Purchases:   36_000_000,
		CostOfGoods: 30_000_000,
	})

	assert.Equal(t, 10.0, res.NetMargin)
	assert.Equal(t, 20.0, res.ReturnOnEquity)
	// total assets 65M
	assert.Equal(t, 10.77, res.ReturnOnAssets)
	// (8+12+5) ÷ 15
	assert.Equal(t, 1.67, res.CurrentRatio)
	assert.Equal(t, 1.13, res.QuickRatio)
	assert.Equal(t, 53.85, res.FinancialAutonomy)
	assert.Equal(t, 42.86, res.Gearing)
	assert.Equal(t, 96.0, res.InventoryDays)
	assert.Equal(t, 61.71, res.ReceivableDays)
	assert.Equal(t, 100.0, res.PayableDays)
	assert.Empty(t, res.Skipped)
}

func TestComputeRatios_ZeroDenominatorsAreSkippedNotFailed(t *testing.T) {
	res := ComputeRatios(RatiosInput{})
	assert.Equal(t, 0.0, res.NetMargin)
	assert.Contains(t, res.Skipped, "net_margin")
	assert.Contains(t, res.Skipped, "roe")
	assert.Contains(t, res.Skipped, "current_ratio")
}

func TestComputeWorkingCapital(t *testing.T) {
	res := ComputeWorkingCapital(sampleBalance(), CAFInput{
		NetIncome:    7_000_000,
		Depreciation: 3_000_000,
		Reversals:    300_000,
	})

	// FR = (35M + 15M) − 40M
	assert.True(t, res.WorkingCapital.Equal(money.FromInt(10_000_000)))
	// BFR = (8M + 12M) − (10M + 5M)
	assert.True(t, res.WorkingCapitalNeed.Equal(money.FromInt(5_000_000)))
	assert.True(t, res.NetCash.Equal(money.FromInt(5_000_000)))
	assert.True(t, res.CAF.Equal(money.FromInt(9_700_000)))
}

func TestComputeBreakEven(t *testing.T) {
	res, err := ComputeBreakEven(BreakEvenInput{
		Revenue:       100_000_000,
		VariableCosts: 60_000_000,
		FixedCosts:    30_000_000,
	})
	require.NoError(t, err)

	assert.True(t, res.VariableMargin.Equal(money.FromInt(40_000_000)))
	assert.Equal(t, 40.0, res.VariableMarginRate)
	// 30M ÷ 40% = 75M
	assert.True(t, res.BreakEvenPoint.Equal(money.FromInt(75_000_000)))
	assert.Equal(t, 270.0, res.DeadPointDays)
	assert.True(t, res.SafetyMargin.Equal(money.FromInt(25_000_000)))
	assert.Equal(t, 25.0, res.SafetyIndex)
}

func TestComputeBreakEven_Errors(t *testing.T) {
	_, err := ComputeBreakEven(BreakEvenInput{Revenue: 0, FixedCosts: 1})
	assert.ErrorIs(t, err, money.ErrDivisionByZero)

	_, err = ComputeBreakEven(BreakEvenInput{Revenue: 100, VariableCosts: 100, FixedCosts: 10})
	assert.ErrorIs(t, err, ErrNoVariableMargin)
}
