package statements

import (
	"errors"
	"fmt"

	"github.com/ohada-dev/fisc/internal/money"
)

// ErrNoVariableMargin is returned when variable costs absorb the whole
// revenue: the break-even point is undefined.
var ErrNoVariableMargin = errors.New("variable costs meet or exceed revenue, no break-even point")

// BreakEvenInput splits the cost structure of one year.
type BreakEvenInput struct {
	Revenue       float64
	VariableCosts float64
	FixedCosts    float64
}

// BreakEvenResult locates the break-even point.
type BreakEvenResult struct {
	VariableMargin     money.Money // marge sur coûts variables
	VariableMarginRate float64     // marge ÷ CA, %
	BreakEvenPoint     money.Money // seuil de rentabilité
	DeadPointDays      float64     // point mort, in days of a 360-day year
	SafetyMargin       money.Money // CA − seuil
	SafetyIndex        float64     // marge de sécurité ÷ CA, %
}

// ComputeBreakEven derives the break-even point from the cost split.
// Zero revenue or a non-positive variable margin is reported as an
// error, never as a silent zero.
func ComputeBreakEven(in BreakEvenInput) (BreakEvenResult, error) {
	revenue := money.FromFloat(in.Revenue)
	if !revenue.IsPositive() {
		return BreakEvenResult{}, fmt.Errorf("break-even needs positive revenue: %w", money.ErrDivisionByZero)
	}

	variableMargin := revenue.Sub(money.FromFloat(in.VariableCosts))
	if !variableMargin.IsPositive() {
		return BreakEvenResult{}, ErrNoVariableMargin
	}

	// seuil = charges fixes ÷ taux de marge = fixes × CA ÷ marge
	marginRate, err := variableMargin.MulInt(100).Div(revenue)
	if err != nil {
		return BreakEvenResult{}, err
	}
	breakEven, err := money.FromFloat(in.FixedCosts).Mul(revenue).Div(variableMargin)
	if err != nil {
		return BreakEvenResult{}, err
	}
	breakEven = breakEven.RoundUnit()

	deadPoint, err := breakEven.MulInt(360).Div(revenue)
	if err != nil {
		return BreakEvenResult{}, err
	}

	safety := revenue.Sub(breakEven)
	safetyIndex, err := safety.MulInt(100).Div(revenue)
	if err != nil {
		return BreakEvenResult{}, err
	}

	return BreakEvenResult{
		VariableMargin:     variableMargin,
		VariableMarginRate: marginRate.Round(2, money.RoundHalfUp).Float64(),
		BreakEvenPoint:     breakEven,
		DeadPointDays:      deadPoint.Round(1, money.RoundHalfUp).Float64(),
		SafetyMargin:       safety,
		SafetyIndex:        safetyIndex.Round(2, money.RoundHalfUp).Float64(),
	}, nil
}
