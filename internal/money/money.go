// Package money provides the exact decimal amount type used by every
// calculator. Amounts keep full precision across chained operations;
// rounding happens only when the caller asks for it.
package money

import (
	"errors"

	"github.com/shopspring/decimal"
)

// ErrDivisionByZero is returned by Div when the divisor is zero.
var ErrDivisionByZero = errors.New("money: division by zero")

// RoundingMode selects how Round resolves a discarded fraction.
type RoundingMode int

const (
	// RoundHalfUp rounds 0.5 away from zero. Statutory default for
	// OHADA tax arithmetic.
	RoundHalfUp RoundingMode = iota
	// RoundDown truncates toward zero.
	RoundDown
	// RoundUp rounds away from zero.
	RoundUp
)

// Money is an exact decimal amount in the jurisdiction's base currency
// unit. The zero value is zero.
type Money struct {
	d decimal.Decimal
}

// Zero is the zero amount.
var Zero = Money{}

// FromInt builds a Money from an integer amount.
func FromInt(n int64) Money {
	return Money{decimal.NewFromInt(n)}
}

// FromFloat builds a Money from a boundary float64. Intended only for
// values arriving from the UI or tool layer; core formulas never pass
// through float64.
func FromFloat(f float64) Money {
	return Money{decimal.NewFromFloat(f)}
}

// FromDecimal wraps an existing decimal.
func FromDecimal(d decimal.Decimal) Money {
	return Money{d}
}

// Parse builds a Money from a decimal literal string.
func Parse(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Zero, err
	}
	return Money{d}, nil
}

// Add returns m + other.
func (m Money) Add(other Money) Money {
	return Money{m.d.Add(other.d)}
}

// Sub returns m - other.
func (m Money) Sub(other Money) Money {
	return Money{m.d.Sub(other.d)}
}

// Mul returns m × scalar at full precision.
func (m Money) Mul(scalar Money) Money {
	return Money{m.d.Mul(scalar.d)}
}

// MulFloat returns m × f at full precision.
func (m Money) MulFloat(f float64) Money {
	return Money{m.d.Mul(decimal.NewFromFloat(f))}
}

// MulInt returns m × n.
func (m Money) MulInt(n int64) Money {
	return Money{m.d.Mul(decimal.NewFromInt(n))}
}

// Div returns m ÷ scalar at full precision (decimal division with
// extended precision, no premature rounding). Division by zero is an
// error, never a NaN or a silent zero.
func (m Money) Div(scalar Money) (Money, error) {
	if scalar.d.IsZero() {
		return Zero, ErrDivisionByZero
	}
	return Money{m.d.DivRound(scalar.d, divPrecision)}, nil
}

// DivInt returns m ÷ n.
func (m Money) DivInt(n int64) (Money, error) {
	return m.Div(FromInt(n))
}

// divPrecision bounds intermediate division precision well beyond any
// statutory rounding scale so a final Round never sees truncation error.
const divPrecision = 16

// Percent returns m × rate ÷ 100 at full precision. rate is a
// percentage (18 means 18%).
func (m Money) Percent(rate float64) Money {
	return Money{m.d.Mul(decimal.NewFromFloat(rate)).Div(decimal.NewFromInt(100))}
}

// Round returns m rounded to places decimal places using mode.
func (m Money) Round(places int32, mode RoundingMode) Money {
	switch mode {
	case RoundDown:
		return Money{m.d.RoundDown(places)}
	case RoundUp:
		return Money{m.d.RoundUp(places)}
	default:
		return Money{m.d.Round(places)}
	}
}

// RoundUnit rounds to the whole currency unit, half up. OHADA currencies
// carry no subunits, so this is the terminal rounding for every statutory
// formula.
func (m Money) RoundUnit() Money {
	return m.Round(0, RoundHalfUp)
}

// Abs returns |m|.
func (m Money) Abs() Money {
	return Money{m.d.Abs()}
}

// Neg returns -m.
func (m Money) Neg() Money {
	return Money{m.d.Neg()}
}

// IsZero reports whether m == 0.
func (m Money) IsZero() bool {
	return m.d.IsZero()
}

// IsPositive reports whether m > 0.
func (m Money) IsPositive() bool {
	return m.d.IsPositive()
}

// IsNegative reports whether m < 0.
func (m Money) IsNegative() bool {
	return m.d.IsNegative()
}

// GreaterThan reports whether m > other.
func (m Money) GreaterThan(other Money) bool {
	return m.d.GreaterThan(other.d)
}

// LessThan reports whether m < other.
func (m Money) LessThan(other Money) bool {
	return m.d.LessThan(other.d)
}

// Equal reports exact equality.
func (m Money) Equal(other Money) bool {
	return m.d.Equal(other.d)
}

// Max returns the larger of m and other.
func Max(a, b Money) Money {
	if a.GreaterThan(b) {
		return a
	}
	return b
}

// Min returns the smaller of m and other.
func Min(a, b Money) Money {
	if a.LessThan(b) {
		return a
	}
	return b
}

// Decimal exposes the underlying decimal for codecs.
func (m Money) Decimal() decimal.Decimal {
	return m.d
}

// Float64 unwraps m for the serialization boundary. Exact for any value
// representable at the currency's precision.
func (m Money) Float64() float64 {
	f, _ := m.d.Float64()
	return f
}

// String renders the exact decimal value.
func (m Money) String() string {
	return m.d.String()
}
