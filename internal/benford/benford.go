// Package benford tests a set of amounts for conformity with Benford's
// first-digit law. It is a statistical screen: non-conformity flags a
// dataset for review, it does not prove manipulation.
package benford

import (
	"math"
)

// Expected frequencies log10(1 + 1/d) for digits 1..9. Index 0 unused.
var expectedFreq = [10]float64{
	0,
	0.30102999566398120,
	0.17609125905568124,
	0.12493873660829993,
	0.09691001300805642,
	0.07918124604762482,
	0.06694678963061322,
	0.05799194697768673,
	0.05115252244738129,
	0.04575749056067514,
}

// Chi-square critical values for 8 degrees of freedom.
const (
	ChiSquare95 = 15.507 // p = 0.05
	ChiSquare99 = 20.090 // p = 0.01
)

// Z-score severity thresholds (two-sided normal quantiles).
const (
	zWarning  = 1.96 // p = 0.05
	zHigh     = 2.58 // p = 0.01
	zCritical = 3.29 // p = 0.001
)

// Severity tiers an anomalous digit.
type Severity string

const (
	SeverityWarning  Severity = "warning"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

// DigitStat is the per-digit comparison of observed and expected
// frequencies.
type DigitStat struct {
	Digit             int
	Count             int
	ObservedFreq      float64
	ExpectedFreq      float64
	AbsoluteDeviation float64 // |observed − expected|
	RelativeDeviation float64 // deviation ÷ expected, %
	ZScore            float64
}

// Anomaly is one digit whose z-score exceeds the warning threshold.
type Anomaly struct {
	Digit    int
	ZScore   float64
	Severity Severity
}

// Result is the outcome of one analysis. An empty input yields the
// neutral zero Result with Conforming true.
type Result struct {
	TotalAmounts int // amounts actually analyzed (|x| ≥ 1)
	Digits       []DigitStat
	ChiSquare    float64
	Conforming   bool // chi-square below the 95% critical value
	Anomalies    []Anomaly
}

// ExpectedFrequency returns the Benford frequency of digit d (1..9).
func ExpectedFrequency(d int) float64 {
	if d < 1 || d > 9 {
		return 0
	}
	return expectedFreq[d]
}

// FirstDigit extracts the first significant digit of an amount, or 0
// when |amount| < 1 (the law does not apply below one unit). NaN and
// infinities have no first digit and also return 0.
func FirstDigit(amount float64) int {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return 0
	}
	a := math.Abs(amount)
	if a < 1 {
		return 0
	}
	for a >= 10 {
		a /= 10
	}
	return int(a)
}

// Analyze runs the conformity test over a set of amounts. Amounts with
// |x| < 1 are ignored; an input with nothing to analyze returns the
// neutral Result, never an error.
func Analyze(amounts []float64) Result {
	var counts [10]int
	total := 0
	for _, a := range amounts {
		d := FirstDigit(a)
		if d == 0 {
			continue
		}
		counts[d]++
		total++
	}

	if total == 0 {
		return Result{Conforming: true}
	}

	n := float64(total)
	digits := make([]DigitStat, 0, 9)
	chi := 0.0
	var anomalies []Anomaly

	for d := 1; d <= 9; d++ {
		expected := expectedFreq[d]
		observed := float64(counts[d]) / n

		// Chi-square in count space.
		expectedCount := expected * n
		diff := float64(counts[d]) - expectedCount
		chi += diff * diff / expectedCount

		// Z-score on the frequency with binomial standard error.
		se := math.Sqrt(expected * (1 - expected) / n)
		z := (observed - expected) / se

		deviation := math.Abs(observed - expected)
		digits = append(digits, DigitStat{
			Digit:             d,
			Count:             counts[d],
			ObservedFreq:      observed,
			ExpectedFreq:      expected,
			AbsoluteDeviation: deviation,
			RelativeDeviation: deviation / expected * 100,
			ZScore:            z,
		})

		if sev, flagged := severity(z); flagged {
			anomalies = append(anomalies, Anomaly{Digit: d, ZScore: z, Severity: sev})
		}
	}

	return Result{
		TotalAmounts: total,
		Digits:       digits,
		ChiSquare:    chi,
		Conforming:   chi < ChiSquare95,
		Anomalies:    anomalies,
	}
}

func severity(z float64) (Severity, bool) {
	switch abs := math.Abs(z); {
	case abs > zCritical:
		return SeverityCritical, true
	case abs > zHigh:
		return SeverityHigh, true
	case abs > zWarning:
		return SeverityWarning, true
	default:
		return "", false
	}
}
