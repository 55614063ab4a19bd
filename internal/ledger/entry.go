// Package ledger models SYSCOHADA journal entries, generates balanced
// entry skeletons from operation templates, and validates entries —
// generated or hand-authored — against the double-entry and VAT
// placement rules.
package ledger

import (
	"time"

	"github.com/ohada-dev/fisc/internal/money"
)

// Line is one side of a double entry. A valid line carries an amount on
// exactly one of Debit/Credit. VATBase and VATRate are set on VAT lines
// so the declared amount can be recomputed and checked.
type Line struct {
	Account string // SYSCOHADA account code
	Label   string
	Debit   money.Money
	Credit  money.Money
	VATBase money.Money // amount excl. tax this VAT was computed from
	VATRate float64     // declared VAT rate, %
}

// Amount returns the line's single non-zero side.
func (l Line) Amount() money.Money {
	if !l.Debit.IsZero() {
		return l.Debit
	}
	return l.Credit
}

// IsVAT reports whether the line is tagged as a VAT line.
func (l Line) IsVAT() bool {
	return l.VATRate != 0 || !l.VATBase.IsZero()
}

// Entry is an immutable journal entry. The generator produces them
// fresh; the validator only inspects.
type Entry struct {
	Date    time.Time
	Journal string // journal code: AC, VT, BQ, PA, OD
	Piece   string // piece reference
	Label   string
	Lines   []Line
}

// Totals returns the debit and credit sums.
func (e Entry) Totals() (debit, credit money.Money) {
	for _, l := range e.Lines {
		debit = debit.Add(l.Debit)
		credit = credit.Add(l.Credit)
	}
	return debit, credit
}

// BalanceTolerance is the maximum allowed |debit − credit| for an entry
// to count as balanced. OHADA currencies have no subunits, so a real
// imbalance is at least a full unit.
var BalanceTolerance = money.FromFloat(0.01)

// Balanced reports whether the entry's debits equal its credits within
// BalanceTolerance.
func (e Entry) Balanced() bool {
	debit, credit := e.Totals()
	return !debit.Sub(credit).Abs().GreaterThan(BalanceTolerance)
}

func debitLine(account, label string, amount money.Money) Line {
	return Line{Account: account, Label: label, Debit: amount}
}

func creditLine(account, label string, amount money.Money) Line {
	return Line{Account: account, Label: label, Credit: amount}
}
