package ledger

import (
	"fmt"

	"github.com/ohada-dev/fisc/internal/money"
	"github.com/ohada-dev/fisc/internal/rates"
	"github.com/ohada-dev/fisc/internal/tax"
)

// Issue is one validation finding. Line is 1-based; 0 marks an
// entry-level finding.
type Issue struct {
	Code    string
	Line    int
	Message string
}

func (i Issue) String() string {
	if i.Line == 0 {
		return fmt.Sprintf("[%s] %s", i.Code, i.Message)
	}
	return fmt.Sprintf("[%s] line %d: %s", i.Code, i.Line, i.Message)
}

// Report collects every finding on an entry. Errors block, warnings do
// not. Validation never stops at the first problem: hand-authored
// entries are expected to be imperfect and the caller wants the full
// list.
type Report struct {
	Errors   []Issue
	Warnings []Issue
}

// Valid reports whether the entry carries no blocking error.
func (r Report) Valid() bool {
	return len(r.Errors) == 0
}

func (r *Report) errorf(code string, line int, format string, args ...any) {
	r.Errors = append(r.Errors, Issue{Code: code, Line: line, Message: fmt.Sprintf(format, args...)})
}

func (r *Report) warnf(code string, line int, format string, args ...any) {
	r.Warnings = append(r.Warnings, Issue{Code: code, Line: line, Message: fmt.Sprintf(format, args...)})
}

// declaredVATTolerance allows one unit of rounding drift between a
// declared VAT amount and its recomputation.
var declaredVATTolerance = money.FromInt(1)

// ValidateEntry runs the balance and VAT placement rules for the given
// jurisdiction. It works identically on generated and hand-authored
// entries and never mutates its input.
func ValidateEntry(e Entry, country string) Report {
	var r Report

	validateBalance(&r, e)
	validateVAT(&r, e, country)

	return r
}

// ValidateBalance runs only the double-entry rules: one side per line,
// debits equal credits within tolerance.
func ValidateBalance(e Entry) Report {
	var r Report
	validateBalance(&r, e)
	return r
}

func validateBalance(r *Report, e Entry) {
	if len(e.Lines) == 0 {
		r.errorf("EMPTY", 0, "entry has no lines")
		return
	}

	for i, l := range e.Lines {
		hasDebit := !l.Debit.IsZero()
		hasCredit := !l.Credit.IsZero()
		if hasDebit == hasCredit {
			r.errorf("ONE_SIDE", i+1, "line must carry exactly one of debit or credit")
		}
		if l.Debit.IsNegative() || l.Credit.IsNegative() {
			r.errorf("NEGATIVE", i+1, "amounts must be non-negative; book the opposite side instead")
		}
		if l.Account == "" {
			r.errorf("NO_ACCOUNT", i+1, "line has no account code")
		}
	}

	debit, credit := e.Totals()
	if debit.Sub(credit).Abs().GreaterThan(BalanceTolerance) {
		r.errorf("UNBALANCED", 0, "debits (%s) != credits (%s)", debit, credit)
	}
}

func validateVAT(r *Report, e Entry, country string) {
	known := rates.KnownVATRates(country)
	clearing := isVATClearing(e)

	for i, l := range e.Lines {
		isVATAccount := IsVATAccount(l.Account)

		if l.IsVAT() && !isVATAccount {
			r.errorf("VAT_ACCOUNT", i+1, "VAT-tagged line posts to %s, outside the VAT account families (443x/444x/445x)", l.Account)
			continue
		}
		if !isVATAccount {
			continue
		}

		// Placement: deductible VAT belongs on the debit side,
		// collected VAT on the credit side. A VAT return clears the
		// period balances with the opposite postings, so the rule is
		// suspended there.
		if !clearing {
			if IsDeductibleVATAccount(l.Account) && !l.Credit.IsZero() {
				r.errorf("VAT_SIDE", i+1, "deductible VAT (%s) must be on the debit side", l.Account)
			}
			if IsCollectedVATAccount(l.Account) && !l.Debit.IsZero() {
				r.errorf("VAT_SIDE", i+1, "collected VAT (%s) must be on the credit side", l.Account)
			}
		}

		// Declared amount vs recomputation, one unit of tolerance.
		if !l.VATBase.IsZero() && l.VATRate != 0 {
			recomputed := tax.ComputeVAT(l.VATBase, l.VATRate)
			declared := l.Amount()
			if declared.Sub(recomputed).Abs().GreaterThan(declaredVATTolerance) {
				r.errorf("VAT_MISMATCH", i+1, "declared VAT %s differs from recomputed %s (base %s at %.2f%%)",
					declared, recomputed, l.VATBase, l.VATRate)
			}
		}

		// Non-standard rates are allowed but worth flagging: some
		// jurisdictions grant negotiated or exceptional rates.
		if l.VATRate != 0 && !containsRate(known, l.VATRate) {
			r.warnf("VAT_RATE", i+1, "rate %.2f%% is not a standard %s rate", l.VATRate, rates.Detect(country))
		}
	}
}

// isVATClearing detects the VAT-return pattern: collected VAT debited
// and deductible VAT credited in the same entry, reversing the period
// balances toward the state settlement accounts. No invoice posts that
// combination.
func isVATClearing(e Entry) bool {
	var debitsCollected, creditsDeductible bool
	for _, l := range e.Lines {
		if IsCollectedVATAccount(l.Account) && !l.Debit.IsZero() {
			debitsCollected = true
		}
		if IsDeductibleVATAccount(l.Account) && !l.Credit.IsZero() {
			creditsDeductible = true
		}
	}
	return debitsCollected && creditsDeductible
}

func containsRate(known []float64, rate float64) bool {
	for _, k := range known {
		if k == rate {
			return true
		}
	}
	return false
}
