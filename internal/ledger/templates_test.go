package ledger

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ohada-dev/fisc/internal/money"
)

var testDate = time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)

func TestGenerate_AllTemplatesBalance(t *testing.T) {
	ops := []Operation{
		PurchaseGoods{ExclTax: 1_000_000, VAT: 180_000, VATRate: 18, Supplier: "SOTRA"},
		PurchaseServices{ExclTax: 250_000, VAT: 45_000, VATRate: 18},
		SaleGoods{ExclTax: 2_000_000, VAT: 360_000, VATRate: 18, Customer: "CFAO"},
		SaleServices{ExclTax: 500_000, VAT: 90_000, VATRate: 18},
		Payroll{Gross: 3_000_000, EmployeeCharges: 180_000, EmployerCharges: 420_000, IncomeTaxWithheld: 150_000},
		SocialPayment{Amount: 600_000},
		CustomerSettlement{Amount: 2_360_000, Customer: "CFAO"},
		SupplierSettlement{Amount: 1_180_000, Supplier: "SOTRA"},
		AssetAcquisition{ExclTax: 5_000_000, VAT: 900_000, VATRate: 18, Description: "camion"},
		DepreciationCharge{Amount: 1_250_000},
		TaxAccrual{Amount: 2_200_000},
		VATReturn{Collected: 450_000, Deductible: 225_000},
		VATReturn{Collected: 100_000, Deductible: 300_000},
	}

	for _, op := range ops {
		entry, err := Generate(testDate, "P-001", op)
		require.NoError(t, err, "%T", op)
		assert.True(t, entry.Balanced(), "%T: debits != credits", op)
		assert.NotEmpty(t, entry.Journal, "%T", op)
		assert.NotEmpty(t, entry.Label, "%T", op)

		report := ValidateEntry(entry, "CI")
		assert.True(t, report.Valid(), "%T: %v", op, report.Errors)
	}
}

func TestGenerate_PurchasePlacesVATOnDebit(t *testing.T) {
	entry, err := Generate(testDate, "P-002", PurchaseGoods{ExclTax: 1_000_000, VAT: 180_000, VATRate: 18})
	require.NoError(t, err)
	require.Len(t, entry.Lines, 3)

	vat := entry.Lines[1]
	assert.Equal(t, AcctVATDeductible, vat.Account)
	assert.True(t, vat.Debit.Equal(money.FromInt(180_000)))
	assert.True(t, vat.Credit.IsZero())
	assert.True(t, vat.VATBase.Equal(money.FromInt(1_000_000)))

	supplier := entry.Lines[2]
	assert.True(t, supplier.Credit.Equal(money.FromInt(1_180_000)))
}

func TestGenerate_SalePlacesVATOnCredit(t *testing.T) {
	entry, err := Generate(testDate, "V-001", SaleGoods{ExclTax: 2_000_000, VAT: 360_000, VATRate: 18})
	require.NoError(t, err)
	require.Len(t, entry.Lines, 3)

	assert.True(t, entry.Lines[0].Debit.Equal(money.FromInt(2_360_000)))
	vat := entry.Lines[2]
	assert.Equal(t, AcctVATCollected, vat.Account)
	assert.True(t, vat.Credit.Equal(money.FromInt(360_000)))
}

func TestGenerate_ZeroVATOmitsVATLine(t *testing.T) {
	entry, err := Generate(testDate, "P-003", PurchaseGoods{ExclTax: 100_000})
	require.NoError(t, err)
	assert.Len(t, entry.Lines, 2)
	assert.True(t, entry.Balanced())
}

func TestGenerate_PayrollNetPay(t *testing.T) {
	entry, err := Generate(testDate, "PA-01", Payroll{
		Gross:             3_000_000,
		EmployeeCharges:   180_000,
		EmployerCharges:   420_000,
		IncomeTaxWithheld: 150_000,
	})
	require.NoError(t, err)

	var net, social money.Money
	for _, l := range entry.Lines {
		switch l.Account {
		case AcctStaffPayable:
			net = l.Credit
		case AcctSocialBodies:
			social = l.Credit
		}
	}
	assert.True(t, net.Equal(money.FromInt(2_670_000)), "net = %s", net)
	assert.True(t, social.Equal(money.FromInt(600_000)))
}

func TestGenerate_VATReturnBranchesOnSign(t *testing.T) {
	// Collected > deductible: net payable to the state, on the credit side.
	payable, err := Generate(testDate, "OD-01", VATReturn{Collected: 450_000, Deductible: 225_000})
	require.NoError(t, err)
	last := payable.Lines[len(payable.Lines)-1]
	assert.Equal(t, AcctVATDue, last.Account)
	assert.True(t, last.Credit.Equal(money.FromInt(225_000)))

	// Deductible > collected: carried-forward credit, on the debit side.
	credit, err := Generate(testDate, "OD-02", VATReturn{Collected: 100_000, Deductible: 300_000})
	require.NoError(t, err)
	last = credit.Lines[len(credit.Lines)-1]
	assert.Equal(t, AcctVATCredit, last.Account)
	assert.True(t, last.Debit.Equal(money.FromInt(200_000)))

	// Exactly equal: nothing to settle, two lines only.
	even, err := Generate(testDate, "OD-03", VATReturn{Collected: 100_000, Deductible: 100_000})
	require.NoError(t, err)
	assert.Len(t, even.Lines, 2)
	assert.True(t, even.Balanced())
}

func TestGenerate_AccountOverrides(t *testing.T) {
	entry, err := Generate(testDate, "P-004", PurchaseGoods{
		ExclTax:        100_000,
		VAT:            18_000,
		VATRate:        18,
		ExpenseAccount: "602",
	})
	require.NoError(t, err)
	assert.Equal(t, "602", entry.Lines[0].Account)
}

func TestGenerate_IsDeterministic(t *testing.T) {
	op := SaleServices{ExclTax: 777_777, VAT: 140_000, VATRate: 18, Customer: "X"}
	a, err := Generate(testDate, "V-009", op)
	require.NoError(t, err)
	b, err := Generate(testDate, "V-009", op)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

type bogusOperation struct{}

func (bogusOperation) journal() string { return "OD" }
func (bogusOperation) label() string   { return "bogus" }

func TestGenerate_UnknownOperation(t *testing.T) {
	_, err := Generate(testDate, "X-01", bogusOperation{})
	assert.ErrorIs(t, err, ErrUnknownOperation)
}
