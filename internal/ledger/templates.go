package ledger

import (
	"errors"
	"fmt"
	"time"

	"github.com/ohada-dev/fisc/internal/money"
)

// ErrUnknownOperation is returned by Generate for an operation type it
// does not handle. This is a programming-contract violation, not a
// validation finding.
var ErrUnknownOperation = errors.New("ledger: unknown operation type")

// Operation is the tagged variant over the entry templates. Each
// concrete type carries only the parameters its template needs; Generate
// matches exhaustively.
type Operation interface {
	journal() string
	label() string
}

// PurchaseGoods buys stock for resale: debit purchases and deductible
// VAT, credit the supplier for the tax-inclusive total.
type PurchaseGoods struct {
	ExclTax         float64
	VAT             float64
	VATRate         float64
	Supplier        string
	ExpenseAccount  string // default 601
	SupplierAccount string // default 401
}

func (PurchaseGoods) journal() string { return JournalPurchases }
func (op PurchaseGoods) label() string { return nonEmpty("Achat de marchandises", op.Supplier) }

// PurchaseServices buys external services.
type PurchaseServices struct {
	ExclTax         float64
	VAT             float64
	VATRate         float64
	Supplier        string
	ExpenseAccount  string // default 622
	SupplierAccount string // default 401
}

func (PurchaseServices) journal() string { return JournalPurchases }
func (op PurchaseServices) label() string { return nonEmpty("Achat de services", op.Supplier) }

// SaleGoods sells stock: debit the customer for the total, credit sales
// and collected VAT.
type SaleGoods struct {
	ExclTax         float64
	VAT             float64
	VATRate         float64
	Customer        string
	RevenueAccount  string // default 701
	CustomerAccount string // default 411
}

func (SaleGoods) journal() string { return JournalSales }
func (op SaleGoods) label() string { return nonEmpty("Vente de marchandises", op.Customer) }

// SaleServices invoices services rendered.
type SaleServices struct {
	ExclTax         float64
	VAT             float64
	VATRate         float64
	Customer        string
	RevenueAccount  string // default 706
	CustomerAccount string // default 411
}

func (SaleServices) journal() string { return JournalSales }
func (op SaleServices) label() string { return nonEmpty("Vente de services", op.Customer) }

// Payroll books one pay period: gross salaries and employer charges on
// the debit, net pay, social bodies and withheld income tax on the
// credit.
type Payroll struct {
	Gross             float64
	EmployeeCharges   float64
	EmployerCharges   float64
	IncomeTaxWithheld float64
}

func (Payroll) journal() string { return JournalPayroll }
func (Payroll) label() string { return "Paie du personnel" }

// SocialPayment settles the social bodies by bank.
type SocialPayment struct {
	Amount float64
}

func (SocialPayment) journal() string { return JournalBank }
func (SocialPayment) label() string { return "Règlement organismes sociaux" }

// CustomerSettlement records a customer payment received.
type CustomerSettlement struct {
	Amount   float64
	Customer string
}

func (CustomerSettlement) journal() string { return JournalBank }
func (op CustomerSettlement) label() string { return nonEmpty("Règlement client", op.Customer) }

// SupplierSettlement pays a supplier.
type SupplierSettlement struct {
	Amount   float64
	Supplier string
}

func (SupplierSettlement) journal() string { return JournalBank }
func (op SupplierSettlement) label() string { return nonEmpty("Règlement fournisseur", op.Supplier) }

// AssetAcquisition capitalizes a fixed asset with its deductible VAT.
type AssetAcquisition struct {
	ExclTax      float64
	VAT          float64
	VATRate      float64
	Description  string
	AssetAccount string // default 241
}

func (AssetAcquisition) journal() string { return JournalMisc }
func (op AssetAcquisition) label() string { return nonEmpty("Acquisition d'immobilisation", op.Description) }

// DepreciationCharge books the annual depreciation allowance.
type DepreciationCharge struct {
	Amount              float64
	Description         string
	DepreciationAccount string // default 284
}

func (DepreciationCharge) journal() string { return JournalMisc }
func (op DepreciationCharge) label() string { return nonEmpty("Dotation aux amortissements", op.Description) }

// TaxAccrual books the corporate income tax due for the year.
type TaxAccrual struct {
	Amount float64
}

func (TaxAccrual) journal() string { return JournalMisc }
func (TaxAccrual) label() string { return "Impôt sur les sociétés" }

// VATReturn clears the period's VAT accounts. When collected VAT
// exceeds deductible VAT the net is payable to the state; otherwise the
// net is a credit carried forward. The sign decides both the account
// and the side of the balancing line.
type VATReturn struct {
	Collected  float64
	Deductible float64
}

func (VATReturn) journal() string { return JournalMisc }
func (VATReturn) label() string { return "Déclaration de TVA" }

// Generate builds a balanced entry from an operation template. The
// returned entry is a fresh value; generation is deterministic for
// identical parameters.
func Generate(date time.Time, piece string, op Operation) (Entry, error) {
	lines, err := buildLines(op)
	if err != nil {
		return Entry{}, err
	}
	return Entry{
		Date:    date,
		Journal: op.journal(),
		Piece:   piece,
		Label:   op.label(),
		Lines:   lines,
	}, nil
}

func buildLines(op Operation) ([]Line, error) {
	switch op := op.(type) {
	case PurchaseGoods:
		return purchaseLines(op.ExclTax, op.VAT, op.VATRate,
			pick(op.ExpenseAccount, AcctPurchaseGoods), "Achats de marchandises",
			pick(op.SupplierAccount, AcctSuppliers), op.Supplier), nil

	case PurchaseServices:
		return purchaseLines(op.ExclTax, op.VAT, op.VATRate,
			pick(op.ExpenseAccount, AcctPurchaseServices), "Services extérieurs",
			pick(op.SupplierAccount, AcctSuppliers), op.Supplier), nil

	case SaleGoods:
		return saleLines(op.ExclTax, op.VAT, op.VATRate,
			pick(op.RevenueAccount, AcctSalesGoods), "Ventes de marchandises",
			pick(op.CustomerAccount, AcctCustomers), op.Customer), nil

	case SaleServices:
		return saleLines(op.ExclTax, op.VAT, op.VATRate,
			pick(op.RevenueAccount, AcctSalesServices), "Services vendus",
			pick(op.CustomerAccount, AcctCustomers), op.Customer), nil

	case Payroll:
		gross := money.FromFloat(op.Gross)
		employee := money.FromFloat(op.EmployeeCharges)
		employer := money.FromFloat(op.EmployerCharges)
		irpp := money.FromFloat(op.IncomeTaxWithheld)
		net := gross.Sub(employee).Sub(irpp)

		lines := []Line{
			debitLine(AcctGrossSalaries, "Salaires bruts", gross),
			debitLine(AcctEmployerCharges, "Charges patronales", employer),
			creditLine(AcctStaffPayable, "Salaires nets à payer", net),
			creditLine(AcctSocialBodies, "Cotisations sociales", employee.Add(employer)),
		}
		if !irpp.IsZero() {
			lines = append(lines, creditLine(AcctIRPPWithheld, "IRPP retenu à la source", irpp))
		}
		return lines, nil

	case SocialPayment:
		amount := money.FromFloat(op.Amount)
		return []Line{
			debitLine(AcctSocialBodies, "Organismes sociaux", amount),
			creditLine(AcctBank, "Banque", amount),
		}, nil

	case CustomerSettlement:
		amount := money.FromFloat(op.Amount)
		return []Line{
			debitLine(AcctBank, "Banque", amount),
			creditLine(AcctCustomers, nonEmpty("Client", op.Customer), amount),
		}, nil

	case SupplierSettlement:
		amount := money.FromFloat(op.Amount)
		return []Line{
			debitLine(AcctSuppliers, nonEmpty("Fournisseur", op.Supplier), amount),
			creditLine(AcctBank, "Banque", amount),
		}, nil

	case AssetAcquisition:
		excl := money.FromFloat(op.ExclTax)
		vat := money.FromFloat(op.VAT)
		lines := []Line{debitLine(pick(op.AssetAccount, AcctFixedAssets), "Immobilisation", excl)}
		if !vat.IsZero() {
			vatLine := debitLine(AcctVATAssetDeduct, "TVA récupérable sur immobilisations", vat)
			vatLine.VATBase = excl
			vatLine.VATRate = op.VATRate
			lines = append(lines, vatLine)
		}
		return append(lines, creditLine(AcctAssetSuppliers, "Fournisseur d'investissements", excl.Add(vat))), nil

	case DepreciationCharge:
		amount := money.FromFloat(op.Amount)
		return []Line{
			debitLine(AcctDepreciationExp, "Dotation de l'exercice", amount),
			creditLine(pick(op.DepreciationAccount, AcctDepreciation), "Amortissements cumulés", amount),
		}, nil

	case TaxAccrual:
		amount := money.FromFloat(op.Amount)
		return []Line{
			debitLine(AcctISExpense, "Charge d'impôt sur le résultat", amount),
			creditLine(AcctISPayable, "État, IS à payer", amount),
		}, nil

	case VATReturn:
		collected := money.FromFloat(op.Collected)
		deductible := money.FromFloat(op.Deductible)
		lines := []Line{
			debitLine(AcctVATCollected, "TVA facturée du mois", collected),
			creditLine(AcctVATDeductible, "TVA récupérable du mois", deductible),
		}
		net := collected.Sub(deductible)
		switch {
		case net.IsPositive():
			lines = append(lines, creditLine(AcctVATDue, "TVA nette à décaisser", net))
		case net.IsNegative():
			lines = append(lines, debitLine(AcctVATCredit, "Crédit de TVA à reporter", net.Abs()))
		}
		return lines, nil

	default:
		return nil, fmt.Errorf("%w: %T", ErrUnknownOperation, op)
	}
}

func purchaseLines(exclTax, vat, vatRate float64, expenseAccount, expenseLabel, supplierAccount, supplier string) []Line {
	excl := money.FromFloat(exclTax)
	tax := money.FromFloat(vat)
	lines := []Line{debitLine(expenseAccount, expenseLabel, excl)}
	if !tax.IsZero() {
		vatLine := debitLine(AcctVATDeductible, "TVA récupérable", tax)
		vatLine.VATBase = excl
		vatLine.VATRate = vatRate
		lines = append(lines, vatLine)
	}
	return append(lines, creditLine(supplierAccount, nonEmpty("Fournisseur", supplier), excl.Add(tax)))
}

func saleLines(exclTax, vat, vatRate float64, revenueAccount, revenueLabel, customerAccount, customer string) []Line {
	excl := money.FromFloat(exclTax)
	tax := money.FromFloat(vat)
	lines := []Line{
		debitLine(customerAccount, nonEmpty("Client", customer), excl.Add(tax)),
		creditLine(revenueAccount, revenueLabel, excl),
	}
	if !tax.IsZero() {
		vatLine := creditLine(AcctVATCollected, "TVA facturée", tax)
		vatLine.VATBase = excl
		vatLine.VATRate = vatRate
		lines = append(lines, vatLine)
	}
	return lines
}

func pick(value, fallback string) string {
	if value != "" {
		return value
	}
	return fallback
}

func nonEmpty(prefix, detail string) string {
	if detail == "" {
		return prefix
	}
	return prefix + " " + detail
}
