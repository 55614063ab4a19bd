package ledger

import "strings"

// Account is one row of the SYSCOHADA chart of accounts.
type Account struct {
	Code  string
	Label string
	Class int // SYSCOHADA class, first digit of the code
}

// Standard journal codes.
const (
	JournalPurchases = "AC"
	JournalSales     = "VT"
	JournalBank      = "BQ"
	JournalPayroll   = "PA"
	JournalMisc      = "OD"
)

// Default posting accounts used by the operation templates. Callers may
// override them per operation.
const (
	AcctPurchaseGoods    = "601"  // achats de marchandises
	AcctPurchaseServices = "622"  // services extérieurs
	AcctSuppliers        = "401"  // fournisseurs
	AcctAssetSuppliers   = "481"  // fournisseurs d'investissements
	AcctCustomers        = "411"  // clients
	AcctSalesGoods       = "701"  // ventes de marchandises
	AcctSalesServices    = "706"  // services vendus
	AcctGrossSalaries    = "661"  // rémunérations directes
	AcctEmployerCharges  = "664"  // charges sociales
	AcctStaffPayable     = "421"  // personnel, rémunérations dues
	AcctSocialBodies     = "431"  // sécurité sociale
	AcctIRPPWithheld     = "447"  // état, impôts retenus à la source
	AcctBank             = "521"  // banques
	AcctFixedAssets      = "241"  // matériel
	AcctDepreciationExp  = "681"  // dotations aux amortissements
	AcctDepreciation     = "284"  // amortissements du matériel
	AcctISExpense        = "891"  // impôts sur le résultat
	AcctISPayable        = "441"  // état, impôt sur les bénéfices
	AcctVATCollected     = "4431" // TVA facturée sur ventes
	AcctVATDeductible    = "4452" // TVA récupérable sur achats
	AcctVATAssetDeduct   = "4451" // TVA récupérable sur immobilisations
	AcctVATDue           = "4441" // état, TVA due
	AcctVATCredit        = "4449" // état, crédit de TVA à reporter
)

// DefaultChart returns the starter SYSCOHADA chart used by the entry
// generator and the CLI.
func DefaultChart() []Account {
	return []Account{
		{AcctFixedAssets, "Matériel et outillage", 2},
		{AcctDepreciation, "Amortissements du matériel", 2},
		{AcctSuppliers, "Fournisseurs", 4},
		{AcctCustomers, "Clients", 4},
		{AcctStaffPayable, "Personnel, rémunérations dues", 4},
		{AcctSocialBodies, "Organismes sociaux", 4},
		{AcctISPayable, "État, impôt sur les bénéfices", 4},
		{AcctVATCollected, "État, TVA facturée sur ventes", 4},
		{AcctVATDue, "État, TVA due", 4},
		{AcctVATCredit, "État, crédit de TVA à reporter", 4},
		{AcctVATAssetDeduct, "État, TVA récupérable sur immobilisations", 4},
		{AcctVATDeductible, "État, TVA récupérable sur achats", 4},
		{AcctIRPPWithheld, "État, impôts retenus à la source", 4},
		{AcctAssetSuppliers, "Fournisseurs d'investissements", 4},
		{AcctBank, "Banques", 5},
		{AcctPurchaseGoods, "Achats de marchandises", 6},
		{AcctPurchaseServices, "Services extérieurs", 6},
		{AcctGrossSalaries, "Rémunérations directes versées", 6},
		{AcctEmployerCharges, "Charges sociales", 6},
		{AcctDepreciationExp, "Dotations aux amortissements", 6},
		{AcctSalesGoods, "Ventes de marchandises", 7},
		{AcctSalesServices, "Services vendus", 7},
		{AcctISExpense, "Impôts sur le résultat", 8},
	}
}

// VAT account families. 443x carries collected VAT, 445x deductible
// VAT, 444x the state settlement accounts.
func IsVATAccount(code string) bool {
	return IsCollectedVATAccount(code) || IsDeductibleVATAccount(code) || IsVATSettlementAccount(code)
}

// IsCollectedVATAccount reports whether code belongs to the collected
// (output) VAT family.
func IsCollectedVATAccount(code string) bool {
	return strings.HasPrefix(code, "443")
}

// IsDeductibleVATAccount reports whether code belongs to the deductible
// (input) VAT family.
func IsDeductibleVATAccount(code string) bool {
	return strings.HasPrefix(code, "445")
}

// IsVATSettlementAccount reports whether code is a state VAT settlement
// account (TVA due, crédit de TVA).
func IsVATSettlementAccount(code string) bool {
	return strings.HasPrefix(code, "444")
}
