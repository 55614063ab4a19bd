package rates

// IncomeType classifies income subject to withholding at source.
type IncomeType string

const (
	IncomeBIC         IncomeType = "bic"         // industrial & commercial profits
	IncomeBNC         IncomeType = "bnc"         // non-commercial profits (fees)
	IncomeRents       IncomeType = "rents"       // property income
	IncomeDividends   IncomeType = "dividends"   // distributed profits
	IncomeInterest    IncomeType = "interest"    // revenue from debt claims
	IncomeNonResident IncomeType = "nonresident" // payments to non-residents
)

// IncomeTypes lists every supported income type in stable order.
func IncomeTypes() []IncomeType {
	return []IncomeType{IncomeBIC, IncomeBNC, IncomeRents, IncomeDividends, IncomeInterest, IncomeNonResident}
}

// WithholdingRate configures withholding for one income type. The
// account codes tie the tax result to its SYSCOHADA posting: debit the
// counterparty, credit the state withholding account.
type WithholdingRate struct {
	Rate          float64
	MinimumBase   int64 // below this gross amount no withholding applies; 0 = none
	DebitAccount  string
	CreditAccount string
}

// 447 carries taxes withheld at source for the state; 4424 the
// counterpart on dividends paid.
var withholdingTables = map[Country]map[IncomeType]WithholdingRate{
	Cameroon: {
		IncomeBIC:         {Rate: 5.5, DebitAccount: "401", CreditAccount: "4471"},
		IncomeBNC:         {Rate: 16.5, DebitAccount: "401", CreditAccount: "4471"},
		IncomeRents:       {Rate: 15, MinimumBase: 100_000, DebitAccount: "622", CreditAccount: "4472"},
		IncomeDividends:   {Rate: 16.5, DebitAccount: "465", CreditAccount: "4424"},
		IncomeInterest:    {Rate: 16.5, DebitAccount: "671", CreditAccount: "4424"},
		IncomeNonResident: {Rate: 15, DebitAccount: "401", CreditAccount: "4478"},
	},
	CoteDIvoire: {
		IncomeBIC:         {Rate: 7.5, MinimumBase: 50_000, DebitAccount: "401", CreditAccount: "4471"},
		IncomeBNC:         {Rate: 7.5, DebitAccount: "401", CreditAccount: "4471"},
		IncomeRents:       {Rate: 12, MinimumBase: 100_000, DebitAccount: "622", CreditAccount: "4472"},
		IncomeDividends:   {Rate: 15, DebitAccount: "465", CreditAccount: "4424"},
		IncomeInterest:    {Rate: 18, DebitAccount: "671", CreditAccount: "4424"},
		IncomeNonResident: {Rate: 20, DebitAccount: "401", CreditAccount: "4478"},
	},
	Senegal: {
		IncomeBIC:         {Rate: 5, MinimumBase: 25_000, DebitAccount: "401", CreditAccount: "4471"},
		IncomeBNC:         {Rate: 5, DebitAccount: "401", CreditAccount: "4471"},
		IncomeRents:       {Rate: 5, MinimumBase: 150_000, DebitAccount: "622", CreditAccount: "4472"},
		IncomeDividends:   {Rate: 10, DebitAccount: "465", CreditAccount: "4424"},
		IncomeInterest:    {Rate: 16, DebitAccount: "671", CreditAccount: "4424"},
		IncomeNonResident: {Rate: 25, DebitAccount: "401", CreditAccount: "4478"},
	},
	Gabon: {
		IncomeBIC:         {Rate: 9.5, DebitAccount: "401", CreditAccount: "4471"},
		IncomeBNC:         {Rate: 9.5, DebitAccount: "401", CreditAccount: "4471"},
		IncomeRents:       {Rate: 15, MinimumBase: 100_000, DebitAccount: "622", CreditAccount: "4472"},
		IncomeDividends:   {Rate: 20, DebitAccount: "465", CreditAccount: "4424"},
		IncomeInterest:    {Rate: 20, DebitAccount: "671", CreditAccount: "4424"},
		IncomeNonResident: {Rate: 20, DebitAccount: "401", CreditAccount: "4478"},
	},
}

// Withholding returns the rate entry for a raw code and income type.
// Jurisdictions without a table use the default country's; an unknown
// income type reports false.
func Withholding(code string, income IncomeType) (WithholdingRate, bool) {
	c, ok := Normalize(code)
	table, found := withholdingTables[c]
	if !ok || !found {
		table = withholdingTables[DefaultCountry]
	}
	r, found := table[income]
	return r, found
}
