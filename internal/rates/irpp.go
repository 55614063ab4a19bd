package rates

// Bracket is one slice of a progressive scale. Min is inclusive, Max
// exclusive; a zero Max marks the unbounded top bracket. Amounts are in
// the jurisdiction's base currency unit, per year and per part.
type Bracket struct {
	Min  int64
	Max  int64
	Rate float64
}

// QuotientRules defines the family-quotient (parts) arithmetic of a
// jurisdiction.
type QuotientRules struct {
	Base         float64 // parts for a single taxpayer
	MarriedExtra float64 // additional parts when married
	PerChild     float64 // parts per dependent child
	MaxChildren  int     // children counted beyond this are ignored
	MaxParts     float64 // hard cap on total parts
}

// IRPPScale is the personal-income-tax configuration of one
// jurisdiction.
type IRPPScale struct {
	Brackets      []Bracket
	Quotient      QuotientRules
	AbatementRate float64 // professional-expense abatement, % of gross
	SurtaxRate    float64 // communal surtax on gross tax, % (0 if none)
}

// DefaultAbatementRate applies when a scale does not override it and the
// caller supplies no explicit abatement.
const DefaultAbatementRate = 20.0

var standardQuotient = QuotientRules{Base: 1, MarriedExtra: 1, PerChild: 0.5, MaxChildren: 6, MaxParts: 5}

var irppScales = map[Country]IRPPScale{
	Cameroon: {
		Brackets: []Bracket{
			{0, 2_000_000, 10},
			{2_000_000, 3_000_000, 15},
			{3_000_000, 5_000_000, 25},
			{5_000_000, 0, 35},
		},
		Quotient:      QuotientRules{Base: 1, MarriedExtra: 1, PerChild: 0.5, MaxChildren: 6, MaxParts: 5},
		AbatementRate: 30,
		SurtaxRate:    10, // additional communal centimes on the gross tax
	},
	CoteDIvoire: {
		Brackets: []Bracket{
			{0, 900_000, 0},
			{900_000, 1_440_000, 16},
			{1_440_000, 2_700_000, 21},
			{2_700_000, 4_860_000, 24},
			{4_860_000, 9_000_000, 28},
			{9_000_000, 0, 32},
		},
		Quotient:      standardQuotient,
		AbatementRate: 20,
	},
	Senegal: {
		Brackets: []Bracket{
			{0, 630_000, 0},
			{630_000, 1_500_000, 20},
			{1_500_000, 4_000_000, 30},
			{4_000_000, 8_250_000, 35},
			{8_250_000, 13_500_000, 37},
			{13_500_000, 0, 40},
		},
		Quotient:      QuotientRules{Base: 1, MarriedExtra: 1, PerChild: 0.5, MaxChildren: 8, MaxParts: 5},
		AbatementRate: 30,
	},
	Gabon: {
		Brackets: []Bracket{
			{0, 1_500_000, 0},
			{1_500_000, 1_920_000, 5},
			{1_920_000, 2_700_000, 10},
			{2_700_000, 3_600_000, 15},
			{3_600_000, 5_160_000, 20},
			{5_160_000, 7_500_000, 25},
			{7_500_000, 11_000_000, 30},
			{11_000_000, 0, 35},
		},
		Quotient:      QuotientRules{Base: 1, MarriedExtra: 1, PerChild: 0.5, MaxChildren: 10, MaxParts: 6},
		AbatementRate: 20,
	},
	Benin: {
		Brackets: []Bracket{
			{0, 600_000, 0},
			{600_000, 2_000_000, 10},
			{2_000_000, 3_500_000, 15},
			{3_500_000, 5_500_000, 19},
			{5_500_000, 0, 30},
		},
		Quotient:      standardQuotient,
		AbatementRate: 20,
	},
	Mali: {
		Brackets: []Bracket{
			{0, 330_000, 0},
			{330_000, 578_400, 5},
			{578_400, 1_176_400, 12},
			{1_176_400, 1_789_700, 18},
			{1_789_700, 2_384_200, 26},
			{2_384_200, 3_494_100, 31},
			{3_494_100, 0, 37},
		},
		Quotient:      standardQuotient,
		AbatementRate: 20,
	},
}

// IRPP returns the income-tax scale for a raw country code. Jurisdictions
// without a tabled scale use the default country's.
func IRPP(code string) IRPPScale {
	c, ok := Normalize(code)
	if ok {
		if s, found := irppScales[c]; found {
			return s
		}
	}
	return irppScales[DefaultCountry]
}
