package rates

// ISScale is the corporate-tax configuration of one jurisdiction.
// Rates are percentages.
type ISScale struct {
	Rate        float64 // statutory IS rate
	MinimumRate float64 // minimum tax as % of turnover
}

// Documented fallbacks for unknown codes and for jurisdictions whose
// minimum-tax rate is not tabled.
const (
	DefaultISRate        = 30.0
	DefaultISMinimumRate = 0.5
)

// Cameroon's 33% is the 30% statutory rate plus the 10% additional
// communal centimes, published as a single combined rate.
var isScales = map[Country]ISScale{
	Benin:            {30, 1.0},
	BurkinaFaso:      {27.5, 0.5},
	Cameroon:         {33, 2.2},
	CentralAfrica:    {30, 1.85},
	Chad:             {35, 1.5},
	Comoros:          {35, 1.0},
	Congo:            {28, 1.0},
	CongoDR:          {30, 1.0},
	CoteDIvoire:      {25, 0.5},
	EquatorialGuinea: {35, 1.5},
	Gabon:            {30, 1.0},
	Guinea:           {25, 1.5},
	GuineaBissau:     {25, DefaultISMinimumRate},
	Mali:             {30, 1.0},
	Niger:            {30, 1.5},
	Senegal:          {30, 0.5},
	Togo:             {27, 1.0},
}

// IS returns the corporate-tax scale for a raw country code. Unknown
// codes get the default rates, never an error.
func IS(code string) ISScale {
	c, ok := Normalize(code)
	if !ok {
		return ISScale{DefaultISRate, DefaultISMinimumRate}
	}
	s, ok := isScales[c]
	if !ok {
		return ISScale{DefaultISRate, DefaultISMinimumRate}
	}
	if s.MinimumRate == 0 {
		s.MinimumRate = DefaultISMinimumRate
	}
	return s
}

// ISRate returns just the statutory rate for a raw code.
func ISRate(code string) float64 {
	return IS(code).Rate
}
