package rates

// VATScale is the VAT configuration of one jurisdiction. Rates are
// percentages. SurtaxRate, where non-zero, is an additional levy
// computed on the VAT amount itself (Cameroon's communal centimes,
// Congo's centimes additionnels) and must be applied as a second
// rounding stage, never folded into a combined rate.
type VATScale struct {
	Normal     float64
	Reduced    []float64
	SurtaxRate float64
}

// DefaultVATRate applies to unknown country codes.
const DefaultVATRate = 18.0

var vatScales = map[Country]VATScale{
	Benin:            {Normal: 18},
	BurkinaFaso:      {Normal: 18},
	Cameroon:         {Normal: 17.5, SurtaxRate: 10},
	CentralAfrica:    {Normal: 19, Reduced: []float64{5}},
	Chad:             {Normal: 18, Reduced: []float64{9}},
	Comoros:          {Normal: 10},
	Congo:            {Normal: 18, Reduced: []float64{5}, SurtaxRate: 5},
	CongoDR:          {Normal: 16, Reduced: []float64{8}},
	CoteDIvoire:      {Normal: 18, Reduced: []float64{9}},
	EquatorialGuinea: {Normal: 15, Reduced: []float64{6}},
	Gabon:            {Normal: 18, Reduced: []float64{10, 5}},
	Guinea:           {Normal: 18},
	GuineaBissau:     {Normal: 19, Reduced: []float64{10}},
	Mali:             {Normal: 18, Reduced: []float64{5}},
	Niger:            {Normal: 19, Reduced: []float64{10, 5}},
	Senegal:          {Normal: 18, Reduced: []float64{10}},
	Togo:             {Normal: 18, Reduced: []float64{10}},
}

// VAT returns the VAT scale for a raw country code, defaulting to a
// plain 18% scale for unknown codes.
func VAT(code string) VATScale {
	c, ok := Normalize(code)
	if !ok {
		return VATScale{Normal: DefaultVATRate}
	}
	s, ok := vatScales[c]
	if !ok {
		return VATScale{Normal: DefaultVATRate}
	}
	return s
}

// VATRate returns the normal rate for a raw code.
func VATRate(code string) float64 {
	return VAT(code).Normal
}

// KnownVATRates lists every rate the jurisdiction recognizes (normal
// plus reduced, plus the universal zero rate). Used by the entry
// validator to distinguish non-standard rates from illegal ones.
func KnownVATRates(code string) []float64 {
	s := VAT(code)
	out := []float64{0, s.Normal}
	out = append(out, s.Reduced...)
	return out
}
