// Package rates holds the per-jurisdiction tax configuration for the 17
// OHADA member states. Tables are package-level, immutable after init,
// and safe to share across goroutines. Every lookup has an explicit
// default entry: an unknown country code never fails, it falls back to
// the documented default rates.
package rates

import "strings"

// Country is an ISO 3166-1 alpha-2 code of an OHADA member state.
type Country string

const (
	Benin            Country = "BJ"
	BurkinaFaso      Country = "BF"
	Cameroon         Country = "CM"
	CentralAfrica    Country = "CF"
	Chad             Country = "TD"
	Comoros          Country = "KM"
	Congo            Country = "CG"
	CongoDR          Country = "CD"
	CoteDIvoire      Country = "CI"
	EquatorialGuinea Country = "GQ"
	Gabon            Country = "GA"
	Guinea           Country = "GN"
	GuineaBissau     Country = "GW"
	Mali             Country = "ML"
	Niger            Country = "NE"
	Senegal          Country = "SN"
	Togo             Country = "TG"
)

// DefaultCountry is the fallback used when a code cannot be recognized.
// Inherited business decision; see the repository design notes.
const DefaultCountry = CoteDIvoire

// Info describes a member state for UI pickers.
type Info struct {
	Code     Country
	Name     string
	Currency string
}

var countries = []Info{
	{Benin, "Bénin", "XOF"},
	{BurkinaFaso, "Burkina Faso", "XOF"},
	{Cameroon, "Cameroun", "XAF"},
	{CentralAfrica, "Centrafrique", "XAF"},
	{Chad, "Tchad", "XAF"},
	{Comoros, "Comores", "KMF"},
	{Congo, "Congo", "XAF"},
	{CongoDR, "RD Congo", "CDF"},
	{CoteDIvoire, "Côte d'Ivoire", "XOF"},
	{EquatorialGuinea, "Guinée Équatoriale", "XAF"},
	{Gabon, "Gabon", "XAF"},
	{Guinea, "Guinée", "GNF"},
	{GuineaBissau, "Guinée-Bissau", "XOF"},
	{Mali, "Mali", "XOF"},
	{Niger, "Niger", "XOF"},
	{Senegal, "Sénégal", "XOF"},
	{Togo, "Togo", "XOF"},
}

var byCode = func() map[Country]Info {
	m := make(map[Country]Info, len(countries))
	for _, c := range countries {
		m[c.Code] = c
	}
	return m
}()

// Countries returns all member states in stable order.
func Countries() []Info {
	out := make([]Info, len(countries))
	copy(out, countries)
	return out
}

// Normalize uppercases a raw code and reports whether it names a member
// state.
func Normalize(code string) (Country, bool) {
	c := Country(strings.ToUpper(strings.TrimSpace(code)))
	_, ok := byCode[c]
	return c, ok
}

// Detect resolves a raw code to a member state, falling back to
// DefaultCountry for anything unrecognized.
func Detect(code string) Country {
	if c, ok := Normalize(code); ok {
		return c
	}
	return DefaultCountry
}

// Lookup returns the Info for a code, falling back to DefaultCountry.
func Lookup(code string) Info {
	return byCode[Detect(code)]
}
