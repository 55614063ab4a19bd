package rates

// ContributionLine is one named social-contribution line. Rates are
// percentages of the (possibly capped) contribution base.
type ContributionLine struct {
	Code         string
	Label        string
	EmployerRate float64
	EmployeeRate float64
	MonthlyCap   int64 // cap on the contribution base; 0 = uncapped
	CadreOnly    bool  // applies only to executive-category employees
	FlatFee      int64 // fixed monthly employee fee; rates ignored when set
}

// OvertimeBracket defines the majoration applied to one tranche of
// overtime hours. Hours landing in bracket i of the caller's input use
// Majoration of bracket i.
type OvertimeBracket struct {
	Label      string
	Majoration float64 // percentage added to the base hourly rate
}

// PayrollScheme is the contribution configuration of one jurisdiction.
type PayrollScheme struct {
	Lines    []ContributionLine
	Overtime []OvertimeBracket
}

var payrollSchemes = map[Country]PayrollScheme{
	Cameroon: {
		Lines: []ContributionLine{
			{Code: "PVID", Label: "Pension vieillesse, invalidité, décès", EmployerRate: 4.2, EmployeeRate: 4.2, MonthlyCap: 750_000},
			{Code: "PF", Label: "Prestations familiales", EmployerRate: 7.0, MonthlyCap: 750_000},
			{Code: "RP", Label: "Risques professionnels", EmployerRate: 1.75, MonthlyCap: 750_000},
			{Code: "FNE", Label: "Fonds national de l'emploi", EmployerRate: 1.0},
			{Code: "CFC", Label: "Crédit foncier", EmployerRate: 1.5, EmployeeRate: 1.0},
			{Code: "RAV", Label: "Redevance audiovisuelle", FlatFee: 1_300},
		},
		Overtime: []OvertimeBracket{
			{"41e à 48e heure", 20},
			{"49e à 56e heure", 30},
			{"au-delà de la 56e heure", 40},
			{"nuit, dimanche et jours fériés", 50},
		},
	},
	CoteDIvoire: {
		Lines: []ContributionLine{
			{Code: "CR", Label: "Caisse de retraite", EmployerRate: 7.7, EmployeeRate: 6.3, MonthlyCap: 3_375_000},
			{Code: "PF", Label: "Prestations familiales", EmployerRate: 5.75, MonthlyCap: 70_000},
			{Code: "AT", Label: "Accidents du travail", EmployerRate: 3.0, MonthlyCap: 70_000},
			{Code: "FDFP", Label: "Formation professionnelle", EmployerRate: 1.5},
			{Code: "CRRAE", Label: "Retraite complémentaire cadres", EmployerRate: 1.5, EmployeeRate: 1.5, CadreOnly: true},
		},
		Overtime: []OvertimeBracket{
			{"41e à 46e heure", 15},
			{"au-delà de la 46e heure", 50},
			{"nuit et dimanche", 75},
			{"nuit de jour férié", 100},
		},
	},
	Senegal: {
		Lines: []ContributionLine{
			{Code: "IPRES-RG", Label: "IPRES régime général", EmployerRate: 8.4, EmployeeRate: 5.6, MonthlyCap: 432_000},
			{Code: "IPRES-RC", Label: "IPRES régime cadres", EmployerRate: 3.6, EmployeeRate: 2.4, MonthlyCap: 1_296_000, CadreOnly: true},
			{Code: "CSS-PF", Label: "CSS prestations familiales", EmployerRate: 7.0, MonthlyCap: 63_000},
			{Code: "CSS-AT", Label: "CSS accidents du travail", EmployerRate: 3.0, MonthlyCap: 63_000},
			{Code: "CFCE", Label: "Contribution forfaitaire employeur", EmployerRate: 3.0},
		},
		Overtime: []OvertimeBracket{
			{"41e à 48e heure", 15},
			{"au-delà de la 48e heure", 40},
			{"nuit et dimanche", 60},
			{"nuit de jour férié", 100},
		},
	},
	Gabon: {
		Lines: []ContributionLine{
			{Code: "CNSS-P", Label: "CNSS pensions", EmployerRate: 5.0, EmployeeRate: 2.5, MonthlyCap: 1_500_000},
			{Code: "CNSS-PF", Label: "CNSS prestations familiales", EmployerRate: 8.0, MonthlyCap: 1_500_000},
			{Code: "CNSS-AT", Label: "CNSS risques professionnels", EmployerRate: 3.0, MonthlyCap: 1_500_000},
			{Code: "CNAMGS", Label: "Assurance maladie", EmployerRate: 4.1, EmployeeRate: 1.0, MonthlyCap: 2_500_000},
		},
		Overtime: []OvertimeBracket{
			{"41e à 48e heure", 25},
			{"au-delà de la 48e heure", 50},
			{"nuit, dimanche et jours fériés", 100},
		},
	},
}

// Payroll returns the contribution scheme for a raw country code.
// Jurisdictions without a tabled scheme use the default country's.
func Payroll(code string) PayrollScheme {
	c, ok := Normalize(code)
	if ok {
		if s, found := payrollSchemes[c]; found {
			return s
		}
	}
	return payrollSchemes[DefaultCountry]
}
