package statements

import (
	"github.com/ohada-dev/fisc/internal/money"
)

// BalanceSheet holds the balance-sheet aggregates consumed by the ratio
// and working-capital calculators.
type BalanceSheet struct {
	FixedAssets        float64 // actif immobilisé net
	Inventory          float64 // stocks
	Receivables        float64 // créances clients
	Cash               float64 // trésorerie actif
	Equity             float64 // capitaux propres
	LongTermDebt       float64 // dettes financières
	Payables           float64 // dettes fournisseurs
	TaxSocialLiability float64 // dettes fiscales et sociales
	BankOverdraft      float64 // trésorerie passif
}

// TotalAssets sums the asset side.
func (b BalanceSheet) TotalAssets() float64 {
	return b.FixedAssets + b.Inventory + b.Receivables + b.Cash
}

// CurrentLiabilities sums the short-term debt side.
func (b BalanceSheet) CurrentLiabilities() float64 {
	return b.Payables + b.TaxSocialLiability + b.BankOverdraft
}

// RatiosInput pairs the balance sheet with the P&L figures the ratios
// need.
type RatiosInput struct {
	Balance     BalanceSheet
	Revenue     float64
	NetIncome   float64
	EBE         float64
	Purchases   float64 // annual purchases incl. tax, for supplier days
	CostOfGoods float64 // for inventory rotation
}

// RatiosResult carries the computed ratios as percentages or days.
// Ratios whose denominator is zero stay at zero and are listed in
// Skipped so the caller can tell "zero" from "not computable".
type RatiosResult struct {
	NetMargin         float64 // résultat net ÷ CA, %
	EBEMargin         float64 // EBE ÷ CA, %
	ReturnOnEquity    float64 // résultat net ÷ capitaux propres, %
	ReturnOnAssets    float64 // résultat net ÷ total actif, %
	CurrentRatio      float64 // actif circulant ÷ passif circulant
	QuickRatio        float64 // (actif circulant − stocks) ÷ passif circulant
	FinancialAutonomy float64 // capitaux propres ÷ total passif, %
	Gearing           float64 // dettes financières ÷ capitaux propres, %
	InventoryDays     float64 // stocks ÷ coût d'achat × 360
	ReceivableDays    float64 // créances ÷ CA TTC × 360
	PayableDays       float64 // fournisseurs ÷ achats TTC × 360
	Skipped           []string
}

// ComputeRatios derives the standard analysis ratios. Zero denominators
// are legitimate (a shell company has no revenue) and are reported, not
// failed.
func ComputeRatios(in RatiosInput) RatiosResult {
	var res RatiosResult
	b := in.Balance

	ratio := func(name string, num, den float64, scale float64) float64 {
		if den == 0 {
			res.Skipped = append(res.Skipped, name)
			return 0
		}
		r, err := money.FromFloat(num).MulFloat(scale).Div(money.FromFloat(den))
		if err != nil {
			res.Skipped = append(res.Skipped, name)
			return 0
		}
		return r.Round(2, money.RoundHalfUp).Float64()
	}

	currentAssets := b.Inventory + b.Receivables + b.Cash

	res.NetMargin = ratio("net_margin", in.NetIncome, in.Revenue, 100)
	res.EBEMargin = ratio("ebe_margin", in.EBE, in.Revenue, 100)
	res.ReturnOnEquity = ratio("roe", in.NetIncome, b.Equity, 100)
	res.ReturnOnAssets = ratio("roa", in.NetIncome, b.TotalAssets(), 100)
	res.CurrentRatio = ratio("current_ratio", currentAssets, b.CurrentLiabilities(), 1)
	res.QuickRatio = ratio("quick_ratio", currentAssets-b.Inventory, b.CurrentLiabilities(), 1)
	res.FinancialAutonomy = ratio("autonomy", b.Equity, b.TotalAssets(), 100)
	res.Gearing = ratio("gearing", b.LongTermDebt, b.Equity, 100)
	res.InventoryDays = ratio("inventory_days", b.Inventory, in.CostOfGoods, 360)
	res.ReceivableDays = ratio("receivable_days", b.Receivables, in.Revenue, 360)
	res.PayableDays = ratio("payable_days", b.Payables, in.Purchases, 360)

	return res
}
