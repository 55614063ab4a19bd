package toolkit

import (
	"fmt"
	"time"

	"github.com/ohada-dev/fisc/internal/benford"
	"github.com/ohada-dev/fisc/internal/ledger"
	"github.com/ohada-dev/fisc/internal/money"
	"github.com/ohada-dev/fisc/internal/rates"
	"github.com/ohada-dev/fisc/internal/statements"
	"github.com/ohada-dev/fisc/internal/tax"
)

// --- Tax tools ---

func (r *Registry) isCalculate(kwargs map[string]any) (any, error) {
	res := tax.CalculateIS(tax.ISInput{
		Country:          stringArg(kwargs, "country"),
		AccountingResult: floatArg(kwargs, "accounting_result"),
		Reintegrations:   floatArg(kwargs, "reintegrations"),
		Deductions:       floatArg(kwargs, "deductions"),
		PriorLosses:      floatArg(kwargs, "prior_losses"),
		Turnover:         floatArg(kwargs, "turnover"),
		AdvancePayments:  floatArg(kwargs, "advance_payments"),
	})
	return map[string]any{
		"country":            string(res.Country),
		"rate":               res.Rate,
		"minimum_rate":       res.MinimumRate,
		"taxable_result_raw": res.TaxableResultRaw.Float64(),
		"imputed_losses":     res.ImputedLosses.Float64(),
		"taxable_result":     res.TaxableResult.Float64(),
		"gross_tax":          res.GrossTax.Float64(),
		"minimum_tax":        res.MinimumTax.Float64(),
		"tax_due":            res.TaxDue.Float64(),
		"net_tax":            res.NetTax.Float64(),
		"installment":        res.Installment.Float64(),
	}, nil
}

func (r *Registry) vatCompute(kwargs map[string]any) (any, error) {
	base := money.FromFloat(floatArg(kwargs, "amount_excl_tax"))
	rate := floatArg(kwargs, "rate")
	vat := tax.ComputeVAT(base, rate)
	return map[string]any{
		"amount_excl_tax": base.Float64(),
		"rate":            rate,
		"vat":             vat.Float64(),
		"amount_incl_tax": base.Add(vat).Float64(),
	}, nil
}

func (r *Registry) vatExtract(kwargs map[string]any) (any, error) {
	incl := money.FromFloat(floatArg(kwargs, "amount_incl_tax"))
	rate := floatArg(kwargs, "rate")
	excl, err := tax.ComputeExclTax(incl, rate)
	if err != nil {
		return nil, err
	}
	return map[string]any{
		"amount_incl_tax": incl.Float64(),
		"rate":            rate,
		"amount_excl_tax": excl.Float64(),
		"vat":             incl.Sub(excl).Float64(),
	}, nil
}

func (r *Registry) vatCountry(kwargs map[string]any) (any, error) {
	b := tax.CountryVAT(stringArg(kwargs, "country"), money.FromFloat(floatArg(kwargs, "amount_excl_tax")))
	return map[string]any{
		"country":         string(b.Country),
		"rate":            b.Rate,
		"surtax_rate":     b.SurtaxRate,
		"amount_excl_tax": b.Base.Float64(),
		"vat":             b.VAT.Float64(),
		"surtax":          b.Surtax.Float64(),
		"total_vat":       b.TotalVAT.Float64(),
		"amount_incl_tax": b.InclTax.Float64(),
	}, nil
}

func (r *Registry) irppCalculate(kwargs map[string]any) (any, error) {
	res := tax.CalculateIRPP(tax.IRPPInput{
		Country:       stringArg(kwargs, "country"),
		GrossIncome:   floatArg(kwargs, "gross_income"),
		AbatementRate: floatArg(kwargs, "abatement_rate"),
		Married:       boolArg(kwargs, "married"),
		Children:      intArg(kwargs, "children"),
	})

	trace := make([]map[string]any, len(res.Trace))
	for i, b := range res.Trace {
		trace[i] = map[string]any{
			"min":  b.Min.Float64(),
			"max":  b.Max.Float64(),
			"rate": b.Rate,
			"base": b.Base.Float64(),
			"tax":  b.Tax.Float64(),
		}
	}

	return map[string]any{
		"country":         string(res.Country),
		"parts":           res.Parts,
		"abatement_rate":  res.AbatementRate,
		"abatement":       res.Abatement.Float64(),
		"net_taxable":     res.NetTaxable.Float64(),
		"income_per_part": res.IncomePerPart.Float64(),
		"trace":           trace,
		"tax_per_part":    res.TaxPerPart.Float64(),
		"gross_tax":       res.GrossTax.Float64(),
		"surtax":          res.Surtax.Float64(),
		"net_tax":         res.NetTax.Float64(),
		"effective_rate":  res.EffectiveRate,
	}, nil
}

func (r *Registry) payrollCalculate(kwargs map[string]any) (any, error) {
	res := tax.CalculatePayroll(tax.PayrollInput{
		Country:            stringArg(kwargs, "country"),
		BaseSalary:         floatArg(kwargs, "base_salary"),
		HourlyRate:         floatArg(kwargs, "hourly_rate"),
		OvertimeHours:      floatsArg(kwargs, "overtime_hours"),
		Cadre:              boolArg(kwargs, "cadre"),
		TransportAllowance: floatArg(kwargs, "transport_allowance"),
		MealAllowance:      floatArg(kwargs, "meal_allowance"),
	})

	lines := make([]map[string]any, len(res.Lines))
	for i, l := range res.Lines {
		lines[i] = map[string]any{
			"code":          l.Code,
			"label":         l.Label,
			"base":          l.Base.Float64(),
			"employer_rate": l.EmployerRate,
			"employee_rate": l.EmployeeRate,
			"employer":      l.Employer.Float64(),
			"employee":      l.Employee.Float64(),
		}
	}

	return map[string]any{
		"country":        string(res.Country),
		"overtime_pay":   res.OvertimePay.Float64(),
		"taxable_base":   res.TaxableBase.Float64(),
		"allowances":     res.Allowances.Float64(),
		"lines":          lines,
		"total_employee": res.TotalEmployee.Float64(),
		"total_employer": res.TotalEmployer.Float64(),
		"net_pay":        res.NetPay.Float64(),
		"employer_cost":  res.EmployerCost.Float64(),
	}, nil
}

func (r *Registry) withholdingCalculate(kwargs map[string]any) (any, error) {
	res, err := tax.CalculateWithholding(tax.WithholdingInput{
		Country: stringArg(kwargs, "country"),
		Income:  rates.IncomeType(stringArg(kwargs, "income_type")),
		Gross:   floatArg(kwargs, "gross"),
	})
	if err != nil {
		return nil, err
	}
	return map[string]any{
		"country":        string(res.Country),
		"income_type":    string(res.Income),
		"rate":           res.Rate,
		"gross":          res.Gross.Float64(),
		"withheld":       res.Withheld.Float64(),
		"net":            res.Net.Float64(),
		"applied":        res.Applied,
		"note":           res.Note,
		"debit_account":  res.DebitAccount,
		"credit_account": res.CreditAccount,
	}, nil
}

// --- Statement tools ---

func (r *Registry) sigCompute(kwargs map[string]any) (any, error) {
	res := statements.ComputeSIG(statements.Aggregates{
		SalesGoods:            floatArg(kwargs, "sales_goods"),
		CostOfGoodsSold:       floatArg(kwargs, "cost_of_goods_sold"),
		SalesProduced:         floatArg(kwargs, "sales_produced"),
		ProductionStored:      floatArg(kwargs, "production_stored"),
		ProductionCapitalized: floatArg(kwargs, "production_capitalized"),
		IntermediateConsumed:  floatArg(kwargs, "intermediate_consumed"),
		OperatingSubsidies:    floatArg(kwargs, "operating_subsidies"),
		TaxesAndDuties:        floatArg(kwargs, "taxes_and_duties"),
		PersonnelCosts:        floatArg(kwargs, "personnel_costs"),
		OtherOperatingIncome:  floatArg(kwargs, "other_operating_income"),
		OtherOperatingCosts:   floatArg(kwargs, "other_operating_costs"),
		Depreciation:          floatArg(kwargs, "depreciation"),
		Reversals:             floatArg(kwargs, "reversals"),
		FinancialIncome:       floatArg(kwargs, "financial_income"),
		FinancialCosts:        floatArg(kwargs, "financial_costs"),
		ExtraordinaryIncome:   floatArg(kwargs, "extraordinary_income"),
		ExtraordinaryCosts:    floatArg(kwargs, "extraordinary_costs"),
		IncomeTax:             floatArg(kwargs, "income_tax"),
	})
	return map[string]any{
		"revenue":           res.Revenue.Float64(),
		"commercial_margin": res.CommercialMargin.Float64(),
		"production":        res.Production.Float64(),
		"value_added":       res.ValueAdded.Float64(),
		"ebe":               res.EBE.Float64(),
		"operating_result":  res.OperatingResult.Float64(),
		"financial_result":  res.FinancialResult.Float64(),
		"ordinary_result":   res.OrdinaryResult.Float64(),
		"extraordinary_net": res.ExtraordinaryNet.Float64(),
		"net_result":        res.NetResult.Float64(),
		"value_added_rate":  res.ValueAddedRate,
		"ebe_rate":          res.EBERate,
	}, nil
}

func (r *Registry) ratiosCompute(kwargs map[string]any) (any, error) {
	res := statements.ComputeRatios(statements.RatiosInput{
		Balance:     balanceArg(kwargs),
		Revenue:     floatArg(kwargs, "revenue"),
		NetIncome:   floatArg(kwargs, "net_income"),
		EBE:         floatArg(kwargs, "ebe"),
		Purchases:   floatArg(kwargs, "purchases"),
		CostOfGoods: floatArg(kwargs, "cost_of_goods"),
	})
	skipped := make([]any, len(res.Skipped))
	for i, s := range res.Skipped {
		skipped[i] = s
	}
	return map[string]any{
		"net_margin":         res.NetMargin,
		"ebe_margin":         res.EBEMargin,
		"roe":                res.ReturnOnEquity,
		"roa":                res.ReturnOnAssets,
		"current_ratio":      res.CurrentRatio,
		"quick_ratio":        res.QuickRatio,
		"financial_autonomy": res.FinancialAutonomy,
		"gearing":            res.Gearing,
		"inventory_days":     res.InventoryDays,
		"receivable_days":    res.ReceivableDays,
		"payable_days":       res.PayableDays,
		"skipped":            skipped,
	}, nil
}

func (r *Registry) workingCapitalCompute(kwargs map[string]any) (any, error) {
	res := statements.ComputeWorkingCapital(balanceArg(kwargs), statements.CAFInput{
		NetIncome:      floatArg(kwargs, "net_income"),
		Depreciation:   floatArg(kwargs, "depreciation"),
		Reversals:      floatArg(kwargs, "reversals"),
		DisposalGains:  floatArg(kwargs, "disposal_gains"),
		DisposalValues: floatArg(kwargs, "disposal_values"),
	})
	return map[string]any{
		"working_capital":      res.WorkingCapital.Float64(),
		"working_capital_need": res.WorkingCapitalNeed.Float64(),
		"net_cash":             res.NetCash.Float64(),
		"caf":                  res.CAF.Float64(),
	}, nil
}

func (r *Registry) breakevenCompute(kwargs map[string]any) (any, error) {
	res, err := statements.ComputeBreakEven(statements.BreakEvenInput{
		Revenue:       floatArg(kwargs, "revenue"),
		VariableCosts: floatArg(kwargs, "variable_costs"),
		FixedCosts:    floatArg(kwargs, "fixed_costs"),
	})
	if err != nil {
		return nil, err
	}
	return map[string]any{
		"variable_margin":      res.VariableMargin.Float64(),
		"variable_margin_rate": res.VariableMarginRate,
		"breakeven_point":      res.BreakEvenPoint.Float64(),
		"dead_point_days":      res.DeadPointDays,
		"safety_margin":        res.SafetyMargin.Float64(),
		"safety_index":         res.SafetyIndex,
	}, nil
}

// --- Ledger tools ---

func (r *Registry) entryGenerate(kwargs map[string]any) (any, error) {
	date, err := parseDate(stringArg(kwargs, "date"))
	if err != nil {
		return nil, fmt.Errorf("invalid date: %w", err)
	}
	op, err := BuildOperation(kwargs)
	if err != nil {
		return nil, err
	}
	entry, err := ledger.Generate(date, stringArg(kwargs, "piece"), op)
	if err != nil {
		return nil, err
	}
	return EntryMap(entry), nil
}

func (r *Registry) entryValidate(kwargs map[string]any) (any, error) {
	entry, err := entryFromKwargs(kwargs)
	if err != nil {
		return nil, err
	}
	report := ledger.ValidateEntry(entry, stringArg(kwargs, "country"))
	return map[string]any{
		"valid":    report.Valid(),
		"errors":   issuesToMaps(report.Errors),
		"warnings": issuesToMaps(report.Warnings),
	}, nil
}

// BuildOperation maps a template name plus flat parameters onto the
// tagged operation variants. A missing "vat" with a non-zero "vat_rate"
// is computed from the exclusive amount, so callers may send either.
func BuildOperation(kwargs map[string]any) (ledger.Operation, error) {
	excl := floatArg(kwargs, "excl_tax")
	vatRate := floatArg(kwargs, "vat_rate")
	vat := floatArg(kwargs, "vat")
	if vat == 0 && vatRate != 0 {
		vat = tax.ComputeVAT(money.FromFloat(excl), vatRate).Float64()
	}

	name := stringArg(kwargs, "operation")
	switch name {
	case "purchase_goods":
		return ledger.PurchaseGoods{
			ExclTax:         excl,
			VAT:             vat,
			VATRate:         vatRate,
			Supplier:        stringArg(kwargs, "supplier"),
			ExpenseAccount:  stringArg(kwargs, "expense_account"),
			SupplierAccount: stringArg(kwargs, "supplier_account"),
		}, nil
	case "purchase_services":
		return ledger.PurchaseServices{
			ExclTax:         excl,
			VAT:             vat,
			VATRate:         vatRate,
			Supplier:        stringArg(kwargs, "supplier"),
			ExpenseAccount:  stringArg(kwargs, "expense_account"),
			SupplierAccount: stringArg(kwargs, "supplier_account"),
		}, nil
	case "sale_goods":
		return ledger.SaleGoods{
			ExclTax:         excl,
			VAT:             vat,
			VATRate:         vatRate,
			Customer:        stringArg(kwargs, "customer"),
			RevenueAccount:  stringArg(kwargs, "revenue_account"),
			CustomerAccount: stringArg(kwargs, "customer_account"),
		}, nil
	case "sale_services":
		return ledger.SaleServices{
			ExclTax:         excl,
			VAT:             vat,
			VATRate:         vatRate,
			Customer:        stringArg(kwargs, "customer"),
			RevenueAccount:  stringArg(kwargs, "revenue_account"),
			CustomerAccount: stringArg(kwargs, "customer_account"),
		}, nil
	case "payroll":
		return ledger.Payroll{
			Gross:             floatArg(kwargs, "gross"),
			EmployeeCharges:   floatArg(kwargs, "employee_charges"),
			EmployerCharges:   floatArg(kwargs, "employer_charges"),
			IncomeTaxWithheld: floatArg(kwargs, "income_tax_withheld"),
		}, nil
	case "social_payment":
		return ledger.SocialPayment{Amount: floatArg(kwargs, "amount")}, nil
	case "customer_settlement":
		return ledger.CustomerSettlement{
			Amount:   floatArg(kwargs, "amount"),
			Customer: stringArg(kwargs, "customer"),
		}, nil
	case "supplier_settlement":
		return ledger.SupplierSettlement{
			Amount:   floatArg(kwargs, "amount"),
			Supplier: stringArg(kwargs, "supplier"),
		}, nil
	case "asset_acquisition":
		return ledger.AssetAcquisition{
			ExclTax:      excl,
			VAT:          vat,
			VATRate:      vatRate,
			Description:  stringArg(kwargs, "description"),
			AssetAccount: stringArg(kwargs, "asset_account"),
		}, nil
	case "depreciation":
		return ledger.DepreciationCharge{
			Amount:              floatArg(kwargs, "amount"),
			Description:         stringArg(kwargs, "description"),
			DepreciationAccount: stringArg(kwargs, "depreciation_account"),
		}, nil
	case "tax_accrual":
		return ledger.TaxAccrual{Amount: floatArg(kwargs, "amount")}, nil
	case "vat_return":
		return ledger.VATReturn{
			Collected:  floatArg(kwargs, "collected"),
			Deductible: floatArg(kwargs, "deductible"),
		}, nil
	default:
		return nil, fmt.Errorf("%w: template %q", ledger.ErrUnknownOperation, name)
	}
}

// --- Benford tool ---

func (r *Registry) benfordAnalyze(kwargs map[string]any) (any, error) {
	res := benford.Analyze(floatsArg(kwargs, "amounts"))

	digits := make([]map[string]any, len(res.Digits))
	for i, d := range res.Digits {
		digits[i] = map[string]any{
			"digit":              d.Digit,
			"count":              d.Count,
			"observed_freq":      d.ObservedFreq,
			"expected_freq":      d.ExpectedFreq,
			"absolute_deviation": d.AbsoluteDeviation,
			"relative_deviation": d.RelativeDeviation,
			"z_score":            d.ZScore,
		}
	}
	anomalies := make([]map[string]any, len(res.Anomalies))
	for i, a := range res.Anomalies {
		anomalies[i] = map[string]any{
			"digit":    a.Digit,
			"z_score":  a.ZScore,
			"severity": string(a.Severity),
		}
	}

	return map[string]any{
		"total_amounts": res.TotalAmounts,
		"chi_square":    res.ChiSquare,
		"conforming":    res.Conforming,
		"digits":        digits,
		"anomalies":     anomalies,
	}, nil
}

// --- Rates tools ---

func (r *Registry) countriesList(_ map[string]any) (any, error) {
	infos := rates.Countries()
	out := make([]map[string]any, len(infos))
	for i, info := range infos {
		out[i] = map[string]any{
			"code":     string(info.Code),
			"name":     info.Name,
			"currency": info.Currency,
		}
	}
	return out, nil
}

func (r *Registry) ratesGet(kwargs map[string]any) (any, error) {
	code := stringArg(kwargs, "country")
	is := rates.IS(code)
	vat := rates.VAT(code)
	irpp := rates.IRPP(code)

	reduced := make([]any, len(vat.Reduced))
	for i, rr := range vat.Reduced {
		reduced[i] = rr
	}

	return map[string]any{
		"country":          string(rates.Detect(code)),
		"is_rate":          is.Rate,
		"is_minimum_rate":  is.MinimumRate,
		"vat_rate":         vat.Normal,
		"vat_reduced":      reduced,
		"vat_surtax_rate":  vat.SurtaxRate,
		"irpp_abatement":   irpp.AbatementRate,
		"irpp_surtax_rate": irpp.SurtaxRate,
	}, nil
}

// --- Entry conversion ---

// EntryMap flattens an entry for the boundary: Money unwrapped to
// plain numbers, the date formatted, totals and the balance verdict
// included.
func EntryMap(e ledger.Entry) map[string]any {
	lines := make([]map[string]any, len(e.Lines))
	for i, l := range e.Lines {
		lines[i] = map[string]any{
			"account":  l.Account,
			"label":    l.Label,
			"debit":    l.Debit.Float64(),
			"credit":   l.Credit.Float64(),
			"vat_base": l.VATBase.Float64(),
			"vat_rate": l.VATRate,
		}
	}
	debit, credit := e.Totals()
	return map[string]any{
		"date":         e.Date.Format("2006-01-02"),
		"journal":      e.Journal,
		"piece":        e.Piece,
		"label":        e.Label,
		"lines":        lines,
		"total_debit":  debit.Float64(),
		"total_credit": credit.Float64(),
		"balanced":     e.Balanced(),
	}
}

func entryFromKwargs(kwargs map[string]any) (ledger.Entry, error) {
	rawLines, ok := kwargs["lines"].([]any)
	if !ok {
		return ledger.Entry{}, fmt.Errorf("entry_validate requires a lines list")
	}

	lines := make([]ledger.Line, 0, len(rawLines))
	for i, raw := range rawLines {
		m, ok := raw.(map[string]any)
		if !ok {
			return ledger.Entry{}, fmt.Errorf("line %d is not an object", i+1)
		}
		lines = append(lines, ledger.Line{
			Account: stringArg(m, "account"),
			Label:   stringArg(m, "label"),
			Debit:   money.FromFloat(floatArg(m, "debit")),
			Credit:  money.FromFloat(floatArg(m, "credit")),
			VATBase: money.FromFloat(floatArg(m, "vat_base")),
			VATRate: floatArg(m, "vat_rate"),
		})
	}

	entry := ledger.Entry{
		Journal: stringArg(kwargs, "journal"),
		Piece:   stringArg(kwargs, "piece"),
		Label:   stringArg(kwargs, "label"),
		Lines:   lines,
	}
	if s := stringArg(kwargs, "date"); s != "" {
		date, err := parseDate(s)
		if err != nil {
			return ledger.Entry{}, fmt.Errorf("invalid date: %w", err)
		}
		entry.Date = date
	}
	return entry, nil
}

func issuesToMaps(issues []ledger.Issue) []map[string]any {
	out := make([]map[string]any, len(issues))
	for i, issue := range issues {
		out[i] = map[string]any{
			"code":    issue.Code,
			"line":    issue.Line,
			"message": issue.Message,
		}
	}
	return out
}

func balanceArg(kwargs map[string]any) statements.BalanceSheet {
	return statements.BalanceSheet{
		FixedAssets:        floatArg(kwargs, "fixed_assets"),
		Inventory:          floatArg(kwargs, "inventory"),
		Receivables:        floatArg(kwargs, "receivables"),
		Cash:               floatArg(kwargs, "cash"),
		Equity:             floatArg(kwargs, "equity"),
		LongTermDebt:       floatArg(kwargs, "long_term_debt"),
		Payables:           floatArg(kwargs, "payables"),
		TaxSocialLiability: floatArg(kwargs, "tax_social_liability"),
		BankOverdraft:      floatArg(kwargs, "bank_overdraft"),
	}
}

// --- Type conversion helpers ---

func parseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, fmt.Errorf("missing date")
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing %q: %w", s, err)
	}
	return t, nil
}

func stringArg(m map[string]any, key string) string {
	v, _ := m[key].(string)
	return v
}

func boolArg(m map[string]any, key string) bool {
	v, _ := m[key].(bool)
	return v
}

func floatArg(m map[string]any, key string) float64 {
	switch n := m[key].(type) {
	case float64:
		return n
	case int:
		return float64(n)
	case int64:
		return float64(n)
	}
	return 0
}

func intArg(m map[string]any, key string) int {
	return int(floatArg(m, key))
}

func floatsArg(m map[string]any, key string) []float64 {
	switch v := m[key].(type) {
	case []float64:
		return v
	case []any:
		out := make([]float64, 0, len(v))
		for _, item := range v {
			switch n := item.(type) {
			case float64:
				out = append(out, n)
			case int:
				out = append(out, float64(n))
			}
		}
		return out
	}
	return nil
}
