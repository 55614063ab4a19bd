package tax

import (
	"github.com/ohada-dev/fisc/internal/money"
	"github.com/ohada-dev/fisc/internal/rates"
)

// PayrollInput carries one employee-month. OvertimeHours[i] is the hour
// count falling in the scheme's overtime bracket i; extra entries beyond
// the table reuse the last bracket's majoration.
type PayrollInput struct {
	Country            string
	BaseSalary         float64 // monthly taxable salary before overtime
	HourlyRate         float64
	OvertimeHours      []float64
	Cadre              bool    // executive category, triggers cadre-only lines
	TransportAllowance float64 // non-taxable, outside the contribution base
	MealAllowance      float64 // non-taxable, outside the contribution base
}

// ContributionResult is one computed contribution line.
type ContributionResult struct {
	Code         string
	Label        string
	Base         money.Money // contribution base after cap
	EmployerRate float64
	EmployeeRate float64
	Employer     money.Money
	Employee     money.Money
}

// PayrollResult is the structured payroll outcome.
type PayrollResult struct {
	Country       rates.Country
	OvertimePay   money.Money
	TaxableBase   money.Money // salary + overtime
	Allowances    money.Money // non-taxable, added back to net pay
	Lines         []ContributionResult
	TotalEmployee money.Money
	TotalEmployer money.Money
	NetPay        money.Money // taxable base − employee share + allowances
	EmployerCost  money.Money // taxable base + allowances + employer share
}

// CalculatePayroll iterates the jurisdiction's contribution lines over
// the taxable base. Overtime feeds the base before any contribution is
// computed; flat-fee lines charge the employee a fixed amount regardless
// of salary.
func CalculatePayroll(in PayrollInput) PayrollResult {
	scheme := rates.Payroll(in.Country)

	overtime := overtimePay(scheme.Overtime, money.FromFloat(in.HourlyRate), in.OvertimeHours)

	taxableBase := money.FromFloat(in.BaseSalary).Add(overtime)
	allowances := money.FromFloat(in.TransportAllowance).Add(money.FromFloat(in.MealAllowance))

	lines := make([]ContributionResult, 0, len(scheme.Lines))
	totalEmployee := money.Zero
	totalEmployer := money.Zero
	for _, l := range scheme.Lines {
		if l.CadreOnly && !in.Cadre {
			continue
		}

		if l.FlatFee > 0 {
			fee := money.FromInt(l.FlatFee)
			lines = append(lines, ContributionResult{
				Code:     l.Code,
				Label:    l.Label,
				Employee: fee,
			})
			totalEmployee = totalEmployee.Add(fee)
			continue
		}

		base := taxableBase
		if l.MonthlyCap > 0 {
			base = money.Min(base, money.FromInt(l.MonthlyCap))
		}
		employer := base.Percent(l.EmployerRate).RoundUnit()
		employee := base.Percent(l.EmployeeRate).RoundUnit()
		lines = append(lines, ContributionResult{
			Code:         l.Code,
			Label:        l.Label,
			Base:         base,
			EmployerRate: l.EmployerRate,
			EmployeeRate: l.EmployeeRate,
			Employer:     employer,
			Employee:     employee,
		})
		totalEmployer = totalEmployer.Add(employer)
		totalEmployee = totalEmployee.Add(employee)
	}

	return PayrollResult{
		Country:       rates.Detect(in.Country),
		OvertimePay:   overtime,
		TaxableBase:   taxableBase,
		Allowances:    allowances,
		Lines:         lines,
		TotalEmployee: totalEmployee,
		TotalEmployer: totalEmployer,
		NetPay:        taxableBase.Sub(totalEmployee).Add(allowances),
		EmployerCost:  taxableBase.Add(allowances).Add(totalEmployer),
	}
}

// overtimePay prices each tranche of hours at the bracket's majoration.
// Hours beyond the table reuse the last bracket; a jurisdiction with no
// overtime table pays no majoration at all.
func overtimePay(brackets []rates.OvertimeBracket, hourly money.Money, hours []float64) money.Money {
	if len(brackets) == 0 {
		return money.Zero
	}

	pay := money.Zero
	for i, h := range hours {
		if h <= 0 {
			continue
		}
		bracket := i
		if bracket >= len(brackets) {
			bracket = len(brackets) - 1
		}
		majoration := brackets[bracket].Majoration
		pay = pay.Add(hourly.MulFloat(1 + majoration/100).MulFloat(h))
	}
	return pay.RoundUnit()
}
