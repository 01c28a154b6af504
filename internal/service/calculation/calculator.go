package calculation

import (
	"github.com/shopspring/decimal"
	"github.com/talenthq/payroll-backend-go/internal/domain/calculation"
	"github.com/talenthq/payroll-backend-go/internal/domain/country"
)

var hundred = decimal.NewFromInt(100)

// NetSalary computes the deduction/contribution breakdown for one gross
// salary under a country configuration. Pure: identical inputs always yield
// identical results, and detail lines preserve the configuration's rule order.
//
// Tax rules apply a percentage of gross when one is set, otherwise their fixed
// amount. Benefit rules split into employer and employee portions; only the
// employee portion counts toward deductions, only the employer portion toward
// contributions. Gross salary is not validated here.
func NetSalary(grossSalary decimal.Decimal, cfg country.Config) calculation.Result {
	totalDeductions := decimal.Zero
	totalContributions := decimal.Zero

	taxes := make([]calculation.TaxLine, 0, len(cfg.TaxRules))
	for _, rule := range cfg.TaxRules {
		var amount decimal.Decimal
		switch {
		case rule.Percentage != nil:
			amount = grossSalary.Mul(*rule.Percentage).Div(hundred)
		case rule.FixedAmount != nil:
			amount = *rule.FixedAmount
		default:
			amount = decimal.Zero
		}
		totalDeductions = totalDeductions.Add(amount)
		taxes = append(taxes, calculation.TaxLine{Name: rule.Name, Amount: amount})
	}

	benefits := make([]calculation.BenefitLine, 0, len(cfg.StatutoryBenefits))
	for _, rule := range cfg.StatutoryBenefits {
		employerAmount := grossSalary.Mul(rule.EmployerRate).Div(hundred)
		employeeAmount := grossSalary.Mul(rule.EmployeeRate).Div(hundred)
		totalDeductions = totalDeductions.Add(employeeAmount)
		totalContributions = totalContributions.Add(employerAmount)
		benefits = append(benefits, calculation.BenefitLine{
			Name:           rule.Name,
			EmployerAmount: employerAmount,
			EmployeeAmount: employeeAmount,
		})
	}

	return calculation.Result{
		GrossSalary:        grossSalary,
		NetSalary:          grossSalary.Sub(totalDeductions),
		TotalDeductions:    totalDeductions,
		TotalContributions: totalContributions,
		Details: calculation.Details{
			Taxes:    taxes,
			Benefits: benefits,
		},
	}
}
