package calculation

import "github.com/shopspring/decimal"

// TaxLine is one employee-side deduction in a calculation breakdown.
type TaxLine struct {
	Name   string          `json:"name"`
	Amount decimal.Decimal `json:"amount"`
}

// BenefitLine is one statutory benefit split in a calculation breakdown.
type BenefitLine struct {
	Name           string          `json:"name"`
	EmployerAmount decimal.Decimal `json:"employer_amount"`
	EmployeeAmount decimal.Decimal `json:"employee_amount"`
}

// Details preserves the order of the country configuration's rules.
type Details struct {
	Taxes    []TaxLine     `json:"taxes"`
	Benefits []BenefitLine `json:"benefits"`
}

// Result is the deduction/contribution breakdown for one gross salary.
// Invariants: NetSalary = gross - TotalDeductions; TotalDeductions is the sum
// of all tax amounts plus employee-side benefit amounts; TotalContributions is
// the sum of employer-side benefit amounts only.
type Result struct {
	GrossSalary        decimal.Decimal `json:"gross_salary"`
	NetSalary          decimal.Decimal `json:"net_salary"`
	TotalDeductions    decimal.Decimal `json:"total_deductions"`
	TotalContributions decimal.Decimal `json:"total_contributions"`
	Details            Details         `json:"details"`
}
