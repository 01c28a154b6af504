package country

import "github.com/shopspring/decimal"

// TaxRule is a single employee-side deduction. Exactly one of Percentage or
// FixedAmount is expected; when both are set Percentage wins.
type TaxRule struct {
	Name        string           `json:"name"`
	Percentage  *decimal.Decimal `json:"percentage,omitempty"`
	FixedAmount *decimal.Decimal `json:"fixed_amount,omitempty"`
	Description string           `json:"description,omitempty"`
}

// BenefitRule is a statutory contribution split between employer and employee,
// both expressed as a percentage of gross salary.
type BenefitRule struct {
	Name         string          `json:"name"`
	EmployerRate decimal.Decimal `json:"employer_rate"`
	EmployeeRate decimal.Decimal `json:"employee_rate"`
	Description  string          `json:"description,omitempty"`
}

type LeavePolicy struct {
	AnnualLeaveDays int `json:"annual_leave_days"`
	SickLeaveDays   int `json:"sick_leave_days"`
}

// Config is the immutable per-country calculation configuration. Rule order is
// significant: the calculator emits detail lines in listed order.
type Config struct {
	Code              string        `json:"code"`
	Name              string        `json:"name"`
	Currency          string        `json:"currency"`
	TaxRules          []TaxRule     `json:"tax_rules"`
	StatutoryBenefits []BenefitRule `json:"statutory_benefits"`
	LeavePolicy       LeavePolicy   `json:"leave_policy"`
}
