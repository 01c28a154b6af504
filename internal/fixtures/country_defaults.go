package fixtures

import (
	"github.com/shopspring/decimal"
	"github.com/talenthq/payroll-backend-go/internal/domain/country"
)

// ==========================================
// HELPER FUNCTIONS
// ==========================================

func decPtr(d decimal.Decimal) *decimal.Decimal { return &d }

func pct(v int64) *decimal.Decimal   { return decPtr(decimal.NewFromInt(v)) }
func fixed(v int64) *decimal.Decimal { return decPtr(decimal.NewFromInt(v)) }

// ==========================================
// DEFAULT COUNTRY CONFIGURATIONS
// ==========================================

// GetDefaultCountryConfigs returns the built-in country configuration catalog.
// Rule order is significant: calculation detail lines follow listed order.
func GetDefaultCountryConfigs() []country.Config {
	return []country.Config{
		{
			Code:     "IN",
			Name:     "India",
			Currency: "INR",
			TaxRules: []country.TaxRule{
				{
					Name:        "TDS",
					Percentage:  pct(10),
					Description: "Tax deducted at source on salary income",
				},
				{
					Name:        "Professional Tax",
					FixedAmount: fixed(200),
					Description: "Flat monthly professional tax",
				},
			},
			StatutoryBenefits: []country.BenefitRule{
				{
					Name:         "EPF",
					EmployerRate: decimal.NewFromInt(12),
					EmployeeRate: decimal.NewFromInt(12),
					Description:  "Employees' Provident Fund",
				},
			},
			LeavePolicy: country.LeavePolicy{
				AnnualLeaveDays: 18,
				SickLeaveDays:   12,
			},
		},
		{
			Code:     "US",
			Name:     "United States",
			Currency: "USD",
			TaxRules: []country.TaxRule{
				{
					Name:        "Federal Income Tax",
					Percentage:  pct(15),
					Description: "Flat withholding approximation of federal income tax",
				},
				{
					Name:        "State Income Tax",
					Percentage:  pct(5),
					Description: "Flat withholding approximation of state income tax",
				},
			},
			StatutoryBenefits: []country.BenefitRule{
				{
					Name:         "Social Security",
					EmployerRate: decimal.RequireFromString("6.2"),
					EmployeeRate: decimal.RequireFromString("6.2"),
					Description:  "FICA Social Security",
				},
				{
					Name:         "Medicare",
					EmployerRate: decimal.RequireFromString("1.45"),
					EmployeeRate: decimal.RequireFromString("1.45"),
					Description:  "FICA Medicare",
				},
			},
			LeavePolicy: country.LeavePolicy{
				AnnualLeaveDays: 10,
				SickLeaveDays:   5,
			},
		},
	}
}
