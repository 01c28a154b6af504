package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/talenthq/payroll-backend-go/internal/domain/country"
	"github.com/talenthq/payroll-backend-go/internal/fixtures"
)

func findConfig(t *testing.T, code string) country.Config {
	t.Helper()
	for _, cfg := range fixtures.GetDefaultCountryConfigs() {
		if cfg.Code == code {
			return cfg
		}
	}
	t.Fatalf("country %s missing from default catalog", code)
	return country.Config{}
}

func TestNetSalary_India(t *testing.T) {
	cfg := findConfig(t, "IN")
	gross := decimal.NewFromInt(1200000)

	result := NetSalary(gross, cfg)

	// TDS 10% = 120000, Professional Tax fixed 200, EPF employee 12% = 144000
	assert.True(t, decimal.NewFromInt(264200).Equal(result.TotalDeductions), "total deductions = %s", result.TotalDeductions)
	assert.True(t, decimal.NewFromInt(935800).Equal(result.NetSalary), "net salary = %s", result.NetSalary)
	// Employer EPF 12%
	assert.True(t, decimal.NewFromInt(144000).Equal(result.TotalContributions), "total contributions = %s", result.TotalContributions)
}

func TestNetSalary_UnitedStates(t *testing.T) {
	cfg := findConfig(t, "US")
	gross := decimal.NewFromInt(100000)

	result := NetSalary(gross, cfg)

	// Federal 15000 + State 5000 + SS 6200 + Medicare 1450
	assert.True(t, decimal.NewFromInt(27650).Equal(result.TotalDeductions), "total deductions = %s", result.TotalDeductions)
	assert.True(t, decimal.NewFromInt(72350).Equal(result.NetSalary), "net salary = %s", result.NetSalary)
	assert.True(t, decimal.NewFromInt(7650).Equal(result.TotalContributions), "total contributions = %s", result.TotalContributions)
}

func TestNetSalary_AccountingIdentity(t *testing.T) {
	for _, cfg := range fixtures.GetDefaultCountryConfigs() {
		for _, gross := range []decimal.Decimal{
			decimal.Zero,
			decimal.NewFromInt(1),
			decimal.RequireFromString("12345.67"),
			decimal.NewFromInt(1000000),
		} {
			result := NetSalary(gross, cfg)
			sum := result.NetSalary.Add(result.TotalDeductions)
			assert.True(t, gross.Equal(sum), "%s gross %s: net %s + deductions %s != gross", cfg.Code, gross, result.NetSalary, result.TotalDeductions)
		}
	}
}

func TestNetSalary_Deterministic(t *testing.T) {
	cfg := findConfig(t, "US")
	gross := decimal.RequireFromString("98765.43")

	first := NetSalary(gross, cfg)
	second := NetSalary(gross, cfg)

	assert.True(t, first.NetSalary.Equal(second.NetSalary))
	assert.True(t, first.TotalDeductions.Equal(second.TotalDeductions))
	assert.True(t, first.TotalContributions.Equal(second.TotalContributions))
}

func TestNetSalary_DetailOrderFollowsConfig(t *testing.T) {
	cfg := findConfig(t, "US")

	result := NetSalary(decimal.NewFromInt(100000), cfg)

	require.Len(t, result.Details.Taxes, len(cfg.TaxRules))
	for i, rule := range cfg.TaxRules {
		assert.Equal(t, rule.Name, result.Details.Taxes[i].Name)
	}
	require.Len(t, result.Details.Benefits, len(cfg.StatutoryBenefits))
	for i, rule := range cfg.StatutoryBenefits {
		assert.Equal(t, rule.Name, result.Details.Benefits[i].Name)
	}
}

func TestNetSalary_PercentageWinsOverFixedAmount(t *testing.T) {
	p := decimal.NewFromInt(10)
	f := decimal.NewFromInt(999)
	cfg := country.Config{
		Code:     "XX",
		Currency: "XXX",
		TaxRules: []country.TaxRule{
			{Name: "Both", Percentage: &p, FixedAmount: &f},
			{Name: "Neither"},
		},
	}

	result := NetSalary(decimal.NewFromInt(1000), cfg)

	assert.True(t, decimal.NewFromInt(100).Equal(result.Details.Taxes[0].Amount))
	assert.True(t, result.Details.Taxes[1].Amount.IsZero())
	assert.True(t, decimal.NewFromInt(100).Equal(result.TotalDeductions))
}

func TestNetSalary_BenefitSplit(t *testing.T) {
	cfg := findConfig(t, "IN")

	result := NetSalary(decimal.NewFromInt(1200000), cfg)

	require.Len(t, result.Details.Benefits, 1)
	epf := result.Details.Benefits[0]
	assert.True(t, decimal.NewFromInt(144000).Equal(epf.EmployerAmount))
	assert.True(t, decimal.NewFromInt(144000).Equal(epf.EmployeeAmount))
}
