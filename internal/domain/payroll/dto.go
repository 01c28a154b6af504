package payroll

import (
	"github.com/shopspring/decimal"
	"github.com/talenthq/payroll-backend-go/internal/domain/calculation"
	"github.com/talenthq/payroll-backend-go/internal/pkg/validator"
)

// PeriodRequest identifies one payroll period for run/preview/results.
type PeriodRequest struct {
	Month int `json:"month"`
	Year  int `json:"year"`
}

func (r *PeriodRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Month < 1 || r.Month > 12 {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be between 1 and 12",
		})
	}
	if r.Year < 2000 || r.Year > 2100 {
		errs = append(errs, validator.ValidationError{
			Field:   "year",
			Message: "year must be between 2000 and 2100",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type PayrollItemResponse struct {
	ID                 string              `json:"id"`
	EmployeeID         string              `json:"employee_id"`
	EmployeeName       string              `json:"employee_name,omitempty"`
	GrossSalary        decimal.Decimal     `json:"gross_salary"`
	NetSalary          decimal.Decimal     `json:"net_salary"`
	TotalDeductions    decimal.Decimal     `json:"total_deductions"`
	TotalContributions decimal.Decimal     `json:"total_contributions"`
	Currency           string              `json:"currency"`
	Details            calculation.Details `json:"details"`
}

type PayrollResponse struct {
	ID          string                `json:"id"`
	CompanyID   string                `json:"company_id"`
	PeriodMonth int                   `json:"period_month"`
	PeriodYear  int                   `json:"period_year"`
	Status      string                `json:"status"`
	Items       []PayrollItemResponse `json:"items,omitempty"`

	// Employees skipped because no base salary is configured.
	SkippedEmployeeIDs []string `json:"skipped_employee_ids,omitempty"`
}

// PreviewItem carries the same calculation as a run item but nothing is persisted.
type PreviewItem struct {
	EmployeeID         string              `json:"employee_id"`
	EmployeeName       string              `json:"employee_name"`
	GrossSalary        decimal.Decimal     `json:"gross_salary"`
	NetSalary          decimal.Decimal     `json:"net_salary"`
	TotalDeductions    decimal.Decimal     `json:"total_deductions"`
	TotalContributions decimal.Decimal     `json:"total_contributions"`
	Currency           string              `json:"currency"`
	Details            calculation.Details `json:"details"`
}

type PreviewResponse struct {
	PeriodMonth        int             `json:"period_month"`
	PeriodYear         int             `json:"period_year"`
	Items              []PreviewItem   `json:"items"`
	TotalGrossSalary   decimal.Decimal `json:"total_gross_salary"`
	TotalNetSalary     decimal.Decimal `json:"total_net_salary"`
	TotalDeductions    decimal.Decimal `json:"total_deductions"`
	TotalContributions decimal.Decimal `json:"total_contributions"`
	SkippedEmployeeIDs []string        `json:"skipped_employee_ids,omitempty"`
}

// PayrollSummary is one row in the ledger listing.
type PayrollSummary struct {
	ID               string          `json:"id"`
	PeriodMonth      int             `json:"period_month"`
	PeriodYear       int             `json:"period_year"`
	Status           string          `json:"status"`
	EmployeeCount    int             `json:"employee_count"`
	TotalGrossSalary decimal.Decimal `json:"total_gross_salary"`
	TotalNetSalary   decimal.Decimal `json:"total_net_salary"`
}
