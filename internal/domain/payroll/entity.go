package payroll

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/talenthq/payroll-backend-go/internal/domain/calculation"
)

// Status enum. A payroll period has no row at all before its first run.
type Status string

const (
	StatusProcessing Status = "processing"
	StatusCompleted  Status = "completed"
)

// Payroll is one run per (company, month, year). The composite key is unique;
// a completed payroll is immutable.
type Payroll struct {
	ID          string
	CompanyID   string
	PeriodMonth int
	PeriodYear  int
	Status      Status
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Items []PayrollItem
}

// PayrollItem is the per-employee snapshot taken at run time.
type PayrollItem struct {
	ID                 string
	PayrollID          string
	EmployeeID         string
	GrossSalary        decimal.Decimal
	NetSalary          decimal.Decimal
	TotalDeductions    decimal.Decimal
	TotalContributions decimal.Decimal
	Currency           string
	Details            calculation.Details
	CreatedAt          time.Time

	// Joined fields
	EmployeeName    *string
	EmployeeCountry *string
}
