package payroll

import "context"

// PayrollRepository defines data access for payroll runs. All methods take a
// companyID to prevent cross-company data access.
type PayrollRepository interface {
	// UpsertProcessing creates the period row with status processing, or resets
	// an existing non-completed row. It returns ErrPayrollAlreadyCompleted when
	// the period was already completed. The row lock it takes serializes
	// concurrent runs for the same period.
	UpsertProcessing(ctx context.Context, companyID string, month, year int) (Payroll, error)
	MarkCompleted(ctx context.Context, id string, companyID string) error

	CreateItem(ctx context.Context, item PayrollItem) (PayrollItem, error)
	DeleteItemsByPayrollID(ctx context.Context, payrollID string, companyID string) error

	GetByPeriod(ctx context.Context, companyID string, month, year int) (Payroll, error)
	ListByCompanyID(ctx context.Context, companyID string) ([]PayrollSummary, error)
}
