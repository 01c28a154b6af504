package payroll

import "errors"

var (
	ErrPayrollNotFound         = errors.New("payroll not found for this period")
	ErrPayrollAlreadyCompleted = errors.New("payroll already completed for this period")
	ErrNoActiveEmployees       = errors.New("no active employees to process")
	ErrInvalidPeriod           = errors.New("invalid payroll period")
)
