package payroll

import "context"

type PayrollService interface {
	Run(ctx context.Context, req PeriodRequest) (PayrollResponse, error)
	Preview(ctx context.Context, req PeriodRequest) (PreviewResponse, error)
	Results(ctx context.Context, req PeriodRequest) (PayrollResponse, error)
	Ledger(ctx context.Context) ([]PayrollSummary, error)
}
