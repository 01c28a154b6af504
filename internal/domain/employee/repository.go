package employee

import "context"

type EmployeeRepository interface {
	GetByID(ctx context.Context, id string, companyID string) (Employee, error)
	Create(ctx context.Context, newEmployee Employee) (Employee, error)
	Update(ctx context.Context, companyID string, req UpdateEmployeeRequest) error
	GetActiveByCompanyID(ctx context.Context, companyID string) ([]Employee, error)
	ListByCompanyID(ctx context.Context, companyID string) ([]Employee, error)
}
