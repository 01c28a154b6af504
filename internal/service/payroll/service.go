package payroll

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/talenthq/payroll-backend-go/internal/domain/audit"
	"github.com/talenthq/payroll-backend-go/internal/domain/authz"
	"github.com/talenthq/payroll-backend-go/internal/domain/calculation"
	"github.com/talenthq/payroll-backend-go/internal/domain/country"
	"github.com/talenthq/payroll-backend-go/internal/domain/employee"
	"github.com/talenthq/payroll-backend-go/internal/domain/payroll"
	"github.com/talenthq/payroll-backend-go/internal/domain/user"
	"github.com/talenthq/payroll-backend-go/internal/pkg/database"
	"github.com/talenthq/payroll-backend-go/internal/repository/postgresql"
	calculationService "github.com/talenthq/payroll-backend-go/internal/service/calculation"
	"golang.org/x/sync/errgroup"
)

var runRoles = []user.Role{user.RoleCompanyOwner, user.RolePayrollAdmin}

var readRoles = []user.Role{
	user.RoleCompanyOwner,
	user.RolePayrollAdmin,
	user.RoleFinanceAdmin,
	user.RoleAuditor,
}

type PayrollServiceImpl struct {
	payrollRepo  payroll.PayrollRepository
	employeeRepo employee.EmployeeRepository
	countries    country.Registry
	auditSink    audit.Sink

	// withTx runs fn atomically. Production wires postgresql.WithTransaction.
	withTx func(ctx context.Context, fn func(ctx context.Context) error) error
}

func NewPayrollService(
	db *database.DB,
	payrollRepo payroll.PayrollRepository,
	employeeRepo employee.EmployeeRepository,
	countries country.Registry,
	auditSink audit.Sink,
) payroll.PayrollService {
	return &PayrollServiceImpl{
		payrollRepo:  payrollRepo,
		employeeRepo: employeeRepo,
		countries:    countries,
		auditSink:    auditSink,
		withTx: func(ctx context.Context, fn func(ctx context.Context) error) error {
			return postgresql.WithTransaction(ctx, db, fn)
		},
	}
}

// employeeResult pairs one employee with its calculation outcome.
type employeeResult struct {
	emp      employee.Employee
	currency string
	result   calculation.Result
	skipped  bool
}

// calculateBatch fans the per-employee calculation out across goroutines and
// waits for all of them. A single failure (e.g. unknown country code) aborts
// the batch. Employees without a configured base salary are marked skipped.
func (s *PayrollServiceImpl) calculateBatch(ctx context.Context, employees []employee.Employee) ([]employeeResult, error) {
	results := make([]employeeResult, len(employees))

	g, _ := errgroup.WithContext(ctx)
	for i, emp := range employees {
		i, emp := i, emp
		g.Go(func() error {
			if emp.BaseSalary == nil {
				results[i] = employeeResult{emp: emp, skipped: true}
				return nil
			}
			cfg, err := s.countries.FindByCode(emp.CountryCode)
			if err != nil {
				return fmt.Errorf("employee %s: %w", emp.ID, err)
			}
			results[i] = employeeResult{
				emp:      emp,
				currency: cfg.Currency,
				result:   calculationService.NetSalary(*emp.BaseSalary, cfg),
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

// Run executes the payroll for one period inside a single transaction: the
// period row is upserted to processing (a completed period is rejected), every
// active employee is calculated and snapshotted as an item, and the row is
// marked completed. Any failure rolls the whole batch back. The row lock taken
// by the upsert serializes concurrent runs for the same period.
func (s *PayrollServiceImpl) Run(ctx context.Context, req payroll.PeriodRequest) (payroll.PayrollResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.PayrollResponse{}, err
	}

	actor, err := authz.ActorFromContext(ctx)
	if err != nil {
		return payroll.PayrollResponse{}, err
	}
	if err := authz.AllowRoles(actor, runRoles...); err != nil {
		return payroll.PayrollResponse{}, err
	}
	if actor.CompanyID == "" {
		return payroll.PayrollResponse{}, user.ErrCompanyIDRequired
	}
	companyID := actor.CompanyID

	var run payroll.Payroll
	var skipped []string
	var items []payroll.PayrollItem

	err = s.withTx(ctx, func(txCtx context.Context) error {
		run, err = s.payrollRepo.UpsertProcessing(txCtx, companyID, req.Month, req.Year)
		if err != nil {
			return err
		}

		employees, err := s.employeeRepo.GetActiveByCompanyID(txCtx, companyID)
		if err != nil {
			return fmt.Errorf("failed to get employees: %w", err)
		}
		if len(employees) == 0 {
			return payroll.ErrNoActiveEmployees
		}

		results, err := s.calculateBatch(txCtx, employees)
		if err != nil {
			return err
		}

		// A re-run of a period left in processing replaces that run's items.
		if err := s.payrollRepo.DeleteItemsByPayrollID(txCtx, run.ID, companyID); err != nil {
			return err
		}

		for _, res := range results {
			if res.skipped {
				skipped = append(skipped, res.emp.ID)
				continue
			}
			item := payroll.PayrollItem{
				PayrollID:          run.ID,
				EmployeeID:         res.emp.ID,
				GrossSalary:        res.result.GrossSalary,
				NetSalary:          res.result.NetSalary,
				TotalDeductions:    res.result.TotalDeductions,
				TotalContributions: res.result.TotalContributions,
				Currency:           res.currency,
				Details:            res.result.Details,
			}
			created, err := s.payrollRepo.CreateItem(txCtx, item)
			if err != nil {
				return fmt.Errorf("failed to create payroll item for employee %s: %w", res.emp.ID, err)
			}
			items = append(items, created)
		}

		return s.payrollRepo.MarkCompleted(txCtx, run.ID, companyID)
	})
	if err != nil {
		return payroll.PayrollResponse{}, err
	}

	s.auditSink.Record(ctx, audit.Event{
		ActorID:    actor.UserID,
		CompanyID:  companyID,
		Action:     audit.ActionRunPayroll,
		Resource:   "payroll",
		ResourceID: run.ID,
		Payload: audit.Payload{
			PeriodMonth:   req.Month,
			PeriodYear:    req.Year,
			EmployeeCount: len(items),
		},
	})

	run.Status = payroll.StatusCompleted
	run.Items = items
	resp := mapToPayrollResponse(run)
	resp.SkippedEmployeeIDs = skipped
	return resp, nil
}

// Preview runs the same per-employee calculation without persisting anything
// and aggregates totals across all items.
func (s *PayrollServiceImpl) Preview(ctx context.Context, req payroll.PeriodRequest) (payroll.PreviewResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.PreviewResponse{}, err
	}

	actor, err := authz.ActorFromContext(ctx)
	if err != nil {
		return payroll.PreviewResponse{}, err
	}
	if err := authz.AllowRoles(actor, readRoles...); err != nil {
		return payroll.PreviewResponse{}, err
	}
	if actor.CompanyID == "" {
		return payroll.PreviewResponse{}, user.ErrCompanyIDRequired
	}

	employees, err := s.employeeRepo.GetActiveByCompanyID(ctx, actor.CompanyID)
	if err != nil {
		return payroll.PreviewResponse{}, fmt.Errorf("failed to get employees: %w", err)
	}
	if len(employees) == 0 {
		return payroll.PreviewResponse{}, payroll.ErrNoActiveEmployees
	}

	results, err := s.calculateBatch(ctx, employees)
	if err != nil {
		return payroll.PreviewResponse{}, err
	}

	resp := payroll.PreviewResponse{
		PeriodMonth:        req.Month,
		PeriodYear:         req.Year,
		TotalGrossSalary:   decimal.Zero,
		TotalNetSalary:     decimal.Zero,
		TotalDeductions:    decimal.Zero,
		TotalContributions: decimal.Zero,
	}
	for _, res := range results {
		if res.skipped {
			resp.SkippedEmployeeIDs = append(resp.SkippedEmployeeIDs, res.emp.ID)
			continue
		}
		resp.Items = append(resp.Items, payroll.PreviewItem{
			EmployeeID:         res.emp.ID,
			EmployeeName:       res.emp.FullName,
			GrossSalary:        res.result.GrossSalary,
			NetSalary:          res.result.NetSalary,
			TotalDeductions:    res.result.TotalDeductions,
			TotalContributions: res.result.TotalContributions,
			Currency:           res.currency,
			Details:            res.result.Details,
		})
		resp.TotalGrossSalary = resp.TotalGrossSalary.Add(res.result.GrossSalary)
		resp.TotalNetSalary = resp.TotalNetSalary.Add(res.result.NetSalary)
		resp.TotalDeductions = resp.TotalDeductions.Add(res.result.TotalDeductions)
		resp.TotalContributions = resp.TotalContributions.Add(res.result.TotalContributions)
	}

	return resp, nil
}

// Results returns the payroll for one period, with items and employee names.
func (s *PayrollServiceImpl) Results(ctx context.Context, req payroll.PeriodRequest) (payroll.PayrollResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.PayrollResponse{}, err
	}

	actor, err := authz.ActorFromContext(ctx)
	if err != nil {
		return payroll.PayrollResponse{}, err
	}
	if err := authz.AllowRoles(actor, readRoles...); err != nil {
		return payroll.PayrollResponse{}, err
	}
	if actor.CompanyID == "" {
		return payroll.PayrollResponse{}, user.ErrCompanyIDRequired
	}

	run, err := s.payrollRepo.GetByPeriod(ctx, actor.CompanyID, req.Month, req.Year)
	if err != nil {
		return payroll.PayrollResponse{}, err
	}

	return mapToPayrollResponse(run), nil
}

// Ledger lists the tenant's payrolls with per-period aggregates.
func (s *PayrollServiceImpl) Ledger(ctx context.Context) ([]payroll.PayrollSummary, error) {
	actor, err := authz.ActorFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if err := authz.AllowRoles(actor, readRoles...); err != nil {
		return nil, err
	}
	if actor.CompanyID == "" {
		return nil, user.ErrCompanyIDRequired
	}

	return s.payrollRepo.ListByCompanyID(ctx, actor.CompanyID)
}

// ========== HELPERS ==========

func mapToPayrollResponse(p payroll.Payroll) payroll.PayrollResponse {
	resp := payroll.PayrollResponse{
		ID:          p.ID,
		CompanyID:   p.CompanyID,
		PeriodMonth: p.PeriodMonth,
		PeriodYear:  p.PeriodYear,
		Status:      string(p.Status),
	}
	for _, item := range p.Items {
		itemResp := payroll.PayrollItemResponse{
			ID:                 item.ID,
			EmployeeID:         item.EmployeeID,
			GrossSalary:        item.GrossSalary,
			NetSalary:          item.NetSalary,
			TotalDeductions:    item.TotalDeductions,
			TotalContributions: item.TotalContributions,
			Currency:           item.Currency,
			Details:            item.Details,
		}
		if item.EmployeeName != nil {
			itemResp.EmployeeName = *item.EmployeeName
		}
		resp.Items = append(resp.Items, itemResp)
	}
	return resp
}
