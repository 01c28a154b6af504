package payroll

import (
	"context"
	"fmt"
	"testing"

	"github.com/go-chi/jwtauth/v5"
	"github.com/lestrrat-go/jwx/v2/jwt"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/talenthq/payroll-backend-go/internal/domain/audit"
	"github.com/talenthq/payroll-backend-go/internal/domain/authz"
	"github.com/talenthq/payroll-backend-go/internal/domain/employee"
	"github.com/talenthq/payroll-backend-go/internal/domain/payroll"
	"github.com/talenthq/payroll-backend-go/internal/domain/user"
	"github.com/talenthq/payroll-backend-go/internal/fixtures"
	countryService "github.com/talenthq/payroll-backend-go/internal/service/country"
)

// ===== TEST DOUBLES =====

type stubEmployeeRepo struct {
	employee.EmployeeRepository
	active map[string][]employee.Employee
}

func (s *stubEmployeeRepo) GetActiveByCompanyID(_ context.Context, companyID string) ([]employee.Employee, error) {
	return s.active[companyID], nil
}

type stubPayrollRepo struct {
	payroll.PayrollRepository
	byPeriod map[string]payroll.Payroll
	ledger   map[string][]payroll.PayrollSummary
}

func (s *stubPayrollRepo) GetByPeriod(_ context.Context, companyID string, month, year int) (payroll.Payroll, error) {
	p, ok := s.byPeriod[companyID]
	if !ok || p.PeriodMonth != month || p.PeriodYear != year {
		return payroll.Payroll{}, payroll.ErrPayrollNotFound
	}
	return p, nil
}

func (s *stubPayrollRepo) ListByCompanyID(_ context.Context, companyID string) ([]payroll.PayrollSummary, error) {
	return s.ledger[companyID], nil
}

// memoryPayrollRepo implements the run-path state machine in memory: one row
// per (company, month, year), completed periods rejected on upsert, items
// replaced when a processing period is re-run.
type memoryPayrollRepo struct {
	payroll.PayrollRepository
	nextID  int
	runs    map[string]payroll.Payroll
	items   map[string][]payroll.PayrollItem
	failFor string
}

func newMemoryPayrollRepo() *memoryPayrollRepo {
	return &memoryPayrollRepo{
		runs:  make(map[string]payroll.Payroll),
		items: make(map[string][]payroll.PayrollItem),
	}
}

func periodKey(companyID string, month, year int) string {
	return fmt.Sprintf("%s/%d-%d", companyID, year, month)
}

func (m *memoryPayrollRepo) UpsertProcessing(_ context.Context, companyID string, month, year int) (payroll.Payroll, error) {
	key := periodKey(companyID, month, year)
	if existing, ok := m.runs[key]; ok {
		if existing.Status == payroll.StatusCompleted {
			return payroll.Payroll{}, payroll.ErrPayrollAlreadyCompleted
		}
		existing.Status = payroll.StatusProcessing
		m.runs[key] = existing
		return existing, nil
	}

	m.nextID++
	run := payroll.Payroll{
		ID:          fmt.Sprintf("p%d", m.nextID),
		CompanyID:   companyID,
		PeriodMonth: month,
		PeriodYear:  year,
		Status:      payroll.StatusProcessing,
	}
	m.runs[key] = run
	return run, nil
}

func (m *memoryPayrollRepo) MarkCompleted(_ context.Context, id string, companyID string) error {
	for key, run := range m.runs {
		if run.ID == id && run.CompanyID == companyID {
			run.Status = payroll.StatusCompleted
			m.runs[key] = run
			return nil
		}
	}
	return payroll.ErrPayrollNotFound
}

func (m *memoryPayrollRepo) CreateItem(_ context.Context, item payroll.PayrollItem) (payroll.PayrollItem, error) {
	if m.failFor != "" && item.EmployeeID == m.failFor {
		return payroll.PayrollItem{}, fmt.Errorf("failed to create payroll item")
	}
	m.nextID++
	item.ID = fmt.Sprintf("i%d", m.nextID)
	m.items[item.PayrollID] = append(m.items[item.PayrollID], item)
	return item, nil
}

func (m *memoryPayrollRepo) DeleteItemsByPayrollID(_ context.Context, payrollID string, _ string) error {
	delete(m.items, payrollID)
	return nil
}

func (m *memoryPayrollRepo) run(companyID string, month, year int) payroll.Payroll {
	return m.runs[periodKey(companyID, month, year)]
}

func actorContext(t *testing.T, userID string, role user.Role, companyID string) context.Context {
	t.Helper()
	token := jwt.New()
	require.NoError(t, token.Set("user_id", userID))
	require.NoError(t, token.Set("role", string(role)))
	if companyID != "" {
		require.NoError(t, token.Set("company_id", companyID))
	}
	return jwtauth.NewContext(context.Background(), token, nil)
}

func salary(v int64) *decimal.Decimal {
	d := decimal.NewFromInt(v)
	return &d
}

func newTestService(employeeRepo employee.EmployeeRepository, payrollRepo payroll.PayrollRepository) payroll.PayrollService {
	return &PayrollServiceImpl{
		payrollRepo:  payrollRepo,
		employeeRepo: employeeRepo,
		countries:    countryService.NewRegistry(fixtures.GetDefaultCountryConfigs()),
		auditSink:    noopSink{},
		withTx: func(ctx context.Context, fn func(ctx context.Context) error) error {
			return fn(ctx)
		},
	}
}

type noopSink struct{}

func (noopSink) Record(context.Context, audit.Event) {}

// ===== PREVIEW TESTS =====

func TestPayrollService_Preview_AggregatesAcrossEmployees(t *testing.T) {
	t.Parallel()
	employees := &stubEmployeeRepo{active: map[string][]employee.Employee{
		"company-a": {
			{ID: "e1", CompanyID: "company-a", FullName: "Asha Rao", CountryCode: "IN", BaseSalary: salary(1200000), Status: employee.StatusActive},
			{ID: "e2", CompanyID: "company-a", FullName: "Dana Miles", CountryCode: "US", BaseSalary: salary(100000), Status: employee.StatusActive},
		},
	}}
	svc := newTestService(employees, &stubPayrollRepo{})
	ctx := actorContext(t, "u1", user.RolePayrollAdmin, "company-a")

	resp, err := svc.Preview(ctx, payroll.PeriodRequest{Month: 3, Year: 2026})
	require.NoError(t, err)

	require.Len(t, resp.Items, 2)
	assert.Equal(t, "INR", resp.Items[0].Currency)
	assert.Equal(t, "USD", resp.Items[1].Currency)
	assert.True(t, decimal.NewFromInt(935800).Equal(resp.Items[0].NetSalary), "IN net = %s", resp.Items[0].NetSalary)
	assert.True(t, decimal.NewFromInt(72350).Equal(resp.Items[1].NetSalary), "US net = %s", resp.Items[1].NetSalary)

	assert.True(t, decimal.NewFromInt(1300000).Equal(resp.TotalGrossSalary))
	assert.True(t, decimal.NewFromInt(1008150).Equal(resp.TotalNetSalary))
	assert.Empty(t, resp.SkippedEmployeeIDs)
}

func TestPayrollService_Preview_SkipsEmployeesWithoutSalary(t *testing.T) {
	t.Parallel()
	employees := &stubEmployeeRepo{active: map[string][]employee.Employee{
		"company-a": {
			{ID: "e1", CompanyID: "company-a", FullName: "Asha Rao", CountryCode: "IN", BaseSalary: salary(1200000), Status: employee.StatusActive},
			{ID: "e2", CompanyID: "company-a", FullName: "New Hire", CountryCode: "IN", Status: employee.StatusActive},
		},
	}}
	svc := newTestService(employees, &stubPayrollRepo{})
	ctx := actorContext(t, "u1", user.RoleCompanyOwner, "company-a")

	resp, err := svc.Preview(ctx, payroll.PeriodRequest{Month: 3, Year: 2026})
	require.NoError(t, err)

	require.Len(t, resp.Items, 1)
	assert.Equal(t, "e1", resp.Items[0].EmployeeID)
	assert.Equal(t, []string{"e2"}, resp.SkippedEmployeeIDs)
}

func TestPayrollService_Preview_NoActiveEmployees(t *testing.T) {
	t.Parallel()
	svc := newTestService(&stubEmployeeRepo{active: map[string][]employee.Employee{}}, &stubPayrollRepo{})
	ctx := actorContext(t, "u1", user.RolePayrollAdmin, "company-a")

	_, err := svc.Preview(ctx, payroll.PeriodRequest{Month: 3, Year: 2026})
	assert.ErrorIs(t, err, payroll.ErrNoActiveEmployees)
}

func TestPayrollService_Preview_RoleDenied(t *testing.T) {
	t.Parallel()
	svc := newTestService(&stubEmployeeRepo{}, &stubPayrollRepo{})
	ctx := actorContext(t, "u1", user.RoleEmployee, "company-a")

	_, err := svc.Preview(ctx, payroll.PeriodRequest{Month: 3, Year: 2026})
	assert.ErrorIs(t, err, authz.ErrRoleNotAllowed)
}

// ===== RUN GUARD TESTS =====

func TestPayrollService_Run_InvalidPeriod(t *testing.T) {
	t.Parallel()
	svc := newTestService(&stubEmployeeRepo{}, &stubPayrollRepo{})
	ctx := actorContext(t, "u1", user.RolePayrollAdmin, "company-a")

	_, err := svc.Run(ctx, payroll.PeriodRequest{Month: 13, Year: 2026})
	assert.Error(t, err)

	_, err = svc.Run(ctx, payroll.PeriodRequest{Month: 1, Year: 1999})
	assert.Error(t, err)
}

func TestPayrollService_Run_RoleDenied(t *testing.T) {
	t.Parallel()
	svc := newTestService(&stubEmployeeRepo{}, &stubPayrollRepo{})

	for _, role := range []user.Role{user.RoleEmployee, user.RoleManager, user.RoleAuditor, user.RoleHRAdmin, user.RoleFinanceAdmin} {
		ctx := actorContext(t, "u1", role, "company-a")
		_, err := svc.Run(ctx, payroll.PeriodRequest{Month: 3, Year: 2026})
		assert.ErrorIs(t, err, authz.ErrRoleNotAllowed, "role %s", role)
	}
}

func TestPayrollService_Run_MissingActor(t *testing.T) {
	t.Parallel()
	svc := newTestService(&stubEmployeeRepo{}, &stubPayrollRepo{})

	_, err := svc.Run(context.Background(), payroll.PeriodRequest{Month: 3, Year: 2026})
	assert.Error(t, err)
}

// ===== RUN STATE MACHINE TESTS =====

func runTestEmployees() *stubEmployeeRepo {
	return &stubEmployeeRepo{active: map[string][]employee.Employee{
		"company-a": {
			{ID: "e1", CompanyID: "company-a", FullName: "Asha Rao", CountryCode: "IN", BaseSalary: salary(1200000), Status: employee.StatusActive},
			{ID: "e2", CompanyID: "company-a", FullName: "Dana Miles", CountryCode: "US", BaseSalary: salary(100000), Status: employee.StatusActive},
		},
	}}
}

func TestPayrollService_Run_CompletesAndSnapshotsItems(t *testing.T) {
	t.Parallel()
	payrolls := newMemoryPayrollRepo()
	svc := newTestService(runTestEmployees(), payrolls)
	ctx := actorContext(t, "u1", user.RolePayrollAdmin, "company-a")

	resp, err := svc.Run(ctx, payroll.PeriodRequest{Month: 3, Year: 2026})
	require.NoError(t, err)

	assert.Equal(t, string(payroll.StatusCompleted), resp.Status)
	require.Len(t, resp.Items, 2)
	assert.True(t, decimal.NewFromInt(935800).Equal(resp.Items[0].NetSalary))
	assert.True(t, decimal.NewFromInt(72350).Equal(resp.Items[1].NetSalary))

	stored := payrolls.run("company-a", 3, 2026)
	assert.Equal(t, payroll.StatusCompleted, stored.Status)
	assert.Len(t, payrolls.items[stored.ID], 2)
}

func TestPayrollService_Run_RejectsCompletedPeriod(t *testing.T) {
	t.Parallel()
	payrolls := newMemoryPayrollRepo()
	svc := newTestService(runTestEmployees(), payrolls)
	ctx := actorContext(t, "u1", user.RoleCompanyOwner, "company-a")

	_, err := svc.Run(ctx, payroll.PeriodRequest{Month: 3, Year: 2026})
	require.NoError(t, err)

	_, err = svc.Run(ctx, payroll.PeriodRequest{Month: 3, Year: 2026})
	assert.ErrorIs(t, err, payroll.ErrPayrollAlreadyCompleted)

	// A different period for the same company is unaffected.
	_, err = svc.Run(ctx, payroll.PeriodRequest{Month: 4, Year: 2026})
	assert.NoError(t, err)
}

func TestPayrollService_Run_ItemFailureLeavesPeriodIncomplete(t *testing.T) {
	t.Parallel()
	payrolls := newMemoryPayrollRepo()
	payrolls.failFor = "e2"
	svc := newTestService(runTestEmployees(), payrolls)
	ctx := actorContext(t, "u1", user.RolePayrollAdmin, "company-a")

	_, err := svc.Run(ctx, payroll.PeriodRequest{Month: 3, Year: 2026})
	require.Error(t, err)

	stored := payrolls.run("company-a", 3, 2026)
	assert.Equal(t, payroll.StatusProcessing, stored.Status)
}

func TestPayrollService_Run_ProcessingRerunReplacesItems(t *testing.T) {
	t.Parallel()
	payrolls := newMemoryPayrollRepo()
	svc := newTestService(runTestEmployees(), payrolls)
	ctx := actorContext(t, "u1", user.RolePayrollAdmin, "company-a")

	// First attempt fails mid-batch and leaves the period in processing with
	// one item already written.
	payrolls.failFor = "e2"
	_, err := svc.Run(ctx, payroll.PeriodRequest{Month: 3, Year: 2026})
	require.Error(t, err)

	stored := payrolls.run("company-a", 3, 2026)
	require.Equal(t, payroll.StatusProcessing, stored.Status)
	require.Len(t, payrolls.items[stored.ID], 1)

	// The re-run replaces the stale items rather than duplicating them.
	payrolls.failFor = ""
	resp, err := svc.Run(ctx, payroll.PeriodRequest{Month: 3, Year: 2026})
	require.NoError(t, err)

	assert.Equal(t, string(payroll.StatusCompleted), resp.Status)
	assert.Len(t, payrolls.items[stored.ID], 2)

	seen := map[string]bool{}
	for _, item := range payrolls.items[stored.ID] {
		seen[item.EmployeeID] = true
	}
	assert.True(t, seen["e1"] && seen["e2"])
}

// ===== RESULTS / LEDGER TESTS =====

func TestPayrollService_Results_ReturnsCompletedRun(t *testing.T) {
	t.Parallel()
	name := "Asha Rao"
	payrolls := &stubPayrollRepo{byPeriod: map[string]payroll.Payroll{
		"company-a": {
			ID:          "p1",
			CompanyID:   "company-a",
			PeriodMonth: 3,
			PeriodYear:  2026,
			Status:      payroll.StatusCompleted,
			Items: []payroll.PayrollItem{
				{
					ID:           "i1",
					PayrollID:    "p1",
					EmployeeID:   "e1",
					GrossSalary:  decimal.NewFromInt(1200000),
					NetSalary:    decimal.NewFromInt(935800),
					Currency:     "INR",
					EmployeeName: &name,
				},
			},
		},
	}}
	svc := newTestService(&stubEmployeeRepo{}, payrolls)
	ctx := actorContext(t, "u1", user.RoleFinanceAdmin, "company-a")

	resp, err := svc.Results(ctx, payroll.PeriodRequest{Month: 3, Year: 2026})
	require.NoError(t, err)

	assert.Equal(t, "p1", resp.ID)
	assert.Equal(t, string(payroll.StatusCompleted), resp.Status)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, "Asha Rao", resp.Items[0].EmployeeName)
}

func TestPayrollService_Results_NotFound(t *testing.T) {
	t.Parallel()
	svc := newTestService(&stubEmployeeRepo{}, &stubPayrollRepo{})
	ctx := actorContext(t, "u1", user.RolePayrollAdmin, "company-a")

	_, err := svc.Results(ctx, payroll.PeriodRequest{Month: 3, Year: 2026})
	assert.ErrorIs(t, err, payroll.ErrPayrollNotFound)
}

func TestPayrollService_Ledger_ScopedToOwnCompany(t *testing.T) {
	t.Parallel()
	payrolls := &stubPayrollRepo{ledger: map[string][]payroll.PayrollSummary{
		"company-a": {{ID: "p1", PeriodMonth: 2, PeriodYear: 2026, Status: "completed", EmployeeCount: 3}},
		"company-b": {{ID: "p2", PeriodMonth: 2, PeriodYear: 2026, Status: "completed", EmployeeCount: 9}},
	}}
	svc := newTestService(&stubEmployeeRepo{}, payrolls)
	ctx := actorContext(t, "u1", user.RoleAuditor, "company-a")

	summaries, err := svc.Ledger(ctx)
	require.NoError(t, err)
	require.Len(t, summaries, 1)
	assert.Equal(t, "p1", summaries[0].ID)
}
