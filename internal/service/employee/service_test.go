package employee

import (
	"context"
	"fmt"
	"testing"

	"github.com/go-chi/jwtauth/v5"
	"github.com/lestrrat-go/jwx/v2/jwt"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/talenthq/payroll-backend-go/internal/domain/authz"
	"github.com/talenthq/payroll-backend-go/internal/domain/country"
	"github.com/talenthq/payroll-backend-go/internal/domain/employee"
	"github.com/talenthq/payroll-backend-go/internal/domain/user"
	"github.com/talenthq/payroll-backend-go/internal/fixtures"
	countryService "github.com/talenthq/payroll-backend-go/internal/service/country"
)

// ===== TEST DOUBLES =====

type memoryEmployeeRepo struct {
	employees map[string]employee.Employee
	nextID    int
}

func newMemoryEmployeeRepo() *memoryEmployeeRepo {
	return &memoryEmployeeRepo{employees: make(map[string]employee.Employee)}
}

func (m *memoryEmployeeRepo) GetByID(_ context.Context, id string, companyID string) (employee.Employee, error) {
	e, ok := m.employees[id]
	if !ok || (companyID != "" && e.CompanyID != companyID) {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return e, nil
}

func (m *memoryEmployeeRepo) Create(_ context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	for _, e := range m.employees {
		if e.CompanyID == newEmployee.CompanyID && e.Email == newEmployee.Email {
			return employee.Employee{}, employee.ErrEmailExists
		}
	}
	m.nextID++
	newEmployee.ID = fmt.Sprintf("emp-%d", m.nextID)
	m.employees[newEmployee.ID] = newEmployee
	return newEmployee, nil
}

func (m *memoryEmployeeRepo) Update(_ context.Context, companyID string, req employee.UpdateEmployeeRequest) error {
	e, ok := m.employees[req.ID]
	if !ok || e.CompanyID != companyID {
		return employee.ErrEmployeeNotFound
	}
	if req.FullName != nil {
		e.FullName = *req.FullName
	}
	if req.Position != nil {
		e.Position = *req.Position
	}
	if req.CountryCode != nil {
		e.CountryCode = *req.CountryCode
	}
	if req.BaseSalary != nil {
		e.BaseSalary = req.BaseSalary
	}
	if req.Status != nil {
		e.Status = employee.Status(*req.Status)
	}
	m.employees[req.ID] = e
	return nil
}

func (m *memoryEmployeeRepo) GetActiveByCompanyID(_ context.Context, companyID string) ([]employee.Employee, error) {
	var out []employee.Employee
	for _, e := range m.employees {
		if e.CompanyID == companyID && e.Status == employee.StatusActive {
			out = append(out, e)
		}
	}
	return out, nil
}

func (m *memoryEmployeeRepo) ListByCompanyID(_ context.Context, companyID string) ([]employee.Employee, error) {
	var out []employee.Employee
	for _, e := range m.employees {
		if e.CompanyID == companyID {
			out = append(out, e)
		}
	}
	return out, nil
}

func actorContext(t *testing.T, role user.Role, companyID string) context.Context {
	t.Helper()
	token := jwt.New()
	require.NoError(t, token.Set("user_id", "u1"))
	require.NoError(t, token.Set("role", string(role)))
	if companyID != "" {
		require.NoError(t, token.Set("company_id", companyID))
	}
	return jwtauth.NewContext(context.Background(), token, nil)
}

func newTestService(repo employee.EmployeeRepository) employee.EmployeeService {
	return NewEmployeeService(repo, countryService.NewRegistry(fixtures.GetDefaultCountryConfigs()))
}

func validRequest() employee.CreateEmployeeRequest {
	return employee.CreateEmployeeRequest{
		FullName:    "Asha Rao",
		Email:       "asha@example.com",
		Position:    "Engineer",
		CountryCode: "IN",
		HireDate:    "2026-01-15",
	}
}

// ===== TESTS =====

func TestEmployeeService_Create_Success(t *testing.T) {
	t.Parallel()
	svc := newTestService(newMemoryEmployeeRepo())
	ctx := actorContext(t, user.RoleHRAdmin, "company-a")

	created, err := svc.Create(ctx, validRequest())
	require.NoError(t, err)
	assert.Equal(t, "company-a", created.CompanyID)
	assert.Equal(t, string(employee.StatusActive), created.Status)
	assert.Nil(t, created.BaseSalary)
	assert.Equal(t, "2026-01-15", created.HireDate)
}

func TestEmployeeService_Create_UnknownCountry(t *testing.T) {
	t.Parallel()
	svc := newTestService(newMemoryEmployeeRepo())
	ctx := actorContext(t, user.RoleHRAdmin, "company-a")

	req := validRequest()
	req.CountryCode = "ZZ"

	_, err := svc.Create(ctx, req)
	assert.ErrorIs(t, err, country.ErrCountryNotFound)
}

func TestEmployeeService_Create_DuplicateEmail(t *testing.T) {
	t.Parallel()
	svc := newTestService(newMemoryEmployeeRepo())
	ctx := actorContext(t, user.RoleCompanyOwner, "company-a")

	_, err := svc.Create(ctx, validRequest())
	require.NoError(t, err)

	_, err = svc.Create(ctx, validRequest())
	assert.ErrorIs(t, err, employee.ErrEmailExists)
}

func TestEmployeeService_Create_RoleDenied(t *testing.T) {
	t.Parallel()
	svc := newTestService(newMemoryEmployeeRepo())
	ctx := actorContext(t, user.RolePayrollAdmin, "company-a")

	_, err := svc.Create(ctx, validRequest())
	assert.ErrorIs(t, err, authz.ErrRoleNotAllowed)
}

func TestEmployeeService_Update_SalaryAndStatus(t *testing.T) {
	t.Parallel()
	repo := newMemoryEmployeeRepo()
	svc := newTestService(repo)
	ctx := actorContext(t, user.RoleHRAdmin, "company-a")

	created, err := svc.Create(ctx, validRequest())
	require.NoError(t, err)

	salary := decimal.NewFromInt(1200000)
	status := string(employee.StatusInactive)
	err = svc.Update(ctx, employee.UpdateEmployeeRequest{
		ID:         created.ID,
		BaseSalary: &salary,
		Status:     &status,
	})
	require.NoError(t, err)

	stored := repo.employees[created.ID]
	require.NotNil(t, stored.BaseSalary)
	assert.True(t, salary.Equal(*stored.BaseSalary))
	assert.Equal(t, employee.StatusInactive, stored.Status)
}

func TestEmployeeService_Update_InvalidStatusRejected(t *testing.T) {
	t.Parallel()
	svc := newTestService(newMemoryEmployeeRepo())
	ctx := actorContext(t, user.RoleHRAdmin, "company-a")

	created, err := svc.Create(ctx, validRequest())
	require.NoError(t, err)

	status := "terminated"
	err = svc.Update(ctx, employee.UpdateEmployeeRequest{ID: created.ID, Status: &status})
	assert.Error(t, err)
}

func TestEmployeeService_TenantIsolation(t *testing.T) {
	t.Parallel()
	svc := newTestService(newMemoryEmployeeRepo())

	created, err := svc.Create(actorContext(t, user.RoleHRAdmin, "company-a"), validRequest())
	require.NoError(t, err)

	otherCtx := actorContext(t, user.RoleHRAdmin, "company-b")
	_, err = svc.Get(otherCtx, created.ID)
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)

	name := "Renamed"
	err = svc.Update(otherCtx, employee.UpdateEmployeeRequest{ID: created.ID, FullName: &name})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)

	list, err := svc.List(otherCtx)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestEmployeeService_Get_SuperAdminCrossTenant(t *testing.T) {
	t.Parallel()
	svc := newTestService(newMemoryEmployeeRepo())

	created, err := svc.Create(actorContext(t, user.RoleHRAdmin, "company-a"), validRequest())
	require.NoError(t, err)

	found, err := svc.Get(actorContext(t, user.RoleSuperAdmin, ""), created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)
}
