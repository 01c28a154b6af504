package employee

import (
	"context"
	"fmt"

	"github.com/talenthq/payroll-backend-go/internal/domain/authz"
	"github.com/talenthq/payroll-backend-go/internal/domain/country"
	"github.com/talenthq/payroll-backend-go/internal/domain/employee"
	"github.com/talenthq/payroll-backend-go/internal/domain/user"
	"github.com/talenthq/payroll-backend-go/internal/pkg/validator"
)

var manageRoles = []user.Role{user.RoleCompanyOwner, user.RoleHRAdmin}

var viewRoles = []user.Role{
	user.RoleCompanyOwner,
	user.RoleHRAdmin,
	user.RolePayrollAdmin,
	user.RoleFinanceAdmin,
	user.RoleManager,
	user.RoleAuditor,
}

type EmployeeServiceImpl struct {
	employeeRepo employee.EmployeeRepository
	countries    country.Registry
}

func NewEmployeeService(employeeRepo employee.EmployeeRepository, countries country.Registry) employee.EmployeeService {
	return &EmployeeServiceImpl{
		employeeRepo: employeeRepo,
		countries:    countries,
	}
}

// Create adds an employee to the actor's company. The country code must name a
// configured country; base salary may be left unset and configured later.
func (s *EmployeeServiceImpl) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	actor, err := authz.ActorFromContext(ctx)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	if err := authz.AllowRoles(actor, manageRoles...); err != nil {
		return employee.EmployeeResponse{}, err
	}
	if actor.CompanyID == "" {
		return employee.EmployeeResponse{}, user.ErrCompanyIDRequired
	}

	if _, err := s.countries.FindByCode(req.CountryCode); err != nil {
		return employee.EmployeeResponse{}, err
	}

	hireDate, _ := validator.IsValidDate(req.HireDate)

	created, err := s.employeeRepo.Create(ctx, employee.Employee{
		CompanyID:   actor.CompanyID,
		FullName:    req.FullName,
		Email:       req.Email,
		Position:    req.Position,
		CountryCode: req.CountryCode,
		BaseSalary:  req.BaseSalary,
		Status:      employee.StatusActive,
		HireDate:    hireDate,
	})
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return mapToEmployeeResponse(created), nil
}

func (s *EmployeeServiceImpl) Get(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	actor, err := authz.ActorFromContext(ctx)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	if err := authz.AllowRoles(actor, viewRoles...); err != nil {
		return employee.EmployeeResponse{}, err
	}

	found, err := s.employeeRepo.GetByID(ctx, id, actor.CompanyID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	if err := authz.AllowCompany(actor, found.CompanyID); err != nil {
		return employee.EmployeeResponse{}, err
	}

	return mapToEmployeeResponse(found), nil
}

func (s *EmployeeServiceImpl) List(ctx context.Context) ([]employee.EmployeeResponse, error) {
	actor, err := authz.ActorFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if err := authz.AllowRoles(actor, viewRoles...); err != nil {
		return nil, err
	}
	if actor.CompanyID == "" {
		return nil, user.ErrCompanyIDRequired
	}

	employees, err := s.employeeRepo.ListByCompanyID(ctx, actor.CompanyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, e := range employees {
		responses = append(responses, mapToEmployeeResponse(e))
	}
	return responses, nil
}

// Update applies partial changes, including salary configuration and
// activation status. A changed country code must name a configured country.
func (s *EmployeeServiceImpl) Update(ctx context.Context, req employee.UpdateEmployeeRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	actor, err := authz.ActorFromContext(ctx)
	if err != nil {
		return err
	}
	if err := authz.AllowRoles(actor, manageRoles...); err != nil {
		return err
	}

	found, err := s.employeeRepo.GetByID(ctx, req.ID, actor.CompanyID)
	if err != nil {
		return err
	}
	if err := authz.AllowCompany(actor, found.CompanyID); err != nil {
		return err
	}

	if req.CountryCode != nil {
		if _, err := s.countries.FindByCode(*req.CountryCode); err != nil {
			return err
		}
	}

	return s.employeeRepo.Update(ctx, found.CompanyID, req)
}

// ========== HELPERS ==========

func mapToEmployeeResponse(e employee.Employee) employee.EmployeeResponse {
	return employee.EmployeeResponse{
		ID:          e.ID,
		CompanyID:   e.CompanyID,
		FullName:    e.FullName,
		Email:       e.Email,
		Position:    e.Position,
		CountryCode: e.CountryCode,
		BaseSalary:  e.BaseSalary,
		Status:      string(e.Status),
		HireDate:    e.HireDate.Format("2006-01-02"),
	}
}
