package employee

import (
	"github.com/shopspring/decimal"
	"github.com/talenthq/payroll-backend-go/internal/pkg/validator"
)

type EmployeeResponse struct {
	ID          string           `json:"id"`
	CompanyID   string           `json:"company_id"`
	FullName    string           `json:"full_name"`
	Email       string           `json:"email"`
	Position    string           `json:"position"`
	CountryCode string           `json:"country_code"`
	BaseSalary  *decimal.Decimal `json:"base_salary,omitempty"`
	Status      string           `json:"status"`
	HireDate    string           `json:"hire_date"`
}

type CreateEmployeeRequest struct {
	FullName    string           `json:"full_name"`
	Email       string           `json:"email"`
	Position    string           `json:"position"`
	CountryCode string           `json:"country_code"`
	BaseSalary  *decimal.Decimal `json:"base_salary,omitempty"`
	HireDate    string           `json:"hire_date"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.FullName) {
		errs = append(errs, validator.ValidationError{
			Field:   "full_name",
			Message: "full_name is required",
		})
	}
	if validator.IsEmpty(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email is required",
		})
	} else if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "invalid email format",
		})
	}
	if validator.IsEmpty(r.CountryCode) {
		errs = append(errs, validator.ValidationError{
			Field:   "country_code",
			Message: "country_code is required",
		})
	}
	if r.BaseSalary != nil && r.BaseSalary.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "base_salary",
			Message: "base_salary must not be negative",
		})
	}
	if validator.IsEmpty(r.HireDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "hire_date",
			Message: "hire_date is required",
		})
	} else if _, ok := validator.IsValidDate(r.HireDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "hire_date",
			Message: "hire_date must be in YYYY-MM-DD format",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateEmployeeRequest struct {
	ID          string           `json:"-"`
	FullName    *string          `json:"full_name,omitempty"`
	Position    *string          `json:"position,omitempty"`
	CountryCode *string          `json:"country_code,omitempty"`
	BaseSalary  *decimal.Decimal `json:"base_salary,omitempty"`
	Status      *string          `json:"status,omitempty"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.FullName != nil && validator.IsEmpty(*r.FullName) {
		errs = append(errs, validator.ValidationError{
			Field:   "full_name",
			Message: "full_name must not be empty",
		})
	}
	if r.CountryCode != nil && validator.IsEmpty(*r.CountryCode) {
		errs = append(errs, validator.ValidationError{
			Field:   "country_code",
			Message: "country_code must not be empty",
		})
	}
	if r.BaseSalary != nil && r.BaseSalary.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "base_salary",
			Message: "base_salary must not be negative",
		})
	}
	if r.Status != nil && *r.Status != string(StatusActive) && *r.Status != string(StatusInactive) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be active or inactive",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}
