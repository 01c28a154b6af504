package offer

import (
	"github.com/shopspring/decimal"
	"github.com/talenthq/payroll-backend-go/internal/pkg/validator"
)

type CreateOfferRequest struct {
	CandidateName  string          `json:"candidate_name"`
	CandidateEmail string          `json:"candidate_email"`
	Position       string          `json:"position"`
	CountryCode    string          `json:"country_code"`
	GrossSalary    decimal.Decimal `json:"gross_salary"`
	ValidUntil     string          `json:"valid_until"`
}

func (r *CreateOfferRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.CandidateName) {
		errs = append(errs, validator.ValidationError{
			Field:   "candidate_name",
			Message: "candidate_name is required",
		})
	}
	if validator.IsEmpty(r.CandidateEmail) {
		errs = append(errs, validator.ValidationError{
			Field:   "candidate_email",
			Message: "candidate_email is required",
		})
	} else if !validator.IsValidEmail(r.CandidateEmail) {
		errs = append(errs, validator.ValidationError{
			Field:   "candidate_email",
			Message: "invalid email format",
		})
	}
	if validator.IsEmpty(r.Position) {
		errs = append(errs, validator.ValidationError{
			Field:   "position",
			Message: "position is required",
		})
	}
	if validator.IsEmpty(r.CountryCode) {
		errs = append(errs, validator.ValidationError{
			Field:   "country_code",
			Message: "country_code is required",
		})
	}
	if r.GrossSalary.IsNegative() || r.GrossSalary.IsZero() {
		errs = append(errs, validator.ValidationError{
			Field:   "gross_salary",
			Message: "gross_salary must be greater than zero",
		})
	}
	if validator.IsEmpty(r.ValidUntil) {
		errs = append(errs, validator.ValidationError{
			Field:   "valid_until",
			Message: "valid_until is required",
		})
	} else if _, ok := validator.IsValidDate(r.ValidUntil); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "valid_until",
			Message: "valid_until must be in YYYY-MM-DD format",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type OfferResponse struct {
	ID             string              `json:"id"`
	CompanyID      string              `json:"company_id"`
	CandidateName  string              `json:"candidate_name"`
	CandidateEmail string              `json:"candidate_email"`
	Position       string              `json:"position"`
	CountryCode    string              `json:"country_code"`
	GrossSalary    decimal.Decimal     `json:"gross_salary"`
	Currency       string              `json:"currency"`
	Status         string              `json:"status"`
	ValidUntil     string              `json:"valid_until"`
	Compensation   CompensationPreview `json:"compensation"`
	CreatedAt      string              `json:"created_at"`
}

type ContractResponse struct {
	ID           string              `json:"id"`
	OfferID      string              `json:"offer_id"`
	EmployeeName string              `json:"employee_name"`
	Position     string              `json:"position"`
	CountryCode  string              `json:"country_code"`
	GrossSalary  decimal.Decimal     `json:"gross_salary"`
	Currency     string              `json:"currency"`
	Compensation CompensationPreview `json:"compensation"`
	CreatedAt    string              `json:"created_at"`
}
