package response

import (
	"errors"
	"net/http"

	"github.com/talenthq/payroll-backend-go/internal/domain/auth"
	"github.com/talenthq/payroll-backend-go/internal/domain/authz"
	"github.com/talenthq/payroll-backend-go/internal/domain/company"
	"github.com/talenthq/payroll-backend-go/internal/domain/country"
	"github.com/talenthq/payroll-backend-go/internal/domain/employee"
	"github.com/talenthq/payroll-backend-go/internal/domain/offer"
	"github.com/talenthq/payroll-backend-go/internal/domain/payroll"
	"github.com/talenthq/payroll-backend-go/internal/domain/user"
	"github.com/talenthq/payroll-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Invalid email or password")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or malformed token")
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrUserNotFound):
		NotFound(w, "User not found")

	// Authorization errors
	case errors.Is(err, authz.ErrActorMissing):
		Unauthorized(w, "Authentication required")
	case errors.Is(err, authz.ErrRoleNotAllowed):
		Forbidden(w, "Role not permitted for this operation")
	case errors.Is(err, authz.ErrCompanyMismatch):
		Forbidden(w, "Resource belongs to another company")

	// User domain errors
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, user.ErrInvalidRole):
		BadRequest(w, "Invalid role", nil)
	case errors.Is(err, user.ErrCompanyIDRequired):
		BadRequest(w, "Operation requires a company context", nil)

	// Company domain errors
	case errors.Is(err, company.ErrCompanyNotFound):
		NotFound(w, "Company not found")
	case errors.Is(err, company.ErrUsernameExists):
		Conflict(w, "Company username already taken")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmailExists):
		Conflict(w, "Email already registered in this company")

	// Country configuration errors
	case errors.Is(err, country.ErrCountryNotFound):
		NotFound(w, "Country configuration not found")

	// Payroll domain errors
	case errors.Is(err, payroll.ErrPayrollNotFound):
		NotFound(w, "Payroll not found for this period")
	case errors.Is(err, payroll.ErrPayrollAlreadyCompleted):
		Conflict(w, "Payroll for this period has already been completed")
	case errors.Is(err, payroll.ErrNoActiveEmployees):
		BadRequest(w, "No active employees to run payroll for", nil)
	case errors.Is(err, payroll.ErrInvalidPeriod):
		BadRequest(w, "Invalid payroll period", nil)

	// Offer domain errors
	case errors.Is(err, offer.ErrOfferNotFound):
		NotFound(w, "Offer not found")
	case errors.Is(err, offer.ErrOfferNotAccepted):
		Conflict(w, "Offer has not been accepted")
	case errors.Is(err, offer.ErrOfferExpired):
		Conflict(w, "Offer has expired")
	case errors.Is(err, offer.ErrInvalidStatusChange):
		Conflict(w, "Invalid offer status transition")
	case errors.Is(err, offer.ErrContractNotFound):
		NotFound(w, "Contract not found")
	case errors.Is(err, offer.ErrContractAlreadyExists):
		Conflict(w, "Contract already generated for this offer")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
