package user

import "errors"

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrEmailExists       = errors.New("email already registered")
	ErrInvalidRole       = errors.New("invalid role")
	ErrOwnerRequired     = errors.New("company owner access required")
	ErrCompanyIDRequired = errors.New("company_id is required for this role")
)
