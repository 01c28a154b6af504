package company

import "errors"

var (
	ErrCompanyNotFound     = errors.New("company not found")
	ErrCompanyNameRequired = errors.New("company name is required")
	ErrUsernameExists      = errors.New("company username already taken")
)
