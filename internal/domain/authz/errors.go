package authz

import "errors"

var (
	ErrActorMissing    = errors.New("authenticated actor missing from context")
	ErrRoleNotAllowed  = errors.New("role is not allowed to perform this operation")
	ErrCompanyMismatch = errors.New("resource belongs to another company")
)
