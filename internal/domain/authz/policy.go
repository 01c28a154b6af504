package authz

import (
	"context"
	"fmt"

	"github.com/go-chi/jwtauth/v5"
	"github.com/talenthq/payroll-backend-go/internal/domain/user"
)

// Actor is the authenticated identity an operation runs as.
type Actor struct {
	UserID    string
	Role      user.Role
	CompanyID string
}

// ActorFromContext builds an Actor from the JWT claims placed on the request
// context by the jwtauth verifier. SUPER_ADMIN tokens carry no company_id.
func ActorFromContext(ctx context.Context) (Actor, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return Actor{}, fmt.Errorf("failed to extract claims from context: %w", err)
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return Actor{}, ErrActorMissing
	}

	roleStr, ok := claims["role"].(string)
	if !ok || !user.IsValidRole(roleStr) {
		return Actor{}, ErrActorMissing
	}

	companyID, _ := claims["company_id"].(string)

	return Actor{
		UserID:    userID,
		Role:      user.Role(roleStr),
		CompanyID: companyID,
	}, nil
}

// AllowRoles checks the actor's role against an operation's allow-list.
// SUPER_ADMIN is permitted for every operation regardless of the list.
func AllowRoles(actor Actor, allowed ...user.Role) error {
	if actor.Role == user.RoleSuperAdmin {
		return nil
	}
	for _, r := range allowed {
		if actor.Role == r {
			return nil
		}
	}
	return ErrRoleNotAllowed
}

// AllowCompany enforces tenant isolation: a non-SUPER_ADMIN actor may only
// touch resources belonging to its own company.
func AllowCompany(actor Actor, resourceCompanyID string) error {
	if actor.Role == user.RoleSuperAdmin {
		return nil
	}
	if actor.CompanyID == "" || actor.CompanyID != resourceCompanyID {
		return ErrCompanyMismatch
	}
	return nil
}

// Allow combines the role allow-list and tenant-isolation checks.
func Allow(actor Actor, resourceCompanyID string, allowed ...user.Role) error {
	if err := AllowRoles(actor, allowed...); err != nil {
		return err
	}
	return AllowCompany(actor, resourceCompanyID)
}
