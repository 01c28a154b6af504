package authz

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/talenthq/payroll-backend-go/internal/domain/user"
)

func TestAllowRoles_SuperAdminBypassesAllowList(t *testing.T) {
	actor := Actor{UserID: "u1", Role: user.RoleSuperAdmin}

	assert.NoError(t, AllowRoles(actor, user.RolePayrollAdmin))
	assert.NoError(t, AllowRoles(actor))
}

func TestAllowRoles_RoleInAllowList(t *testing.T) {
	actor := Actor{UserID: "u1", Role: user.RolePayrollAdmin, CompanyID: "c1"}

	assert.NoError(t, AllowRoles(actor, user.RoleCompanyOwner, user.RolePayrollAdmin))
}

func TestAllowRoles_RoleNotInAllowList(t *testing.T) {
	actor := Actor{UserID: "u1", Role: user.RoleEmployee, CompanyID: "c1"}

	err := AllowRoles(actor, user.RoleCompanyOwner, user.RolePayrollAdmin)
	assert.ErrorIs(t, err, ErrRoleNotAllowed)
}

func TestAllowCompany_TenantIsolation(t *testing.T) {
	// Any non-super-admin role accessing another company's resource is denied.
	for _, role := range user.Roles {
		if role == user.RoleSuperAdmin {
			continue
		}
		actor := Actor{UserID: "u1", Role: role, CompanyID: "company-a"}
		err := AllowCompany(actor, "company-b")
		assert.ErrorIs(t, err, ErrCompanyMismatch, "role %s", role)
	}
}

func TestAllowCompany_OwnCompany(t *testing.T) {
	actor := Actor{UserID: "u1", Role: user.RoleHRAdmin, CompanyID: "company-a"}

	assert.NoError(t, AllowCompany(actor, "company-a"))
}

func TestAllowCompany_SuperAdminCrossTenant(t *testing.T) {
	actor := Actor{UserID: "u1", Role: user.RoleSuperAdmin}

	assert.NoError(t, AllowCompany(actor, "company-b"))
}

func TestAllowCompany_EmptyActorCompanyDenied(t *testing.T) {
	actor := Actor{UserID: "u1", Role: user.RoleManager}

	err := AllowCompany(actor, "")
	assert.ErrorIs(t, err, ErrCompanyMismatch)
}

func TestAllow_CombinesBothChecks(t *testing.T) {
	actor := Actor{UserID: "u1", Role: user.RolePayrollAdmin, CompanyID: "company-a"}

	assert.NoError(t, Allow(actor, "company-a", user.RolePayrollAdmin))
	assert.ErrorIs(t, Allow(actor, "company-b", user.RolePayrollAdmin), ErrCompanyMismatch)
	assert.ErrorIs(t, Allow(actor, "company-a", user.RoleAuditor), ErrRoleNotAllowed)
}
