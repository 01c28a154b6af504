package user

import "time"

type Role string

const (
	RoleSuperAdmin   Role = "super_admin"   // Platform operator, bypasses tenant scoping
	RoleCompanyOwner Role = "company_owner" // Company owner, full access within company
	RoleHRAdmin      Role = "hr_admin"      // Manages employees, offers, contracts
	RolePayrollAdmin Role = "payroll_admin" // Runs and reviews payroll
	RoleFinanceAdmin Role = "finance_admin" // Reviews payroll and financial data
	RoleManager      Role = "manager"       // Read access to team data
	RoleEmployee     Role = "employee"      // Regular employee
	RoleAuditor      Role = "auditor"       // Read-only access to payroll data
)

// Roles lists every assignable role.
var Roles = []Role{
	RoleSuperAdmin,
	RoleCompanyOwner,
	RoleHRAdmin,
	RolePayrollAdmin,
	RoleFinanceAdmin,
	RoleManager,
	RoleEmployee,
	RoleAuditor,
}

// IsValidRole reports whether s names a known role.
func IsValidRole(s string) bool {
	for _, r := range Roles {
		if string(r) == s {
			return true
		}
	}
	return false
}

type User struct {
	ID              string
	CompanyID       *string
	Email           string
	PasswordHash    *string
	Role            Role
	OAuthProvider   *string
	OAuthProviderID *string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// IsSuperAdmin checks if the user is a cross-tenant platform operator
func (u *User) IsSuperAdmin() bool {
	return u.Role == RoleSuperAdmin
}

// IsOwner checks if user is company owner
func (u *User) IsOwner() bool {
	return u.Role == RoleCompanyOwner
}

// CanManageRoles checks if user can change other users' roles
func (u *User) CanManageRoles() bool {
	return u.Role == RoleCompanyOwner || u.Role == RoleSuperAdmin
}
