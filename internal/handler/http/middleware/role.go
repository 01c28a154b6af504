package middleware

import (
	"net/http"

	"github.com/talenthq/payroll-backend-go/internal/domain/authz"
	"github.com/talenthq/payroll-backend-go/internal/domain/user"
	"github.com/talenthq/payroll-backend-go/internal/handler/http/response"
)

// RequireRoles gates a route group to the given roles. The platform operator
// always passes. Services repeat the check; this is the outer fence that keeps
// obviously unauthorized requests out of the handlers.
func RequireRoles(roles ...user.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			actor, err := authz.ActorFromContext(r.Context())
			if err != nil {
				response.HandleError(w, err)
				return
			}
			if err := authz.AllowRoles(actor, roles...); err != nil {
				response.HandleError(w, err)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// SuperAdminOnly restricts a route group to the platform operator.
func SuperAdminOnly(next http.Handler) http.Handler {
	return RequireRoles()(next)
}
