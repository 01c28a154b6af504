package user

import (
	"context"
	"time"

	"github.com/talenthq/payroll-backend-go/internal/domain/audit"
	"github.com/talenthq/payroll-backend-go/internal/domain/authz"
	"github.com/talenthq/payroll-backend-go/internal/domain/user"
)

type UserServiceImpl struct {
	userRepo  user.UserRepository
	auditSink audit.Sink
}

func NewUserService(userRepo user.UserRepository, auditSink audit.Sink) user.UserService {
	return &UserServiceImpl{
		userRepo:  userRepo,
		auditSink: auditSink,
	}
}

func (s *UserServiceImpl) Me(ctx context.Context) (user.UserResponse, error) {
	actor, err := authz.ActorFromContext(ctx)
	if err != nil {
		return user.UserResponse{}, err
	}

	found, err := s.userRepo.GetByID(ctx, actor.UserID)
	if err != nil {
		return user.UserResponse{}, err
	}

	return mapToUserResponse(found), nil
}

// UpdateRole changes another user's role. Company owners may assign any
// non-platform role within their own company; only the platform operator may
// grant super_admin or touch users of other companies.
func (s *UserServiceImpl) UpdateRole(ctx context.Context, req user.UpdateUserRoleRequest) (user.UserResponse, error) {
	if err := req.Validate(); err != nil {
		return user.UserResponse{}, err
	}

	actor, err := authz.ActorFromContext(ctx)
	if err != nil {
		return user.UserResponse{}, err
	}
	if err := authz.AllowRoles(actor, user.RoleCompanyOwner); err != nil {
		return user.UserResponse{}, err
	}

	newRole := user.Role(req.Role)
	if newRole == user.RoleSuperAdmin && actor.Role != user.RoleSuperAdmin {
		return user.UserResponse{}, authz.ErrRoleNotAllowed
	}

	target, err := s.userRepo.GetByID(ctx, req.UserID)
	if err != nil {
		return user.UserResponse{}, err
	}

	targetCompanyID := ""
	if target.CompanyID != nil {
		targetCompanyID = *target.CompanyID
	}
	if err := authz.AllowCompany(actor, targetCompanyID); err != nil {
		return user.UserResponse{}, err
	}

	// Tenant roles require a company; only a platform operator account has none.
	if target.CompanyID == nil && newRole != user.RoleSuperAdmin {
		return user.UserResponse{}, user.ErrCompanyIDRequired
	}

	if err := s.userRepo.UpdateRole(ctx, target.ID, newRole); err != nil {
		return user.UserResponse{}, err
	}
	target.Role = newRole

	s.auditSink.Record(ctx, audit.Event{
		ActorID:    actor.UserID,
		CompanyID:  targetCompanyID,
		Action:     audit.ActionUpdateUserRole,
		Resource:   "user",
		ResourceID: target.ID,
		Payload: audit.Payload{
			TargetUserID: target.ID,
			NewRole:      string(newRole),
		},
	})

	return mapToUserResponse(target), nil
}

// ========== HELPERS ==========

func mapToUserResponse(u user.User) user.UserResponse {
	return user.UserResponse{
		ID:        u.ID,
		CompanyID: u.CompanyID,
		Email:     u.Email,
		Role:      string(u.Role),
		CreatedAt: u.CreatedAt.Format(time.RFC3339),
		UpdatedAt: u.UpdatedAt.Format(time.RFC3339),
	}
}
