package user

import "context"

type UserService interface {
	Me(ctx context.Context) (UserResponse, error)
	UpdateRole(ctx context.Context, req UpdateUserRoleRequest) (UserResponse, error)
}
