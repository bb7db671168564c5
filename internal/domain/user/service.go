package user

import "context"

type UserService interface {
	CreateUser(ctx context.Context, ident Identity, req CreateUserRequest) (UserResponse, error)
	ListUsers(ctx context.Context) ([]UserResponse, error)
	UpdateRole(ctx context.Context, ident Identity, userID string, req UpdateRoleRequest) (UserResponse, error)
}
