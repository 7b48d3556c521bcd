package services

import (
	"context"

	"github.com/Grupo02-6P/grupo02-sub001/internal/core/domain"
	"github.com/Grupo02-6P/grupo02-sub001/internal/dto"
)

// RoleAuthorizerSvc checks that a user holds at least the required role.
// Services embed this check before any state change or report generation.
type RoleAuthorizerSvc interface {
	// AuthorizeRole returns apperrors.ErrForbidden when the user's role is
	// below required, apperrors.ErrNotFound when the user does not exist.
	AuthorizeRole(ctx context.Context, userID string, required domain.Role) error
}

// UserSvcFacade defines user administration operations. All mutating
// operations require the requesting user to be an ADMIN.
type UserSvcFacade interface {
	RoleAuthorizerSvc

	CreateUser(ctx context.Context, req dto.CreateUserRequest, requestingUserID string) (*domain.User, error)

	GetUserByID(ctx context.Context, userID string) (*domain.User, error)

	ListUsers(ctx context.Context, limit, offset int, requestingUserID string) ([]domain.User, error)

	UpdateUser(ctx context.Context, userID string, req dto.UpdateUserRequest, requestingUserID string) (*domain.User, error)

	DeactivateUser(ctx context.Context, userID string, requestingUserID string) error
}

// AuthSvcFacade issues access tokens for valid credentials.
type AuthSvcFacade interface {
	// Login returns apperrors.ErrUnauthorized for unknown users, wrong
	// passwords and deactivated users alike.
	Login(ctx context.Context, username, password string) (*dto.LoginResponse, error)
}
