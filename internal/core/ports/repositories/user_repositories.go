package repositories

import (
	"context"

	"github.com/Grupo02-6P/grupo02-sub001/internal/core/domain"
)

// UserRepository defines persistence operations for users.
type UserRepository interface {
	SaveUser(ctx context.Context, user domain.User) error

	// FindUserByID returns apperrors.ErrNotFound when absent.
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)

	// FindUserByUsername returns apperrors.ErrNotFound when absent.
	FindUserByUsername(ctx context.Context, username string) (*domain.User, error)

	ListUsers(ctx context.Context, limit, offset int) ([]domain.User, error)

	UpdateUser(ctx context.Context, user domain.User) error
}
