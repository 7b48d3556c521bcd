package services

import (
	"context"
	"log/slog"

	"github.com/Grupo02-6P/grupo02-sub001/internal/core/domain"
	portssvc "github.com/Grupo02-6P/grupo02-sub001/internal/core/ports/services"
	"github.com/Grupo02-6P/grupo02-sub001/internal/middleware"
)

// BaseService provides common functionality for all services
type BaseService struct {
	RoleAuthorizer portssvc.RoleAuthorizerSvc
}

// GetLogger gets the logger from context or returns a default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	return middleware.GetLoggerFromCtx(ctx)
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	args := make([]any, 0, len(keyvals)+2)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	s.GetLogger(ctx).Error(msg, args...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Info(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Debug(msg, keyvals...)
}

// AuthorizeUser checks that the user holds at least the required role.
// With no authorizer configured (unit tests), access is granted.
func (s *BaseService) AuthorizeUser(ctx context.Context, userID string, required domain.Role) error {
	if s.RoleAuthorizer != nil {
		return s.RoleAuthorizer.AuthorizeRole(ctx, userID, required)
	}
	s.LogDebug(ctx, "No role authorizer provided, access granted by default",
		slog.String("user_id", userID),
		slog.String("required_role", string(required)))
	return nil
}
