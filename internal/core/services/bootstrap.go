package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Grupo02-6P/grupo02-sub001/internal/apperrors"
	"github.com/Grupo02-6P/grupo02-sub001/internal/core/domain"
	portsrepo "github.com/Grupo02-6P/grupo02-sub001/internal/core/ports/repositories"
	"github.com/Grupo02-6P/grupo02-sub001/internal/middleware"
	"github.com/Grupo02-6P/grupo02-sub001/internal/platform/config"
	"github.com/Grupo02-6P/grupo02-sub001/internal/utils"
	"github.com/google/uuid"
)

// bootstrapCreatedBy tags the seeded admin's audit fields; no user exists to
// own the creation yet.
const bootstrapCreatedBy = "bootstrap"

// EnsureBootstrapAdmin seeds the first ADMIN user so a fresh database can be
// logged into. User creation is admin-gated, so without a seeded admin no
// user could ever be created. A no-op when the configured username already
// exists or when no bootstrap password is configured.
func EnsureBootstrapAdmin(ctx context.Context, userRepo portsrepo.UserRepository, cfg *config.Config) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if cfg.BootstrapAdminPassword == "" {
		logger.Debug("Bootstrap admin seeding skipped, no password configured")
		return nil
	}

	_, err := userRepo.FindUserByUsername(ctx, cfg.BootstrapAdminUsername)
	if err == nil {
		return nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return fmt.Errorf("failed to check for bootstrap admin %q: %w", cfg.BootstrapAdminUsername, err)
	}

	hash, err := utils.HashPassword(cfg.BootstrapAdminPassword)
	if err != nil {
		return fmt.Errorf("failed to hash bootstrap admin password: %w", err)
	}

	now := time.Now()
	admin := domain.User{
		UserID:       uuid.NewString(),
		Name:         "Administrador",
		Username:     cfg.BootstrapAdminUsername,
		PasswordHash: hash,
		Role:         domain.RoleAdmin,
		IsActive:     true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     bootstrapCreatedBy,
			LastUpdatedAt: now,
			LastUpdatedBy: bootstrapCreatedBy,
		},
	}

	if err := userRepo.SaveUser(ctx, admin); err != nil {
		return fmt.Errorf("failed to seed bootstrap admin %q: %w", cfg.BootstrapAdminUsername, err)
	}

	logger.Info("Bootstrap admin seeded", "username", cfg.BootstrapAdminUsername, "user_id", admin.UserID)
	return nil
}
