package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Grupo02-6P/grupo02-sub001/internal/apperrors"
	portsrepo "github.com/Grupo02-6P/grupo02-sub001/internal/core/ports/repositories"
	portssvc "github.com/Grupo02-6P/grupo02-sub001/internal/core/ports/services"
	"github.com/Grupo02-6P/grupo02-sub001/internal/dto"
	"github.com/Grupo02-6P/grupo02-sub001/internal/platform/config"
	"github.com/Grupo02-6P/grupo02-sub001/internal/utils"
)

type authService struct {
	BaseService
	userRepo portsrepo.UserRepository
	cfg      *config.Config
}

// NewAuthService creates the credential validation and token issuing service.
func NewAuthService(userRepo portsrepo.UserRepository, cfg *config.Config) portssvc.AuthSvcFacade {
	return &authService{userRepo: userRepo, cfg: cfg}
}

var _ portssvc.AuthSvcFacade = (*authService)(nil)

// Login validates credentials and returns a signed access token. Unknown
// users, wrong passwords and deactivated users all produce the same
// unauthorized error so the response doesn't leak which part failed.
func (s *authService) Login(ctx context.Context, username, password string) (*dto.LoginResponse, error) {
	user, err := s.userRepo.FindUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: invalid credentials", apperrors.ErrUnauthorized)
		}
		return nil, err
	}

	if !user.IsActive || !utils.CheckPasswordHash(password, user.PasswordHash) {
		return nil, fmt.Errorf("%w: invalid credentials", apperrors.ErrUnauthorized)
	}

	token, err := utils.GenerateJWT(user.UserID, s.cfg.JWTSecret, s.cfg.JWTExpiryDuration, s.cfg.JWTIssuer)
	if err != nil {
		s.LogError(ctx, err, "Failed to sign access token", "user_id", user.UserID)
		return nil, fmt.Errorf("failed to sign access token: %w", err)
	}

	s.LogInfo(ctx, "User logged in", "user_id", user.UserID)
	return &dto.LoginResponse{
		AccessToken: token,
		ExpiresAt:   time.Now().Add(s.cfg.JWTExpiryDuration),
		User:        dto.ToUserResponse(user),
	}, nil
}
