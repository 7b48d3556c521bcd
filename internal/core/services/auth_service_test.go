package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/Grupo02-6P/grupo02-sub001/internal/apperrors"
	"github.com/Grupo02-6P/grupo02-sub001/internal/core/domain"
	portssvc "github.com/Grupo02-6P/grupo02-sub001/internal/core/ports/services"
	"github.com/Grupo02-6P/grupo02-sub001/internal/core/services"
	"github.com/Grupo02-6P/grupo02-sub001/internal/platform/config"
	"github.com/Grupo02-6P/grupo02-sub001/internal/utils"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

const testPassword = "s3nha-f0rte"

type AuthServiceTestSuite struct {
	suite.Suite
	mockRepo *MockUserRepository
	service  portssvc.AuthSvcFacade
	cfg      *config.Config
	user     domain.User
}

func (suite *AuthServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockUserRepository)
	suite.cfg = &config.Config{
		JWTSecret:         "test-secret",
		JWTExpiryDuration: time.Hour,
		JWTIssuer:         "contabil-api",
	}
	suite.service = services.NewAuthService(suite.mockRepo, suite.cfg)

	hash, err := utils.HashPassword(testPassword)
	suite.Require().NoError(err)
	suite.user = domain.User{
		UserID:       uuid.NewString(),
		Name:         "Operador",
		Username:     "operador",
		PasswordHash: hash,
		Role:         domain.RoleOperator,
		IsActive:     true,
	}
}

func (suite *AuthServiceTestSuite) TestLogin_Success() {
	ctx := context.Background()

	suite.mockRepo.On("FindUserByUsername", ctx, suite.user.Username).Return(&suite.user, nil).Once()

	resp, err := suite.service.Login(ctx, suite.user.Username, testPassword)

	suite.Require().NoError(err)
	suite.NotEmpty(resp.AccessToken)
	suite.Equal(suite.user.UserID, resp.User.UserID)
	suite.True(resp.ExpiresAt.After(time.Now()))

	claims, err := utils.ParseAndValidateJWT(resp.AccessToken, suite.cfg.JWTSecret)
	suite.Require().NoError(err)
	suite.Equal(suite.user.UserID, claims.Subject)
	suite.Equal(suite.cfg.JWTIssuer, claims.Issuer)
}

func (suite *AuthServiceTestSuite) TestLogin_WrongPassword() {
	ctx := context.Background()

	suite.mockRepo.On("FindUserByUsername", ctx, suite.user.Username).Return(&suite.user, nil).Once()

	_, err := suite.service.Login(ctx, suite.user.Username, "senha-errada")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

func (suite *AuthServiceTestSuite) TestLogin_UnknownUser() {
	ctx := context.Background()

	suite.mockRepo.On("FindUserByUsername", ctx, "fantasma").Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.Login(ctx, "fantasma", testPassword)

	// The caller cannot distinguish an unknown user from a bad password.
	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

func (suite *AuthServiceTestSuite) TestLogin_InactiveUser() {
	ctx := context.Background()
	inactive := suite.user
	inactive.IsActive = false

	suite.mockRepo.On("FindUserByUsername", ctx, inactive.Username).Return(&inactive, nil).Once()

	_, err := suite.service.Login(ctx, inactive.Username, testPassword)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

func TestAuthServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AuthServiceTestSuite))
}
