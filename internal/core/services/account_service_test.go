package services_test

import (
	"context"
	"testing"

	"github.com/Grupo02-6P/grupo02-sub001/internal/apperrors"
	"github.com/Grupo02-6P/grupo02-sub001/internal/core/domain"
	portssvc "github.com/Grupo02-6P/grupo02-sub001/internal/core/ports/services"
	"github.com/Grupo02-6P/grupo02-sub001/internal/core/services"
	"github.com/Grupo02-6P/grupo02-sub001/internal/dto"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type AccountServiceTestSuite struct {
	suite.Suite
	mockRepo       *MockAccountRepository
	mockAuthorizer *MockRoleAuthorizer
	service        portssvc.AccountSvcFacade
	userID         string
	rootAccount    domain.Account
}

func (suite *AccountServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockAccountRepository)
	suite.mockAuthorizer = new(MockRoleAuthorizer)
	suite.service = services.NewAccountService(suite.mockRepo,
		services.WithAccountRoleAuthorizer(suite.mockAuthorizer))

	suite.userID = uuid.NewString()
	suite.rootAccount = domain.Account{
		AccountID:      uuid.NewString(),
		Code:           "1",
		Name:           "Ativo",
		AcceptsPosting: false,
		IsActive:       true,
	}
}

func (suite *AccountServiceTestSuite) expectOperator() {
	suite.mockAuthorizer.On("AuthorizeRole", mock.Anything, suite.userID, domain.RoleOperator).Return(nil).Once()
}

func (suite *AccountServiceTestSuite) TestCreateAccount_Root() {
	ctx := context.Background()
	req := dto.CreateAccountRequest{Code: "1", Name: "Ativo", AcceptsPosting: false}

	suite.expectOperator()
	suite.mockRepo.On("FindAccountByCode", ctx, "1").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRepo.On("SaveAccount", ctx, mock.AnythingOfType("domain.Account")).Return(nil).Once()

	account, err := suite.service.CreateAccount(ctx, req, suite.userID)

	suite.Require().NoError(err)
	suite.Equal("1", account.Code)
	suite.Empty(account.ParentAccountID)
	suite.True(account.IsActive)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestCreateAccount_Child() {
	ctx := context.Background()
	req := dto.CreateAccountRequest{
		Code:            "1.1",
		Name:            "Ativo Circulante",
		ParentAccountID: &suite.rootAccount.AccountID,
		AcceptsPosting:  true,
	}

	suite.expectOperator()
	suite.mockRepo.On("FindAccountByID", ctx, suite.rootAccount.AccountID).Return(&suite.rootAccount, nil).Once()
	suite.mockRepo.On("FindAccountByCode", ctx, "1.1").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRepo.On("SaveAccount", ctx, mock.AnythingOfType("domain.Account")).Return(nil).Once()

	account, err := suite.service.CreateAccount(ctx, req, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(suite.rootAccount.AccountID, account.ParentAccountID)
	suite.True(account.AcceptsPosting)
}

func (suite *AccountServiceTestSuite) TestCreateAccount_InvalidRoot() {
	ctx := context.Background()

	suite.expectOperator()

	_, err := suite.service.CreateAccount(ctx, dto.CreateAccountRequest{Code: "9.1", Name: "Inválida"}, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveAccount", mock.Anything, mock.Anything)
}

func (suite *AccountServiceTestSuite) TestCreateAccount_MalformedCode() {
	ctx := context.Background()

	suite.expectOperator()

	_, err := suite.service.CreateAccount(ctx, dto.CreateAccountRequest{Code: "1..1", Name: "Quebrada"}, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *AccountServiceTestSuite) TestCreateAccount_RootWithParent() {
	ctx := context.Background()
	parentID := uuid.NewString()

	suite.expectOperator()

	_, err := suite.service.CreateAccount(ctx, dto.CreateAccountRequest{Code: "2", Name: "Passivo", ParentAccountID: &parentID}, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *AccountServiceTestSuite) TestCreateAccount_NonRootWithoutParent() {
	ctx := context.Background()

	suite.expectOperator()

	_, err := suite.service.CreateAccount(ctx, dto.CreateAccountRequest{Code: "1.1", Name: "Sem Pai"}, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *AccountServiceTestSuite) TestCreateAccount_ParentCodeMismatch() {
	ctx := context.Background()
	wrongParent := domain.Account{AccountID: uuid.NewString(), Code: "2", AcceptsPosting: false, IsActive: true}
	req := dto.CreateAccountRequest{Code: "1.1", Name: "Errada", ParentAccountID: &wrongParent.AccountID}

	suite.expectOperator()
	suite.mockRepo.On("FindAccountByID", ctx, wrongParent.AccountID).Return(&wrongParent, nil).Once()

	_, err := suite.service.CreateAccount(ctx, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *AccountServiceTestSuite) TestCreateAccount_PostingParentRejected() {
	ctx := context.Background()
	postingParent := domain.Account{AccountID: uuid.NewString(), Code: "1.1", AcceptsPosting: true, IsActive: true}
	req := dto.CreateAccountRequest{Code: "1.1.1", Name: "Caixa", ParentAccountID: &postingParent.AccountID}

	suite.expectOperator()
	suite.mockRepo.On("FindAccountByID", ctx, postingParent.AccountID).Return(&postingParent, nil).Once()

	_, err := suite.service.CreateAccount(ctx, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *AccountServiceTestSuite) TestCreateAccount_DuplicateCode() {
	ctx := context.Background()
	req := dto.CreateAccountRequest{Code: "1", Name: "Ativo"}

	suite.expectOperator()
	suite.mockRepo.On("FindAccountByCode", ctx, "1").Return(&suite.rootAccount, nil).Once()

	_, err := suite.service.CreateAccount(ctx, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveAccount", mock.Anything, mock.Anything)
}

func (suite *AccountServiceTestSuite) TestUpdateAccount_PartialFields() {
	ctx := context.Background()
	existing := suite.rootAccount
	newName := "Ativo Total"

	suite.expectOperator()
	suite.mockRepo.On("FindAccountByID", ctx, existing.AccountID).Return(&existing, nil).Once()

	var updated domain.Account
	suite.mockRepo.On("UpdateAccount", ctx, mock.AnythingOfType("domain.Account")).
		Run(func(args mock.Arguments) {
			updated = args.Get(1).(domain.Account)
		}).Return(nil).Once()

	account, err := suite.service.UpdateAccount(ctx, existing.AccountID, dto.UpdateAccountRequest{Name: &newName}, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(newName, account.Name)
	suite.Equal(newName, updated.Name)
	// Untouched fields keep their values.
	suite.True(updated.IsActive)
}

func (suite *AccountServiceTestSuite) TestDeactivateAccount() {
	ctx := context.Background()
	existing := suite.rootAccount

	suite.expectOperator()
	suite.mockRepo.On("FindAccountByID", ctx, existing.AccountID).Return(&existing, nil).Once()

	var updated domain.Account
	suite.mockRepo.On("UpdateAccount", ctx, mock.AnythingOfType("domain.Account")).
		Run(func(args mock.Arguments) {
			updated = args.Get(1).(domain.Account)
		}).Return(nil).Once()

	err := suite.service.DeactivateAccount(ctx, existing.AccountID, suite.userID)

	suite.Require().NoError(err)
	suite.False(updated.IsActive)
}

func (suite *AccountServiceTestSuite) TestGetAccountByID_ViewerGate() {
	ctx := context.Background()

	suite.mockAuthorizer.On("AuthorizeRole", mock.Anything, suite.userID, domain.RoleViewer).Return(apperrors.ErrForbidden).Once()

	_, err := suite.service.GetAccountByID(ctx, suite.rootAccount.AccountID, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockRepo.AssertNotCalled(suite.T(), "FindAccountByID", mock.Anything, mock.Anything)
}

func TestAccountServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AccountServiceTestSuite))
}
