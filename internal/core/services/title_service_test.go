package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/Grupo02-6P/grupo02-sub001/internal/apperrors"
	"github.com/Grupo02-6P/grupo02-sub001/internal/core/domain"
	portssvc "github.com/Grupo02-6P/grupo02-sub001/internal/core/ports/services"
	"github.com/Grupo02-6P/grupo02-sub001/internal/core/services"
	"github.com/Grupo02-6P/grupo02-sub001/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

const testCashAccountCode = "1.1.1"

type TitleServiceTestSuite struct {
	suite.Suite
	mockTitleRepo   *MockTitleRepository
	mockAccountRepo *MockAccountRepository
	mockJournalRepo *MockJournalRepository
	mockAuthorizer  *MockRoleAuthorizer
	service         portssvc.TitleSvcFacade
	userID          string
	cashAccount     domain.Account
	titleAccount    domain.Account
}

func (suite *TitleServiceTestSuite) SetupTest() {
	suite.mockTitleRepo = new(MockTitleRepository)
	suite.mockAccountRepo = new(MockAccountRepository)
	suite.mockJournalRepo = new(MockJournalRepository)
	suite.mockAuthorizer = new(MockRoleAuthorizer)

	journal := services.NewJournalService(suite.mockJournalRepo, suite.mockAccountRepo)
	suite.service = services.NewTitleService(suite.mockTitleRepo, suite.mockAccountRepo, journal, testCashAccountCode,
		services.WithTitleRoleAuthorizer(suite.mockAuthorizer))

	suite.userID = uuid.NewString()
	suite.cashAccount = domain.Account{
		AccountID:      uuid.NewString(),
		Code:           testCashAccountCode,
		Name:           "Caixa",
		AcceptsPosting: true,
		IsActive:       true,
	}
	suite.titleAccount = domain.Account{
		AccountID:      uuid.NewString(),
		Code:           "1.2.1",
		Name:           "Clientes",
		AcceptsPosting: true,
		IsActive:       true,
	}
}

func (suite *TitleServiceTestSuite) openTitle(titleType domain.TitleType) *domain.Title {
	return &domain.Title{
		TitleID:      uuid.NewString(),
		Description:  "Fatura 1234",
		Counterparty: "Cliente ABC",
		TitleType:    titleType,
		AccountID:    suite.titleAccount.AccountID,
		DueDate:      testDueDate,
		Amount:       decimal.NewFromInt(250),
		Status:       domain.TitleOpen,
	}
}

func (suite *TitleServiceTestSuite) settlementAccounts() map[string]domain.Account {
	return map[string]domain.Account{
		suite.cashAccount.AccountID:  suite.cashAccount,
		suite.titleAccount.AccountID: suite.titleAccount,
	}
}

func (suite *TitleServiceTestSuite) TestCreateTitle_Success() {
	ctx := context.Background()
	req := dto.CreateTitleRequest{
		Description:  "Fatura 1234",
		Counterparty: "Cliente ABC",
		TitleType:    domain.Receivable,
		AccountID:    suite.titleAccount.AccountID,
		DueDate:      testDueDate,
		Amount:       decimal.NewFromInt(250),
	}

	suite.mockAuthorizer.On("AuthorizeRole", ctx, suite.userID, domain.RoleOperator).Return(nil).Once()
	suite.mockAccountRepo.On("FindAccountByID", ctx, suite.titleAccount.AccountID).Return(&suite.titleAccount, nil).Once()
	suite.mockTitleRepo.On("SaveTitle", ctx, mock.AnythingOfType("domain.Title")).Return(nil).Once()

	title, err := suite.service.CreateTitle(ctx, req, suite.userID)

	suite.Require().NoError(err)
	suite.NotEmpty(title.TitleID)
	suite.Equal(domain.TitleOpen, title.Status)
	suite.Nil(title.SettledAt)
	suite.Nil(title.EntryID)
	suite.mockTitleRepo.AssertExpectations(suite.T())
}

func (suite *TitleServiceTestSuite) TestCreateTitle_NonPositiveAmount() {
	ctx := context.Background()
	req := dto.CreateTitleRequest{
		TitleType: domain.Receivable,
		AccountID: suite.titleAccount.AccountID,
		Amount:    decimal.Zero,
	}

	suite.mockAuthorizer.On("AuthorizeRole", ctx, suite.userID, domain.RoleOperator).Return(nil).Once()

	_, err := suite.service.CreateTitle(ctx, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockTitleRepo.AssertNotCalled(suite.T(), "SaveTitle", mock.Anything, mock.Anything)
}

func (suite *TitleServiceTestSuite) TestCreateTitle_SyntheticAccount() {
	ctx := context.Background()
	synthetic := suite.titleAccount
	synthetic.AcceptsPosting = false

	req := dto.CreateTitleRequest{
		TitleType: domain.Payable,
		AccountID: synthetic.AccountID,
		Amount:    decimal.NewFromInt(10),
	}

	suite.mockAuthorizer.On("AuthorizeRole", ctx, suite.userID, domain.RoleOperator).Return(nil).Once()
	suite.mockAccountRepo.On("FindAccountByID", ctx, synthetic.AccountID).Return(&synthetic, nil).Once()

	_, err := suite.service.CreateTitle(ctx, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *TitleServiceTestSuite) TestSettleTitle_Receivable() {
	ctx := context.Background()
	title := suite.openTitle(domain.Receivable)
	settlementDate := time.Date(2025, 7, 10, 0, 0, 0, 0, time.UTC)

	suite.mockAuthorizer.On("AuthorizeRole", ctx, suite.userID, domain.RoleOperator).Return(nil).Once()
	suite.mockTitleRepo.On("FindTitleByID", ctx, title.TitleID).Return(title, nil).Once()
	suite.mockAccountRepo.On("FindAccountByCode", ctx, testCashAccountCode).Return(&suite.cashAccount, nil).Once()
	suite.mockAccountRepo.On("FindAccountsByIDs", ctx, mock.Anything).Return(suite.settlementAccounts(), nil).Once()

	var savedTitle domain.Title
	var savedEntry domain.JournalEntry
	var savedLines []domain.JournalLine
	suite.mockTitleRepo.On("SettleWithEntry", ctx, mock.AnythingOfType("domain.Title"), mock.AnythingOfType("domain.JournalEntry"), mock.AnythingOfType("[]domain.JournalLine")).
		Run(func(args mock.Arguments) {
			savedTitle = args.Get(1).(domain.Title)
			savedEntry = args.Get(2).(domain.JournalEntry)
			savedLines = args.Get(3).([]domain.JournalLine)
		}).Return(nil).Once()

	settled, err := suite.service.SettleTitle(ctx, title.TitleID, settlementDate, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(domain.TitleSettled, savedTitle.Status)
	suite.Equal(domain.TitleSettled, settled.Status)
	suite.Require().NotNil(settled.SettledAt)
	suite.True(settled.SettledAt.Equal(settlementDate))
	suite.Require().NotNil(settled.EntryID)
	suite.Equal(savedEntry.EntryID, *settled.EntryID)

	suite.Equal(domain.OriginTitle, savedEntry.Origin)
	suite.Require().NotNil(savedEntry.TitleID)
	suite.Equal(title.TitleID, *savedEntry.TitleID)
	suite.Equal("Baixa de título: Fatura 1234", savedEntry.Description)

	// Receivable settlement: debit cash, credit the title account.
	suite.Require().Len(savedLines, 2)
	suite.Equal(suite.cashAccount.AccountID, savedLines[0].AccountID)
	suite.Equal(domain.Debit, savedLines[0].LineType)
	suite.Equal(suite.titleAccount.AccountID, savedLines[1].AccountID)
	suite.Equal(domain.Credit, savedLines[1].LineType)
	suite.True(savedLines[0].Amount.Equal(title.Amount))

	// The entry travels with the status change; it is never committed on
	// its own.
	suite.mockJournalRepo.AssertNotCalled(suite.T(), "SaveEntry", mock.Anything, mock.Anything, mock.Anything)
	suite.mockTitleRepo.AssertExpectations(suite.T())
}

func (suite *TitleServiceTestSuite) TestSettleTitle_PayableInvertsLines() {
	ctx := context.Background()
	title := suite.openTitle(domain.Payable)
	settlementDate := time.Date(2025, 7, 10, 0, 0, 0, 0, time.UTC)

	suite.mockAuthorizer.On("AuthorizeRole", ctx, suite.userID, domain.RoleOperator).Return(nil).Once()
	suite.mockTitleRepo.On("FindTitleByID", ctx, title.TitleID).Return(title, nil).Once()
	suite.mockAccountRepo.On("FindAccountByCode", ctx, testCashAccountCode).Return(&suite.cashAccount, nil).Once()
	suite.mockAccountRepo.On("FindAccountsByIDs", ctx, mock.Anything).Return(suite.settlementAccounts(), nil).Once()

	var savedLines []domain.JournalLine
	suite.mockTitleRepo.On("SettleWithEntry", ctx, mock.Anything, mock.Anything, mock.AnythingOfType("[]domain.JournalLine")).
		Run(func(args mock.Arguments) {
			savedLines = args.Get(3).([]domain.JournalLine)
		}).Return(nil).Once()

	_, err := suite.service.SettleTitle(ctx, title.TitleID, settlementDate, suite.userID)

	suite.Require().NoError(err)
	// Payable settlement: credit cash, debit the title account.
	suite.Require().Len(savedLines, 2)
	suite.Equal(suite.cashAccount.AccountID, savedLines[0].AccountID)
	suite.Equal(domain.Credit, savedLines[0].LineType)
	suite.Equal(suite.titleAccount.AccountID, savedLines[1].AccountID)
	suite.Equal(domain.Debit, savedLines[1].LineType)
}

func (suite *TitleServiceTestSuite) TestSettleTitle_AlreadySettled() {
	ctx := context.Background()
	title := suite.openTitle(domain.Receivable)
	title.Status = domain.TitleSettled

	suite.mockAuthorizer.On("AuthorizeRole", ctx, suite.userID, domain.RoleOperator).Return(nil).Once()
	suite.mockTitleRepo.On("FindTitleByID", ctx, title.TitleID).Return(title, nil).Once()

	_, err := suite.service.SettleTitle(ctx, title.TitleID, testDueDate, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.mockTitleRepo.AssertNotCalled(suite.T(), "SettleWithEntry", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *TitleServiceTestSuite) TestSettleTitle_PersistFailureLeavesTitleOpen() {
	ctx := context.Background()
	title := suite.openTitle(domain.Receivable)

	suite.mockAuthorizer.On("AuthorizeRole", ctx, suite.userID, domain.RoleOperator).Return(nil).Once()
	suite.mockTitleRepo.On("FindTitleByID", ctx, title.TitleID).Return(title, nil).Once()
	suite.mockAccountRepo.On("FindAccountByCode", ctx, testCashAccountCode).Return(&suite.cashAccount, nil).Once()
	suite.mockAccountRepo.On("FindAccountsByIDs", ctx, mock.Anything).Return(suite.settlementAccounts(), nil).Once()
	suite.mockTitleRepo.On("SettleWithEntry", ctx, mock.Anything, mock.Anything, mock.Anything).
		Return(apperrors.NewAppError(500, "failed to commit transaction", assert.AnError)).Once()

	_, err := suite.service.SettleTitle(ctx, title.TitleID, testDueDate, suite.userID)

	suite.Require().Error(err)
	// No entry may reach the books outside the settlement transaction, so a
	// retry starts from a clean OPEN title.
	suite.mockJournalRepo.AssertNotCalled(suite.T(), "SaveEntry", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *TitleServiceTestSuite) TestSettleTitle_CashAccountMissing() {
	ctx := context.Background()
	title := suite.openTitle(domain.Receivable)

	suite.mockAuthorizer.On("AuthorizeRole", ctx, suite.userID, domain.RoleOperator).Return(nil).Once()
	suite.mockTitleRepo.On("FindTitleByID", ctx, title.TitleID).Return(title, nil).Once()
	suite.mockAccountRepo.On("FindAccountByCode", ctx, testCashAccountCode).Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.SettleTitle(ctx, title.TitleID, testDueDate, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *TitleServiceTestSuite) TestListTitles_ForwardsStatusFilter() {
	ctx := context.Background()
	status := domain.TitleOpen

	suite.mockAuthorizer.On("AuthorizeRole", ctx, suite.userID, domain.RoleViewer).Return(nil).Once()
	suite.mockTitleRepo.On("ListTitles", ctx, &status, 50, 0).Return([]domain.Title{*suite.openTitle(domain.Receivable)}, nil).Once()

	titles, err := suite.service.ListTitles(ctx, &status, 50, 0, suite.userID)

	suite.Require().NoError(err)
	suite.Len(titles, 1)
}

func TestTitleServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TitleServiceTestSuite))
}
