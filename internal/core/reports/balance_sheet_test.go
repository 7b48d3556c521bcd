package reports_test

import (
	"context"
	"testing"

	"github.com/Grupo02-6P/grupo02-sub001/internal/core/domain"
	"github.com/Grupo02-6P/grupo02-sub001/internal/core/reports"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type BalanceSheetTestSuite struct {
	suite.Suite
	mockRepo *MockReportingRepository
	calc     *reports.BalanceSheetCalculator
}

func (suite *BalanceSheetTestSuite) SetupTest() {
	suite.mockRepo = new(MockReportingRepository)
	suite.calc = reports.NewBalanceSheetCalculator(suite.mockRepo)
}

func (suite *BalanceSheetTestSuite) TestCalculate_SectionsAndIdentity() {
	ctx := context.Background()
	period := testPeriod()

	// Balanced books: debits equal credits across the whole chart.
	balances := []domain.TrialBalanceData{
		{AccountID: "a11", AccountCode: "1.1", AccountName: "Caixa", Balance: decimal.NewFromInt(500)},
		{AccountID: "a21", AccountCode: "2.1", AccountName: "Fornecedores", Balance: decimal.NewFromInt(-200)},
		{AccountID: "a31", AccountCode: "3.1", AccountName: "Capital Social", Balance: decimal.NewFromInt(-120)},
		{AccountID: "a411", AccountCode: "4.1.1", AccountName: "Vendas", Balance: decimal.NewFromInt(-300)},
		{AccountID: "a51", AccountCode: "5.1", AccountName: "Despesas", Balance: decimal.NewFromInt(120)},
	}
	resultAccounts := []domain.Account{
		{AccountID: "a4", Code: "4", Name: "Receitas", AcceptsPosting: false},
		{AccountID: "a411", Code: "4.1.1", Name: "Vendas", ParentAccountID: "a4", AcceptsPosting: true},
		{AccountID: "a5", Code: "5", Name: "Despesas", AcceptsPosting: false},
		{AccountID: "a51", Code: "5.1", Name: "Despesas", ParentAccountID: "a5", AcceptsPosting: true},
	}

	suite.mockRepo.On("GetAllAccountsByRoot", mock.Anything, mock.Anything).Return(resultAccounts, nil).Once()
	// Called once by the embedded income statement and once for the sheet.
	suite.mockRepo.On("GetTrialBalanceData", mock.Anything, period.EndDate).Return(balances, nil).Twice()

	report, err := suite.calc.Calculate(ctx, period, reports.Options{})

	suite.Require().NoError(err)
	suite.Equal(domain.ReportBalanceSheet, report.Type)

	sheet := report.Data.(domain.BalanceSheetReport)

	suite.Require().Len(sheet.Ativo, 1)
	suite.True(sheet.Ativo[0].Balance.Equal(decimal.NewFromInt(500)))

	// Credit-natured sections are presented positive.
	suite.Require().Len(sheet.Passivo, 1)
	suite.True(sheet.Passivo[0].Balance.Equal(decimal.NewFromInt(200)))

	// Equity carries its own accounts plus the injected period result.
	suite.Require().Len(sheet.PatrimonioLiquido, 2)
	injected := sheet.PatrimonioLiquido[1]
	suite.Equal(reports.ResultadoPeriodoCode, injected.AccountCode)
	suite.Equal(reports.ResultadoPeriodoName, injected.AccountName)
	suite.True(injected.Balance.Equal(decimal.NewFromInt(180)))

	suite.True(sheet.LucroPrejuizo.Equal(decimal.NewFromInt(180)))
	suite.True(sheet.TotalAtivo.Equal(decimal.NewFromInt(500)))
	suite.True(sheet.TotalPassivo.Equal(decimal.NewFromInt(200)))
	suite.True(sheet.TotalPatrimonioLiquido.Equal(decimal.NewFromInt(300)))

	// Accounting identity: Ativo = Passivo + Patrimônio Líquido.
	suite.True(sheet.TotalAtivo.Equal(sheet.TotalPassivo.Add(sheet.TotalPatrimonioLiquido)))

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *BalanceSheetTestSuite) TestCalculate_EmptyLedger() {
	ctx := context.Background()
	period := testPeriod()

	suite.mockRepo.On("GetAllAccountsByRoot", mock.Anything, mock.Anything).Return([]domain.Account{}, nil).Once()
	suite.mockRepo.On("GetTrialBalanceData", mock.Anything, period.EndDate).Return([]domain.TrialBalanceData{}, nil).Twice()

	report, err := suite.calc.Calculate(ctx, period, reports.Options{})

	suite.Require().NoError(err)
	sheet := report.Data.(domain.BalanceSheetReport)

	suite.Empty(sheet.Ativo)
	suite.Empty(sheet.Passivo)
	// Even an empty ledger shows the (zero) period result in equity.
	suite.Require().Len(sheet.PatrimonioLiquido, 1)
	suite.Equal(reports.ResultadoPeriodoCode, sheet.PatrimonioLiquido[0].AccountCode)
	suite.True(sheet.TotalPatrimonioLiquido.IsZero())
}

func TestBalanceSheetTestSuite(t *testing.T) {
	suite.Run(t, new(BalanceSheetTestSuite))
}
