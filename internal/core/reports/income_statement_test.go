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

type DRETestSuite struct {
	suite.Suite
	mockRepo *MockReportingRepository
	calc     *reports.DRECalculator
}

func (suite *DRETestSuite) SetupTest() {
	suite.mockRepo = new(MockReportingRepository)
	suite.calc = reports.NewDRECalculator(suite.mockRepo)
}

// resultChart is a minimal revenue/expense chart: synthetic roots and
// groups, posting leaves underneath.
func resultChart() []domain.Account {
	return []domain.Account{
		{AccountID: "a4", Code: "4", Name: "Receitas", AcceptsPosting: false},
		{AccountID: "a41", Code: "4.1", Name: "Receita Operacional", ParentAccountID: "a4", AcceptsPosting: false},
		{AccountID: "a411", Code: "4.1.1", Name: "Vendas", ParentAccountID: "a41", AcceptsPosting: true},
		{AccountID: "a5", Code: "5", Name: "Despesas", AcceptsPosting: false},
		{AccountID: "a51", Code: "5.1", Name: "Despesas Administrativas", ParentAccountID: "a5", AcceptsPosting: true},
	}
}

func (suite *DRETestSuite) TestCalculate_RollupAndSigns() {
	ctx := context.Background()
	period := testPeriod()

	balances := []domain.TrialBalanceData{
		// Revenue is credit-natured: stored negative in the trial balance.
		{AccountID: "a411", AccountCode: "4.1.1", Balance: decimal.NewFromInt(-300)},
		{AccountID: "a51", AccountCode: "5.1", Balance: decimal.NewFromInt(120)},
		// An unrelated asset account must not leak into the result trees.
		{AccountID: "a1", AccountCode: "1.1", Balance: decimal.NewFromInt(999)},
	}

	suite.mockRepo.On("GetAllAccountsByRoot", mock.Anything, []string{domain.RootReceita, domain.RootDespesa}).Return(resultChart(), nil).Once()
	suite.mockRepo.On("GetTrialBalanceData", mock.Anything, period.EndDate).Return(balances, nil).Once()

	report, err := suite.calc.Calculate(ctx, period, reports.Options{})

	suite.Require().NoError(err)
	suite.Equal(domain.ReportDRE, report.Type)

	dre := report.Data.(domain.DREReport)

	// Revenue leaf is flipped to positive and rolled up through the groups.
	suite.True(dre.TotalReceitas.Equal(decimal.NewFromInt(300)))
	suite.True(dre.TotalDespesas.Equal(decimal.NewFromInt(120)))
	suite.True(dre.LucroPrejuizo.Equal(decimal.NewFromInt(180)))

	suite.Require().Len(dre.Receitas.Children, 1)
	grupo := dre.Receitas.Children[0]
	suite.Equal("4.1", grupo.Code)
	suite.True(grupo.Synthetic)
	suite.True(grupo.Balance.Equal(decimal.NewFromInt(300)))
	suite.Require().Len(grupo.Children, 1)
	suite.Equal("4.1.1", grupo.Children[0].Code)
	suite.False(grupo.Children[0].Synthetic)

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *DRETestSuite) TestCalculate_MissingRoots() {
	ctx := context.Background()
	period := testPeriod()

	suite.mockRepo.On("GetAllAccountsByRoot", mock.Anything, mock.Anything).Return([]domain.Account{}, nil).Once()
	suite.mockRepo.On("GetTrialBalanceData", mock.Anything, period.EndDate).Return([]domain.TrialBalanceData{}, nil).Once()

	report, err := suite.calc.Calculate(ctx, period, reports.Options{})

	suite.Require().NoError(err)
	dre := report.Data.(domain.DREReport)

	// Absent roots are replaced by empty synthetic placeholders.
	suite.Require().NotNil(dre.Receitas)
	suite.Require().NotNil(dre.Despesas)
	suite.Equal(domain.RootReceita, dre.Receitas.Code)
	suite.Equal(domain.RootDespesa, dre.Despesas.Code)
	suite.True(dre.LucroPrejuizo.IsZero())
}

func (suite *DRETestSuite) TestCalculate_OrphanDropped() {
	ctx := context.Background()
	period := testPeriod()

	accounts := append(resultChart(), domain.Account{
		// Parent not present in the fetched set and not a result root.
		AccountID: "a49", Code: "4.9.9", Name: "Solta", ParentAccountID: "missing", AcceptsPosting: true,
	})
	balances := []domain.TrialBalanceData{
		{AccountID: "a49", AccountCode: "4.9.9", Balance: decimal.NewFromInt(-50)},
	}

	suite.mockRepo.On("GetAllAccountsByRoot", mock.Anything, mock.Anything).Return(accounts, nil).Once()
	suite.mockRepo.On("GetTrialBalanceData", mock.Anything, period.EndDate).Return(balances, nil).Once()

	report, err := suite.calc.Calculate(ctx, period, reports.Options{})

	suite.Require().NoError(err)
	dre := report.Data.(domain.DREReport)

	// The orphan's balance must not be counted anywhere.
	suite.True(dre.TotalReceitas.IsZero())
	suite.True(dre.TotalDespesas.IsZero())
}

func (suite *DRETestSuite) TestCalculate_AccountFetchError() {
	ctx := context.Background()
	period := testPeriod()

	suite.mockRepo.On("GetAllAccountsByRoot", mock.Anything, mock.Anything).Return(nil, context.DeadlineExceeded).Once()
	suite.mockRepo.On("GetTrialBalanceData", mock.Anything, mock.Anything).Return([]domain.TrialBalanceData{}, nil).Maybe()

	report, err := suite.calc.Calculate(ctx, period, reports.Options{})

	suite.Require().Error(err)
	suite.Nil(report)
	suite.ErrorIs(err, context.DeadlineExceeded)
}

func TestDRETestSuite(t *testing.T) {
	suite.Run(t, new(DRETestSuite))
}
