package reports

import (
	"context"
	"fmt"

	"github.com/Grupo02-6P/grupo02-sub001/internal/core/domain"
	portsrepo "github.com/Grupo02-6P/grupo02-sub001/internal/core/ports/repositories"
	"github.com/shopspring/decimal"
)

// TotalsRowName labels the synthetic totals row closing the trial balance.
const TotalsRowName = "TOTAIS"

// TrialBalanceCalculator produces the flat balance list per posting account
// as of the period end date, closed by a totals row.
type TrialBalanceCalculator struct {
	repo portsrepo.ReportingRepository
}

// NewTrialBalanceCalculator creates a trial balance calculator.
func NewTrialBalanceCalculator(repo portsrepo.ReportingRepository) *TrialBalanceCalculator {
	return &TrialBalanceCalculator{repo: repo}
}

var _ Calculator = (*TrialBalanceCalculator)(nil)

// Calculate builds one line per account plus the TOTAIS row. An empty ledger
// yields a totals-only row of zeros.
func (c *TrialBalanceCalculator) Calculate(ctx context.Context, period domain.Period, _ Options) (*domain.Report, error) {
	data, err := c.repo.GetTrialBalanceData(ctx, period.EndDate)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve trial balance data: %w", err)
	}

	lines := make([]domain.TrialBalanceLine, 0, len(data)+1)
	totalDebit := decimal.Zero
	totalCredit := decimal.Zero
	totalDevedor := decimal.Zero
	totalCredor := decimal.Zero

	for _, row := range data {
		balance := row.TotalDebit.Sub(row.TotalCredit)
		line := domain.TrialBalanceLine{
			AccountID:    row.AccountID,
			AccountCode:  row.AccountCode,
			AccountName:  row.AccountName,
			TotalDebit:   row.TotalDebit,
			TotalCredit:  row.TotalCredit,
			SaldoDevedor: decimal.Zero,
			SaldoCredor:  decimal.Zero,
		}
		// A line is either net-debit or net-credit, never both.
		if balance.IsNegative() {
			line.SaldoCredor = balance.Neg()
		} else {
			line.SaldoDevedor = balance
		}
		lines = append(lines, line)

		totalDebit = totalDebit.Add(row.TotalDebit)
		totalCredit = totalCredit.Add(row.TotalCredit)
		totalDevedor = totalDevedor.Add(line.SaldoDevedor)
		totalCredor = totalCredor.Add(line.SaldoCredor)
	}

	// The totals row sums both balance columns independently across lines,
	// so unlike account rows it may carry both a devedor and a credor total.
	lines = append(lines, domain.TrialBalanceLine{
		AccountName:  TotalsRowName,
		TotalDebit:   totalDebit,
		TotalCredit:  totalCredit,
		SaldoDevedor: totalDevedor,
		SaldoCredor:  totalCredor,
	})

	return &domain.Report{
		Type:   domain.ReportTrialBalance,
		Title:  TitleTrialBalance,
		Period: period,
		Data:   domain.TrialBalanceReport{Lines: lines},
	}, nil
}
