package reports

import (
	"context"
	"fmt"

	"github.com/Grupo02-6P/grupo02-sub001/internal/apperrors"
	"github.com/Grupo02-6P/grupo02-sub001/internal/core/domain"
	portsrepo "github.com/Grupo02-6P/grupo02-sub001/internal/core/ports/repositories"
)

// LedgerCalculator produces the account ledger: the opening balance before
// the period plus every movement within it, with a running balance column.
type LedgerCalculator struct {
	repo portsrepo.ReportingRepository
}

// NewLedgerCalculator creates an account ledger calculator.
func NewLedgerCalculator(repo portsrepo.ReportingRepository) *LedgerCalculator {
	return &LedgerCalculator{repo: repo}
}

var _ Calculator = (*LedgerCalculator)(nil)

func (c *LedgerCalculator) Calculate(ctx context.Context, period domain.Period, opts Options) (*domain.Report, error) {
	if opts.AccountID == nil || *opts.AccountID == "" {
		return nil, fmt.Errorf("%w: account ledger requires an account id", apperrors.ErrValidation)
	}
	accountID := *opts.AccountID

	opening, err := c.repo.GetAccountBalanceBefore(ctx, accountID, period.StartDate)
	if err != nil {
		return nil, err
	}
	movements, err := c.repo.GetDetailedAccountLines(ctx, accountID, period)
	if err != nil {
		return nil, err
	}

	ledger := domain.LedgerReport{
		AccountID:      accountID,
		InitialBalance: opening,
		FinalBalance:   opening,
		Rows:           make([]domain.LedgerRow, 0, len(movements)),
	}
	if len(movements) > 0 {
		ledger.AccountCode = movements[0].AccountCode
		ledger.AccountName = movements[0].AccountName
	}

	running := opening
	for _, mov := range movements {
		row := domain.LedgerRow{
			Date:        mov.EntryDate,
			Description: movementDescription(mov),
		}
		if mov.LineType == domain.Debit {
			row.Debit = mov.Amount
			running = running.Add(mov.Amount)
		} else {
			row.Credit = mov.Amount
			running = running.Sub(mov.Amount)
		}
		row.RunningBalance = running
		ledger.Rows = append(ledger.Rows, row)
	}
	ledger.FinalBalance = running

	return &domain.Report{
		Type:   domain.ReportLedger,
		Title:  TitleLedger,
		Period: period,
		Data:   ledger,
	}, nil
}

// movementDescription prefers the originating title's description over the
// journal entry's own text.
func movementDescription(mov domain.AccountMovement) string {
	if mov.TitleDescription != "" {
		return mov.TitleDescription
	}
	return mov.EntryDescription
}
