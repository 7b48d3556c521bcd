package repositories

import (
	"context"
	"time"

	"github.com/Grupo02-6P/grupo02-sub001/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ReportingRepository is the ledger data source the report calculators
// depend on. All queries aggregate over posted journal lines; heavy lifting
// (filtering, joins, grouping) happens in the database.
type ReportingRepository interface {
	// GetTrialBalanceData returns one row per posting-enabled account with
	// debit/credit totals accumulated from lines dated on or before endDate.
	GetTrialBalanceData(ctx context.Context, endDate time.Time) ([]domain.TrialBalanceData, error)

	// GetAccountBalanceBefore returns sum(debits) - sum(credits) for the
	// account over all lines dated strictly before startDate.
	GetAccountBalanceBefore(ctx context.Context, accountID string, startDate time.Time) (decimal.Decimal, error)

	// GetDetailedAccountLines returns the account's journal lines within the
	// period, joined with account and originating title data, ordered by
	// entry date ascending.
	GetDetailedAccountLines(ctx context.Context, accountID string, period domain.Period) ([]domain.AccountMovement, error)

	// GetAllAccountsByRoot returns every account whose code starts with any
	// of the given root code prefixes, at any depth.
	GetAllAccountsByRoot(ctx context.Context, roots []string) ([]domain.Account, error)
}
