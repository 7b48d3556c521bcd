package repositories

import (
	"context"

	"github.com/Grupo02-6P/grupo02-sub001/internal/core/domain"
)

// AccountRepository defines persistence operations for the chart of accounts.
type AccountRepository interface {
	SaveAccount(ctx context.Context, account domain.Account) error

	// FindAccountByID returns apperrors.ErrNotFound when absent.
	FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error)

	// FindAccountByCode returns apperrors.ErrNotFound when absent.
	FindAccountByCode(ctx context.Context, code string) (*domain.Account, error)

	// FindAccountsByIDs returns the subset of accounts that exist, keyed by id.
	FindAccountsByIDs(ctx context.Context, accountIDs []string) (map[string]domain.Account, error)

	// ListAccounts returns active and inactive accounts ordered by code.
	ListAccounts(ctx context.Context, limit, offset int) ([]domain.Account, error)

	UpdateAccount(ctx context.Context, account domain.Account) error
}
