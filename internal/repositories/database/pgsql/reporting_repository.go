package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/Grupo02-6P/grupo02-sub001/internal/core/domain"
	portsrepo "github.com/Grupo02-6P/grupo02-sub001/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// reportingRepository implements the read-only aggregations the report
// calculators depend on. Filtering, joins and grouping happen in SQL.
type reportingRepository struct {
	BaseRepository
}

func newReportingRepository(db *pgxpool.Pool) portsrepo.ReportingRepository {
	return &reportingRepository{
		BaseRepository: BaseRepository{Pool: db},
	}
}

var _ portsrepo.ReportingRepository = (*reportingRepository)(nil)

// GetTrialBalanceData retrieves one row per posting account with movement,
// aggregating lines dated on or before endDate.
func (r *reportingRepository) GetTrialBalanceData(ctx context.Context, endDate time.Time) ([]domain.TrialBalanceData, error) {
	query := `
		SELECT
			a.account_id,
			a.code AS account_code,
			a.name AS account_name,
			SUM(CASE WHEN l.line_type = 'DEBIT' THEN l.amount ELSE 0 END) AS total_debit,
			SUM(CASE WHEN l.line_type = 'CREDIT' THEN l.amount ELSE 0 END) AS total_credit
		FROM journal_lines l
		JOIN accounts a ON l.account_id = a.account_id
		JOIN journal_entries e ON l.entry_id = e.entry_id
		WHERE e.entry_date <= $1
		GROUP BY a.account_id, a.code, a.name
		ORDER BY a.code
	`

	rows, err := r.Pool.Query(ctx, query, endDate)
	if err != nil {
		return nil, fmt.Errorf("error querying trial balance data: %w", err)
	}
	defer rows.Close()

	result := []domain.TrialBalanceData{}
	for rows.Next() {
		var row domain.TrialBalanceData
		if err := rows.Scan(
			&row.AccountID,
			&row.AccountCode,
			&row.AccountName,
			&row.TotalDebit,
			&row.TotalCredit,
		); err != nil {
			return nil, fmt.Errorf("error scanning trial balance row: %w", err)
		}
		row.Balance = row.TotalDebit.Sub(row.TotalCredit)
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating trial balance rows: %w", err)
	}

	return result, nil
}

// GetAccountBalanceBefore returns sum(debits) - sum(credits) for the account
// over all lines dated strictly before startDate.
func (r *reportingRepository) GetAccountBalanceBefore(ctx context.Context, accountID string, startDate time.Time) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(CASE WHEN l.line_type = 'DEBIT' THEN l.amount ELSE -l.amount END), 0) AS balance
		FROM journal_lines l
		JOIN journal_entries e ON l.entry_id = e.entry_id
		WHERE l.account_id = $1
			AND e.entry_date < $2
	`

	var balance decimal.Decimal
	if err := r.Pool.QueryRow(ctx, query, accountID, startDate).Scan(&balance); err != nil {
		return decimal.Zero, fmt.Errorf("error querying opening balance for account %s: %w", accountID, err)
	}
	return balance, nil
}

// GetDetailedAccountLines returns the account's journal lines within the
// period, joined with the entry and any originating title, ordered by entry
// date ascending (creation time breaks date ties).
func (r *reportingRepository) GetDetailedAccountLines(ctx context.Context, accountID string, period domain.Period) ([]domain.AccountMovement, error) {
	query := `
		SELECT
			l.line_id,
			l.entry_id,
			e.entry_date,
			a.account_id,
			a.code AS account_code,
			a.name AS account_name,
			e.description AS entry_description,
			COALESCE(t.description, '') AS title_description,
			l.line_type,
			l.amount
		FROM journal_lines l
		JOIN accounts a ON l.account_id = a.account_id
		JOIN journal_entries e ON l.entry_id = e.entry_id
		LEFT JOIN titles t ON e.title_id = t.title_id
		WHERE l.account_id = $1
			AND e.entry_date BETWEEN $2 AND $3
		ORDER BY e.entry_date, e.created_at, l.line_id
	`

	rows, err := r.Pool.Query(ctx, query, accountID, period.StartDate, period.EndDate)
	if err != nil {
		return nil, fmt.Errorf("error querying account lines for %s: %w", accountID, err)
	}
	defer rows.Close()

	movements := []domain.AccountMovement{}
	for rows.Next() {
		var m domain.AccountMovement
		if err := rows.Scan(
			&m.LineID,
			&m.EntryID,
			&m.EntryDate,
			&m.AccountID,
			&m.AccountCode,
			&m.AccountName,
			&m.EntryDescription,
			&m.TitleDescription,
			&m.LineType,
			&m.Amount,
		); err != nil {
			return nil, fmt.Errorf("error scanning account movement row: %w", err)
		}
		movements = append(movements, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating account movement rows: %w", err)
	}

	return movements, nil
}

// GetAllAccountsByRoot returns every account whose code equals one of the
// given roots or descends from it, ordered by code.
func (r *reportingRepository) GetAllAccountsByRoot(ctx context.Context, roots []string) ([]domain.Account, error) {
	query := `
		SELECT ` + accountColumns + `
		FROM accounts a
		WHERE EXISTS (
			SELECT 1 FROM unnest($1::text[]) AS root
			WHERE a.code = root OR a.code LIKE root || '.%'
		)
		ORDER BY a.code
	`

	rows, err := r.Pool.Query(ctx, query, roots)
	if err != nil {
		return nil, fmt.Errorf("error querying accounts by root: %w", err)
	}
	defer rows.Close()

	accounts := []domain.Account{}
	for rows.Next() {
		acc, err := scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning account row by root: %w", err)
		}
		accounts = append(accounts, acc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating account rows by root: %w", err)
	}

	return accounts, nil
}
