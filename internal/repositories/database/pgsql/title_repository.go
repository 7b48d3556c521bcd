package pgsql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Grupo02-6P/grupo02-sub001/internal/apperrors"
	"github.com/Grupo02-6P/grupo02-sub001/internal/core/domain"
	portsrepo "github.com/Grupo02-6P/grupo02-sub001/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const titleColumns = `title_id, description, counterparty, title_type, account_id, due_date, amount, status, settled_at, entry_id, created_at, created_by, last_updated_at, last_updated_by`

type PgxTitleRepository struct {
	BaseRepository
}

// newPgxTitleRepository creates a new repository for receivable/payable titles.
func newPgxTitleRepository(pool *pgxpool.Pool) portsrepo.TitleRepository {
	return &PgxTitleRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.TitleRepository = (*PgxTitleRepository)(nil)

func scanTitle(row pgx.Row) (domain.Title, error) {
	var t domain.Title
	var settledAt sql.NullTime
	var entryID sql.NullString
	err := row.Scan(
		&t.TitleID,
		&t.Description,
		&t.Counterparty,
		&t.TitleType,
		&t.AccountID,
		&t.DueDate,
		&t.Amount,
		&t.Status,
		&settledAt,
		&entryID,
		&t.CreatedAt,
		&t.CreatedBy,
		&t.LastUpdatedAt,
		&t.LastUpdatedBy,
	)
	if err != nil {
		return domain.Title{}, err
	}
	if settledAt.Valid {
		t.SettledAt = &settledAt.Time
	}
	if entryID.Valid {
		t.EntryID = &entryID.String
	}
	return t, nil
}

// SaveTitle inserts a new title.
func (r *PgxTitleRepository) SaveTitle(ctx context.Context, title domain.Title) error {
	query := `
		INSERT INTO titles (` + titleColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14);
	`
	var settledAt sql.NullTime
	if title.SettledAt != nil {
		settledAt = sql.NullTime{Time: *title.SettledAt, Valid: true}
	}
	var entryID sql.NullString
	if title.EntryID != nil {
		entryID = sql.NullString{String: *title.EntryID, Valid: true}
	}

	_, err := r.Pool.Exec(ctx, query,
		title.TitleID,
		title.Description,
		title.Counterparty,
		title.TitleType,
		title.AccountID,
		title.DueDate,
		title.Amount,
		title.Status,
		settledAt,
		entryID,
		title.CreatedAt,
		title.CreatedBy,
		title.LastUpdatedAt,
		title.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save title %s: %w", title.TitleID, err)
	}
	return nil
}

// FindTitleByID retrieves a title by its ID.
func (r *PgxTitleRepository) FindTitleByID(ctx context.Context, titleID string) (*domain.Title, error) {
	query := `SELECT ` + titleColumns + ` FROM titles WHERE title_id = $1;`

	t, err := scanTitle(r.Pool.QueryRow(ctx, query, titleID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find title by ID %s: %w", titleID, err)
	}
	return &t, nil
}

// ListTitles retrieves a paginated list of titles, optionally filtered by
// status, ordered by due date.
func (r *PgxTitleRepository) ListTitles(ctx context.Context, status *domain.TitleStatus, limit, offset int) ([]domain.Title, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	query := `SELECT ` + titleColumns + ` FROM titles`
	args := []interface{}{}
	if status != nil {
		query += ` WHERE status = $1 ORDER BY due_date LIMIT $2 OFFSET $3;`
		args = append(args, *status, limit, offset)
	} else {
		query += ` ORDER BY due_date LIMIT $1 OFFSET $2;`
		args = append(args, limit, offset)
	}

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query titles: %w", err)
	}
	defer rows.Close()

	titles := []domain.Title{}
	for rows.Next() {
		t, err := scanTitle(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan title row: %w", err)
		}
		titles = append(titles, t)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating title rows: %w", rows.Err())
	}

	return titles, nil
}

// SettleWithEntry transitions an OPEN title to SETTLED and inserts the
// settlement journal entry in the same transaction. The status guard in the
// WHERE clause makes a concurrent settlement visible as a conflict, and a
// failure on either statement rolls both back.
func (r *PgxTitleRepository) SettleWithEntry(ctx context.Context, title domain.Title, entry domain.JournalEntry, lines []domain.JournalLine) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx) // No-op after a successful commit

	query := `
		UPDATE titles
		SET status = $2, settled_at = $3, entry_id = $4, last_updated_at = $5, last_updated_by = $6
		WHERE title_id = $1 AND status = 'OPEN';
	`
	cmdTag, err := tx.Exec(ctx, query,
		title.TitleID,
		domain.TitleSettled,
		title.SettledAt,
		title.EntryID,
		title.LastUpdatedAt,
		title.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to settle title %s: %w", title.TitleID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		_, findErr := r.FindTitleByID(ctx, title.TitleID)
		if errors.Is(findErr, apperrors.ErrNotFound) {
			return apperrors.ErrNotFound
		} else if findErr != nil {
			return fmt.Errorf("failed to check title status after settlement attempt for %s: %w", title.TitleID, findErr)
		}
		// Title exists but is no longer OPEN.
		return fmt.Errorf("%w: title %s is not open", apperrors.ErrConflict, title.TitleID)
	}

	if err := insertEntryTx(ctx, tx, entry, lines); err != nil {
		return err
	}

	return r.Commit(ctx, tx)
}
