package repositories

import (
	"context"

	"github.com/Grupo02-6P/grupo02-sub001/internal/core/domain"
)

// JournalRepository defines persistence operations for journal entries and
// their lines. SaveEntry persists the entry and all lines atomically.
type JournalRepository interface {
	SaveEntry(ctx context.Context, entry domain.JournalEntry, lines []domain.JournalLine) error

	// FindEntryByID returns apperrors.ErrNotFound when absent. Lines are not
	// populated; use FindLinesByEntryID.
	FindEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error)

	FindLinesByEntryID(ctx context.Context, entryID string) ([]domain.JournalLine, error)

	// ListEntries pages through entries newest-first using an opaque token.
	ListEntries(ctx context.Context, limit int, nextToken *string) ([]domain.JournalEntry, *string, error)
}
