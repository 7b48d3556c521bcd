package repositories

import (
	"context"

	"github.com/Grupo02-6P/grupo02-sub001/internal/core/domain"
)

// TitleRepository defines persistence operations for titles.
type TitleRepository interface {
	SaveTitle(ctx context.Context, title domain.Title) error

	// FindTitleByID returns apperrors.ErrNotFound when absent.
	FindTitleByID(ctx context.Context, titleID string) (*domain.Title, error)

	// ListTitles filters by status when status is non-nil.
	ListTitles(ctx context.Context, status *domain.TitleStatus, limit, offset int) ([]domain.Title, error)

	// SettleWithEntry transitions an OPEN title to SETTLED and persists the
	// settlement journal entry atomically; neither survives without the
	// other. Returns apperrors.ErrConflict when the title is no longer OPEN.
	SettleWithEntry(ctx context.Context, title domain.Title, entry domain.JournalEntry, lines []domain.JournalLine) error
}
