package services

import (
	"context"
	"time"

	"github.com/Grupo02-6P/grupo02-sub001/internal/core/domain"
	"github.com/Grupo02-6P/grupo02-sub001/internal/dto"
)

// TitleSvcFacade defines operations for titles (receivables and payables).
type TitleSvcFacade interface {
	CreateTitle(ctx context.Context, req dto.CreateTitleRequest, userID string) (*domain.Title, error)

	GetTitleByID(ctx context.Context, titleID string, userID string) (*domain.Title, error)

	ListTitles(ctx context.Context, status *domain.TitleStatus, limit, offset int, userID string) ([]domain.Title, error)

	// SettleTitle posts the settlement journal entry (origin TITLE) and marks
	// the title SETTLED.
	SettleTitle(ctx context.Context, titleID string, settlementDate time.Time, userID string) (*domain.Title, error)
}
