package services

import (
	"context"

	"github.com/Grupo02-6P/grupo02-sub001/internal/core/domain"
	"github.com/Grupo02-6P/grupo02-sub001/internal/dto"
)

// ReportSvcFacade selects a calculator by report type and, for Render, a
// formatter by format, producing the downloadable document.
type ReportSvcFacade interface {
	// Calculate runs the calculator for the requested report type.
	Calculate(ctx context.Context, req dto.ReportRequest, userID string) (*domain.Report, error)

	// Render calculates and then formats the report as PDF or CSV bytes.
	Render(ctx context.Context, req dto.ReportRequest, format domain.ReportFormat, userID string) (*dto.RenderedReport, error)
}
