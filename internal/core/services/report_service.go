package services

import (
	"context"

	"github.com/Grupo02-6P/grupo02-sub001/internal/core/domain"
	portsrepo "github.com/Grupo02-6P/grupo02-sub001/internal/core/ports/repositories"
	portssvc "github.com/Grupo02-6P/grupo02-sub001/internal/core/ports/services"
	"github.com/Grupo02-6P/grupo02-sub001/internal/core/reports"
	"github.com/Grupo02-6P/grupo02-sub001/internal/dto"
	"github.com/Grupo02-6P/grupo02-sub001/internal/export"
)

type reportService struct {
	BaseService
	reportingRepo portsrepo.ReportingRepository
	exporter      *export.Exporter
}

// ReportServiceOption configures the report service.
type ReportServiceOption func(*reportService)

// WithReportRoleAuthorizer wires the role check made before generation.
func WithReportRoleAuthorizer(authorizer portssvc.RoleAuthorizerSvc) ReportServiceOption {
	return func(s *reportService) {
		s.RoleAuthorizer = authorizer
	}
}

// NewReportService creates the report generation service.
func NewReportService(reportingRepo portsrepo.ReportingRepository, exporter *export.Exporter, opts ...ReportServiceOption) portssvc.ReportSvcFacade {
	s := &reportService{reportingRepo: reportingRepo, exporter: exporter}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ portssvc.ReportSvcFacade = (*reportService)(nil)

// Calculate runs the calculator for the requested report type. Reports are
// read-only, so VIEWER is enough.
func (s *reportService) Calculate(ctx context.Context, req dto.ReportRequest, userID string) (*domain.Report, error) {
	if err := s.AuthorizeUser(ctx, userID, domain.RoleViewer); err != nil {
		return nil, err
	}

	calculator, err := reports.ForType(req.Type, s.reportingRepo)
	if err != nil {
		return nil, err
	}

	report, err := calculator.Calculate(ctx, req.Period, reports.Options{AccountID: req.AccountID})
	if err != nil {
		s.LogError(ctx, err, "Report calculation failed", "type", string(req.Type))
		return nil, err
	}

	s.LogInfo(ctx, "Report calculated", "type", string(req.Type))
	return report, nil
}

// Render calculates and then formats the report for download.
func (s *reportService) Render(ctx context.Context, req dto.ReportRequest, format domain.ReportFormat, userID string) (*dto.RenderedReport, error) {
	report, err := s.Calculate(ctx, req, userID)
	if err != nil {
		return nil, err
	}

	formatter, err := s.exporter.ForFormat(format)
	if err != nil {
		return nil, err
	}

	rendered, err := formatter.Format(ctx, report)
	if err != nil {
		s.LogError(ctx, err, "Report formatting failed", "type", string(req.Type), "format", string(format))
		return nil, err
	}
	return rendered, nil
}
