package dto

import (
	"fmt"
	"strings"
	"time"

	"github.com/Grupo02-6P/grupo02-sub001/internal/apperrors"
	"github.com/Grupo02-6P/grupo02-sub001/internal/core/domain"
)

// ReportRequest is the parsed, validated input for report generation.
type ReportRequest struct {
	Type      domain.ReportType
	Period    domain.Period
	AccountID *string // Required for LEDGER only
}

// RenderedReport is a formatted report ready to be served for download.
type RenderedReport struct {
	Content     []byte
	ContentType string
	Filename    string
}

// ReportQueryParams binds the raw report query string.
type ReportQueryParams struct {
	Format    string  `form:"format,default=json"`
	StartDate string  `form:"startDate"`
	EndDate   string  `form:"endDate"`
	AccountID *string `form:"accountId"`
}

// ParseReportType maps a path segment to a report type.
func ParseReportType(s string) (domain.ReportType, error) {
	switch strings.ToLower(s) {
	case "trial-balance", "balancete":
		return domain.ReportTrialBalance, nil
	case "dre":
		return domain.ReportDRE, nil
	case "balance-sheet", "balanco":
		return domain.ReportBalanceSheet, nil
	case "ledger", "razao":
		return domain.ReportLedger, nil
	default:
		return "", fmt.Errorf("%w: unknown report type %q", apperrors.ErrValidation, s)
	}
}

// ParseReportFormat maps a query value to a report format. The empty string
// and "json" mean no download formatting.
func ParseReportFormat(s string) (domain.ReportFormat, bool, error) {
	switch strings.ToLower(s) {
	case "", "json":
		return "", false, nil
	case "pdf":
		return domain.FormatPDF, true, nil
	case "csv":
		return domain.FormatCSV, true, nil
	default:
		return "", false, fmt.Errorf("%w: unknown report format %q", apperrors.ErrValidation, s)
	}
}

// ParsePeriod parses the start/end date parameters (YYYY-MM-DD). A missing
// start date defaults to the first day of the end date's year; a missing end
// date defaults to today.
func ParsePeriod(startStr, endStr string, now time.Time) (domain.Period, error) {
	end := now
	if endStr != "" {
		parsed, err := time.Parse("2006-01-02", endStr)
		if err != nil {
			return domain.Period{}, fmt.Errorf("%w: invalid endDate %q, use YYYY-MM-DD", apperrors.ErrValidation, endStr)
		}
		end = parsed
	}
	start := time.Date(end.Year(), time.January, 1, 0, 0, 0, 0, end.Location())
	if startStr != "" {
		parsed, err := time.Parse("2006-01-02", startStr)
		if err != nil {
			return domain.Period{}, fmt.Errorf("%w: invalid startDate %q, use YYYY-MM-DD", apperrors.ErrValidation, startStr)
		}
		start = parsed
	}
	if start.After(end) {
		return domain.Period{}, fmt.Errorf("%w: startDate must not be after endDate", apperrors.ErrValidation)
	}
	return domain.Period{StartDate: start, EndDate: end}, nil
}
