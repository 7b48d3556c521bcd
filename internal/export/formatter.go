// Package export turns calculated reports into downloadable documents.
// CSV is produced locally; PDF rendering is delegated to a Gotenberg
// service.
package export

import (
	"context"
	"fmt"

	"github.com/Grupo02-6P/grupo02-sub001/internal/apperrors"
	"github.com/Grupo02-6P/grupo02-sub001/internal/core/domain"
	"github.com/Grupo02-6P/grupo02-sub001/internal/dto"
)

// Download content types and the fixed attachment name.
const (
	ContentTypePDF = "application/pdf"
	ContentTypeCSV = "text/csv"

	baseFilename = "relatorio"
)

// Formatter renders one calculated report into a downloadable document.
type Formatter interface {
	Format(ctx context.Context, report *domain.Report) (*dto.RenderedReport, error)
}

// Exporter dispatches report formats to their formatter.
type Exporter struct {
	formatters map[domain.ReportFormat]Formatter
}

// NewExporter wires the CSV and PDF formatters.
func NewExporter(gotenberg *GotenbergClient) *Exporter {
	return &Exporter{
		formatters: map[domain.ReportFormat]Formatter{
			domain.FormatCSV: &csvFormatter{},
			domain.FormatPDF: &pdfFormatter{client: gotenberg},
		},
	}
}

// ForFormat returns the formatter for the given format. An unknown format
// is a validation error.
func (e *Exporter) ForFormat(format domain.ReportFormat) (Formatter, error) {
	f, ok := e.formatters[format]
	if !ok {
		return nil, fmt.Errorf("%w: unknown report format %q", apperrors.ErrValidation, format)
	}
	return f, nil
}
