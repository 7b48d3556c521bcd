// Package reports implements the report calculation engine: trial balance,
// income statement (DRE), balance sheet and account ledger, all derived from
// the journal-line aggregates supplied by the reporting repository.
package reports

import (
	"context"
	"fmt"

	"github.com/Grupo02-6P/grupo02-sub001/internal/apperrors"
	"github.com/Grupo02-6P/grupo02-sub001/internal/core/domain"
	portsrepo "github.com/Grupo02-6P/grupo02-sub001/internal/core/ports/repositories"
)

// Report titles as rendered on the exported documents.
const (
	TitleTrialBalance = "Balancete de Verificação"
	TitleDRE          = "Demonstração do Resultado do Exercício"
	TitleBalanceSheet = "Balanço Patrimonial"
	TitleLedger       = "Livro Razão"
)

// Options carries the optional per-report parameters.
type Options struct {
	AccountID *string // Required for the ledger report
}

// Calculator derives one report from the ledger data source. Calculators
// are stateless; every call recomputes from scratch.
type Calculator interface {
	Calculate(ctx context.Context, period domain.Period, opts Options) (*domain.Report, error)
}

// ForType returns the calculator for the given report type. An unknown type
// is a validation error; no partial output is produced.
func ForType(reportType domain.ReportType, repo portsrepo.ReportingRepository) (Calculator, error) {
	switch reportType {
	case domain.ReportTrialBalance:
		return NewTrialBalanceCalculator(repo), nil
	case domain.ReportDRE:
		return NewDRECalculator(repo), nil
	case domain.ReportBalanceSheet:
		return NewBalanceSheetCalculator(repo), nil
	case domain.ReportLedger:
		return NewLedgerCalculator(repo), nil
	default:
		return nil, fmt.Errorf("%w: unknown report type %q", apperrors.ErrValidation, reportType)
	}
}
