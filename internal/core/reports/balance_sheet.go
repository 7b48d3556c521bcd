package reports

import (
	"context"
	"strings"

	"github.com/Grupo02-6P/grupo02-sub001/internal/core/domain"
	portsrepo "github.com/Grupo02-6P/grupo02-sub001/internal/core/ports/repositories"
)

// ResultadoPeriodoCode is the synthetic equity line carrying the period's
// net result into the balance sheet so the accounting identity holds.
const (
	ResultadoPeriodoCode = "3.99"
	ResultadoPeriodoName = "Resultado do Período"
)

// BalanceSheetCalculator groups trial-balance lines into Ativo, Passivo and
// Patrimônio Líquido sections and injects the period result from the DRE.
type BalanceSheetCalculator struct {
	repo portsrepo.ReportingRepository
	dre  *DRECalculator
}

// NewBalanceSheetCalculator creates a balance sheet calculator. It owns a
// DRE calculator because the equity section needs the period result.
func NewBalanceSheetCalculator(repo portsrepo.ReportingRepository) *BalanceSheetCalculator {
	return &BalanceSheetCalculator{repo: repo, dre: NewDRECalculator(repo)}
}

var _ Calculator = (*BalanceSheetCalculator)(nil)

func (c *BalanceSheetCalculator) Calculate(ctx context.Context, period domain.Period, opts Options) (*domain.Report, error) {
	dreReport, err := c.dre.Calculate(ctx, period, opts)
	if err != nil {
		return nil, err
	}
	lucroPrejuizo := dreReport.Data.(domain.DREReport).LucroPrejuizo

	balances, err := c.repo.GetTrialBalanceData(ctx, period.EndDate)
	if err != nil {
		return nil, err
	}

	sheet := domain.BalanceSheetReport{LucroPrejuizo: lucroPrejuizo}
	for _, row := range balances {
		line := domain.BalanceSheetLine{
			AccountID:   row.AccountID,
			AccountCode: row.AccountCode,
			AccountName: row.AccountName,
		}
		switch rootOf(row.AccountCode) {
		case domain.RootAtivo:
			// Asset accounts are debit-natured, keep the raw sign.
			line.Balance = row.Balance
			sheet.Ativo = append(sheet.Ativo, line)
			sheet.TotalAtivo = sheet.TotalAtivo.Add(line.Balance)
		case domain.RootPassivo:
			line.Balance = row.Balance.Neg()
			sheet.Passivo = append(sheet.Passivo, line)
			sheet.TotalPassivo = sheet.TotalPassivo.Add(line.Balance)
		case domain.RootPatrimonio:
			line.Balance = row.Balance.Neg()
			sheet.PatrimonioLiquido = append(sheet.PatrimonioLiquido, line)
			sheet.TotalPatrimonioLiquido = sheet.TotalPatrimonioLiquido.Add(line.Balance)
		}
		// Result accounts (4/5) are represented by the injected line below.
	}

	sheet.PatrimonioLiquido = append(sheet.PatrimonioLiquido, domain.BalanceSheetLine{
		AccountCode: ResultadoPeriodoCode,
		AccountName: ResultadoPeriodoName,
		Balance:     lucroPrejuizo,
	})
	sheet.TotalPatrimonioLiquido = sheet.TotalPatrimonioLiquido.Add(lucroPrejuizo)

	return &domain.Report{
		Type:   domain.ReportBalanceSheet,
		Title:  TitleBalanceSheet,
		Period: period,
		Data:   sheet,
	}, nil
}

func rootOf(code string) string {
	if i := strings.Index(code, domain.CodeSegmentSep); i > 0 {
		return code[:i]
	}
	return code
}
