package export

import (
	"bufio"
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/Grupo02-6P/grupo02-sub001/internal/core/domain"
	"github.com/Grupo02-6P/grupo02-sub001/internal/dto"
	"github.com/shopspring/decimal"
)

const (
	csvFlushEvery = 200
	csvBufferSize = 32 * 1024

	dateLayout = "02/01/2006"
)

// csvStreamer writes CSV rows through a buffered writer, flushing in
// batches. Comment lines (prefixed #) carry report metadata that spreadsheet
// imports can skip.
type csvStreamer struct {
	buf          *bufio.Writer
	csv          *csv.Writer
	flushEvery   int
	pendingLines int
}

func newCSVStreamer(w io.Writer) *csvStreamer {
	buf := bufio.NewWriterSize(w, csvBufferSize)
	writer := csv.NewWriter(buf)
	writer.UseCRLF = true
	return &csvStreamer{buf: buf, csv: writer, flushEvery: csvFlushEvery}
}

func (s *csvStreamer) writeComment(line string) error {
	if !strings.HasSuffix(line, "\r\n") {
		line = strings.TrimSuffix(line, "\n")
		line += "\r\n"
	}
	_, err := s.buf.WriteString(line)
	return err
}

func (s *csvStreamer) writeRow(row []string) error {
	if err := s.csv.Write(row); err != nil {
		return err
	}
	s.pendingLines++
	if s.flushEvery > 0 && s.pendingLines >= s.flushEvery {
		return s.flush()
	}
	return nil
}

func (s *csvStreamer) flush() error {
	s.csv.Flush()
	if err := s.csv.Error(); err != nil {
		return err
	}
	if err := s.buf.Flush(); err != nil {
		return err
	}
	s.pendingLines = 0
	return nil
}

func formatDecimal(d decimal.Decimal) string {
	return d.StringFixed(2)
}

func formatPeriod(p domain.Period) string {
	return fmt.Sprintf("%s a %s", p.StartDate.Format(dateLayout), p.EndDate.Format(dateLayout))
}

// csvFormatter renders every report type as CSV.
type csvFormatter struct{}

var _ Formatter = (*csvFormatter)(nil)

func (f *csvFormatter) Format(_ context.Context, report *domain.Report) (*dto.RenderedReport, error) {
	var out bytes.Buffer
	streamer := newCSVStreamer(&out)

	if err := streamer.writeComment("# " + report.Title); err != nil {
		return nil, err
	}
	if err := streamer.writeComment("# Período: " + formatPeriod(report.Period)); err != nil {
		return nil, err
	}

	var err error
	switch data := report.Data.(type) {
	case domain.TrialBalanceReport:
		err = writeTrialBalanceCSV(streamer, data)
	case domain.DREReport:
		err = writeDRECSV(streamer, data)
	case domain.BalanceSheetReport:
		err = writeBalanceSheetCSV(streamer, data)
	case domain.LedgerReport:
		err = writeLedgerCSV(streamer, data)
	default:
		return nil, fmt.Errorf("unsupported report payload %T", report.Data)
	}
	if err != nil {
		return nil, err
	}
	if err := streamer.flush(); err != nil {
		return nil, err
	}

	return &dto.RenderedReport{
		Content:     out.Bytes(),
		ContentType: ContentTypeCSV,
		Filename:    baseFilename + ".csv",
	}, nil
}

func writeTrialBalanceCSV(s *csvStreamer, data domain.TrialBalanceReport) error {
	if err := s.writeRow([]string{"Código", "Conta", "Débito", "Crédito", "Saldo Devedor", "Saldo Credor"}); err != nil {
		return err
	}
	for _, line := range data.Lines {
		if err := s.writeRow([]string{
			line.AccountCode,
			line.AccountName,
			formatDecimal(line.TotalDebit),
			formatDecimal(line.TotalCredit),
			formatDecimal(line.SaldoDevedor),
			formatDecimal(line.SaldoCredor),
		}); err != nil {
			return err
		}
	}
	return nil
}

func writeDRECSV(s *csvStreamer, data domain.DREReport) error {
	if err := s.writeRow([]string{"Código", "Conta", "Saldo"}); err != nil {
		return err
	}
	if err := writeDRENodeCSV(s, data.Receitas); err != nil {
		return err
	}
	if err := writeDRENodeCSV(s, data.Despesas); err != nil {
		return err
	}
	if err := s.writeRow([]string{"", "", ""}); err != nil {
		return err
	}
	totals := [][]string{
		{"", "Total Receitas", formatDecimal(data.TotalReceitas)},
		{"", "Total Despesas", formatDecimal(data.TotalDespesas)},
		{"", "Lucro/Prejuízo do Período", formatDecimal(data.LucroPrejuizo)},
	}
	for _, row := range totals {
		if err := s.writeRow(row); err != nil {
			return err
		}
	}
	return nil
}

// writeDRENodeCSV walks the tree pre-order so parents precede children, the
// same order the document presents them.
func writeDRENodeCSV(s *csvStreamer, node *domain.DRENode) error {
	if node == nil {
		return nil
	}
	if err := s.writeRow([]string{node.Code, node.Name, formatDecimal(node.Balance)}); err != nil {
		return err
	}
	for _, child := range node.Children {
		if err := writeDRENodeCSV(s, child); err != nil {
			return err
		}
	}
	return nil
}

func writeBalanceSheetCSV(s *csvStreamer, data domain.BalanceSheetReport) error {
	if err := s.writeRow([]string{"Seção", "Código", "Conta", "Saldo"}); err != nil {
		return err
	}
	sections := []struct {
		name  string
		lines []domain.BalanceSheetLine
		total decimal.Decimal
	}{
		{"Ativo", data.Ativo, data.TotalAtivo},
		{"Passivo", data.Passivo, data.TotalPassivo},
		{"Patrimônio Líquido", data.PatrimonioLiquido, data.TotalPatrimonioLiquido},
	}
	for _, section := range sections {
		for _, line := range section.lines {
			if err := s.writeRow([]string{section.name, line.AccountCode, line.AccountName, formatDecimal(line.Balance)}); err != nil {
				return err
			}
		}
		if err := s.writeRow([]string{section.name, "", "Total", formatDecimal(section.total)}); err != nil {
			return err
		}
	}
	return nil
}

func writeLedgerCSV(s *csvStreamer, data domain.LedgerReport) error {
	if err := s.writeComment(fmt.Sprintf("# Conta: %s %s", data.AccountCode, data.AccountName)); err != nil {
		return err
	}
	if err := s.writeRow([]string{"Data", "Descrição", "Débito", "Crédito", "Saldo"}); err != nil {
		return err
	}
	if err := s.writeRow([]string{"", "Saldo Anterior", "", "", formatDecimal(data.InitialBalance)}); err != nil {
		return err
	}
	for _, row := range data.Rows {
		if err := s.writeRow([]string{
			row.Date.Format(dateLayout),
			row.Description,
			formatDecimal(row.Debit),
			formatDecimal(row.Credit),
			formatDecimal(row.RunningBalance),
		}); err != nil {
			return err
		}
	}
	return s.writeRow([]string{"", "Saldo Final", "", "", formatDecimal(data.FinalBalance)})
}
