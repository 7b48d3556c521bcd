package export

import (
	"context"
	"fmt"
	"html/template"
	"strings"

	"github.com/Grupo02-6P/grupo02-sub001/internal/core/domain"
	"github.com/Grupo02-6P/grupo02-sub001/internal/dto"
)

// pdfFormatter builds an HTML document per report type and has Gotenberg
// render it into a PDF.
type pdfFormatter struct {
	client *GotenbergClient
}

var _ Formatter = (*pdfFormatter)(nil)

var reportTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"money":  formatDecimal,
	"date":   func(t interface{ Format(string) string }) string { return t.Format(dateLayout) },
	"indent": func(depth int) template.CSS { return template.CSS(fmt.Sprintf("padding-left: %dpx", depth*16)) },
}).Parse(`<!DOCTYPE html>
<html lang="pt-BR">
<head>
<meta charset="utf-8">
<style>
  body { font-family: Helvetica, Arial, sans-serif; font-size: 12px; margin: 32px; }
  h1 { font-size: 18px; margin-bottom: 2px; }
  .period { color: #555; margin-bottom: 16px; }
  table { width: 100%; border-collapse: collapse; }
  th { text-align: left; border-bottom: 2px solid #333; padding: 4px 6px; }
  td { border-bottom: 1px solid #ddd; padding: 4px 6px; }
  td.num, th.num { text-align: right; white-space: nowrap; }
  tr.total td { font-weight: bold; border-top: 2px solid #333; }
  tr.section td { font-weight: bold; background: #f0f0f0; }
</style>
</head>
<body>
<h1>{{.Title}}</h1>
<div class="period">Período: {{.PeriodLabel}}</div>
{{.Body}}
</body>
</html>`))

type reportPage struct {
	Title       string
	PeriodLabel string
	Body        template.HTML
}

func (f *pdfFormatter) Format(ctx context.Context, report *domain.Report) (*dto.RenderedReport, error) {
	var body template.HTML
	var err error
	switch data := report.Data.(type) {
	case domain.TrialBalanceReport:
		body, err = trialBalanceHTML(data)
	case domain.DREReport:
		body, err = dreHTML(data)
	case domain.BalanceSheetReport:
		body, err = balanceSheetHTML(data)
	case domain.LedgerReport:
		body, err = ledgerHTML(data)
	default:
		return nil, fmt.Errorf("unsupported report payload %T", report.Data)
	}
	if err != nil {
		return nil, err
	}

	var html strings.Builder
	page := reportPage{
		Title:       report.Title,
		PeriodLabel: formatPeriod(report.Period),
		Body:        body,
	}
	if err := reportTemplate.Execute(&html, page); err != nil {
		return nil, fmt.Errorf("failed to build report HTML: %w", err)
	}

	content, err := f.client.RenderHTML(ctx, html.String())
	if err != nil {
		return nil, fmt.Errorf("failed to render PDF: %w", err)
	}

	return &dto.RenderedReport{
		Content:     content,
		ContentType: ContentTypePDF,
		Filename:    baseFilename + ".pdf",
	}, nil
}

var trialBalanceBody = template.Must(template.New("tb").Funcs(template.FuncMap{"money": formatDecimal}).Parse(`
<table>
<tr><th>Código</th><th>Conta</th><th class="num">Débito</th><th class="num">Crédito</th><th class="num">Saldo Devedor</th><th class="num">Saldo Credor</th></tr>
{{range .Lines}}
<tr{{if not .AccountID}} class="total"{{end}}>
<td>{{.AccountCode}}</td><td>{{.AccountName}}</td>
<td class="num">{{money .TotalDebit}}</td><td class="num">{{money .TotalCredit}}</td>
<td class="num">{{money .SaldoDevedor}}</td><td class="num">{{money .SaldoCredor}}</td>
</tr>
{{end}}
</table>`))

func trialBalanceHTML(data domain.TrialBalanceReport) (template.HTML, error) {
	return renderBody(trialBalanceBody, data)
}

// dreRow flattens the two trees for the template, keeping depth for
// indentation.
type dreRow struct {
	Code      string
	Name      string
	Balance   string
	Depth     int
	Synthetic bool
}

func flattenDRE(node *domain.DRENode, depth int, rows []dreRow) []dreRow {
	if node == nil {
		return rows
	}
	rows = append(rows, dreRow{
		Code:      node.Code,
		Name:      node.Name,
		Balance:   formatDecimal(node.Balance),
		Depth:     depth,
		Synthetic: node.Synthetic,
	})
	for _, child := range node.Children {
		rows = flattenDRE(child, depth+1, rows)
	}
	return rows
}

var dreBody = template.Must(template.New("dre").Funcs(template.FuncMap{
	"indent": func(depth int) template.CSS { return template.CSS(fmt.Sprintf("padding-left: %dpx", depth*16)) },
}).Parse(`
<table>
<tr><th>Código</th><th>Conta</th><th class="num">Saldo</th></tr>
{{range .Rows}}
<tr{{if .Synthetic}} class="section"{{end}}>
<td>{{.Code}}</td><td style="{{indent .Depth}}">{{.Name}}</td><td class="num">{{.Balance}}</td>
</tr>
{{end}}
<tr class="total"><td></td><td>Total Receitas</td><td class="num">{{.TotalReceitas}}</td></tr>
<tr class="total"><td></td><td>Total Despesas</td><td class="num">{{.TotalDespesas}}</td></tr>
<tr class="total"><td></td><td>Lucro/Prejuízo do Período</td><td class="num">{{.LucroPrejuizo}}</td></tr>
</table>`))

func dreHTML(data domain.DREReport) (template.HTML, error) {
	rows := flattenDRE(data.Receitas, 0, nil)
	rows = flattenDRE(data.Despesas, 0, rows)
	payload := struct {
		Rows          []dreRow
		TotalReceitas string
		TotalDespesas string
		LucroPrejuizo string
	}{rows, formatDecimal(data.TotalReceitas), formatDecimal(data.TotalDespesas), formatDecimal(data.LucroPrejuizo)}
	return renderBody(dreBody, payload)
}

var balanceSheetBody = template.Must(template.New("bs").Funcs(template.FuncMap{"money": formatDecimal}).Parse(`
<table>
<tr><th>Código</th><th>Conta</th><th class="num">Saldo</th></tr>
{{range .Sections}}
<tr class="section"><td colspan="2">{{.Name}}</td><td></td></tr>
{{range .Lines}}
<tr><td>{{.AccountCode}}</td><td>{{.AccountName}}</td><td class="num">{{money .Balance}}</td></tr>
{{end}}
<tr class="total"><td></td><td>Total {{.Name}}</td><td class="num">{{.Total}}</td></tr>
{{end}}
</table>`))

func balanceSheetHTML(data domain.BalanceSheetReport) (template.HTML, error) {
	type section struct {
		Name  string
		Lines []domain.BalanceSheetLine
		Total string
	}
	payload := struct{ Sections []section }{[]section{
		{"Ativo", data.Ativo, formatDecimal(data.TotalAtivo)},
		{"Passivo", data.Passivo, formatDecimal(data.TotalPassivo)},
		{"Patrimônio Líquido", data.PatrimonioLiquido, formatDecimal(data.TotalPatrimonioLiquido)},
	}}
	return renderBody(balanceSheetBody, payload)
}

var ledgerBody = template.Must(template.New("ledger").Funcs(template.FuncMap{
	"money": formatDecimal,
	"date":  func(t interface{ Format(string) string }) string { return t.Format(dateLayout) },
}).Parse(`
<div class="period">Conta: {{.AccountCode}} {{.AccountName}}</div>
<table>
<tr><th>Data</th><th>Descrição</th><th class="num">Débito</th><th class="num">Crédito</th><th class="num">Saldo</th></tr>
<tr><td></td><td>Saldo Anterior</td><td></td><td></td><td class="num">{{money .InitialBalance}}</td></tr>
{{range .Rows}}
<tr><td>{{date .Date}}</td><td>{{.Description}}</td><td class="num">{{money .Debit}}</td><td class="num">{{money .Credit}}</td><td class="num">{{money .RunningBalance}}</td></tr>
{{end}}
<tr class="total"><td></td><td>Saldo Final</td><td></td><td></td><td class="num">{{money .FinalBalance}}</td></tr>
</table>`))

func ledgerHTML(data domain.LedgerReport) (template.HTML, error) {
	return renderBody(ledgerBody, data)
}

func renderBody(tmpl *template.Template, data any) (template.HTML, error) {
	var sb strings.Builder
	if err := tmpl.Execute(&sb, data); err != nil {
		return "", fmt.Errorf("failed to build report table: %w", err)
	}
	return template.HTML(sb.String()), nil
}
