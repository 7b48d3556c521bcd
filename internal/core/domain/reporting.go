package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ReportType selects a report calculator.
type ReportType string

const (
	ReportTrialBalance ReportType = "TRIAL_BALANCE"
	ReportDRE          ReportType = "DRE"
	ReportBalanceSheet ReportType = "BALANCO"
	ReportLedger       ReportType = "LEDGER"
)

// ReportFormat selects a report formatter.
type ReportFormat string

const (
	FormatPDF ReportFormat = "PDF"
	FormatCSV ReportFormat = "CSV"
)

// Period is an inclusive date range scoping a report.
type Period struct {
	StartDate time.Time `json:"startDate"`
	EndDate   time.Time `json:"endDate"`
}

// Report is the envelope every calculator produces. Data holds one of the
// concrete report payloads below; formatters type-switch on it.
type Report struct {
	Type   ReportType `json:"type"`
	Title  string     `json:"title"`
	Period Period     `json:"period"`
	Data   any        `json:"data"`
}

// TrialBalanceData is the raw per-account aggregate supplied by the data
// source: debit and credit totals accumulated up to the report end date.
type TrialBalanceData struct {
	AccountID   string          `json:"accountID"`
	AccountCode string          `json:"accountCode"`
	AccountName string          `json:"accountName"`
	TotalDebit  decimal.Decimal `json:"totalDebit"`
	TotalCredit decimal.Decimal `json:"totalCredit"`
	Balance     decimal.Decimal `json:"balance"` // TotalDebit - TotalCredit
}

// TrialBalanceLine is one row of the trial balance report. Exactly one of
// SaldoDevedor/SaldoCredor is non-zero for account rows; the final TOTAIS
// row sums both columns independently.
type TrialBalanceLine struct {
	AccountID    string          `json:"accountID,omitempty"`
	AccountCode  string          `json:"accountCode"`
	AccountName  string          `json:"accountName"`
	TotalDebit   decimal.Decimal `json:"totalDebit"`
	TotalCredit  decimal.Decimal `json:"totalCredit"`
	SaldoDevedor decimal.Decimal `json:"saldoDevedor"`
	SaldoCredor  decimal.Decimal `json:"saldoCredor"`
}

// TrialBalanceReport is the flat balance list plus the synthetic totals row.
type TrialBalanceReport struct {
	Lines []TrialBalanceLine `json:"lines"` // Last line is always "TOTAIS"
}

// DRENode is one account in the income statement tree. Synthetic nodes
// carry the rolled-up sum of their children; leaf (posting) nodes carry the
// balance assigned from the trial balance.
type DRENode struct {
	AccountID string          `json:"accountID"`
	Code      string          `json:"code"`
	Name      string          `json:"name"`
	Synthetic bool            `json:"synthetic"`
	Balance   decimal.Decimal `json:"balance"`
	Children  []*DRENode      `json:"children,omitempty"`
}

// DREReport is the income statement: revenue tree, expense tree and result.
type DREReport struct {
	Receitas      *DRENode        `json:"receitas"` // Root "4"
	Despesas      *DRENode        `json:"despesas"` // Root "5"
	TotalReceitas decimal.Decimal `json:"totalReceitas"`
	TotalDespesas decimal.Decimal `json:"totalDespesas"`
	LucroPrejuizo decimal.Decimal `json:"lucroPrejuizo"`
}

// BalanceSheetLine is one account row of the balance sheet.
type BalanceSheetLine struct {
	AccountID   string          `json:"accountID,omitempty"`
	AccountCode string          `json:"accountCode"`
	AccountName string          `json:"accountName"`
	Balance     decimal.Decimal `json:"balance"`
}

// BalanceSheetReport partitions trial-balance lines by root digit and
// injects the period result into equity.
type BalanceSheetReport struct {
	Ativo                  []BalanceSheetLine `json:"ativo"`
	Passivo                []BalanceSheetLine `json:"passivo"`
	PatrimonioLiquido      []BalanceSheetLine `json:"patrimonioLiquido"`
	TotalAtivo             decimal.Decimal    `json:"totalAtivo"`
	TotalPassivo           decimal.Decimal    `json:"totalPassivo"`
	TotalPatrimonioLiquido decimal.Decimal    `json:"totalPatrimonioLiquido"`
	LucroPrejuizo          decimal.Decimal    `json:"lucroPrejuizo"`
}

// AccountMovement is one journal line joined with its account and the
// originating document, as supplied by the data source for the ledger
// report, ordered by entry date ascending.
type AccountMovement struct {
	LineID           string          `json:"lineID"`
	EntryID          string          `json:"entryID"`
	EntryDate        time.Time       `json:"entryDate"`
	AccountID        string          `json:"accountID"`
	AccountCode      string          `json:"accountCode"`
	AccountName      string          `json:"accountName"`
	EntryDescription string          `json:"entryDescription"`
	TitleDescription string          `json:"titleDescription"`
	LineType         LineType        `json:"lineType"`
	Amount           decimal.Decimal `json:"amount"`
}

// LedgerRow is one chronological movement with the balance after it.
type LedgerRow struct {
	Date           time.Time       `json:"date"`
	Description    string          `json:"description"`
	Debit          decimal.Decimal `json:"debit"`
	Credit         decimal.Decimal `json:"credit"`
	RunningBalance decimal.Decimal `json:"runningBalance"`
}

// LedgerReport is the account statement: opening balance, movements with
// running balance, and the closing balance.
type LedgerReport struct {
	AccountID      string          `json:"accountID"`
	AccountCode    string          `json:"accountCode"`
	AccountName    string          `json:"accountName"`
	InitialBalance decimal.Decimal `json:"initialBalance"`
	Rows           []LedgerRow     `json:"rows"`
	FinalBalance   decimal.Decimal `json:"finalBalance"`
}
