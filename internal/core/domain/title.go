package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TitleType distinguishes money owed to us from money we owe.
type TitleType string

const (
	Receivable TitleType = "RECEIVABLE"
	Payable    TitleType = "PAYABLE"
)

// TitleStatus is the settlement state of a title.
type TitleStatus string

const (
	TitleOpen    TitleStatus = "OPEN"
	TitleSettled TitleStatus = "SETTLED"
)

// Title is a source document (an account receivable or payable) that, once
// settled, produces a journal entry with origin TITLE.
type Title struct {
	TitleID      string          `json:"titleID"` // Primary key (UUID)
	Description  string          `json:"description"`
	Counterparty string          `json:"counterparty"`
	TitleType    TitleType       `json:"titleType"`
	AccountID    string          `json:"accountID"` // Revenue/expense account hit on settlement
	DueDate      time.Time       `json:"dueDate"`
	Amount       decimal.Decimal `json:"amount"`
	Status       TitleStatus     `json:"status"`
	SettledAt    *time.Time      `json:"settledAt"`
	EntryID      *string         `json:"entryID"` // Journal entry created on settlement
	AuditFields
}
