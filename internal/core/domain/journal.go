package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// EntryOrigin identifies what produced a journal entry.
type EntryOrigin string

const (
	OriginManual EntryOrigin = "MANUAL"
	OriginTitle  EntryOrigin = "TITLE"
)

// LineType indicates whether a journal line is a debit or a credit.
type LineType string

const (
	Debit  LineType = "DEBIT"
	Credit LineType = "CREDIT"
)

// JournalEntry represents a single, balanced posting event composed of
// at least two lines whose debits equal their credits.
type JournalEntry struct {
	EntryID     string      `json:"entryID"`   // Primary key (UUID)
	EntryDate   time.Time   `json:"entryDate"` // Date the event occurred
	Description string      `json:"description"`
	Origin      EntryOrigin `json:"origin"`
	TitleID     *string     `json:"titleID"` // Set when Origin == TITLE
	AuditFields
	// Lines are loaded separately for list operations.
	Lines []JournalLine `json:"lines,omitempty"`
}

// JournalLine is a single debit or credit against one posting account.
type JournalLine struct {
	LineID    string          `json:"lineID"`  // Primary key (UUID)
	EntryID   string          `json:"entryID"` // FK -> JournalEntry
	AccountID string          `json:"accountID"`
	Amount    decimal.Decimal `json:"amount"` // Always positive
	LineType  LineType        `json:"lineType"`
	AuditFields
}

// SignedAmount returns the line amount with debit-positive convention.
func (l JournalLine) SignedAmount() decimal.Decimal {
	if l.LineType == Credit {
		return l.Amount.Neg()
	}
	return l.Amount
}
