package domain

import "strings"

// Chart-of-accounts root digits. The first segment of an account code
// determines its classification.
const (
	RootAtivo      = "1"
	RootPassivo    = "2"
	RootPatrimonio = "3"
	RootReceita    = "4"
	RootDespesa    = "5"
	CodeSegmentSep = "."
)

// Account represents a node in the chart of accounts.
//
// Accounts form a hierarchy through ParentAccountID; the code of a child
// extends its parent's code by one dot-separated segment (e.g. "1.01" under
// "1"). Only accounts with AcceptsPosting set (analytic accounts) may
// receive journal lines; the others are synthetic aggregators whose balance
// is always derived from their descendants.
type Account struct {
	AccountID       string `json:"accountID"` // Primary key (UUID)
	Code            string `json:"code"`      // Dot-separated hierarchical code, e.g. "1.01.001"
	Name            string `json:"name"`
	ParentAccountID string `json:"parentAccountID"` // Empty for root accounts
	AcceptsPosting  bool   `json:"acceptsPosting"`
	IsActive        bool   `json:"isActive"`
	AuditFields
}

// RootDigit returns the first code segment, which classifies the account.
func (a Account) RootDigit() string {
	if i := strings.Index(a.Code, CodeSegmentSep); i >= 0 {
		return a.Code[:i]
	}
	return a.Code
}

// CodeDepth returns the number of segments in the account code.
func (a Account) CodeDepth() int {
	if a.Code == "" {
		return 0
	}
	return strings.Count(a.Code, CodeSegmentSep) + 1
}
