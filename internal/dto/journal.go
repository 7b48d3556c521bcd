package dto

import (
	"time"

	"github.com/Grupo02-6P/grupo02-sub001/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateEntryLineRequest is one debit or credit within a new journal entry.
type CreateEntryLineRequest struct {
	AccountID string          `json:"accountID" binding:"required"`
	Amount    decimal.Decimal `json:"amount" binding:"required"`
	LineType  domain.LineType `json:"lineType" binding:"required,oneof=DEBIT CREDIT"`
}

// CreateEntryRequest defines the data needed to post a manual journal entry.
type CreateEntryRequest struct {
	Date        time.Time                `json:"date" binding:"required" time_format:"2006-01-02"`
	Description string                   `json:"description" binding:"required"`
	Lines       []CreateEntryLineRequest `json:"lines" binding:"required,min=2,dive"`
}

// EntryLineResponse defines the data returned for a journal line.
type EntryLineResponse struct {
	LineID    string          `json:"lineID"`
	AccountID string          `json:"accountID"`
	Amount    decimal.Decimal `json:"amount"`
	LineType  string          `json:"lineType"`
}

// EntryResponse defines the data returned for a journal entry.
type EntryResponse struct {
	EntryID     string              `json:"entryID"`
	Date        time.Time           `json:"date"`
	Description string              `json:"description"`
	Origin      string              `json:"origin"`
	TitleID     *string             `json:"titleID,omitempty"`
	CreatedAt   time.Time           `json:"createdAt"`
	CreatedBy   string              `json:"createdBy"`
	Lines       []EntryLineResponse `json:"lines,omitempty"`
}

// ToEntryLineResponse converts a domain.JournalLine to its DTO.
func ToEntryLineResponse(line *domain.JournalLine) EntryLineResponse {
	return EntryLineResponse{
		LineID:    line.LineID,
		AccountID: line.AccountID,
		Amount:    line.Amount,
		LineType:  string(line.LineType),
	}
}

// ToEntryResponse converts a domain.JournalEntry (with lines, if loaded) to
// its DTO.
func ToEntryResponse(entry *domain.JournalEntry) EntryResponse {
	resp := EntryResponse{
		EntryID:     entry.EntryID,
		Date:        entry.EntryDate,
		Description: entry.Description,
		Origin:      string(entry.Origin),
		TitleID:     entry.TitleID,
		CreatedAt:   entry.CreatedAt,
		CreatedBy:   entry.CreatedBy,
	}
	if len(entry.Lines) > 0 {
		resp.Lines = make([]EntryLineResponse, len(entry.Lines))
		for i := range entry.Lines {
			resp.Lines[i] = ToEntryLineResponse(&entry.Lines[i])
		}
	}
	return resp
}

// ListEntriesParams defines query parameters for listing journal entries.
type ListEntriesParams struct {
	Limit     int     `form:"limit,default=20"`
	NextToken *string `form:"nextToken"`
}

// ListEntriesResponse wraps a page of entries plus the continuation token.
type ListEntriesResponse struct {
	Entries   []EntryResponse `json:"entries"`
	NextToken *string         `json:"nextToken,omitempty"`
}
