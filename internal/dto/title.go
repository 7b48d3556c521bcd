package dto

import (
	"time"

	"github.com/Grupo02-6P/grupo02-sub001/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateTitleRequest defines the data needed to register a title.
type CreateTitleRequest struct {
	Description  string           `json:"description" binding:"required"`
	Counterparty string           `json:"counterparty" binding:"required"`
	TitleType    domain.TitleType `json:"titleType" binding:"required,oneof=RECEIVABLE PAYABLE"`
	AccountID    string           `json:"accountID" binding:"required"`
	DueDate      time.Time        `json:"dueDate" binding:"required" time_format:"2006-01-02"`
	Amount       decimal.Decimal  `json:"amount" binding:"required"`
}

// SettleTitleRequest defines the data needed to settle a title.
type SettleTitleRequest struct {
	SettlementDate time.Time `json:"settlementDate" binding:"required" time_format:"2006-01-02"`
}

// TitleResponse defines the data returned for a title.
type TitleResponse struct {
	TitleID      string          `json:"titleID"`
	Description  string          `json:"description"`
	Counterparty string          `json:"counterparty"`
	TitleType    string          `json:"titleType"`
	AccountID    string          `json:"accountID"`
	DueDate      time.Time       `json:"dueDate"`
	Amount       decimal.Decimal `json:"amount"`
	Status       string          `json:"status"`
	SettledAt    *time.Time      `json:"settledAt,omitempty"`
	EntryID      *string         `json:"entryID,omitempty"`
	CreatedAt    time.Time       `json:"createdAt"`
	CreatedBy    string          `json:"createdBy"`
}

// ToTitleResponse converts a domain.Title to its DTO.
func ToTitleResponse(t *domain.Title) TitleResponse {
	return TitleResponse{
		TitleID:      t.TitleID,
		Description:  t.Description,
		Counterparty: t.Counterparty,
		TitleType:    string(t.TitleType),
		AccountID:    t.AccountID,
		DueDate:      t.DueDate,
		Amount:       t.Amount,
		Status:       string(t.Status),
		SettledAt:    t.SettledAt,
		EntryID:      t.EntryID,
		CreatedAt:    t.CreatedAt,
		CreatedBy:    t.CreatedBy,
	}
}

// ToListTitleResponse converts a slice of domain.Title to response DTOs.
func ToListTitleResponse(titles []domain.Title) []TitleResponse {
	res := make([]TitleResponse, len(titles))
	for i := range titles {
		res[i] = ToTitleResponse(&titles[i])
	}
	return res
}

// ListTitlesParams defines query parameters for listing titles.
type ListTitlesParams struct {
	Status *string `form:"status"`
	Limit  int     `form:"limit,default=50"`
	Offset int     `form:"offset,default=0"`
}
