package services

import (
	"context"

	"github.com/Grupo02-6P/grupo02-sub001/internal/core/domain"
	"github.com/Grupo02-6P/grupo02-sub001/internal/dto"
)

// JournalReaderSvc defines read operations for journal entries.
type JournalReaderSvc interface {
	// GetEntryByID retrieves an entry with its lines populated.
	GetEntryByID(ctx context.Context, entryID string, userID string) (*domain.JournalEntry, error)

	// ListEntries pages through entries newest-first.
	ListEntries(ctx context.Context, params dto.ListEntriesParams, userID string) (*dto.ListEntriesResponse, error)
}

// JournalWriterSvc defines write operations for journal entries.
type JournalWriterSvc interface {
	// CreateEntry validates and persists a balanced journal entry.
	CreateEntry(ctx context.Context, req dto.CreateEntryRequest, userID string) (*domain.JournalEntry, error)
}

// JournalSvcFacade combines all journal-related service interfaces.
type JournalSvcFacade interface {
	JournalReaderSvc
	JournalWriterSvc
}
