package services

import (
	"context"
	"fmt"
	"time"

	"github.com/Grupo02-6P/grupo02-sub001/internal/apperrors"
	"github.com/Grupo02-6P/grupo02-sub001/internal/core/domain"
	portsrepo "github.com/Grupo02-6P/grupo02-sub001/internal/core/ports/repositories"
	portssvc "github.com/Grupo02-6P/grupo02-sub001/internal/core/ports/services"
	"github.com/Grupo02-6P/grupo02-sub001/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type journalService struct {
	BaseService
	journalRepo portsrepo.JournalRepository
	accountRepo portsrepo.AccountRepository
}

// JournalServiceOption configures the journal service.
type JournalServiceOption func(*journalService)

// WithJournalRoleAuthorizer wires the role check used before posting.
func WithJournalRoleAuthorizer(authorizer portssvc.RoleAuthorizerSvc) JournalServiceOption {
	return func(s *journalService) {
		s.RoleAuthorizer = authorizer
	}
}

// NewJournalService creates the double-entry posting service.
func NewJournalService(journalRepo portsrepo.JournalRepository, accountRepo portsrepo.AccountRepository, opts ...JournalServiceOption) *journalService {
	s := &journalService{journalRepo: journalRepo, accountRepo: accountRepo}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ portssvc.JournalSvcFacade = (*journalService)(nil)

// CreateEntry validates and posts a manual journal entry.
func (s *journalService) CreateEntry(ctx context.Context, req dto.CreateEntryRequest, userID string) (*domain.JournalEntry, error) {
	if err := s.AuthorizeUser(ctx, userID, domain.RoleOperator); err != nil {
		return nil, err
	}
	return s.postEntry(ctx, req.Date, req.Description, domain.OriginManual, nil, req.Lines, userID)
}

// postEntry enforces the double-entry invariants and persists the entry
// atomically.
func (s *journalService) postEntry(ctx context.Context, entryDate time.Time, description string, origin domain.EntryOrigin, titleID *string, lines []dto.CreateEntryLineRequest, userID string) (*domain.JournalEntry, error) {
	entry, journalLines, err := s.buildEntry(ctx, entryDate, description, origin, titleID, lines, userID)
	if err != nil {
		return nil, err
	}

	if err := s.journalRepo.SaveEntry(ctx, *entry, journalLines); err != nil {
		s.LogError(ctx, err, "Failed to save journal entry", "entry_id", entry.EntryID)
		return nil, err
	}
	entry.Lines = journalLines

	s.LogInfo(ctx, "Journal entry posted", "entry_id", entry.EntryID, "origin", string(origin), "lines", len(journalLines))
	return entry, nil
}

// buildEntry validates the double-entry invariants and constructs the entry
// and its lines without persisting them. Title settlement builds through it
// and commits the entry together with the title status change.
func (s *journalService) buildEntry(ctx context.Context, entryDate time.Time, description string, origin domain.EntryOrigin, titleID *string, lines []dto.CreateEntryLineRequest, userID string) (*domain.JournalEntry, []domain.JournalLine, error) {
	if len(lines) < 2 {
		return nil, nil, fmt.Errorf("%w: a journal entry requires at least two lines", apperrors.ErrValidation)
	}

	totalDebit := decimal.Zero
	totalCredit := decimal.Zero
	accountIDs := make([]string, 0, len(lines))
	for _, line := range lines {
		if !line.Amount.IsPositive() {
			return nil, nil, fmt.Errorf("%w: line amounts must be positive", apperrors.ErrValidation)
		}
		switch line.LineType {
		case domain.Debit:
			totalDebit = totalDebit.Add(line.Amount)
		case domain.Credit:
			totalCredit = totalCredit.Add(line.Amount)
		default:
			return nil, nil, fmt.Errorf("%w: invalid line type %q", apperrors.ErrValidation, line.LineType)
		}
		accountIDs = append(accountIDs, line.AccountID)
	}
	if !totalDebit.Equal(totalCredit) {
		return nil, nil, fmt.Errorf("%w: debits (%s) and credits (%s) must balance", apperrors.ErrValidation, totalDebit, totalCredit)
	}

	accounts, err := s.accountRepo.FindAccountsByIDs(ctx, accountIDs)
	if err != nil {
		return nil, nil, err
	}
	for _, id := range accountIDs {
		acc, ok := accounts[id]
		if !ok {
			return nil, nil, fmt.Errorf("%w: account %s not found", apperrors.ErrValidation, id)
		}
		if !acc.IsActive {
			return nil, nil, fmt.Errorf("%w: account %s is inactive", apperrors.ErrValidation, acc.Code)
		}
		if !acc.AcceptsPosting {
			return nil, nil, fmt.Errorf("%w: account %s is synthetic and does not accept postings", apperrors.ErrValidation, acc.Code)
		}
	}

	now := time.Now()
	entry := domain.JournalEntry{
		EntryID:     uuid.NewString(),
		EntryDate:   entryDate,
		Description: description,
		Origin:      origin,
		TitleID:     titleID,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	journalLines := make([]domain.JournalLine, len(lines))
	for i, line := range lines {
		journalLines[i] = domain.JournalLine{
			LineID:    uuid.NewString(),
			EntryID:   entry.EntryID,
			AccountID: line.AccountID,
			Amount:    line.Amount,
			LineType:  line.LineType,
			AuditFields: domain.AuditFields{
				CreatedAt:     now,
				CreatedBy:     userID,
				LastUpdatedAt: now,
				LastUpdatedBy: userID,
			},
		}
	}

	return &entry, journalLines, nil
}

// GetEntryByID retrieves an entry with its lines populated.
func (s *journalService) GetEntryByID(ctx context.Context, entryID string, userID string) (*domain.JournalEntry, error) {
	if err := s.AuthorizeUser(ctx, userID, domain.RoleViewer); err != nil {
		return nil, err
	}

	entry, err := s.journalRepo.FindEntryByID(ctx, entryID)
	if err != nil {
		return nil, err
	}
	lines, err := s.journalRepo.FindLinesByEntryID(ctx, entryID)
	if err != nil {
		return nil, err
	}
	entry.Lines = lines
	return entry, nil
}

// ListEntries pages through entries newest-first.
func (s *journalService) ListEntries(ctx context.Context, params dto.ListEntriesParams, userID string) (*dto.ListEntriesResponse, error) {
	if err := s.AuthorizeUser(ctx, userID, domain.RoleViewer); err != nil {
		return nil, err
	}

	entries, nextToken, err := s.journalRepo.ListEntries(ctx, params.Limit, params.NextToken)
	if err != nil {
		return nil, err
	}

	resp := &dto.ListEntriesResponse{
		Entries:   make([]dto.EntryResponse, len(entries)),
		NextToken: nextToken,
	}
	for i := range entries {
		resp.Entries[i] = dto.ToEntryResponse(&entries[i])
	}
	return resp, nil
}
