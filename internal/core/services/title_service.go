package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Grupo02-6P/grupo02-sub001/internal/apperrors"
	"github.com/Grupo02-6P/grupo02-sub001/internal/core/domain"
	portsrepo "github.com/Grupo02-6P/grupo02-sub001/internal/core/ports/repositories"
	portssvc "github.com/Grupo02-6P/grupo02-sub001/internal/core/ports/services"
	"github.com/Grupo02-6P/grupo02-sub001/internal/dto"
	"github.com/google/uuid"
)

type titleService struct {
	BaseService
	titleRepo       portsrepo.TitleRepository
	accountRepo     portsrepo.AccountRepository
	journal         *journalService
	cashAccountCode string
}

// TitleServiceOption configures the title service.
type TitleServiceOption func(*titleService)

// WithTitleRoleAuthorizer wires the role check used before mutations.
func WithTitleRoleAuthorizer(authorizer portssvc.RoleAuthorizerSvc) TitleServiceOption {
	return func(s *titleService) {
		s.RoleAuthorizer = authorizer
	}
}

// NewTitleService creates the receivables/payables service. Settlement
// builds its entry through the journal service so the double-entry
// invariants hold for title-originated entries too, then persists entry and
// status change in a single transaction.
func NewTitleService(titleRepo portsrepo.TitleRepository, accountRepo portsrepo.AccountRepository, journal *journalService, cashAccountCode string, opts ...TitleServiceOption) portssvc.TitleSvcFacade {
	s := &titleService{
		titleRepo:       titleRepo,
		accountRepo:     accountRepo,
		journal:         journal,
		cashAccountCode: cashAccountCode,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ portssvc.TitleSvcFacade = (*titleService)(nil)

// CreateTitle registers a receivable or payable against a posting account.
func (s *titleService) CreateTitle(ctx context.Context, req dto.CreateTitleRequest, userID string) (*domain.Title, error) {
	if err := s.AuthorizeUser(ctx, userID, domain.RoleOperator); err != nil {
		return nil, err
	}
	if !req.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: title amount must be positive", apperrors.ErrValidation)
	}

	account, err := s.accountRepo.FindAccountByID(ctx, req.AccountID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: account %s not found", apperrors.ErrValidation, req.AccountID)
		}
		return nil, err
	}
	if !account.IsActive || !account.AcceptsPosting {
		return nil, fmt.Errorf("%w: account %s cannot receive title postings", apperrors.ErrValidation, account.Code)
	}

	now := time.Now()
	title := domain.Title{
		TitleID:      uuid.NewString(),
		Description:  req.Description,
		Counterparty: req.Counterparty,
		TitleType:    req.TitleType,
		AccountID:    req.AccountID,
		DueDate:      req.DueDate,
		Amount:       req.Amount,
		Status:       domain.TitleOpen,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.titleRepo.SaveTitle(ctx, title); err != nil {
		s.LogError(ctx, err, "Failed to save title", "title_id", title.TitleID)
		return nil, err
	}

	s.LogInfo(ctx, "Title created", "title_id", title.TitleID, "type", string(title.TitleType))
	return &title, nil
}

func (s *titleService) GetTitleByID(ctx context.Context, titleID string, userID string) (*domain.Title, error) {
	if err := s.AuthorizeUser(ctx, userID, domain.RoleViewer); err != nil {
		return nil, err
	}
	return s.titleRepo.FindTitleByID(ctx, titleID)
}

func (s *titleService) ListTitles(ctx context.Context, status *domain.TitleStatus, limit, offset int, userID string) ([]domain.Title, error) {
	if err := s.AuthorizeUser(ctx, userID, domain.RoleViewer); err != nil {
		return nil, err
	}
	return s.titleRepo.ListTitles(ctx, status, limit, offset)
}

// SettleTitle posts the settlement journal entry and marks the title
// SETTLED. Receivables debit the cash account and credit the title account;
// payables do the opposite.
func (s *titleService) SettleTitle(ctx context.Context, titleID string, settlementDate time.Time, userID string) (*domain.Title, error) {
	if err := s.AuthorizeUser(ctx, userID, domain.RoleOperator); err != nil {
		return nil, err
	}

	title, err := s.titleRepo.FindTitleByID(ctx, titleID)
	if err != nil {
		return nil, err
	}
	if title.Status != domain.TitleOpen {
		return nil, fmt.Errorf("%w: title %s is already settled", apperrors.ErrConflict, titleID)
	}

	cashAccount, err := s.accountRepo.FindAccountByCode(ctx, s.cashAccountCode)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: cash account %q is not configured in the chart", apperrors.ErrValidation, s.cashAccountCode)
		}
		return nil, err
	}

	cashLine := dto.CreateEntryLineRequest{AccountID: cashAccount.AccountID, Amount: title.Amount, LineType: domain.Debit}
	titleLine := dto.CreateEntryLineRequest{AccountID: title.AccountID, Amount: title.Amount, LineType: domain.Credit}
	if title.TitleType == domain.Payable {
		cashLine.LineType = domain.Credit
		titleLine.LineType = domain.Debit
	}

	description := fmt.Sprintf("Baixa de título: %s", title.Description)
	entry, lines, err := s.journal.buildEntry(ctx, settlementDate, description, domain.OriginTitle, &title.TitleID,
		[]dto.CreateEntryLineRequest{cashLine, titleLine}, userID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	title.Status = domain.TitleSettled
	title.SettledAt = &settlementDate
	title.EntryID = &entry.EntryID
	title.LastUpdatedAt = now
	title.LastUpdatedBy = userID

	// Entry and status change commit together; a failure leaves the title
	// OPEN with no settlement entry on the books.
	if err := s.titleRepo.SettleWithEntry(ctx, *title, *entry, lines); err != nil {
		s.LogError(ctx, err, "Failed to settle title", "title_id", titleID, "entry_id", entry.EntryID)
		return nil, err
	}

	s.LogInfo(ctx, "Title settled", "title_id", titleID, "entry_id", entry.EntryID)
	return title, nil
}
