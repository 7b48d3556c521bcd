package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Grupo02-6P/grupo02-sub001/internal/apperrors"
	"github.com/Grupo02-6P/grupo02-sub001/internal/core/domain"
	portsrepo "github.com/Grupo02-6P/grupo02-sub001/internal/core/ports/repositories"
	portssvc "github.com/Grupo02-6P/grupo02-sub001/internal/core/ports/services"
	"github.com/Grupo02-6P/grupo02-sub001/internal/dto"
	"github.com/google/uuid"
)

type accountService struct {
	BaseService
	accountRepo portsrepo.AccountRepository
}

// AccountServiceOption configures the account service.
type AccountServiceOption func(*accountService)

// WithAccountRoleAuthorizer wires the role check used before mutations.
func WithAccountRoleAuthorizer(authorizer portssvc.RoleAuthorizerSvc) AccountServiceOption {
	return func(s *accountService) {
		s.RoleAuthorizer = authorizer
	}
}

// NewAccountService creates the chart-of-accounts service.
func NewAccountService(accountRepo portsrepo.AccountRepository, opts ...AccountServiceOption) portssvc.AccountSvcFacade {
	s := &accountService{accountRepo: accountRepo}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ portssvc.AccountSvcFacade = (*accountService)(nil)

// validRoots are the admissible first code segments.
var validRoots = map[string]bool{
	domain.RootAtivo:      true,
	domain.RootPassivo:    true,
	domain.RootPatrimonio: true,
	domain.RootReceita:    true,
	domain.RootDespesa:    true,
}

// CreateAccount validates hierarchical consistency and persists the account.
// The code must descend from a valid root; a non-root code requires a parent
// whose code is the immediate prefix, and only synthetic (non-posting)
// accounts may have children.
func (s *accountService) CreateAccount(ctx context.Context, req dto.CreateAccountRequest, userID string) (*domain.Account, error) {
	if err := s.AuthorizeUser(ctx, userID, domain.RoleOperator); err != nil {
		return nil, err
	}

	code := strings.TrimSpace(req.Code)
	segments := strings.Split(code, domain.CodeSegmentSep)
	for _, seg := range segments {
		if seg == "" {
			return nil, fmt.Errorf("%w: malformed account code %q", apperrors.ErrValidation, code)
		}
	}
	if !validRoots[segments[0]] {
		return nil, fmt.Errorf("%w: account code %q must descend from roots 1-5", apperrors.ErrValidation, code)
	}

	var parentID string
	if len(segments) == 1 {
		if req.ParentAccountID != nil {
			return nil, fmt.Errorf("%w: root account %q cannot have a parent", apperrors.ErrValidation, code)
		}
	} else {
		if req.ParentAccountID == nil {
			return nil, fmt.Errorf("%w: non-root account %q requires a parent", apperrors.ErrValidation, code)
		}
		parent, err := s.accountRepo.FindAccountByID(ctx, *req.ParentAccountID)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, fmt.Errorf("%w: parent account %s not found", apperrors.ErrValidation, *req.ParentAccountID)
			}
			return nil, err
		}
		wantParentCode := strings.Join(segments[:len(segments)-1], domain.CodeSegmentSep)
		if parent.Code != wantParentCode {
			return nil, fmt.Errorf("%w: code %q does not descend from parent code %q", apperrors.ErrValidation, code, parent.Code)
		}
		if parent.AcceptsPosting {
			return nil, fmt.Errorf("%w: parent account %q accepts postings and cannot have children", apperrors.ErrValidation, parent.Code)
		}
		parentID = parent.AccountID
	}

	if existing, err := s.accountRepo.FindAccountByCode(ctx, code); err == nil && existing != nil {
		return nil, fmt.Errorf("%w: account code %q already in use", apperrors.ErrDuplicate, code)
	} else if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}

	now := time.Now()
	account := domain.Account{
		AccountID:       uuid.NewString(),
		Code:            code,
		Name:            req.Name,
		ParentAccountID: parentID,
		AcceptsPosting:  req.AcceptsPosting,
		IsActive:        true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.accountRepo.SaveAccount(ctx, account); err != nil {
		s.LogError(ctx, err, "Failed to save account", "code", code)
		return nil, err
	}

	s.LogInfo(ctx, "Account created", "account_id", account.AccountID, "code", code)
	return &account, nil
}

func (s *accountService) GetAccountByID(ctx context.Context, accountID string, userID string) (*domain.Account, error) {
	if err := s.AuthorizeUser(ctx, userID, domain.RoleViewer); err != nil {
		return nil, err
	}
	return s.accountRepo.FindAccountByID(ctx, accountID)
}

func (s *accountService) GetAccountsByIDs(ctx context.Context, accountIDs []string, userID string) (map[string]domain.Account, error) {
	if err := s.AuthorizeUser(ctx, userID, domain.RoleViewer); err != nil {
		return nil, err
	}
	return s.accountRepo.FindAccountsByIDs(ctx, accountIDs)
}

func (s *accountService) ListAccounts(ctx context.Context, limit int, offset int, userID string) ([]domain.Account, error) {
	if err := s.AuthorizeUser(ctx, userID, domain.RoleViewer); err != nil {
		return nil, err
	}
	return s.accountRepo.ListAccounts(ctx, limit, offset)
}

func (s *accountService) UpdateAccount(ctx context.Context, accountID string, req dto.UpdateAccountRequest, userID string) (*domain.Account, error) {
	if err := s.AuthorizeUser(ctx, userID, domain.RoleOperator); err != nil {
		return nil, err
	}

	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		account.Name = *req.Name
	}
	if req.IsActive != nil {
		account.IsActive = *req.IsActive
	}
	account.LastUpdatedAt = time.Now()
	account.LastUpdatedBy = userID

	if err := s.accountRepo.UpdateAccount(ctx, *account); err != nil {
		s.LogError(ctx, err, "Failed to update account", "account_id", accountID)
		return nil, err
	}
	return account, nil
}

func (s *accountService) DeactivateAccount(ctx context.Context, accountID string, userID string) error {
	inactive := false
	_, err := s.UpdateAccount(ctx, accountID, dto.UpdateAccountRequest{IsActive: &inactive}, userID)
	return err
}
