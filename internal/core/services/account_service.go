package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tradetrack/tradetrack_backend/internal/apperrors"
	"github.com/tradetrack/tradetrack_backend/internal/core/domain"
	portsrepo "github.com/tradetrack/tradetrack_backend/internal/core/ports/repositories"
	portssvc "github.com/tradetrack/tradetrack_backend/internal/core/ports/services"
	"github.com/tradetrack/tradetrack_backend/internal/dto"
)

// accountService implements account management. Currency is fixed at
// creation; balances are only mutated through the transfer ledger.
type accountService struct {
	BaseService
	accountRepo portsrepo.AccountRepositoryFacade
}

// NewAccountService creates a new AccountSvcFacade.
func NewAccountService(accountRepo portsrepo.AccountRepositoryFacade) portssvc.AccountSvcFacade {
	return &accountService{
		accountRepo: accountRepo,
	}
}

var _ portssvc.AccountSvcFacade = (*accountService)(nil)

func (s *accountService) CreateAccount(ctx context.Context, userID string, req dto.CreateAccountRequest) (*domain.Account, error) {
	if req.Balance.LessThan(decimal.Zero) {
		return nil, fmt.Errorf("%w: starting balance cannot be negative", apperrors.ErrValidation)
	}

	accountType := domain.AccountType(req.AccountType)

	parentID := ""
	if req.ParentAccountID != nil && *req.ParentAccountID != "" {
		if accountType != domain.SubAccount {
			return nil, fmt.Errorf("%w: only sub accounts can reference a parent account", apperrors.ErrValidation)
		}
		parent, err := s.accountRepo.FindAccountByID(ctx, *req.ParentAccountID)
		if err != nil {
			return nil, fmt.Errorf("invalid parent account: %w", err)
		}
		if parent.UserID != userID {
			// Obscure the existence of other users' accounts.
			return nil, fmt.Errorf("invalid parent account: %w", apperrors.ErrNotFound)
		}
		parentID = parent.AccountID
	} else if accountType == domain.SubAccount {
		return nil, fmt.Errorf("%w: sub accounts require a parent account", apperrors.ErrValidation)
	}

	leverage := req.Leverage
	if leverage == 0 {
		leverage = 1
	}

	now := time.Now().UTC()
	account := domain.Account{
		AccountID:       uuid.NewString(),
		UserID:          userID,
		Name:            req.Name,
		Broker:          req.Broker,
		Market:          req.Market,
		CurrencyCode:    req.CurrencyCode,
		AccountType:     accountType,
		ParentAccountID: parentID,
		Balance:         req.Balance.Round(2),
		Leverage:        leverage,
		IsActive:        true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	if err := s.accountRepo.SaveAccount(ctx, account); err != nil {
		s.LogError(ctx, err, "Failed to save account", slog.String("account_name", req.Name))
		return nil, fmt.Errorf("failed to create account: %w", err)
	}

	s.LogInfo(ctx, "Account created", slog.String("account_id", account.AccountID))
	return &account, nil
}

func (s *accountService) GetAccountByID(ctx context.Context, userID, accountID string) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find account", slog.String("account_id", accountID))
		}
		return nil, fmt.Errorf("failed to find account %s: %w", accountID, err)
	}
	if account.UserID != userID {
		// Obscure the existence of other users' accounts.
		return nil, apperrors.ErrNotFound
	}
	return account, nil
}

func (s *accountService) ListAccounts(ctx context.Context, userID string) ([]domain.Account, error) {
	accounts, err := s.accountRepo.ListAccountsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	return accounts, nil
}
