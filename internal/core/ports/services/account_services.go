package services

import (
	"context"

	"github.com/tradetrack/tradetrack_backend/internal/core/domain"
	"github.com/tradetrack/tradetrack_backend/internal/dto"
)

// AccountReaderSvc defines read-only account operations.
type AccountReaderSvc interface {
	// GetAccountByID retrieves one of the user's accounts. Accounts owned by
	// other users are reported as not found.
	GetAccountByID(ctx context.Context, userID, accountID string) (*domain.Account, error)
	// ListAccounts retrieves all of the user's active accounts.
	ListAccounts(ctx context.Context, userID string) ([]domain.Account, error)
}

// AccountSvcFacade combines account operations exposed to handlers and to
// other services.
type AccountSvcFacade interface {
	AccountReaderSvc
	// CreateAccount creates a trading account for the user.
	CreateAccount(ctx context.Context, userID string, req dto.CreateAccountRequest) (*domain.Account, error)
}
