package services

import (
	"context"

	"github.com/tradetrack/tradetrack_backend/internal/core/domain"
	"github.com/tradetrack/tradetrack_backend/internal/dto"
)

// TransferSvcFacade defines fund transfer operations between a user's accounts.
type TransferSvcFacade interface {
	// Transfer moves funds between two of the user's accounts, converting
	// across currencies when they differ. The debit, credit and ledger record
	// are applied atomically.
	Transfer(ctx context.Context, userID string, req dto.CreateTransferRequest) (*domain.FundTransfer, error)
	// ListTransfers retrieves the user's transfer history, newest first.
	ListTransfers(ctx context.Context, userID string) ([]domain.FundTransfer, error)
}
