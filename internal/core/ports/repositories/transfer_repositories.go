package repositories

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/tradetrack/tradetrack_backend/internal/core/domain"
)

// TransferWriter defines write operations for fund transfers.
type TransferWriter interface {
	// SaveTransfer persists the transfer record and applies both balance
	// changes as a single atomic unit. Either all three writes commit or
	// none do.
	SaveTransfer(ctx context.Context, transfer domain.FundTransfer, balanceChanges map[string]decimal.Decimal) error
}

// TransferReader defines read operations for fund transfers.
type TransferReader interface {
	// ListTransfersByUser retrieves a user's transfers, newest first.
	ListTransfersByUser(ctx context.Context, userID string) ([]domain.FundTransfer, error)
}

// TransferRepositoryFacade combines all transfer-related repository interfaces.
type TransferRepositoryFacade interface {
	TransferReader
	TransferWriter
}
