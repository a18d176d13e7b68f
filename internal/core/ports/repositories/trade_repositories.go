package repositories

import (
	"context"

	"github.com/tradetrack/tradetrack_backend/internal/core/domain"
)

// TradeReader defines read operations for trade data.
type TradeReader interface {
	// FindTradeByID retrieves a trade by its ID.
	FindTradeByID(ctx context.Context, tradeID string) (*domain.Trade, error)
	// ListTradesByUser retrieves a user's trades, newest first. status filters
	// by lifecycle state when non-empty.
	ListTradesByUser(ctx context.Context, userID string, status domain.TradeStatus) ([]domain.Trade, error)
}

// TradeWriter defines write operations for trade data.
type TradeWriter interface {
	// SaveTrade persists a new trade.
	SaveTrade(ctx context.Context, trade domain.Trade) error
	// CloseTrade marks a trade closed with its exit price, time and realized pnl.
	CloseTrade(ctx context.Context, trade domain.Trade) error
}

// TradeRepositoryFacade combines all trade-related repository interfaces.
type TradeRepositoryFacade interface {
	TradeReader
	TradeWriter
}
