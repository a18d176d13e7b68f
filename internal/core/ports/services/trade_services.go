package services

import (
	"context"

	"github.com/tradetrack/tradetrack_backend/internal/core/domain"
	"github.com/tradetrack/tradetrack_backend/internal/dto"
)

// TradeSvcFacade defines trade journal operations.
type TradeSvcFacade interface {
	// CreateTrade journals a new open or pending trade.
	CreateTrade(ctx context.Context, userID string, req dto.CreateTradeRequest) (*domain.Trade, error)
	// ListTrades retrieves the user's trades, optionally filtered by status.
	ListTrades(ctx context.Context, userID string, status domain.TradeStatus) ([]domain.Trade, error)
	// CloseTrade closes an open trade at the given exit price and records the
	// realized P&L. Closed trades are immutable.
	CloseTrade(ctx context.Context, userID, tradeID string, req dto.CloseTradeRequest) (*domain.Trade, error)
}
