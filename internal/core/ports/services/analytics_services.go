package services

import (
	"context"

	"github.com/tradetrack/tradetrack_backend/internal/core/domain"
)

// AnalyticsSvcFacade defines aggregate read-only reporting over a user's
// accounts and closed trades.
type AnalyticsSvcFacade interface {
	// GetPortfolioValue converts every account balance into the reporting
	// currency (USD) and sums them.
	GetPortfolioValue(ctx context.Context, userID string) (*domain.PortfolioValue, error)
	// GetTradingStats computes win rate and P&L statistics over closed trades.
	GetTradingStats(ctx context.Context, userID string) (*domain.TradingStats, error)
}
