package domain

import (
	"github.com/shopspring/decimal"
)

// PortfolioValue is a user's combined account balance expressed in a single
// reporting currency.
type PortfolioValue struct {
	TotalValue decimal.Decimal `json:"totalValue"`
	Currency   string          `json:"currency"`
}

// TradingStats summarises outcomes over a user's closed trades. AvgWin and
// AvgLoss are formatted with 2 decimals; AvgLoss retains its negative sign.
type TradingStats struct {
	TotalTrades int             `json:"totalTrades"`
	WinRate     decimal.Decimal `json:"winRate"`
	AvgWin      string          `json:"avgWin"`
	AvgLoss     string          `json:"avgLoss"`
	ProfitLoss  string          `json:"profitLoss"`
}
