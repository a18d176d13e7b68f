package services

import (
	"github.com/shopspring/decimal"

	"github.com/tradetrack/tradetrack_backend/internal/core/domain"
)

// CalculationSvc exposes the pure trading calculators. Implementations hold
// no state and perform no I/O, so no context is threaded through.
type CalculationSvc interface {
	// CalculatePositionSize sizes a position so the given percentage of the
	// account is lost if the stop is hit.
	CalculatePositionSize(accountSize, riskPercentage, entryPrice, stopLoss decimal.Decimal, leverage int) (*domain.PositionSizeResult, error)
	// CalculateProfitLoss computes realized P&L for a filled position.
	CalculateProfitLoss(entryPrice, exitPrice, positionSize decimal.Decimal, direction domain.TradeDirection, leverage int) (*domain.ProfitLossResult, error)
	// CalculateRiskReward computes the risk/reward ratio between stop and target.
	CalculateRiskReward(entryPrice, stopLoss, takeProfit decimal.Decimal, direction domain.TradeDirection) (*domain.RiskRewardResult, error)
	// CalculateBreakevenWinRate returns the win rate needed to break even at
	// the given risk/reward ratio, as a percentage.
	CalculateBreakevenWinRate(riskRewardRatio decimal.Decimal) (decimal.Decimal, error)
	// CalculateLiquidationPrice estimates the liquidation level for a
	// leveraged position. A simplified single-factor approximation, not
	// exchange-accurate.
	CalculateLiquidationPrice(entryPrice decimal.Decimal, leverage int, direction domain.TradeDirection, maintenanceMarginPct decimal.Decimal) (decimal.Decimal, error)
}
