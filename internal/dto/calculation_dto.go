package dto

import (
	"github.com/shopspring/decimal"
)

// PositionSizeRequest defines the inputs for the position sizing calculator.
// Leverage defaults to 1 when omitted.
type PositionSizeRequest struct {
	AccountSize    decimal.Decimal `json:"accountSize" binding:"required"`
	RiskPercentage decimal.Decimal `json:"riskPercentage" binding:"required"`
	EntryPrice     decimal.Decimal `json:"entryPrice" binding:"required"`
	StopLoss       decimal.Decimal `json:"stopLoss" binding:"required"`
	Leverage       int             `json:"leverage" binding:"omitempty,min=1"`
}

// ProfitLossRequest defines the inputs for the P&L calculator.
type ProfitLossRequest struct {
	EntryPrice   decimal.Decimal `json:"entryPrice" binding:"required"`
	ExitPrice    decimal.Decimal `json:"exitPrice" binding:"required"`
	PositionSize decimal.Decimal `json:"positionSize" binding:"required"`
	Direction    string          `json:"direction" binding:"required,oneof=long short"`
	Leverage     int             `json:"leverage" binding:"omitempty,min=1"`
}

// RiskRewardRequest defines the inputs for the risk/reward calculator.
type RiskRewardRequest struct {
	EntryPrice decimal.Decimal `json:"entryPrice" binding:"required"`
	StopLoss   decimal.Decimal `json:"stopLoss" binding:"required"`
	TakeProfit decimal.Decimal `json:"takeProfit" binding:"required"`
	Direction  string          `json:"direction" binding:"required,oneof=long short"`
}

// RiskRewardResponse is the risk/reward result, extended with the win rate
// needed to break even at that ratio.
type RiskRewardResponse struct {
	Ratio            string          `json:"ratio"`
	RiskPips         decimal.Decimal `json:"riskPips"`
	RewardPips       decimal.Decimal `json:"rewardPips"`
	BreakevenWinRate decimal.Decimal `json:"breakevenWinRate"`
}

// LiquidationPriceRequest defines the inputs for the liquidation price
// estimator. MaintenanceMarginPct defaults to 0.5 when omitted.
type LiquidationPriceRequest struct {
	EntryPrice           decimal.Decimal `json:"entryPrice" binding:"required"`
	Leverage             int             `json:"leverage" binding:"required,min=1"`
	Direction            string          `json:"direction" binding:"required,oneof=long short"`
	MaintenanceMarginPct decimal.Decimal `json:"maintenanceMarginPct"`
}

// LiquidationPriceResponse carries the estimated liquidation level.
type LiquidationPriceResponse struct {
	LiquidationPrice decimal.Decimal `json:"liquidationPrice"`
}
