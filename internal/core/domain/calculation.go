package domain

import (
	"github.com/shopspring/decimal"
)

// PositionSizeResult is the output of the position sizing calculation.
// PositionSize is expressed in standard lots, all monetary values in the
// account currency, rounded to 2 decimals (Pips to 1).
type PositionSizeResult struct {
	PositionSize   decimal.Decimal `json:"positionSize"`
	RiskAmount     decimal.Decimal `json:"riskAmount"`
	PipValue       decimal.Decimal `json:"pipValue"`
	Pips           decimal.Decimal `json:"pips"`
	LeverageUsed   int             `json:"leverageUsed"`
	MarginRequired decimal.Decimal `json:"marginRequired"`
}

// ProfitLossResult is the output of the P&L calculation. Percentage is the
// return on margin actually committed, not on notional.
type ProfitLossResult struct {
	ProfitLoss decimal.Decimal `json:"profitLoss"`
	Pips       decimal.Decimal `json:"pips"`
	Percentage decimal.Decimal `json:"percentage"`
}

// RiskRewardResult is the output of the risk/reward calculation. Ratio is
// formatted as "1:X.XX". BreakevenWinRate is derived from the exact ratio,
// not the rounded pips.
type RiskRewardResult struct {
	Ratio            string          `json:"ratio"`
	RiskPips         decimal.Decimal `json:"riskPips"`
	RewardPips       decimal.Decimal `json:"rewardPips"`
	BreakevenWinRate decimal.Decimal `json:"breakevenWinRate"`
}
