package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TradeStatus is the lifecycle state of a trade.
type TradeStatus string

const (
	TradeOpen    TradeStatus = "open"
	TradePending TradeStatus = "pending"
	TradeClosed  TradeStatus = "closed"
)

// Trade represents a single journaled position. PnL is nil until the trade
// is closed; once set it is never mutated.
type Trade struct {
	TradeID        string           `json:"tradeID"`
	UserID         string           `json:"userID"`
	AccountID      string           `json:"accountID"`
	Symbol         string           `json:"symbol"`
	Direction      TradeDirection   `json:"direction"`
	Market         string           `json:"market"`
	EntryPrice     decimal.Decimal  `json:"entryPrice"`
	ExitPrice      *decimal.Decimal `json:"exitPrice,omitempty"`
	StopLoss       *decimal.Decimal `json:"stopLoss,omitempty"`
	TakeProfit     *decimal.Decimal `json:"takeProfit,omitempty"`
	PositionSize   decimal.Decimal  `json:"positionSize"` // in standard lots
	Leverage       int              `json:"leverage"`
	RiskPercentage *decimal.Decimal `json:"riskPercentage,omitempty"`
	PnL            *decimal.Decimal `json:"pnl,omitempty"`
	CurrencyCode   string           `json:"currencyCode"`
	Status         TradeStatus      `json:"status"`
	EntryTime      time.Time        `json:"entryTime"`
	ExitTime       *time.Time       `json:"exitTime,omitempty"`
	Notes          string           `json:"notes"`
	AuditFields
}
