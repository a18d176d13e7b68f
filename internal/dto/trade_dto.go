package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/tradetrack/tradetrack_backend/internal/core/domain"
)

// CreateTradeRequest defines the structure for journaling a new trade.
type CreateTradeRequest struct {
	AccountID      string           `json:"accountID" binding:"required"`
	Symbol         string           `json:"symbol" binding:"required"`
	Direction      string           `json:"direction" binding:"required,oneof=long short"`
	Market         string           `json:"market" binding:"required,oneof=forex crypto stocks"`
	EntryPrice     decimal.Decimal  `json:"entryPrice" binding:"required"`
	StopLoss       *decimal.Decimal `json:"stopLoss"`
	TakeProfit     *decimal.Decimal `json:"takeProfit"`
	PositionSize   decimal.Decimal  `json:"positionSize" binding:"required"`
	Leverage       int              `json:"leverage" binding:"omitempty,min=1"`
	RiskPercentage *decimal.Decimal `json:"riskPercentage"`
	Status         string           `json:"status" binding:"omitempty,oneof=open pending"`
	Notes          string           `json:"notes"`
}

// CloseTradeRequest defines the structure for closing an open trade.
type CloseTradeRequest struct {
	ExitPrice decimal.Decimal `json:"exitPrice" binding:"required"`
}

// TradeResponse defines the structure for API responses containing trade details.
type TradeResponse struct {
	TradeID      string           `json:"tradeID"`
	AccountID    string           `json:"accountID"`
	Symbol       string           `json:"symbol"`
	Direction    string           `json:"direction"`
	Market       string           `json:"market"`
	EntryPrice   decimal.Decimal  `json:"entryPrice"`
	ExitPrice    *decimal.Decimal `json:"exitPrice,omitempty"`
	StopLoss     *decimal.Decimal `json:"stopLoss,omitempty"`
	TakeProfit   *decimal.Decimal `json:"takeProfit,omitempty"`
	PositionSize decimal.Decimal  `json:"positionSize"`
	Leverage     int              `json:"leverage"`
	PnL          *decimal.Decimal `json:"pnl,omitempty"`
	CurrencyCode string           `json:"currencyCode"`
	Status       string           `json:"status"`
	EntryTime    time.Time        `json:"entryTime"`
	ExitTime     *time.Time       `json:"exitTime,omitempty"`
	Notes        string           `json:"notes,omitempty"`
}

// ToTradeResponse converts a domain.Trade to a TradeResponse DTO.
func ToTradeResponse(trade *domain.Trade) TradeResponse {
	return TradeResponse{
		TradeID:      trade.TradeID,
		AccountID:    trade.AccountID,
		Symbol:       trade.Symbol,
		Direction:    string(trade.Direction),
		Market:       trade.Market,
		EntryPrice:   trade.EntryPrice,
		ExitPrice:    trade.ExitPrice,
		StopLoss:     trade.StopLoss,
		TakeProfit:   trade.TakeProfit,
		PositionSize: trade.PositionSize,
		Leverage:     trade.Leverage,
		PnL:          trade.PnL,
		CurrencyCode: trade.CurrencyCode,
		Status:       string(trade.Status),
		EntryTime:    trade.EntryTime,
		ExitTime:     trade.ExitTime,
		Notes:        trade.Notes,
	}
}

// ToListTradeResponse converts a slice of domain trades to response DTOs.
func ToListTradeResponse(trades []domain.Trade) []TradeResponse {
	responses := make([]TradeResponse, len(trades))
	for i := range trades {
		responses[i] = ToTradeResponse(&trades[i])
	}
	return responses
}
