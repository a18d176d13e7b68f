package dto

import (
	"github.com/shopspring/decimal"
)

// RateResponse defines the structure for exchange rate lookups.
type RateResponse struct {
	Rate decimal.Decimal `json:"rate"`
	From string          `json:"from"`
	To   string          `json:"to"`
}
