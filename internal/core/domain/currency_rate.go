package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// CurrencyRate is a cached directional conversion rate. At most one entry
// exists per ordered (from, to) pair; Rate converts one unit of FromCurrency
// into ToCurrency units and is always positive.
type CurrencyRate struct {
	RateID       string          `json:"rateID"`
	FromCurrency string          `json:"fromCurrency"`
	ToCurrency   string          `json:"toCurrency"`
	Rate         decimal.Decimal `json:"rate"`
	UpdatedAt    time.Time       `json:"updatedAt"`
}
