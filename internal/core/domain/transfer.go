package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// FundTransfer records a completed movement of funds between two accounts.
// ConvertedAmount = Amount * ExchangeRate; ExchangeRate is 1 when both
// accounts share a currency. Records are immutable once written.
type FundTransfer struct {
	TransferID        string          `json:"transferID"`
	UserID            string          `json:"userID"`
	FromAccountID     string          `json:"fromAccountID"`
	ToAccountID       string          `json:"toAccountID"`
	Amount            decimal.Decimal `json:"amount"` // in the source account currency
	CurrencyCode      string          `json:"currencyCode"`
	ConvertedAmount   decimal.Decimal `json:"convertedAmount"` // in the destination account currency
	ConvertedCurrency string          `json:"convertedCurrency"`
	ExchangeRate      decimal.Decimal `json:"exchangeRate"`
	TransferTime      time.Time       `json:"transferTime"`
}
