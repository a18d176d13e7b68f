package domain

import (
	"github.com/shopspring/decimal"
)

// AccountType distinguishes a user's primary account from sub-accounts
// carved out of it.
type AccountType string

const (
	MainAccount AccountType = "main"
	SubAccount  AccountType = "sub"
)

// Supported account denominations. Currency is immutable after creation.
const (
	CurrencyUSD = "USD"
	CurrencyINR = "INR"
)

// Account represents a trading account within the core domain.
// Balance is kept with 2-decimal precision; leverage is the account-wide
// default applied to new positions.
type Account struct {
	AccountID       string          `json:"accountID"`
	UserID          string          `json:"userID"`
	Name            string          `json:"name"`
	Broker          string          `json:"broker"`
	Market          string          `json:"market"` // forex, crypto, stocks
	CurrencyCode    string          `json:"currencyCode"`
	AccountType     AccountType     `json:"accountType"`
	ParentAccountID string          `json:"parentAccountID"` // set only for sub-accounts
	Balance         decimal.Decimal `json:"balance"`
	Leverage        int             `json:"leverage"`
	IsActive        bool            `json:"isActive"`
	AuditFields
}
