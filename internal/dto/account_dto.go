package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/tradetrack/tradetrack_backend/internal/core/domain"
)

// CreateAccountRequest defines the structure for creating a new trading account.
type CreateAccountRequest struct {
	Name            string          `json:"name" binding:"required"`
	Broker          string          `json:"broker" binding:"required"`
	Market          string          `json:"market" binding:"required,oneof=forex crypto stocks"`
	CurrencyCode    string          `json:"currencyCode" binding:"required,supportedcurrency"`
	AccountType     string          `json:"accountType" binding:"required,oneof=main sub"`
	ParentAccountID *string         `json:"parentAccountID"`
	Balance         decimal.Decimal `json:"balance"`
	Leverage        int             `json:"leverage" binding:"omitempty,min=1"`
}

// AccountResponse defines the structure for API responses containing account details.
type AccountResponse struct {
	AccountID       string          `json:"accountID"`
	Name            string          `json:"name"`
	Broker          string          `json:"broker"`
	Market          string          `json:"market"`
	CurrencyCode    string          `json:"currencyCode"`
	AccountType     string          `json:"accountType"`
	ParentAccountID string          `json:"parentAccountID,omitempty"`
	Balance         decimal.Decimal `json:"balance"`
	Leverage        int             `json:"leverage"`
	IsActive        bool            `json:"isActive"`
	CreatedAt       time.Time       `json:"createdAt"`
}

// ToAccountResponse converts a domain.Account to an AccountResponse DTO.
func ToAccountResponse(account *domain.Account) AccountResponse {
	return AccountResponse{
		AccountID:       account.AccountID,
		Name:            account.Name,
		Broker:          account.Broker,
		Market:          account.Market,
		CurrencyCode:    account.CurrencyCode,
		AccountType:     string(account.AccountType),
		ParentAccountID: account.ParentAccountID,
		Balance:         account.Balance,
		Leverage:        account.Leverage,
		IsActive:        account.IsActive,
		CreatedAt:       account.CreatedAt,
	}
}

// ToListAccountResponse converts a slice of domain accounts to response DTOs.
func ToListAccountResponse(accounts []domain.Account) []AccountResponse {
	responses := make([]AccountResponse, len(accounts))
	for i := range accounts {
		responses[i] = ToAccountResponse(&accounts[i])
	}
	return responses
}
