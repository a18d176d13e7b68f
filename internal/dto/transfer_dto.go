package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/tradetrack/tradetrack_backend/internal/core/domain"
)

// CreateTransferRequest defines the structure for moving funds between two
// accounts. Amount is denominated in the source account's currency.
type CreateTransferRequest struct {
	FromAccountID string          `json:"fromAccountId" binding:"required"`
	ToAccountID   string          `json:"toAccountId" binding:"required"`
	Amount        decimal.Decimal `json:"amount" binding:"required"`
	CurrencyCode  string          `json:"currency" binding:"required,supportedcurrency"`
}

// TransferResponse defines the structure for API responses containing a
// completed fund transfer.
type TransferResponse struct {
	TransferID        string          `json:"transferID"`
	FromAccountID     string          `json:"fromAccountId"`
	ToAccountID       string          `json:"toAccountId"`
	Amount            decimal.Decimal `json:"amount"`
	CurrencyCode      string          `json:"currency"`
	ConvertedAmount   decimal.Decimal `json:"convertedAmount"`
	ConvertedCurrency string          `json:"convertedCurrency"`
	ExchangeRate      decimal.Decimal `json:"exchangeRate"`
	TransferTime      time.Time       `json:"transferTime"`
}

// ToTransferResponse converts a domain.FundTransfer to a TransferResponse DTO.
func ToTransferResponse(transfer *domain.FundTransfer) TransferResponse {
	return TransferResponse{
		TransferID:        transfer.TransferID,
		FromAccountID:     transfer.FromAccountID,
		ToAccountID:       transfer.ToAccountID,
		Amount:            transfer.Amount,
		CurrencyCode:      transfer.CurrencyCode,
		ConvertedAmount:   transfer.ConvertedAmount,
		ConvertedCurrency: transfer.ConvertedCurrency,
		ExchangeRate:      transfer.ExchangeRate,
		TransferTime:      transfer.TransferTime,
	}
}

// ToListTransferResponse converts a slice of domain transfers to response DTOs.
func ToListTransferResponse(transfers []domain.FundTransfer) []TransferResponse {
	responses := make([]TransferResponse, len(transfers))
	for i := range transfers {
		responses[i] = ToTransferResponse(&transfers[i])
	}
	return responses
}
