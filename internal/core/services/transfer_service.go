package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tradetrack/tradetrack_backend/internal/apperrors"
	"github.com/tradetrack/tradetrack_backend/internal/core/domain"
	portsrepo "github.com/tradetrack/tradetrack_backend/internal/core/ports/repositories"
	portssvc "github.com/tradetrack/tradetrack_backend/internal/core/ports/services"
	"github.com/tradetrack/tradetrack_backend/internal/dto"
)

// transferService moves funds between a user's accounts, converting across
// currencies when they differ. The debit, credit and ledger record are
// persisted as one atomic unit by the repository.
type transferService struct {
	BaseService
	transferRepo portsrepo.TransferRepositoryFacade
	accountSvc   portssvc.AccountReaderSvc
	currencySvc  portssvc.CurrencyConverterSvc
}

// NewTransferService creates a new TransferSvcFacade.
func NewTransferService(transferRepo portsrepo.TransferRepositoryFacade, accountSvc portssvc.AccountReaderSvc, currencySvc portssvc.CurrencyConverterSvc) portssvc.TransferSvcFacade {
	return &transferService{
		transferRepo: transferRepo,
		accountSvc:   accountSvc,
		currencySvc:  currencySvc,
	}
}

var _ portssvc.TransferSvcFacade = (*transferService)(nil)

func (s *transferService) Transfer(ctx context.Context, userID string, req dto.CreateTransferRequest) (*domain.FundTransfer, error) {
	if req.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: transfer amount must be positive", apperrors.ErrValidation)
	}
	if req.FromAccountID == req.ToAccountID {
		return nil, fmt.Errorf("%w: source and destination accounts must differ", apperrors.ErrValidation)
	}

	// Ownership is checked by the account service; foreign accounts read as
	// not found.
	fromAccount, err := s.accountSvc.GetAccountByID(ctx, userID, req.FromAccountID)
	if err != nil {
		return nil, fmt.Errorf("source account: %w", err)
	}
	toAccount, err := s.accountSvc.GetAccountByID(ctx, userID, req.ToAccountID)
	if err != nil {
		return nil, fmt.Errorf("destination account: %w", err)
	}

	// The stated currency must match the source account: the debit is always
	// denominated in the source currency.
	if req.CurrencyCode != fromAccount.CurrencyCode {
		return nil, fmt.Errorf("%w: transfer currency %s does not match source account currency %s",
			apperrors.ErrValidation, req.CurrencyCode, fromAccount.CurrencyCode)
	}

	exchangeRate := decimal.NewFromInt(1)
	convertedAmount := req.Amount
	if fromAccount.CurrencyCode != toAccount.CurrencyCode {
		exchangeRate = s.currencySvc.GetRate(ctx, fromAccount.CurrencyCode, toAccount.CurrencyCode)
		// Balances carry 2-decimal precision; the credited amount is rounded
		// to match.
		convertedAmount = req.Amount.Mul(exchangeRate).Round(2)
	}

	transfer := domain.FundTransfer{
		TransferID:        uuid.NewString(),
		UserID:            userID,
		FromAccountID:     fromAccount.AccountID,
		ToAccountID:       toAccount.AccountID,
		Amount:            req.Amount,
		CurrencyCode:      fromAccount.CurrencyCode,
		ConvertedAmount:   convertedAmount,
		ConvertedCurrency: toAccount.CurrencyCode,
		ExchangeRate:      exchangeRate,
		TransferTime:      time.Now().UTC(),
	}

	// Overdraft is currently permitted: no non-negative check on the source
	// balance after debit.
	balanceChanges := map[string]decimal.Decimal{
		fromAccount.AccountID: req.Amount.Neg(),
		toAccount.AccountID:   convertedAmount,
	}

	if err := s.transferRepo.SaveTransfer(ctx, transfer, balanceChanges); err != nil {
		s.LogError(ctx, err, "Failed to persist fund transfer",
			slog.String("from_account", fromAccount.AccountID),
			slog.String("to_account", toAccount.AccountID))
		return nil, fmt.Errorf("failed to save transfer: %w", err)
	}

	s.LogInfo(ctx, "Fund transfer completed",
		slog.String("transfer_id", transfer.TransferID),
		slog.String("from_account", fromAccount.AccountID),
		slog.String("to_account", toAccount.AccountID),
		slog.String("amount", req.Amount.String()),
		slog.String("exchange_rate", exchangeRate.String()))
	return &transfer, nil
}

func (s *transferService) ListTransfers(ctx context.Context, userID string) ([]domain.FundTransfer, error) {
	transfers, err := s.transferRepo.ListTransfersByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list transfers: %w", err)
	}
	return transfers, nil
}
