package services

import (
	"context"
	"errors"
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

// tradeService implements the trade journal. Realized P&L is computed
// through the calculation engine when a trade is closed and never mutated
// afterwards.
type tradeService struct {
	BaseService
	tradeRepo      portsrepo.TradeRepositoryFacade
	accountSvc     portssvc.AccountReaderSvc
	calculationSvc portssvc.CalculationSvc
}

// NewTradeService creates a new TradeSvcFacade.
func NewTradeService(tradeRepo portsrepo.TradeRepositoryFacade, accountSvc portssvc.AccountReaderSvc, calculationSvc portssvc.CalculationSvc) portssvc.TradeSvcFacade {
	return &tradeService{
		tradeRepo:      tradeRepo,
		accountSvc:     accountSvc,
		calculationSvc: calculationSvc,
	}
}

var _ portssvc.TradeSvcFacade = (*tradeService)(nil)

func (s *tradeService) CreateTrade(ctx context.Context, userID string, req dto.CreateTradeRequest) (*domain.Trade, error) {
	if req.EntryPrice.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: entry price must be positive", apperrors.ErrValidation)
	}
	if req.PositionSize.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: position size must be positive", apperrors.ErrValidation)
	}

	account, err := s.accountSvc.GetAccountByID(ctx, userID, req.AccountID)
	if err != nil {
		return nil, fmt.Errorf("trade account: %w", err)
	}

	status := domain.TradeStatus(req.Status)
	if status == "" {
		status = domain.TradeOpen
	}

	leverage := req.Leverage
	if leverage == 0 {
		leverage = account.Leverage
	}

	now := time.Now().UTC()
	trade := domain.Trade{
		TradeID:        uuid.NewString(),
		UserID:         userID,
		AccountID:      account.AccountID,
		Symbol:         req.Symbol,
		Direction:      domain.TradeDirection(req.Direction),
		Market:         req.Market,
		EntryPrice:     req.EntryPrice,
		StopLoss:       req.StopLoss,
		TakeProfit:     req.TakeProfit,
		PositionSize:   req.PositionSize,
		Leverage:       leverage,
		RiskPercentage: req.RiskPercentage,
		CurrencyCode:   account.CurrencyCode,
		Status:         status,
		EntryTime:      now,
		Notes:          req.Notes,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	if err := s.tradeRepo.SaveTrade(ctx, trade); err != nil {
		s.LogError(ctx, err, "Failed to save trade", slog.String("symbol", req.Symbol))
		return nil, fmt.Errorf("failed to create trade: %w", err)
	}

	s.LogInfo(ctx, "Trade journaled",
		slog.String("trade_id", trade.TradeID),
		slog.String("symbol", trade.Symbol),
		slog.String("status", string(trade.Status)))
	return &trade, nil
}

func (s *tradeService) ListTrades(ctx context.Context, userID string, status domain.TradeStatus) ([]domain.Trade, error) {
	trades, err := s.tradeRepo.ListTradesByUser(ctx, userID, status)
	if err != nil {
		return nil, fmt.Errorf("failed to list trades: %w", err)
	}
	return trades, nil
}

func (s *tradeService) CloseTrade(ctx context.Context, userID, tradeID string, req dto.CloseTradeRequest) (*domain.Trade, error) {
	if req.ExitPrice.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: exit price must be positive", apperrors.ErrValidation)
	}

	trade, err := s.tradeRepo.FindTradeByID(ctx, tradeID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find trade", slog.String("trade_id", tradeID))
		}
		return nil, fmt.Errorf("failed to find trade %s: %w", tradeID, err)
	}
	if trade.UserID != userID {
		return nil, apperrors.ErrNotFound
	}
	if trade.Status == domain.TradeClosed {
		return nil, fmt.Errorf("%w: trade is already closed", apperrors.ErrValidation)
	}

	result, err := s.calculationSvc.CalculateProfitLoss(trade.EntryPrice, req.ExitPrice, trade.PositionSize, trade.Direction, trade.Leverage)
	if err != nil {
		return nil, fmt.Errorf("failed to compute realized pnl: %w", err)
	}

	now := time.Now().UTC()
	pnl := result.ProfitLoss
	trade.ExitPrice = &req.ExitPrice
	trade.ExitTime = &now
	trade.PnL = &pnl
	trade.Status = domain.TradeClosed
	trade.LastUpdatedAt = now

	if err := s.tradeRepo.CloseTrade(ctx, *trade); err != nil {
		s.LogError(ctx, err, "Failed to close trade", slog.String("trade_id", tradeID))
		return nil, fmt.Errorf("failed to close trade: %w", err)
	}

	s.LogInfo(ctx, "Trade closed",
		slog.String("trade_id", trade.TradeID),
		slog.String("pnl", pnl.String()))
	return trade, nil
}
