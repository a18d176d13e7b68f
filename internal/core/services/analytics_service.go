package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/tradetrack/tradetrack_backend/internal/core/domain"
	portsrepo "github.com/tradetrack/tradetrack_backend/internal/core/ports/repositories"
	portssvc "github.com/tradetrack/tradetrack_backend/internal/core/ports/services"
)

// ReportingCurrency is the single currency portfolio values are expressed in.
const ReportingCurrency = domain.CurrencyUSD

// analyticsService aggregates a user's balances and closed-trade outcomes.
type analyticsService struct {
	BaseService
	accountRepo portsrepo.AccountReader
	tradeRepo   portsrepo.TradeReader
	currencySvc portssvc.CurrencyConverterSvc
}

// NewAnalyticsService creates a new AnalyticsSvcFacade.
func NewAnalyticsService(accountRepo portsrepo.AccountReader, tradeRepo portsrepo.TradeReader, currencySvc portssvc.CurrencyConverterSvc) portssvc.AnalyticsSvcFacade {
	return &analyticsService{
		accountRepo: accountRepo,
		tradeRepo:   tradeRepo,
		currencySvc: currencySvc,
	}
}

var _ portssvc.AnalyticsSvcFacade = (*analyticsService)(nil)

func (s *analyticsService) GetPortfolioValue(ctx context.Context, userID string) (*domain.PortfolioValue, error) {
	accounts, err := s.accountRepo.ListAccountsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts for portfolio: %w", err)
	}

	total := decimal.Zero
	for _, account := range accounts {
		value := account.Balance
		if account.CurrencyCode != ReportingCurrency {
			// The cache stores rates multiplicatively (one unit of the base
			// into the quote), so dividing by the reporting->account rate
			// converts the balance into the reporting currency.
			rate := s.currencySvc.GetRate(ctx, ReportingCurrency, account.CurrencyCode)
			value = account.Balance.Div(rate)
		}
		total = total.Add(value)
	}

	s.LogDebug(ctx, "Portfolio value computed",
		slog.Int("accounts", len(accounts)),
		slog.String("total", total.String()))
	return &domain.PortfolioValue{
		TotalValue: total.Round(2),
		Currency:   ReportingCurrency,
	}, nil
}

func (s *analyticsService) GetTradingStats(ctx context.Context, userID string) (*domain.TradingStats, error) {
	closedTrades, err := s.tradeRepo.ListTradesByUser(ctx, userID, domain.TradeClosed)
	if err != nil {
		return nil, fmt.Errorf("failed to list closed trades: %w", err)
	}

	totalTrades := len(closedTrades)
	if totalTrades == 0 {
		return &domain.TradingStats{
			TotalTrades: 0,
			WinRate:     decimal.Zero,
			AvgWin:      "0.00",
			AvgLoss:     "0.00",
			ProfitLoss:  "0.00",
		}, nil
	}

	var (
		winCount, lossCount  int
		winSum, lossSum, sum decimal.Decimal
	)
	for _, trade := range closedTrades {
		pnl := decimal.Zero
		if trade.PnL != nil {
			pnl = *trade.PnL
		}
		sum = sum.Add(pnl)
		switch {
		case pnl.GreaterThan(decimal.Zero):
			winCount++
			winSum = winSum.Add(pnl)
		case pnl.LessThan(decimal.Zero):
			lossCount++
			lossSum = lossSum.Add(pnl)
		}
	}

	winRate := decimal.NewFromInt(int64(winCount)).
		Div(decimal.NewFromInt(int64(totalTrades))).
		Mul(decimal.NewFromInt(100)).
		Round(1)

	avgWin := "0.00"
	if winCount > 0 {
		avgWin = winSum.Div(decimal.NewFromInt(int64(winCount))).StringFixed(2)
	}
	avgLoss := "0.00"
	if lossCount > 0 {
		avgLoss = lossSum.Div(decimal.NewFromInt(int64(lossCount))).StringFixed(2)
	}

	return &domain.TradingStats{
		TotalTrades: totalTrades,
		WinRate:     winRate,
		AvgWin:      avgWin,
		AvgLoss:     avgLoss,
		ProfitLoss:  sum.StringFixed(2),
	}, nil
}
