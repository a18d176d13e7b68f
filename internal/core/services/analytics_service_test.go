package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"github.com/tradetrack/tradetrack_backend/internal/core/domain"
	portssvc "github.com/tradetrack/tradetrack_backend/internal/core/ports/services"
	"github.com/tradetrack/tradetrack_backend/internal/core/services"
)

type AnalyticsServiceTestSuite struct {
	suite.Suite
	mockAccountRepo *MockAccountRepository
	mockTradeRepo   *MockTradeRepository
	mockCurrencySvc *MockCurrencyConverterSvc
	service         portssvc.AnalyticsSvcFacade
	userID          string
}

func (suite *AnalyticsServiceTestSuite) SetupTest() {
	suite.mockAccountRepo = new(MockAccountRepository)
	suite.mockTradeRepo = new(MockTradeRepository)
	suite.mockCurrencySvc = new(MockCurrencyConverterSvc)
	suite.service = services.NewAnalyticsService(suite.mockAccountRepo, suite.mockTradeRepo, suite.mockCurrencySvc)
	suite.userID = uuid.NewString()
}

func pnlPtr(s string) *domain.Trade {
	pnl := dec(s)
	return &domain.Trade{
		Status: domain.TradeClosed,
		PnL:    &pnl,
	}
}

// --- Portfolio value ---

func (suite *AnalyticsServiceTestSuite) TestGetPortfolioValue_ConvertsIntoUSD() {
	ctx := context.Background()
	accounts := []domain.Account{
		{AccountID: "a1", UserID: suite.userID, CurrencyCode: domain.CurrencyUSD, Balance: dec("2000")},
		{AccountID: "a2", UserID: suite.userID, CurrencyCode: domain.CurrencyINR, Balance: dec("83000")},
	}

	suite.mockAccountRepo.On("ListAccountsByUser", ctx, suite.userID).Return(accounts, nil).Once()
	suite.mockCurrencySvc.On("GetRate", ctx, domain.CurrencyUSD, domain.CurrencyINR).Return(dec("83")).Once()

	value, err := suite.service.GetPortfolioValue(ctx, suite.userID)

	suite.Require().NoError(err)
	suite.True(value.TotalValue.Equal(dec("3000")), "total: %s", value.TotalValue)
	suite.Equal(domain.CurrencyUSD, value.Currency)
}

func (suite *AnalyticsServiceTestSuite) TestGetPortfolioValue_NoAccounts() {
	ctx := context.Background()
	suite.mockAccountRepo.On("ListAccountsByUser", ctx, suite.userID).Return([]domain.Account{}, nil).Once()

	value, err := suite.service.GetPortfolioValue(ctx, suite.userID)

	suite.Require().NoError(err)
	suite.True(value.TotalValue.IsZero())
	suite.mockCurrencySvc.AssertNotCalled(suite.T(), "GetRate")
}

// --- Trading stats ---

func (suite *AnalyticsServiceTestSuite) TestGetTradingStats_NoClosedTrades() {
	ctx := context.Background()
	suite.mockTradeRepo.On("ListTradesByUser", ctx, suite.userID, domain.TradeClosed).
		Return([]domain.Trade{}, nil).Once()

	stats, err := suite.service.GetTradingStats(ctx, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(0, stats.TotalTrades)
	suite.True(stats.WinRate.IsZero())
	suite.Equal("0.00", stats.AvgWin)
	suite.Equal("0.00", stats.AvgLoss)
	suite.Equal("0.00", stats.ProfitLoss)
}

func (suite *AnalyticsServiceTestSuite) TestGetTradingStats_MixedOutcomes() {
	ctx := context.Background()
	trades := []domain.Trade{*pnlPtr("100"), *pnlPtr("50"), *pnlPtr("-50")}
	suite.mockTradeRepo.On("ListTradesByUser", ctx, suite.userID, domain.TradeClosed).
		Return(trades, nil).Once()

	stats, err := suite.service.GetTradingStats(ctx, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(3, stats.TotalTrades)
	suite.True(stats.WinRate.Equal(dec("66.7")), "win rate: %s", stats.WinRate)
	suite.Equal("75.00", stats.AvgWin)
	suite.Equal("-50.00", stats.AvgLoss)
	suite.Equal("100.00", stats.ProfitLoss)
}

func (suite *AnalyticsServiceTestSuite) TestGetTradingStats_BreakevenTradeCountsAsNeither() {
	ctx := context.Background()
	trades := []domain.Trade{*pnlPtr("100"), *pnlPtr("0")}
	suite.mockTradeRepo.On("ListTradesByUser", ctx, suite.userID, domain.TradeClosed).
		Return(trades, nil).Once()

	stats, err := suite.service.GetTradingStats(ctx, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(2, stats.TotalTrades)
	// One win out of two trades; the flat trade is not a win.
	suite.True(stats.WinRate.Equal(dec("50")), "win rate: %s", stats.WinRate)
	suite.Equal("0.00", stats.AvgLoss)
}

func TestAnalyticsServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AnalyticsServiceTestSuite))
}
