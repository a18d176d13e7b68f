package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/tradetrack/tradetrack_backend/internal/apperrors"
	"github.com/tradetrack/tradetrack_backend/internal/core/domain"
	portssvc "github.com/tradetrack/tradetrack_backend/internal/core/ports/services"
	"github.com/tradetrack/tradetrack_backend/internal/core/services"
	"github.com/tradetrack/tradetrack_backend/internal/dto"
)

// MockTradeRepository is a mock type for the TradeRepositoryFacade interface
type MockTradeRepository struct {
	mock.Mock
}

func (m *MockTradeRepository) SaveTrade(ctx context.Context, trade domain.Trade) error {
	args := m.Called(ctx, trade)
	return args.Error(0)
}

func (m *MockTradeRepository) FindTradeByID(ctx context.Context, tradeID string) (*domain.Trade, error) {
	args := m.Called(ctx, tradeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Trade), args.Error(1)
}

func (m *MockTradeRepository) ListTradesByUser(ctx context.Context, userID string, status domain.TradeStatus) ([]domain.Trade, error) {
	args := m.Called(ctx, userID, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Trade), args.Error(1)
}

func (m *MockTradeRepository) CloseTrade(ctx context.Context, trade domain.Trade) error {
	args := m.Called(ctx, trade)
	return args.Error(0)
}

// MockAccountReaderSvc is a mock type for the AccountReaderSvc interface
type MockAccountReaderSvc struct {
	mock.Mock
}

func (m *MockAccountReaderSvc) GetAccountByID(ctx context.Context, userID, accountID string) (*domain.Account, error) {
	args := m.Called(ctx, userID, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountReaderSvc) ListAccounts(ctx context.Context, userID string) ([]domain.Account, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

// --- Test Suite Setup ---

type TradeServiceTestSuite struct {
	suite.Suite
	mockRepo       *MockTradeRepository
	mockAccountSvc *MockAccountReaderSvc
	service        portssvc.TradeSvcFacade
	userID         string
	account        *domain.Account
}

func (suite *TradeServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockTradeRepository)
	suite.mockAccountSvc = new(MockAccountReaderSvc)
	suite.service = services.NewTradeService(suite.mockRepo, suite.mockAccountSvc, services.NewCalculationService())
	suite.userID = uuid.NewString()
	suite.account = &domain.Account{
		AccountID:    uuid.NewString(),
		UserID:       suite.userID,
		CurrencyCode: domain.CurrencyUSD,
		Leverage:     30,
	}
}

// --- Test Cases ---

func (suite *TradeServiceTestSuite) TestCreateTrade_Success() {
	ctx := context.Background()
	req := dto.CreateTradeRequest{
		AccountID:    suite.account.AccountID,
		Symbol:       "EURUSD",
		Direction:    string(domain.Long),
		Market:       "forex",
		EntryPrice:   dec("1.0845"),
		PositionSize: dec("0.17"),
	}

	suite.mockAccountSvc.On("GetAccountByID", ctx, suite.userID, suite.account.AccountID).Return(suite.account, nil).Once()
	suite.mockRepo.On("SaveTrade", ctx, mock.AnythingOfType("domain.Trade")).Return(nil).Once()

	trade, err := suite.service.CreateTrade(ctx, suite.userID, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(trade)
	suite.NotEmpty(trade.TradeID)
	suite.Equal(domain.TradeOpen, trade.Status)
	// Leverage and currency come from the account when the request omits them.
	suite.Equal(30, trade.Leverage)
	suite.Equal(domain.CurrencyUSD, trade.CurrencyCode)
	suite.Nil(trade.PnL)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *TradeServiceTestSuite) TestCreateTrade_ForeignAccountReadsAsNotFound() {
	ctx := context.Background()
	req := dto.CreateTradeRequest{
		AccountID:    suite.account.AccountID,
		Symbol:       "EURUSD",
		Direction:    string(domain.Long),
		Market:       "forex",
		EntryPrice:   dec("1.0845"),
		PositionSize: dec("0.17"),
	}

	suite.mockAccountSvc.On("GetAccountByID", ctx, suite.userID, suite.account.AccountID).
		Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.CreateTrade(ctx, suite.userID, req)

	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveTrade")
}

func (suite *TradeServiceTestSuite) TestCreateTrade_NonPositiveEntryPrice() {
	ctx := context.Background()
	req := dto.CreateTradeRequest{
		AccountID:    suite.account.AccountID,
		Symbol:       "EURUSD",
		Direction:    string(domain.Long),
		Market:       "forex",
		EntryPrice:   dec("0"),
		PositionSize: dec("0.17"),
	}

	_, err := suite.service.CreateTrade(ctx, suite.userID, req)

	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *TradeServiceTestSuite) TestCloseTrade_Success() {
	ctx := context.Background()
	tradeID := uuid.NewString()
	open := &domain.Trade{
		TradeID:      tradeID,
		UserID:       suite.userID,
		AccountID:    suite.account.AccountID,
		Symbol:       "EURUSD",
		Direction:    domain.Long,
		EntryPrice:   dec("1.0845"),
		PositionSize: dec("1"),
		Leverage:     1,
		Status:       domain.TradeOpen,
		EntryTime:    time.Now().UTC().Add(-time.Hour),
	}

	suite.mockRepo.On("FindTradeByID", ctx, tradeID).Return(open, nil).Once()
	suite.mockRepo.On("CloseTrade", ctx, mock.MatchedBy(func(t domain.Trade) bool {
		return t.Status == domain.TradeClosed && t.PnL != nil && t.ExitPrice != nil
	})).Return(nil).Once()

	closed, err := suite.service.CloseTrade(ctx, suite.userID, tradeID, dto.CloseTradeRequest{ExitPrice: dec("1.0945")})

	suite.Require().NoError(err)
	suite.Equal(domain.TradeClosed, closed.Status)
	suite.Require().NotNil(closed.PnL)
	suite.True(closed.PnL.Equal(dec("922.08")), "pnl: %s", closed.PnL)
	suite.Require().NotNil(closed.ExitPrice)
	suite.True(closed.ExitPrice.Equal(dec("1.0945")))
	suite.NotNil(closed.ExitTime)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *TradeServiceTestSuite) TestCloseTrade_AlreadyClosed() {
	ctx := context.Background()
	tradeID := uuid.NewString()
	pnl := dec("100")
	closed := &domain.Trade{
		TradeID:      tradeID,
		UserID:       suite.userID,
		Direction:    domain.Long,
		EntryPrice:   dec("1.0845"),
		PositionSize: dec("1"),
		Leverage:     1,
		PnL:          &pnl,
		Status:       domain.TradeClosed,
	}

	suite.mockRepo.On("FindTradeByID", ctx, tradeID).Return(closed, nil).Once()

	_, err := suite.service.CloseTrade(ctx, suite.userID, tradeID, dto.CloseTradeRequest{ExitPrice: dec("1.0945")})

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "CloseTrade")
}

func (suite *TradeServiceTestSuite) TestCloseTrade_ForeignTradeReadsAsNotFound() {
	ctx := context.Background()
	tradeID := uuid.NewString()
	foreign := &domain.Trade{
		TradeID:      tradeID,
		UserID:       uuid.NewString(),
		Direction:    domain.Long,
		EntryPrice:   dec("1.0845"),
		PositionSize: dec("1"),
		Leverage:     1,
		Status:       domain.TradeOpen,
	}

	suite.mockRepo.On("FindTradeByID", ctx, tradeID).Return(foreign, nil).Once()

	_, err := suite.service.CloseTrade(ctx, suite.userID, tradeID, dto.CloseTradeRequest{ExitPrice: dec("1.0945")})

	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *TradeServiceTestSuite) TestListTrades_PassesStatusFilter() {
	ctx := context.Background()
	suite.mockRepo.On("ListTradesByUser", ctx, suite.userID, domain.TradeClosed).
		Return([]domain.Trade{}, nil).Once()

	_, err := suite.service.ListTrades(ctx, suite.userID, domain.TradeClosed)

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func TestTradeServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TradeServiceTestSuite))
}
