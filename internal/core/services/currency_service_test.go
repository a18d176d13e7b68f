package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/tradetrack/tradetrack_backend/internal/apperrors"
	"github.com/tradetrack/tradetrack_backend/internal/core/domain"
	portssvc "github.com/tradetrack/tradetrack_backend/internal/core/ports/services"
	"github.com/tradetrack/tradetrack_backend/internal/core/services"
)

// MockCurrencyRateRepository is a mock type for the CurrencyRateRepositoryFacade interface
type MockCurrencyRateRepository struct {
	mock.Mock
}

func (m *MockCurrencyRateRepository) FindRate(ctx context.Context, fromCurrency, toCurrency string) (*domain.CurrencyRate, error) {
	args := m.Called(ctx, fromCurrency, toCurrency)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CurrencyRate), args.Error(1)
}

func (m *MockCurrencyRateRepository) UpsertRate(ctx context.Context, rate domain.CurrencyRate) error {
	args := m.Called(ctx, rate)
	return args.Error(0)
}

// MockRateProvider is a mock type for the RateProvider interface
type MockRateProvider struct {
	mock.Mock
}

func (m *MockRateProvider) FetchLatestRates(ctx context.Context, baseCurrency string) (map[string]decimal.Decimal, error) {
	args := m.Called(ctx, baseCurrency)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]decimal.Decimal), args.Error(1)
}

// --- Test Suite Setup ---

type CurrencyServiceTestSuite struct {
	suite.Suite
	mockRepo     *MockCurrencyRateRepository
	mockProvider *MockRateProvider
	service      portssvc.CurrencyConverterSvc
}

func (suite *CurrencyServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockCurrencyRateRepository)
	suite.mockProvider = new(MockRateProvider)
	suite.service = services.NewCurrencyService(suite.mockRepo, suite.mockProvider)
}

// --- Test Cases ---

func (suite *CurrencyServiceTestSuite) TestGetRate_IdenticalCurrencies() {
	rate := suite.service.GetRate(context.Background(), "USD", "USD")

	suite.True(rate.Equal(dec("1")))
	suite.mockRepo.AssertNotCalled(suite.T(), "FindRate")
	suite.mockProvider.AssertNotCalled(suite.T(), "FetchLatestRates")
}

func (suite *CurrencyServiceTestSuite) TestGetRate_FreshCacheHit() {
	ctx := context.Background()
	cached := &domain.CurrencyRate{
		RateID:       "rate-1",
		FromCurrency: "USD",
		ToCurrency:   "INR",
		Rate:         dec("83.24"),
		UpdatedAt:    time.Now().UTC().Add(-10 * time.Minute),
	}
	suite.mockRepo.On("FindRate", ctx, "USD", "INR").Return(cached, nil).Once()

	rate := suite.service.GetRate(ctx, "USD", "INR")

	suite.True(rate.Equal(dec("83.24")), "rate: %s", rate)
	suite.mockProvider.AssertNotCalled(suite.T(), "FetchLatestRates")
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CurrencyServiceTestSuite) TestGetRate_StaleCacheRefetches() {
	ctx := context.Background()
	cached := &domain.CurrencyRate{
		RateID:       "rate-1",
		FromCurrency: "USD",
		ToCurrency:   "INR",
		Rate:         dec("83.24"),
		UpdatedAt:    time.Now().UTC().Add(-2 * time.Hour),
	}
	suite.mockRepo.On("FindRate", ctx, "USD", "INR").Return(cached, nil).Once()
	suite.mockProvider.On("FetchLatestRates", ctx, "USD").
		Return(map[string]decimal.Decimal{"INR": dec("84.5")}, nil).Once()
	suite.mockRepo.On("UpsertRate", ctx, mock.MatchedBy(func(r domain.CurrencyRate) bool {
		return r.FromCurrency == "USD" && r.ToCurrency == "INR" && r.Rate.Equal(dec("84.5"))
	})).Return(nil).Once()

	rate := suite.service.GetRate(ctx, "USD", "INR")

	suite.True(rate.Equal(dec("84.5")), "rate: %s", rate)
	suite.mockRepo.AssertExpectations(suite.T())
	suite.mockProvider.AssertExpectations(suite.T())
}

func (suite *CurrencyServiceTestSuite) TestGetRate_ProviderDownFallsBackToStaleCache() {
	ctx := context.Background()
	cached := &domain.CurrencyRate{
		RateID:       "rate-1",
		FromCurrency: "USD",
		ToCurrency:   "INR",
		Rate:         dec("83.24"),
		UpdatedAt:    time.Now().UTC().Add(-2 * time.Hour),
	}
	suite.mockRepo.On("FindRate", ctx, "USD", "INR").Return(cached, nil).Once()
	suite.mockProvider.On("FetchLatestRates", ctx, "USD").
		Return(nil, errors.New("upstream timeout")).Once()

	rate := suite.service.GetRate(ctx, "USD", "INR")

	suite.True(rate.Equal(dec("83.24")), "rate: %s", rate)
}

func (suite *CurrencyServiceTestSuite) TestGetRate_ProviderDownNoCacheUsesStaticTable() {
	ctx := context.Background()
	suite.mockRepo.On("FindRate", ctx, "USD", "INR").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockProvider.On("FetchLatestRates", ctx, "USD").
		Return(nil, errors.New("upstream timeout")).Once()

	rate := suite.service.GetRate(ctx, "USD", "INR")

	suite.True(rate.Equal(dec("83.0")), "rate: %s", rate)
}

func (suite *CurrencyServiceTestSuite) TestGetRate_UnknownPairDefaultsToOne() {
	ctx := context.Background()
	suite.mockRepo.On("FindRate", ctx, "GBP", "JPY").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockProvider.On("FetchLatestRates", ctx, "GBP").
		Return(nil, errors.New("upstream timeout")).Once()

	rate := suite.service.GetRate(ctx, "GBP", "JPY")

	suite.True(rate.Equal(dec("1")), "rate: %s", rate)
}

func (suite *CurrencyServiceTestSuite) TestGetRate_NormalizesCase() {
	ctx := context.Background()
	cached := &domain.CurrencyRate{
		RateID:       "rate-1",
		FromCurrency: "USD",
		ToCurrency:   "INR",
		Rate:         dec("83.24"),
		UpdatedAt:    time.Now().UTC(),
	}
	suite.mockRepo.On("FindRate", ctx, "USD", "INR").Return(cached, nil).Once()

	rate := suite.service.GetRate(ctx, "usd", "inr")

	suite.True(rate.Equal(dec("83.24")), "rate: %s", rate)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CurrencyServiceTestSuite) TestGetRate_UpsertFailureStillReturnsFetchedRate() {
	ctx := context.Background()
	suite.mockRepo.On("FindRate", ctx, "USD", "INR").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockProvider.On("FetchLatestRates", ctx, "USD").
		Return(map[string]decimal.Decimal{"INR": dec("84.5")}, nil).Once()
	suite.mockRepo.On("UpsertRate", ctx, mock.AnythingOfType("domain.CurrencyRate")).
		Return(errors.New("db down")).Once()

	rate := suite.service.GetRate(ctx, "USD", "INR")

	suite.True(rate.Equal(dec("84.5")), "rate: %s", rate)
}

func (suite *CurrencyServiceTestSuite) TestConvert_AppliesRate() {
	ctx := context.Background()
	cached := &domain.CurrencyRate{
		RateID:       "rate-1",
		FromCurrency: "USD",
		ToCurrency:   "INR",
		Rate:         dec("83"),
		UpdatedAt:    time.Now().UTC(),
	}
	suite.mockRepo.On("FindRate", ctx, "USD", "INR").Return(cached, nil).Once()

	converted := suite.service.Convert(ctx, dec("10"), "USD", "INR")

	suite.True(converted.Equal(dec("830")), "converted: %s", converted)
}

func (suite *CurrencyServiceTestSuite) TestRefreshRate_BypassesFreshCache() {
	ctx := context.Background()
	suite.mockProvider.On("FetchLatestRates", ctx, "USD").
		Return(map[string]decimal.Decimal{"INR": dec("84.5")}, nil).Once()
	suite.mockRepo.On("UpsertRate", ctx, mock.AnythingOfType("domain.CurrencyRate")).Return(nil).Once()

	err := suite.service.RefreshRate(ctx, "USD", "INR")

	suite.Require().NoError(err)
	suite.mockRepo.AssertNotCalled(suite.T(), "FindRate")
	suite.mockProvider.AssertExpectations(suite.T())
}

func (suite *CurrencyServiceTestSuite) TestRefreshRate_ReportsProviderFailure() {
	ctx := context.Background()
	suite.mockProvider.On("FetchLatestRates", ctx, "USD").
		Return(nil, errors.New("upstream timeout")).Once()

	err := suite.service.RefreshRate(ctx, "USD", "INR")

	suite.Error(err)
}

func TestCurrencyServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CurrencyServiceTestSuite))
}
