package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tradetrack/tradetrack_backend/internal/apperrors"
	"github.com/tradetrack/tradetrack_backend/internal/core/domain"
	portsprov "github.com/tradetrack/tradetrack_backend/internal/core/ports/providers"
	portsrepo "github.com/tradetrack/tradetrack_backend/internal/core/ports/repositories"
	portssvc "github.com/tradetrack/tradetrack_backend/internal/core/ports/services"
)

// DefaultRateCacheTTL is the staleness window for cached conversion rates.
const DefaultRateCacheTTL = time.Hour

// fallbackRates is the built-in static table used when both the provider and
// the cache come up empty. Approximate values for the supported pairs.
var fallbackRates = map[string]decimal.Decimal{
	"USD_INR": decimal.NewFromFloat(83.0),
	"INR_USD": decimal.NewFromFloat(0.012),
}

// currencyService resolves conversion rates through a cache-then-provider
// chain. Rate resolution never fails outwardly: a stale cache entry, the
// static fallback table, or 1 is always returned instead of an error.
type currencyService struct {
	BaseService
	rateRepo portsrepo.CurrencyRateRepositoryFacade
	provider portsprov.RateProvider
	cacheTTL time.Duration

	// pairLocks serializes fetch+upsert per ordered pair so concurrent
	// misses don't race each other's upserts. Last writer wins on the
	// cached value either way.
	mu        sync.Mutex
	pairLocks map[string]*sync.Mutex
}

// CurrencyServiceOption is a functional option for configuring the currency service.
type CurrencyServiceOption func(*currencyService)

// WithRateCacheTTL overrides the staleness window for cached rates.
func WithRateCacheTTL(ttl time.Duration) CurrencyServiceOption {
	return func(s *currencyService) {
		if ttl > 0 {
			s.cacheTTL = ttl
		}
	}
}

// NewCurrencyService creates a new CurrencyConverterSvc.
func NewCurrencyService(rateRepo portsrepo.CurrencyRateRepositoryFacade, provider portsprov.RateProvider, options ...CurrencyServiceOption) portssvc.CurrencyConverterSvc {
	svc := &currencyService{
		rateRepo:  rateRepo,
		provider:  provider,
		cacheTTL:  DefaultRateCacheTTL,
		pairLocks: make(map[string]*sync.Mutex),
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.CurrencyConverterSvc = (*currencyService)(nil)

func pairKey(from, to string) string {
	return from + "_" + to
}

func (s *currencyService) lockPair(key string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	lock, ok := s.pairLocks[key]
	if !ok {
		lock = &sync.Mutex{}
		s.pairLocks[key] = lock
	}
	return lock
}

func (s *currencyService) GetRate(ctx context.Context, fromCurrency, toCurrency string) decimal.Decimal {
	from := strings.ToUpper(fromCurrency)
	to := strings.ToUpper(toCurrency)

	if from == to {
		return decimal.NewFromInt(1)
	}

	cached, err := s.rateRepo.FindRate(ctx, from, to)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		s.LogWarn(ctx, "Rate cache read failed, treating as miss",
			slog.String("from", from), slog.String("to", to), slog.String("error", err.Error()))
	}
	if cached != nil && time.Since(cached.UpdatedAt) < s.cacheTTL {
		return cached.Rate
	}

	fresh, err := s.fetchAndCache(ctx, from, to)
	if err == nil {
		return fresh
	}
	// Provider unavailable: resolved internally, logged for observability only.
	s.LogWarn(ctx, "Rate provider unavailable, falling back",
		slog.String("from", from), slog.String("to", to), slog.String("error", err.Error()))

	if cached != nil {
		return cached.Rate
	}
	return staticFallbackRate(from, to)
}

func (s *currencyService) Convert(ctx context.Context, amount decimal.Decimal, fromCurrency, toCurrency string) decimal.Decimal {
	return amount.Mul(s.GetRate(ctx, fromCurrency, toCurrency))
}

// RefreshRate forces a provider fetch for the pair, bypassing the staleness
// window. Unlike GetRate, it reports the provider failure to the caller.
func (s *currencyService) RefreshRate(ctx context.Context, fromCurrency, toCurrency string) error {
	from := strings.ToUpper(fromCurrency)
	to := strings.ToUpper(toCurrency)
	if from == to {
		return nil
	}
	_, err := s.fetchAndCache(ctx, from, to)
	return err
}

// fetchAndCache retrieves a fresh rate from the provider and upserts the
// cache entry under the pair lock.
func (s *currencyService) fetchAndCache(ctx context.Context, from, to string) (decimal.Decimal, error) {
	lock := s.lockPair(pairKey(from, to))
	lock.Lock()
	defer lock.Unlock()

	rates, err := s.provider.FetchLatestRates(ctx, from)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to fetch rates for base %s: %w", from, err)
	}

	rate, ok := rates[to]
	if !ok {
		return decimal.Zero, fmt.Errorf("rate for %s not present in provider response for base %s", to, from)
	}
	if rate.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero, fmt.Errorf("provider returned non-positive rate %s for %s/%s", rate, from, to)
	}

	entry := domain.CurrencyRate{
		RateID:       uuid.NewString(),
		FromCurrency: from,
		ToCurrency:   to,
		Rate:         rate,
		UpdatedAt:    time.Now().UTC(),
	}
	if err := s.rateRepo.UpsertRate(ctx, entry); err != nil {
		// The fetched rate is still good for this caller; the next one
		// retries the upsert.
		s.LogWarn(ctx, "Failed to cache exchange rate",
			slog.String("from", from), slog.String("to", to), slog.String("error", err.Error()))
	}

	return rate, nil
}

// staticFallbackRate answers from the built-in table, inverting the reverse
// pair when only that is known, and defaulting to 1 for unknown pairs.
func staticFallbackRate(from, to string) decimal.Decimal {
	if rate, ok := fallbackRates[pairKey(from, to)]; ok {
		return rate
	}
	if reverse, ok := fallbackRates[pairKey(to, from)]; ok {
		return decimal.NewFromInt(1).Div(reverse)
	}
	return decimal.NewFromInt(1)
}
