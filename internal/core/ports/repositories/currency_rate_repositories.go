package repositories

import (
	"context"

	"github.com/tradetrack/tradetrack_backend/internal/core/domain"
)

// CurrencyRateReader defines read operations for cached conversion rates.
type CurrencyRateReader interface {
	// FindRate retrieves the cache entry for an ordered currency pair.
	FindRate(ctx context.Context, fromCurrency, toCurrency string) (*domain.CurrencyRate, error)
}

// CurrencyRateWriter defines write operations for cached conversion rates.
type CurrencyRateWriter interface {
	// UpsertRate inserts or refreshes the cache entry for an ordered pair.
	// Last writer wins on rate and timestamp.
	UpsertRate(ctx context.Context, rate domain.CurrencyRate) error
}

// CurrencyRateRepositoryFacade combines all rate cache repository interfaces.
type CurrencyRateRepositoryFacade interface {
	CurrencyRateReader
	CurrencyRateWriter
}
