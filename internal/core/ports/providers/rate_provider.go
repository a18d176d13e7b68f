package providers

import (
	"context"

	"github.com/shopspring/decimal"
)

// RateProvider is the outbound port for an external FX rate service.
// Implementations must bound their own request timeouts; any failure
// (unreachable, malformed response, missing currency) is returned as an
// error and resolved by the caller's fallback chain.
type RateProvider interface {
	// FetchLatestRates returns the latest conversion rates from baseCurrency
	// into every currency the provider knows, keyed by currency code.
	FetchLatestRates(ctx context.Context, baseCurrency string) (map[string]decimal.Decimal, error)
}
