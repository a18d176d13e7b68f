package services

import (
	"context"

	"github.com/shopspring/decimal"
)

// CurrencyConverterSvc resolves directional conversion rates between currency
// codes. Resolution never fails outwardly: stale cache entries and a static
// fallback table guarantee a usable rate even when the upstream provider is
// unavailable.
type CurrencyConverterSvc interface {
	// GetRate returns the conversion rate from one currency into another.
	// Identical codes return 1 without any lookup.
	GetRate(ctx context.Context, fromCurrency, toCurrency string) decimal.Decimal
	// Convert applies GetRate to an amount.
	Convert(ctx context.Context, amount decimal.Decimal, fromCurrency, toCurrency string) decimal.Decimal
	// RefreshRate forces a provider fetch for the pair, bypassing the
	// staleness window. Used by the background refresh job.
	RefreshRate(ctx context.Context, fromCurrency, toCurrency string) error
}
