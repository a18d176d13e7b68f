package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tradetrack/tradetrack_backend/internal/apperrors"
	"github.com/tradetrack/tradetrack_backend/internal/core/domain"
	portsrepo "github.com/tradetrack/tradetrack_backend/internal/core/ports/repositories"
)

// PgxCurrencyRateRepository implements the rate cache using pgxpool.
type PgxCurrencyRateRepository struct {
	BaseRepository
}

// newPgxCurrencyRateRepository creates a new repository for cached rates.
func newPgxCurrencyRateRepository(pool *pgxpool.Pool) portsrepo.CurrencyRateRepositoryFacade {
	return &PgxCurrencyRateRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.CurrencyRateRepositoryFacade = (*PgxCurrencyRateRepository)(nil)

// FindRate retrieves the cache entry for an ordered currency pair.
func (r *PgxCurrencyRateRepository) FindRate(ctx context.Context, fromCurrency, toCurrency string) (*domain.CurrencyRate, error) {
	query := `
		SELECT rate_id, from_currency, to_currency, rate, updated_at
		FROM currency_rates
		WHERE from_currency = $1 AND to_currency = $2;
	`
	var rate domain.CurrencyRate
	err := r.Pool.QueryRow(ctx, query, fromCurrency, toCurrency).Scan(
		&rate.RateID,
		&rate.FromCurrency,
		&rate.ToCurrency,
		&rate.Rate,
		&rate.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find rate %s->%s: %w", fromCurrency, toCurrency, err)
	}
	return &rate, nil
}

// UpsertRate inserts or refreshes the cache entry for an ordered pair.
// The unique constraint on (from_currency, to_currency) keeps one row per
// pair; last writer wins on rate and timestamp.
func (r *PgxCurrencyRateRepository) UpsertRate(ctx context.Context, rate domain.CurrencyRate) error {
	query := `
		INSERT INTO currency_rates (rate_id, from_currency, to_currency, rate, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (from_currency, to_currency)
		DO UPDATE SET rate = EXCLUDED.rate, updated_at = EXCLUDED.updated_at;
	`
	_, err := r.Pool.Exec(ctx, query,
		rate.RateID,
		rate.FromCurrency,
		rate.ToCurrency,
		rate.Rate,
		rate.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert rate %s->%s: %w", rate.FromCurrency, rate.ToCurrency, err)
	}
	return nil
}
