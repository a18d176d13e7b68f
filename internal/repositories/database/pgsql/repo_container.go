package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/tradetrack/tradetrack_backend/internal/core/ports/repositories"
)

// NewRepositoryProvider wires the pgx-backed repositories against a shared
// connection pool.
func NewRepositoryProvider(pool *pgxpool.Pool) *portsrepo.RepositoryProvider {
	accountRepo := newPgxAccountRepository(pool)
	return &portsrepo.RepositoryProvider{
		AccountRepo:  accountRepo,
		TradeRepo:    newPgxTradeRepository(pool),
		RateRepo:     newPgxCurrencyRateRepository(pool),
		TransferRepo: newPgxTransferRepository(pool, accountRepo),
	}
}
