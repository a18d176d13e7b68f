package pgsql

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/tradetrack/tradetrack_backend/internal/core/domain"
	portsrepo "github.com/tradetrack/tradetrack_backend/internal/core/ports/repositories"
)

// PgxTransferRepository implements fund transfer persistence using pgxpool.
// Balance updates are delegated to the account repository so both sides of
// a transfer share the same locking discipline as every other balance write.
type PgxTransferRepository struct {
	BaseRepository
	accountRepo portsrepo.AccountTxOperator
}

// newPgxTransferRepository creates a new repository for fund transfers.
func newPgxTransferRepository(pool *pgxpool.Pool, accountRepo portsrepo.AccountTxOperator) portsrepo.TransferRepositoryFacade {
	return &PgxTransferRepository{
		BaseRepository: BaseRepository{Pool: pool},
		accountRepo:    accountRepo,
	}
}

var _ portsrepo.TransferRepositoryFacade = (*PgxTransferRepository)(nil)

const transferColumns = `transfer_id, user_id, from_account_id, to_account_id, amount, currency_code, converted_amount, converted_currency, exchange_rate, transfer_time`

// SaveTransfer persists the transfer record and applies both balance changes
// inside a single transaction. The source and destination rows are locked
// before either balance is touched, so a concurrent transfer against the same
// accounts serializes behind this one.
func (r *PgxTransferRepository) SaveTransfer(ctx context.Context, transfer domain.FundTransfer, balanceChanges map[string]decimal.Decimal) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction for transfer: %w", err)
	}
	defer func() {
		if rbErr := r.Rollback(ctx, tx); rbErr != nil {
			slog.ErrorContext(ctx, "Failed to rollback transfer transaction", "error", rbErr)
		}
	}()

	accountIDs := make([]string, 0, len(balanceChanges))
	for accountID := range balanceChanges {
		accountIDs = append(accountIDs, accountID)
	}
	if _, err := r.accountRepo.FindAccountsByIDsForUpdate(ctx, tx, accountIDs); err != nil {
		return fmt.Errorf("failed to lock accounts for transfer: %w", err)
	}

	if err := r.accountRepo.ApplyBalanceChangesInTx(ctx, tx, balanceChanges, transfer.TransferTime); err != nil {
		return fmt.Errorf("failed to apply balance changes for transfer: %w", err)
	}

	insertQuery := `
		INSERT INTO fund_transfers (` + transferColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err = tx.Exec(ctx, insertQuery,
		transfer.TransferID,
		transfer.UserID,
		transfer.FromAccountID,
		transfer.ToAccountID,
		transfer.Amount,
		transfer.CurrencyCode,
		transfer.ConvertedAmount,
		transfer.ConvertedCurrency,
		transfer.ExchangeRate,
		transfer.TransferTime,
	)
	if err != nil {
		return fmt.Errorf("failed to save transfer %s: %w", transfer.TransferID, err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return fmt.Errorf("failed to commit transfer transaction: %w", err)
	}
	return nil
}

// ListTransfersByUser retrieves a user's transfers, newest first.
func (r *PgxTransferRepository) ListTransfersByUser(ctx context.Context, userID string) ([]domain.FundTransfer, error) {
	query := `
		SELECT ` + transferColumns + `
		FROM fund_transfers
		WHERE user_id = $1
		ORDER BY transfer_time DESC;
	`
	rows, err := r.Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query transfers for user %s: %w", userID, err)
	}
	defer rows.Close()

	var transfers []domain.FundTransfer
	for rows.Next() {
		var t domain.FundTransfer
		err := rows.Scan(
			&t.TransferID,
			&t.UserID,
			&t.FromAccountID,
			&t.ToAccountID,
			&t.Amount,
			&t.CurrencyCode,
			&t.ConvertedAmount,
			&t.ConvertedCurrency,
			&t.ExchangeRate,
			&t.TransferTime,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transfer row: %w", err)
		}
		transfers = append(transfers, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating transfer rows: %w", err)
	}
	return transfers, nil
}
