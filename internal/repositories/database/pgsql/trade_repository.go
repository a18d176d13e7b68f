package pgsql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/tradetrack/tradetrack_backend/internal/apperrors"
	"github.com/tradetrack/tradetrack_backend/internal/core/domain"
	portsrepo "github.com/tradetrack/tradetrack_backend/internal/core/ports/repositories"
)

// PgxTradeRepository implements trade persistence using pgxpool.
type PgxTradeRepository struct {
	BaseRepository
}

// newPgxTradeRepository creates a new repository for trade data.
func newPgxTradeRepository(pool *pgxpool.Pool) portsrepo.TradeRepositoryFacade {
	return &PgxTradeRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.TradeRepositoryFacade = (*PgxTradeRepository)(nil)

const tradeColumns = `trade_id, user_id, account_id, symbol, direction, market, entry_price, exit_price, stop_loss, take_profit, position_size, leverage, risk_percentage, pnl, currency_code, status, entry_time, exit_time, notes, created_at, last_updated_at`

func scanTrade(row pgx.Row) (*domain.Trade, error) {
	var t domain.Trade
	var exitPrice, stopLoss, takeProfit, riskPct, pnl decimal.NullDecimal
	var exitTime sql.NullTime
	err := row.Scan(
		&t.TradeID,
		&t.UserID,
		&t.AccountID,
		&t.Symbol,
		&t.Direction,
		&t.Market,
		&t.EntryPrice,
		&exitPrice,
		&stopLoss,
		&takeProfit,
		&t.PositionSize,
		&t.Leverage,
		&riskPct,
		&pnl,
		&t.CurrencyCode,
		&t.Status,
		&t.EntryTime,
		&exitTime,
		&t.Notes,
		&t.CreatedAt,
		&t.LastUpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if exitPrice.Valid {
		t.ExitPrice = &exitPrice.Decimal
	}
	if stopLoss.Valid {
		t.StopLoss = &stopLoss.Decimal
	}
	if takeProfit.Valid {
		t.TakeProfit = &takeProfit.Decimal
	}
	if riskPct.Valid {
		t.RiskPercentage = &riskPct.Decimal
	}
	if pnl.Valid {
		t.PnL = &pnl.Decimal
	}
	if exitTime.Valid {
		t.ExitTime = &exitTime.Time
	}
	return &t, nil
}

// SaveTrade inserts a new trade.
func (r *PgxTradeRepository) SaveTrade(ctx context.Context, trade domain.Trade) error {
	query := `
		INSERT INTO trades (` + tradeColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21);
	`
	_, err := r.Pool.Exec(ctx, query,
		trade.TradeID,
		trade.UserID,
		trade.AccountID,
		trade.Symbol,
		trade.Direction,
		trade.Market,
		trade.EntryPrice,
		trade.ExitPrice,
		trade.StopLoss,
		trade.TakeProfit,
		trade.PositionSize,
		trade.Leverage,
		trade.RiskPercentage,
		trade.PnL,
		trade.CurrencyCode,
		trade.Status,
		trade.EntryTime,
		trade.ExitTime,
		trade.Notes,
		trade.CreatedAt,
		trade.LastUpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save trade %s: %w", trade.TradeID, err)
	}
	return nil
}

// FindTradeByID retrieves a trade by its ID.
func (r *PgxTradeRepository) FindTradeByID(ctx context.Context, tradeID string) (*domain.Trade, error) {
	query := `SELECT ` + tradeColumns + ` FROM trades WHERE trade_id = $1;`

	trade, err := scanTrade(r.Pool.QueryRow(ctx, query, tradeID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find trade by ID %s: %w", tradeID, err)
	}
	return trade, nil
}

// ListTradesByUser retrieves a user's trades, newest first, optionally
// filtered by status.
func (r *PgxTradeRepository) ListTradesByUser(ctx context.Context, userID string, status domain.TradeStatus) ([]domain.Trade, error) {
	query := `SELECT ` + tradeColumns + ` FROM trades WHERE user_id = $1`
	args := []any{userID}
	if status != "" {
		query += ` AND status = $2`
		args = append(args, status)
	}
	query += ` ORDER BY entry_time DESC;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query trades for user %s: %w", userID, err)
	}
	defer rows.Close()

	var trades []domain.Trade
	for rows.Next() {
		trade, err := scanTrade(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan trade row: %w", err)
		}
		trades = append(trades, *trade)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating trade rows: %w", err)
	}
	return trades, nil
}

// CloseTrade marks a trade closed with its exit price, time and realized
// pnl. Trades already closed are not touched: pnl is immutable once set.
func (r *PgxTradeRepository) CloseTrade(ctx context.Context, trade domain.Trade) error {
	query := `
		UPDATE trades
		SET exit_price = $2, exit_time = $3, pnl = $4, status = $5, last_updated_at = $6
		WHERE trade_id = $1 AND status != 'closed';
	`
	ct, err := r.Pool.Exec(ctx, query,
		trade.TradeID,
		trade.ExitPrice,
		trade.ExitTime,
		trade.PnL,
		domain.TradeClosed,
		trade.LastUpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to close trade %s: %w", trade.TradeID, err)
	}
	if ct.RowsAffected() == 0 {
		return fmt.Errorf("%w: trade %s not open", apperrors.ErrNotFound, trade.TradeID)
	}
	return nil
}
