package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/SscSPs/ifrs_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/ifrs_ledger/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// PgxLedgerRepository aggregates posted ledger lines.
type PgxLedgerRepository struct {
	BaseRepository
}

func newPgxLedgerRepository(pool *pgxpool.Pool) portsrepo.LedgerReader {
	return &PgxLedgerRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.LedgerReader = (*PgxLedgerRepository)(nil)

// CountPostings counts ledger lines of an account.
func (r *PgxLedgerRepository) CountPostings(ctx context.Context, entityID string, accountID string) (int, error) {
	var count int
	err := r.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM ledgers WHERE entity_id = $1 AND account_id = $2`, entityID, accountID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count postings of account %s: %w", accountID, err)
	}
	return count, nil
}

// Movement sums signed postings per rate and translates each group to reporting currency.
func (r *PgxLedgerRepository) Movement(ctx context.Context, entityID string, accountID string, start time.Time, end time.Time) (decimal.Decimal, error) {
	query := `
		SELECT l.currency_code, er.rate,
			COALESCE(SUM(CASE WHEN l.entry_type = 'DEBIT' THEN l.amount ELSE -l.amount END), 0)
		FROM ledgers l
		JOIN exchange_rates er ON er.exchange_rate_id = l.exchange_rate_id
		WHERE l.entity_id = $1 AND l.account_id = $2 AND l.posting_date BETWEEN $3 AND $4
		GROUP BY l.currency_code, er.rate;
	`
	rows, err := r.Pool.Query(ctx, query, entityID, accountID, start, end)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to query ledger of account %s: %w", accountID, err)
	}
	defer rows.Close()

	total := decimal.Zero
	for rows.Next() {
		var (
			currency string
			rate     decimal.Decimal
			sum      decimal.Decimal
		)
		if err := rows.Scan(&currency, &rate, &sum); err != nil {
			return decimal.Zero, fmt.Errorf("failed to scan ledger sum: %w", err)
		}
		value, err := domain.ExchangeRate{CurrencyCode: currency, Rate: rate}.ToReporting(sum)
		if err != nil {
			return decimal.Zero, err
		}
		total = total.Add(value)
	}
	if err := rows.Err(); err != nil {
		return decimal.Zero, fmt.Errorf("error iterating ledger sums: %w", err)
	}
	return total, nil
}
