package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/ifrs_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/ifrs_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/ifrs_ledger/internal/models"
	"github.com/SscSPs/ifrs_ledger/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxBalanceRepository reads period-end balance snapshots.
type PgxBalanceRepository struct {
	BaseRepository
}

func newPgxBalanceRepository(pool *pgxpool.Pool) portsrepo.BalanceReader {
	return &PgxBalanceRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.BalanceReader = (*PgxBalanceRepository)(nil)

// ListBalances returns the balances of an account for one period with their rates.
func (r *PgxBalanceRepository) ListBalances(ctx context.Context, accountID string, reportingPeriodID string) ([]domain.Balance, error) {
	query := `
		SELECT b.balance_id, b.account_id, b.reporting_period_id, b.exchange_rate_id,
			b.currency_code, b.balance_type, b.amount, er.rate
		FROM balances b
		JOIN exchange_rates er ON er.exchange_rate_id = b.exchange_rate_id
		WHERE b.account_id = $1 AND b.reporting_period_id = $2
		ORDER BY b.balance_id;
	`
	rows, err := r.Pool.Query(ctx, query, accountID, reportingPeriodID)
	if err != nil {
		return nil, fmt.Errorf("failed to query balances of account %s: %w", accountID, err)
	}
	defer rows.Close()

	modelBalances, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Balance, error) {
		var b models.Balance
		err := row.Scan(&b.BalanceID, &b.AccountID, &b.ReportingPeriodID, &b.ExchangeRateID,
			&b.CurrencyCode, &b.BalanceType, &b.Amount, &b.Rate)
		return b, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan balances of account %s: %w", accountID, err)
	}

	balances := make([]domain.Balance, len(modelBalances))
	for i, m := range modelBalances {
		balances[i] = mapping.ToDomainBalance(m)
	}
	return balances, nil
}
