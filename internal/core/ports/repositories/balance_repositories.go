package repositories

import (
	"context"

	"github.com/SscSPs/ifrs_ledger/internal/core/domain"
)

// BalanceReader reads period-end balance snapshots. Balances are written
// by the period roll-forward process, never by this service.
type BalanceReader interface {
	// ListBalances returns the balance rows of an account for one reporting
	// period, each joined with the rate of its exchange rate row.
	ListBalances(ctx context.Context, accountID string, reportingPeriodID string) ([]domain.Balance, error)
}
