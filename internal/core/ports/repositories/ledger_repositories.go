package repositories

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// LedgerReader aggregates posted ledger lines.
type LedgerReader interface {
	// Movement returns debits minus credits posted to an account between
	// start and end inclusive, each line divided by its rate so the result
	// is in reporting currency.
	Movement(ctx context.Context, entityID string, accountID string, start time.Time, end time.Time) (decimal.Decimal, error)

	// CountPostings returns how many ledger lines are posted to an account.
	CountPostings(ctx context.Context, entityID string, accountID string) (int, error)
}
