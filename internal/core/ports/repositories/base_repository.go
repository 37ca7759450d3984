package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"
)

// TransactionManager opens the database transaction that multi-row ledger
// writes, such as recording an assignment, run in.
type TransactionManager interface {
	Begin(ctx context.Context) (pgx.Tx, error)
	Commit(ctx context.Context, tx pgx.Tx) error
	// Rollback is a no-op on a committed transaction.
	Rollback(ctx context.Context, tx pgx.Tx) error
}
