package repositories

import (
	"context"

	"github.com/SscSPs/ifrs_ledger/internal/core/domain"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// TransactionReader defines read operations on posted transactions
type TransactionReader interface {
	// FindTransactionByID retrieves a transaction header.
	FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)
}

// ClearingTransactionSupport defines the locked reads and writes a clearing needs.
type ClearingTransactionSupport interface {
	// FindTransactionsForUpdate loads and locks transactions inside tx.
	FindTransactionsForUpdate(ctx context.Context, tx pgx.Tx, transactionIDs []string) (map[string]domain.Transaction, error)

	// SaveAssignmentInTx persists an assignment and adds its amount to the cleared
	// amount of both transactions.
	SaveAssignmentInTx(ctx context.Context, tx pgx.Tx, assignment domain.Assignment, clearedDelta decimal.Decimal) error
}

// TransactionRepositoryWithTx combines transaction reads, clearing writes and transaction control.
type TransactionRepositoryWithTx interface {
	TransactionReader
	ClearingTransactionSupport
	TransactionManager
}
