package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/ifrs_ledger/internal/apperrors"
	"github.com/SscSPs/ifrs_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/ifrs_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/ifrs_ledger/internal/models"
	"github.com/SscSPs/ifrs_ledger/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

const transactionColumns = `transaction_id, entity_id, transaction_type, transaction_date, currency_code, amount, cleared_amount, narration`

type PgxTransactionRepository struct {
	BaseRepository
}

func newPgxTransactionRepository(pool *pgxpool.Pool) portsrepo.TransactionRepositoryWithTx {
	return &PgxTransactionRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.TransactionRepositoryWithTx = (*PgxTransactionRepository)(nil)

func scanTransaction(row pgx.Row) (models.Transaction, error) {
	var m models.Transaction
	err := row.Scan(&m.TransactionID, &m.EntityID, &m.TransactionType, &m.TransactionDate,
		&m.CurrencyCode, &m.Amount, &m.ClearedAmount, &m.Narration)
	return m, err
}

// FindTransactionByID retrieves a transaction header.
func (r *PgxTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE transaction_id = $1;`
	m, err := scanTransaction(r.Pool.QueryRow(ctx, query, transactionID))
	if err != nil {
		return nil, notFoundOr(err, "failed to find transaction %s", transactionID)
	}
	txn := mapping.ToDomainTransaction(m)
	return &txn, nil
}

// FindTransactionsForUpdate loads and locks transaction rows. Must be called within a transaction.
func (r *PgxTransactionRepository) FindTransactionsForUpdate(ctx context.Context, tx pgx.Tx, transactionIDs []string) (map[string]domain.Transaction, error) {
	if len(transactionIDs) == 0 {
		return map[string]domain.Transaction{}, nil
	}
	query := `
		SELECT ` + transactionColumns + `
		FROM transactions
		WHERE transaction_id = ANY($1)
		ORDER BY transaction_id
		FOR UPDATE;
	`
	rows, err := tx.Query(ctx, query, transactionIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to lock transactions: %w", err)
	}
	defer rows.Close()

	txns := make(map[string]domain.Transaction, len(transactionIDs))
	for rows.Next() {
		m, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan locked transaction row: %w", err)
		}
		txns[m.TransactionID] = mapping.ToDomainTransaction(m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating locked transaction rows: %w", err)
	}
	return txns, nil
}

// SaveAssignmentInTx inserts an assignment and adds clearedDelta to the cleared
// amount of both linked transactions.
func (r *PgxTransactionRepository) SaveAssignmentInTx(ctx context.Context, tx pgx.Tx, assignment domain.Assignment, clearedDelta decimal.Decimal) error {
	m := mapping.ToModelAssignment(assignment)

	batch := &pgx.Batch{}
	batch.Queue(`
		INSERT INTO assignments (assignment_id, entity_id, transaction_id, cleared_id, amount, assignment_date,
			created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);`,
		m.AssignmentID, m.EntityID, m.TransactionID, m.ClearedID, m.Amount, m.AssignmentDate,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	update := `UPDATE transactions SET cleared_amount = cleared_amount + $2 WHERE transaction_id = $1;`
	batch.Queue(update, m.TransactionID, clearedDelta)
	batch.Queue(update, m.ClearedID, clearedDelta)

	br := tx.SendBatch(ctx, batch)
	var batchErr error
	for i := 0; i < batch.Len(); i++ {
		ct, err := br.Exec()
		switch {
		case err != nil && batchErr == nil:
			if isUniqueViolation(err) {
				batchErr = fmt.Errorf("%w: assignment %s", apperrors.ErrDuplicate, m.AssignmentID)
			} else {
				batchErr = fmt.Errorf("failed to save assignment %s: %w", m.AssignmentID, err)
			}
		case err == nil && ct.RowsAffected() == 0 && batchErr == nil:
			batchErr = fmt.Errorf("%w: transaction not found while clearing", apperrors.ErrNotFound)
		}
	}
	if err := br.Close(); err != nil && batchErr == nil {
		batchErr = fmt.Errorf("failed to close assignment batch: %w", err)
	}
	return batchErr
}
