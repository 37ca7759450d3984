package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/SscSPs/ifrs_ledger/internal/apperrors"
	"github.com/SscSPs/ifrs_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/ifrs_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/ifrs_ledger/internal/models"
	"github.com/SscSPs/ifrs_ledger/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const accountColumns = `account_id, entity_id, name, account_type, category_id, currency_code, code, description,
		deleted_at, deleted_by, created_at, created_by, last_updated_at, last_updated_by`

type PgxAccountRepository struct {
	BaseRepository
}

// newPgxAccountRepository creates a new repository for account data.
func newPgxAccountRepository(pool *pgxpool.Pool) portsrepo.AccountRepositoryFacade {
	return &PgxAccountRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxAccountRepository implements portsrepo.AccountRepositoryFacade
var _ portsrepo.AccountRepositoryFacade = (*PgxAccountRepository)(nil)

func scanAccount(row pgx.Row) (models.Account, error) {
	var m models.Account
	err := row.Scan(
		&m.AccountID,
		&m.EntityID,
		&m.Name,
		&m.AccountType,
		&m.CategoryID,
		&m.CurrencyCode,
		&m.Code,
		&m.Description,
		&m.DeletedAt,
		&m.DeletedBy,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

func collectAccounts(rows pgx.Rows) ([]domain.Account, error) {
	defer rows.Close()
	accounts := []domain.Account{}
	for rows.Next() {
		m, err := scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan account row: %w", err)
		}
		accounts = append(accounts, mapping.ToDomainAccount(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating account rows: %w", err)
	}
	return accounts, nil
}

// SaveAccount inserts a new account or updates the mutable fields of an existing one.
func (r *PgxAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	m := mapping.ToModelAccount(account)

	query := `
		INSERT INTO accounts (account_id, entity_id, name, account_type, category_id, currency_code, code, description,
			created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		ON CONFLICT (account_id) DO UPDATE SET
			name = EXCLUDED.name,
			category_id = EXCLUDED.category_id,
			currency_code = EXCLUDED.currency_code,
			code = EXCLUDED.code,
			description = EXCLUDED.description,
			last_updated_at = EXCLUDED.last_updated_at,
			last_updated_by = EXCLUDED.last_updated_by;
	`
	_, err := r.Pool.Exec(ctx, query,
		m.AccountID,
		m.EntityID,
		m.Name,
		m.AccountType,
		m.CategoryID,
		m.CurrencyCode,
		m.Code,
		m.Description,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: %s account code %d is taken", apperrors.ErrDuplicate, m.AccountType, m.Code)
		}
		return fmt.Errorf("failed to save account %s: %w", m.AccountID, err)
	}
	return nil
}

// FindAccountByID retrieves an account by its ID, including soft deleted ones.
func (r *PgxAccountRepository) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE account_id = $1;`
	m, err := scanAccount(r.Pool.QueryRow(ctx, query, accountID))
	if err != nil {
		return nil, notFoundOr(err, "failed to find account by ID %s", accountID)
	}
	acc := mapping.ToDomainAccount(m)
	return &acc, nil
}

// ListAccounts retrieves a paginated list of active accounts of an entity.
func (r *PgxAccountRepository) ListAccounts(ctx context.Context, entityID string, limit int, offset int) ([]domain.Account, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	query := `
		SELECT ` + accountColumns + `
		FROM accounts
		WHERE entity_id = $1 AND deleted_at IS NULL
		ORDER BY code, account_type
		LIMIT $2 OFFSET $3;
	`
	rows, err := r.Pool.Query(ctx, query, entityID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query accounts for entity %s: %w", entityID, err)
	}
	return collectAccounts(rows)
}

// ListAccountsByTypes retrieves every active account of the given types.
func (r *PgxAccountRepository) ListAccountsByTypes(ctx context.Context, entityID string, types []domain.AccountType) ([]domain.Account, error) {
	if len(types) == 0 {
		return []domain.Account{}, nil
	}
	names := make([]string, len(types))
	for i, t := range types {
		names[i] = string(t)
	}
	query := `
		SELECT ` + accountColumns + `
		FROM accounts
		WHERE entity_id = $1 AND account_type = ANY($2) AND deleted_at IS NULL
		ORDER BY code, account_id;
	`
	rows, err := r.Pool.Query(ctx, query, entityID, names)
	if err != nil {
		return nil, fmt.Errorf("failed to query accounts by type for entity %s: %w", entityID, err)
	}
	return collectAccounts(rows)
}

// CountAccountsByType counts the accounts of one type.
func (r *PgxAccountRepository) CountAccountsByType(ctx context.Context, entityID string, accountType domain.AccountType, includeDeleted bool) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM accounts
		WHERE entity_id = $1 AND account_type = $2 AND ($3 OR deleted_at IS NULL);
	`
	var count int
	if err := r.Pool.QueryRow(ctx, query, entityID, string(accountType), includeDeleted).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count %s accounts: %w", accountType, err)
	}
	return count, nil
}

// SoftDeleteAccount marks an account as deleted when its posting count still matches.
func (r *PgxAccountRepository) SoftDeleteAccount(ctx context.Context, accountID string, userID string, now time.Time, postings int) error {
	query := `
		WITH posted AS (SELECT COUNT(*) AS n FROM ledgers WHERE account_id = $1)
		UPDATE accounts
		SET deleted_at = $2, deleted_by = $3, last_updated_at = $2, last_updated_by = $3
		FROM posted
		WHERE account_id = $1 AND deleted_at IS NULL AND posted.n = $4;
	`
	cmdTag, err := r.Pool.Exec(ctx, query, accountID, now, userID, postings)
	if err != nil {
		return fmt.Errorf("failed to delete account %s: %w", accountID, err)
	}
	if cmdTag.RowsAffected() > 0 {
		return nil
	}

	var active bool
	err = r.Pool.QueryRow(ctx, `SELECT deleted_at IS NULL FROM accounts WHERE account_id = $1`, accountID).Scan(&active)
	if err != nil {
		return notFoundOr(err, "failed to reload account %s", accountID)
	}
	if !active {
		return apperrors.ErrNotFound
	}
	return &apperrors.HangingTransactionsError{AccountID: accountID}
}
