package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/ifrs_ledger/internal/core/domain"
)

// AccountReader defines read operations for account data
type AccountReader interface {
	// FindAccountByID retrieves a specific account by its unique identifier, including soft deleted ones.
	FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error)

	// ListAccounts retrieves a paginated list of active accounts for an entity, ordered by code.
	ListAccounts(ctx context.Context, entityID string, limit int, offset int) ([]domain.Account, error)

	// ListAccountsByTypes retrieves every active account of the given types, ordered by code.
	ListAccountsByTypes(ctx context.Context, entityID string, types []domain.AccountType) ([]domain.Account, error)

	// CountAccountsByType counts accounts of a type; includeDeleted also counts soft deleted rows.
	CountAccountsByType(ctx context.Context, entityID string, accountType domain.AccountType, includeDeleted bool) (int, error)
}

// AccountWriter defines write operations for account data
type AccountWriter interface {
	// SaveAccount inserts a new account or updates an existing one.
	// A clash on (entity_id, account_type, code) returns apperrors.ErrDuplicate.
	SaveAccount(ctx context.Context, account domain.Account) error

	// SoftDeleteAccount marks an account as deleted provided it still carries
	// exactly postings ledger lines. A different count returns
	// apperrors.ErrHangingTransactions and leaves the account active.
	SoftDeleteAccount(ctx context.Context, accountID string, userID string, now time.Time, postings int) error
}

// AccountRepositoryFacade combines all account-related repository interfaces
type AccountRepositoryFacade interface {
	AccountReader
	AccountWriter
}
