package services

import (
	"context"
	"time"

	"github.com/SscSPs/ifrs_ledger/internal/core/domain"
	"github.com/SscSPs/ifrs_ledger/internal/dto"
	"github.com/shopspring/decimal"
)

// AccountReaderSvc defines read operations for account data
type AccountReaderSvc interface {
	// GetAccountByID retrieves an active account of the context's entity.
	GetAccountByID(ctx context.Context, ec domain.EntityContext, accountID string) (*domain.Account, error)

	// ListAccounts retrieves a paginated list of active accounts ordered by code.
	ListAccounts(ctx context.Context, ec domain.EntityContext, limit int, offset int) ([]domain.Account, error)

	// GetType returns the human readable label of an account type.
	GetType(accountType domain.AccountType) (string, error)

	// GetTypes returns the labels of several account types in order.
	GetTypes(accountTypes []domain.AccountType) ([]string, error)
}

// AccountWriterSvc defines write operations for account data
type AccountWriterSvc interface {
	// CreateAccount builds a new account from a request and saves it.
	CreateAccount(ctx context.Context, ec domain.EntityContext, req dto.CreateAccountRequest) (*domain.Account, error)

	// SaveAccount validates, codes and persists an account in place.
	SaveAccount(ctx context.Context, ec domain.EntityContext, account *domain.Account) error

	// DeleteAccount soft deletes an account whose closing balance is zero.
	DeleteAccount(ctx context.Context, ec domain.EntityContext, accountID string) error
}

// AccountBalanceSvc defines balance computations for a single account.
// All results are debit-positive and in reporting currency.
type AccountBalanceSvc interface {
	// OpeningBalance sums the account's period-end balances for a fiscal
	// year, defaulting to the year of ec.Now.
	OpeningBalance(ctx context.Context, ec domain.EntityContext, accountID string, year *int) (decimal.Decimal, error)

	// OpeningBalanceForPeriod is OpeningBalance with the period already resolved.
	OpeningBalanceForPeriod(ctx context.Context, accountID string, period domain.ReportingPeriod) (decimal.Decimal, error)

	// ClosingBalance returns the opening balance of the year of end plus the
	// ledger movement between start and end. end defaults to ec.Now and
	// start to the beginning of end's fiscal year.
	ClosingBalance(ctx context.Context, ec domain.EntityContext, accountID string, start *time.Time, end *time.Time) (decimal.Decimal, error)
}

// AccountSvcFacade combines all account-related service interfaces
type AccountSvcFacade interface {
	AccountReaderSvc
	AccountWriterSvc
	AccountBalanceSvc
}
