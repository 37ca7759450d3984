package pgsql

import (
	"context"
	"io"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/SscSPs/ifrs_ledger/internal/apperrors"
	"github.com/SscSPs/ifrs_ledger/internal/core/domain"
	"github.com/SscSPs/ifrs_ledger/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

// Set LEDGER_TEST_PGSQL_URL to a disposable database to run these tests.
const testDatabaseEnv = "LEDGER_TEST_PGSQL_URL"

type RepositoryIntegrationSuite struct {
	suite.Suite
	ctx      context.Context
	pool     *pgxpool.Pool
	seed     struct{ entityID, rateID string }
	provider providerUnderTest
}

type providerUnderTest struct {
	accounts     *PgxAccountRepository
	ledger       *PgxLedgerRepository
	transactions *PgxTransactionRepository
	rates        *PgxExchangeRateRepository
}

func TestRepositoryIntegrationSuite(t *testing.T) {
	if os.Getenv(testDatabaseEnv) == "" {
		t.Skipf("%s not set", testDatabaseEnv)
	}
	suite.Run(t, new(RepositoryIntegrationSuite))
}

func (s *RepositoryIntegrationSuite) SetupSuite() {
	url := os.Getenv(testDatabaseEnv)
	s.ctx = context.Background()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	s.Require().NoError(database.RunMigrations(url, "file://../../../../migrations", logger))

	pool, err := database.NewPgxPool(s.ctx, url, true)
	s.Require().NoError(err)
	s.pool = pool
	s.provider = providerUnderTest{
		accounts:     &PgxAccountRepository{BaseRepository{Pool: pool}},
		ledger:       &PgxLedgerRepository{BaseRepository{Pool: pool}},
		transactions: &PgxTransactionRepository{BaseRepository{Pool: pool}},
		rates:        &PgxExchangeRateRepository{BaseRepository{Pool: pool}},
	}
}

func (s *RepositoryIntegrationSuite) TearDownSuite() {
	database.ClosePgxPool(s.pool)
}

// SetupTest seeds a fresh entity with a home currency, a foreign currency and rates.
func (s *RepositoryIntegrationSuite) SetupTest() {
	s.seed.entityID = "ent-" + uuid.NewString()
	s.seed.rateID = "rate-" + uuid.NewString()
	exec := func(sql string, args ...any) {
		_, err := s.pool.Exec(s.ctx, sql, args...)
		s.Require().NoError(err)
	}
	exec(`INSERT INTO entities (entity_id, name, currency_code, year_start_month, created_by, last_updated_by)
		VALUES ($1, 'Acme', 'USD', 1, 'seed', 'seed')`, s.seed.entityID)
	exec(`INSERT INTO currencies (entity_id, currency_code, symbol, name, created_by, last_updated_by)
		VALUES ($1, 'USD', '$', 'US Dollar', 'seed', 'seed'), ($1, 'EUR', 'E', 'Euro', 'seed', 'seed')`, s.seed.entityID)
	exec(`INSERT INTO exchange_rates (exchange_rate_id, entity_id, currency_code, valid_from, rate, created_by, last_updated_by)
		VALUES ($1, $2, 'EUR', '2024-01-01', 2, 'seed', 'seed')`, s.seed.rateID, s.seed.entityID)
}

func (s *RepositoryIntegrationSuite) newAccount(t domain.AccountType, code int) domain.Account {
	acc := domain.Account{
		AccountID:    uuid.NewString(),
		EntityID:     s.seed.entityID,
		Name:         "Account",
		AccountType:  t,
		CurrencyCode: "EUR",
		Code:         code,
	}
	acc.Stamp("user-1", time.Now().UTC())
	return acc
}

func (s *RepositoryIntegrationSuite) TestAccountCodesAreUniquePerType() {
	repo := s.provider.accounts
	s.Require().NoError(repo.SaveAccount(s.ctx, s.newAccount(domain.Receivable, 501)))

	err := repo.SaveAccount(s.ctx, s.newAccount(domain.Receivable, 501))
	s.ErrorIs(err, apperrors.ErrDuplicate)

	s.NoError(repo.SaveAccount(s.ctx, s.newAccount(domain.Bank, 501)))
}

func (s *RepositoryIntegrationSuite) TestSoftDeleteKeepsCountWhenIncludingDeleted() {
	repo := s.provider.accounts
	acc := s.newAccount(domain.Bank, 301)
	s.Require().NoError(repo.SaveAccount(s.ctx, acc))
	s.Require().NoError(repo.SoftDeleteAccount(s.ctx, acc.AccountID, "user-1", time.Now().UTC(), 0))

	active, err := repo.CountAccountsByType(s.ctx, s.seed.entityID, domain.Bank, false)
	s.Require().NoError(err)
	all, err := repo.CountAccountsByType(s.ctx, s.seed.entityID, domain.Bank, true)
	s.Require().NoError(err)
	s.Equal(0, active)
	s.Equal(1, all)

	listed, err := repo.ListAccountsByTypes(s.ctx, s.seed.entityID, []domain.AccountType{domain.Bank})
	s.Require().NoError(err)
	s.Empty(listed)

	found, err := repo.FindAccountByID(s.ctx, acc.AccountID)
	s.Require().NoError(err)
	s.False(found.IsActive())

	s.ErrorIs(repo.SoftDeleteAccount(s.ctx, acc.AccountID, "user-1", time.Now().UTC(), 0), apperrors.ErrNotFound)
}

func (s *RepositoryIntegrationSuite) TestSoftDeleteRefusesStalePostingCount() {
	repo := s.provider.accounts
	acc := s.newAccount(domain.Receivable, 501)
	s.Require().NoError(repo.SaveAccount(s.ctx, acc))
	txnID := "txn-" + uuid.NewString()
	s.seedTransaction(txnID, domain.ClientInvoice, "2024-02-01", 300)

	counted, err := s.provider.ledger.CountPostings(s.ctx, s.seed.entityID, acc.AccountID)
	s.Require().NoError(err)
	s.Equal(0, counted)

	// a line posted after the count
	_, err = s.pool.Exec(s.ctx, `INSERT INTO ledgers
		(ledger_id, entity_id, transaction_id, account_id, posting_date, entry_type, amount, currency_code, exchange_rate_id)
		VALUES ($1, $2, $3, $4, '2024-02-01', 'DEBIT', 300, 'EUR', $5)`,
		uuid.NewString(), s.seed.entityID, txnID, acc.AccountID, s.seed.rateID)
	s.Require().NoError(err)

	err = repo.SoftDeleteAccount(s.ctx, acc.AccountID, "user-1", time.Now().UTC(), counted)
	s.ErrorIs(err, apperrors.ErrHangingTransactions)

	found, err := repo.FindAccountByID(s.ctx, acc.AccountID)
	s.Require().NoError(err)
	s.True(found.IsActive())

	s.NoError(repo.SoftDeleteAccount(s.ctx, acc.AccountID, "user-1", time.Now().UTC(), 1))
}

func (s *RepositoryIntegrationSuite) seedTransaction(id string, txType domain.TransactionType, date string, amount int) {
	_, err := s.pool.Exec(s.ctx, `INSERT INTO transactions
		(transaction_id, entity_id, transaction_type, transaction_date, currency_code, exchange_rate_id, amount, created_by)
		VALUES ($1, $2, $3, $4, 'EUR', $5, $6, 'seed')`, id, s.seed.entityID, string(txType), date, s.seed.rateID, amount)
	s.Require().NoError(err)
}

func (s *RepositoryIntegrationSuite) TestMovementDividesByRate() {
	acc := s.newAccount(domain.Receivable, 501)
	s.Require().NoError(s.provider.accounts.SaveAccount(s.ctx, acc))
	txnID := "txn-" + uuid.NewString()
	s.seedTransaction(txnID, domain.ClientInvoice, "2024-02-01", 300)

	post := func(entry string, date string, amount int) {
		_, err := s.pool.Exec(s.ctx, `INSERT INTO ledgers
			(ledger_id, entity_id, transaction_id, account_id, posting_date, entry_type, amount, currency_code, exchange_rate_id)
			VALUES ($1, $2, $3, $4, $5, $6, $7, 'EUR', $8)`,
			uuid.NewString(), s.seed.entityID, txnID, acc.AccountID, date, entry, amount, s.seed.rateID)
		s.Require().NoError(err)
	}
	post("DEBIT", "2024-02-01", 300)
	post("CREDIT", "2024-03-01", 100)
	post("DEBIT", "2025-01-05", 999)

	movement, err := s.provider.ledger.Movement(s.ctx, s.seed.entityID, acc.AccountID,
		time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC))
	s.Require().NoError(err)
	s.True(decimal.NewFromInt(100).Equal(movement), "got %s", movement)
}

func (s *RepositoryIntegrationSuite) TestSaveAssignmentUpdatesBothSides() {
	repo := s.provider.transactions
	invoice, receipt := "in-"+uuid.NewString(), "rc-"+uuid.NewString()
	s.seedTransaction(invoice, domain.ClientInvoice, "2024-02-01", 300)
	s.seedTransaction(receipt, domain.ClientReceipt, "2024-02-10", 200)

	tx, err := repo.Begin(s.ctx)
	s.Require().NoError(err)
	locked, err := repo.FindTransactionsForUpdate(s.ctx, tx, []string{invoice, receipt, "missing"})
	s.Require().NoError(err)
	s.Len(locked, 2)

	a := domain.Assignment{
		AssignmentID:   uuid.NewString(),
		EntityID:       s.seed.entityID,
		TransactionID:  receipt,
		ClearedID:      invoice,
		Amount:         decimal.NewFromInt(200),
		AssignmentDate: time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC),
	}
	a.Stamp("user-1", time.Now().UTC())
	s.Require().NoError(repo.SaveAssignmentInTx(s.ctx, tx, a, a.Amount))
	s.Require().NoError(repo.Commit(s.ctx, tx))
	s.NoError(repo.Rollback(s.ctx, tx))

	cleared, err := repo.FindTransactionByID(s.ctx, invoice)
	s.Require().NoError(err)
	s.True(decimal.NewFromInt(100).Equal(cleared.Outstanding()))

	clearing, err := repo.FindTransactionByID(s.ctx, receipt)
	s.Require().NoError(err)
	s.True(clearing.IsCleared())
}

func (s *RepositoryIntegrationSuite) TestEffectiveRatePicksLatestValidRate() {
	rate := domain.ExchangeRate{
		ExchangeRateID: uuid.NewString(),
		EntityID:       s.seed.entityID,
		CurrencyCode:   "eur",
		ValidFrom:      time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		Rate:           decimal.RequireFromString("2.5"),
	}
	rate.Stamp("user-1", time.Now().UTC())
	s.Require().NoError(s.provider.rates.SaveExchangeRate(s.ctx, rate))

	before, err := s.provider.rates.FindEffectiveRate(s.ctx, s.seed.entityID, "EUR", time.Date(2024, 5, 31, 0, 0, 0, 0, time.UTC))
	s.Require().NoError(err)
	s.True(decimal.NewFromInt(2).Equal(before.Rate))

	after, err := s.provider.rates.FindEffectiveRate(s.ctx, s.seed.entityID, "EUR", time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC))
	s.Require().NoError(err)
	s.True(decimal.RequireFromString("2.5").Equal(after.Rate))

	_, err = s.provider.rates.FindEffectiveRate(s.ctx, s.seed.entityID, "EUR", time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC))
	s.ErrorIs(err, apperrors.ErrNotFound)
}
