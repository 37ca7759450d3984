package pgsql

import (
	portsrepo "github.com/SscSPs/ifrs_ledger/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		AccountRepo:         newPgxAccountRepository(dbPool),
		BalanceRepo:         newPgxBalanceRepository(dbPool),
		CategoryRepo:        newPgxCategoryRepository(dbPool),
		CurrencyRepo:        newPgxCurrencyRepository(dbPool),
		EntityRepo:          newPgxEntityRepository(dbPool),
		ExchangeRateRepo:    newPgxExchangeRateRepository(dbPool),
		LedgerRepo:          newPgxLedgerRepository(dbPool),
		ReportingPeriodRepo: newPgxReportingPeriodRepository(dbPool),
		TransactionRepo:     newPgxTransactionRepository(dbPool),
	}
}
