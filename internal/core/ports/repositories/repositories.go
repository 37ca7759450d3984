package repositories

// RepositoryProvider holds all repository interfaces needed by services.
type RepositoryProvider struct {
	AccountRepo         AccountRepositoryFacade
	BalanceRepo         BalanceReader
	CategoryRepo        CategoryReader
	CurrencyRepo        CurrencyRepositoryFacade
	EntityRepo          EntityReader
	ExchangeRateRepo    ExchangeRateRepositoryFacade
	LedgerRepo          LedgerReader
	ReportingPeriodRepo ReportingPeriodReader
	TransactionRepo     TransactionRepositoryWithTx
}
