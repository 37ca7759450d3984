package services

import (
	"github.com/SscSPs/ifrs_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/ifrs_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/ifrs_ledger/internal/core/ports/services"
	"github.com/SscSPs/ifrs_ledger/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, labels domain.Labels, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// the period resolver backs every balance computation
	container.Period = NewPeriodService(repos.ReportingPeriodRepo)
	container.Entity = NewEntityService(repos.EntityRepo)
	container.Currency = NewCurrencyService(repos.CurrencyRepo)
	container.ExchangeRate = NewExchangeRateService(repos.ExchangeRateRepo, container.Currency)

	container.Account = NewAccountService(
		repos.AccountRepo,
		repos.BalanceRepo,
		repos.LedgerRepo,
		container.Period,
		WithCategoryRepository(repos.CategoryRepo),
		WithCurrencyRepository(repos.CurrencyRepo),
		WithAccountLabels(labels),
		WithCodeAssignmentRetries(cfg.CodeAssignmentRetries),
	)

	container.Reporting = NewReportingService(
		repos.AccountRepo,
		repos.LedgerRepo,
		container.Account,
		container.Period,
		WithReportingCategories(repos.CategoryRepo),
		WithReportingLabels(labels),
		WithAggregationConcurrency(cfg.AggregationConcurrency),
	)

	container.Clearing = NewClearingService(repos.TransactionRepo, labels)

	return container
}
