package services

// ServiceContainer holds instances of all the application services.
// Handlers receive it at route registration.
type ServiceContainer struct {
	Account      AccountSvcFacade
	Clearing     ClearingSvc
	Currency     CurrencySvcFacade
	Entity       EntitySvc
	ExchangeRate ExchangeRateSvcFacade
	Period       PeriodSvc
	Reporting    ReportingService
}
