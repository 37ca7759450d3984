package services

import (
	"context"
	"time"

	"github.com/SscSPs/ifrs_ledger/internal/core/domain"
	"github.com/SscSPs/ifrs_ledger/internal/dto"
)

// CurrencyReaderSvc defines read operations for currency data
type CurrencyReaderSvc interface {
	// GetCurrencyByCode retrieves a specific currency by its code.
	GetCurrencyByCode(ctx context.Context, ec domain.EntityContext, currencyCode string) (*domain.Currency, error)

	// ListCurrencies retrieves all currencies of the entity.
	ListCurrencies(ctx context.Context, ec domain.EntityContext) ([]domain.Currency, error)
}

// CurrencyWriterSvc defines write operations for currency data
type CurrencyWriterSvc interface {
	// CreateCurrency persists a new currency.
	CreateCurrency(ctx context.Context, ec domain.EntityContext, req dto.CreateCurrencyRequest) (*domain.Currency, error)
}

// CurrencySvcFacade combines all currency-related service interfaces
type CurrencySvcFacade interface {
	CurrencyReaderSvc
	CurrencyWriterSvc
}

// ExchangeRateSvcFacade defines exchange rate operations
type ExchangeRateSvcFacade interface {
	// GetEffectiveRate returns the rate for a currency valid at asOf.
	GetEffectiveRate(ctx context.Context, ec domain.EntityContext, currencyCode string, asOf time.Time) (*domain.ExchangeRate, error)

	// CreateExchangeRate persists a new exchange rate.
	CreateExchangeRate(ctx context.Context, ec domain.EntityContext, req dto.CreateExchangeRateRequest) (*domain.ExchangeRate, error)
}
