package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/ifrs_ledger/internal/apperrors"
	"github.com/SscSPs/ifrs_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/ifrs_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/ifrs_ledger/internal/core/ports/services"
	"github.com/SscSPs/ifrs_ledger/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type currencyService struct {
	BaseService
	currencyRepo portsrepo.CurrencyRepositoryFacade
}

// NewCurrencyService creates a new currency service.
func NewCurrencyService(currencyRepo portsrepo.CurrencyRepositoryFacade) portssvc.CurrencySvcFacade {
	return &currencyService{currencyRepo: currencyRepo}
}

var _ portssvc.CurrencySvcFacade = (*currencyService)(nil)

func (s *currencyService) CreateCurrency(ctx context.Context, ec domain.EntityContext, req dto.CreateCurrencyRequest) (*domain.Currency, error) {
	currency := domain.Currency{
		CurrencyCode: req.CurrencyCode,
		Symbol:       req.Symbol,
		Name:         req.Name,
		EntityID:     ec.EntityID(),
	}
	currency.Stamp(ec.UserID, ec.Now)

	if err := s.currencyRepo.SaveCurrency(ctx, currency); err != nil {
		s.LogError(ctx, err, "Failed to create currency", slog.String("currency_code", req.CurrencyCode))
		return nil, fmt.Errorf("failed to create currency: %w", err)
	}
	return &currency, nil
}

func (s *currencyService) GetCurrencyByCode(ctx context.Context, ec domain.EntityContext, currencyCode string) (*domain.Currency, error) {
	currency, err := s.currencyRepo.FindCurrencyByCode(ctx, ec.EntityID(), currencyCode)
	if err != nil {
		return nil, fmt.Errorf("failed to get currency %s: %w", currencyCode, err)
	}
	return currency, nil
}

func (s *currencyService) ListCurrencies(ctx context.Context, ec domain.EntityContext) ([]domain.Currency, error) {
	currencies, err := s.currencyRepo.ListCurrencies(ctx, ec.EntityID())
	if err != nil {
		s.LogError(ctx, err, "Failed to list currencies")
		return nil, fmt.Errorf("failed to list currencies: %w", err)
	}
	if currencies == nil {
		return []domain.Currency{}, nil
	}
	return currencies, nil
}

type exchangeRateService struct {
	BaseService
	rateRepo   portsrepo.ExchangeRateRepositoryFacade
	currencies portssvc.CurrencyReaderSvc
}

// NewExchangeRateService creates a new exchange rate service.
func NewExchangeRateService(rateRepo portsrepo.ExchangeRateRepositoryFacade, currencies portssvc.CurrencyReaderSvc) portssvc.ExchangeRateSvcFacade {
	return &exchangeRateService{rateRepo: rateRepo, currencies: currencies}
}

var _ portssvc.ExchangeRateSvcFacade = (*exchangeRateService)(nil)

func (s *exchangeRateService) CreateExchangeRate(ctx context.Context, ec domain.EntityContext, req dto.CreateExchangeRateRequest) (*domain.ExchangeRate, error) {
	rate := domain.ExchangeRate{
		ExchangeRateID: uuid.NewString(),
		EntityID:       ec.EntityID(),
		CurrencyCode:   req.CurrencyCode,
		ValidFrom:      req.ValidFrom,
		Rate:           req.Rate,
	}
	if err := rate.Validate(); err != nil {
		return nil, err
	}
	if req.CurrencyCode == ec.Entity.CurrencyCode && !req.Rate.Equal(decimal.NewFromInt(1)) {
		return nil, apperrors.NewValidationError("the reporting currency always has a rate of 1")
	}
	if _, err := s.currencies.GetCurrencyByCode(ctx, ec, req.CurrencyCode); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewValidationError("currency " + req.CurrencyCode + " is not configured")
		}
		return nil, err
	}
	rate.Stamp(ec.UserID, ec.Now)

	if err := s.rateRepo.SaveExchangeRate(ctx, rate); err != nil {
		s.LogError(ctx, err, "Failed to save exchange rate", slog.String("currency_code", req.CurrencyCode))
		return nil, fmt.Errorf("failed to save exchange rate: %w", err)
	}
	return &rate, nil
}

func (s *exchangeRateService) GetEffectiveRate(ctx context.Context, ec domain.EntityContext, currencyCode string, asOf time.Time) (*domain.ExchangeRate, error) {
	rate, err := s.rateRepo.FindEffectiveRate(ctx, ec.EntityID(), currencyCode, asOf)
	if err != nil {
		return nil, fmt.Errorf("failed to find rate for %s: %w", currencyCode, err)
	}
	return rate, nil
}
