package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/ifrs_ledger/internal/apperrors"
	"github.com/SscSPs/ifrs_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/ifrs_ledger/internal/core/ports/services"
	"github.com/SscSPs/ifrs_ledger/internal/core/services"
	"github.com/SscSPs/ifrs_ledger/internal/dto"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type CurrencyServiceTestSuite struct {
	suite.Suite
	ctx          context.Context
	ec           domain.EntityContext
	currencyRepo *MockCurrencyRepository
	rateRepo     *MockExchangeRateRepository
	currencies   portssvc.CurrencySvcFacade
	rates        portssvc.ExchangeRateSvcFacade
}

func (suite *CurrencyServiceTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.ec = newEntityContext(date(2024, time.June, 30), 1)
	suite.currencyRepo = new(MockCurrencyRepository)
	suite.rateRepo = new(MockExchangeRateRepository)
	suite.currencies = services.NewCurrencyService(suite.currencyRepo)
	suite.rates = services.NewExchangeRateService(suite.rateRepo, suite.currencies)
}

func (suite *CurrencyServiceTestSuite) TestCreateCurrency_Success() {
	req := dto.CreateCurrencyRequest{CurrencyCode: "EUR", Symbol: "€", Name: "Euro"}
	suite.currencyRepo.On("SaveCurrency", suite.ctx, mock.MatchedBy(func(c domain.Currency) bool {
		return c.CurrencyCode == "EUR" && c.EntityID == testEntityID && c.CreatedBy == testUserID && c.LastUpdatedBy == testUserID
	})).Return(nil).Once()

	currency, err := suite.currencies.CreateCurrency(suite.ctx, suite.ec, req)
	suite.Require().NoError(err)
	suite.Equal("Euro", currency.Name)
	suite.Equal(suite.ec.Now, currency.CreatedAt)
	suite.currencyRepo.AssertExpectations(suite.T())
}

func (suite *CurrencyServiceTestSuite) TestCreateCurrency_Duplicate() {
	suite.currencyRepo.On("SaveCurrency", suite.ctx, mock.Anything).Return(apperrors.ErrDuplicate)

	_, err := suite.currencies.CreateCurrency(suite.ctx, suite.ec, dto.CreateCurrencyRequest{CurrencyCode: "EUR", Symbol: "€", Name: "Euro"})
	suite.ErrorIs(err, apperrors.ErrDuplicate)
}

func (suite *CurrencyServiceTestSuite) TestListCurrencies_NeverNil() {
	suite.currencyRepo.On("ListCurrencies", suite.ctx, testEntityID).Return(nil, nil)

	currencies, err := suite.currencies.ListCurrencies(suite.ctx, suite.ec)
	suite.Require().NoError(err)
	suite.NotNil(currencies)
	suite.Empty(currencies)
}

func (suite *CurrencyServiceTestSuite) TestGetCurrencyByCode_NotFound() {
	suite.currencyRepo.On("FindCurrencyByCode", suite.ctx, testEntityID, "JPY").Return(nil, apperrors.ErrNotFound)

	_, err := suite.currencies.GetCurrencyByCode(suite.ctx, suite.ec, "JPY")
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *CurrencyServiceTestSuite) TestCreateExchangeRate() {
	validFrom := date(2024, time.January, 1)
	suite.currencyRepo.On("FindCurrencyByCode", suite.ctx, testEntityID, "EUR").Return(&domain.Currency{CurrencyCode: "EUR"}, nil)
	suite.currencyRepo.On("FindCurrencyByCode", suite.ctx, testEntityID, "GBP").Return(nil, apperrors.ErrNotFound)
	suite.rateRepo.On("SaveExchangeRate", suite.ctx, mock.MatchedBy(func(r domain.ExchangeRate) bool {
		return r.CurrencyCode == "EUR" && r.Rate.Equal(dec("1.08")) && r.ValidFrom.Equal(validFrom)
	})).Return(nil).Once()

	rate, err := suite.rates.CreateExchangeRate(suite.ctx, suite.ec, dto.CreateExchangeRateRequest{CurrencyCode: "EUR", Rate: dec("1.08"), ValidFrom: validFrom})
	suite.Require().NoError(err)
	suite.NotEmpty(rate.ExchangeRateID)

	_, err = suite.rates.CreateExchangeRate(suite.ctx, suite.ec, dto.CreateExchangeRateRequest{CurrencyCode: "EUR", Rate: dec("0"), ValidFrom: validFrom})
	suite.ErrorIs(err, apperrors.ErrValidation)

	_, err = suite.rates.CreateExchangeRate(suite.ctx, suite.ec, dto.CreateExchangeRateRequest{CurrencyCode: "EUR", Rate: dec("-2"), ValidFrom: validFrom})
	suite.ErrorIs(err, apperrors.ErrValidation)

	_, err = suite.rates.CreateExchangeRate(suite.ctx, suite.ec, dto.CreateExchangeRateRequest{CurrencyCode: "USD", Rate: dec("2"), ValidFrom: validFrom})
	suite.ErrorIs(err, apperrors.ErrValidation)

	_, err = suite.rates.CreateExchangeRate(suite.ctx, suite.ec, dto.CreateExchangeRateRequest{CurrencyCode: "GBP", Rate: dec("0.8"), ValidFrom: validFrom})
	suite.ErrorIs(err, apperrors.ErrValidation)

	suite.rateRepo.AssertExpectations(suite.T())
}

func (suite *CurrencyServiceTestSuite) TestGetEffectiveRate() {
	asOf := date(2024, time.May, 5)
	suite.rateRepo.On("FindEffectiveRate", suite.ctx, testEntityID, "EUR", asOf).Return(&domain.ExchangeRate{CurrencyCode: "EUR", Rate: dec("1.1")}, nil)

	rate, err := suite.rates.GetEffectiveRate(suite.ctx, suite.ec, "EUR", asOf)
	suite.Require().NoError(err)
	suite.Equal("1.1", rate.Rate.String())
}

func TestCurrencyServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CurrencyServiceTestSuite))
}
