package handlers_test

import (
	"context"
	"time"

	"github.com/SscSPs/ifrs_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/ifrs_ledger/internal/core/ports/services"
	"github.com/SscSPs/ifrs_ledger/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// --- Mock AccountService ---
type MockAccountService struct {
	mock.Mock
}

func (m *MockAccountService) GetAccountByID(ctx context.Context, ec domain.EntityContext, accountID string) (*domain.Account, error) {
	args := m.Called(ctx, ec, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountService) ListAccounts(ctx context.Context, ec domain.EntityContext, limit int, offset int) ([]domain.Account, error) {
	args := m.Called(ctx, ec, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockAccountService) GetType(accountType domain.AccountType) (string, error) {
	args := m.Called(accountType)
	return args.String(0), args.Error(1)
}

func (m *MockAccountService) GetTypes(accountTypes []domain.AccountType) ([]string, error) {
	args := m.Called(accountTypes)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockAccountService) CreateAccount(ctx context.Context, ec domain.EntityContext, req dto.CreateAccountRequest) (*domain.Account, error) {
	args := m.Called(ctx, ec, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountService) SaveAccount(ctx context.Context, ec domain.EntityContext, account *domain.Account) error {
	args := m.Called(ctx, ec, account)
	return args.Error(0)
}

func (m *MockAccountService) DeleteAccount(ctx context.Context, ec domain.EntityContext, accountID string) error {
	args := m.Called(ctx, ec, accountID)
	return args.Error(0)
}

func (m *MockAccountService) OpeningBalance(ctx context.Context, ec domain.EntityContext, accountID string, year *int) (decimal.Decimal, error) {
	args := m.Called(ctx, ec, accountID, year)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockAccountService) OpeningBalanceForPeriod(ctx context.Context, accountID string, period domain.ReportingPeriod) (decimal.Decimal, error) {
	args := m.Called(ctx, accountID, period)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockAccountService) ClosingBalance(ctx context.Context, ec domain.EntityContext, accountID string, start *time.Time, end *time.Time) (decimal.Decimal, error) {
	args := m.Called(ctx, ec, accountID, start, end)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

// Ensure mock implements the interface
var _ portssvc.AccountSvcFacade = (*MockAccountService)(nil)

// --- Mock EntityService ---
type MockEntityService struct {
	mock.Mock
}

func (m *MockEntityService) ResolveContext(ctx context.Context, entityID string, userID string) (domain.EntityContext, error) {
	args := m.Called(ctx, entityID, userID)
	return args.Get(0).(domain.EntityContext), args.Error(1)
}

var _ portssvc.EntitySvc = (*MockEntityService)(nil)

// --- Mock ReportingService ---
type MockReportingService struct {
	mock.Mock
}

func (m *MockReportingService) SectionBalances(ctx context.Context, ec domain.EntityContext, types []domain.AccountType, start *time.Time, end *time.Time) (*domain.SectionBalances, error) {
	args := m.Called(ctx, ec, types, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SectionBalances), args.Error(1)
}

func (m *MockReportingService) Movement(ctx context.Context, ec domain.EntityContext, types []domain.AccountType, start *time.Time, end *time.Time) (decimal.Decimal, error) {
	args := m.Called(ctx, ec, types, start, end)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockReportingService) BalanceSheet(ctx context.Context, ec domain.EntityContext, end *time.Time) (*domain.BalanceSheet, error) {
	args := m.Called(ctx, ec, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BalanceSheet), args.Error(1)
}

func (m *MockReportingService) IncomeStatement(ctx context.Context, ec domain.EntityContext, start *time.Time, end *time.Time) (*domain.IncomeStatement, error) {
	args := m.Called(ctx, ec, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.IncomeStatement), args.Error(1)
}

var _ portssvc.ReportingService = (*MockReportingService)(nil)

// --- Mock PeriodService ---
type MockPeriodService struct {
	mock.Mock
}

func (m *MockPeriodService) Year(ec domain.EntityContext, date time.Time) int {
	return ec.Calendar().Year(date)
}

func (m *MockPeriodService) PeriodStart(ec domain.EntityContext, date time.Time) time.Time {
	return ec.Calendar().PeriodStart(date)
}

func (m *MockPeriodService) ResolveRange(ec domain.EntityContext, start *time.Time, end *time.Time) (time.Time, time.Time) {
	args := m.Called(ec, start, end)
	return args.Get(0).(time.Time), args.Get(1).(time.Time)
}

func (m *MockPeriodService) PeriodByYear(ctx context.Context, ec domain.EntityContext, year int) (*domain.ReportingPeriod, error) {
	args := m.Called(ctx, ec, year)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ReportingPeriod), args.Error(1)
}

func (m *MockPeriodService) CurrentPeriod(ctx context.Context, ec domain.EntityContext) (*domain.ReportingPeriod, error) {
	args := m.Called(ctx, ec)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ReportingPeriod), args.Error(1)
}

var _ portssvc.PeriodSvc = (*MockPeriodService)(nil)

// --- Mock ClearingService ---
type MockClearingService struct {
	mock.Mock
}

func (m *MockClearingService) Clearers(transactionType domain.TransactionType) []domain.TransactionType {
	args := m.Called(transactionType)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]domain.TransactionType)
}

func (m *MockClearingService) ValidateClearing(cleared domain.TransactionType, clearing domain.TransactionType) error {
	args := m.Called(cleared, clearing)
	return args.Error(0)
}

func (m *MockClearingService) Clear(ctx context.Context, ec domain.EntityContext, req dto.CreateAssignmentRequest) (*domain.Assignment, error) {
	args := m.Called(ctx, ec, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Assignment), args.Error(1)
}

var _ portssvc.ClearingSvc = (*MockClearingService)(nil)

// --- Mock CurrencyService ---
type MockCurrencyService struct {
	mock.Mock
}

func (m *MockCurrencyService) GetCurrencyByCode(ctx context.Context, ec domain.EntityContext, currencyCode string) (*domain.Currency, error) {
	args := m.Called(ctx, ec, currencyCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Currency), args.Error(1)
}

func (m *MockCurrencyService) ListCurrencies(ctx context.Context, ec domain.EntityContext) ([]domain.Currency, error) {
	args := m.Called(ctx, ec)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Currency), args.Error(1)
}

func (m *MockCurrencyService) CreateCurrency(ctx context.Context, ec domain.EntityContext, req dto.CreateCurrencyRequest) (*domain.Currency, error) {
	args := m.Called(ctx, ec, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Currency), args.Error(1)
}

var _ portssvc.CurrencySvcFacade = (*MockCurrencyService)(nil)

// --- Mock ExchangeRateService ---
type MockExchangeRateService struct {
	mock.Mock
}

func (m *MockExchangeRateService) GetEffectiveRate(ctx context.Context, ec domain.EntityContext, currencyCode string, asOf time.Time) (*domain.ExchangeRate, error) {
	args := m.Called(ctx, ec, currencyCode, asOf)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExchangeRate), args.Error(1)
}

func (m *MockExchangeRateService) CreateExchangeRate(ctx context.Context, ec domain.EntityContext, req dto.CreateExchangeRateRequest) (*domain.ExchangeRate, error) {
	args := m.Called(ctx, ec, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExchangeRate), args.Error(1)
}

var _ portssvc.ExchangeRateSvcFacade = (*MockExchangeRateService)(nil)
