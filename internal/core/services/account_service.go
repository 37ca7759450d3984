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
	"github.com/SscSPs/ifrs_ledger/internal/platform/metrics"
	"github.com/SscSPs/ifrs_ledger/internal/utils/accounting"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DefaultCodeAssignmentRetries bounds how often a clashing code is recounted.
const DefaultCodeAssignmentRetries = 3

// accountService implements the AccountSvcFacade interface
type accountService struct {
	BaseService
	accountRepo  portsrepo.AccountRepositoryFacade
	balanceRepo  portsrepo.BalanceReader
	ledgerRepo   portsrepo.LedgerReader
	categoryRepo portsrepo.CategoryReader
	currencyRepo portsrepo.CurrencyReader
	periods      portssvc.PeriodSvc
	labels       domain.Labels
	codeRetries  int
}

// AccountServiceOption is a functional option for configuring the account service
type AccountServiceOption func(*accountService)

// WithCategoryRepository enables category/account type checks on save.
func WithCategoryRepository(repo portsrepo.CategoryReader) AccountServiceOption {
	return func(s *accountService) {
		s.categoryRepo = repo
	}
}

// WithCurrencyRepository enables currency validation on save.
func WithCurrencyRepository(repo portsrepo.CurrencyReader) AccountServiceOption {
	return func(s *accountService) {
		s.currencyRepo = repo
	}
}

// WithAccountLabels replaces the default label and base code table.
func WithAccountLabels(labels domain.Labels) AccountServiceOption {
	return func(s *accountService) {
		s.labels = labels
	}
}

// WithCodeAssignmentRetries sets how many times a code clash is retried.
func WithCodeAssignmentRetries(n int) AccountServiceOption {
	return func(s *accountService) {
		if n >= 0 {
			s.codeRetries = n
		}
	}
}

// NewAccountService creates a new account service with the provided options
func NewAccountService(
	accountRepo portsrepo.AccountRepositoryFacade,
	balanceRepo portsrepo.BalanceReader,
	ledgerRepo portsrepo.LedgerReader,
	periods portssvc.PeriodSvc,
	options ...AccountServiceOption,
) portssvc.AccountSvcFacade {
	svc := &accountService{
		accountRepo: accountRepo,
		balanceRepo: balanceRepo,
		ledgerRepo:  ledgerRepo,
		periods:     periods,
		labels:      domain.DefaultLabels(),
		codeRetries: DefaultCodeAssignmentRetries,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.AccountSvcFacade = (*accountService)(nil)

// findAccount loads an account of the context's entity, soft deleted or not.
func (s *accountService) findAccount(ctx context.Context, ec domain.EntityContext, accountID string) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find account", slog.String("account_id", accountID))
		}
		return nil, err
	}
	if err := s.CheckEntity(ec, account.EntityID, "account "+accountID); err != nil {
		return nil, err
	}
	return account, nil
}

func (s *accountService) GetAccountByID(ctx context.Context, ec domain.EntityContext, accountID string) (*domain.Account, error) {
	account, err := s.findAccount(ctx, ec, accountID)
	if err != nil {
		return nil, err
	}
	if !account.IsActive() {
		return nil, apperrors.NewNotFoundError("account " + accountID)
	}
	return account, nil
}

func (s *accountService) ListAccounts(ctx context.Context, ec domain.EntityContext, limit int, offset int) ([]domain.Account, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	accounts, err := s.accountRepo.ListAccounts(ctx, ec.EntityID(), limit, offset)
	if err != nil {
		s.LogError(ctx, err, "Failed to list accounts", slog.String("entity_id", ec.EntityID()))
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	if accounts == nil {
		return []domain.Account{}, nil
	}
	return accounts, nil
}

func (s *accountService) GetType(accountType domain.AccountType) (string, error) {
	if !accountType.IsValid() {
		return "", apperrors.NewValidationError(fmt.Sprintf("unknown account type %q", accountType))
	}
	return s.labels.AccountTypeLabel(accountType), nil
}

func (s *accountService) GetTypes(accountTypes []domain.AccountType) ([]string, error) {
	for _, t := range accountTypes {
		if !t.IsValid() {
			return nil, apperrors.NewValidationError(fmt.Sprintf("unknown account type %q", t))
		}
	}
	return s.labels.AccountTypeLabels(accountTypes), nil
}

func (s *accountService) CreateAccount(ctx context.Context, ec domain.EntityContext, req dto.CreateAccountRequest) (*domain.Account, error) {
	account := &domain.Account{
		AccountID:    uuid.NewString(),
		EntityID:     ec.EntityID(),
		Name:         req.Name,
		AccountType:  req.AccountType,
		CategoryID:   req.CategoryID,
		CurrencyCode: req.CurrencyCode,
		Description:  req.Description,
	}
	if err := s.SaveAccount(ctx, ec, account); err != nil {
		return nil, err
	}
	s.LogInfo(ctx, "Account created successfully",
		slog.String("account_id", account.AccountID),
		slog.Int("code", account.Code))
	return account, nil
}

func (s *accountService) SaveAccount(ctx context.Context, ec domain.EntityContext, account *domain.Account) error {
	if account.AccountType == "" {
		return apperrors.MissingAccountTypeError{}
	}
	if !account.AccountType.IsValid() {
		return apperrors.NewValidationError(fmt.Sprintf("unknown account type %q", account.AccountType))
	}
	if account.EntityID == "" {
		account.EntityID = ec.EntityID()
	}
	if err := s.CheckEntity(ec, account.EntityID, "account "+account.AccountID); err != nil {
		return err
	}
	if account.AccountID == "" {
		account.AccountID = uuid.NewString()
	}

	assigned := false
	if account.Code == 0 {
		code, err := s.nextCode(ctx, account.EntityID, account.AccountType)
		if err != nil {
			return err
		}
		account.Code = code
		assigned = true
	}

	if err := s.checkCategory(ctx, account); err != nil {
		if assigned {
			account.Code = 0
		}
		return err
	}
	if err := s.checkCurrency(ctx, ec, account); err != nil {
		if assigned {
			account.Code = 0
		}
		return err
	}

	account.Name = domain.NormalizeName(account.Name)
	if account.Name == "" {
		if assigned {
			account.Code = 0
		}
		return apperrors.NewValidationError("account name is required")
	}
	account.Stamp(ec.UserID, ec.Now)

	for attempt := 0; ; attempt++ {
		err := s.accountRepo.SaveAccount(ctx, *account)
		if err == nil {
			break
		}
		if !assigned || !errors.Is(err, apperrors.ErrDuplicate) || attempt >= s.codeRetries {
			if assigned {
				account.Code = 0
			}
			s.LogError(ctx, err, "Failed to save account",
				slog.String("account_id", account.AccountID),
				slog.Int("attempt", attempt))
			return err
		}
		s.LogDebug(ctx, "Account code taken, recounting",
			slog.String("account_type", string(account.AccountType)),
			slog.Int("code", account.Code))
		code, cerr := s.nextCode(ctx, account.EntityID, account.AccountType)
		if cerr != nil {
			account.Code = 0
			return cerr
		}
		if code <= account.Code {
			code = account.Code + 1
		}
		if err := s.checkCodeRange(account.AccountType, code); err != nil {
			account.Code = 0
			return err
		}
		account.Code = code
	}
	return nil
}

// nextCode numbers a new account after every account of its type ever created.
func (s *accountService) nextCode(ctx context.Context, entityID string, accountType domain.AccountType) (int, error) {
	base, ok := s.labels.BaseCode(accountType)
	if !ok {
		return 0, apperrors.NewValidationError(fmt.Sprintf("no base code configured for %s", accountType))
	}
	count, err := s.accountRepo.CountAccountsByType(ctx, entityID, accountType, true)
	if err != nil {
		s.LogError(ctx, err, "Failed to count accounts", slog.String("account_type", string(accountType)))
		return 0, fmt.Errorf("failed to count %s accounts: %w", accountType, err)
	}
	code := base + count + 1
	if err := s.checkCodeRange(accountType, code); err != nil {
		return 0, err
	}
	return code, nil
}

// checkCodeRange rejects a generated code that would run into the next type's range.
func (s *accountService) checkCodeRange(accountType domain.AccountType, code int) error {
	if limit, ok := s.labels.CodeLimit(accountType); ok && code >= limit {
		return apperrors.NewValidationError(fmt.Sprintf("%s account codes are exhausted: %d reaches the range starting at %d",
			s.labels.AccountTypeLabel(accountType), code, limit))
	}
	return nil
}

func (s *accountService) checkCategory(ctx context.Context, account *domain.Account) error {
	if account.CategoryID == nil || *account.CategoryID == "" {
		account.CategoryID = nil
		return nil
	}
	if s.categoryRepo == nil {
		return nil
	}
	category, err := s.categoryRepo.FindCategoryByID(ctx, *account.CategoryID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.NewValidationError("category " + *account.CategoryID + " does not exist")
		}
		return fmt.Errorf("failed to load category: %w", err)
	}
	if category.EntityID != account.EntityID {
		return apperrors.NewValidationError("category " + *account.CategoryID + " does not exist")
	}
	if category.CategoryType != account.AccountType {
		return &apperrors.InvalidCategoryTypeError{
			AccountType:  s.labels.AccountTypeLabel(account.AccountType),
			CategoryType: s.labels.AccountTypeLabel(category.CategoryType),
		}
	}
	return nil
}

func (s *accountService) checkCurrency(ctx context.Context, ec domain.EntityContext, account *domain.Account) error {
	if account.CurrencyCode == "" {
		account.CurrencyCode = ec.Entity.CurrencyCode
	}
	if s.currencyRepo == nil || account.CurrencyCode == ec.Entity.CurrencyCode {
		return nil
	}
	if _, err := s.currencyRepo.FindCurrencyByCode(ctx, account.EntityID, account.CurrencyCode); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.NewValidationError("currency " + account.CurrencyCode + " is not configured")
		}
		return fmt.Errorf("failed to validate currency: %w", err)
	}
	return nil
}

func (s *accountService) DeleteAccount(ctx context.Context, ec domain.EntityContext, accountID string) error {
	account, err := s.GetAccountByID(ctx, ec, accountID)
	if err != nil {
		return err
	}
	postings, err := s.ledgerRepo.CountPostings(ctx, ec.EntityID(), account.AccountID)
	if err != nil {
		s.LogError(ctx, err, "Failed to count postings", slog.String("account_id", accountID))
		return fmt.Errorf("failed to count postings: %w", err)
	}
	closing, err := s.ClosingBalance(ctx, ec, account.AccountID, nil, nil)
	if err != nil {
		return err
	}
	if !closing.IsZero() {
		return &apperrors.HangingTransactionsError{AccountID: account.AccountID, Balance: closing.String()}
	}
	// the delete only lands if no posting arrived since the count
	if err := s.accountRepo.SoftDeleteAccount(ctx, account.AccountID, ec.UserID, ec.Now, postings); err != nil {
		s.LogError(ctx, err, "Failed to delete account", slog.String("account_id", accountID))
		return err
	}
	s.LogInfo(ctx, "Account deleted", slog.String("account_id", accountID))
	return nil
}

func (s *accountService) OpeningBalance(ctx context.Context, ec domain.EntityContext, accountID string, year *int) (balance decimal.Decimal, err error) {
	defer func() { metrics.ObserveBalance("opening", err) }()

	y := s.periods.Year(ec, ec.Now)
	if year != nil {
		y = *year
	}
	return s.openingForYear(ctx, ec, accountID, y)
}

func (s *accountService) openingForYear(ctx context.Context, ec domain.EntityContext, accountID string, year int) (decimal.Decimal, error) {
	if _, err := s.findAccount(ctx, ec, accountID); err != nil {
		return decimal.Zero, err
	}
	period, err := s.periods.PeriodByYear(ctx, ec, year)
	if err != nil {
		return decimal.Zero, err
	}
	return s.OpeningBalanceForPeriod(ctx, accountID, *period)
}

func (s *accountService) OpeningBalanceForPeriod(ctx context.Context, accountID string, period domain.ReportingPeriod) (decimal.Decimal, error) {
	balances, err := s.balanceRepo.ListBalances(ctx, accountID, period.ReportingPeriodID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list balances",
			slog.String("account_id", accountID),
			slog.Int("year", period.CalendarYear))
		return decimal.Zero, fmt.Errorf("failed to list balances: %w", err)
	}
	return accounting.SumBalances(balances)
}

func (s *accountService) ClosingBalance(ctx context.Context, ec domain.EntityContext, accountID string, start *time.Time, end *time.Time) (balance decimal.Decimal, err error) {
	defer func() { metrics.ObserveBalance("closing", err) }()

	startDate, endDate := s.periods.ResolveRange(ec, start, end)
	if err = ec.Calendar().ValidateRange(startDate, endDate); err != nil {
		return decimal.Zero, err
	}
	opening, err := s.openingForYear(ctx, ec, accountID, s.periods.Year(ec, endDate))
	if err != nil {
		return decimal.Zero, err
	}
	movement, err := s.ledgerRepo.Movement(ctx, ec.EntityID(), accountID, startDate, endDate)
	if err != nil {
		s.LogError(ctx, err, "Failed to query ledger movement", slog.String("account_id", accountID))
		return decimal.Zero, fmt.Errorf("failed to query ledger movement: %w", err)
	}
	return opening.Add(movement), nil
}
