package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/ifrs_ledger/internal/apperrors"
	"github.com/SscSPs/ifrs_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/ifrs_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/ifrs_ledger/internal/core/ports/services"
	"github.com/SscSPs/ifrs_ledger/internal/platform/metrics"
	"github.com/SscSPs/ifrs_ledger/internal/utils/accounting"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

// DefaultAggregationConcurrency bounds the per-account fan-out of an aggregation.
const DefaultAggregationConcurrency = 8

type reportingService struct {
	BaseService
	accountRepo  portsrepo.AccountReader
	categoryRepo portsrepo.CategoryReader
	ledgerRepo   portsrepo.LedgerReader
	balances     portssvc.AccountBalanceSvc
	periods      portssvc.PeriodSvc
	labels       domain.Labels
	concurrency  int
}

// ReportingServiceOption is a functional option for configuring the reporting service
type ReportingServiceOption func(*reportingService)

// WithReportingLabels sets the labels used to name uncategorised groups.
func WithReportingLabels(labels domain.Labels) ReportingServiceOption {
	return func(s *reportingService) {
		s.labels = labels
	}
}

// WithReportingCategories enables grouping by category name.
func WithReportingCategories(repo portsrepo.CategoryReader) ReportingServiceOption {
	return func(s *reportingService) {
		s.categoryRepo = repo
	}
}

// WithAggregationConcurrency bounds how many accounts are computed at once.
func WithAggregationConcurrency(n int) ReportingServiceOption {
	return func(s *reportingService) {
		if n > 0 {
			s.concurrency = n
		}
	}
}

// NewReportingService creates the chart of accounts aggregator.
func NewReportingService(
	accountRepo portsrepo.AccountReader,
	ledgerRepo portsrepo.LedgerReader,
	balances portssvc.AccountBalanceSvc,
	periods portssvc.PeriodSvc,
	options ...ReportingServiceOption,
) portssvc.ReportingService {
	svc := &reportingService{
		accountRepo: accountRepo,
		ledgerRepo:  ledgerRepo,
		balances:    balances,
		periods:     periods,
		labels:      domain.DefaultLabels(),
		concurrency: DefaultAggregationConcurrency,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.ReportingService = (*reportingService)(nil)

func (s *reportingService) SectionBalances(ctx context.Context, ec domain.EntityContext, types []domain.AccountType, start *time.Time, end *time.Time) (*domain.SectionBalances, error) {
	started := time.Now()
	if len(types) == 0 {
		return nil, apperrors.NewValidationError("at least one account type is required")
	}
	for _, t := range types {
		if !t.IsValid() {
			return nil, apperrors.NewValidationError(fmt.Sprintf("unknown account type %q", t))
		}
	}

	startDate, endDate := s.periods.ResolveRange(ec, start, end)
	if err := ec.Calendar().ValidateRange(startDate, endDate); err != nil {
		return nil, err
	}
	period, err := s.periods.PeriodByYear(ctx, ec, s.periods.Year(ec, endDate))
	if err != nil {
		return nil, err
	}

	accounts, err := s.accountRepo.ListAccountsByTypes(ctx, ec.EntityID(), types)
	if err != nil {
		s.LogError(ctx, err, "Failed to list accounts for section", slog.Any("types", types))
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	names, err := s.categoryNames(ctx, accounts)
	if err != nil {
		return nil, err
	}

	snapshots := make([]domain.AccountSnapshot, len(accounts))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)
	for i := range accounts {
		account := accounts[i]
		g.Go(func() error {
			opening, err := s.balances.OpeningBalanceForPeriod(gctx, account.AccountID, *period)
			if err != nil {
				return err
			}
			current, err := s.ledgerRepo.Movement(gctx, ec.EntityID(), account.AccountID, startDate, endDate)
			if err != nil {
				return fmt.Errorf("failed to query movement of %s: %w", account.AccountID, err)
			}
			snapshots[i] = domain.AccountSnapshot{
				Version:        domain.SnapshotVersion,
				AccountID:      account.AccountID,
				Name:           account.Name,
				AccountType:    account.AccountType,
				TypeLabel:      s.labels.AccountTypeLabel(account.AccountType),
				Code:           account.Code,
				CategoryName:   names[i],
				OpeningBalance: opening,
				CurrentBalance: current,
				ClosingBalance: opening.Add(current),
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		s.LogError(ctx, err, "Section aggregation failed", slog.Any("types", types))
		return nil, err
	}

	result := &domain.SectionBalances{SectionTotal: decimal.Zero, SectionCategories: []domain.CategoryTotal{}}
	for _, snapshot := range snapshots {
		// only significant accounts are reported
		if snapshot.ClosingBalance.IsZero() {
			continue
		}
		result.Add(snapshot)
	}
	metrics.ObserveAggregation("section_balances", started, len(accounts))
	return result, nil
}

// categoryNames returns, per account, its category name or its type label when uncategorised.
func (s *reportingService) categoryNames(ctx context.Context, accounts []domain.Account) ([]string, error) {
	names := make([]string, len(accounts))
	var ids []string
	seen := map[string]bool{}
	for _, a := range accounts {
		if a.CategoryID != nil && !seen[*a.CategoryID] {
			seen[*a.CategoryID] = true
			ids = append(ids, *a.CategoryID)
		}
	}
	categories := map[string]domain.Category{}
	if len(ids) > 0 && s.categoryRepo != nil {
		found, err := s.categoryRepo.FindCategoriesByIDs(ctx, ids)
		if err != nil {
			s.LogError(ctx, err, "Failed to load categories")
			return nil, fmt.Errorf("failed to load categories: %w", err)
		}
		categories = found
	}
	for i, a := range accounts {
		names[i] = s.labels.AccountTypeLabel(a.AccountType)
		if a.CategoryID != nil {
			if c, ok := categories[*a.CategoryID]; ok {
				names[i] = c.Name
			}
		}
	}
	return names, nil
}

func (s *reportingService) Movement(ctx context.Context, ec domain.EntityContext, types []domain.AccountType, start *time.Time, end *time.Time) (decimal.Decimal, error) {
	started := time.Now()
	startDate, endDate := s.periods.ResolveRange(ec, start, end)
	if err := ec.Calendar().ValidateRange(startDate, endDate); err != nil {
		return decimal.Zero, err
	}
	periodStart := s.periods.PeriodStart(ec, endDate)

	opening, err := s.SectionBalances(ctx, ec, types, &periodStart, &startDate)
	if err != nil {
		return decimal.Zero, err
	}
	closing, err := s.SectionBalances(ctx, ec, types, &periodStart, &endDate)
	if err != nil {
		return decimal.Zero, err
	}
	metrics.ObserveAggregation("movement", started, -1)
	return closing.SectionTotal.Sub(opening.SectionTotal).Neg(), nil
}

// sections computes several statement sections over the same range concurrently.
func (s *reportingService) sections(ctx context.Context, ec domain.EntityContext, start, end time.Time, wanted ...domain.StatementSection) (map[domain.StatementSection]domain.StatementLine, error) {
	lines := make([]domain.StatementLine, len(wanted))
	g, gctx := errgroup.WithContext(ctx)
	for i, section := range wanted {
		g.Go(func() error {
			balances, err := s.SectionBalances(gctx, ec, domain.SectionTypes[section], &start, &end)
			if err != nil {
				return err
			}
			lines[i] = domain.StatementLine{
				Section:  section,
				Balances: *balances,
				Total:    accounting.PresentationAmount(section, balances.SectionTotal),
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	out := make(map[domain.StatementSection]domain.StatementLine, len(wanted))
	for _, line := range lines {
		out[line.Section] = line
	}
	return out, nil
}

func (s *reportingService) IncomeStatement(ctx context.Context, ec domain.EntityContext, start *time.Time, end *time.Time) (*domain.IncomeStatement, error) {
	startDate, endDate := s.periods.ResolveRange(ec, start, end)
	if err := ec.Calendar().ValidateRange(startDate, endDate); err != nil {
		return nil, err
	}
	lines, err := s.sections(ctx, ec, startDate, endDate,
		domain.SectionOperatingRevenues, domain.SectionNonOperatingRevenues,
		domain.SectionOperatingExpenses, domain.SectionNonOperatingExpenses)
	if err != nil {
		return nil, err
	}

	statement := &domain.IncomeStatement{
		StartDate:            startDate,
		EndDate:              endDate,
		OperatingRevenues:    lines[domain.SectionOperatingRevenues],
		NonOperatingRevenues: lines[domain.SectionNonOperatingRevenues],
		OperatingExpenses:    lines[domain.SectionOperatingExpenses],
		NonOperatingExpenses: lines[domain.SectionNonOperatingExpenses],
	}
	statement.GrossProfit = statement.OperatingRevenues.Total.Sub(statement.OperatingExpenses.Total)
	statement.TotalRevenue = statement.OperatingRevenues.Total.Add(statement.NonOperatingRevenues.Total)
	statement.TotalExpenses = statement.OperatingExpenses.Total.Add(statement.NonOperatingExpenses.Total)
	statement.NetProfit = statement.TotalRevenue.Sub(statement.TotalExpenses)
	return statement, nil
}

func (s *reportingService) BalanceSheet(ctx context.Context, ec domain.EntityContext, end *time.Time) (*domain.BalanceSheet, error) {
	_, endDate := s.periods.ResolveRange(ec, nil, end)
	periodStart := s.periods.PeriodStart(ec, endDate)

	lines, err := s.sections(ctx, ec, periodStart, endDate,
		domain.SectionAssets, domain.SectionLiabilities, domain.SectionEquity)
	if err != nil {
		return nil, err
	}
	income, err := s.IncomeStatement(ctx, ec, &periodStart, &endDate)
	if err != nil {
		return nil, err
	}

	sheet := &domain.BalanceSheet{
		EndDate:     endDate,
		Assets:      lines[domain.SectionAssets],
		Liabilities: lines[domain.SectionLiabilities],
		Equity:      lines[domain.SectionEquity],
		NetProfit:   income.NetProfit,
	}
	sheet.TotalAssets = sheet.Assets.Total
	sheet.TotalLiabilities = sheet.Liabilities.Total
	sheet.TotalEquity = sheet.Equity.Total.Add(income.NetProfit)
	return sheet, nil
}
