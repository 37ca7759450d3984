package services

import (
	"context"
	"time"

	"github.com/SscSPs/ifrs_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ReportingService groups account balances into report sections.
type ReportingService interface {
	// SectionBalances aggregates the non-zero accounts of the given types by category.
	SectionBalances(ctx context.Context, ec domain.EntityContext, types []domain.AccountType, start *time.Time, end *time.Time) (*domain.SectionBalances, error)

	// Movement returns the sign flipped change of the section total between start and end.
	Movement(ctx context.Context, ec domain.EntityContext, types []domain.AccountType, start *time.Time, end *time.Time) (decimal.Decimal, error)

	// BalanceSheet reports assets, liabilities and equity as at end.
	BalanceSheet(ctx context.Context, ec domain.EntityContext, end *time.Time) (*domain.BalanceSheet, error)

	// IncomeStatement reports revenues and expenses between start and end.
	IncomeStatement(ctx context.Context, ec domain.EntityContext, start *time.Time, end *time.Time) (*domain.IncomeStatement, error)
}
