package services

import (
	"context"
	"time"

	"github.com/SscSPs/ifrs_ledger/internal/core/domain"
)

// PeriodSvc resolves dates onto the entity's reporting periods.
type PeriodSvc interface {
	// Year returns the fiscal year containing date.
	Year(ec domain.EntityContext, date time.Time) int

	// PeriodStart returns the start of the fiscal year containing date.
	PeriodStart(ec domain.EntityContext, date time.Time) time.Time

	// ResolveRange applies the defaults end = ec.Now and start = PeriodStart(end).
	ResolveRange(ec domain.EntityContext, start *time.Time, end *time.Time) (time.Time, time.Time)

	// PeriodByYear returns the period for a year or a PeriodNotFound error.
	PeriodByYear(ctx context.Context, ec domain.EntityContext, year int) (*domain.ReportingPeriod, error)

	// CurrentPeriod returns the period containing ec.Now.
	CurrentPeriod(ctx context.Context, ec domain.EntityContext) (*domain.ReportingPeriod, error)
}
