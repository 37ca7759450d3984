package repositories

import (
	"context"

	"github.com/SscSPs/ifrs_ledger/internal/core/domain"
)

// ReportingPeriodReader defines read operations for reporting periods
type ReportingPeriodReader interface {
	// FindPeriodByYear returns the entity's period for a calendar year or apperrors.ErrNotFound.
	FindPeriodByYear(ctx context.Context, entityID string, year int) (*domain.ReportingPeriod, error)
}
