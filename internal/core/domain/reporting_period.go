package domain

import (
	"fmt"
	"time"

	"github.com/SscSPs/ifrs_ledger/internal/apperrors"
)

// PeriodStatus is maintained by the period-close process outside this core.
type PeriodStatus string

const (
	PeriodOpen      PeriodStatus = "OPEN"
	PeriodAdjusting PeriodStatus = "ADJUSTING"
	PeriodClosed    PeriodStatus = "CLOSED"
)

// ReportingPeriod is one fiscal year of an entity.
type ReportingPeriod struct {
	ReportingPeriodID string       `json:"reportingPeriodID"`
	EntityID          string       `json:"entityID"`
	CalendarYear      int          `json:"calendarYear"`
	PeriodCount       int          `json:"periodCount"`
	Status            PeriodStatus `json:"status"`
	AuditFields
}

// FiscalCalendar maps dates onto contiguous, non-overlapping fiscal years.
// A fiscal year is named after the calendar year in which it starts.
type FiscalCalendar struct {
	YearStartMonth int
}

func (c FiscalCalendar) startMonth() time.Month {
	if c.YearStartMonth < 1 || c.YearStartMonth > 12 {
		return time.January
	}
	return time.Month(c.YearStartMonth)
}

// Year returns the fiscal year that contains date.
func (c FiscalCalendar) Year(date time.Time) int {
	if date.Month() < c.startMonth() {
		return date.Year() - 1
	}
	return date.Year()
}

// PeriodStart returns midnight of the first day of the fiscal year containing date.
func (c FiscalCalendar) PeriodStart(date time.Time) time.Time {
	return time.Date(c.Year(date), c.startMonth(), 1, 0, 0, 0, 0, date.Location())
}

// PeriodEnd returns the last instant of the fiscal year containing date.
func (c FiscalCalendar) PeriodEnd(date time.Time) time.Time {
	return c.PeriodStart(date).AddDate(1, 0, 0).Add(-time.Nanosecond)
}

// ValidateRange rejects a reversed range and one starting before the fiscal
// year that contains end. Opening balances are stored per fiscal year, so a
// range may not straddle a year boundary.
func (c FiscalCalendar) ValidateRange(start, end time.Time) error {
	if end.Before(start) {
		return fmt.Errorf("%w: end date must not be before start date", apperrors.ErrValidation)
	}
	if periodStart := c.PeriodStart(end); start.Before(periodStart) {
		return fmt.Errorf("%w: start date %s precedes fiscal year %d beginning %s",
			apperrors.ErrValidation, start.Format(time.DateOnly), c.Year(end), periodStart.Format(time.DateOnly))
	}
	return nil
}
