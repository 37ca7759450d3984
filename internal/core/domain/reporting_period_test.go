package domain_test

import (
	"testing"
	"time"

	"github.com/SscSPs/ifrs_ledger/internal/apperrors"
	"github.com/SscSPs/ifrs_ledger/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestFiscalCalendar_YearAndPeriodStart(t *testing.T) {
	tests := []struct {
		name       string
		startMonth int
		date       time.Time
		wantYear   int
		wantStart  time.Time
	}{
		{
			name:       "calendar year",
			startMonth: 1,
			date:       time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC),
			wantYear:   2024,
			wantStart:  time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:       "unset start month behaves as January",
			startMonth: 0,
			date:       time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC),
			wantYear:   2024,
			wantStart:  time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:       "april year, date after start",
			startMonth: 4,
			date:       time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC),
			wantYear:   2024,
			wantStart:  time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:       "april year, date before start belongs to previous year",
			startMonth: 4,
			date:       time.Date(2024, 3, 31, 23, 59, 0, 0, time.UTC),
			wantYear:   2023,
			wantStart:  time.Date(2023, 4, 1, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cal := domain.FiscalCalendar{YearStartMonth: tt.startMonth}
			assert.Equal(t, tt.wantYear, cal.Year(tt.date))
			assert.True(t, tt.wantStart.Equal(cal.PeriodStart(tt.date)), "got %s", cal.PeriodStart(tt.date))
		})
	}
}

func TestFiscalCalendar_PeriodsAreContiguous(t *testing.T) {
	cal := domain.FiscalCalendar{YearStartMonth: 7}
	date := time.Date(2022, 8, 15, 0, 0, 0, 0, time.UTC)

	end := cal.PeriodEnd(date)
	next := end.Add(time.Nanosecond)

	assert.Equal(t, cal.Year(date)+1, cal.Year(next))
	assert.True(t, next.Equal(cal.PeriodStart(next)))
}

func TestFiscalCalendar_ValidateRange(t *testing.T) {
	cal := domain.FiscalCalendar{YearStartMonth: 4}
	tests := []struct {
		name    string
		start   time.Time
		end     time.Time
		wantErr bool
	}{
		{"whole fiscal year", time.Date(2023, 4, 1, 0, 0, 0, 0, time.UTC), time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC), false},
		{"empty range", time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC), time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC), false},
		{"reversed", time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC), true},
		{"starts in the previous fiscal year", time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC), time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC), true},
		{"calendar boundary inside one fiscal year", time.Date(2023, 12, 1, 0, 0, 0, 0, time.UTC), time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := cal.ValidateRange(tt.start, tt.end)
			if tt.wantErr {
				assert.ErrorIs(t, err, apperrors.ErrValidation)
				return
			}
			assert.NoError(t, err)
		})
	}
}
