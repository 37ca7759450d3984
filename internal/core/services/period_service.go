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
)

type periodService struct {
	BaseService
	periodRepo portsrepo.ReportingPeriodReader
}

// NewPeriodService creates the reporting period resolver.
func NewPeriodService(periodRepo portsrepo.ReportingPeriodReader) portssvc.PeriodSvc {
	return &periodService{periodRepo: periodRepo}
}

var _ portssvc.PeriodSvc = (*periodService)(nil)

func (s *periodService) Year(ec domain.EntityContext, date time.Time) int {
	return ec.Calendar().Year(date)
}

func (s *periodService) PeriodStart(ec domain.EntityContext, date time.Time) time.Time {
	return ec.Calendar().PeriodStart(date)
}

func (s *periodService) ResolveRange(ec domain.EntityContext, start *time.Time, end *time.Time) (time.Time, time.Time) {
	e := ec.Now
	if end != nil {
		e = *end
	}
	st := s.PeriodStart(ec, e)
	if start != nil {
		st = *start
	}
	return st, e
}

func (s *periodService) PeriodByYear(ctx context.Context, ec domain.EntityContext, year int) (*domain.ReportingPeriod, error) {
	period, err := s.periodRepo.FindPeriodByYear(ctx, ec.EntityID(), year)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			s.LogDebug(ctx, "No reporting period for year", slog.String("entity_id", ec.EntityID()), slog.Int("year", year))
			return nil, &apperrors.PeriodNotFoundError{EntityID: ec.EntityID(), Year: year}
		}
		s.LogError(ctx, err, "Failed to find reporting period", slog.String("entity_id", ec.EntityID()), slog.Int("year", year))
		return nil, fmt.Errorf("failed to find reporting period for %d: %w", year, err)
	}
	return period, nil
}

func (s *periodService) CurrentPeriod(ctx context.Context, ec domain.EntityContext) (*domain.ReportingPeriod, error) {
	return s.PeriodByYear(ctx, ec, s.Year(ec, ec.Now))
}
