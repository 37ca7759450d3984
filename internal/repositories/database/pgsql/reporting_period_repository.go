package pgsql

import (
	"context"

	"github.com/SscSPs/ifrs_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/ifrs_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/ifrs_ledger/internal/models"
	"github.com/SscSPs/ifrs_ledger/internal/utils/mapping"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxReportingPeriodRepository struct {
	BaseRepository
}

func newPgxReportingPeriodRepository(pool *pgxpool.Pool) portsrepo.ReportingPeriodReader {
	return &PgxReportingPeriodRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ReportingPeriodReader = (*PgxReportingPeriodRepository)(nil)

// FindPeriodByYear returns the entity's reporting period for a fiscal year.
func (r *PgxReportingPeriodRepository) FindPeriodByYear(ctx context.Context, entityID string, year int) (*domain.ReportingPeriod, error) {
	query := `
		SELECT reporting_period_id, entity_id, calendar_year, period_count, status,
			created_at, created_by, last_updated_at, last_updated_by
		FROM reporting_periods
		WHERE entity_id = $1 AND calendar_year = $2;
	`
	var m models.ReportingPeriod
	err := r.Pool.QueryRow(ctx, query, entityID, year).Scan(
		&m.ReportingPeriodID,
		&m.EntityID,
		&m.CalendarYear,
		&m.PeriodCount,
		&m.Status,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		return nil, notFoundOr(err, "failed to find reporting period %d of %s", year, entityID)
	}
	period := mapping.ToDomainReportingPeriod(m)
	return &period, nil
}
