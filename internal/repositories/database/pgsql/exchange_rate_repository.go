package pgsql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/ifrs_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/ifrs_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/ifrs_ledger/internal/models"
	"github.com/SscSPs/ifrs_ledger/internal/utils/mapping"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxExchangeRateRepository implements the exchange rate ports using pgxpool.
type PgxExchangeRateRepository struct {
	BaseRepository
}

// newPgxExchangeRateRepository creates a new PgxExchangeRateRepository.
func newPgxExchangeRateRepository(db *pgxpool.Pool) portsrepo.ExchangeRateRepositoryFacade {
	return &PgxExchangeRateRepository{
		BaseRepository: BaseRepository{Pool: db},
	}
}

var _ portsrepo.ExchangeRateRepositoryFacade = (*PgxExchangeRateRepository)(nil)

// SaveExchangeRate inserts a rate or replaces the one already valid from the same date.
func (r *PgxExchangeRateRepository) SaveExchangeRate(ctx context.Context, rate domain.ExchangeRate) error {
	modelRate := mapping.ToModelExchangeRate(rate)
	modelRate.CurrencyCode = strings.ToUpper(modelRate.CurrencyCode)

	_, err := r.Pool.Exec(ctx, `
		INSERT INTO exchange_rates (
			exchange_rate_id, entity_id, currency_code, valid_from, rate,
			created_at, created_by, last_updated_at, last_updated_by
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (entity_id, currency_code, valid_from) DO UPDATE SET
			rate = EXCLUDED.rate,
			last_updated_at = EXCLUDED.last_updated_at,
			last_updated_by = EXCLUDED.last_updated_by;`,
		modelRate.ExchangeRateID, modelRate.EntityID, modelRate.CurrencyCode, modelRate.ValidFrom, modelRate.Rate,
		modelRate.CreatedAt, modelRate.CreatedBy, modelRate.LastUpdatedAt, modelRate.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save exchange rate for %s: %w", modelRate.CurrencyCode, err)
	}
	return nil
}

// FindEffectiveRate returns the latest rate for a currency valid on or before asOf.
func (r *PgxExchangeRateRepository) FindEffectiveRate(ctx context.Context, entityID string, currencyCode string, asOf time.Time) (*domain.ExchangeRate, error) {
	query := `
		SELECT exchange_rate_id, entity_id, currency_code, valid_from, rate,
			created_at, created_by, last_updated_at, last_updated_by
		FROM exchange_rates
		WHERE entity_id = $1 AND currency_code = $2 AND valid_from <= $3
		ORDER BY valid_from DESC
		LIMIT 1;
	`
	var m models.ExchangeRate
	err := r.Pool.QueryRow(ctx, query, entityID, strings.ToUpper(currencyCode), asOf).Scan(
		&m.ExchangeRateID,
		&m.EntityID,
		&m.CurrencyCode,
		&m.ValidFrom,
		&m.Rate,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		return nil, notFoundOr(err, "failed to find %s rate as of %s", currencyCode, asOf.Format(time.DateOnly))
	}
	rate := mapping.ToDomainExchangeRate(m)
	return &rate, nil
}
