package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/ifrs_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/ifrs_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/ifrs_ledger/internal/models"
	"github.com/SscSPs/ifrs_ledger/internal/utils/mapping"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxEntityRepository struct {
	BaseRepository
}

func newPgxEntityRepository(pool *pgxpool.Pool) portsrepo.EntityReader {
	return &PgxEntityRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.EntityReader = (*PgxEntityRepository)(nil)

// FindEntityByID retrieves an entity by its ID.
func (r *PgxEntityRepository) FindEntityByID(ctx context.Context, entityID string) (*domain.Entity, error) {
	query := `
		SELECT entity_id, name, currency_code, year_start_month, created_at, created_by, last_updated_at, last_updated_by
		FROM entities
		WHERE entity_id = $1;
	`
	var m models.Entity
	err := r.Pool.QueryRow(ctx, query, entityID).Scan(
		&m.EntityID,
		&m.Name,
		&m.CurrencyCode,
		&m.YearStartMonth,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		return nil, notFoundOr(err, "failed to find entity %s", entityID)
	}
	entity := mapping.ToDomainEntity(m)
	return &entity, nil
}

// IsUserMember reports whether a user belongs to an entity.
func (r *PgxEntityRepository) IsUserMember(ctx context.Context, entityID string, userID string) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM entity_users WHERE entity_id = $1 AND user_id = $2);`
	var member bool
	if err := r.Pool.QueryRow(ctx, query, entityID, userID).Scan(&member); err != nil {
		return false, fmt.Errorf("failed to check membership of %s in %s: %w", userID, entityID, err)
	}
	return member, nil
}
