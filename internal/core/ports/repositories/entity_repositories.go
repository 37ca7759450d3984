package repositories

import (
	"context"

	"github.com/SscSPs/ifrs_ledger/internal/core/domain"
)

// EntityReader defines read operations for reporting entities
type EntityReader interface {
	// FindEntityByID retrieves an entity by its ID.
	FindEntityByID(ctx context.Context, entityID string) (*domain.Entity, error)

	// IsUserMember reports whether a user may act on an entity.
	IsUserMember(ctx context.Context, entityID string, userID string) (bool, error)
}
