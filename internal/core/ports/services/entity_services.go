package services

import (
	"context"

	"github.com/SscSPs/ifrs_ledger/internal/core/domain"
)

// EntitySvc turns request identity into an explicit EntityContext.
type EntitySvc interface {
	// ResolveContext loads the entity and checks that the user may act on it.
	ResolveContext(ctx context.Context, entityID string, userID string) (domain.EntityContext, error)
}
