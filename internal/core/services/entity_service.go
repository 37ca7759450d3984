package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/ifrs_ledger/internal/apperrors"
	"github.com/SscSPs/ifrs_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/ifrs_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/ifrs_ledger/internal/core/ports/services"
)

type entityService struct {
	BaseService
	entityRepo portsrepo.EntityReader
	clock      func() time.Time
}

// EntityServiceOption is a functional option for configuring the entity service
type EntityServiceOption func(*entityService)

// WithClock overrides the clock stamped into resolved contexts.
func WithClock(clock func() time.Time) EntityServiceOption {
	return func(s *entityService) {
		if clock != nil {
			s.clock = clock
		}
	}
}

// NewEntityService creates the service that resolves entity contexts.
func NewEntityService(entityRepo portsrepo.EntityReader, options ...EntityServiceOption) portssvc.EntitySvc {
	svc := &entityService{entityRepo: entityRepo, clock: time.Now}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.EntitySvc = (*entityService)(nil)

func (s *entityService) ResolveContext(ctx context.Context, entityID string, userID string) (domain.EntityContext, error) {
	if entityID == "" || userID == "" {
		return domain.EntityContext{}, fmt.Errorf("%w: no active entity or user", apperrors.ErrForbidden)
	}
	member, err := s.entityRepo.IsUserMember(ctx, entityID, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to check entity membership", slog.String("entity_id", entityID))
		return domain.EntityContext{}, fmt.Errorf("failed to check entity membership: %w", err)
	}
	if !member {
		s.LogInfo(ctx, "User is not a member of entity", slog.String("entity_id", entityID), slog.String("user_id", userID))
		return domain.EntityContext{}, fmt.Errorf("%w: user may not act on entity %s", apperrors.ErrForbidden, entityID)
	}
	entity, err := s.entityRepo.FindEntityByID(ctx, entityID)
	if err != nil {
		return domain.EntityContext{}, err
	}
	return domain.EntityContext{Entity: *entity, UserID: userID, Now: s.clock()}, nil
}
