package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/ifrs_ledger/internal/apperrors"
	"github.com/SscSPs/ifrs_ledger/internal/core/domain"
	"github.com/SscSPs/ifrs_ledger/internal/middleware"
)

// BaseService provides common functionality for all services
type BaseService struct{}

// GetLogger gets the logger from context or returns a default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	return middleware.GetLoggerFromCtx(ctx)
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	args := make([]any, 0, len(keyvals)+1)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	s.GetLogger(ctx).Error(msg, args...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Info(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Debug(msg, keyvals...)
}

// CheckEntity rejects an unresolved context and records owned by another entity.
// Foreign records are reported as not found so their existence is not leaked.
func (s *BaseService) CheckEntity(ec domain.EntityContext, ownerEntityID string, what string) error {
	if ec.EntityID() == "" {
		return fmt.Errorf("%w: no active entity", apperrors.ErrForbidden)
	}
	if ownerEntityID != ec.EntityID() {
		return apperrors.NewNotFoundError(what)
	}
	return nil
}
