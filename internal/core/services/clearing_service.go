package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SscSPs/ifrs_ledger/internal/apperrors"
	"github.com/SscSPs/ifrs_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/ifrs_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/ifrs_ledger/internal/core/ports/services"
	"github.com/SscSPs/ifrs_ledger/internal/dto"
	"github.com/SscSPs/ifrs_ledger/internal/platform/metrics"
	"github.com/SscSPs/ifrs_ledger/internal/utils/accounting"
	"github.com/SscSPs/ifrs_ledger/internal/utils/ids"
)

type clearingService struct {
	BaseService
	txnRepo portsrepo.TransactionRepositoryWithTx
	rules   domain.ClearingRules
}

// NewClearingService creates the clearing service over an injected label table.
func NewClearingService(txnRepo portsrepo.TransactionRepositoryWithTx, labels domain.Labels) portssvc.ClearingSvc {
	return &clearingService{txnRepo: txnRepo, rules: domain.NewClearingRules(labels)}
}

var _ portssvc.ClearingSvc = (*clearingService)(nil)

func (s *clearingService) Clearers(transactionType domain.TransactionType) []domain.TransactionType {
	return s.rules.Clearers(transactionType)
}

func (s *clearingService) ValidateClearing(cleared domain.TransactionType, clearing domain.TransactionType) error {
	if !cleared.IsValid() {
		return apperrors.NewValidationError(fmt.Sprintf("unknown transaction type %q", cleared))
	}
	if !clearing.IsValid() {
		return apperrors.NewValidationError(fmt.Sprintf("unknown transaction type %q", clearing))
	}
	return s.rules.Validate(cleared, clearing)
}

func (s *clearingService) Clear(ctx context.Context, ec domain.EntityContext, req dto.CreateAssignmentRequest) (assignment *domain.Assignment, err error) {
	defer func() { metrics.ObserveClearing(err) }()

	if req.TransactionID == req.ClearedID {
		return nil, apperrors.NewValidationError("a transaction cannot clear itself")
	}

	tx, err := s.txnRepo.Begin(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to begin clearing transaction")
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			if rbErr := s.txnRepo.Rollback(ctx, tx); rbErr != nil {
				s.LogError(ctx, rbErr, "Failed to roll back clearing")
			}
		}
	}()

	txns, err := s.txnRepo.FindTransactionsForUpdate(ctx, tx, []string{req.TransactionID, req.ClearedID})
	if err != nil {
		return nil, fmt.Errorf("failed to lock transactions: %w", err)
	}
	clearing, ok := txns[req.TransactionID]
	if !ok || clearing.EntityID != ec.EntityID() {
		return nil, apperrors.NewNotFoundError("transaction " + req.TransactionID)
	}
	cleared, ok := txns[req.ClearedID]
	if !ok || cleared.EntityID != ec.EntityID() {
		return nil, apperrors.NewNotFoundError("transaction " + req.ClearedID)
	}

	if err = s.ValidateClearing(cleared.TransactionType, clearing.TransactionType); err != nil {
		return nil, err
	}
	if cleared.IsCleared() {
		err = apperrors.NewValidationError("transaction " + cleared.TransactionID + " is already cleared")
		return nil, err
	}
	if err = accounting.ValidateClearingAmount(req.Amount, clearing, cleared); err != nil {
		return nil, err
	}

	date := ec.Now
	if req.AssignmentDate != nil {
		date = *req.AssignmentDate
	}
	if date.Before(cleared.TransactionDate) || date.Before(clearing.TransactionDate) {
		err = apperrors.NewValidationError("assignment date cannot precede either transaction")
		return nil, err
	}

	a := domain.Assignment{
		AssignmentID:   ids.New(ec.Now),
		EntityID:       ec.EntityID(),
		TransactionID:  clearing.TransactionID,
		ClearedID:      cleared.TransactionID,
		Amount:         req.Amount,
		AssignmentDate: date,
	}
	a.Stamp(ec.UserID, ec.Now)

	if err = s.txnRepo.SaveAssignmentInTx(ctx, tx, a, req.Amount); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, err
		}
		s.LogError(ctx, err, "Failed to save assignment", slog.String("assignment_id", a.AssignmentID))
		return nil, fmt.Errorf("failed to save assignment: %w", err)
	}
	if err = s.txnRepo.Commit(ctx, tx); err != nil {
		s.LogError(ctx, err, "Failed to commit clearing")
		return nil, fmt.Errorf("failed to commit clearing: %w", err)
	}

	s.LogInfo(ctx, "Transaction cleared",
		slog.String("assignment_id", a.AssignmentID),
		slog.String("cleared_id", a.ClearedID),
		slog.String("amount", a.Amount.String()))
	return &a, nil
}
