package services

import (
	"context"

	"github.com/SscSPs/ifrs_ledger/internal/core/domain"
	"github.com/SscSPs/ifrs_ledger/internal/dto"
)

// ClearingSvc gates and records clearing relationships between transactions.
type ClearingSvc interface {
	// Clearers returns the types allowed to clear a transaction of the given type.
	Clearers(transactionType domain.TransactionType) []domain.TransactionType

	// ValidateClearing checks the type table for a cleared/clearing pair.
	ValidateClearing(cleared domain.TransactionType, clearing domain.TransactionType) error

	// Clear links a clearing transaction to a transaction it offsets.
	Clear(ctx context.Context, ec domain.EntityContext, req dto.CreateAssignmentRequest) (*domain.Assignment, error)
}
