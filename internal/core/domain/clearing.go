package domain

import (
	"errors"
	"time"

	"github.com/SscSPs/ifrs_ledger/internal/apperrors"
	"github.com/shopspring/decimal"
)

// Assignment links a clearing transaction to a transaction it offsets.
type Assignment struct {
	AssignmentID   string          `json:"assignmentID"`
	EntityID       string          `json:"entityID"`
	TransactionID  string          `json:"transactionID"` // the clearing transaction
	ClearedID      string          `json:"clearedID"`     // the transaction being cleared
	Amount         decimal.Decimal `json:"amount"`
	AssignmentDate time.Time       `json:"assignmentDate"`
	AuditFields
}

// ValidateClearing fails with an UnclearableTransactionError naming
// transactionType and the allowed set when transactionType is not in allowed.
func ValidateClearing(transactionType TransactionType, allowed []TransactionType, labels Labels) error {
	for _, t := range allowed {
		if t == transactionType {
			return nil
		}
	}
	return &apperrors.UnclearableTransactionError{
		TransactionType: labels.TransactionTypeLabel(transactionType),
		Allowed:         labels.TransactionTypeLabels(allowed),
	}
}

// ClearingRules answers which transaction types may clear a transaction of a given type.
type ClearingRules struct {
	labels Labels
}

// NewClearingRules builds the rules from an injected label table.
func NewClearingRules(labels Labels) ClearingRules {
	return ClearingRules{labels: labels}
}

// Clearers returns the types allowed to clear a transaction of type cleared.
func (r ClearingRules) Clearers(cleared TransactionType) []TransactionType {
	return r.labels.Clearables[cleared]
}

// Validate checks that a transaction of type clearing may clear one of type cleared.
// The error names the cleared type and the types that could have cleared it.
func (r ClearingRules) Validate(cleared, clearing TransactionType) error {
	err := ValidateClearing(clearing, r.Clearers(cleared), r.labels)
	var unclearable *apperrors.UnclearableTransactionError
	if errors.As(err, &unclearable) {
		unclearable.TransactionType = r.labels.TransactionTypeLabel(cleared)
	}
	return err
}
