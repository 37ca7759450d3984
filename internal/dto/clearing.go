package dto

import (
	"time"

	"github.com/SscSPs/ifrs_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateAssignmentRequest clears part or all of one transaction with another.
type CreateAssignmentRequest struct {
	TransactionID  string          `json:"transactionID" binding:"required"` // clearing transaction
	ClearedID      string          `json:"clearedID" binding:"required"`
	Amount         decimal.Decimal `json:"amount" binding:"required"`
	AssignmentDate *time.Time      `json:"assignmentDate"` // defaults to now
}

// AssignmentResponse defines the data returned for a recorded assignment.
type AssignmentResponse struct {
	AssignmentID   string          `json:"assignmentID"`
	TransactionID  string          `json:"transactionID"`
	ClearedID      string          `json:"clearedID"`
	Amount         decimal.Decimal `json:"amount"`
	AssignmentDate time.Time       `json:"assignmentDate"`
	CreatedBy      string          `json:"createdBy"`
}

// ToAssignmentResponse converts a domain.Assignment to AssignmentResponse DTO
func ToAssignmentResponse(a *domain.Assignment) AssignmentResponse {
	return AssignmentResponse{
		AssignmentID:   a.AssignmentID,
		TransactionID:  a.TransactionID,
		ClearedID:      a.ClearedID,
		Amount:         a.Amount,
		AssignmentDate: a.AssignmentDate,
		CreatedBy:      a.CreatedBy,
	}
}

// ClearersResponse lists the transaction types allowed to clear a type.
type ClearersResponse struct {
	TransactionType domain.TransactionType   `json:"transactionType"`
	Label           string                   `json:"label"`
	Clearers        []domain.TransactionType `json:"clearers"`
	ClearerLabels   []string                 `json:"clearerLabels"`
}

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}
