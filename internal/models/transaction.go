package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is the header of a posted document.
type Transaction struct {
	TransactionID   string          `db:"transaction_id"`
	EntityID        string          `db:"entity_id"`
	TransactionType string          `db:"transaction_type"`
	TransactionDate time.Time       `db:"transaction_date"`
	CurrencyCode    string          `db:"currency_code"`
	Amount          decimal.Decimal `db:"amount"`
	ClearedAmount   decimal.Decimal `db:"cleared_amount"`
	Narration       string          `db:"narration"`
}

// Assignment is a row of the assignments table.
type Assignment struct {
	AssignmentID   string          `db:"assignment_id"`
	EntityID       string          `db:"entity_id"`
	TransactionID  string          `db:"transaction_id"`
	ClearedID      string          `db:"cleared_id"`
	Amount         decimal.Decimal `db:"amount"`
	AssignmentDate time.Time       `db:"assignment_date"`
	AuditFields
}
