package models

import (
	"database/sql"
	"time"
)

// Account is a row of the accounts table.
type Account struct {
	AccountID    string         `db:"account_id"`
	EntityID     string         `db:"entity_id"`
	Name         string         `db:"name"`
	AccountType  string         `db:"account_type"`
	CategoryID   sql.NullString `db:"category_id"`
	CurrencyCode string         `db:"currency_code"`
	Code         int            `db:"code"`
	Description  string         `db:"description"`
	DeletedAt    *time.Time     `db:"deleted_at"`
	DeletedBy    sql.NullString `db:"deleted_by"`
	AuditFields
}
