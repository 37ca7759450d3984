package models

// Currency is a currency known to an entity.
type Currency struct {
	CurrencyCode string `db:"currency_code"` // e.g., "USD"
	EntityID     string `db:"entity_id"`
	Symbol       string `db:"symbol"` // e.g., "$"
	Name         string `db:"name"`   // e.g., "US Dollar"
	AuditFields
}
