package models

// Entity is a row of the entities table.
type Entity struct {
	EntityID       string `db:"entity_id"`
	Name           string `db:"name"`
	CurrencyCode   string `db:"currency_code"`
	YearStartMonth int    `db:"year_start_month"`
	AuditFields
}
