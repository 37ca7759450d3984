package models

// Category is a row of the categories table.
type Category struct {
	CategoryID   string `db:"category_id"`
	EntityID     string `db:"entity_id"`
	Name         string `db:"name"`
	CategoryType string `db:"category_type"`
	AuditFields
}
