package domain

// Category groups accounts of a single account type for report sectioning.
type Category struct {
	CategoryID   string      `json:"categoryID"`
	EntityID     string      `json:"entityID"`
	Name         string      `json:"name"`
	CategoryType AccountType `json:"categoryType"`
	AuditFields
}
