package domain

// Currency is an ISO style currency known to an entity.
type Currency struct {
	CurrencyCode string `json:"currencyCode"` // e.g. "USD"
	Name         string `json:"name"`
	Symbol       string `json:"symbol"`
	EntityID     string `json:"entityID"`
	AuditFields
}
