package domain

import "time"

// Entity is a reporting organisation with one home currency and a fiscal calendar.
type Entity struct {
	EntityID       string `json:"entityID"`
	Name           string `json:"name"`
	CurrencyCode   string `json:"currencyCode"`   // reporting (home) currency
	YearStartMonth int    `json:"yearStartMonth"` // 1..12, 1 = calendar year
	AuditFields
}

// EntityContext carries the active entity, the acting user and the clock
// used to resolve omitted dates. It is passed explicitly into every
// balance and aggregation call.
type EntityContext struct {
	Entity Entity
	UserID string
	Now    time.Time
}

// NewEntityContext builds a context whose clock is the current time.
func NewEntityContext(entity Entity, userID string) EntityContext {
	return EntityContext{Entity: entity, UserID: userID, Now: time.Now()}
}

// EntityID is a shortcut for ec.Entity.EntityID.
func (ec EntityContext) EntityID() string {
	return ec.Entity.EntityID
}

// Calendar returns the fiscal calendar of the context's entity.
func (ec EntityContext) Calendar() FiscalCalendar {
	return FiscalCalendar{YearStartMonth: ec.Entity.YearStartMonth}
}
