package domain

import "time"

// AuditFields holds who created and last touched a record, and when.
type AuditFields struct {
	CreatedAt     time.Time `json:"createdAt"`
	CreatedBy     string    `json:"createdBy"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
	LastUpdatedBy string    `json:"lastUpdatedBy"`
}

// Stamp sets both creation and update fields.
func (a *AuditFields) Stamp(userID string, now time.Time) {
	if a.CreatedAt.IsZero() {
		a.CreatedAt = now
		a.CreatedBy = userID
	}
	a.LastUpdatedAt = now
	a.LastUpdatedBy = userID
}
