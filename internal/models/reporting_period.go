package models

// ReportingPeriod is a row of the reporting_periods table.
type ReportingPeriod struct {
	ReportingPeriodID string `db:"reporting_period_id"`
	EntityID          string `db:"entity_id"`
	CalendarYear      int    `db:"calendar_year"`
	PeriodCount       int    `db:"period_count"`
	Status            string `db:"status"`
	AuditFields
}
