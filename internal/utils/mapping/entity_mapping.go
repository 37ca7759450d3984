package mapping

import (
	"github.com/SscSPs/ifrs_ledger/internal/core/domain"
	"github.com/SscSPs/ifrs_ledger/internal/models"
)

// ToDomainEntity converts a model Entity to a domain Entity
func ToDomainEntity(m models.Entity) domain.Entity {
	return domain.Entity{
		EntityID:       m.EntityID,
		Name:           m.Name,
		CurrencyCode:   m.CurrencyCode,
		YearStartMonth: m.YearStartMonth,
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainReportingPeriod converts a model ReportingPeriod to a domain ReportingPeriod
func ToDomainReportingPeriod(m models.ReportingPeriod) domain.ReportingPeriod {
	return domain.ReportingPeriod{
		ReportingPeriodID: m.ReportingPeriodID,
		EntityID:          m.EntityID,
		CalendarYear:      m.CalendarYear,
		PeriodCount:       m.PeriodCount,
		Status:            domain.PeriodStatus(m.Status),
		AuditFields:       ToDomainAuditFields(m.AuditFields),
	}
}
