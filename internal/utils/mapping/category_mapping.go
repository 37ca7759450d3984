package mapping

import (
	"github.com/SscSPs/ifrs_ledger/internal/core/domain"
	"github.com/SscSPs/ifrs_ledger/internal/models"
)

// ToDomainCategory converts a model Category to a domain Category
func ToDomainCategory(m models.Category) domain.Category {
	return domain.Category{
		CategoryID:   m.CategoryID,
		EntityID:     m.EntityID,
		Name:         m.Name,
		CategoryType: domain.AccountType(m.CategoryType),
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}
