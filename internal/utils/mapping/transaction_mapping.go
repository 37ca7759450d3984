package mapping

import (
	"github.com/SscSPs/ifrs_ledger/internal/core/domain"
	"github.com/SscSPs/ifrs_ledger/internal/models"
)

// ToDomainTransaction converts a model Transaction to a domain Transaction
func ToDomainTransaction(m models.Transaction) domain.Transaction {
	return domain.Transaction{
		TransactionID:   m.TransactionID,
		EntityID:        m.EntityID,
		TransactionType: domain.TransactionType(m.TransactionType),
		TransactionDate: m.TransactionDate,
		CurrencyCode:    m.CurrencyCode,
		Amount:          m.Amount,
		ClearedAmount:   m.ClearedAmount,
		Narration:       m.Narration,
	}
}

// ToModelAssignment converts a domain Assignment to a model Assignment
func ToModelAssignment(d domain.Assignment) models.Assignment {
	return models.Assignment{
		AssignmentID:   d.AssignmentID,
		EntityID:       d.EntityID,
		TransactionID:  d.TransactionID,
		ClearedID:      d.ClearedID,
		Amount:         d.Amount,
		AssignmentDate: d.AssignmentDate,
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
}
