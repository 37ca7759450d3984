package mapping

import (
	"github.com/SscSPs/ifrs_ledger/internal/core/domain"
	"github.com/SscSPs/ifrs_ledger/internal/models"
)

// ToDomainBalance converts a model Balance to a domain Balance
func ToDomainBalance(m models.Balance) domain.Balance {
	return domain.Balance{
		BalanceID:         m.BalanceID,
		AccountID:         m.AccountID,
		ReportingPeriodID: m.ReportingPeriodID,
		ExchangeRateID:    m.ExchangeRateID,
		CurrencyCode:      m.CurrencyCode,
		BalanceType:       domain.BalanceType(m.BalanceType),
		Amount:            m.Amount,
		Rate:              m.Rate,
	}
}
