package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ExchangeRate stores how many reporting-currency units one unit of a currency is worth from a date.
type ExchangeRate struct {
	ExchangeRateID string          `db:"exchange_rate_id"`
	EntityID       string          `db:"entity_id"`
	CurrencyCode   string          `db:"currency_code"`
	ValidFrom      time.Time       `db:"valid_from"`
	Rate           decimal.Decimal `db:"rate"`
	AuditFields
}
