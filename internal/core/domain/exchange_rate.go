package domain

import (
	"fmt"
	"time"

	"github.com/SscSPs/ifrs_ledger/internal/apperrors"
	"github.com/shopspring/decimal"
)

// ExchangeRate is the number of reporting-currency units for one unit of
// CurrencyCode, valid from ValidFrom.
type ExchangeRate struct {
	ExchangeRateID string          `json:"exchangeRateID"`
	EntityID       string          `json:"entityID"`
	CurrencyCode   string          `json:"currencyCode"`
	ValidFrom      time.Time       `json:"validFrom"`
	Rate           decimal.Decimal `json:"rate"`
	AuditFields
}

// Validate checks that the rate is usable as a divisor.
func (r ExchangeRate) Validate() error {
	if !r.Rate.IsPositive() {
		return fmt.Errorf("%w: exchange rate for %s must be positive, got %s", apperrors.ErrValidation, r.CurrencyCode, r.Rate.String())
	}
	return nil
}

// ToReporting converts an amount held in the rate's currency to reporting currency.
func (r ExchangeRate) ToReporting(amount decimal.Decimal) (decimal.Decimal, error) {
	if err := r.Validate(); err != nil {
		return decimal.Zero, err
	}
	return amount.Div(r.Rate), nil
}
