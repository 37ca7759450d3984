package domain

import "github.com/shopspring/decimal"

// BalanceType indicates the side of a balance or posting.
type BalanceType string

const (
	Debit  BalanceType = "DEBIT"
	Credit BalanceType = "CREDIT"
)

// Balance is a period-end snapshot of an account, stored in the account's
// transaction currency together with the rate used to translate it.
type Balance struct {
	BalanceID         string          `json:"balanceID"`
	AccountID         string          `json:"accountID"`
	ReportingPeriodID string          `json:"reportingPeriodID"`
	ExchangeRateID    string          `json:"exchangeRateID"`
	CurrencyCode      string          `json:"currencyCode"`
	BalanceType       BalanceType     `json:"balanceType"`
	Amount            decimal.Decimal `json:"amount"`
	Rate              decimal.Decimal `json:"rate"`
}

// ReportingAmount returns the unsigned amount translated to reporting
// currency: amount / rate. The side is applied by the caller.
func (b Balance) ReportingAmount() (decimal.Decimal, error) {
	rate := ExchangeRate{CurrencyCode: b.CurrencyCode, Rate: b.Rate}
	return rate.ToReporting(b.Amount)
}
