package models

import "github.com/shopspring/decimal"

// Balance is a row of the balances table joined with the rate of its exchange rate.
type Balance struct {
	BalanceID         string          `db:"balance_id"`
	AccountID         string          `db:"account_id"`
	ReportingPeriodID string          `db:"reporting_period_id"`
	ExchangeRateID    string          `db:"exchange_rate_id"`
	CurrencyCode      string          `db:"currency_code"`
	BalanceType       string          `db:"balance_type"`
	Amount            decimal.Decimal `db:"amount"`
	Rate              decimal.Decimal `db:"rate"`
}
