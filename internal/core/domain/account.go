package domain

import (
	"strings"
	"time"
	"unicode"
	"unicode/utf8"
)

// AccountType classifies an account within the IFRS chart of accounts.
type AccountType string

const (
	NonCurrentAsset     AccountType = "NON_CURRENT_ASSET"
	ContraAsset         AccountType = "CONTRA_ASSET"
	Inventory           AccountType = "INVENTORY"
	Bank                AccountType = "BANK"
	CurrentAsset        AccountType = "CURRENT_ASSET"
	Receivable          AccountType = "RECEIVABLE"
	NonCurrentLiability AccountType = "NON_CURRENT_LIABILITY"
	Control             AccountType = "CONTROL"
	CurrentLiability    AccountType = "CURRENT_LIABILITY"
	Payable             AccountType = "PAYABLE"
	Reconciliation      AccountType = "RECONCILIATION"
	Equity              AccountType = "EQUITY"
	OperatingRevenue    AccountType = "OPERATING_REVENUE"
	OperatingExpense    AccountType = "OPERATING_EXPENSE"
	NonOperatingRevenue AccountType = "NON_OPERATING_REVENUE"
	DirectExpense       AccountType = "DIRECT_EXPENSE"
	OverheadExpense     AccountType = "OVERHEAD_EXPENSE"
	OtherExpense        AccountType = "OTHER_EXPENSE"
)

// AccountTypes lists every account type in chart order.
var AccountTypes = []AccountType{
	NonCurrentAsset, ContraAsset, Inventory, Bank, CurrentAsset, Receivable,
	NonCurrentLiability, Control, CurrentLiability, Payable, Reconciliation,
	Equity,
	OperatingRevenue, OperatingExpense, NonOperatingRevenue,
	DirectExpense, OverheadExpense, OtherExpense,
}

// IsValid reports whether t is one of the known account types.
func (t AccountType) IsValid() bool {
	for _, known := range AccountTypes {
		if t == known {
			return true
		}
	}
	return false
}

// NormalBalance returns the side on which a positive balance of this type is recorded.
func (t AccountType) NormalBalance() BalanceType {
	switch t {
	case ContraAsset, NonCurrentLiability, Control, CurrentLiability, Payable, Reconciliation,
		Equity, OperatingRevenue, NonOperatingRevenue:
		return Credit
	default:
		return Debit
	}
}

// Account is a classified, coded financial account owned by an entity.
type Account struct {
	AccountID    string      `json:"accountID"`
	EntityID     string      `json:"entityID"`
	Name         string      `json:"name"`
	AccountType  AccountType `json:"accountType"`
	CategoryID   *string     `json:"categoryID,omitempty"`
	CurrencyCode string      `json:"currencyCode"`
	Code         int         `json:"code"` // 0 until first save
	Description  string      `json:"description"`
	DeletedAt    *time.Time  `json:"deletedAt,omitempty"`
	AuditFields
}

// IsActive reports whether the account has not been soft deleted.
func (a *Account) IsActive() bool {
	return a.DeletedAt == nil
}

// NormalizeName trims the name and upper-cases its first letter.
func NormalizeName(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return name
	}
	r, size := utf8.DecodeRuneInString(name)
	return string(unicode.ToUpper(r)) + name[size:]
}
