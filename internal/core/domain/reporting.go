package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// SnapshotVersion is bumped whenever AccountSnapshot changes shape.
const SnapshotVersion = 1

// AccountSnapshot is the per-account row of a report section. Balances are
// debit-positive and in reporting currency.
type AccountSnapshot struct {
	Version        int             `json:"version"`
	AccountID      string          `json:"accountID"`
	Name           string          `json:"name"`
	AccountType    AccountType     `json:"accountType"`
	TypeLabel      string          `json:"typeLabel"`
	Code           int             `json:"code"`
	CategoryName   string          `json:"categoryName"`
	OpeningBalance decimal.Decimal `json:"openingBalance"`
	CurrentBalance decimal.Decimal `json:"currentBalance"`
	ClosingBalance decimal.Decimal `json:"closingBalance"`
}

// CategoryTotal is one category of a section with its accounts in first-seen order.
type CategoryTotal struct {
	Name     string            `json:"name"`
	Accounts []AccountSnapshot `json:"accounts"`
	Total    decimal.Decimal   `json:"total"`
}

// SectionBalances is the result of aggregating a set of account types.
// Categories keep insertion order.
type SectionBalances struct {
	SectionTotal      decimal.Decimal `json:"sectionTotal"`
	SectionCategories []CategoryTotal `json:"sectionCategories"`
}

// Category returns the category with the given name, if present.
func (s SectionBalances) Category(name string) (CategoryTotal, bool) {
	for _, c := range s.SectionCategories {
		if c.Name == name {
			return c, true
		}
	}
	return CategoryTotal{}, false
}

// Add places snapshot in its category, creating the category on first sight.
func (s *SectionBalances) Add(snapshot AccountSnapshot) {
	s.SectionTotal = s.SectionTotal.Add(snapshot.ClosingBalance)
	for i := range s.SectionCategories {
		if s.SectionCategories[i].Name == snapshot.CategoryName {
			s.SectionCategories[i].Accounts = append(s.SectionCategories[i].Accounts, snapshot)
			s.SectionCategories[i].Total = s.SectionCategories[i].Total.Add(snapshot.ClosingBalance)
			return
		}
	}
	s.SectionCategories = append(s.SectionCategories, CategoryTotal{
		Name:     snapshot.CategoryName,
		Accounts: []AccountSnapshot{snapshot},
		Total:    snapshot.ClosingBalance,
	})
}

// StatementSection names a group of account types on a financial statement.
type StatementSection string

const (
	SectionAssets               StatementSection = "ASSETS"
	SectionLiabilities          StatementSection = "LIABILITIES"
	SectionEquity               StatementSection = "EQUITY"
	SectionOperatingRevenues    StatementSection = "OPERATING_REVENUES"
	SectionNonOperatingRevenues StatementSection = "NON_OPERATING_REVENUES"
	SectionOperatingExpenses    StatementSection = "OPERATING_EXPENSES"
	SectionNonOperatingExpenses StatementSection = "NON_OPERATING_EXPENSES"
)

// SectionTypes holds the account types reported under each statement section.
var SectionTypes = map[StatementSection][]AccountType{
	SectionAssets:               {NonCurrentAsset, ContraAsset, Inventory, Bank, CurrentAsset, Receivable},
	SectionLiabilities:          {NonCurrentLiability, Control, CurrentLiability, Payable, Reconciliation},
	SectionEquity:               {Equity},
	SectionOperatingRevenues:    {OperatingRevenue},
	SectionNonOperatingRevenues: {NonOperatingRevenue},
	SectionOperatingExpenses:    {OperatingExpense},
	SectionNonOperatingExpenses: {DirectExpense, OverheadExpense, OtherExpense},
}

// IncomeStatementTypes are all types that feed the income statement.
func IncomeStatementTypes() []AccountType {
	var out []AccountType
	for _, s := range []StatementSection{SectionOperatingRevenues, SectionNonOperatingRevenues, SectionOperatingExpenses, SectionNonOperatingExpenses} {
		out = append(out, SectionTypes[s]...)
	}
	return out
}

// CreditNormal reports whether the section is presented with credits as positive.
func (s StatementSection) CreditNormal() bool {
	switch s {
	case SectionLiabilities, SectionEquity, SectionOperatingRevenues, SectionNonOperatingRevenues:
		return true
	}
	return false
}

// StatementLine is a section of a statement with its presentation total.
type StatementLine struct {
	Section  StatementSection `json:"section"`
	Balances SectionBalances  `json:"balances"`
	Total    decimal.Decimal  `json:"total"` // sign flipped for credit-normal sections
}

// BalanceSheet reports financial position at EndDate.
type BalanceSheet struct {
	EndDate          time.Time       `json:"endDate"`
	Assets           StatementLine   `json:"assets"`
	Liabilities      StatementLine   `json:"liabilities"`
	Equity           StatementLine   `json:"equity"`
	NetProfit        decimal.Decimal `json:"netProfit"`
	TotalAssets      decimal.Decimal `json:"totalAssets"`
	TotalLiabilities decimal.Decimal `json:"totalLiabilities"`
	TotalEquity      decimal.Decimal `json:"totalEquity"` // includes NetProfit
}

// IncomeStatement reports financial performance between StartDate and EndDate.
type IncomeStatement struct {
	StartDate            time.Time       `json:"startDate"`
	EndDate              time.Time       `json:"endDate"`
	OperatingRevenues    StatementLine   `json:"operatingRevenues"`
	NonOperatingRevenues StatementLine   `json:"nonOperatingRevenues"`
	OperatingExpenses    StatementLine   `json:"operatingExpenses"`
	NonOperatingExpenses StatementLine   `json:"nonOperatingExpenses"`
	GrossProfit          decimal.Decimal `json:"grossProfit"`
	TotalRevenue         decimal.Decimal `json:"totalRevenue"`
	TotalExpenses        decimal.Decimal `json:"totalExpenses"`
	NetProfit            decimal.Decimal `json:"netProfit"`
}
