package domain

import (
	"fmt"
	"maps"

	"github.com/SscSPs/ifrs_ledger/internal/apperrors"
)

// Labels is the display and numbering table injected into the core:
// account type labels and base codes, transaction type labels, and the
// clearing compatibility table.
type Labels struct {
	AccountTypes     map[AccountType]string
	BaseCodes        map[AccountType]int
	TransactionTypes map[TransactionType]string
	// Clearables maps a transaction type to the types allowed to clear it.
	Clearables map[TransactionType][]TransactionType
}

// DefaultLabels returns a fresh copy of the built-in table.
func DefaultLabels() Labels {
	return Labels{
		AccountTypes: map[AccountType]string{
			NonCurrentAsset:     "Non Current Asset",
			ContraAsset:         "Contra Asset",
			Inventory:           "Inventory",
			Bank:                "Bank",
			CurrentAsset:        "Current Asset",
			Receivable:          "Receivable",
			NonCurrentLiability: "Non Current Liability",
			Control:             "Control",
			CurrentLiability:    "Current Liability",
			Payable:             "Payable",
			Reconciliation:      "Reconciliation",
			Equity:              "Equity",
			OperatingRevenue:    "Operating Revenue",
			OperatingExpense:    "Operating Expense",
			NonOperatingRevenue: "Non Operating Revenue",
			DirectExpense:       "Direct Expense",
			OverheadExpense:     "Overhead Expense",
			OtherExpense:        "Other Expense",
		},
		BaseCodes: map[AccountType]int{
			NonCurrentAsset:     0,
			ContraAsset:         100,
			Inventory:           200,
			Bank:                300,
			CurrentAsset:        400,
			Receivable:          500,
			NonCurrentLiability: 2000,
			Control:             2100,
			CurrentLiability:    2200,
			Payable:             2300,
			Reconciliation:      2400,
			Equity:              3000,
			OperatingRevenue:    4000,
			OperatingExpense:    5000,
			NonOperatingRevenue: 6000,
			DirectExpense:       7000,
			OverheadExpense:     8000,
			OtherExpense:        9000,
		},
		TransactionTypes: map[TransactionType]string{
			CashSale:        "Cash Sale",
			ClientInvoice:   "Client Invoice",
			CreditNote:      "Credit Note",
			ClientReceipt:   "Client Receipt",
			CashPurchase:    "Cash Purchase",
			SupplierBill:    "Supplier Bill",
			DebitNote:       "Debit Note",
			SupplierPayment: "Supplier Payment",
			ContraEntry:     "Contra Entry",
			JournalEntry:    "Journal Entry",
		},
		Clearables: map[TransactionType][]TransactionType{
			ClientInvoice: {ClientReceipt, CreditNote, JournalEntry},
			SupplierBill:  {SupplierPayment, DebitNote, JournalEntry},
			JournalEntry:  {ClientReceipt, SupplierPayment, CreditNote, DebitNote, JournalEntry},
		},
	}
}

// WithOverrides returns a copy of l with the given labels and base codes
// replaced. Keys must name known account types.
func (l Labels) WithOverrides(accountLabels map[string]string, baseCodes map[string]int) (Labels, error) {
	out := Labels{
		AccountTypes:     maps.Clone(l.AccountTypes),
		BaseCodes:        maps.Clone(l.BaseCodes),
		TransactionTypes: maps.Clone(l.TransactionTypes),
		Clearables:       maps.Clone(l.Clearables),
	}
	if out.AccountTypes == nil {
		out.AccountTypes = map[AccountType]string{}
	}
	if out.BaseCodes == nil {
		out.BaseCodes = map[AccountType]int{}
	}
	for key, label := range accountLabels {
		t := AccountType(key)
		if !t.IsValid() {
			return Labels{}, fmt.Errorf("%w: unknown account type %q in label overrides", apperrors.ErrValidation, key)
		}
		out.AccountTypes[t] = label
	}
	for key, code := range baseCodes {
		t := AccountType(key)
		if !t.IsValid() {
			return Labels{}, fmt.Errorf("%w: unknown account type %q in base code overrides", apperrors.ErrValidation, key)
		}
		if code < 0 {
			return Labels{}, fmt.Errorf("%w: base code for %s must not be negative", apperrors.ErrValidation, key)
		}
		out.BaseCodes[t] = code
	}
	return out, nil
}

// AccountTypeLabel returns the display name of t, or t itself when unlabelled.
func (l Labels) AccountTypeLabel(t AccountType) string {
	if label, ok := l.AccountTypes[t]; ok {
		return label
	}
	return string(t)
}

// AccountTypeLabels maps AccountTypeLabel over types, keeping order.
func (l Labels) AccountTypeLabels(types []AccountType) []string {
	out := make([]string, len(types))
	for i, t := range types {
		out[i] = l.AccountTypeLabel(t)
	}
	return out
}

// BaseCode returns the first code of the numeric range reserved for t.
func (l Labels) BaseCode(t AccountType) (int, bool) {
	code, ok := l.BaseCodes[t]
	return code, ok
}

// CodeLimit returns the lowest base code above t's, the first code t may not
// use. The highest range is open ended and reports false.
func (l Labels) CodeLimit(t AccountType) (int, bool) {
	base, ok := l.BaseCodes[t]
	if !ok {
		return 0, false
	}
	limit, found := 0, false
	for _, code := range l.BaseCodes {
		if code > base && (!found || code < limit) {
			limit, found = code, true
		}
	}
	return limit, found
}

// TransactionTypeLabel returns the display name of t, or t itself when unlabelled.
func (l Labels) TransactionTypeLabel(t TransactionType) string {
	if label, ok := l.TransactionTypes[t]; ok {
		return label
	}
	return string(t)
}

// TransactionTypeLabels maps TransactionTypeLabel over types, keeping order.
func (l Labels) TransactionTypeLabels(types []TransactionType) []string {
	out := make([]string, len(types))
	for i, t := range types {
		out[i] = l.TransactionTypeLabel(t)
	}
	return out
}
