package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType is the document type of a transaction.
type TransactionType string

const (
	CashSale        TransactionType = "CS"
	ClientInvoice   TransactionType = "IN"
	CreditNote      TransactionType = "CN"
	ClientReceipt   TransactionType = "RC"
	CashPurchase    TransactionType = "CP"
	SupplierBill    TransactionType = "BL"
	DebitNote       TransactionType = "DN"
	SupplierPayment TransactionType = "PY"
	ContraEntry     TransactionType = "CE"
	JournalEntry    TransactionType = "JN"
)

// TransactionTypes lists every transaction type.
var TransactionTypes = []TransactionType{
	CashSale, ClientInvoice, CreditNote, ClientReceipt, CashPurchase,
	SupplierBill, DebitNote, SupplierPayment, ContraEntry, JournalEntry,
}

// IsValid reports whether t is one of the known transaction types.
func (t TransactionType) IsValid() bool {
	for _, known := range TransactionTypes {
		if t == known {
			return true
		}
	}
	return false
}

// Transaction is the part of a posted document the clearing rules need.
// Amount is in the transaction's currency; ClearedAmount is the portion
// already offset by assignments.
type Transaction struct {
	TransactionID   string          `json:"transactionID"`
	EntityID        string          `json:"entityID"`
	TransactionType TransactionType `json:"transactionType"`
	TransactionDate time.Time       `json:"transactionDate"`
	CurrencyCode    string          `json:"currencyCode"`
	Amount          decimal.Decimal `json:"amount"`
	ClearedAmount   decimal.Decimal `json:"clearedAmount"`
	Narration       string          `json:"narration"`
}

// Outstanding returns the amount still open for clearing.
func (t Transaction) Outstanding() decimal.Decimal {
	return t.Amount.Sub(t.ClearedAmount)
}

// IsCleared reports whether the transaction has been fully offset.
func (t Transaction) IsCleared() bool {
	return !t.Outstanding().IsPositive()
}
