package accounting

import (
	"fmt"

	"github.com/SscSPs/ifrs_ledger/internal/apperrors"
	"github.com/SscSPs/ifrs_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SignedAmount applies the ledger sign convention to an unsigned amount.
// Balances in this ledger are debit-positive:
// DEBIT -> Positive (+)
// CREDIT -> Negative (-)
func SignedAmount(amount decimal.Decimal, side domain.BalanceType) (decimal.Decimal, error) {
	switch side {
	case domain.Debit:
		return amount, nil
	case domain.Credit:
		return amount.Neg(), nil
	default:
		return decimal.Zero, fmt.Errorf("unknown balance type '%s'", side)
	}
}

// SumBalances adds up period-end balance rows in reporting currency.
// Each row contributes amount / rate, positive for DEBIT and negative for CREDIT.
func SumBalances(balances []domain.Balance) (decimal.Decimal, error) {
	sum := decimal.Zero
	for _, b := range balances {
		value, err := b.ReportingAmount()
		if err != nil {
			return decimal.Zero, fmt.Errorf("balance %s: %w", b.BalanceID, err)
		}
		signed, err := SignedAmount(value, b.BalanceType)
		if err != nil {
			return decimal.Zero, fmt.Errorf("balance %s: %w", b.BalanceID, err)
		}
		sum = sum.Add(signed)
	}
	return sum, nil
}

// PresentationAmount converts a debit-positive section total into the sign
// used on a statement, where credit-normal sections read as positive.
func PresentationAmount(section domain.StatementSection, total decimal.Decimal) decimal.Decimal {
	if section.CreditNormal() {
		return total.Neg()
	}
	return total
}

// ValidateClearingAmount checks that amount can be assigned between the two
// transactions without over-clearing either of them.
func ValidateClearingAmount(amount decimal.Decimal, clearing, cleared domain.Transaction) error {
	if !amount.IsPositive() {
		return apperrors.NewValidationError("clearing amount must be positive")
	}
	if clearing.CurrencyCode != cleared.CurrencyCode {
		return apperrors.NewValidationError(fmt.Sprintf("cannot clear a %s transaction with a %s transaction", cleared.CurrencyCode, clearing.CurrencyCode))
	}
	if amount.GreaterThan(cleared.Outstanding()) {
		return apperrors.NewValidationError(fmt.Sprintf("clearing amount %s exceeds the outstanding %s of transaction %s",
			amount.String(), cleared.Outstanding().String(), cleared.TransactionID))
	}
	if amount.GreaterThan(clearing.Outstanding()) {
		return apperrors.NewValidationError(fmt.Sprintf("clearing amount %s exceeds the unassigned %s of transaction %s",
			amount.String(), clearing.Outstanding().String(), clearing.TransactionID))
	}
	return nil
}
