package domain_test

import (
	"errors"
	"testing"

	"github.com/SscSPs/ifrs_ledger/internal/apperrors"
	"github.com/SscSPs/ifrs_ledger/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClearingRules_Validate(t *testing.T) {
	rules := domain.NewClearingRules(domain.DefaultLabels())

	for cleared, clearers := range domain.DefaultLabels().Clearables {
		allowed := map[domain.TransactionType]bool{}
		for _, c := range clearers {
			allowed[c] = true
		}
		for _, clearing := range domain.TransactionTypes {
			err := rules.Validate(cleared, clearing)
			gate := domain.ValidateClearing(clearing, clearers, domain.DefaultLabels())
			assert.Equal(t, gate == nil, err == nil, "%s against %s", clearing, cleared)
			if allowed[clearing] {
				assert.NoError(t, err, "%s should clear %s", clearing, cleared)
				continue
			}
			require.Error(t, err, "%s should not clear %s", clearing, cleared)
			assert.True(t, errors.Is(err, apperrors.ErrUnclearableTransaction))
			assert.True(t, errors.Is(err, apperrors.ErrValidation))
		}
	}
}

func TestClearingRules_ErrorNamesTypes(t *testing.T) {
	rules := domain.NewClearingRules(domain.DefaultLabels())

	err := rules.Validate(domain.SupplierBill, domain.ClientReceipt)

	var unclearable *apperrors.UnclearableTransactionError
	require.ErrorAs(t, err, &unclearable)
	assert.Equal(t, "Supplier Bill", unclearable.TransactionType)
	assert.Equal(t, []string{"Supplier Payment", "Debit Note", "Journal Entry"}, unclearable.Allowed)
	assert.Contains(t, err.Error(), "Supplier Payment, Debit Note, Journal Entry")
}

func TestClearingRules_UnclearableType(t *testing.T) {
	rules := domain.NewClearingRules(domain.DefaultLabels())

	err := rules.Validate(domain.CashSale, domain.JournalEntry)

	var unclearable *apperrors.UnclearableTransactionError
	require.ErrorAs(t, err, &unclearable)
	assert.Empty(t, unclearable.Allowed)
	assert.Equal(t, "Cash Sale transactions cannot be cleared", err.Error())
}

func TestValidateClearing(t *testing.T) {
	labels := domain.DefaultLabels()
	allowed := []domain.TransactionType{domain.ClientReceipt, domain.SupplierPayment}

	assert.NoError(t, domain.ValidateClearing(domain.ClientReceipt, allowed, labels))
	assert.NoError(t, domain.ValidateClearing(domain.SupplierPayment, allowed, labels))

	err := domain.ValidateClearing(domain.CashPurchase, allowed, labels)
	var unclearable *apperrors.UnclearableTransactionError
	require.ErrorAs(t, err, &unclearable)
	assert.Equal(t, "Cash Purchase", unclearable.TransactionType)
	assert.Equal(t, []string{"Client Receipt", "Supplier Payment"}, unclearable.Allowed)
}
