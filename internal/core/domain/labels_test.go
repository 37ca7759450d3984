package domain_test

import (
	"testing"

	"github.com/SscSPs/ifrs_ledger/internal/apperrors"
	"github.com/SscSPs/ifrs_ledger/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultLabels_CoverEveryType(t *testing.T) {
	labels := domain.DefaultLabels()

	for _, at := range domain.AccountTypes {
		_, hasLabel := labels.AccountTypes[at]
		_, hasCode := labels.BaseCode(at)
		assert.True(t, hasLabel, "missing label for %s", at)
		assert.True(t, hasCode, "missing base code for %s", at)
	}
	for _, tt := range domain.TransactionTypes {
		_, ok := labels.TransactionTypes[tt]
		assert.True(t, ok, "missing label for %s", tt)
	}
}

func TestLabels_WithOverrides(t *testing.T) {
	base := domain.DefaultLabels()

	got, err := base.WithOverrides(
		map[string]string{"BANK": "Cash at Bank"},
		map[string]int{"BANK": 1000},
	)
	require.NoError(t, err)

	assert.Equal(t, "Cash at Bank", got.AccountTypeLabel(domain.Bank))
	code, _ := got.BaseCode(domain.Bank)
	assert.Equal(t, 1000, code)

	// the source table is untouched
	assert.Equal(t, "Bank", base.AccountTypeLabel(domain.Bank))
}

func TestLabels_WithOverrides_RejectsUnknownType(t *testing.T) {
	_, err := domain.DefaultLabels().WithOverrides(map[string]string{"CASH": "Cash"}, nil)
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	_, err = domain.DefaultLabels().WithOverrides(nil, map[string]int{"BANK": -1})
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestLabels_CodeLimit(t *testing.T) {
	labels := domain.DefaultLabels()

	limit, ok := labels.CodeLimit(domain.Bank)
	require.True(t, ok)
	assert.Equal(t, 400, limit)

	limit, ok = labels.CodeLimit(domain.Receivable)
	require.True(t, ok)
	assert.Equal(t, 2000, limit)

	_, ok = labels.CodeLimit(domain.OtherExpense)
	assert.False(t, ok, "the highest range is open ended")

	moved, err := labels.WithOverrides(nil, map[string]int{"BANK": 1000})
	require.NoError(t, err)
	limit, _ = moved.CodeLimit(domain.Receivable)
	assert.Equal(t, 1000, limit)
}

func TestAccountType_NormalBalance(t *testing.T) {
	assert.Equal(t, domain.Debit, domain.Receivable.NormalBalance())
	assert.Equal(t, domain.Debit, domain.OperatingExpense.NormalBalance())
	assert.Equal(t, domain.Credit, domain.Payable.NormalBalance())
	assert.Equal(t, domain.Credit, domain.OperatingRevenue.NormalBalance())
	assert.Equal(t, domain.Credit, domain.ContraAsset.NormalBalance())
}

func TestNormalizeName(t *testing.T) {
	assert.Equal(t, "Petty cash", domain.NormalizeName("petty cash"))
	assert.Equal(t, "Éclair supplies", domain.NormalizeName("  éclair supplies "))
	assert.Equal(t, "", domain.NormalizeName("   "))
}
