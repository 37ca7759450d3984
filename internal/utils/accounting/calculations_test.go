package accounting_test

import (
	"testing"

	"github.com/SscSPs/ifrs_ledger/internal/apperrors"
	"github.com/SscSPs/ifrs_ledger/internal/core/domain"
	"github.com/SscSPs/ifrs_ledger/internal/utils/accounting"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestSignedAmount(t *testing.T) {
	got, err := accounting.SignedAmount(d("10"), domain.Debit)
	require.NoError(t, err)
	assert.True(t, got.Equal(d("10")))

	got, err = accounting.SignedAmount(d("10"), domain.Credit)
	require.NoError(t, err)
	assert.True(t, got.Equal(d("-10")))

	_, err = accounting.SignedAmount(d("10"), domain.BalanceType("SIDEWAYS"))
	assert.Error(t, err)
}

func TestSumBalances_DividesByRateAndSigns(t *testing.T) {
	balances := []domain.Balance{
		{BalanceID: "b1", BalanceType: domain.Debit, Amount: d("1000"), Rate: d("1")},
		{BalanceID: "b2", BalanceType: domain.Credit, Amount: d("300"), Rate: d("1.5")},
		{BalanceID: "b3", BalanceType: domain.Debit, Amount: d("50"), Rate: d("0.5")},
	}
	got, err := accounting.SumBalances(balances)
	require.NoError(t, err)
	// 1000 - 200 + 100
	assert.Equal(t, "900", got.String())
}

func TestSumBalances_Empty(t *testing.T) {
	got, err := accounting.SumBalances(nil)
	require.NoError(t, err)
	assert.True(t, got.IsZero())
}

func TestSumBalances_RejectsNonPositiveRate(t *testing.T) {
	_, err := accounting.SumBalances([]domain.Balance{
		{BalanceID: "b1", BalanceType: domain.Debit, Amount: d("10"), Rate: decimal.Zero},
	})
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestSumBalances_RejectsUnknownSide(t *testing.T) {
	_, err := accounting.SumBalances([]domain.Balance{
		{BalanceID: "b1", BalanceType: domain.Debit, Amount: d("10"), Rate: d("1")},
		{BalanceID: "b2", BalanceType: domain.BalanceType("SIDEWAYS"), Amount: d("10"), Rate: d("2")},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "balance b2")
}

func TestPresentationAmount(t *testing.T) {
	assert.Equal(t, "100", accounting.PresentationAmount(domain.SectionAssets, d("100")).String())
	assert.Equal(t, "100", accounting.PresentationAmount(domain.SectionLiabilities, d("-100")).String())
	assert.Equal(t, "250", accounting.PresentationAmount(domain.SectionOperatingRevenues, d("-250")).String())
	assert.Equal(t, "40", accounting.PresentationAmount(domain.SectionNonOperatingExpenses, d("40")).String())
}

func TestValidateClearingAmount(t *testing.T) {
	invoice := domain.Transaction{TransactionID: "inv", CurrencyCode: "USD", Amount: d("100"), ClearedAmount: d("30")}
	receipt := domain.Transaction{TransactionID: "rc", CurrencyCode: "USD", Amount: d("50")}

	assert.NoError(t, accounting.ValidateClearingAmount(d("50"), receipt, invoice))
	assert.ErrorIs(t, accounting.ValidateClearingAmount(d("0"), receipt, invoice), apperrors.ErrValidation)
	assert.ErrorIs(t, accounting.ValidateClearingAmount(d("-1"), receipt, invoice), apperrors.ErrValidation)
	// exceeds the invoice's outstanding 70
	assert.ErrorIs(t, accounting.ValidateClearingAmount(d("80"), domain.Transaction{TransactionID: "rc2", CurrencyCode: "USD", Amount: d("100")}, invoice), apperrors.ErrValidation)
	// exceeds the receipt's 50
	assert.ErrorIs(t, accounting.ValidateClearingAmount(d("60"), receipt, invoice), apperrors.ErrValidation)

	eur := receipt
	eur.CurrencyCode = "EUR"
	assert.ErrorIs(t, accounting.ValidateClearingAmount(d("10"), eur, invoice), apperrors.ErrValidation)
}
