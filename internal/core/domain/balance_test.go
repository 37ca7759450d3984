package domain_test

import (
	"testing"

	"github.com/SscSPs/ifrs_ledger/internal/apperrors"
	"github.com/SscSPs/ifrs_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBalance_ReportingAmount(t *testing.T) {
	tests := []struct {
		name    string
		balance domain.Balance
		want    decimal.Decimal
		wantErr error
	}{
		{
			name:    "debit at par",
			balance: domain.Balance{BalanceType: domain.Debit, Amount: decimal.NewFromInt(1000), Rate: decimal.NewFromInt(1)},
			want:    decimal.NewFromInt(1000),
		},
		{
			name:    "credit stays unsigned",
			balance: domain.Balance{BalanceType: domain.Credit, Amount: decimal.NewFromInt(300), Rate: decimal.NewFromInt(1)},
			want:    decimal.NewFromInt(300),
		},
		{
			name:    "foreign currency is divided by the rate",
			balance: domain.Balance{BalanceType: domain.Debit, Amount: decimal.NewFromInt(500), Rate: decimal.RequireFromString("2.5")},
			want:    decimal.NewFromInt(200),
		},
		{
			name:    "zero rate is rejected",
			balance: domain.Balance{BalanceType: domain.Debit, Amount: decimal.NewFromInt(500), Rate: decimal.Zero},
			wantErr: apperrors.ErrValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.balance.ReportingAmount()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "want %s got %s", tt.want, got)
		})
	}
}

func TestSectionBalances_AddKeepsInsertionOrder(t *testing.T) {
	var s domain.SectionBalances
	s.Add(domain.AccountSnapshot{Name: "A", CategoryName: "Zeta", ClosingBalance: decimal.NewFromInt(10)})
	s.Add(domain.AccountSnapshot{Name: "B", CategoryName: "Alpha", ClosingBalance: decimal.NewFromInt(5)})
	s.Add(domain.AccountSnapshot{Name: "C", CategoryName: "Zeta", ClosingBalance: decimal.NewFromInt(-3)})

	require.Len(t, s.SectionCategories, 2)
	assert.Equal(t, "Zeta", s.SectionCategories[0].Name)
	assert.Equal(t, "Alpha", s.SectionCategories[1].Name)
	assert.True(t, decimal.NewFromInt(7).Equal(s.SectionCategories[0].Total))
	assert.True(t, decimal.NewFromInt(12).Equal(s.SectionTotal))

	zeta, ok := s.Category("Zeta")
	require.True(t, ok)
	assert.Len(t, zeta.Accounts, 2)
}
