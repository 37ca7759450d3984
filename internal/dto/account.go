package dto

import (
	"time"

	"github.com/SscSPs/ifrs_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateAccountRequest defines the data needed to create a new account.
type CreateAccountRequest struct {
	Name         string             `json:"name" binding:"required"`
	AccountType  domain.AccountType `json:"accountType" binding:"required"`
	CategoryID   *string            `json:"categoryID"` // Optional
	CurrencyCode string             `json:"currencyCode" binding:"omitempty,uppercase,len=3"`
	Description  string             `json:"description"` // Optional
}

// AccountResponse defines the data returned for an account.
type AccountResponse struct {
	AccountID     string             `json:"accountID"`
	EntityID      string             `json:"entityID"`
	Name          string             `json:"name"`
	AccountType   domain.AccountType `json:"accountType"`
	TypeLabel     string             `json:"typeLabel"`
	CategoryID    string             `json:"categoryID"` // Empty string if uncategorised
	CurrencyCode  string             `json:"currencyCode"`
	Code          int                `json:"code"`
	Description   string             `json:"description"`
	CreatedAt     time.Time          `json:"createdAt"`
	CreatedBy     string             `json:"createdBy"`
	LastUpdatedAt time.Time          `json:"lastUpdatedAt"`
	LastUpdatedBy string             `json:"lastUpdatedBy"`
}

// ToAccountResponse converts a domain.Account to AccountResponse DTO
func ToAccountResponse(acc *domain.Account, labels domain.Labels) AccountResponse {
	res := AccountResponse{
		AccountID:     acc.AccountID,
		EntityID:      acc.EntityID,
		Name:          acc.Name,
		AccountType:   acc.AccountType,
		TypeLabel:     labels.AccountTypeLabel(acc.AccountType),
		CurrencyCode:  acc.CurrencyCode,
		Code:          acc.Code,
		Description:   acc.Description,
		CreatedAt:     acc.CreatedAt,
		CreatedBy:     acc.CreatedBy,
		LastUpdatedAt: acc.LastUpdatedAt,
		LastUpdatedBy: acc.LastUpdatedBy,
	}
	if acc.CategoryID != nil {
		res.CategoryID = *acc.CategoryID
	}
	return res
}

// ToListAccountResponse converts a slice of domain.Account to a slice of AccountResponse DTOs
func ToListAccountResponse(accounts []domain.Account, labels domain.Labels) []AccountResponse {
	res := make([]AccountResponse, len(accounts))
	for i := range accounts {
		res[i] = ToAccountResponse(&accounts[i], labels)
	}
	return res
}

// AccountBalanceParams defines the optional query parameters of balance lookups.
type AccountBalanceParams struct {
	Year      *int       `form:"year"`
	StartDate *time.Time `form:"startDate" time_format:"2006-01-02"`
	EndDate   *time.Time `form:"endDate" time_format:"2006-01-02"`
}

// AccountBalanceResponse defines the data returned for an account balance query.
type AccountBalanceResponse struct {
	AccountID string          `json:"accountID"`
	Kind      string          `json:"kind"` // opening or closing
	Balance   decimal.Decimal `json:"balance"`
}

// ListAccountsParams defines query parameters for listing accounts.
type ListAccountsParams struct {
	Limit  int `form:"limit,default=20" binding:"min=1,max=200"`
	Offset int `form:"offset,default=0" binding:"min=0"`
}

// ListAccountsResponse wraps the list of accounts.
type ListAccountsResponse struct {
	Accounts []AccountResponse `json:"accounts"`
	Limit    int               `json:"limit"`
	Offset   int               `json:"offset"`
}

// AccountTypeResponse is one entry of the chart's type table.
type AccountTypeResponse struct {
	AccountType   domain.AccountType `json:"accountType"`
	Label         string             `json:"label"`
	BaseCode      int                `json:"baseCode"`
	NormalBalance domain.BalanceType `json:"normalBalance"`
}
