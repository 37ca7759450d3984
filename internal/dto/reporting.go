package dto

import (
	"strings"
	"time"

	"github.com/SscSPs/ifrs_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SectionParams defines the query of section level reports.
// Types are account type identifiers, for example RECEIVABLE, repeated or comma separated.
type SectionParams struct {
	Types     []domain.AccountType `form:"types"`
	StartDate *time.Time           `form:"startDate" time_format:"2006-01-02"`
	EndDate   *time.Time           `form:"endDate" time_format:"2006-01-02"`
}

// AccountTypes returns the requested types with comma separated values split out.
func (p SectionParams) AccountTypes() []domain.AccountType {
	var out []domain.AccountType
	for _, raw := range p.Types {
		for _, part := range strings.Split(string(raw), ",") {
			if part = strings.ToUpper(strings.TrimSpace(part)); part != "" {
				out = append(out, domain.AccountType(part))
			}
		}
	}
	return out
}

// StatementParams defines the date range of statement reports.
type StatementParams struct {
	StartDate *time.Time `form:"startDate" time_format:"2006-01-02"`
	EndDate   *time.Time `form:"endDate" time_format:"2006-01-02"`
}

// MovementResponse represents the change of a set of account types over a range.
type MovementResponse struct {
	Types     []domain.AccountType `json:"types"`
	StartDate *time.Time           `json:"startDate,omitempty"`
	EndDate   *time.Time           `json:"endDate,omitempty"`
	Movement  decimal.Decimal      `json:"movement"`
}
