package repositories

import (
	"context"

	"github.com/SscSPs/ifrs_ledger/internal/core/domain"
)

// CategoryReader defines read operations for account categories
type CategoryReader interface {
	// FindCategoryByID retrieves a category by ID.
	FindCategoryByID(ctx context.Context, categoryID string) (*domain.Category, error)

	// FindCategoriesByIDs retrieves several categories keyed by ID.
	FindCategoriesByIDs(ctx context.Context, categoryIDs []string) (map[string]domain.Category, error)
}
