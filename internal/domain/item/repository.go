package item

import "context"

// ItemRepository defines data access methods for catalog items.
// Every method is company-scoped to prevent cross-tenant access.
type ItemRepository interface {
	// Upsert creates or replaces the row keyed by (company, id).
	Upsert(ctx context.Context, it Item) (Item, error)
	GetByID(ctx context.Context, id string, companyID string) (Item, error)
	GetByCompanyID(ctx context.Context, companyID string, includeArchived bool) ([]Item, error)
	Delete(ctx context.Context, id string, companyID string) error
}
