package advance

import "context"

// AdvanceRepository defines data access methods for advances.
// Every method is company-scoped to prevent cross-tenant access.
type AdvanceRepository interface {
	Create(ctx context.Context, adv Advance) (Advance, error)
	GetByID(ctx context.Context, id string, companyID string) (Advance, error)
	// GetByEmployeeID returns advances newest-first; computation does
	// not depend on order, display does.
	GetByEmployeeID(ctx context.Context, employeeID string, companyID string) ([]Advance, error)
	CountByEmployeeID(ctx context.Context, employeeID string, companyID string) (int, error)
	// Update persists balance, status, date and deduction history.
	Update(ctx context.Context, adv Advance) (Advance, error)
}
