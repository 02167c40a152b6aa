package employee

import "context"

// EmployeeRepository defines data access methods for employees.
// Every method is company-scoped to prevent cross-tenant access.
type EmployeeRepository interface {
	Create(ctx context.Context, emp Employee) (Employee, error)
	GetByID(ctx context.Context, id string, companyID string) (Employee, error)
	GetByCompanyID(ctx context.Context, companyID string) ([]Employee, error)
	Update(ctx context.Context, companyID string, req UpdateEmployeeRequest) error
	Delete(ctx context.Context, id string, companyID string) error
	CountByCompanyID(ctx context.Context, companyID string) (int, error)

	// ClaimSweepMonth stamps LastAdvanceProcessedMonth = monthKey for
	// the employee and reports whether this call won the claim. The
	// check-and-stamp is a single conditional UPDATE so concurrent
	// sweep triggers cannot both process the same employee in one
	// calendar month.
	ClaimSweepMonth(ctx context.Context, id string, companyID string, monthKey string) (bool, error)
}
