package company

import "context"

type CompanyRepository interface {
	Create(ctx context.Context, c Company) (Company, error)
	GetByID(ctx context.Context, id string) (Company, error)
	// ListIDs feeds batch jobs that walk every company.
	ListIDs(ctx context.Context) ([]string, error)
}
