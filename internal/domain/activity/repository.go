package activity

import "context"

type Repository interface {
	CreateBatch(ctx context.Context, entries []Entry) error
	ListByCompanyID(ctx context.Context, companyID string, limit int) ([]Entry, error)
}
