package workrecord

import "context"

// WorkRecordRepository defines data access methods for work records.
// Records are append-only; only explicit deletion is supported.
type WorkRecordRepository interface {
	Create(ctx context.Context, rec WorkRecord) (WorkRecord, error)
	GetByEmployeeID(ctx context.Context, employeeID string, companyID string) ([]WorkRecord, error)
	Delete(ctx context.Context, id string, companyID string) error
}
