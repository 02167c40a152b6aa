package workrecord

import "context"

type WorkRecordService interface {
	Create(ctx context.Context, req CreateWorkRecordRequest) (WorkRecordResponse, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]WorkRecordResponse, error)
	Delete(ctx context.Context, id string) error
}
