package attendance

import "context"

type AttendanceService interface {
	Mark(ctx context.Context, req MarkAttendanceRequest) (AttendanceResponse, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]AttendanceResponse, error)
	GetDailySummary(ctx context.Context, date string) (DailySummaryResponse, error)
	GetMonthlySummary(ctx context.Context, year, month int) (RangeSummaryResponse, error)
	GetYearlySummary(ctx context.Context, year int) (RangeSummaryResponse, error)
}
