package attendance

import (
	"context"
	"time"
)

// AttendanceRepository defines data access methods for attendance.
// Every method is company-scoped to prevent cross-tenant access.
type AttendanceRepository interface {
	// Upsert writes the record for (employee, date), replacing any
	// existing record for that day.
	Upsert(ctx context.Context, rec AttendanceRecord) (AttendanceRecord, error)
	GetByEmployeeID(ctx context.Context, employeeID string, companyID string) ([]AttendanceRecord, error)
	GetByCompanyAndRange(ctx context.Context, companyID string, from, to time.Time) ([]AttendanceRecord, error)
	Delete(ctx context.Context, id string, companyID string) error
}
