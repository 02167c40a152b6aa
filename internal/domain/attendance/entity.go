package attendance

import "time"

type Status string

const (
	StatusPresent    Status = "present"
	StatusAbsent     Status = "absent"
	StatusHalfDay    Status = "half-day"
	StatusEarlyLeave Status = "early-leave"
	StatusLateCome   Status = "late-come"
)

var Statuses = []Status{StatusPresent, StatusAbsent, StatusHalfDay, StatusEarlyLeave, StatusLateCome}

// AttendanceRecord holds at most one status per (employee, date).
// Re-marking a date replaces the stored record instead of appending.
type AttendanceRecord struct {
	ID         string
	EmployeeID string
	CompanyID  string
	Date       time.Time
	Status     Status
	Notes      *string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
