package attendance

import "errors"

// Attendance domain errors
var (
	ErrBeforeHireDate = errors.New("attendance date is before the employee's hire date")
	ErrOutsideWindow  = errors.New("attendance date is outside the employee's active date range")
	ErrRecordNotFound = errors.New("attendance record not found")
)
