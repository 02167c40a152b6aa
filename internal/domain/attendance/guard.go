package attendance

import (
	"time"

	"github.com/workforce-app/workforce-backend-go/internal/domain/employee"
)

// CheckDate applies the business-rule guards that must pass before an
// attendance record may be written:
//
//  1. the date must not precede the employee's hire date, and
//  2. for dynamic-date employees with a configured window, the date
//     must fall inside [start, end].
//
// Comparisons are at day granularity so the time-of-day component of
// either side never changes the outcome.
func CheckDate(emp employee.Employee, date time.Time) error {
	day := truncateToDay(date)

	if day.Before(truncateToDay(emp.HireDate)) {
		return ErrBeforeHireDate
	}

	start, end := emp.AttendanceWindow()
	if start != nil && end != nil {
		if day.Before(truncateToDay(*start)) || day.After(truncateToDay(*end)) {
			return ErrOutsideWindow
		}
	}

	return nil
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// SameDay reports whether two timestamps fall on the same calendar
// day, the uniqueness key for attendance records.
func SameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}
