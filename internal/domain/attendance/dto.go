package attendance

import (
	"time"

	"github.com/workforce-app/workforce-backend-go/internal/pkg/validator"
)

type MarkAttendanceRequest struct {
	EmployeeID string  `json:"-"`
	Date       string  `json:"date"` // "YYYY-MM-DD"
	Status     string  `json:"status"`
	Notes      *string `json:"notes,omitempty"`
}

func (r *MarkAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "must be a date in YYYY-MM-DD format"})
	}
	valid := false
	for _, s := range Statuses {
		if Status(r.Status) == s {
			valid = true
			break
		}
	}
	if !valid {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "must be present, absent, half-day, early-leave or late-come"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AttendanceResponse struct {
	ID         string    `json:"id"`
	EmployeeID string    `json:"employee_id"`
	Date       string    `json:"date"`
	Status     string    `json:"status"`
	Notes      *string   `json:"notes,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func ToResponse(a AttendanceRecord) AttendanceResponse {
	return AttendanceResponse{
		ID:         a.ID,
		EmployeeID: a.EmployeeID,
		Date:       a.Date.Format("2006-01-02"),
		Status:     string(a.Status),
		Notes:      a.Notes,
		CreatedAt:  a.CreatedAt,
		UpdatedAt:  a.UpdatedAt,
	}
}

type DailySummaryResponse struct {
	Date   string       `json:"date"`
	Counts StatusCounts `json:"counts"`
}

type RangeSummaryResponse struct {
	From              string       `json:"from"`
	To                string       `json:"to"`
	Counts            StatusCounts `json:"counts"`
	AttendancePercent float64      `json:"attendance_percent"`
}
