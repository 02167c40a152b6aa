package response

import (
	"errors"
	"net/http"

	"github.com/workforce-app/workforce-backend-go/internal/domain/advance"
	"github.com/workforce-app/workforce-backend-go/internal/domain/attendance"
	"github.com/workforce-app/workforce-backend-go/internal/domain/auth"
	"github.com/workforce-app/workforce-backend-go/internal/domain/company"
	"github.com/workforce-app/workforce-backend-go/internal/domain/employee"
	"github.com/workforce-app/workforce-backend-go/internal/domain/item"
	"github.com/workforce-app/workforce-backend-go/internal/domain/subscription"
	"github.com/workforce-app/workforce-backend-go/internal/domain/user"
	"github.com/workforce-app/workforce-backend-go/internal/domain/workrecord"
	"github.com/workforce-app/workforce-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Invalid email or password")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, company.ErrCompanyNotFound):
		NotFound(w, "Company not found")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmailExists):
		Conflict(w, "Email already registered in this company")
	case errors.Is(err, employee.ErrSalaryConfigMissing):
		BadRequest(w, "Salary config branch does not match salary type", nil)

	// Advance domain errors
	case errors.Is(err, advance.ErrAdvanceNotFound):
		NotFound(w, "Advance not found")
	case errors.Is(err, advance.ErrAlreadyDeducted):
		Conflict(w, "Advance is already fully deducted")
	case errors.Is(err, advance.ErrQuotaExceeded):
		Forbidden(w, "Advance limit for the current plan reached")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrBeforeHireDate):
		BadRequest(w, "Attendance date is before the employee's hire date", nil)
	case errors.Is(err, attendance.ErrOutsideWindow):
		BadRequest(w, "Attendance date is outside the employee's active date range", nil)
	case errors.Is(err, attendance.ErrRecordNotFound):
		NotFound(w, "Attendance record not found")

	// Catalog and work record errors
	case errors.Is(err, item.ErrItemNotFound):
		NotFound(w, "Item not found")
	case errors.Is(err, workrecord.ErrWorkRecordNotFound):
		NotFound(w, "Work record not found")

	// Subscription domain errors
	case errors.Is(err, subscription.ErrSubscriptionNotFound):
		NotFound(w, "No subscription found for this company")
	case errors.Is(err, subscription.ErrSubscriptionExpired):
		Forbidden(w, "Subscription has expired")
	case errors.Is(err, subscription.ErrEmployeeLimitExceeded):
		Forbidden(w, "Employee limit for the current plan reached")
	case errors.Is(err, subscription.ErrAdvanceLimitExceeded):
		Forbidden(w, "Advance limit for the current plan reached")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
