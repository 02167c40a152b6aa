package advance

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/workforce-app/workforce-backend-go/internal/pkg/validator"
)

type CreateAdvanceRequest struct {
	EmployeeID   string          `json:"-"`
	Amount       decimal.Decimal `json:"amount"`
	CarryForward bool            `json:"carry_forward"`
	Notes        *string         `json:"notes,omitempty"`
}

func (r *CreateAdvanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if !r.Amount.IsPositive() {
		errs = append(errs, validator.ValidationError{Field: "amount", Message: "must be a positive number"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type DeductAdvanceRequest struct {
	AdvanceID string          `json:"-"`
	Amount    decimal.Decimal `json:"amount"`
}

func (r *DeductAdvanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if !r.Amount.IsPositive() {
		errs = append(errs, validator.ValidationError{Field: "amount", Message: "must be a positive number"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type DeductionResponse struct {
	Amount decimal.Decimal `json:"amount"`
	Date   time.Time       `json:"date"`
	Note   string          `json:"note,omitempty"`
}

type AdvanceResponse struct {
	ID              string              `json:"id"`
	EmployeeID      string              `json:"employee_id"`
	OriginalAmount  decimal.Decimal     `json:"original_amount"`
	RemainingAmount decimal.Decimal     `json:"remaining_amount"`
	TotalDeducted   decimal.Decimal     `json:"total_deducted"`
	Status          string              `json:"status"`
	CarryForward    bool                `json:"carry_forward"`
	Date            time.Time           `json:"date"`
	Notes           *string             `json:"notes,omitempty"`
	Deductions      []DeductionResponse `json:"deductions"`
	CreatedAt       time.Time           `json:"created_at"`
}

func ToResponse(a Advance) AdvanceResponse {
	deductions := make([]DeductionResponse, 0, len(a.Deductions))
	for _, d := range a.Deductions {
		deductions = append(deductions, DeductionResponse{Amount: d.Amount, Date: d.Date, Note: d.Note})
	}
	return AdvanceResponse{
		ID:              a.ID,
		EmployeeID:      a.EmployeeID,
		OriginalAmount:  a.OriginalAmount,
		RemainingAmount: a.RemainingAmount,
		TotalDeducted:   a.TotalDeducted(),
		Status:          string(a.Status),
		CarryForward:    a.CarryForward,
		Date:            a.Date,
		Notes:           a.Notes,
		Deductions:      deductions,
		CreatedAt:       a.CreatedAt,
	}
}

// SweepResult summarizes one carry-forward sweep run for a company.
type SweepResult struct {
	MonthKey           string `json:"month_key"`
	EmployeesProcessed int    `json:"employees_processed"`
	EmployeesSkipped   int    `json:"employees_skipped"`
	AdvancesCarried    int    `json:"advances_carried"`
}
