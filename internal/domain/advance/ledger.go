package advance

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/workforce-app/workforce-backend-go/internal/pkg/validator"
)

// New builds a freshly approved advance. The caller persists it.
func New(employeeID, companyID string, amount decimal.Decimal, carryForward bool, notes *string, now time.Time) Advance {
	return Advance{
		EmployeeID:      employeeID,
		CompanyID:       companyID,
		OriginalAmount:  amount,
		RemainingAmount: amount,
		Status:          StatusApproved,
		CarryForward:    carryForward,
		Date:            now,
		Notes:           notes,
		Deductions:      nil,
	}
}

// DeductPartial applies one deduction of amount at now. On a
// validation failure the advance is left completely unchanged.
func (a *Advance) DeductPartial(amount decimal.Decimal, now time.Time) error {
	var errs validator.ValidationErrors

	if a.Status == StatusDeducted {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "advance is already fully deducted"})
	}
	if !amount.IsPositive() {
		errs = append(errs, validator.ValidationError{Field: "amount", Message: "must be a positive number"})
	} else if amount.GreaterThan(a.RemainingAmount) {
		errs = append(errs, validator.ValidationError{Field: "amount", Message: "exceeds the remaining balance"})
	}
	if len(errs) > 0 {
		return errs
	}

	remaining := a.RemainingAmount.Sub(amount).Round(2)
	if remaining.Sign() <= 0 {
		a.RemainingAmount = decimal.Zero
		a.Status = StatusDeducted
	} else {
		a.RemainingAmount = remaining
		if a.CarryForward {
			a.Status = StatusCarriedForward
		} else {
			a.Status = StatusApproved
		}
	}
	a.Deductions = append(a.Deductions, Deduction{Amount: amount, Date: now})
	return nil
}

// MarkFullyDeducted clears the balance in one step.
func (a *Advance) MarkFullyDeducted(now time.Time) error {
	if a.Status == StatusDeducted {
		return ErrAlreadyDeducted
	}
	previous := a.RemainingAmount
	a.RemainingAmount = decimal.Zero
	a.Status = StatusDeducted
	a.Deductions = append(a.Deductions, Deduction{Amount: previous, Date: now, Note: "Full deduction"})
	return nil
}

// EligibleForCarryForward reports whether the monthly sweep should
// roll the advance over: still plainly approved, flagged for
// carry-forward, and dated strictly before the month of ref.
func EligibleForCarryForward(a Advance, ref time.Time) bool {
	if a.Status != StatusApproved || !a.CarryForward {
		return false
	}
	monthStart := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, ref.Location())
	return a.Date.Before(monthStart)
}

// ApplyCarryForward transitions the advance into the current month.
// The ledger date moves to now so a later sweep does not re-carry it
// within the same month.
func (a *Advance) ApplyCarryForward(now time.Time) {
	a.Status = StatusCarriedForward
	a.Date = now
}
