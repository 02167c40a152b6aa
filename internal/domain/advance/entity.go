package advance

import (
	"time"

	"github.com/shopspring/decimal"
)

// Status is the advance lifecycle state.
//
//	pending -> approved -> deducted (terminal)
//	                    -> carried-forward -> deducted / carried-forward
//
// "pending" is reserved for future approval flows; the current
// creation path enters directly at "approved". A carried-forward
// advance counts against net salary exactly like an approved one.
type Status string

const (
	StatusPending        Status = "pending"
	StatusApproved       Status = "approved"
	StatusCarriedForward Status = "carried-forward"
	StatusDeducted       Status = "deducted"
)

// Deduction is one append-only history entry.
type Deduction struct {
	Amount decimal.Decimal `json:"amount"`
	Date   time.Time       `json:"date"`
	Note   string          `json:"note,omitempty"`
}

// Advance is a revolving debit against future salary.
type Advance struct {
	ID         string
	EmployeeID string
	CompanyID  string
	// OriginalAmount is the amount granted, immutable after creation.
	OriginalAmount decimal.Decimal
	// RemainingAmount is the live balance, decremented by deductions
	// and floored at zero.
	RemainingAmount decimal.Decimal
	Status          Status
	// CarryForward governs the status a partially deducted advance
	// transitions to, and whether the monthly sweep rolls it over.
	CarryForward bool
	// Date is the advance's ledger date. The sweep resets it to the
	// sweep time when the advance rolls into a new month.
	Date       time.Time
	Notes      *string
	Deductions []Deduction
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Outstanding reports whether the advance still counts against net
// salary.
func (a *Advance) Outstanding() bool {
	return a.Status == StatusApproved || a.Status == StatusCarriedForward
}

// TotalDeducted derives the amount repaid so far. Rows imported from
// legacy data may lack OriginalAmount; for those the deduction
// history is summed instead.
func (a *Advance) TotalDeducted() decimal.Decimal {
	if a.OriginalAmount.IsPositive() {
		return a.OriginalAmount.Sub(a.RemainingAmount)
	}
	total := decimal.Zero
	for _, d := range a.Deductions {
		total = total.Add(d.Amount)
	}
	return total
}

// MonthKey formats t as the "YYYY-MM" granularity used by the
// carry-forward sweep gate.
func MonthKey(t time.Time) string {
	return t.Format("2006-01")
}
