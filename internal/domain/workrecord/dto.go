package workrecord

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/workforce-app/workforce-backend-go/internal/pkg/validator"
)

type CreateWorkRecordRequest struct {
	EmployeeID string          `json:"-"`
	Date       string          `json:"date"` // "YYYY-MM-DD"
	Quantity   decimal.Decimal `json:"quantity"`
	Unit       string          `json:"unit"`
	// Rate may come from a catalog item or be typed in directly.
	Rate     decimal.Decimal `json:"rate"`
	ItemID   *string         `json:"item_id,omitempty"`
	ItemName *string         `json:"item_name,omitempty"`
	Notes    string          `json:"notes,omitempty"`
}

func (r *CreateWorkRecordRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "must be a date in YYYY-MM-DD format"})
	}
	if !r.Quantity.IsPositive() {
		errs = append(errs, validator.ValidationError{Field: "quantity", Message: "must be a positive number"})
	}
	if r.Rate.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "rate", Message: "must be non-negative"})
	}
	switch Unit(r.Unit) {
	case UnitKg, UnitMeter, UnitPiece:
	default:
		errs = append(errs, validator.ValidationError{Field: "unit", Message: "must be kg, meter or piece"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type WorkRecordResponse struct {
	ID          string          `json:"id"`
	EmployeeID  string          `json:"employee_id"`
	Date        string          `json:"date"`
	Quantity    decimal.Decimal `json:"quantity"`
	Unit        string          `json:"unit"`
	Rate        decimal.Decimal `json:"rate"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	ItemName    string          `json:"item_name,omitempty"`
	Notes       *string         `json:"notes,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
}

func ToResponse(w WorkRecord) WorkRecordResponse {
	return WorkRecordResponse{
		ID:          w.ID,
		EmployeeID:  w.EmployeeID,
		Date:        w.Date.Format("2006-01-02"),
		Quantity:    w.Quantity,
		Unit:        string(w.Unit),
		Rate:        w.Rate,
		TotalAmount: w.TotalAmount,
		ItemName:    w.ItemName(),
		Notes:       w.Notes,
		CreatedAt:   w.CreatedAt,
	}
}
