package workrecord

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type Unit string

const (
	UnitKg    Unit = "kg"
	UnitMeter Unit = "meter"
	UnitPiece Unit = "piece"
)

// WorkRecord is one dated unit-of-work entry. Quantity, rate and
// total are captured at creation and never recomputed, so a later
// catalog rate change does not rewrite history.
type WorkRecord struct {
	ID         string
	EmployeeID string
	CompanyID  string
	Date       time.Time
	Quantity   decimal.Decimal
	Unit       Unit
	Rate       decimal.Decimal
	// TotalAmount = Quantity * Rate, snapshotted at creation.
	TotalAmount decimal.Decimal
	// Notes may embed the catalog item name as
	// "Item: <name> | <freeform>", so the record stays readable after
	// the item is renamed or deleted.
	Notes     *string
	CreatedAt time.Time
}

const itemNotePrefix = "Item: "

// ItemNote renders the denormalized notes field for a record created
// from a catalog item.
func ItemNote(itemName, freeform string) string {
	note := itemNotePrefix + itemName
	if freeform != "" {
		note += " | " + freeform
	}
	return note
}

// ItemName extracts the embedded catalog item name, if any.
func (w *WorkRecord) ItemName() string {
	if w.Notes == nil || !strings.HasPrefix(*w.Notes, itemNotePrefix) {
		return ""
	}
	rest := strings.TrimPrefix(*w.Notes, itemNotePrefix)
	if idx := strings.Index(rest, " | "); idx >= 0 {
		rest = rest[:idx]
	}
	return rest
}
