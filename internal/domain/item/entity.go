package item

import (
	"time"

	"github.com/shopspring/decimal"
)

// Item is an owner-scoped reusable rate card: a named unit+rate used
// to pre-fill work records. The id is derived from name+unit, which
// makes it a natural idempotency key for upsert and bulk import.
type Item struct {
	ID        string
	CompanyID string
	Name      string
	Unit      string // kg | meter | piece
	Rate      decimal.Decimal
	Tags      []string
	Archived  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
