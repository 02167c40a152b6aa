package item

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/workforce-app/workforce-backend-go/internal/pkg/validator"
)

type UpsertItemRequest struct {
	// ID is optional; when omitted it is derived from name+unit.
	ID       string          `json:"id,omitempty"`
	Name     string          `json:"name"`
	Unit     string          `json:"unit"`
	Rate     decimal.Decimal `json:"rate"`
	Tags     []string        `json:"tags,omitempty"`
	Archived *bool           `json:"archived,omitempty"`
}

func (r *UpsertItemRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "is required"})
	}
	if validator.IsEmpty(r.Unit) {
		errs = append(errs, validator.ValidationError{Field: "unit", Message: "is required"})
	}
	if r.Rate.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "rate", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ItemResponse struct {
	ID        string          `json:"id"`
	CompanyID string          `json:"company_id"`
	Name      string          `json:"name"`
	Unit      string          `json:"unit"`
	Rate      decimal.Decimal `json:"rate"`
	Tags      []string        `json:"tags"`
	Archived  bool            `json:"archived"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

func ToResponse(it Item) ItemResponse {
	tags := it.Tags
	if tags == nil {
		tags = []string{}
	}
	return ItemResponse{
		ID:        it.ID,
		CompanyID: it.CompanyID,
		Name:      it.Name,
		Unit:      it.Unit,
		Rate:      it.Rate,
		Tags:      tags,
		Archived:  it.Archived,
		CreatedAt: it.CreatedAt,
		UpdatedAt: it.UpdatedAt,
	}
}

// BulkRowResult reports the outcome of one row of a bulk upsert. The
// operation is not transactional: rows fail independently.
type BulkRowResult struct {
	Row   int    `json:"row"`
	ID    string `json:"id,omitempty"`
	OK    bool   `json:"ok"`
	Error string `json:"error,omitempty"`
}

type BulkUpsertResponse struct {
	Results []BulkRowResult `json:"results"`
	Created int             `json:"created_or_updated"`
	Failed  int             `json:"failed"`
}

// SearchParams is the pure filter+sort input.
type SearchParams struct {
	Query string
	Unit  string
	Sort  string // updated-asc|updated-desc|name-asc|name-desc|rate-asc|rate-desc
}
