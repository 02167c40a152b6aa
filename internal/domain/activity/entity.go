package activity

import (
	"encoding/json"
	"time"
)

// Entry is one activity-log record. Before/After carry optional JSON
// snapshots of the mutated resource.
type Entry struct {
	ID           string          `json:"id"`
	CompanyID    string          `json:"company_id"`
	UserID       string          `json:"user_id"`
	Action       string          `json:"action"`        // e.g. "advance.deduct_partial"
	ResourceType string          `json:"resource_type"` // e.g. "advance"
	ResourceID   *string         `json:"resource_id,omitempty"`
	Before       json.RawMessage `json:"before,omitempty"`
	After        json.RawMessage `json:"after,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
}
