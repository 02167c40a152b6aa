package company

import "time"

// Company is the owner scope: every employee, item and advance
// belongs to exactly one company.
type Company struct {
	ID        string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
