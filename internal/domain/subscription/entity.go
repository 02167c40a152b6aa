package subscription

import "time"

// SubscriptionStatus represents the status of a subscription
type SubscriptionStatus string

const (
	StatusTrial     SubscriptionStatus = "trial"
	StatusActive    SubscriptionStatus = "active"
	StatusExpired   SubscriptionStatus = "expired"
	StatusCancelled SubscriptionStatus = "cancelled"
)

// Plan represents a subscription tier and its quotas. A nil quota
// means unlimited.
type Plan struct {
	ID                     string    `json:"id"`
	Name                   string    `json:"name"`
	TierLevel              int       `json:"tier_level"`
	MaxEmployees           *int      `json:"max_employees,omitempty"`
	MaxAdvancesPerEmployee *int      `json:"max_advances_per_employee,omitempty"`
	IsActive               bool      `json:"is_active"`
	CreatedAt              time.Time `json:"created_at"`
}

// Subscription represents a company's subscription
type Subscription struct {
	ID               string             `json:"id"`
	CompanyID        string             `json:"company_id"`
	PlanID           string             `json:"plan_id"`
	Status           SubscriptionStatus `json:"status"`
	CurrentPeriodEnd time.Time          `json:"current_period_end"`
	CreatedAt        time.Time          `json:"created_at"`
	UpdatedAt        time.Time          `json:"updated_at"`

	// Joined data
	Plan *Plan `json:"plan,omitempty"`
}

// IsActive checks if the subscription grants access
func (s *Subscription) IsActive() bool {
	return s.Status == StatusActive || s.Status == StatusTrial
}

// CanAddEmployee checks the employee quota against the current count
func (s *Subscription) CanAddEmployee(currentCount int) bool {
	if s.Plan == nil || s.Plan.MaxEmployees == nil {
		return true
	}
	return currentCount < *s.Plan.MaxEmployees
}

// CanAddAdvance checks the per-employee advance quota
func (s *Subscription) CanAddAdvance(currentCount int) bool {
	if s.Plan == nil || s.Plan.MaxAdvancesPerEmployee == nil {
		return true
	}
	return currentCount < *s.Plan.MaxAdvancesPerEmployee
}
