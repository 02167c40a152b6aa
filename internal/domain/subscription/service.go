package subscription

import "context"

type SubscriptionService interface {
	GetMySubscription(ctx context.Context, companyID string) (Subscription, error)
	CanAddEmployee(ctx context.Context, companyID string) (bool, error)
	CanAddAdvance(ctx context.Context, companyID string, employeeID string) (bool, error)
}
