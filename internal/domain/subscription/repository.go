package subscription

import "context"

type SubscriptionRepository interface {
	GetByCompanyID(ctx context.Context, companyID string) (Subscription, error)
	// EnsureTrial creates a trial subscription on the default plan if
	// the company has none yet.
	EnsureTrial(ctx context.Context, companyID string) (Subscription, error)
}
