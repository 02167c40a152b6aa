package subscription

import "errors"

// Subscription domain errors. Quota errors surface to the UI as
// upgrade prompts; the guarded operation is aborted before any
// mutation.
var (
	ErrSubscriptionNotFound  = errors.New("no subscription found for this company")
	ErrSubscriptionExpired   = errors.New("subscription has expired")
	ErrEmployeeLimitExceeded = errors.New("employee limit for the current plan reached")
	ErrAdvanceLimitExceeded  = errors.New("advance limit for the current plan reached")
)
