package activity

import "context"

// Service is a fire-and-forget sink. Record never blocks the calling
// operation and never returns an error: a full queue or a failed
// write is logged and dropped.
type Service interface {
	Record(entry Entry)
	List(ctx context.Context, companyID string, limit int) ([]Entry, error)
	// Stop flushes queued entries and stops the workers.
	Stop()
}
