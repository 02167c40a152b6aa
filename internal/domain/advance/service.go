package advance

import "context"

type AdvanceService interface {
	Create(ctx context.Context, req CreateAdvanceRequest) (AdvanceResponse, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]AdvanceResponse, error)
	DeductPartial(ctx context.Context, req DeductAdvanceRequest) (AdvanceResponse, error)
	MarkFullyDeducted(ctx context.Context, advanceID string) (AdvanceResponse, error)
	// RunCarryForwardSweep rolls eligible advances of every employee
	// of the calling company into the current month. Idempotent per
	// employee per calendar month.
	RunCarryForwardSweep(ctx context.Context) (SweepResult, error)
	// SweepCompany is the cron entry point; it needs an explicit
	// company id because there is no request context.
	SweepCompany(ctx context.Context, companyID string) (SweepResult, error)
}
