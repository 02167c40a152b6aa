package cron

import (
	"context"
	"log/slog"
	"time"

	"github.com/workforce-app/workforce-backend-go/internal/domain/advance"
	"github.com/workforce-app/workforce-backend-go/internal/domain/company"
)

// AdvanceJobs contains advance-related cron jobs
type AdvanceJobs struct {
	advanceService advance.AdvanceService
	companyRepo    company.CompanyRepository
}

// NewAdvanceJobs creates advance cron jobs
func NewAdvanceJobs(advanceService advance.AdvanceService, companyRepo company.CompanyRepository) *AdvanceJobs {
	return &AdvanceJobs{
		advanceService: advanceService,
		companyRepo:    companyRepo,
	}
}

// RegisterJobs registers all advance-related cron jobs
func (j *AdvanceJobs) RegisterJobs(scheduler *Scheduler, interval time.Duration) {
	// The sweep itself is idempotent per employee per calendar month,
	// so a short interval only costs cheap no-op runs.
	scheduler.Register(
		"advance_carry_forward_sweep",
		interval,
		j.CarryForwardSweep,
	)
}

// CarryForwardSweep rolls flagged advances of past months into the
// current month for every company.
func (j *AdvanceJobs) CarryForwardSweep(ctx context.Context) error {
	companyIDs, err := j.companyRepo.ListIDs(ctx)
	if err != nil {
		return err
	}

	for _, companyID := range companyIDs {
		result, err := j.advanceService.SweepCompany(ctx, companyID)
		if err != nil {
			// One bad company must not stall the rest of the batch.
			slog.Error("Carry-forward sweep failed", "company_id", companyID, "error", err)
			continue
		}
		if result.AdvancesCarried > 0 {
			slog.Info("Carry-forward sweep applied",
				"company_id", companyID,
				"month", result.MonthKey,
				"employees", result.EmployeesProcessed,
				"advances", result.AdvancesCarried,
			)
		}
	}

	return nil
}
