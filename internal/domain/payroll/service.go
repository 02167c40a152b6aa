package payroll

import "context"

type PayrollService interface {
	// GetPayslip computes gross, outstanding advances and net salary
	// for one employee for the current month.
	GetPayslip(ctx context.Context, employeeID string) (PayslipResponse, error)
	// GetSummary aggregates payslips across the company.
	GetSummary(ctx context.Context) (PayrollSummaryResponse, error)
}
