package payroll

import (
	"context"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/shopspring/decimal"
	"github.com/workforce-app/workforce-backend-go/internal/domain/advance"
	"github.com/workforce-app/workforce-backend-go/internal/domain/employee"
	"github.com/workforce-app/workforce-backend-go/internal/domain/payroll"
	"github.com/workforce-app/workforce-backend-go/internal/domain/workrecord"
	"github.com/workforce-app/workforce-backend-go/internal/pkg/currency"
)

type PayrollServiceImpl struct {
	employeeRepo   employee.EmployeeRepository
	workRecordRepo workrecord.WorkRecordRepository
	advanceRepo    advance.AdvanceRepository
}

func NewPayrollService(
	employeeRepo employee.EmployeeRepository,
	workRecordRepo workrecord.WorkRecordRepository,
	advanceRepo advance.AdvanceRepository,
) payroll.PayrollService {
	return &PayrollServiceImpl{
		employeeRepo:   employeeRepo,
		workRecordRepo: workRecordRepo,
		advanceRepo:    advanceRepo,
	}
}

// Helper to get company_id from JWT context
func getClaimsFromContext(ctx context.Context) (companyID string, err error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	companyID, ok := claims["company_id"].(string)
	if !ok || companyID == "" {
		return "", fmt.Errorf("company_id claim is missing or invalid")
	}

	return companyID, nil
}

func (s *PayrollServiceImpl) GetPayslip(ctx context.Context, employeeID string) (payroll.PayslipResponse, error) {
	companyID, err := getClaimsFromContext(ctx)
	if err != nil {
		return payroll.PayslipResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, employeeID, companyID)
	if err != nil {
		return payroll.PayslipResponse{}, err
	}

	return s.buildPayslip(ctx, emp, time.Now())
}

func (s *PayrollServiceImpl) GetSummary(ctx context.Context) (payroll.PayrollSummaryResponse, error) {
	companyID, err := getClaimsFromContext(ctx)
	if err != nil {
		return payroll.PayrollSummaryResponse{}, err
	}

	employees, err := s.employeeRepo.GetByCompanyID(ctx, companyID)
	if err != nil {
		return payroll.PayrollSummaryResponse{}, err
	}

	now := time.Now()
	summary := payroll.PayrollSummaryResponse{
		MonthKey:                 advance.MonthKey(now),
		TotalGrossSalary:         decimal.Zero,
		TotalOutstandingAdvances: decimal.Zero,
		TotalNetSalary:           decimal.Zero,
	}

	for _, emp := range employees {
		slip, err := s.buildPayslip(ctx, emp, now)
		if err != nil {
			return payroll.PayrollSummaryResponse{}, err
		}
		summary.TotalEmployees++
		summary.TotalGrossSalary = summary.TotalGrossSalary.Add(slip.GrossSalary)
		summary.TotalOutstandingAdvances = summary.TotalOutstandingAdvances.Add(slip.OutstandingAdvances)
		summary.TotalNetSalary = summary.TotalNetSalary.Add(slip.NetSalary)
	}

	return summary, nil
}

// buildPayslip loads the employee's ledgers and runs the pure engine
// against the explicit reference time.
func (s *PayrollServiceImpl) buildPayslip(ctx context.Context, emp employee.Employee, ref time.Time) (payroll.PayslipResponse, error) {
	var records []workrecord.WorkRecord
	if emp.SalaryType == employee.SalaryTypeDaily {
		var err error
		records, err = s.workRecordRepo.GetByEmployeeID(ctx, emp.ID, emp.CompanyID)
		if err != nil {
			return payroll.PayslipResponse{}, fmt.Errorf("failed to load work records: %w", err)
		}
	}

	advances, err := s.advanceRepo.GetByEmployeeID(ctx, emp.ID, emp.CompanyID)
	if err != nil {
		return payroll.PayslipResponse{}, fmt.Errorf("failed to load advances: %w", err)
	}

	gross := payroll.GrossMonthlySalary(emp, records, ref)
	outstanding := payroll.OutstandingAdvances(advances)
	net := payroll.NetSalary(gross, outstanding)

	advResponses := make([]advance.AdvanceResponse, 0, len(advances))
	for _, adv := range advances {
		advResponses = append(advResponses, advance.ToResponse(adv))
	}

	return payroll.PayslipResponse{
		EmployeeID:          emp.ID,
		EmployeeName:        emp.FullName,
		SalaryType:          string(emp.SalaryType),
		MonthKey:            advance.MonthKey(ref),
		GrossSalary:         gross,
		OutstandingAdvances: outstanding,
		NetSalary:           net,
		GrossFormatted:      currency.Format(gross),
		NetFormatted:        currency.Format(net),
		Advances:            advResponses,
	}, nil
}
