package payroll

import (
	"github.com/shopspring/decimal"
	"github.com/workforce-app/workforce-backend-go/internal/domain/advance"
)

// PayslipResponse is the computed salary view for one employee and
// one reference month.
type PayslipResponse struct {
	EmployeeID          string                    `json:"employee_id"`
	EmployeeName        string                    `json:"employee_name"`
	SalaryType          string                    `json:"salary_type"`
	MonthKey            string                    `json:"month_key"`
	GrossSalary         decimal.Decimal           `json:"gross_salary"`
	OutstandingAdvances decimal.Decimal           `json:"outstanding_advances"`
	NetSalary           decimal.Decimal           `json:"net_salary"`
	GrossFormatted      string                    `json:"gross_salary_formatted"`
	NetFormatted        string                    `json:"net_salary_formatted"`
	Advances            []advance.AdvanceResponse `json:"advances"`
}

// PayrollSummaryResponse aggregates payslips across a company.
type PayrollSummaryResponse struct {
	MonthKey                 string          `json:"month_key"`
	TotalEmployees           int             `json:"total_employees"`
	TotalGrossSalary         decimal.Decimal `json:"total_gross_salary"`
	TotalOutstandingAdvances decimal.Decimal `json:"total_outstanding_advances"`
	TotalNetSalary           decimal.Decimal `json:"total_net_salary"`
}
