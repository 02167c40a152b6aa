package employee

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/workforce-app/workforce-backend-go/internal/pkg/validator"
)

func validCreateRequest() CreateEmployeeRequest {
	return CreateEmployeeRequest{
		FullName:   "Asha Verma",
		HireDate:   "2025-01-15",
		SalaryType: "monthly",
		SalaryConfig: SalaryConfig{
			Monthly: &MonthlyConfig{Amount: decimal.RequireFromString("75000")},
		},
	}
}

func TestCreateEmployeeRequestValidate(t *testing.T) {
	t.Run("valid request passes", func(t *testing.T) {
		req := validCreateRequest()
		assert.NoError(t, req.Validate())
	})

	t.Run("config branch must match salary type", func(t *testing.T) {
		req := validCreateRequest()
		req.SalaryType = "hourly" // monthly branch populated, hourly requested

		err := req.Validate()
		var verrs validator.ValidationErrors
		require.ErrorAs(t, err, &verrs)
		assert.Contains(t, verrs.ToMap(), "salary_config")
	})

	t.Run("unknown salary type is rejected", func(t *testing.T) {
		req := validCreateRequest()
		req.SalaryType = "commission"

		err := req.Validate()
		var verrs validator.ValidationErrors
		require.ErrorAs(t, err, &verrs)
		assert.Contains(t, verrs.ToMap(), "salary_type")
	})

	t.Run("negative amounts are rejected", func(t *testing.T) {
		req := validCreateRequest()
		req.SalaryConfig.Monthly.Amount = decimal.RequireFromString("-1")

		err := req.Validate()
		var verrs validator.ValidationErrors
		require.ErrorAs(t, err, &verrs)
	})

	t.Run("dynamic date window must be ordered", func(t *testing.T) {
		req := validCreateRequest()
		req.SalaryType = "dynamic-date"
		start, _ := validator.IsValidDate("2025-03-01")
		end, _ := validator.IsValidDate("2025-02-01")
		req.SalaryConfig = SalaryConfig{
			DynamicDate: &DynamicDateConfig{
				BaseAmount:       decimal.RequireFromString("30000"),
				BonusRate:        decimal.RequireFromString("10"),
				StartDate:        &start,
				EndDate:          &end,
				PaymentFrequency: PaymentFrequencyMonthly,
			},
		}

		err := req.Validate()
		var verrs validator.ValidationErrors
		require.ErrorAs(t, err, &verrs)
		assert.Contains(t, verrs.ToMap(), "salary_config.dynamic_date.end_date")
	})
}

func TestUpdateEmployeeRequestValidate(t *testing.T) {
	t.Run("salary type and config must change together", func(t *testing.T) {
		salaryType := "monthly"
		req := UpdateEmployeeRequest{ID: "emp-1", SalaryType: &salaryType}

		err := req.Validate()
		var verrs validator.ValidationErrors
		require.ErrorAs(t, err, &verrs)
		assert.Contains(t, verrs.ToMap(), "salary_type")
	})

	t.Run("empty update is valid", func(t *testing.T) {
		req := UpdateEmployeeRequest{ID: "emp-1"}
		assert.NoError(t, req.Validate())
	})
}

func TestActiveBranch(t *testing.T) {
	cfg := SalaryConfig{Monthly: &MonthlyConfig{Amount: decimal.RequireFromString("75000")}}

	assert.NotNil(t, cfg.ActiveBranch(SalaryTypeMonthly))
	assert.Nil(t, cfg.ActiveBranch(SalaryTypeHourly))
	assert.Nil(t, SalaryConfig{}.ActiveBranch(SalaryTypeMonthly))
}
