package attendance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/workforce-app/workforce-backend-go/internal/domain/employee"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestCheckDate(t *testing.T) {
	emp := employee.Employee{HireDate: day(2025, 1, 15)}

	t.Run("date before hire date is rejected", func(t *testing.T) {
		assert.ErrorIs(t, CheckDate(emp, day(2025, 1, 14)), ErrBeforeHireDate)
	})

	t.Run("hire date itself is allowed", func(t *testing.T) {
		assert.NoError(t, CheckDate(emp, day(2025, 1, 15)))
	})

	t.Run("time of day does not affect the comparison", func(t *testing.T) {
		lateOnHireDate := time.Date(2025, 1, 15, 23, 30, 0, 0, time.UTC)
		assert.NoError(t, CheckDate(emp, lateOnHireDate))
	})
}

func TestCheckDateDynamicWindow(t *testing.T) {
	start := day(2025, 2, 1)
	end := day(2025, 2, 28)
	emp := employee.Employee{
		HireDate:   day(2025, 1, 1),
		SalaryType: employee.SalaryTypeDynamicDate,
		SalaryConfig: employee.SalaryConfig{
			DynamicDate: &employee.DynamicDateConfig{StartDate: &start, EndDate: &end},
		},
	}

	assert.NoError(t, CheckDate(emp, day(2025, 2, 1)))
	assert.NoError(t, CheckDate(emp, day(2025, 2, 28)))
	assert.ErrorIs(t, CheckDate(emp, day(2025, 1, 31)), ErrOutsideWindow)
	assert.ErrorIs(t, CheckDate(emp, day(2025, 3, 1)), ErrOutsideWindow)
}

func TestCheckDateWindowIgnoredWithoutBothBounds(t *testing.T) {
	start := day(2025, 2, 1)
	emp := employee.Employee{
		HireDate:   day(2025, 1, 1),
		SalaryType: employee.SalaryTypeDynamicDate,
		SalaryConfig: employee.SalaryConfig{
			DynamicDate: &employee.DynamicDateConfig{StartDate: &start},
		},
	}

	// a half-configured window does not restrict attendance
	assert.NoError(t, CheckDate(emp, day(2025, 6, 1)))
}

func TestSameDay(t *testing.T) {
	a := time.Date(2025, 3, 10, 0, 1, 0, 0, time.UTC)
	b := time.Date(2025, 3, 10, 23, 59, 0, 0, time.UTC)
	c := time.Date(2025, 3, 11, 0, 0, 0, 0, time.UTC)

	assert.True(t, SameDay(a, b))
	assert.False(t, SameDay(b, c))
}
