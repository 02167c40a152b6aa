package payroll

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/workforce-app/workforce-backend-go/internal/domain/advance"
	"github.com/workforce-app/workforce-backend-go/internal/domain/employee"
	"github.com/workforce-app/workforce-backend-go/internal/domain/workrecord"
)

func d(s string) decimal.Decimal {
	v, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return v
}

var ref = time.Date(2025, 3, 15, 10, 0, 0, 0, time.UTC)

func TestGrossMonthlySalary(t *testing.T) {
	cases := []struct {
		name string
		emp  employee.Employee
		want string
	}{
		{
			"hourly uses rate times hours per week times 4.33",
			employee.Employee{
				SalaryType: employee.SalaryTypeHourly,
				SalaryConfig: employee.SalaryConfig{
					Hourly: &employee.HourlyConfig{Rate: d("500"), HoursPerWeek: d("40")},
				},
			},
			"86600",
		},
		{
			"daily pays rate times working days",
			employee.Employee{
				SalaryType: employee.SalaryTypeDaily,
				SalaryConfig: employee.SalaryConfig{
					Daily: &employee.DailyConfig{Rate: d("1000"), WorkingDays: 26},
				},
			},
			"26000",
		},
		{
			"monthly pays the configured amount",
			employee.Employee{
				SalaryType: employee.SalaryTypeMonthly,
				SalaryConfig: employee.SalaryConfig{
					Monthly: &employee.MonthlyConfig{Amount: d("75000")},
				},
			},
			"75000",
		},
		{
			"piece rate pays the committed target",
			employee.Employee{
				SalaryType: employee.SalaryTypePieceRate,
				SalaryConfig: employee.SalaryConfig{
					PieceRate: &employee.PieceRateConfig{RatePerPiece: d("50"), TargetPieces: d("1000")},
				},
			},
			"50000",
		},
		{
			"weight based pays the committed target",
			employee.Employee{
				SalaryType: employee.SalaryTypeWeightBased,
				SalaryConfig: employee.SalaryConfig{
					WeightBased: &employee.WeightBasedConfig{RatePerKg: d("120"), TargetWeightKg: d("350")},
				},
			},
			"42000",
		},
		{
			"meter based pays the committed target",
			employee.Employee{
				SalaryType: employee.SalaryTypeMeterBased,
				SalaryConfig: employee.SalaryConfig{
					MeterBased: &employee.MeterBasedConfig{RatePerMeter: d("80"), TargetMeters: d("500")},
				},
			},
			"40000",
		},
		{
			"dynamic date applies the bonus percentage",
			employee.Employee{
				SalaryType: employee.SalaryTypeDynamicDate,
				SalaryConfig: employee.SalaryConfig{
					DynamicDate: &employee.DynamicDateConfig{BaseAmount: d("30000"), BonusRate: d("10")},
				},
			},
			"33000",
		},
		{
			"missing config branch yields zero",
			employee.Employee{SalaryType: employee.SalaryTypeMonthly},
			"0",
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := GrossMonthlySalary(c.emp, nil, ref)
			assert.True(t, got.Equal(d(c.want)), "got %s, want %s", got, c.want)
		})
	}
}

func TestGrossDailyWithPerUnitWork(t *testing.T) {
	emp := employee.Employee{
		SalaryType: employee.SalaryTypeDaily,
		SalaryConfig: employee.SalaryConfig{
			Daily: &employee.DailyConfig{Rate: d("1000"), WorkingDays: 26, HasPerUnitWork: true},
		},
	}
	records := []workrecord.WorkRecord{
		{Date: time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC), TotalAmount: d("1250")},
		{Date: time.Date(2025, 3, 20, 0, 0, 0, 0, time.UTC), TotalAmount: d("750.50")},
		// previous month, must not count
		{Date: time.Date(2025, 2, 28, 0, 0, 0, 0, time.UTC), TotalAmount: d("9999")},
	}

	got := GrossMonthlySalary(emp, records, ref)
	assert.True(t, got.Equal(d("28000.50")), "got %s", got)
}

func TestGrossDailyWithoutPerUnitFlagIgnoresRecords(t *testing.T) {
	emp := employee.Employee{
		SalaryType: employee.SalaryTypeDaily,
		SalaryConfig: employee.SalaryConfig{
			Daily: &employee.DailyConfig{Rate: d("1000"), WorkingDays: 26},
		},
	}
	records := []workrecord.WorkRecord{
		{Date: ref, TotalAmount: d("5000")},
	}

	got := GrossMonthlySalary(emp, records, ref)
	assert.True(t, got.Equal(d("26000")), "got %s", got)
}

func TestOutstandingAdvances(t *testing.T) {
	advances := []advance.Advance{
		{Status: advance.StatusApproved, RemainingAmount: d("4000")},
		{Status: advance.StatusCarriedForward, RemainingAmount: d("2500")},
		{Status: advance.StatusDeducted, RemainingAmount: d("0")},
		{Status: advance.StatusPending, RemainingAmount: d("9999")},
	}

	got := OutstandingAdvances(advances)
	assert.True(t, got.Equal(d("6500")), "got %s", got)
}

func TestNetSalary(t *testing.T) {
	assert.True(t, NetSalary(d("75000"), d("10000")).Equal(d("65000")))
	assert.True(t, NetSalary(d("100"), d("100")).IsZero())
	// advances beyond gross never produce negative pay
	assert.True(t, NetSalary(d("100"), d("5000")).IsZero())
}

func TestPayslipFlow(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	emp := employee.Employee{
		SalaryType: employee.SalaryTypeMonthly,
		SalaryConfig: employee.SalaryConfig{
			Monthly: &employee.MonthlyConfig{Amount: d("75000")},
		},
	}

	adv := advance.New("emp-1", "comp-1", d("10000"), true, nil, now)
	advances := []advance.Advance{adv}

	gross := GrossMonthlySalary(emp, nil, ref)
	net := NetSalary(gross, OutstandingAdvances(advances))
	assert.True(t, net.Equal(d("65000")), "got %s", net)

	// a partial repayment raises net by the repaid amount
	require.NoError(t, advances[0].DeductPartial(d("4000"), now))
	net = NetSalary(gross, OutstandingAdvances(advances))
	assert.True(t, net.Equal(d("69000")), "got %s", net)
	assert.Equal(t, advance.StatusCarriedForward, advances[0].Status)

	// full repayment removes the advance from the payslip entirely
	require.NoError(t, advances[0].MarkFullyDeducted(now))
	net = NetSalary(gross, OutstandingAdvances(advances))
	assert.True(t, net.Equal(d("75000")), "got %s", net)
}
