package payroll

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/workforce-app/workforce-backend-go/internal/domain/advance"
	"github.com/workforce-app/workforce-backend-go/internal/domain/employee"
	"github.com/workforce-app/workforce-backend-go/internal/domain/workrecord"
)

// Average weeks per month, used by the hourly formula.
var weeksPerMonth = decimal.NewFromFloat(4.33)

var hundred = decimal.NewFromInt(100)

// GrossMonthlySalary computes the gross pay of one employee for the
// calendar month containing ref. Pure: the reference time is explicit
// and the inputs are never mutated. An absent or mismatched config
// branch yields zero rather than an error.
//
// Target-based types (piece-rate, weight-based, meter-based) pay the
// committed target, not recorded output; only the daily type reads
// work records.
func GrossMonthlySalary(emp employee.Employee, records []workrecord.WorkRecord, ref time.Time) decimal.Decimal {
	cfg := emp.SalaryConfig

	switch emp.SalaryType {
	case employee.SalaryTypeHourly:
		if cfg.Hourly == nil {
			return decimal.Zero
		}
		return cfg.Hourly.Rate.Mul(cfg.Hourly.HoursPerWeek).Mul(weeksPerMonth)

	case employee.SalaryTypeDaily:
		if cfg.Daily == nil {
			return decimal.Zero
		}
		gross := cfg.Daily.Rate.Mul(decimal.NewFromInt(int64(cfg.Daily.WorkingDays)))
		if cfg.Daily.HasPerUnitWork {
			gross = gross.Add(perUnitTotal(records, ref))
		}
		return gross

	case employee.SalaryTypeMonthly:
		if cfg.Monthly == nil {
			return decimal.Zero
		}
		return cfg.Monthly.Amount

	case employee.SalaryTypePieceRate:
		if cfg.PieceRate == nil {
			return decimal.Zero
		}
		return cfg.PieceRate.RatePerPiece.Mul(cfg.PieceRate.TargetPieces)

	case employee.SalaryTypeWeightBased:
		if cfg.WeightBased == nil {
			return decimal.Zero
		}
		return cfg.WeightBased.RatePerKg.Mul(cfg.WeightBased.TargetWeightKg)

	case employee.SalaryTypeMeterBased:
		if cfg.MeterBased == nil {
			return decimal.Zero
		}
		return cfg.MeterBased.RatePerMeter.Mul(cfg.MeterBased.TargetMeters)

	case employee.SalaryTypeDynamicDate:
		if cfg.DynamicDate == nil {
			return decimal.Zero
		}
		// Flat percentage bump regardless of payment frequency.
		multiplier := decimal.NewFromInt(1).Add(cfg.DynamicDate.BonusRate.Div(hundred))
		return cfg.DynamicDate.BaseAmount.Mul(multiplier)
	}

	return decimal.Zero
}

// perUnitTotal sums the snapshotted totals of records dated in the
// calendar month of ref.
func perUnitTotal(records []workrecord.WorkRecord, ref time.Time) decimal.Decimal {
	total := decimal.Zero
	for _, rec := range records {
		if rec.Date.Year() == ref.Year() && rec.Date.Month() == ref.Month() {
			total = total.Add(rec.TotalAmount)
		}
	}
	return total
}

// OutstandingAdvances sums remaining balances over every advance that
// still counts against salary (approved or carried-forward; deducted
// and pending are excluded).
func OutstandingAdvances(advances []advance.Advance) decimal.Decimal {
	total := decimal.Zero
	for i := range advances {
		if advances[i].Outstanding() {
			total = total.Add(advances[i].RemainingAmount)
		}
	}
	return total
}

// NetSalary floors gross minus outstanding at zero. Advances beyond
// one month's gross do not become negative pay; the unpaid balance
// simply stays outstanding.
func NetSalary(gross, outstanding decimal.Decimal) decimal.Decimal {
	net := gross.Sub(outstanding)
	if net.IsNegative() {
		return decimal.Zero
	}
	return net
}
