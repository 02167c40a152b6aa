package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

type Employee struct {
	ID          string
	CompanyID   string
	FullName    string
	Email       string
	PhoneNumber string
	Position    string
	Department  string
	HireDate    time.Time

	SalaryType   SalaryType
	SalaryConfig SalaryConfig

	// Last calendar month ("YYYY-MM") the advance carry-forward sweep
	// processed this employee. Nil until the first sweep.
	LastAdvanceProcessedMonth *string

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time
}

type SalaryType string

const (
	SalaryTypeHourly      SalaryType = "hourly"
	SalaryTypeDaily       SalaryType = "daily"
	SalaryTypeMonthly     SalaryType = "monthly"
	SalaryTypePieceRate   SalaryType = "piece-rate"
	SalaryTypeWeightBased SalaryType = "weight-based"
	SalaryTypeMeterBased  SalaryType = "meter-based"
	SalaryTypeDynamicDate SalaryType = "dynamic-date"
)

var SalaryTypes = []SalaryType{
	SalaryTypeHourly,
	SalaryTypeDaily,
	SalaryTypeMonthly,
	SalaryTypePieceRate,
	SalaryTypeWeightBased,
	SalaryTypeMeterBased,
	SalaryTypeDynamicDate,
}

// SalaryConfig is a tagged union: exactly the branch matching the
// employee's SalaryType is populated, all others are nil. Persisted
// as JSONB alongside the discriminator column.
type SalaryConfig struct {
	Hourly      *HourlyConfig      `json:"hourly,omitempty"`
	Daily       *DailyConfig       `json:"daily,omitempty"`
	Monthly     *MonthlyConfig     `json:"monthly,omitempty"`
	PieceRate   *PieceRateConfig   `json:"piece_rate,omitempty"`
	WeightBased *WeightBasedConfig `json:"weight_based,omitempty"`
	MeterBased  *MeterBasedConfig  `json:"meter_based,omitempty"`
	DynamicDate *DynamicDateConfig `json:"dynamic_date,omitempty"`
}

type HourlyConfig struct {
	Rate         decimal.Decimal `json:"rate"`
	HoursPerWeek decimal.Decimal `json:"hours_per_week"`
}

type DailyConfig struct {
	Rate        decimal.Decimal `json:"rate"`
	WorkingDays int             `json:"working_days"`
	// When set, per-unit work records of the current month are added
	// on top of the daily base.
	HasPerUnitWork bool `json:"has_per_unit_work"`
	// Legacy unit->rate map, superseded by catalog items when a work
	// record references one.
	PerUnitRates map[string]decimal.Decimal `json:"per_unit_rates,omitempty"`
}

type MonthlyConfig struct {
	Amount decimal.Decimal `json:"amount"`
}

type PieceRateConfig struct {
	RatePerPiece decimal.Decimal `json:"rate_per_piece"`
	TargetPieces decimal.Decimal `json:"target_pieces"`
}

type WeightBasedConfig struct {
	RatePerKg      decimal.Decimal `json:"rate_per_kg"`
	TargetWeightKg decimal.Decimal `json:"target_weight_kg"`
}

type MeterBasedConfig struct {
	RatePerMeter decimal.Decimal `json:"rate_per_meter"`
	TargetMeters decimal.Decimal `json:"target_meters"`
}

type PaymentFrequency string

const (
	PaymentFrequencyWeekly   PaymentFrequency = "weekly"
	PaymentFrequencyBiWeekly PaymentFrequency = "bi-weekly"
	PaymentFrequencyMonthly  PaymentFrequency = "monthly"
)

type DynamicDateConfig struct {
	BaseAmount decimal.Decimal `json:"base_amount"`
	// Flat percentage bump on the base, not prorated by frequency.
	BonusRate        decimal.Decimal  `json:"bonus_rate"`
	StartDate        *time.Time       `json:"start_date,omitempty"`
	EndDate          *time.Time       `json:"end_date,omitempty"`
	PaymentFrequency PaymentFrequency `json:"payment_frequency"`
}

// ActiveBranch returns the config branch matching t, or nil when the
// branch is absent.
func (c SalaryConfig) ActiveBranch(t SalaryType) interface{} {
	switch t {
	case SalaryTypeHourly:
		if c.Hourly != nil {
			return c.Hourly
		}
	case SalaryTypeDaily:
		if c.Daily != nil {
			return c.Daily
		}
	case SalaryTypeMonthly:
		if c.Monthly != nil {
			return c.Monthly
		}
	case SalaryTypePieceRate:
		if c.PieceRate != nil {
			return c.PieceRate
		}
	case SalaryTypeWeightBased:
		if c.WeightBased != nil {
			return c.WeightBased
		}
	case SalaryTypeMeterBased:
		if c.MeterBased != nil {
			return c.MeterBased
		}
	case SalaryTypeDynamicDate:
		if c.DynamicDate != nil {
			return c.DynamicDate
		}
	}
	return nil
}

// AttendanceWindow returns the inclusive date range inside which
// attendance may be recorded for a dynamic-date employee. Both bounds
// are nil for every other salary type, or when the window is not
// fully configured.
func (e *Employee) AttendanceWindow() (start, end *time.Time) {
	if e.SalaryType != SalaryTypeDynamicDate || e.SalaryConfig.DynamicDate == nil {
		return nil, nil
	}
	cfg := e.SalaryConfig.DynamicDate
	if cfg.StartDate == nil || cfg.EndDate == nil {
		return nil, nil
	}
	return cfg.StartDate, cfg.EndDate
}
