package employee

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/workforce-app/workforce-backend-go/internal/pkg/validator"
)

type CreateEmployeeRequest struct {
	FullName     string       `json:"full_name"`
	Email        string       `json:"email"`
	PhoneNumber  string       `json:"phone_number"`
	Position     string       `json:"position"`
	Department   string       `json:"department"`
	HireDate     string       `json:"hire_date"` // "YYYY-MM-DD"
	SalaryType   string       `json:"salary_type"`
	SalaryConfig SalaryConfig `json:"salary_config"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.FullName) {
		errs = append(errs, validator.ValidationError{Field: "full_name", Message: "is required"})
	}
	if r.Email != "" && !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "is not a valid email address"})
	}
	if r.PhoneNumber != "" && !validator.IsValidPhoneNumber(r.PhoneNumber) {
		errs = append(errs, validator.ValidationError{Field: "phone_number", Message: "is not a valid phone number"})
	}
	if _, ok := validator.IsValidDate(r.HireDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "hire_date", Message: "must be a date in YYYY-MM-DD format"})
	}

	salaryType := SalaryType(r.SalaryType)
	validType := false
	for _, t := range SalaryTypes {
		if t == salaryType {
			validType = true
			break
		}
	}
	if !validType {
		errs = append(errs, validator.ValidationError{Field: "salary_type", Message: "is not a recognized salary type"})
	} else if r.SalaryConfig.ActiveBranch(salaryType) == nil {
		errs = append(errs, validator.ValidationError{Field: "salary_config", Message: "must populate the branch matching salary_type"})
	}
	if errs2 := validateConfigAmounts(salaryType, r.SalaryConfig); errs2 != nil {
		errs = append(errs, errs2...)
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func validateConfigAmounts(t SalaryType, c SalaryConfig) validator.ValidationErrors {
	var errs validator.ValidationErrors

	nonNegative := func(field string, d decimal.Decimal) {
		if d.IsNegative() {
			errs = append(errs, validator.ValidationError{Field: field, Message: "must be non-negative"})
		}
	}

	switch t {
	case SalaryTypeHourly:
		if c.Hourly != nil {
			nonNegative("salary_config.hourly.rate", c.Hourly.Rate)
			nonNegative("salary_config.hourly.hours_per_week", c.Hourly.HoursPerWeek)
		}
	case SalaryTypeDaily:
		if c.Daily != nil {
			nonNegative("salary_config.daily.rate", c.Daily.Rate)
			if c.Daily.WorkingDays < 0 || c.Daily.WorkingDays > 31 {
				errs = append(errs, validator.ValidationError{Field: "salary_config.daily.working_days", Message: "must be between 0 and 31"})
			}
		}
	case SalaryTypeMonthly:
		if c.Monthly != nil {
			nonNegative("salary_config.monthly.amount", c.Monthly.Amount)
		}
	case SalaryTypePieceRate:
		if c.PieceRate != nil {
			nonNegative("salary_config.piece_rate.rate_per_piece", c.PieceRate.RatePerPiece)
			nonNegative("salary_config.piece_rate.target_pieces", c.PieceRate.TargetPieces)
		}
	case SalaryTypeWeightBased:
		if c.WeightBased != nil {
			nonNegative("salary_config.weight_based.rate_per_kg", c.WeightBased.RatePerKg)
			nonNegative("salary_config.weight_based.target_weight_kg", c.WeightBased.TargetWeightKg)
		}
	case SalaryTypeMeterBased:
		if c.MeterBased != nil {
			nonNegative("salary_config.meter_based.rate_per_meter", c.MeterBased.RatePerMeter)
			nonNegative("salary_config.meter_based.target_meters", c.MeterBased.TargetMeters)
		}
	case SalaryTypeDynamicDate:
		if c.DynamicDate != nil {
			cfg := c.DynamicDate
			nonNegative("salary_config.dynamic_date.base_amount", cfg.BaseAmount)
			nonNegative("salary_config.dynamic_date.bonus_rate", cfg.BonusRate)
			switch cfg.PaymentFrequency {
			case PaymentFrequencyWeekly, PaymentFrequencyBiWeekly, PaymentFrequencyMonthly:
			default:
				errs = append(errs, validator.ValidationError{Field: "salary_config.dynamic_date.payment_frequency", Message: "must be weekly, bi-weekly or monthly"})
			}
			if cfg.StartDate != nil && cfg.EndDate != nil && cfg.EndDate.Before(*cfg.StartDate) {
				errs = append(errs, validator.ValidationError{Field: "salary_config.dynamic_date.end_date", Message: "must not be before start_date"})
			}
		}
	}

	return errs
}

type UpdateEmployeeRequest struct {
	ID           string
	FullName     *string       `json:"full_name,omitempty"`
	Email        *string       `json:"email,omitempty"`
	PhoneNumber  *string       `json:"phone_number,omitempty"`
	Position     *string       `json:"position,omitempty"`
	Department   *string       `json:"department,omitempty"`
	HireDate     *string       `json:"hire_date,omitempty"`
	SalaryType   *string       `json:"salary_type,omitempty"`
	SalaryConfig *SalaryConfig `json:"salary_config,omitempty"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.FullName != nil && validator.IsEmpty(*r.FullName) {
		errs = append(errs, validator.ValidationError{Field: "full_name", Message: "must not be blank"})
	}
	if r.Email != nil && *r.Email != "" && !validator.IsValidEmail(*r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "is not a valid email address"})
	}
	if r.HireDate != nil {
		if _, ok := validator.IsValidDate(*r.HireDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "hire_date", Message: "must be a date in YYYY-MM-DD format"})
		}
	}
	// Salary type and config change together or not at all
	if (r.SalaryType == nil) != (r.SalaryConfig == nil) {
		errs = append(errs, validator.ValidationError{Field: "salary_type", Message: "salary_type and salary_config must be updated together"})
	}
	if r.SalaryType != nil && r.SalaryConfig != nil {
		if r.SalaryConfig.ActiveBranch(SalaryType(*r.SalaryType)) == nil {
			errs = append(errs, validator.ValidationError{Field: "salary_config", Message: "must populate the branch matching salary_type"})
		}
		if errs2 := validateConfigAmounts(SalaryType(*r.SalaryType), *r.SalaryConfig); errs2 != nil {
			errs = append(errs, errs2...)
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type EmployeeResponse struct {
	ID                        string       `json:"id"`
	CompanyID                 string       `json:"company_id"`
	FullName                  string       `json:"full_name"`
	Email                     string       `json:"email,omitempty"`
	PhoneNumber               string       `json:"phone_number,omitempty"`
	Position                  string       `json:"position,omitempty"`
	Department                string       `json:"department,omitempty"`
	HireDate                  string       `json:"hire_date"`
	SalaryType                string       `json:"salary_type"`
	SalaryConfig              SalaryConfig `json:"salary_config"`
	LastAdvanceProcessedMonth *string      `json:"last_advance_processed_month,omitempty"`
	CreatedAt                 time.Time    `json:"created_at"`
	UpdatedAt                 time.Time    `json:"updated_at"`
}

func ToResponse(e Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:                        e.ID,
		CompanyID:                 e.CompanyID,
		FullName:                  e.FullName,
		Email:                     e.Email,
		PhoneNumber:               e.PhoneNumber,
		Position:                  e.Position,
		Department:                e.Department,
		HireDate:                  e.HireDate.Format("2006-01-02"),
		SalaryType:                string(e.SalaryType),
		SalaryConfig:              e.SalaryConfig,
		LastAdvanceProcessedMonth: e.LastAdvanceProcessedMonth,
		CreatedAt:                 e.CreatedAt,
		UpdatedAt:                 e.UpdatedAt,
	}
}
