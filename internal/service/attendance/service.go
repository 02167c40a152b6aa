package attendance

import (
	"context"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/workforce-app/workforce-backend-go/internal/domain/attendance"
	"github.com/workforce-app/workforce-backend-go/internal/domain/employee"
	"github.com/workforce-app/workforce-backend-go/internal/pkg/database"
)

type AttendanceServiceImpl struct {
	db             *database.DB
	attendanceRepo attendance.AttendanceRepository
	employeeRepo   employee.EmployeeRepository
}

func NewAttendanceService(
	db *database.DB,
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		db:             db,
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
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

func (s *AttendanceServiceImpl) Mark(ctx context.Context, req attendance.MarkAttendanceRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	companyID, err := getClaimsFromContext(ctx)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID, companyID)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	date, _ := time.Parse("2006-01-02", req.Date)

	// Business-rule guards: hire date and the dynamic-date window.
	// Nothing is written when either fails.
	if err := attendance.CheckDate(emp, date); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	rec := attendance.AttendanceRecord{
		EmployeeID: req.EmployeeID,
		CompanyID:  companyID,
		Date:       date,
		Status:     attendance.Status(req.Status),
		Notes:      req.Notes,
	}

	saved, err := s.attendanceRepo.Upsert(ctx, rec)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	return attendance.ToResponse(saved), nil
}

func (s *AttendanceServiceImpl) ListByEmployee(ctx context.Context, employeeID string) ([]attendance.AttendanceResponse, error) {
	companyID, err := getClaimsFromContext(ctx)
	if err != nil {
		return nil, err
	}

	records, err := s.attendanceRepo.GetByEmployeeID(ctx, employeeID, companyID)
	if err != nil {
		return nil, err
	}

	result := make([]attendance.AttendanceResponse, 0, len(records))
	for _, rec := range records {
		result = append(result, attendance.ToResponse(rec))
	}

	return result, nil
}

func (s *AttendanceServiceImpl) GetDailySummary(ctx context.Context, dateStr string) (attendance.DailySummaryResponse, error) {
	companyID, err := getClaimsFromContext(ctx)
	if err != nil {
		return attendance.DailySummaryResponse{}, err
	}

	date, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		return attendance.DailySummaryResponse{}, fmt.Errorf("invalid date %q: %w", dateStr, err)
	}

	records, err := s.attendanceRepo.GetByCompanyAndRange(ctx, companyID, date, date)
	if err != nil {
		return attendance.DailySummaryResponse{}, err
	}

	return attendance.DailySummaryResponse{
		Date:   date.Format("2006-01-02"),
		Counts: attendance.SummarizeDay(records, date),
	}, nil
}

func (s *AttendanceServiceImpl) GetMonthlySummary(ctx context.Context, year, month int) (attendance.RangeSummaryResponse, error) {
	from := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, -1)
	return s.rangeSummary(ctx, from, to)
}

func (s *AttendanceServiceImpl) GetYearlySummary(ctx context.Context, year int) (attendance.RangeSummaryResponse, error) {
	from := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC)
	return s.rangeSummary(ctx, from, to)
}

func (s *AttendanceServiceImpl) rangeSummary(ctx context.Context, from, to time.Time) (attendance.RangeSummaryResponse, error) {
	companyID, err := getClaimsFromContext(ctx)
	if err != nil {
		return attendance.RangeSummaryResponse{}, err
	}

	records, err := s.attendanceRepo.GetByCompanyAndRange(ctx, companyID, from, to)
	if err != nil {
		return attendance.RangeSummaryResponse{}, err
	}

	counts, percent := attendance.SummarizeRange(records, from, to)

	return attendance.RangeSummaryResponse{
		From:              from.Format("2006-01-02"),
		To:                to.Format("2006-01-02"),
		Counts:            counts,
		AttendancePercent: percent,
	}, nil
}
