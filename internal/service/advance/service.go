package advance

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/workforce-app/workforce-backend-go/internal/domain/activity"
	"github.com/workforce-app/workforce-backend-go/internal/domain/advance"
	"github.com/workforce-app/workforce-backend-go/internal/domain/employee"
	"github.com/workforce-app/workforce-backend-go/internal/pkg/database"
)

type AdvanceServiceImpl struct {
	db           *database.DB
	advanceRepo  advance.AdvanceRepository
	employeeRepo employee.EmployeeRepository
	activitySvc  activity.Service
}

func NewAdvanceService(
	db *database.DB,
	advanceRepo advance.AdvanceRepository,
	employeeRepo employee.EmployeeRepository,
	activitySvc activity.Service,
) advance.AdvanceService {
	return &AdvanceServiceImpl{
		db:           db,
		advanceRepo:  advanceRepo,
		employeeRepo: employeeRepo,
		activitySvc:  activitySvc,
	}
}

// Helper to get company_id and user_id from JWT context
func getClaimsFromContext(ctx context.Context) (companyID, userID string, err error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	companyID, ok := claims["company_id"].(string)
	if !ok || companyID == "" {
		return "", "", fmt.Errorf("company_id claim is missing or invalid")
	}

	userID, _ = claims["user_id"].(string)

	return companyID, userID, nil
}

func (s *AdvanceServiceImpl) Create(ctx context.Context, req advance.CreateAdvanceRequest) (advance.AdvanceResponse, error) {
	if err := req.Validate(); err != nil {
		return advance.AdvanceResponse{}, err
	}

	companyID, userID, err := getClaimsFromContext(ctx)
	if err != nil {
		return advance.AdvanceResponse{}, err
	}

	// Employee must exist in this company before money is granted.
	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID, companyID); err != nil {
		return advance.AdvanceResponse{}, err
	}

	adv := advance.New(req.EmployeeID, companyID, req.Amount, req.CarryForward, req.Notes, time.Now())

	created, err := s.advanceRepo.Create(ctx, adv)
	if err != nil {
		return advance.AdvanceResponse{}, err
	}

	s.recordActivity(companyID, userID, "advance.create", created.ID, nil, created)

	return advance.ToResponse(created), nil
}

func (s *AdvanceServiceImpl) ListByEmployee(ctx context.Context, employeeID string) ([]advance.AdvanceResponse, error) {
	companyID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return nil, err
	}

	advances, err := s.advanceRepo.GetByEmployeeID(ctx, employeeID, companyID)
	if err != nil {
		return nil, err
	}

	result := make([]advance.AdvanceResponse, 0, len(advances))
	for _, adv := range advances {
		result = append(result, advance.ToResponse(adv))
	}

	return result, nil
}

func (s *AdvanceServiceImpl) DeductPartial(ctx context.Context, req advance.DeductAdvanceRequest) (advance.AdvanceResponse, error) {
	if err := req.Validate(); err != nil {
		return advance.AdvanceResponse{}, err
	}

	companyID, userID, err := getClaimsFromContext(ctx)
	if err != nil {
		return advance.AdvanceResponse{}, err
	}

	adv, err := s.advanceRepo.GetByID(ctx, req.AdvanceID, companyID)
	if err != nil {
		return advance.AdvanceResponse{}, err
	}
	before := adv

	// Validation failures leave the ledger untouched; nothing is
	// persisted below this point on error.
	if err := adv.DeductPartial(req.Amount, time.Now()); err != nil {
		return advance.AdvanceResponse{}, err
	}

	updated, err := s.advanceRepo.Update(ctx, adv)
	if err != nil {
		return advance.AdvanceResponse{}, err
	}

	s.recordActivity(companyID, userID, "advance.deduct_partial", updated.ID, before, updated)

	return advance.ToResponse(updated), nil
}

func (s *AdvanceServiceImpl) MarkFullyDeducted(ctx context.Context, advanceID string) (advance.AdvanceResponse, error) {
	companyID, userID, err := getClaimsFromContext(ctx)
	if err != nil {
		return advance.AdvanceResponse{}, err
	}

	adv, err := s.advanceRepo.GetByID(ctx, advanceID, companyID)
	if err != nil {
		return advance.AdvanceResponse{}, err
	}
	before := adv

	if err := adv.MarkFullyDeducted(time.Now()); err != nil {
		return advance.AdvanceResponse{}, err
	}

	updated, err := s.advanceRepo.Update(ctx, adv)
	if err != nil {
		return advance.AdvanceResponse{}, err
	}

	s.recordActivity(companyID, userID, "advance.mark_fully_deducted", updated.ID, before, updated)

	return advance.ToResponse(updated), nil
}

func (s *AdvanceServiceImpl) RunCarryForwardSweep(ctx context.Context) (advance.SweepResult, error) {
	companyID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return advance.SweepResult{}, err
	}

	return s.SweepCompany(ctx, companyID)
}

// SweepCompany applies the monthly carry-forward to every employee of
// one company. Idempotence is enforced per employee: the month gate
// (LastAdvanceProcessedMonth) is claimed with a single conditional
// UPDATE, so concurrent or repeated triggers within one calendar
// month find the gate closed and skip.
func (s *AdvanceServiceImpl) SweepCompany(ctx context.Context, companyID string) (advance.SweepResult, error) {
	now := time.Now()
	monthKey := advance.MonthKey(now)
	result := advance.SweepResult{MonthKey: monthKey}

	employees, err := s.employeeRepo.GetByCompanyID(ctx, companyID)
	if err != nil {
		return result, fmt.Errorf("failed to list employees for sweep: %w", err)
	}

	for _, emp := range employees {
		if emp.LastAdvanceProcessedMonth != nil && *emp.LastAdvanceProcessedMonth == monthKey {
			result.EmployeesSkipped++
			continue
		}

		claimed, err := s.employeeRepo.ClaimSweepMonth(ctx, emp.ID, companyID, monthKey)
		if err != nil {
			return result, fmt.Errorf("failed to claim sweep month for employee %s: %w", emp.ID, err)
		}
		if !claimed {
			// Another trigger won the race for this month.
			result.EmployeesSkipped++
			continue
		}

		carried, err := s.sweepEmployee(ctx, emp.ID, companyID, now)
		if err != nil {
			return result, err
		}

		result.EmployeesProcessed++
		result.AdvancesCarried += carried
	}

	return result, nil
}

func (s *AdvanceServiceImpl) sweepEmployee(ctx context.Context, employeeID, companyID string, now time.Time) (int, error) {
	advances, err := s.advanceRepo.GetByEmployeeID(ctx, employeeID, companyID)
	if err != nil {
		return 0, fmt.Errorf("failed to load advances for employee %s: %w", employeeID, err)
	}

	carried := 0
	for _, adv := range advances {
		if !advance.EligibleForCarryForward(adv, now) {
			continue
		}
		adv.ApplyCarryForward(now)
		if _, err := s.advanceRepo.Update(ctx, adv); err != nil {
			return carried, fmt.Errorf("failed to carry forward advance %s: %w", adv.ID, err)
		}
		carried++
	}

	return carried, nil
}

func (s *AdvanceServiceImpl) recordActivity(companyID, userID, action, resourceID string, before, after interface{}) {
	if s.activitySvc == nil {
		return
	}
	entry := activity.Entry{
		CompanyID:    companyID,
		UserID:       userID,
		Action:       action,
		ResourceType: "advance",
		ResourceID:   &resourceID,
	}
	if before != nil {
		entry.Before, _ = json.Marshal(before)
	}
	if after != nil {
		entry.After, _ = json.Marshal(after)
	}
	s.activitySvc.Record(entry)
}
