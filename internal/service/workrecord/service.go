package workrecord

import (
	"context"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/workforce-app/workforce-backend-go/internal/domain/employee"
	"github.com/workforce-app/workforce-backend-go/internal/domain/item"
	"github.com/workforce-app/workforce-backend-go/internal/domain/workrecord"
)

type WorkRecordServiceImpl struct {
	workRecordRepo workrecord.WorkRecordRepository
	employeeRepo   employee.EmployeeRepository
	itemRepo       item.ItemRepository
}

func NewWorkRecordService(
	workRecordRepo workrecord.WorkRecordRepository,
	employeeRepo employee.EmployeeRepository,
	itemRepo item.ItemRepository,
) workrecord.WorkRecordService {
	return &WorkRecordServiceImpl{
		workRecordRepo: workRecordRepo,
		employeeRepo:   employeeRepo,
		itemRepo:       itemRepo,
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

func (s *WorkRecordServiceImpl) Create(ctx context.Context, req workrecord.CreateWorkRecordRequest) (workrecord.WorkRecordResponse, error) {
	if err := req.Validate(); err != nil {
		return workrecord.WorkRecordResponse{}, err
	}

	companyID, err := getClaimsFromContext(ctx)
	if err != nil {
		return workrecord.WorkRecordResponse{}, err
	}

	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID, companyID); err != nil {
		return workrecord.WorkRecordResponse{}, err
	}

	date, _ := time.Parse("2006-01-02", req.Date)
	rate := req.Rate
	unit := workrecord.Unit(req.Unit)
	itemName := ""

	// A referenced catalog item supplies rate and unit; its name is
	// denormalized into notes so the record survives the item.
	if req.ItemID != nil && *req.ItemID != "" {
		it, err := s.itemRepo.GetByID(ctx, *req.ItemID, companyID)
		if err != nil {
			return workrecord.WorkRecordResponse{}, err
		}
		rate = it.Rate
		unit = workrecord.Unit(it.Unit)
		itemName = it.Name
	} else if req.ItemName != nil {
		itemName = *req.ItemName
	}

	var notes *string
	if itemName != "" {
		n := workrecord.ItemNote(itemName, req.Notes)
		notes = &n
	} else if req.Notes != "" {
		n := req.Notes
		notes = &n
	}

	rec := workrecord.WorkRecord{
		EmployeeID: req.EmployeeID,
		CompanyID:  companyID,
		Date:       date,
		Quantity:   req.Quantity,
		Unit:       unit,
		Rate:       rate,
		// Snapshot: later rate changes never touch this row.
		TotalAmount: req.Quantity.Mul(rate).Round(2),
		Notes:       notes,
	}

	created, err := s.workRecordRepo.Create(ctx, rec)
	if err != nil {
		return workrecord.WorkRecordResponse{}, err
	}

	return workrecord.ToResponse(created), nil
}

func (s *WorkRecordServiceImpl) ListByEmployee(ctx context.Context, employeeID string) ([]workrecord.WorkRecordResponse, error) {
	companyID, err := getClaimsFromContext(ctx)
	if err != nil {
		return nil, err
	}

	records, err := s.workRecordRepo.GetByEmployeeID(ctx, employeeID, companyID)
	if err != nil {
		return nil, err
	}

	result := make([]workrecord.WorkRecordResponse, 0, len(records))
	for _, rec := range records {
		result = append(result, workrecord.ToResponse(rec))
	}

	return result, nil
}

func (s *WorkRecordServiceImpl) Delete(ctx context.Context, id string) error {
	companyID, err := getClaimsFromContext(ctx)
	if err != nil {
		return err
	}

	return s.workRecordRepo.Delete(ctx, id, companyID)
}
