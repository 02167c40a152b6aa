package advance

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/workforce-app/workforce-backend-go/internal/domain/advance"
	"github.com/workforce-app/workforce-backend-go/internal/domain/employee"
)

// fakeEmployeeRepo keeps the stamped sweep months separate from the
// entities it returns, like a repository whose reads can be stale
// relative to a concurrent trigger's claim.
type fakeEmployeeRepo struct {
	employees  []employee.Employee
	claims     map[string]string
	claimCalls int
}

func newFakeEmployeeRepo(employees ...employee.Employee) *fakeEmployeeRepo {
	return &fakeEmployeeRepo{employees: employees, claims: map[string]string{}}
}

func (r *fakeEmployeeRepo) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	return emp, nil
}

func (r *fakeEmployeeRepo) GetByID(ctx context.Context, id string, companyID string) (employee.Employee, error) {
	for _, emp := range r.employees {
		if emp.ID == id && emp.CompanyID == companyID {
			return emp, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (r *fakeEmployeeRepo) GetByCompanyID(ctx context.Context, companyID string) ([]employee.Employee, error) {
	var result []employee.Employee
	for _, emp := range r.employees {
		if emp.CompanyID == companyID {
			result = append(result, emp)
		}
	}
	return result, nil
}

func (r *fakeEmployeeRepo) Update(ctx context.Context, companyID string, req employee.UpdateEmployeeRequest) error {
	return nil
}

func (r *fakeEmployeeRepo) Delete(ctx context.Context, id string, companyID string) error {
	return nil
}

func (r *fakeEmployeeRepo) CountByCompanyID(ctx context.Context, companyID string) (int, error) {
	return len(r.employees), nil
}

func (r *fakeEmployeeRepo) ClaimSweepMonth(ctx context.Context, id string, companyID string, monthKey string) (bool, error) {
	r.claimCalls++
	if r.claims[id] == monthKey {
		return false, nil
	}
	r.claims[id] = monthKey
	return true, nil
}

type fakeAdvanceRepo struct {
	advances map[string]advance.Advance
}

func newFakeAdvanceRepo(advances ...advance.Advance) *fakeAdvanceRepo {
	r := &fakeAdvanceRepo{advances: map[string]advance.Advance{}}
	for _, adv := range advances {
		r.advances[adv.ID] = adv
	}
	return r
}

func (r *fakeAdvanceRepo) Create(ctx context.Context, adv advance.Advance) (advance.Advance, error) {
	r.advances[adv.ID] = adv
	return adv, nil
}

func (r *fakeAdvanceRepo) GetByID(ctx context.Context, id string, companyID string) (advance.Advance, error) {
	adv, ok := r.advances[id]
	if !ok || adv.CompanyID != companyID {
		return advance.Advance{}, advance.ErrAdvanceNotFound
	}
	return adv, nil
}

func (r *fakeAdvanceRepo) GetByEmployeeID(ctx context.Context, employeeID string, companyID string) ([]advance.Advance, error) {
	var result []advance.Advance
	for _, adv := range r.advances {
		if adv.EmployeeID == employeeID && adv.CompanyID == companyID {
			result = append(result, adv)
		}
	}
	return result, nil
}

func (r *fakeAdvanceRepo) CountByEmployeeID(ctx context.Context, employeeID string, companyID string) (int, error) {
	advances, _ := r.GetByEmployeeID(ctx, employeeID, companyID)
	return len(advances), nil
}

func (r *fakeAdvanceRepo) Update(ctx context.Context, adv advance.Advance) (advance.Advance, error) {
	if _, ok := r.advances[adv.ID]; !ok {
		return advance.Advance{}, advance.ErrAdvanceNotFound
	}
	r.advances[adv.ID] = adv
	return adv, nil
}

func TestSweepCompany(t *testing.T) {
	const companyID = "company-1"
	ctx := context.Background()

	lastMonth := time.Now().AddDate(0, -1, 0)

	employeeRepo := newFakeEmployeeRepo(employee.Employee{
		ID:        "emp-1",
		CompanyID: companyID,
		FullName:  "Asha Verma",
	})
	adv := advance.New("emp-1", companyID, decimal.NewFromInt(5000), true, nil, lastMonth)
	adv.ID = "adv-1"
	advanceRepo := newFakeAdvanceRepo(adv)

	svc := &AdvanceServiceImpl{
		advanceRepo:  advanceRepo,
		employeeRepo: employeeRepo,
	}

	t.Run("first run carries flagged advances", func(t *testing.T) {
		result, err := svc.SweepCompany(ctx, companyID)
		require.NoError(t, err)

		assert.Equal(t, advance.MonthKey(time.Now()), result.MonthKey)
		assert.Equal(t, 1, result.EmployeesProcessed)
		assert.Equal(t, 0, result.EmployeesSkipped)
		assert.Equal(t, 1, result.AdvancesCarried)

		swept, err := advanceRepo.GetByID(ctx, "adv-1", companyID)
		require.NoError(t, err)
		assert.Equal(t, advance.StatusCarriedForward, swept.Status)
		monthStart := time.Date(time.Now().Year(), time.Now().Month(), 1, 0, 0, 0, 0, time.Local)
		assert.False(t, swept.Date.Before(monthStart), "sweep must reset the advance date into the current month")
	})

	// The fake returns entities without the stamped month, so the
	// second run reaches ClaimSweepMonth and must lose the claim:
	// the path a concurrent or redundant trigger takes.
	t.Run("second run in same month loses the claim and skips", func(t *testing.T) {
		before, err := advanceRepo.GetByID(ctx, "adv-1", companyID)
		require.NoError(t, err)
		claimsBefore := employeeRepo.claimCalls

		result, err := svc.SweepCompany(ctx, companyID)
		require.NoError(t, err)

		assert.Equal(t, 0, result.EmployeesProcessed)
		assert.Equal(t, 1, result.EmployeesSkipped)
		assert.Equal(t, 0, result.AdvancesCarried)
		assert.Equal(t, claimsBefore+1, employeeRepo.claimCalls)

		after, err := advanceRepo.GetByID(ctx, "adv-1", companyID)
		require.NoError(t, err)
		assert.Equal(t, before, after)
	})
}

func TestSweepCompanySkipsStampedEmployeesWithoutClaiming(t *testing.T) {
	const companyID = "company-1"
	ctx := context.Background()

	monthKey := advance.MonthKey(time.Now())
	employeeRepo := newFakeEmployeeRepo(employee.Employee{
		ID:                        "emp-1",
		CompanyID:                 companyID,
		FullName:                  "Asha Verma",
		LastAdvanceProcessedMonth: &monthKey,
	})

	svc := &AdvanceServiceImpl{
		advanceRepo:  newFakeAdvanceRepo(),
		employeeRepo: employeeRepo,
	}

	result, err := svc.SweepCompany(ctx, companyID)
	require.NoError(t, err)

	assert.Equal(t, 0, result.EmployeesProcessed)
	assert.Equal(t, 1, result.EmployeesSkipped)
	assert.Equal(t, 0, employeeRepo.claimCalls, "already-stamped employees must not hit the claim")
}

func TestSweepCompanyLeavesIneligibleAdvances(t *testing.T) {
	const companyID = "company-1"
	ctx := context.Background()

	employeeRepo := newFakeEmployeeRepo(employee.Employee{
		ID:        "emp-1",
		CompanyID: companyID,
		FullName:  "Asha Verma",
	})

	// Dated this month and not flagged: nothing to carry.
	current := advance.New("emp-1", companyID, decimal.NewFromInt(2000), true, nil, time.Now())
	current.ID = "adv-current"
	unflagged := advance.New("emp-1", companyID, decimal.NewFromInt(3000), false, nil, time.Now().AddDate(0, -2, 0))
	unflagged.ID = "adv-unflagged"
	advanceRepo := newFakeAdvanceRepo(current, unflagged)

	svc := &AdvanceServiceImpl{
		advanceRepo:  advanceRepo,
		employeeRepo: employeeRepo,
	}

	result, err := svc.SweepCompany(ctx, companyID)
	require.NoError(t, err)

	assert.Equal(t, 1, result.EmployeesProcessed)
	assert.Equal(t, 0, result.AdvancesCarried)

	for _, id := range []string{"adv-current", "adv-unflagged"} {
		kept, err := advanceRepo.GetByID(ctx, id, companyID)
		require.NoError(t, err)
		assert.Equal(t, advance.StatusApproved, kept.Status)
	}
}
