package postgresql

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/workforce-app/workforce-backend-go/internal/domain/advance"
	"github.com/workforce-app/workforce-backend-go/internal/pkg/database"
)

type advanceRepositoryImpl struct {
	db *database.DB
}

func NewAdvanceRepository(db *database.DB) advance.AdvanceRepository {
	return &advanceRepositoryImpl{db: db}
}

const advanceColumns = `id, employee_id, company_id, original_amount, remaining_amount,
		status, carry_forward, date, notes, deductions, created_at, updated_at`

func scanAdvance(row pgx.Row) (advance.Advance, error) {
	var adv advance.Advance
	var deductionsRaw []byte
	err := row.Scan(
		&adv.ID, &adv.EmployeeID, &adv.CompanyID, &adv.OriginalAmount,
		&adv.RemainingAmount, &adv.Status, &adv.CarryForward, &adv.Date,
		&adv.Notes, &deductionsRaw, &adv.CreatedAt, &adv.UpdatedAt,
	)
	if err != nil {
		return advance.Advance{}, err
	}
	if len(deductionsRaw) > 0 {
		if err := json.Unmarshal(deductionsRaw, &adv.Deductions); err != nil {
			return advance.Advance{}, fmt.Errorf("decode deductions for advance %s: %w", adv.ID, err)
		}
	}
	return adv, nil
}

// Create implements advance.AdvanceRepository.
func (a *advanceRepositoryImpl) Create(ctx context.Context, newAdvance advance.Advance) (advance.Advance, error) {
	q := GetQuerier(ctx, a.db)

	deductionsRaw, err := json.Marshal(newAdvance.Deductions)
	if err != nil {
		return advance.Advance{}, fmt.Errorf("encode deductions: %w", err)
	}

	query := `
		INSERT INTO advances (
			employee_id, company_id, original_amount, remaining_amount,
			status, carry_forward, date, notes, deductions
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING ` + advanceColumns

	return scanAdvance(q.QueryRow(ctx, query,
		newAdvance.EmployeeID, newAdvance.CompanyID, newAdvance.OriginalAmount,
		newAdvance.RemainingAmount, newAdvance.Status, newAdvance.CarryForward,
		newAdvance.Date, newAdvance.Notes, deductionsRaw,
	))
}

// GetByID implements advance.AdvanceRepository.
func (a *advanceRepositoryImpl) GetByID(ctx context.Context, id string, companyID string) (advance.Advance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT ` + advanceColumns + `
		FROM advances
		WHERE id = $1 AND company_id = $2
	`

	adv, err := scanAdvance(q.QueryRow(ctx, query, id, companyID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return advance.Advance{}, advance.ErrAdvanceNotFound
		}
		return advance.Advance{}, err
	}
	return adv, nil
}

// GetByEmployeeID implements advance.AdvanceRepository.
func (a *advanceRepositoryImpl) GetByEmployeeID(ctx context.Context, employeeID string, companyID string) ([]advance.Advance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT ` + advanceColumns + `
		FROM advances
		WHERE employee_id = $1 AND company_id = $2
		ORDER BY date DESC, created_at DESC
	`

	rows, err := q.Query(ctx, query, employeeID, companyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var advances []advance.Advance
	for rows.Next() {
		adv, err := scanAdvance(rows)
		if err != nil {
			return nil, err
		}
		advances = append(advances, adv)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return advances, nil
}

// CountByEmployeeID implements advance.AdvanceRepository.
func (a *advanceRepositoryImpl) CountByEmployeeID(ctx context.Context, employeeID string, companyID string) (int, error) {
	q := GetQuerier(ctx, a.db)

	query := `SELECT COUNT(*) FROM advances WHERE employee_id = $1 AND company_id = $2`

	var count int
	if err := q.QueryRow(ctx, query, employeeID, companyID).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

// Update implements advance.AdvanceRepository. OriginalAmount is
// deliberately absent from the SET list; it never changes after
// creation.
func (a *advanceRepositoryImpl) Update(ctx context.Context, adv advance.Advance) (advance.Advance, error) {
	q := GetQuerier(ctx, a.db)

	deductionsRaw, err := json.Marshal(adv.Deductions)
	if err != nil {
		return advance.Advance{}, fmt.Errorf("encode deductions: %w", err)
	}

	query := `
		UPDATE advances
		SET remaining_amount = $1, status = $2, carry_forward = $3, date = $4,
			notes = $5, deductions = $6, updated_at = NOW()
		WHERE id = $7 AND company_id = $8
		RETURNING ` + advanceColumns

	updated, err := scanAdvance(q.QueryRow(ctx, query,
		adv.RemainingAmount, adv.Status, adv.CarryForward, adv.Date,
		adv.Notes, deductionsRaw, adv.ID, adv.CompanyID,
	))
	if err != nil {
		if err == pgx.ErrNoRows {
			return advance.Advance{}, advance.ErrAdvanceNotFound
		}
		return advance.Advance{}, err
	}
	return updated, nil
}
