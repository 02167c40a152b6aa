package postgresql

import (
	"context"
	"fmt"

	"github.com/workforce-app/workforce-backend-go/internal/domain/workrecord"
	"github.com/workforce-app/workforce-backend-go/internal/pkg/database"
)

type workRecordRepositoryImpl struct {
	db *database.DB
}

func NewWorkRecordRepository(db *database.DB) workrecord.WorkRecordRepository {
	return &workRecordRepositoryImpl{db: db}
}

// Create implements workrecord.WorkRecordRepository.
func (w *workRecordRepositoryImpl) Create(ctx context.Context, rec workrecord.WorkRecord) (workrecord.WorkRecord, error) {
	q := GetQuerier(ctx, w.db)

	query := `
		INSERT INTO work_records (
			employee_id, company_id, date, quantity, unit, rate, total_amount, notes
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, employee_id, company_id, date, quantity, unit, rate, total_amount, notes, created_at
	`

	var created workrecord.WorkRecord
	err := q.QueryRow(ctx, query,
		rec.EmployeeID, rec.CompanyID, rec.Date, rec.Quantity,
		rec.Unit, rec.Rate, rec.TotalAmount, rec.Notes,
	).Scan(
		&created.ID, &created.EmployeeID, &created.CompanyID, &created.Date,
		&created.Quantity, &created.Unit, &created.Rate, &created.TotalAmount,
		&created.Notes, &created.CreatedAt,
	)
	if err != nil {
		return workrecord.WorkRecord{}, err
	}
	return created, nil
}

// GetByEmployeeID implements workrecord.WorkRecordRepository.
func (w *workRecordRepositoryImpl) GetByEmployeeID(ctx context.Context, employeeID string, companyID string) ([]workrecord.WorkRecord, error) {
	q := GetQuerier(ctx, w.db)

	query := `
		SELECT id, employee_id, company_id, date, quantity, unit, rate, total_amount, notes, created_at
		FROM work_records
		WHERE employee_id = $1 AND company_id = $2
		ORDER BY date DESC, created_at DESC
	`

	rows, err := q.Query(ctx, query, employeeID, companyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []workrecord.WorkRecord
	for rows.Next() {
		var rec workrecord.WorkRecord
		err := rows.Scan(
			&rec.ID, &rec.EmployeeID, &rec.CompanyID, &rec.Date,
			&rec.Quantity, &rec.Unit, &rec.Rate, &rec.TotalAmount,
			&rec.Notes, &rec.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}

// Delete implements workrecord.WorkRecordRepository.
func (w *workRecordRepositoryImpl) Delete(ctx context.Context, id string, companyID string) error {
	q := GetQuerier(ctx, w.db)

	query := `DELETE FROM work_records WHERE id = $1 AND company_id = $2`

	tag, err := q.Exec(ctx, query, id, companyID)
	if err != nil {
		return fmt.Errorf("failed to delete work record %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return workrecord.ErrWorkRecordNotFound
	}

	return nil
}
