package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/workforce-app/workforce-backend-go/internal/domain/attendance"
	"github.com/workforce-app/workforce-backend-go/internal/pkg/database"
)

type attendanceRepositoryImpl struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepositoryImpl{db: db}
}

// Upsert implements attendance.AttendanceRepository. The unique
// constraint on (employee_id, date) makes re-marking a day replace
// the stored status instead of adding a second row.
func (a *attendanceRepositoryImpl) Upsert(ctx context.Context, rec attendance.AttendanceRecord) (attendance.AttendanceRecord, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		INSERT INTO attendance_records (employee_id, company_id, date, status, notes)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (employee_id, date)
		DO UPDATE SET status = EXCLUDED.status, notes = EXCLUDED.notes, updated_at = NOW()
		RETURNING id, employee_id, company_id, date, status, notes, created_at, updated_at
	`

	var saved attendance.AttendanceRecord
	err := q.QueryRow(ctx, query,
		rec.EmployeeID, rec.CompanyID, rec.Date, rec.Status, rec.Notes,
	).Scan(
		&saved.ID, &saved.EmployeeID, &saved.CompanyID, &saved.Date,
		&saved.Status, &saved.Notes, &saved.CreatedAt, &saved.UpdatedAt,
	)
	if err != nil {
		return attendance.AttendanceRecord{}, err
	}
	return saved, nil
}

// GetByEmployeeID implements attendance.AttendanceRepository.
func (a *attendanceRepositoryImpl) GetByEmployeeID(ctx context.Context, employeeID string, companyID string) ([]attendance.AttendanceRecord, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT id, employee_id, company_id, date, status, notes, created_at, updated_at
		FROM attendance_records
		WHERE employee_id = $1 AND company_id = $2
		ORDER BY date DESC
	`

	rows, err := q.Query(ctx, query, employeeID, companyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectAttendance(rows)
}

// GetByCompanyAndRange implements attendance.AttendanceRepository.
// Both bounds are inclusive.
func (a *attendanceRepositoryImpl) GetByCompanyAndRange(ctx context.Context, companyID string, from, to time.Time) ([]attendance.AttendanceRecord, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT id, employee_id, company_id, date, status, notes, created_at, updated_at
		FROM attendance_records
		WHERE company_id = $1 AND date >= $2 AND date <= $3
		ORDER BY date, employee_id
	`

	rows, err := q.Query(ctx, query, companyID, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectAttendance(rows)
}

// Delete implements attendance.AttendanceRepository.
func (a *attendanceRepositoryImpl) Delete(ctx context.Context, id string, companyID string) error {
	q := GetQuerier(ctx, a.db)

	query := `DELETE FROM attendance_records WHERE id = $1 AND company_id = $2`

	tag, err := q.Exec(ctx, query, id, companyID)
	if err != nil {
		return fmt.Errorf("failed to delete attendance record %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrRecordNotFound
	}

	return nil
}

func collectAttendance(rows pgx.Rows) ([]attendance.AttendanceRecord, error) {
	var records []attendance.AttendanceRecord
	for rows.Next() {
		var rec attendance.AttendanceRecord
		err := rows.Scan(
			&rec.ID, &rec.EmployeeID, &rec.CompanyID, &rec.Date,
			&rec.Status, &rec.Notes, &rec.CreatedAt, &rec.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}
