package postgresql

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/workforce-app/workforce-backend-go/internal/domain/employee"
	"github.com/workforce-app/workforce-backend-go/internal/pkg/database"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

const employeeColumns = `id, company_id, full_name, email, phone_number, position, department,
		hire_date, salary_type, salary_config, last_advance_processed_month,
		created_at, updated_at, deleted_at`

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var emp employee.Employee
	var configRaw []byte
	err := row.Scan(
		&emp.ID, &emp.CompanyID, &emp.FullName, &emp.Email, &emp.PhoneNumber,
		&emp.Position, &emp.Department, &emp.HireDate, &emp.SalaryType,
		&configRaw, &emp.LastAdvanceProcessedMonth,
		&emp.CreatedAt, &emp.UpdatedAt, &emp.DeletedAt,
	)
	if err != nil {
		return employee.Employee{}, err
	}
	if len(configRaw) > 0 {
		if err := json.Unmarshal(configRaw, &emp.SalaryConfig); err != nil {
			return employee.Employee{}, fmt.Errorf("decode salary_config for employee %s: %w", emp.ID, err)
		}
	}
	return emp, nil
}

// Create implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) Create(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	configRaw, err := json.Marshal(newEmployee.SalaryConfig)
	if err != nil {
		return employee.Employee{}, fmt.Errorf("encode salary_config: %w", err)
	}

	query := `
		INSERT INTO employees (
			company_id, full_name, email, phone_number, position, department,
			hire_date, salary_type, salary_config
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING ` + employeeColumns

	return scanEmployee(q.QueryRow(ctx, query,
		newEmployee.CompanyID, newEmployee.FullName, newEmployee.Email,
		newEmployee.PhoneNumber, newEmployee.Position, newEmployee.Department,
		newEmployee.HireDate, newEmployee.SalaryType, configRaw,
	))
}

// GetByID implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) GetByID(ctx context.Context, id string, companyID string) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		SELECT ` + employeeColumns + `
		FROM employees
		WHERE id = $1 AND company_id = $2 AND deleted_at IS NULL
	`

	emp, err := scanEmployee(q.QueryRow(ctx, query, id, companyID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, err
	}
	return emp, nil
}

// GetByCompanyID implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) GetByCompanyID(ctx context.Context, companyID string) ([]employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		SELECT ` + employeeColumns + `
		FROM employees
		WHERE company_id = $1 AND deleted_at IS NULL
		ORDER BY full_name
	`

	rows, err := q.Query(ctx, query, companyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		employees = append(employees, emp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return employees, nil
}

// Update implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) Update(ctx context.Context, companyID string, req employee.UpdateEmployeeRequest) error {
	q := GetQuerier(ctx, e.db)

	updates := make(map[string]interface{})

	if req.FullName != nil && *req.FullName != "" {
		updates["full_name"] = *req.FullName
	}
	if req.Email != nil {
		updates["email"] = *req.Email
	}
	if req.PhoneNumber != nil {
		updates["phone_number"] = *req.PhoneNumber
	}
	if req.Position != nil {
		updates["position"] = *req.Position
	}
	if req.Department != nil {
		updates["department"] = *req.Department
	}
	if req.HireDate != nil && *req.HireDate != "" {
		parsedHireDate, _ := time.Parse("2006-01-02", *req.HireDate)
		updates["hire_date"] = parsedHireDate
	}
	if req.SalaryType != nil && req.SalaryConfig != nil {
		configRaw, err := json.Marshal(*req.SalaryConfig)
		if err != nil {
			return fmt.Errorf("encode salary_config: %w", err)
		}
		updates["salary_type"] = *req.SalaryType
		updates["salary_config"] = configRaw
	}

	if len(updates) == 0 {
		return nil
	}
	updates["updated_at"] = time.Now()

	setClauses := make([]string, 0, len(updates))
	args := make([]interface{}, 0, len(updates)+2)
	i := 1
	for col, val := range updates {
		setClauses = append(setClauses, fmt.Sprintf("%s = $%d", col, i))
		args = append(args, val)
		i++
	}
	args = append(args, req.ID, companyID)

	query := fmt.Sprintf(`
		UPDATE employees
		SET %s
		WHERE id = $%d AND company_id = $%d AND deleted_at IS NULL
	`, strings.Join(setClauses, ", "), i, i+1)

	tag, err := q.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update employee %s: %w", req.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}

	return nil
}

// Delete implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) Delete(ctx context.Context, id string, companyID string) error {
	q := GetQuerier(ctx, e.db)

	query := `
		UPDATE employees
		SET deleted_at = NOW(), updated_at = NOW()
		WHERE id = $1 AND company_id = $2 AND deleted_at IS NULL
	`

	tag, err := q.Exec(ctx, query, id, companyID)
	if err != nil {
		return fmt.Errorf("failed to delete employee %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}

	return nil
}

// CountByCompanyID implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) CountByCompanyID(ctx context.Context, companyID string) (int, error) {
	q := GetQuerier(ctx, e.db)

	query := `SELECT COUNT(*) FROM employees WHERE company_id = $1 AND deleted_at IS NULL`

	var count int
	if err := q.QueryRow(ctx, query, companyID).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

// ClaimSweepMonth implements employee.EmployeeRepository.
//
// The WHERE clause repeats the month check so that of two concurrent
// claims for the same month exactly one sees RowsAffected() == 1.
func (e *employeeRepositoryImpl) ClaimSweepMonth(ctx context.Context, id string, companyID string, monthKey string) (bool, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		UPDATE employees
		SET last_advance_processed_month = $1, updated_at = NOW()
		WHERE id = $2 AND company_id = $3 AND deleted_at IS NULL
			AND (last_advance_processed_month IS NULL OR last_advance_processed_month <> $1)
	`

	tag, err := q.Exec(ctx, query, monthKey, id, companyID)
	if err != nil {
		return false, fmt.Errorf("failed to claim sweep month for employee %s: %w", id, err)
	}
	return tag.RowsAffected() == 1, nil
}
