package postgresql

import (
	"context"
	"fmt"

	"github.com/workforce-app/workforce-backend-go/internal/domain/activity"
	"github.com/workforce-app/workforce-backend-go/internal/pkg/database"
)

type activityRepositoryImpl struct {
	db *database.DB
}

func NewActivityRepository(db *database.DB) activity.Repository {
	return &activityRepositoryImpl{db: db}
}

// CreateBatch implements activity.Repository. Entries arrive from the
// background sink in batches; a single multi-row insert keeps the
// write cheap.
func (r *activityRepositoryImpl) CreateBatch(ctx context.Context, entries []activity.Entry) error {
	if len(entries) == 0 {
		return nil
	}

	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO activity_log (
			id, company_id, user_id, action, resource_type, resource_id,
			before_state, after_state, created_at
		) VALUES `
	args := make([]interface{}, 0, len(entries)*9)
	for i, e := range entries {
		if i > 0 {
			query += ", "
		}
		base := i * 9
		query += fmt.Sprintf("($%d, $%d, $%d, $%d, $%d, $%d, $%d, $%d, $%d)",
			base+1, base+2, base+3, base+4, base+5, base+6, base+7, base+8, base+9)
		args = append(args,
			e.ID, e.CompanyID, e.UserID, e.Action, e.ResourceType, e.ResourceID,
			[]byte(e.Before), []byte(e.After), e.CreatedAt,
		)
	}

	if _, err := q.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to insert activity batch: %w", err)
	}
	return nil
}

// ListByCompanyID implements activity.Repository.
func (r *activityRepositoryImpl) ListByCompanyID(ctx context.Context, companyID string, limit int) ([]activity.Entry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, company_id, user_id, action, resource_type, resource_id,
			before_state, after_state, created_at
		FROM activity_log
		WHERE company_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`

	rows, err := q.Query(ctx, query, companyID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []activity.Entry
	for rows.Next() {
		var e activity.Entry
		var before, after []byte
		err := rows.Scan(
			&e.ID, &e.CompanyID, &e.UserID, &e.Action, &e.ResourceType,
			&e.ResourceID, &before, &after, &e.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		e.Before = before
		e.After = after
		entries = append(entries, e)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}
