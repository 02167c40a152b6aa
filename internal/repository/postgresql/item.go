package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/workforce-app/workforce-backend-go/internal/domain/item"
	"github.com/workforce-app/workforce-backend-go/internal/pkg/database"
)

type itemRepositoryImpl struct {
	db *database.DB
}

func NewItemRepository(db *database.DB) item.ItemRepository {
	return &itemRepositoryImpl{db: db}
}

// Upsert implements item.ItemRepository. The id is derived from
// name+unit upstream, so re-importing the same row lands on the same
// primary key and replaces it.
func (i *itemRepositoryImpl) Upsert(ctx context.Context, it item.Item) (item.Item, error) {
	q := GetQuerier(ctx, i.db)

	query := `
		INSERT INTO items (id, company_id, name, unit, rate, tags, archived)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (company_id, id)
		DO UPDATE SET name = EXCLUDED.name, unit = EXCLUDED.unit, rate = EXCLUDED.rate,
			tags = EXCLUDED.tags, archived = EXCLUDED.archived, updated_at = NOW()
		RETURNING id, company_id, name, unit, rate, tags, archived, created_at, updated_at
	`

	var saved item.Item
	err := q.QueryRow(ctx, query,
		it.ID, it.CompanyID, it.Name, it.Unit, it.Rate, it.Tags, it.Archived,
	).Scan(
		&saved.ID, &saved.CompanyID, &saved.Name, &saved.Unit, &saved.Rate,
		&saved.Tags, &saved.Archived, &saved.CreatedAt, &saved.UpdatedAt,
	)
	if err != nil {
		return item.Item{}, err
	}
	return saved, nil
}

// GetByID implements item.ItemRepository.
func (i *itemRepositoryImpl) GetByID(ctx context.Context, id string, companyID string) (item.Item, error) {
	q := GetQuerier(ctx, i.db)

	query := `
		SELECT id, company_id, name, unit, rate, tags, archived, created_at, updated_at
		FROM items
		WHERE id = $1 AND company_id = $2
	`

	var it item.Item
	err := q.QueryRow(ctx, query, id, companyID).Scan(
		&it.ID, &it.CompanyID, &it.Name, &it.Unit, &it.Rate,
		&it.Tags, &it.Archived, &it.CreatedAt, &it.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return item.Item{}, item.ErrItemNotFound
		}
		return item.Item{}, err
	}
	return it, nil
}

// GetByCompanyID implements item.ItemRepository.
func (i *itemRepositoryImpl) GetByCompanyID(ctx context.Context, companyID string, includeArchived bool) ([]item.Item, error) {
	q := GetQuerier(ctx, i.db)

	query := `
		SELECT id, company_id, name, unit, rate, tags, archived, created_at, updated_at
		FROM items
		WHERE company_id = $1 AND (archived = FALSE OR $2)
		ORDER BY updated_at DESC
	`

	rows, err := q.Query(ctx, query, companyID, includeArchived)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []item.Item
	for rows.Next() {
		var it item.Item
		err := rows.Scan(
			&it.ID, &it.CompanyID, &it.Name, &it.Unit, &it.Rate,
			&it.Tags, &it.Archived, &it.CreatedAt, &it.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		items = append(items, it)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}

// Delete implements item.ItemRepository.
func (i *itemRepositoryImpl) Delete(ctx context.Context, id string, companyID string) error {
	q := GetQuerier(ctx, i.db)

	query := `DELETE FROM items WHERE id = $1 AND company_id = $2`

	tag, err := q.Exec(ctx, query, id, companyID)
	if err != nil {
		return fmt.Errorf("failed to delete item %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return item.ErrItemNotFound
	}

	return nil
}
