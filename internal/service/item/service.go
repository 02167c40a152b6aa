package item

import (
	"context"
	"fmt"
	"io"

	"github.com/go-chi/jwtauth/v5"
	"github.com/workforce-app/workforce-backend-go/internal/domain/item"
	"github.com/workforce-app/workforce-backend-go/internal/pkg/validator"
)

type ItemServiceImpl struct {
	itemRepo item.ItemRepository
}

func NewItemService(itemRepo item.ItemRepository) item.ItemService {
	return &ItemServiceImpl{itemRepo: itemRepo}
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

func (s *ItemServiceImpl) Upsert(ctx context.Context, req item.UpsertItemRequest) (item.ItemResponse, error) {
	if err := req.Validate(); err != nil {
		return item.ItemResponse{}, err
	}

	companyID, err := getClaimsFromContext(ctx)
	if err != nil {
		return item.ItemResponse{}, err
	}

	unit := item.NormalizeUnit(req.Unit)
	id := req.ID
	if id == "" {
		id = item.MakeItemID(req.Name, unit)
	}

	archived := false
	if req.Archived != nil {
		archived = *req.Archived
	}

	it := item.Item{
		ID:        id,
		CompanyID: companyID,
		Name:      req.Name,
		Unit:      unit,
		Rate:      req.Rate,
		Tags:      req.Tags,
		Archived:  archived,
	}

	saved, err := s.itemRepo.Upsert(ctx, it)
	if err != nil {
		return item.ItemResponse{}, err
	}

	return item.ToResponse(saved), nil
}

// BulkUpsert applies rows independently: a failed row is reported in
// its result slot and does not roll back the others.
func (s *ItemServiceImpl) BulkUpsert(ctx context.Context, reqs []item.UpsertItemRequest) (item.BulkUpsertResponse, error) {
	if _, err := getClaimsFromContext(ctx); err != nil {
		return item.BulkUpsertResponse{}, err
	}

	response := item.BulkUpsertResponse{Results: make([]item.BulkRowResult, 0, len(reqs))}
	for i, req := range reqs {
		result := item.BulkRowResult{Row: i + 1}

		saved, err := s.Upsert(ctx, req)
		if err != nil {
			result.Error = err.Error()
			response.Failed++
		} else {
			result.ID = saved.ID
			result.OK = true
			response.Created++
		}
		response.Results = append(response.Results, result)
	}

	return response, nil
}

func (s *ItemServiceImpl) Get(ctx context.Context, id string) (item.ItemResponse, error) {
	companyID, err := getClaimsFromContext(ctx)
	if err != nil {
		return item.ItemResponse{}, err
	}

	it, err := s.itemRepo.GetByID(ctx, id, companyID)
	if err != nil {
		return item.ItemResponse{}, err
	}

	return item.ToResponse(it), nil
}

func (s *ItemServiceImpl) List(ctx context.Context, params item.SearchParams, includeArchived bool) ([]item.ItemResponse, error) {
	companyID, err := getClaimsFromContext(ctx)
	if err != nil {
		return nil, err
	}

	items, err := s.itemRepo.GetByCompanyID(ctx, companyID, includeArchived)
	if err != nil {
		return nil, err
	}

	filtered := item.Search(items, params)

	result := make([]item.ItemResponse, 0, len(filtered))
	for _, it := range filtered {
		result = append(result, item.ToResponse(it))
	}

	return result, nil
}

func (s *ItemServiceImpl) Delete(ctx context.Context, id string) error {
	companyID, err := getClaimsFromContext(ctx)
	if err != nil {
		return err
	}

	return s.itemRepo.Delete(ctx, id, companyID)
}

func (s *ItemServiceImpl) ImportCSV(ctx context.Context, r io.Reader) (item.BulkUpsertResponse, error) {
	if _, err := getClaimsFromContext(ctx); err != nil {
		return item.BulkUpsertResponse{}, err
	}

	rows, err := item.ParseCSV(r)
	if err != nil {
		return item.BulkUpsertResponse{}, validator.ValidationErrors{
			{Field: "file", Message: err.Error()},
		}
	}

	response := item.BulkUpsertResponse{Results: make([]item.BulkRowResult, 0, len(rows))}
	for _, row := range rows {
		result := item.BulkRowResult{Row: row.Line}

		if row.Err != "" {
			result.Error = row.Err
			response.Failed++
			response.Results = append(response.Results, result)
			continue
		}

		saved, err := s.Upsert(ctx, item.UpsertItemRequest{
			Name: row.Name,
			Unit: row.Unit,
			Rate: row.Rate,
			Tags: row.Tags,
		})
		if err != nil {
			result.Error = err.Error()
			response.Failed++
		} else {
			result.ID = saved.ID
			result.OK = true
			response.Created++
		}
		response.Results = append(response.Results, result)
	}

	return response, nil
}

func (s *ItemServiceImpl) ExportCSV(ctx context.Context, w io.Writer) error {
	companyID, err := getClaimsFromContext(ctx)
	if err != nil {
		return err
	}

	items, err := s.itemRepo.GetByCompanyID(ctx, companyID, true)
	if err != nil {
		return err
	}

	return item.WriteCSV(w, items)
}
