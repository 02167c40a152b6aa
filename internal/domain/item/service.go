package item

import (
	"context"
	"io"
)

type ItemService interface {
	Upsert(ctx context.Context, req UpsertItemRequest) (ItemResponse, error)
	BulkUpsert(ctx context.Context, reqs []UpsertItemRequest) (BulkUpsertResponse, error)
	Get(ctx context.Context, id string) (ItemResponse, error)
	List(ctx context.Context, params SearchParams, includeArchived bool) ([]ItemResponse, error)
	Delete(ctx context.Context, id string) error
	ImportCSV(ctx context.Context, r io.Reader) (BulkUpsertResponse, error)
	ExportCSV(ctx context.Context, w io.Writer) error
}
