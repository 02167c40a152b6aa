package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/workforce-app/workforce-backend-go/internal/domain/item"
	"github.com/workforce-app/workforce-backend-go/internal/handler/http/response"
)

type ItemHandler interface {
	UpsertItem(w http.ResponseWriter, r *http.Request)
	BulkUpsertItems(w http.ResponseWriter, r *http.Request)
	GetItem(w http.ResponseWriter, r *http.Request)
	ListItems(w http.ResponseWriter, r *http.Request)
	DeleteItem(w http.ResponseWriter, r *http.Request)
	ImportCSV(w http.ResponseWriter, r *http.Request)
	ExportCSV(w http.ResponseWriter, r *http.Request)
}

type itemHandlerImpl struct {
	itemService item.ItemService
}

func NewItemHandler(itemService item.ItemService) ItemHandler {
	return &itemHandlerImpl{itemService: itemService}
}

// UpsertItem implements ItemHandler
func (h *itemHandlerImpl) UpsertItem(w http.ResponseWriter, r *http.Request) {
	var req item.UpsertItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.itemService.Upsert(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Item saved", result)
}

// BulkUpsertItems implements ItemHandler
func (h *itemHandlerImpl) BulkUpsertItems(w http.ResponseWriter, r *http.Request) {
	var reqs []item.UpsertItemRequest
	if err := json.NewDecoder(r.Body).Decode(&reqs); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.itemService.BulkUpsert(r.Context(), reqs)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Bulk upsert completed", result)
}

// GetItem implements ItemHandler
func (h *itemHandlerImpl) GetItem(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Item ID is required", nil)
		return
	}

	result, err := h.itemService.Get(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ListItems implements ItemHandler
func (h *itemHandlerImpl) ListItems(w http.ResponseWriter, r *http.Request) {
	params := item.SearchParams{
		Query: r.URL.Query().Get("q"),
		Unit:  r.URL.Query().Get("unit"),
		Sort:  r.URL.Query().Get("sort"),
	}
	includeArchived := r.URL.Query().Get("include_archived") == "true"

	results, err := h.itemService.List(r.Context(), params, includeArchived)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

// DeleteItem implements ItemHandler
func (h *itemHandlerImpl) DeleteItem(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Item ID is required", nil)
		return
	}

	if err := h.itemService.Delete(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Item deleted", nil)
}

// ImportCSV implements ItemHandler. The body is the raw CSV file.
func (h *itemHandlerImpl) ImportCSV(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	result, err := h.itemService.ImportCSV(r.Context(), r.Body)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Import completed", result)
}

// ExportCSV implements ItemHandler
func (h *itemHandlerImpl) ExportCSV(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="items.csv"`)

	if err := h.itemService.ExportCSV(r.Context(), w); err != nil {
		// Headers are already written; all we can do is log via the
		// request logger and stop.
		return
	}
}
