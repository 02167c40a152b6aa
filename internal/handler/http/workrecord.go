package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/workforce-app/workforce-backend-go/internal/domain/workrecord"
	"github.com/workforce-app/workforce-backend-go/internal/handler/http/response"
)

type WorkRecordHandler interface {
	CreateWorkRecord(w http.ResponseWriter, r *http.Request)
	ListWorkRecords(w http.ResponseWriter, r *http.Request)
	DeleteWorkRecord(w http.ResponseWriter, r *http.Request)
}

type workRecordHandlerImpl struct {
	workRecordService workrecord.WorkRecordService
}

func NewWorkRecordHandler(workRecordService workrecord.WorkRecordService) WorkRecordHandler {
	return &workRecordHandlerImpl{workRecordService: workRecordService}
}

// CreateWorkRecord implements WorkRecordHandler
func (h *workRecordHandlerImpl) CreateWorkRecord(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "id")
	if employeeID == "" {
		response.BadRequest(w, "Employee ID is required", nil)
		return
	}

	var req workrecord.CreateWorkRecordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.EmployeeID = employeeID

	result, err := h.workRecordService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Work record created", result)
}

// ListWorkRecords implements WorkRecordHandler
func (h *workRecordHandlerImpl) ListWorkRecords(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "id")
	if employeeID == "" {
		response.BadRequest(w, "Employee ID is required", nil)
		return
	}

	results, err := h.workRecordService.ListByEmployee(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

// DeleteWorkRecord implements WorkRecordHandler
func (h *workRecordHandlerImpl) DeleteWorkRecord(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "recordID")
	if id == "" {
		response.BadRequest(w, "Work record ID is required", nil)
		return
	}

	if err := h.workRecordService.Delete(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Work record deleted", nil)
}
