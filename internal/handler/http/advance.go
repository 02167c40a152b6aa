package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/workforce-app/workforce-backend-go/internal/domain/advance"
	"github.com/workforce-app/workforce-backend-go/internal/handler/http/response"
)

type AdvanceHandler interface {
	CreateAdvance(w http.ResponseWriter, r *http.Request)
	ListAdvances(w http.ResponseWriter, r *http.Request)
	DeductPartial(w http.ResponseWriter, r *http.Request)
	MarkFullyDeducted(w http.ResponseWriter, r *http.Request)
	RunSweep(w http.ResponseWriter, r *http.Request)
}

type advanceHandlerImpl struct {
	advanceService advance.AdvanceService
}

func NewAdvanceHandler(advanceService advance.AdvanceService) AdvanceHandler {
	return &advanceHandlerImpl{advanceService: advanceService}
}

// CreateAdvance implements AdvanceHandler
func (h *advanceHandlerImpl) CreateAdvance(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "id")
	if employeeID == "" {
		response.BadRequest(w, "Employee ID is required", nil)
		return
	}

	var req advance.CreateAdvanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.EmployeeID = employeeID

	result, err := h.advanceService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Advance created", result)
}

// ListAdvances implements AdvanceHandler
func (h *advanceHandlerImpl) ListAdvances(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "id")
	if employeeID == "" {
		response.BadRequest(w, "Employee ID is required", nil)
		return
	}

	results, err := h.advanceService.ListByEmployee(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

// DeductPartial implements AdvanceHandler
func (h *advanceHandlerImpl) DeductPartial(w http.ResponseWriter, r *http.Request) {
	advanceID := chi.URLParam(r, "advanceID")
	if advanceID == "" {
		response.BadRequest(w, "Advance ID is required", nil)
		return
	}

	var req advance.DeductAdvanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.AdvanceID = advanceID

	result, err := h.advanceService.DeductPartial(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Deduction recorded", result)
}

// MarkFullyDeducted implements AdvanceHandler
func (h *advanceHandlerImpl) MarkFullyDeducted(w http.ResponseWriter, r *http.Request) {
	advanceID := chi.URLParam(r, "advanceID")
	if advanceID == "" {
		response.BadRequest(w, "Advance ID is required", nil)
		return
	}

	result, err := h.advanceService.MarkFullyDeducted(r.Context(), advanceID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Advance fully deducted", result)
}

// RunSweep implements AdvanceHandler - manual trigger for the monthly
// carry-forward sweep of the calling company.
func (h *advanceHandlerImpl) RunSweep(w http.ResponseWriter, r *http.Request) {
	result, err := h.advanceService.RunCarryForwardSweep(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Carry-forward sweep completed", result)
}
