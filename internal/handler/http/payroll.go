package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/workforce-app/workforce-backend-go/internal/domain/payroll"
	"github.com/workforce-app/workforce-backend-go/internal/handler/http/response"
)

type PayrollHandler interface {
	GetPayslip(w http.ResponseWriter, r *http.Request)
	GetSummary(w http.ResponseWriter, r *http.Request)
}

type payrollHandlerImpl struct {
	payrollService payroll.PayrollService
}

func NewPayrollHandler(payrollService payroll.PayrollService) PayrollHandler {
	return &payrollHandlerImpl{payrollService: payrollService}
}

// GetPayslip implements PayrollHandler
func (h *payrollHandlerImpl) GetPayslip(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "id")
	if employeeID == "" {
		response.BadRequest(w, "Employee ID is required", nil)
		return
	}

	result, err := h.payrollService.GetPayslip(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetSummary implements PayrollHandler
func (h *payrollHandlerImpl) GetSummary(w http.ResponseWriter, r *http.Request) {
	result, err := h.payrollService.GetSummary(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
