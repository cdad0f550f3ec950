package http

import (
	"encoding/json"
	"net/http"

	"github.com/autotrack-hq/payroll-backend-go/internal/domain/salary"
	"github.com/autotrack-hq/payroll-backend-go/internal/handler/http/response"
	salaryService "github.com/autotrack-hq/payroll-backend-go/internal/service/salary"
	"github.com/go-chi/chi/v5"
)

type SalaryHandler interface {
	GetCurrent(w http.ResponseWriter, r *http.Request)
	Upsert(w http.ResponseWriter, r *http.Request)
}

type salaryHandlerImpl struct {
	salaryService salaryService.SalaryService
}

func NewSalaryHandler(service salaryService.SalaryService) SalaryHandler {
	return &salaryHandlerImpl{salaryService: service}
}

func (h *salaryHandlerImpl) GetCurrent(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeId")
	if employeeID == "" {
		response.BadRequest(w, "Employee ID is required", nil)
		return
	}

	result, err := h.salaryService.GetCurrent(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *salaryHandlerImpl) Upsert(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeId")
	if employeeID == "" {
		response.BadRequest(w, "Employee ID is required", nil)
		return
	}

	var req salary.UpsertSalaryStructureRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.salaryService.Upsert(r.Context(), employeeID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Salary structure saved", result)
}
