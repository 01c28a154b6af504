package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/talenthq/payroll-backend-go/internal/domain/payroll"
	"github.com/talenthq/payroll-backend-go/internal/handler/http/response"
)

type PayrollHandler interface {
	Run(w http.ResponseWriter, r *http.Request)
	Preview(w http.ResponseWriter, r *http.Request)
	Results(w http.ResponseWriter, r *http.Request)
	Ledger(w http.ResponseWriter, r *http.Request)
}

type PayrollHandlerImpl struct {
	payrollService payroll.PayrollService
}

func NewPayrollHandler(payrollService payroll.PayrollService) PayrollHandler {
	return &PayrollHandlerImpl{payrollService: payrollService}
}

// Run implements PayrollHandler.
func (h *PayrollHandlerImpl) Run(w http.ResponseWriter, r *http.Request) {
	var periodReq payroll.PeriodRequest
	if err := json.NewDecoder(r.Body).Decode(&periodReq); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.payrollService.Run(r.Context(), periodReq)
	if err != nil {
		slog.Error("Run payroll service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Payroll completed", result)
}

// Preview implements PayrollHandler.
func (h *PayrollHandlerImpl) Preview(w http.ResponseWriter, r *http.Request) {
	periodReq, err := periodFromQuery(r)
	if err != nil {
		response.BadRequest(w, "month and year query parameters are required", nil)
		return
	}

	result, err := h.payrollService.Preview(r.Context(), periodReq)
	if err != nil {
		slog.Error("Preview payroll service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Results implements PayrollHandler.
func (h *PayrollHandlerImpl) Results(w http.ResponseWriter, r *http.Request) {
	periodReq, err := periodFromQuery(r)
	if err != nil {
		response.BadRequest(w, "month and year query parameters are required", nil)
		return
	}

	result, err := h.payrollService.Results(r.Context(), periodReq)
	if err != nil {
		slog.Error("Results payroll service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Ledger implements PayrollHandler.
func (h *PayrollHandlerImpl) Ledger(w http.ResponseWriter, r *http.Request) {
	summaries, err := h.payrollService.Ledger(r.Context())
	if err != nil {
		slog.Error("Ledger payroll service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, summaries)
}

func periodFromQuery(r *http.Request) (payroll.PeriodRequest, error) {
	month, err := strconv.Atoi(r.URL.Query().Get("month"))
	if err != nil {
		return payroll.PeriodRequest{}, err
	}
	year, err := strconv.Atoi(r.URL.Query().Get("year"))
	if err != nil {
		return payroll.PeriodRequest{}, err
	}
	return payroll.PeriodRequest{Month: month, Year: year}, nil
}
