package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/talenthq/payroll-backend-go/internal/domain/authz"
	"github.com/talenthq/payroll-backend-go/internal/domain/company"
	"github.com/talenthq/payroll-backend-go/internal/handler/http/response"
)

type CompanyHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	GetMine(w http.ResponseWriter, r *http.Request)
	GetByID(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
}

type CompanyHandlerImpl struct {
	companyService company.CompanyService
}

func NewCompanyHandler(companyService company.CompanyService) CompanyHandler {
	return &CompanyHandlerImpl{companyService: companyService}
}

// Create implements CompanyHandler.
func (h *CompanyHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var createReq company.CreateCompanyRequest
	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.companyService.Create(r.Context(), createReq)
	if err != nil {
		slog.Error("Create company service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Company created", created)
}

// GetMine returns the authenticated actor's own company.
func (h *CompanyHandlerImpl) GetMine(w http.ResponseWriter, r *http.Request) {
	actor, err := authz.ActorFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	found, err := h.companyService.GetByID(r.Context(), actor.CompanyID)
	if err != nil {
		slog.Error("GetMine company service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, found)
}

// GetByID implements CompanyHandler.
func (h *CompanyHandlerImpl) GetByID(w http.ResponseWriter, r *http.Request) {
	found, err := h.companyService.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		slog.Error("GetByID company service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, found)
}

// List implements CompanyHandler.
func (h *CompanyHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	companies, err := h.companyService.List(r.Context())
	if err != nil {
		slog.Error("List companies service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, companies)
}
