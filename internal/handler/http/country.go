package http

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/talenthq/payroll-backend-go/internal/domain/country"
	"github.com/talenthq/payroll-backend-go/internal/handler/http/response"
)

type CountryHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
}

type CountryHandlerImpl struct {
	countries country.Registry
}

func NewCountryHandler(countries country.Registry) CountryHandler {
	return &CountryHandlerImpl{countries: countries}
}

// List implements CountryHandler.
func (h *CountryHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	response.Success(w, h.countries.FindAll())
}

// Get implements CountryHandler.
func (h *CountryHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	code := strings.ToUpper(chi.URLParam(r, "code"))

	cfg, err := h.countries.FindByCode(code)
	if err != nil {
		slog.Error("Get country config error", "code", code, "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, cfg)
}
