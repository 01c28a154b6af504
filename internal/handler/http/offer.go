package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/talenthq/payroll-backend-go/internal/domain/offer"
	"github.com/talenthq/payroll-backend-go/internal/handler/http/response"
)

type OfferHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Send(w http.ResponseWriter, r *http.Request)
	Accept(w http.ResponseWriter, r *http.Request)
	GenerateContract(w http.ResponseWriter, r *http.Request)
	GetContract(w http.ResponseWriter, r *http.Request)
}

type OfferHandlerImpl struct {
	offerService offer.OfferService
}

func NewOfferHandler(offerService offer.OfferService) OfferHandler {
	return &OfferHandlerImpl{offerService: offerService}
}

// Create implements OfferHandler.
func (h *OfferHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var createReq offer.CreateOfferRequest
	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.offerService.Create(r.Context(), createReq)
	if err != nil {
		slog.Error("Create offer service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Offer created", created)
}

// Get implements OfferHandler.
func (h *OfferHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	found, err := h.offerService.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		slog.Error("Get offer service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, found)
}

// List implements OfferHandler.
func (h *OfferHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	offers, err := h.offerService.List(r.Context())
	if err != nil {
		slog.Error("List offers service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, offers)
}

// Send implements OfferHandler.
func (h *OfferHandlerImpl) Send(w http.ResponseWriter, r *http.Request) {
	if err := h.offerService.Send(r.Context(), chi.URLParam(r, "id")); err != nil {
		slog.Error("Send offer service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Offer sent", nil)
}

// Accept implements OfferHandler.
func (h *OfferHandlerImpl) Accept(w http.ResponseWriter, r *http.Request) {
	if err := h.offerService.Accept(r.Context(), chi.URLParam(r, "id")); err != nil {
		slog.Error("Accept offer service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Offer accepted", nil)
}

// GenerateContract implements OfferHandler.
func (h *OfferHandlerImpl) GenerateContract(w http.ResponseWriter, r *http.Request) {
	contract, err := h.offerService.GenerateContract(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		slog.Error("GenerateContract service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Contract generated", contract)
}

// GetContract implements OfferHandler.
func (h *OfferHandlerImpl) GetContract(w http.ResponseWriter, r *http.Request) {
	contract, err := h.offerService.GetContract(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		slog.Error("GetContract service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, contract)
}
