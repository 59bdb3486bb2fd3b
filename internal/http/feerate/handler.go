package feerate

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/dfreire7/repasse/internal/feerate"
)

type Handler struct {
	svc *feerate.Service
}

func NewHandler(svc *feerate.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/{customerID}", h.get)
	r.Put("/{customerID}", h.set)
	r.Delete("/{customerID}", h.clear)
}

type rateResponse struct {
	CustomerID string           `json:"customer_id"`
	Rate       *decimal.Decimal `json:"rate"`
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	customerID := chi.URLParam(r, "customerID")

	rate, ok, err := h.svc.Rate(r.Context(), customerID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	resp := rateResponse{CustomerID: customerID}
	if ok {
		resp.Rate = &rate
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type setRequest struct {
	Rate decimal.Decimal `json:"rate"`
}

func (h *Handler) set(w http.ResponseWriter, r *http.Request) {
	var req setRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.svc.Set(r.Context(), chi.URLParam(r, "customerID"), req.Rate); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) clear(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Clear(r.Context(), chi.URLParam(r, "customerID")); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
