package transfer

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/dfreire7/repasse/internal/transfer"
)

type Handler struct {
	svc *transfer.Service
}

func NewHandler(svc *transfer.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.list)
	r.Post("/", h.create)
	r.Get("/{id}", h.get)
	r.Patch("/{id}", h.update)
	r.Delete("/{id}", h.delete)
}

type transferResponse struct {
	ID         uuid.UUID       `json:"id"`
	CustomerID string          `json:"customer_id"`
	Period     string          `json:"period"`
	Gross      decimal.Decimal `json:"gross"`
	Fee        decimal.Decimal `json:"fee"`
	Net        decimal.Decimal `json:"net"`
	Status     transfer.Status `json:"status"`
	SentAt     *time.Time      `json:"sent_at,omitempty"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  *time.Time      `json:"updated_at,omitempty"`
}

func toResponse(t *transfer.Transfer) transferResponse {
	return transferResponse{
		ID:         t.ID,
		CustomerID: t.CustomerID,
		Period:     t.Period,
		Gross:      t.Gross,
		Fee:        t.Fee,
		Net:        t.Net,
		Status:     t.Status,
		SentAt:     t.SentAt,
		CreatedAt:  t.CreatedAt,
		UpdatedAt:  t.UpdatedAt,
	}
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	// customer_id is optional: without it the whole ledger is returned.
	customerID := r.URL.Query().Get("customer_id")

	transfers, err := h.svc.List(r.Context(), customerID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	resp := make([]transferResponse, 0, len(transfers))
	for _, t := range transfers {
		resp = append(resp, toResponse(t))
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	t, err := h.svc.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, transfer.ErrNotFound) {
			http.Error(w, "transfer not found", http.StatusNotFound)
			return
		}

		http.Error(w, err.Error(), http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(t)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type createRequest struct {
	CustomerID string          `json:"customer_id"`
	Period     string          `json:"period"`
	Gross      decimal.Decimal `json:"gross"`
	Fee        decimal.Decimal `json:"fee"`
	Net        decimal.Decimal `json:"net"`
	Status     transfer.Status `json:"status,omitempty"`
	SentAt     *time.Time      `json:"sent_at,omitempty"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if req.CustomerID == "" || req.Period == "" {
		http.Error(w, "customer_id and period are required", http.StatusBadRequest)
		return
	}

	t, err := h.svc.Create(r.Context(), transfer.CreateParams{
		CustomerID: req.CustomerID,
		Period:     req.Period,
		Gross:      req.Gross,
		Fee:        req.Fee,
		Net:        req.Net,
		Status:     req.Status,
		SentAt:     req.SentAt,
	})
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(toResponse(t)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type updateRequest struct {
	Period *string          `json:"period,omitempty"`
	Gross  *decimal.Decimal `json:"gross,omitempty"`
	Fee    *decimal.Decimal `json:"fee,omitempty"`
	Net    *decimal.Decimal `json:"net,omitempty"`
	Status *transfer.Status `json:"status,omitempty"`
	SentAt *time.Time       `json:"sent_at,omitempty"`
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req updateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	err = h.svc.Update(r.Context(), id, transfer.UpdateParams{
		Period: req.Period,
		Gross:  req.Gross,
		Fee:    req.Fee,
		Net:    req.Net,
		Status: req.Status,
		SentAt: req.SentAt,
	})
	if err != nil {
		if errors.Is(err, transfer.ErrNotFound) {
			http.Error(w, "transfer not found", http.StatusNotFound)
			return
		}

		http.Error(w, err.Error(), http.StatusInternalServerError)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
