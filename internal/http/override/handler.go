package override

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/dfreire7/repasse/internal/override"
	"github.com/dfreire7/repasse/internal/report"
)

type Handler struct {
	svc *override.Service
}

func NewHandler(svc *override.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Put("/", h.save)
	r.Get("/", h.get)
	r.Delete("/", h.delete)
}

type saveRequest struct {
	CustomerID string           `json:"customer_id"`
	AccountID  string           `json:"account_id,omitempty"`
	Cadence    string           `json:"cadence,omitempty"`
	Month      string           `json:"month,omitempty"`
	Date       string           `json:"date,omitempty"`
	Count      *int             `json:"count,omitempty"`
	Gross      *decimal.Decimal `json:"gross,omitempty"`
	Fee        *decimal.Decimal `json:"fee,omitempty"`
	Net        *decimal.Decimal `json:"net,omitempty"`
}

func (h *Handler) save(w http.ResponseWriter, r *http.Request) {
	var req saveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if req.CustomerID == "" {
		http.Error(w, "customer_id is required", http.StatusBadRequest)
		return
	}

	err := h.svc.Save(r.Context(), &override.Override{
		Key: override.Key{
			CustomerID: req.CustomerID,
			AccountID:  req.AccountID,
			Cadence:    report.Cadence(req.Cadence),
			Month:      req.Month,
			Date:       req.Date,
		},
		Count: req.Count,
		Gross: req.Gross,
		Fee:   req.Fee,
		Net:   req.Net,
	})
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type overrideResponse struct {
	CustomerID string           `json:"customer_id"`
	AccountID  string           `json:"account_id,omitempty"`
	Cadence    string           `json:"cadence,omitempty"`
	Month      string           `json:"month,omitempty"`
	Date       string           `json:"date,omitempty"`
	Count      *int             `json:"count,omitempty"`
	Gross      *decimal.Decimal `json:"gross,omitempty"`
	Fee        *decimal.Decimal `json:"fee,omitempty"`
	Net        *decimal.Decimal `json:"net,omitempty"`
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	key, ok := keyFromQuery(w, r)
	if !ok {
		return
	}

	ov, err := h.svc.Get(r.Context(), key)
	if err != nil {
		if errors.Is(err, override.ErrNotFound) {
			http.Error(w, "override not found", http.StatusNotFound)
			return
		}

		http.Error(w, err.Error(), http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(overrideResponse{
		CustomerID: ov.Key.CustomerID,
		AccountID:  ov.Key.AccountID,
		Cadence:    string(ov.Key.Cadence),
		Month:      ov.Key.Month,
		Date:       ov.Key.Date,
		Count:      ov.Count,
		Gross:      ov.Gross,
		Fee:        ov.Fee,
		Net:        ov.Net,
	}); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	key, ok := keyFromQuery(w, r)
	if !ok {
		return
	}

	if err := h.svc.Delete(r.Context(), key); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func keyFromQuery(w http.ResponseWriter, r *http.Request) (override.Key, bool) {
	q := r.URL.Query()

	if q.Get("customer_id") == "" {
		http.Error(w, "customer_id query parameter is required", http.StatusBadRequest)
		return override.Key{}, false
	}

	return override.Key{
		CustomerID: q.Get("customer_id"),
		AccountID:  q.Get("account_id"),
		Cadence:    report.Cadence(q.Get("cadence")),
		Month:      q.Get("month"),
		Date:       q.Get("date"),
	}, true
}
