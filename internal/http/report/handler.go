package report

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dfreire7/repasse/internal/insight"
	"github.com/dfreire7/repasse/internal/report"
	"github.com/dfreire7/repasse/internal/tabular"
)

type Handler struct {
	reports  *report.Service
	insights *insight.Service
	maxSize  int64
}

func NewHandler(reports *report.Service, insights *insight.Service, maxSize int64) *Handler {
	return &Handler{reports: reports, insights: insights, maxSize: maxSize}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.upload)
	r.Get("/metrics", h.metrics)
	r.Get("/periods", h.periods)
	r.Delete("/", h.delete)
}

type uploadResponse struct {
	ID         string `json:"id"`
	CustomerID string `json:"customer_id"`
	AccountID  string `json:"account_id,omitempty"`
	Cadence    string `json:"cadence"`
	Period     string `json:"period"`
	Rows       int    `json:"rows"`
}

func (h *Handler) upload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(h.maxSize); err != nil {
		http.Error(w, "failed to parse form: "+err.Error(), http.StatusBadRequest)
		return
	}

	cadence := report.Cadence(r.FormValue("cadence"))
	if cadence != report.CadenceMonthly && cadence != report.CadenceDaily {
		http.Error(w, "cadence must be monthly or daily", http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "file field is required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	table, err := tabular.Decode(file, header.Filename)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	rows := make([]report.Row, 0, len(table.Rows))
	for _, row := range table.Rows {
		rows = append(rows, report.Row(row))
	}

	doc, err := h.reports.Upload(r.Context(), report.UploadParams{
		CustomerID: r.FormValue("customer_id"),
		AccountID:  r.FormValue("account_id"),
		Cadence:    cadence,
		Month:      r.FormValue("month"),
		Date:       r.FormValue("date"),
		Headers:    table.Headers,
		Rows:       rows,
	})
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(uploadResponse{
		ID:         doc.ID.String(),
		CustomerID: doc.CustomerID,
		AccountID:  doc.AccountID,
		Cadence:    string(doc.Cadence),
		Period:     doc.Period(),
		Rows:       len(doc.Rows),
	}); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) metrics(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	result, err := h.insights.Metrics(r.Context(), insight.Query{
		CustomerID: q.Get("customer_id"),
		AccountID:  q.Get("account_id"),
		Cadence:    report.Cadence(q.Get("cadence")),
		Month:      q.Get("month"),
		Date:       q.Get("date"),
	})
	if err != nil {
		if errors.Is(err, report.ErrNotFound) {
			http.Error(w, "no document for the requested period", http.StatusNotFound)
			return
		}

		http.Error(w, err.Error(), http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(result); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) periods(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	periods, err := h.reports.Periods(r.Context(),
		q.Get("customer_id"), q.Get("account_id"), report.Cadence(q.Get("cadence")))
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	if periods == nil {
		periods = []string{}
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(periods); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	customerID := q.Get("customer_id")
	if customerID == "" {
		http.Error(w, "customer_id query parameter is required", http.StatusBadRequest)
		return
	}

	if err := h.reports.Delete(r.Context(), customerID, q.Get("account_id")); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
