package report

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/lsantos-dev/moneta/internal/auth"
	"github.com/lsantos-dev/moneta/internal/pagination"
	"github.com/lsantos-dev/moneta/internal/report"
)

type Handler struct {
	svc *report.Service
}

func NewHandler(svc *report.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.list)
	r.Post("/", h.create)
	r.Get("/{id}", h.get)
	r.Patch("/{id}", h.update)
	r.Delete("/{id}", h.delete)
	r.Get("/{id}/transactions", h.listTransactions)
	r.Post("/{id}/transactions", h.createTransaction)
	r.Get("/{id}/export", h.exportCSV)
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	caller := auth.CurrentUser(r.Context())
	page := pagination.ParsePage(r.URL.Query().Get("page"))

	result, err := h.svc.List(r.Context(), caller.ID, page)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	resp := pagination.Result[reportResponse]{
		Items:      toResponseList(result.Items),
		TotalCount: result.TotalCount,
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type createReportRequest struct {
	Title string `json:"title"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req createReportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if req.Title == "" {
		http.Error(w, "title is required", http.StatusBadRequest)
		return
	}

	caller := auth.CurrentUser(r.Context())

	rep, err := h.svc.Create(r.Context(), caller.ID, report.CreateParams{Title: req.Title})
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(toResponse(rep)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	caller := auth.CurrentUser(r.Context())

	rep, err := h.svc.Get(r.Context(), caller.ID, id)
	if err != nil {
		if errors.Is(err, report.ErrNotFound) {
			http.Error(w, "Report not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toDetailResponse(rep)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type updateReportRequest struct {
	Title string `json:"title"`
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req updateReportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if req.Title == "" {
		http.Error(w, "title is required", http.StatusBadRequest)
		return
	}

	caller := auth.CurrentUser(r.Context())

	rep, err := h.svc.Rename(r.Context(), caller.ID, id, req.Title)
	if err != nil {
		if errors.Is(err, report.ErrNotFound) {
			http.Error(w, "Report not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(rep)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	caller := auth.CurrentUser(r.Context())

	if err := h.svc.Delete(r.Context(), caller.ID, id); err != nil {
		if errors.Is(err, report.ErrNotFound) {
			http.Error(w, "Report not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// listTransactions returns the report's full transaction set, newest
// first. Deliberately unpaginated, unlike every other list.
func (h *Handler) listTransactions(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	caller := auth.CurrentUser(r.Context())

	txs, err := h.svc.ReportTransactions(r.Context(), caller.ID, id)
	if err != nil {
		if errors.Is(err, report.ErrNotFound) {
			http.Error(w, "Report not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toTransactionResponseList(txs)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type createTransactionRequest struct {
	Kind        report.Kind `json:"kind"`
	Amount      float64     `json:"amount"`
	Description string      `json:"description"`
	Category    string      `json:"category"`
	Date        time.Time   `json:"date"`
}

func (h *Handler) createTransaction(w http.ResponseWriter, r *http.Request) {
	reportID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req createTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if !req.Kind.Valid() {
		http.Error(w, "kind must be income or expense", http.StatusBadRequest)
		return
	}

	if req.Amount <= 0 {
		http.Error(w, "amount must be positive", http.StatusBadRequest)
		return
	}

	caller := auth.CurrentUser(r.Context())

	tx, err := h.svc.AddTransaction(r.Context(), caller.ID, reportID, report.TransactionParams{
		Kind:        req.Kind,
		Amount:      req.Amount,
		Description: req.Description,
		Category:    req.Category,
		Date:        req.Date,
	})
	if err != nil {
		if errors.Is(err, report.ErrNotFound) {
			http.Error(w, "Report not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(toTransactionResponse(tx)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

// exportCSV streams the report's transactions as a CSV attachment in the
// same column layout the importer accepts.
func (h *Handler) exportCSV(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	caller := auth.CurrentUser(r.Context())

	txs, err := h.svc.ReportTransactions(r.Context(), caller.ID, id)
	if err != nil {
		if errors.Is(err, report.ErrNotFound) {
			http.Error(w, "Report not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", "report-"+id.String()+".csv"))

	cw := csv.NewWriter(w)

	_ = cw.Write([]string{"Date", "Type", "Amount", "Description", "Category"})

	for _, tx := range txs {
		_ = cw.Write([]string{
			tx.Date.Format(time.DateOnly),
			string(tx.Kind),
			strconv.FormatFloat(tx.Amount, 'f', -1, 64),
			tx.Description,
			tx.Category,
		})
	}

	cw.Flush()

	if err := cw.Error(); err != nil {
		slog.Error("failed to write csv export", "error", err)
	}
}
