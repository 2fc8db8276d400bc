package importcsv

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/lsantos-dev/moneta/internal/auth"
	"github.com/lsantos-dev/moneta/internal/importer"
	"github.com/lsantos-dev/moneta/internal/report"
)

type Handler struct {
	importSvc *importer.Service
	reportSvc *report.Service
}

func NewHandler(importSvc *importer.Service, reportSvc *report.Service) *Handler {
	return &Handler{
		importSvc: importSvc,
		reportSvc: reportSvc,
	}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/{id}/transactions/import", h.importCSV)
}

type transactionResponse struct {
	ID          uuid.UUID   `json:"id"`
	ReportID    uuid.UUID   `json:"report_id"`
	Kind        report.Kind `json:"kind"`
	Amount      float64     `json:"amount"`
	Description string      `json:"description"`
	Category    string      `json:"category,omitempty"`
	Date        time.Time   `json:"date"`
	CreatedAt   time.Time   `json:"created_at"`
}

type importSuccessResponse struct {
	Imported     int                   `json:"imported"`
	Transactions []transactionResponse `json:"transactions"`
}

func (h *Handler) importCSV(w http.ResponseWriter, r *http.Request) {
	reportID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	if err := r.ParseMultipartForm(10 << 20); err != nil {
		http.Error(w, "failed to parse form: "+err.Error(), http.StatusBadRequest)
		return
	}

	format := importer.Format(r.FormValue("format"))
	if format == "" {
		format = importer.FormatLedger
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "file field is required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	params, err := h.importSvc.Import(format, file)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	caller := auth.CurrentUser(r.Context())

	txs, err := h.reportSvc.ImportTransactions(r.Context(), caller.ID, reportID, params)
	if err != nil {
		if errors.Is(err, report.ErrNotFound) {
			http.Error(w, "Report not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	resp := importSuccessResponse{
		Imported:     len(txs),
		Transactions: make([]transactionResponse, len(txs)),
	}

	for i, tx := range txs {
		resp.Transactions[i] = transactionResponse{
			ID:          tx.ID,
			ReportID:    tx.ReportID,
			Kind:        tx.Kind,
			Amount:      tx.Amount,
			Description: tx.Description,
			Category:    tx.Category,
			Date:        tx.Date,
			CreatedAt:   tx.CreatedAt,
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
