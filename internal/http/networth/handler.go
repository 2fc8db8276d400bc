package networth

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/lsantos-dev/moneta/internal/auth"
	"github.com/lsantos-dev/moneta/internal/networth"
	"github.com/lsantos-dev/moneta/internal/pagination"
)

type Handler struct {
	svc *networth.Service
}

func NewHandler(svc *networth.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.list)
	r.Post("/", h.create)
	r.Get("/{id}", h.get)
	r.Delete("/{id}", h.delete)
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	caller := auth.CurrentUser(r.Context())
	page := pagination.ParsePage(r.URL.Query().Get("page"))

	result, err := h.svc.List(r.Context(), caller.ID, page)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	resp := pagination.Result[snapshotResponse]{
		Items:      toResponseList(result.Items),
		TotalCount: result.TotalCount,
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type entryRequest struct {
	Kind     networth.Kind `json:"kind"`
	Label    string        `json:"label"`
	Amount   float64       `json:"amount"`
	Category string        `json:"category"`
}

type createSnapshotRequest struct {
	Title   string         `json:"title"`
	Entries []entryRequest `json:"entries"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req createSnapshotRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if req.Title == "" {
		http.Error(w, "title is required", http.StatusBadRequest)
		return
	}

	if len(req.Entries) == 0 {
		http.Error(w, "at least one entry is required", http.StatusBadRequest)
		return
	}

	params := networth.CreateParams{
		Title:   req.Title,
		Entries: make([]networth.EntryParams, len(req.Entries)),
	}

	for i, e := range req.Entries {
		if !e.Kind.Valid() {
			http.Error(w, "entry kind must be asset or liability", http.StatusBadRequest)
			return
		}

		if e.Amount <= 0 {
			http.Error(w, "entry amount must be positive", http.StatusBadRequest)
			return
		}

		if e.Label == "" {
			http.Error(w, "entry label is required", http.StatusBadRequest)
			return
		}

		params.Entries[i] = networth.EntryParams{
			Kind:     e.Kind,
			Label:    e.Label,
			Amount:   e.Amount,
			Category: e.Category,
		}
	}

	caller := auth.CurrentUser(r.Context())

	snap, err := h.svc.Create(r.Context(), caller.ID, params)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(toResponse(snap)); err != nil {
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

	snap, err := h.svc.Get(r.Context(), caller.ID, id)
	if err != nil {
		if errors.Is(err, networth.ErrNotFound) {
			http.Error(w, "Snapshot not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(snap)); err != nil {
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
		if errors.Is(err, networth.ErrNotFound) {
			http.Error(w, "Snapshot not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}
