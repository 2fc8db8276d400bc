package subscription

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/lsantos-dev/moneta/internal/auth"
	"github.com/lsantos-dev/moneta/internal/pagination"
	"github.com/lsantos-dev/moneta/internal/subscription"
)

type Handler struct {
	svc *subscription.Service
}

func NewHandler(svc *subscription.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.list)
	r.Post("/", h.create)
	r.Patch("/{id}", h.update)
	r.Post("/{id}/cancel", h.cancel)
	r.Delete("/{id}", h.delete)
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	caller := auth.CurrentUser(r.Context())
	page := pagination.ParsePage(r.URL.Query().Get("page"))

	filter := subscription.ListFilter{}

	// An absent active param means no filter at all, which is not the
	// same as active=false.
	if s := r.URL.Query().Get("active"); s != "" {
		active, err := strconv.ParseBool(s)
		if err != nil {
			http.Error(w, "active must be a boolean", http.StatusBadRequest)
			return
		}

		filter.Active = &active
	}

	result, err := h.svc.List(r.Context(), caller.ID, page, filter)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	resp := pagination.Result[subscriptionResponse]{
		Items:      toResponseList(result.Items),
		TotalCount: result.TotalCount,
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type createSubscriptionRequest struct {
	Name         string             `json:"name"`
	Amount       float64            `json:"amount"`
	BillingCycle subscription.Cycle `json:"billing_cycle"`
	StartDate    time.Time          `json:"start_date"`
	EndDate      *time.Time         `json:"end_date,omitempty"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req createSubscriptionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if req.Name == "" {
		http.Error(w, "name is required", http.StatusBadRequest)
		return
	}

	if req.Amount <= 0 {
		http.Error(w, "amount must be positive", http.StatusBadRequest)
		return
	}

	if !req.BillingCycle.Valid() {
		http.Error(w, "billing_cycle must be monthly or yearly", http.StatusBadRequest)
		return
	}

	caller := auth.CurrentUser(r.Context())

	sub, err := h.svc.Create(r.Context(), caller.ID, subscription.CreateParams{
		Name:         req.Name,
		Amount:       req.Amount,
		BillingCycle: req.BillingCycle,
		StartDate:    req.StartDate,
		EndDate:      req.EndDate,
	})
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(toResponse(sub)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type updateSubscriptionRequest struct {
	Name         *string             `json:"name,omitempty"`
	Amount       *float64            `json:"amount,omitempty"`
	BillingCycle *subscription.Cycle `json:"billing_cycle,omitempty"`
	IsActive     *bool               `json:"is_active,omitempty"`
	StartDate    *time.Time          `json:"start_date,omitempty"`
	EndDate      *time.Time          `json:"end_date,omitempty"`
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req updateSubscriptionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if req.Amount != nil && *req.Amount <= 0 {
		http.Error(w, "amount must be positive", http.StatusBadRequest)
		return
	}

	if req.BillingCycle != nil && !req.BillingCycle.Valid() {
		http.Error(w, "billing_cycle must be monthly or yearly", http.StatusBadRequest)
		return
	}

	caller := auth.CurrentUser(r.Context())

	sub, err := h.svc.Get(r.Context(), caller.ID, id)
	if err != nil {
		if errors.Is(err, subscription.ErrNotFound) {
			http.Error(w, "Subscription not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	if req.Name != nil {
		sub.Name = *req.Name
	}

	if req.Amount != nil {
		sub.Amount = *req.Amount
	}

	if req.BillingCycle != nil {
		sub.BillingCycle = *req.BillingCycle
	}

	if req.IsActive != nil {
		sub.IsActive = *req.IsActive
	}

	if req.StartDate != nil {
		sub.StartDate = *req.StartDate
	}

	if req.EndDate != nil {
		sub.EndDate = req.EndDate
	}

	if err := h.svc.Update(r.Context(), sub); err != nil {
		if errors.Is(err, subscription.ErrNotFound) {
			http.Error(w, "Subscription not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(sub)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

// cancel is the restricted update: it flips is_active off and may change
// nothing else.
func (h *Handler) cancel(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	caller := auth.CurrentUser(r.Context())

	if err := h.svc.Cancel(r.Context(), caller.ID, id); err != nil {
		if errors.Is(err, subscription.ErrNotFound) {
			http.Error(w, "Subscription not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

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

	caller := auth.CurrentUser(r.Context())

	if err := h.svc.Delete(r.Context(), caller.ID, id); err != nil {
		if errors.Is(err, subscription.ErrNotFound) {
			http.Error(w, "Subscription not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}
