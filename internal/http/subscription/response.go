package subscription

import (
	"time"

	"github.com/google/uuid"

	"github.com/lsantos-dev/moneta/internal/subscription"
)

type subscriptionResponse struct {
	ID           uuid.UUID          `json:"id"`
	Name         string             `json:"name"`
	Amount       float64            `json:"amount"`
	BillingCycle subscription.Cycle `json:"billing_cycle"`
	IsActive     bool               `json:"is_active"`
	StartDate    time.Time          `json:"start_date"`
	EndDate      *time.Time         `json:"end_date,omitempty"`
	MonthlyCost  float64            `json:"monthly_cost"`
	NextRenewal  *time.Time         `json:"next_renewal,omitempty"`
	CreatedAt    time.Time          `json:"created_at"`
	UpdatedAt    time.Time          `json:"updated_at"`
}

func toResponse(sub *subscription.Subscription) subscriptionResponse {
	resp := subscriptionResponse{
		ID:           sub.ID,
		Name:         sub.Name,
		Amount:       sub.Amount,
		BillingCycle: sub.BillingCycle,
		IsActive:     sub.IsActive,
		StartDate:    sub.StartDate,
		EndDate:      sub.EndDate,
		MonthlyCost:  sub.MonthlyCost(),
		CreatedAt:    sub.CreatedAt,
		UpdatedAt:    sub.UpdatedAt,
	}

	if sub.IsActive {
		next := sub.NextRenewal(time.Now())
		resp.NextRenewal = &next
	}

	return resp
}

func toResponseList(subs []*subscription.Subscription) []subscriptionResponse {
	resp := make([]subscriptionResponse, len(subs))
	for i, sub := range subs {
		resp[i] = toResponse(sub)
	}

	return resp
}
