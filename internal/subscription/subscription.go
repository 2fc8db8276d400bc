package subscription

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("subscription not found")

// Cycle is the recurrence period of a subscription charge.
type Cycle string

const (
	CycleMonthly Cycle = "monthly"
	CycleYearly  Cycle = "yearly"
)

func (c Cycle) Valid() bool {
	return c == CycleMonthly || c == CycleYearly
}

// Subscription is a recurring charge owned directly by a user.
type Subscription struct {
	ID           uuid.UUID
	OwnerID      uuid.UUID
	Name         string
	Amount       float64
	BillingCycle Cycle
	IsActive     bool
	StartDate    time.Time
	EndDate      *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// MonthlyCost normalizes the charge to a monthly figure. Yearly amounts
// divide by twelve with no rounding; presentation layers round for display.
func (s *Subscription) MonthlyCost() float64 {
	if s.BillingCycle == CycleYearly {
		return s.Amount / 12
	}

	return s.Amount
}

// NextRenewal steps from the start date one cycle at a time until the
// result is strictly after now.
func (s *Subscription) NextRenewal(now time.Time) time.Time {
	next := s.StartDate
	for !next.After(now) {
		if s.BillingCycle == CycleYearly {
			next = next.AddDate(1, 0, 0)
		} else {
			next = next.AddDate(0, 1, 0)
		}
	}

	return next
}
