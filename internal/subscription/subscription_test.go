package subscription_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/lsantos-dev/moneta/internal/subscription"
)

func TestMonthlyCost(t *testing.T) {
	tests := []struct {
		name string
		sub  subscription.Subscription
		want float64
	}{
		{
			name: "YearlyDividesByTwelve",
			sub:  subscription.Subscription{Amount: 120, BillingCycle: subscription.CycleYearly},
			want: 10,
		},
		{
			name: "MonthlyPassesThrough",
			sub:  subscription.Subscription{Amount: 15.99, BillingCycle: subscription.CycleMonthly},
			want: 15.99,
		},
		{
			// No rounding at this layer.
			name: "YearlyNonTerminating",
			sub:  subscription.Subscription{Amount: 100, BillingCycle: subscription.CycleYearly},
			want: 100.0 / 12,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.sub.MonthlyCost())
		})
	}
}

func TestNextRenewal(t *testing.T) {
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		sub  subscription.Subscription
		want time.Time
	}{
		{
			name: "MonthlyStepsPastNow",
			sub: subscription.Subscription{
				BillingCycle: subscription.CycleMonthly,
				StartDate:    time.Date(2026, 8, 10, 0, 0, 0, 0, time.UTC),
			},
			want: time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "MonthlyFarInThePast",
			sub: subscription.Subscription{
				BillingCycle: subscription.CycleMonthly,
				StartDate:    time.Date(2020, 1, 15, 0, 0, 0, 0, time.UTC),
			},
			want: time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "YearlySteps",
			sub: subscription.Subscription{
				BillingCycle: subscription.CycleYearly,
				StartDate:    time.Date(2023, 3, 1, 0, 0, 0, 0, time.UTC),
			},
			want: time.Date(2027, 3, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "FutureStartIsFirstCharge",
			sub: subscription.Subscription{
				BillingCycle: subscription.CycleMonthly,
				StartDate:    time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC),
			},
			want: time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.sub.NextRenewal(now))
		})
	}
}

func TestCycle_Valid(t *testing.T) {
	assert.True(t, subscription.CycleMonthly.Valid())
	assert.True(t, subscription.CycleYearly.Valid())
	assert.False(t, subscription.Cycle("weekly").Valid())
}
