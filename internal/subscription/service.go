package subscription

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/lsantos-dev/moneta/internal/pagination"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=subscription
type Repository interface {
	Create(ctx context.Context, sub *Subscription) error
	Get(ctx context.Context, id, ownerID uuid.UUID) (*Subscription, error)
	List(ctx context.Context, ownerID uuid.UUID, filter ListFilter, limit, offset int) ([]*Subscription, int, error)
	Update(ctx context.Context, sub *Subscription) error
	Cancel(ctx context.Context, id, ownerID uuid.UUID) error
	Delete(ctx context.Context, id, ownerID uuid.UUID) error
}

// ListFilter narrows a subscription list. A nil Active means no filter at
// all: active and inactive alike. False filters to inactive only.
type ListFilter struct {
	Active *bool
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateParams struct {
	Name         string
	Amount       float64
	BillingCycle Cycle
	StartDate    time.Time
	EndDate      *time.Time
}

func (s *Service) Create(ctx context.Context, ownerID uuid.UUID, params CreateParams) (*Subscription, error) {
	sub := &Subscription{
		OwnerID:      ownerID,
		Name:         params.Name,
		Amount:       params.Amount,
		BillingCycle: params.BillingCycle,
		IsActive:     true,
		StartDate:    params.StartDate,
		EndDate:      params.EndDate,
	}
	if err := s.repo.Create(ctx, sub); err != nil {
		return nil, err
	}

	return sub, nil
}

// List returns one page of the caller's subscriptions, name ascending.
// The filter applies to both the items and the total count.
func (s *Service) List(ctx context.Context, ownerID uuid.UUID, page int, filter ListFilter) (*pagination.Result[*Subscription], error) {
	limit, offset := pagination.Window(page)

	subs, total, err := s.repo.List(ctx, ownerID, filter, limit, offset)
	if err != nil {
		return nil, err
	}

	return &pagination.Result[*Subscription]{Items: subs, TotalCount: total}, nil
}

func (s *Service) Get(ctx context.Context, ownerID, id uuid.UUID) (*Subscription, error) {
	return s.repo.Get(ctx, id, ownerID)
}

func (s *Service) Update(ctx context.Context, sub *Subscription) error {
	return s.repo.Update(ctx, sub)
}

// Cancel flips an owned subscription to inactive. It may change nothing
// else; a full update goes through Update.
func (s *Service) Cancel(ctx context.Context, ownerID, id uuid.UUID) error {
	return s.repo.Cancel(ctx, id, ownerID)
}

func (s *Service) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	return s.repo.Delete(ctx, id, ownerID)
}
