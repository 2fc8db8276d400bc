package networth

import (
	"context"

	"github.com/google/uuid"

	"github.com/lsantos-dev/moneta/internal/pagination"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=networth
type Repository interface {
	// Create persists the snapshot and all of its entries atomically.
	Create(ctx context.Context, snap *Snapshot) error
	Get(ctx context.Context, id, ownerID uuid.UUID) (*Snapshot, error)
	// List returns snapshots with entries attached, plus the owner-wide count.
	List(ctx context.Context, ownerID uuid.UUID, limit, offset int) ([]*Snapshot, int, error)
	ListEntries(ctx context.Context, snapshotID uuid.UUID) ([]*Entry, error)
	Delete(ctx context.Context, id, ownerID uuid.UUID) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type EntryParams struct {
	Kind     Kind
	Label    string
	Amount   float64
	Category string
}

type CreateParams struct {
	Title   string
	Entries []EntryParams
}

// Create writes a snapshot and its entries as one unit; a snapshot is
// never observable without its entries. The entry list must be non-empty,
// which the API boundary has already checked.
func (s *Service) Create(ctx context.Context, ownerID uuid.UUID, params CreateParams) (*Snapshot, error) {
	snap := &Snapshot{
		OwnerID: ownerID,
		Title:   params.Title,
		Entries: make([]*Entry, len(params.Entries)),
	}

	for i, e := range params.Entries {
		snap.Entries[i] = &Entry{
			Kind:     e.Kind,
			Label:    e.Label,
			Amount:   e.Amount,
			Category: e.Category,
		}
	}

	if err := s.repo.Create(ctx, snap); err != nil {
		return nil, err
	}

	return snap, nil
}

// List returns one page of the caller's snapshots, newest first, entries
// included so totals derive without another round trip.
func (s *Service) List(ctx context.Context, ownerID uuid.UUID, page int) (*pagination.Result[*Snapshot], error) {
	limit, offset := pagination.Window(page)

	snaps, total, err := s.repo.List(ctx, ownerID, limit, offset)
	if err != nil {
		return nil, err
	}

	return &pagination.Result[*Snapshot]{Items: snaps, TotalCount: total}, nil
}

func (s *Service) Get(ctx context.Context, ownerID, id uuid.UUID) (*Snapshot, error) {
	snap, err := s.repo.Get(ctx, id, ownerID)
	if err != nil {
		return nil, err
	}

	entries, err := s.Entries(ctx, snap)
	if err != nil {
		return nil, err
	}

	snap.Entries = entries

	return snap, nil
}

// Entries resolves a snapshot's entries, preferring attached children
// over a second query. Totals come out the same either way.
func (s *Service) Entries(ctx context.Context, snap *Snapshot) ([]*Entry, error) {
	if snap.Entries != nil {
		return snap.Entries, nil
	}

	return s.repo.ListEntries(ctx, snap.ID)
}

// Delete removes an owned snapshot together with its entries.
func (s *Service) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	return s.repo.Delete(ctx, id, ownerID)
}
