package networth

import (
	"time"

	"github.com/google/uuid"

	"github.com/lsantos-dev/moneta/internal/networth"
)

type entryResponse struct {
	ID        uuid.UUID     `json:"id"`
	Kind      networth.Kind `json:"kind"`
	Label     string        `json:"label"`
	Amount    float64       `json:"amount"`
	Category  string        `json:"category,omitempty"`
	CreatedAt time.Time     `json:"created_at"`
}

type snapshotResponse struct {
	ID               uuid.UUID       `json:"id"`
	Title            string          `json:"title"`
	Entries          []entryResponse `json:"entries"`
	TotalAssets      float64         `json:"total_assets"`
	TotalLiabilities float64         `json:"total_liabilities"`
	NetWorth         float64         `json:"net_worth"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

func toResponse(snap *networth.Snapshot) snapshotResponse {
	entries := make([]entryResponse, len(snap.Entries))
	for i, e := range snap.Entries {
		entries[i] = entryResponse{
			ID:        e.ID,
			Kind:      e.Kind,
			Label:     e.Label,
			Amount:    e.Amount,
			Category:  e.Category,
			CreatedAt: e.CreatedAt,
		}
	}

	return snapshotResponse{
		ID:               snap.ID,
		Title:            snap.Title,
		Entries:          entries,
		TotalAssets:      networth.TotalByKind(snap.Entries, networth.KindAsset),
		TotalLiabilities: networth.TotalByKind(snap.Entries, networth.KindLiability),
		NetWorth:         networth.Net(snap.Entries),
		CreatedAt:        snap.CreatedAt,
		UpdatedAt:        snap.UpdatedAt,
	}
}

func toResponseList(snaps []*networth.Snapshot) []snapshotResponse {
	resp := make([]snapshotResponse, len(snaps))
	for i, snap := range snaps {
		resp[i] = toResponse(snap)
	}

	return resp
}
