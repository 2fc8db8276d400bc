package networth

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("snapshot not found")

// Kind marks an entry as adding to or subtracting from net worth.
// Amounts stay positive either way.
type Kind string

const (
	KindAsset     Kind = "asset"
	KindLiability Kind = "liability"
)

func (k Kind) Valid() bool {
	return k == KindAsset || k == KindLiability
}

// Snapshot is a named point-in-time set of asset and liability entries.
type Snapshot struct {
	ID        uuid.UUID
	OwnerID   uuid.UUID
	Title     string
	Entries   []*Entry
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Entry is one asset or liability line; its effective owner is the
// snapshot's owner.
type Entry struct {
	ID         uuid.UUID
	SnapshotID uuid.UUID
	Kind       Kind
	Label      string
	Amount     float64
	Category   string
	CreatedAt  time.Time
}

// TotalByKind sums the amounts of all entries of the given kind.
func TotalByKind(entries []*Entry, kind Kind) float64 {
	var total float64

	for _, e := range entries {
		if e.Kind == kind {
			total += e.Amount
		}
	}

	return total
}

// Net is total assets minus total liabilities. Empty entries net to zero.
func Net(entries []*Entry) float64 {
	return TotalByKind(entries, KindAsset) - TotalByKind(entries, KindLiability)
}
