package report

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotFound            = errors.New("report not found")
	ErrTransactionNotFound = errors.New("transaction not found")
)

// Kind tags a transaction as money in or money out. Amounts are always
// positive; the kind alone decides whether a line adds or subtracts.
type Kind string

const (
	KindIncome  Kind = "income"
	KindExpense Kind = "expense"
)

func (k Kind) Valid() bool {
	return k == KindIncome || k == KindExpense
}

// Report groups transactions for one owner.
type Report struct {
	ID        uuid.UUID
	OwnerID   uuid.UUID
	Title     string
	// Transactions is nil when the report was fetched without its
	// children; use Service.Transactions to resolve them.
	Transactions []*Transaction
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Transaction is a single income or expense line inside a report.
// Its effective owner is the owning report's owner.
type Transaction struct {
	ID          uuid.UUID
	ReportID    uuid.UUID
	Kind        Kind
	Amount      float64
	Description string
	Category    string
	Date        time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TotalByKind sums the amounts of all transactions of the given kind.
// An empty or nil slice totals zero.
func TotalByKind(txs []*Transaction, kind Kind) float64 {
	var total float64

	for _, tx := range txs {
		if tx.Kind == kind {
			total += tx.Amount
		}
	}

	return total
}
