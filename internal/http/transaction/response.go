package transaction

import (
	"time"

	"github.com/google/uuid"

	"github.com/lsantos-dev/moneta/internal/report"
)

type transactionResponse struct {
	ID          uuid.UUID   `json:"id"`
	ReportID    uuid.UUID   `json:"report_id"`
	Kind        report.Kind `json:"kind"`
	Amount      float64     `json:"amount"`
	Description string      `json:"description"`
	Category    string      `json:"category,omitempty"`
	Date        time.Time   `json:"date"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

func toResponse(tx *report.Transaction) transactionResponse {
	return transactionResponse{
		ID:          tx.ID,
		ReportID:    tx.ReportID,
		Kind:        tx.Kind,
		Amount:      tx.Amount,
		Description: tx.Description,
		Category:    tx.Category,
		Date:        tx.Date,
		CreatedAt:   tx.CreatedAt,
		UpdatedAt:   tx.UpdatedAt,
	}
}
