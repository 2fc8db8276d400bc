package report

import (
	"time"

	"github.com/google/uuid"

	"github.com/lsantos-dev/moneta/internal/report"
)

type reportResponse struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func toResponse(r *report.Report) reportResponse {
	return reportResponse{
		ID:        r.ID,
		Title:     r.Title,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

func toResponseList(reports []*report.Report) []reportResponse {
	resp := make([]reportResponse, len(reports))
	for i, r := range reports {
		resp[i] = toResponse(r)
	}

	return resp
}

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

func toTransactionResponse(tx *report.Transaction) transactionResponse {
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

func toTransactionResponseList(txs []*report.Transaction) []transactionResponse {
	resp := make([]transactionResponse, len(txs))
	for i, tx := range txs {
		resp[i] = toTransactionResponse(tx)
	}

	return resp
}

// reportDetailResponse carries the full transaction list plus the
// derived income/expense totals.
type reportDetailResponse struct {
	reportResponse
	Transactions  []transactionResponse `json:"transactions"`
	TotalIncome   float64               `json:"total_income"`
	TotalExpenses float64               `json:"total_expenses"`
}

func toDetailResponse(r *report.Report) reportDetailResponse {
	return reportDetailResponse{
		reportResponse: toResponse(r),
		Transactions:   toTransactionResponseList(r.Transactions),
		TotalIncome:    report.TotalByKind(r.Transactions, report.KindIncome),
		TotalExpenses:  report.TotalByKind(r.Transactions, report.KindExpense),
	}
}
