package report

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/lsantos-dev/moneta/internal/pagination"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=report
type Repository interface {
	CreateReport(ctx context.Context, r *Report) error
	GetReport(ctx context.Context, id, ownerID uuid.UUID) (*Report, error)
	ListReports(ctx context.Context, ownerID uuid.UUID, limit, offset int) ([]*Report, int, error)
	UpdateReport(ctx context.Context, r *Report) error
	DeleteReport(ctx context.Context, id, ownerID uuid.UUID) error

	CreateTransaction(ctx context.Context, tx *Transaction) error
	CreateTransactions(ctx context.Context, txs []*Transaction) error
	GetTransaction(ctx context.Context, id, ownerID uuid.UUID) (*Transaction, error)
	ListTransactions(ctx context.Context, reportID uuid.UUID) ([]*Transaction, error)
	UpdateTransaction(ctx context.Context, ownerID uuid.UUID, tx *Transaction) error
	DeleteTransaction(ctx context.Context, id, ownerID uuid.UUID) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateParams struct {
	Title string
}

func (s *Service) Create(ctx context.Context, ownerID uuid.UUID, params CreateParams) (*Report, error) {
	r := &Report{
		OwnerID: ownerID,
		Title:   params.Title,
	}
	if err := s.repo.CreateReport(ctx, r); err != nil {
		return nil, err
	}

	return r, nil
}

// List returns one page of the caller's reports, newest first. The total
// count always covers the whole owner scope regardless of the page.
func (s *Service) List(ctx context.Context, ownerID uuid.UUID, page int) (*pagination.Result[*Report], error) {
	limit, offset := pagination.Window(page)

	reports, total, err := s.repo.ListReports(ctx, ownerID, limit, offset)
	if err != nil {
		return nil, err
	}

	return &pagination.Result[*Report]{Items: reports, TotalCount: total}, nil
}

// Get fetches one owned report with its transactions attached, newest
// transaction first.
func (s *Service) Get(ctx context.Context, ownerID, id uuid.UUID) (*Report, error) {
	r, err := s.repo.GetReport(ctx, id, ownerID)
	if err != nil {
		return nil, err
	}

	txs, err := s.Transactions(ctx, r)
	if err != nil {
		return nil, err
	}

	r.Transactions = txs

	return r, nil
}

// Transactions resolves a report's transactions, preferring children that
// are already attached over a second query. Both paths yield the same
// collection, so derived totals never depend on the fetch strategy.
func (s *Service) Transactions(ctx context.Context, r *Report) ([]*Transaction, error) {
	if r.Transactions != nil {
		return r.Transactions, nil
	}

	return s.repo.ListTransactions(ctx, r.ID)
}

func (s *Service) Rename(ctx context.Context, ownerID, id uuid.UUID, title string) (*Report, error) {
	r, err := s.repo.GetReport(ctx, id, ownerID)
	if err != nil {
		return nil, err
	}

	r.Title = title
	if err := s.repo.UpdateReport(ctx, r); err != nil {
		return nil, err
	}

	return r, nil
}

// Delete removes an owned report and all of its transactions.
func (s *Service) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	return s.repo.DeleteReport(ctx, id, ownerID)
}

type TransactionParams struct {
	Kind        Kind
	Amount      float64
	Description string
	Category    string
	Date        time.Time
}

// AddTransaction creates a transaction inside a report the caller owns.
// A missing or foreign report surfaces as ErrNotFound.
func (s *Service) AddTransaction(ctx context.Context, ownerID, reportID uuid.UUID, params TransactionParams) (*Transaction, error) {
	if _, err := s.repo.GetReport(ctx, reportID, ownerID); err != nil {
		return nil, err
	}

	tx := &Transaction{
		ReportID:    reportID,
		Kind:        params.Kind,
		Amount:      params.Amount,
		Description: params.Description,
		Category:    params.Category,
		Date:        params.Date,
	}
	if err := s.repo.CreateTransaction(ctx, tx); err != nil {
		return nil, err
	}

	return tx, nil
}

// ImportTransactions creates a batch of transactions inside an owned
// report as a single atomic write.
func (s *Service) ImportTransactions(ctx context.Context, ownerID, reportID uuid.UUID, params []TransactionParams) ([]*Transaction, error) {
	if _, err := s.repo.GetReport(ctx, reportID, ownerID); err != nil {
		return nil, err
	}

	if len(params) == 0 {
		return nil, nil
	}

	txs := make([]*Transaction, len(params))
	for i, p := range params {
		txs[i] = &Transaction{
			ReportID:    reportID,
			Kind:        p.Kind,
			Amount:      p.Amount,
			Description: p.Description,
			Category:    p.Category,
			Date:        p.Date,
		}
	}

	if err := s.repo.CreateTransactions(ctx, txs); err != nil {
		return nil, err
	}

	return txs, nil
}

// ReportTransactions returns every transaction of an owned report, date
// descending. Deliberately unpaginated: a report's transaction count is
// assumed small.
func (s *Service) ReportTransactions(ctx context.Context, ownerID, reportID uuid.UUID) ([]*Transaction, error) {
	if _, err := s.repo.GetReport(ctx, reportID, ownerID); err != nil {
		return nil, err
	}

	return s.repo.ListTransactions(ctx, reportID)
}

func (s *Service) GetTransaction(ctx context.Context, ownerID, id uuid.UUID) (*Transaction, error) {
	return s.repo.GetTransaction(ctx, id, ownerID)
}

func (s *Service) UpdateTransaction(ctx context.Context, ownerID uuid.UUID, tx *Transaction) error {
	return s.repo.UpdateTransaction(ctx, ownerID, tx)
}

func (s *Service) DeleteTransaction(ctx context.Context, ownerID, id uuid.UUID) error {
	return s.repo.DeleteTransaction(ctx, id, ownerID)
}
