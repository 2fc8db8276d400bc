package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/lsantos-dev/moneta/internal/report"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

const selectReportColumns = `id, owner_id, title, created_at, updated_at`

func scanReport(s scanner) (*report.Report, error) {
	var r report.Report

	if err := s.Scan(&r.ID, &r.OwnerID, &r.Title, &r.CreatedAt, &r.UpdatedAt); err != nil {
		return nil, err
	}

	return &r, nil
}

const selectTransactionColumns = `id, report_id, kind, amount, description, category, date, created_at, updated_at`

func scanTransaction(s scanner) (*report.Transaction, error) {
	var tx report.Transaction

	var kindStr string

	if err := s.Scan(
		&tx.ID, &tx.ReportID, &kindStr, &tx.Amount, &tx.Description, &tx.Category,
		&tx.Date, &tx.CreatedAt, &tx.UpdatedAt,
	); err != nil {
		return nil, err
	}

	tx.Kind = report.Kind(kindStr)

	return &tx, nil
}

func (s *Store) CreateReport(ctx context.Context, r *report.Report) error {
	query := `
		INSERT INTO reports (owner_id, title, created_at, updated_at)
		VALUES ($1, $2, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	err := s.db.QueryRowContext(ctx, query, r.OwnerID, r.Title).
		Scan(&r.ID, &r.CreatedAt, &r.UpdatedAt)
	if err != nil {
		return fmt.Errorf("creating report: %w", err)
	}

	return nil
}

// GetReport fetches a report scoped to its owner. A report that exists but
// belongs to someone else is indistinguishable from one that does not.
func (s *Store) GetReport(ctx context.Context, id, ownerID uuid.UUID) (*report.Report, error) {
	query := `SELECT ` + selectReportColumns + ` FROM reports WHERE id = $1 AND owner_id = $2`

	r, err := scanReport(s.db.QueryRowContext(ctx, query, id, ownerID))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, report.ErrNotFound
		}

		return nil, fmt.Errorf("getting report: %w", err)
	}

	return r, nil
}

// ListReports returns one window of the owner's reports, newest first,
// plus the owner-wide count. The two reads share a predicate and run
// concurrently; read skew between them is tolerated.
func (s *Store) ListReports(ctx context.Context, ownerID uuid.UUID, limit, offset int) ([]*report.Report, int, error) {
	var (
		reports []*report.Report
		total   int
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		query := `SELECT ` + selectReportColumns + `
			FROM reports
			WHERE owner_id = $1
			ORDER BY created_at DESC
			LIMIT $2 OFFSET $3`

		rows, err := s.db.QueryContext(gctx, query, ownerID, limit, offset)
		if err != nil {
			return fmt.Errorf("listing reports: %w", err)
		}
		defer rows.Close()

		for rows.Next() {
			r, err := scanReport(rows)
			if err != nil {
				return fmt.Errorf("scanning report: %w", err)
			}

			reports = append(reports, r)
		}

		return rows.Err()
	})

	g.Go(func() error {
		query := `SELECT COUNT(*) FROM reports WHERE owner_id = $1`

		if err := s.db.QueryRowContext(gctx, query, ownerID).Scan(&total); err != nil {
			return fmt.Errorf("counting reports: %w", err)
		}

		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, 0, err
	}

	return reports, total, nil
}

func (s *Store) UpdateReport(ctx context.Context, r *report.Report) error {
	query := `
		UPDATE reports
		SET title = $1, updated_at = NOW()
		WHERE id = $2 AND owner_id = $3
	`

	res, err := s.db.ExecContext(ctx, query, r.Title, r.ID, r.OwnerID)
	if err != nil {
		return fmt.Errorf("updating report: %w", err)
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return report.ErrNotFound
	}

	return nil
}

// DeleteReport removes an owned report and its transactions in one
// database transaction. The child delete is owner-scoped through the
// parent so a foreign report's transactions are never touched.
func (s *Store) DeleteReport(ctx context.Context, id, ownerID uuid.UUID) error {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer dbTx.Rollback()

	childQuery := `
		DELETE FROM transactions
		WHERE report_id IN (SELECT id FROM reports WHERE id = $1 AND owner_id = $2)
	`
	if _, err := dbTx.ExecContext(ctx, childQuery, id, ownerID); err != nil {
		return fmt.Errorf("deleting report transactions: %w", err)
	}

	res, err := dbTx.ExecContext(ctx, `DELETE FROM reports WHERE id = $1 AND owner_id = $2`, id, ownerID)
	if err != nil {
		return fmt.Errorf("deleting report: %w", err)
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return report.ErrNotFound
	}

	if err := dbTx.Commit(); err != nil {
		return fmt.Errorf("committing delete: %w", err)
	}

	return nil
}

func (s *Store) CreateTransaction(ctx context.Context, tx *report.Transaction) error {
	query := `
		INSERT INTO transactions (report_id, kind, amount, description, category, date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	err := s.db.QueryRowContext(ctx, query,
		tx.ReportID,
		tx.Kind,
		tx.Amount,
		tx.Description,
		tx.Category,
		tx.Date,
	).Scan(&tx.ID, &tx.CreatedAt, &tx.UpdatedAt)
	if err != nil {
		return fmt.Errorf("creating transaction: %w", err)
	}

	return nil
}

// CreateTransactions inserts a batch inside one database transaction so a
// partial import is never observable.
func (s *Store) CreateTransactions(ctx context.Context, txs []*report.Transaction) error {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer dbTx.Rollback()

	query := `
		INSERT INTO transactions (report_id, kind, amount, description, category, date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	for _, tx := range txs {
		err := dbTx.QueryRowContext(ctx, query,
			tx.ReportID,
			tx.Kind,
			tx.Amount,
			tx.Description,
			tx.Category,
			tx.Date,
		).Scan(&tx.ID, &tx.CreatedAt, &tx.UpdatedAt)
		if err != nil {
			return fmt.Errorf("creating transaction: %w", err)
		}
	}

	if err := dbTx.Commit(); err != nil {
		return fmt.Errorf("committing batch: %w", err)
	}

	return nil
}

// GetTransaction resolves ownership transitively through the parent report.
func (s *Store) GetTransaction(ctx context.Context, id, ownerID uuid.UUID) (*report.Transaction, error) {
	query := `
		SELECT t.id, t.report_id, t.kind, t.amount, t.description, t.category, t.date, t.created_at, t.updated_at
		FROM transactions t
		JOIN reports r ON t.report_id = r.id
		WHERE t.id = $1 AND r.owner_id = $2
	`

	tx, err := scanTransaction(s.db.QueryRowContext(ctx, query, id, ownerID))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, report.ErrTransactionNotFound
		}

		return nil, fmt.Errorf("getting transaction: %w", err)
	}

	return tx, nil
}

// ListTransactions returns every transaction of a report, date descending.
// No pagination here: callers rely on the full set.
func (s *Store) ListTransactions(ctx context.Context, reportID uuid.UUID) ([]*report.Transaction, error) {
	query := `SELECT ` + selectTransactionColumns + `
		FROM transactions
		WHERE report_id = $1
		ORDER BY date DESC`

	rows, err := s.db.QueryContext(ctx, query, reportID)
	if err != nil {
		return nil, fmt.Errorf("listing transactions: %w", err)
	}
	defer rows.Close()

	txs := []*report.Transaction{}

	for rows.Next() {
		tx, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning transaction: %w", err)
		}

		txs = append(txs, tx)
	}

	return txs, rows.Err()
}

func (s *Store) UpdateTransaction(ctx context.Context, ownerID uuid.UUID, tx *report.Transaction) error {
	query := `
		UPDATE transactions t
		SET kind = $1, amount = $2, description = $3, category = $4, date = $5, updated_at = NOW()
		FROM reports r
		WHERE t.id = $6 AND t.report_id = r.id AND r.owner_id = $7
	`

	res, err := s.db.ExecContext(ctx, query,
		tx.Kind,
		tx.Amount,
		tx.Description,
		tx.Category,
		tx.Date,
		tx.ID,
		ownerID,
	)
	if err != nil {
		return fmt.Errorf("updating transaction: %w", err)
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return report.ErrTransactionNotFound
	}

	return nil
}

func (s *Store) DeleteTransaction(ctx context.Context, id, ownerID uuid.UUID) error {
	query := `
		DELETE FROM transactions t
		USING reports r
		WHERE t.id = $1 AND t.report_id = r.id AND r.owner_id = $2
	`

	res, err := s.db.ExecContext(ctx, query, id, ownerID)
	if err != nil {
		return fmt.Errorf("deleting transaction: %w", err)
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return report.ErrTransactionNotFound
	}

	return nil
}
