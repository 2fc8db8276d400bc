package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/lsantos-dev/moneta/internal/subscription"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

type scanner interface {
	Scan(dest ...any) error
}

const selectSubscriptionColumns = `id, owner_id, name, amount, billing_cycle, is_active, start_date, end_date, created_at, updated_at`

func scanSubscription(s scanner) (*subscription.Subscription, error) {
	var sub subscription.Subscription

	var cycleStr string

	var endDate sql.NullTime

	if err := s.Scan(
		&sub.ID, &sub.OwnerID, &sub.Name, &sub.Amount, &cycleStr, &sub.IsActive,
		&sub.StartDate, &endDate, &sub.CreatedAt, &sub.UpdatedAt,
	); err != nil {
		return nil, err
	}

	sub.BillingCycle = subscription.Cycle(cycleStr)

	if endDate.Valid {
		sub.EndDate = &endDate.Time
	}

	return &sub, nil
}

func (s *Store) Create(ctx context.Context, sub *subscription.Subscription) error {
	query := `
		INSERT INTO subscriptions (owner_id, name, amount, billing_cycle, is_active, start_date, end_date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	err := s.db.QueryRowContext(ctx, query,
		sub.OwnerID,
		sub.Name,
		sub.Amount,
		sub.BillingCycle,
		sub.IsActive,
		sub.StartDate,
		sub.EndDate,
	).Scan(&sub.ID, &sub.CreatedAt, &sub.UpdatedAt)
	if err != nil {
		return fmt.Errorf("creating subscription: %w", err)
	}

	return nil
}

func (s *Store) Get(ctx context.Context, id, ownerID uuid.UUID) (*subscription.Subscription, error) {
	query := `SELECT ` + selectSubscriptionColumns + ` FROM subscriptions WHERE id = $1 AND owner_id = $2`

	sub, err := scanSubscription(s.db.QueryRowContext(ctx, query, id, ownerID))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, subscription.ErrNotFound
		}

		return nil, fmt.Errorf("getting subscription: %w", err)
	}

	return sub, nil
}

// List returns a window of the owner's subscriptions, name ascending.
// Items and count share the exact same predicate, so an active filter
// narrows both or neither.
func (s *Store) List(ctx context.Context, ownerID uuid.UUID, filter subscription.ListFilter, limit, offset int) ([]*subscription.Subscription, int, error) {
	where := ` WHERE owner_id = $1`
	args := []any{ownerID}

	if filter.Active != nil {
		where += ` AND is_active = $2`

		args = append(args, *filter.Active)
	}

	var (
		subs  []*subscription.Subscription
		total int
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		argIdx := len(args) + 1
		query := fmt.Sprintf(`SELECT `+selectSubscriptionColumns+`
			FROM subscriptions`+where+`
			ORDER BY name ASC
			LIMIT $%d OFFSET $%d`, argIdx, argIdx+1)

		itemArgs := append(append([]any{}, args...), limit, offset)

		rows, err := s.db.QueryContext(gctx, query, itemArgs...)
		if err != nil {
			return fmt.Errorf("listing subscriptions: %w", err)
		}
		defer rows.Close()

		for rows.Next() {
			sub, err := scanSubscription(rows)
			if err != nil {
				return fmt.Errorf("scanning subscription: %w", err)
			}

			subs = append(subs, sub)
		}

		return rows.Err()
	})

	g.Go(func() error {
		query := `SELECT COUNT(*) FROM subscriptions` + where

		if err := s.db.QueryRowContext(gctx, query, args...).Scan(&total); err != nil {
			return fmt.Errorf("counting subscriptions: %w", err)
		}

		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, 0, err
	}

	return subs, total, nil
}

func (s *Store) Update(ctx context.Context, sub *subscription.Subscription) error {
	query := `
		UPDATE subscriptions
		SET name = $1, amount = $2, billing_cycle = $3, is_active = $4, start_date = $5, end_date = $6, updated_at = NOW()
		WHERE id = $7 AND owner_id = $8
	`

	res, err := s.db.ExecContext(ctx, query,
		sub.Name,
		sub.Amount,
		sub.BillingCycle,
		sub.IsActive,
		sub.StartDate,
		sub.EndDate,
		sub.ID,
		sub.OwnerID,
	)
	if err != nil {
		return fmt.Errorf("updating subscription: %w", err)
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return subscription.ErrNotFound
	}

	return nil
}

// Cancel only flips is_active; nothing else may change on this path.
func (s *Store) Cancel(ctx context.Context, id, ownerID uuid.UUID) error {
	query := `
		UPDATE subscriptions
		SET is_active = FALSE, updated_at = NOW()
		WHERE id = $1 AND owner_id = $2
	`

	res, err := s.db.ExecContext(ctx, query, id, ownerID)
	if err != nil {
		return fmt.Errorf("cancelling subscription: %w", err)
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return subscription.ErrNotFound
	}

	return nil
}

func (s *Store) Delete(ctx context.Context, id, ownerID uuid.UUID) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM subscriptions WHERE id = $1 AND owner_id = $2`, id, ownerID)
	if err != nil {
		return fmt.Errorf("deleting subscription: %w", err)
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return subscription.ErrNotFound
	}

	return nil
}
