package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/lsantos-dev/moneta/internal/networth"
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

const selectSnapshotColumns = `id, owner_id, title, created_at, updated_at`

func scanSnapshot(s scanner) (*networth.Snapshot, error) {
	var snap networth.Snapshot

	if err := s.Scan(&snap.ID, &snap.OwnerID, &snap.Title, &snap.CreatedAt, &snap.UpdatedAt); err != nil {
		return nil, err
	}

	return &snap, nil
}

const selectEntryColumns = `id, snapshot_id, kind, label, amount, category, created_at`

func scanEntry(s scanner) (*networth.Entry, error) {
	var e networth.Entry

	var kindStr string

	if err := s.Scan(&e.ID, &e.SnapshotID, &kindStr, &e.Label, &e.Amount, &e.Category, &e.CreatedAt); err != nil {
		return nil, err
	}

	e.Kind = networth.Kind(kindStr)

	return &e, nil
}

// Create inserts the snapshot and its entries in one database transaction
// so neither is ever visible without the other.
func (s *Store) Create(ctx context.Context, snap *networth.Snapshot) error {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer dbTx.Rollback()

	snapQuery := `
		INSERT INTO net_worth_snapshots (owner_id, title, created_at, updated_at)
		VALUES ($1, $2, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	err = dbTx.QueryRowContext(ctx, snapQuery, snap.OwnerID, snap.Title).
		Scan(&snap.ID, &snap.CreatedAt, &snap.UpdatedAt)
	if err != nil {
		return fmt.Errorf("creating snapshot: %w", err)
	}

	entryQuery := `
		INSERT INTO net_worth_entries (snapshot_id, kind, label, amount, category, created_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		RETURNING id, created_at
	`

	for _, e := range snap.Entries {
		e.SnapshotID = snap.ID

		err := dbTx.QueryRowContext(ctx, entryQuery, e.SnapshotID, e.Kind, e.Label, e.Amount, e.Category).
			Scan(&e.ID, &e.CreatedAt)
		if err != nil {
			return fmt.Errorf("creating snapshot entry: %w", err)
		}
	}

	if err := dbTx.Commit(); err != nil {
		return fmt.Errorf("committing snapshot: %w", err)
	}

	return nil
}

func (s *Store) Get(ctx context.Context, id, ownerID uuid.UUID) (*networth.Snapshot, error) {
	query := `SELECT ` + selectSnapshotColumns + ` FROM net_worth_snapshots WHERE id = $1 AND owner_id = $2`

	snap, err := scanSnapshot(s.db.QueryRowContext(ctx, query, id, ownerID))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, networth.ErrNotFound
		}

		return nil, fmt.Errorf("getting snapshot: %w", err)
	}

	return snap, nil
}

// List returns a window of the owner's snapshots, newest first, with
// entries attached (oldest entry first within a snapshot).
func (s *Store) List(ctx context.Context, ownerID uuid.UUID, limit, offset int) ([]*networth.Snapshot, int, error) {
	var (
		snaps []*networth.Snapshot
		total int
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		query := `SELECT ` + selectSnapshotColumns + `
			FROM net_worth_snapshots
			WHERE owner_id = $1
			ORDER BY created_at DESC
			LIMIT $2 OFFSET $3`

		rows, err := s.db.QueryContext(gctx, query, ownerID, limit, offset)
		if err != nil {
			return fmt.Errorf("listing snapshots: %w", err)
		}
		defer rows.Close()

		for rows.Next() {
			snap, err := scanSnapshot(rows)
			if err != nil {
				return fmt.Errorf("scanning snapshot: %w", err)
			}

			snaps = append(snaps, snap)
		}

		return rows.Err()
	})

	g.Go(func() error {
		query := `SELECT COUNT(*) FROM net_worth_snapshots WHERE owner_id = $1`

		if err := s.db.QueryRowContext(gctx, query, ownerID).Scan(&total); err != nil {
			return fmt.Errorf("counting snapshots: %w", err)
		}

		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, 0, err
	}

	if err := s.attachEntries(ctx, snaps); err != nil {
		return nil, 0, err
	}

	return snaps, total, nil
}

// attachEntries loads the entries for a page of snapshots in one query.
func (s *Store) attachEntries(ctx context.Context, snaps []*networth.Snapshot) error {
	if len(snaps) == 0 {
		return nil
	}

	byID := make(map[uuid.UUID]*networth.Snapshot, len(snaps))
	placeholders := make([]string, len(snaps))
	args := make([]any, len(snaps))

	for i, snap := range snaps {
		snap.Entries = []*networth.Entry{}
		byID[snap.ID] = snap
		placeholders[i] = fmt.Sprintf("$%d", i+1)
		args[i] = snap.ID
	}

	query := `SELECT ` + selectEntryColumns + `
		FROM net_worth_entries
		WHERE snapshot_id IN (` + strings.Join(placeholders, ", ") + `)
		ORDER BY created_at ASC`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("listing snapshot entries: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return fmt.Errorf("scanning snapshot entry: %w", err)
		}

		if snap, ok := byID[e.SnapshotID]; ok {
			snap.Entries = append(snap.Entries, e)
		}
	}

	return rows.Err()
}

func (s *Store) ListEntries(ctx context.Context, snapshotID uuid.UUID) ([]*networth.Entry, error) {
	query := `SELECT ` + selectEntryColumns + `
		FROM net_worth_entries
		WHERE snapshot_id = $1
		ORDER BY created_at ASC`

	rows, err := s.db.QueryContext(ctx, query, snapshotID)
	if err != nil {
		return nil, fmt.Errorf("listing snapshot entries: %w", err)
	}
	defer rows.Close()

	entries := []*networth.Entry{}

	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning snapshot entry: %w", err)
		}

		entries = append(entries, e)
	}

	return entries, rows.Err()
}

// Delete removes an owned snapshot and its entries in one database
// transaction; the child delete is owner-scoped through the parent.
func (s *Store) Delete(ctx context.Context, id, ownerID uuid.UUID) error {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer dbTx.Rollback()

	childQuery := `
		DELETE FROM net_worth_entries
		WHERE snapshot_id IN (SELECT id FROM net_worth_snapshots WHERE id = $1 AND owner_id = $2)
	`
	if _, err := dbTx.ExecContext(ctx, childQuery, id, ownerID); err != nil {
		return fmt.Errorf("deleting snapshot entries: %w", err)
	}

	res, err := dbTx.ExecContext(ctx, `DELETE FROM net_worth_snapshots WHERE id = $1 AND owner_id = $2`, id, ownerID)
	if err != nil {
		return fmt.Errorf("deleting snapshot: %w", err)
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return networth.ErrNotFound
	}

	if err := dbTx.Commit(); err != nil {
		return fmt.Errorf("committing delete: %w", err)
	}

	return nil
}
