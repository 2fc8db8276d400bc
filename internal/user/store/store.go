package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lsantos-dev/moneta/internal/user"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

const selectUserColumns = `id, external_id, email, name, created_at, updated_at`

func scanUser(row *sql.Row) (*user.User, error) {
	var u user.User

	if err := row.Scan(&u.ID, &u.ExternalID, &u.Email, &u.Name, &u.CreatedAt, &u.UpdatedAt); err != nil {
		return nil, err
	}

	return &u, nil
}

// Upsert creates the user on first contact and refreshes the stored email
// on every subsequent one, keyed by the identity provider's subject.
func (s *Store) Upsert(ctx context.Context, externalID, email string) (*user.User, error) {
	query := `
		INSERT INTO users (external_id, email, created_at, updated_at)
		VALUES ($1, $2, NOW(), NOW())
		ON CONFLICT (external_id) DO UPDATE SET email = EXCLUDED.email, updated_at = NOW()
		RETURNING ` + selectUserColumns

	u, err := scanUser(s.db.QueryRowContext(ctx, query, externalID, email))
	if err != nil {
		return nil, fmt.Errorf("upserting user: %w", err)
	}

	return u, nil
}

func (s *Store) GetByExternalID(ctx context.Context, externalID string) (*user.User, error) {
	query := `SELECT ` + selectUserColumns + ` FROM users WHERE external_id = $1`

	u, err := scanUser(s.db.QueryRowContext(ctx, query, externalID))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, user.ErrNotFound
		}

		return nil, fmt.Errorf("getting user: %w", err)
	}

	return u, nil
}

func (s *Store) UpdateProfile(ctx context.Context, externalID, name string) (*user.User, error) {
	query := `
		UPDATE users
		SET name = $1, updated_at = NOW()
		WHERE external_id = $2
		RETURNING ` + selectUserColumns

	u, err := scanUser(s.db.QueryRowContext(ctx, query, name, externalID))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, user.ErrNotFound
		}

		return nil, fmt.Errorf("updating user profile: %w", err)
	}

	return u, nil
}
