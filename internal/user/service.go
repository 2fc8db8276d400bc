package user

import (
	"context"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=user
type Repository interface {
	Upsert(ctx context.Context, externalID, email string) (*User, error)
	GetByExternalID(ctx context.Context, externalID string) (*User, error)
	UpdateProfile(ctx context.Context, externalID, name string) (*User, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Ensure resolves the caller's user row, creating it on first contact.
// The stored email is refreshed to match the identity provider's current
// record, so repeated calls with the same identity are idempotent.
func (s *Service) Ensure(ctx context.Context, externalID, email string) (*User, error) {
	return s.repo.Upsert(ctx, externalID, email)
}

type UpdateProfileParams struct {
	Name string
}

// UpdateProfile renames an existing user. The row must already exist:
// profile creation only ever happens through Ensure.
func (s *Service) UpdateProfile(ctx context.Context, externalID string, params UpdateProfileParams) (*User, error) {
	if _, err := s.repo.GetByExternalID(ctx, externalID); err != nil {
		return nil, err
	}

	return s.repo.UpdateProfile(ctx, externalID, params.Name)
}
