package user

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("user not found")

// User is the account row backing a caller identity. ExternalID is the
// subject assigned by the identity provider; ID is ours.
type User struct {
	ID         uuid.UUID
	ExternalID string
	Email      string
	Name       string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
