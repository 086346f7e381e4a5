package profile

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

// ErrProfileNotFound is returned when a profile does not exist or is not
// owned by the given user. The two cases are deliberately indistinguishable.
var ErrProfileNotFound = errors.New("profile not found")

// ErrDuplicateProfileName is returned when the owner already has a profile
// with the same name.
var ErrDuplicateProfileName = errors.New("profile name already exists")

// Repository provides operations on the profiles table. Every lookup is
// scoped to the owning user so cross-tenant access is impossible.
type Repository interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]Profile, error)
	Create(ctx context.Context, p *Profile) error
	Get(ctx context.Context, userID, id uuid.UUID) (*Profile, error)
	Update(ctx context.Context, p *Profile) error
	Delete(ctx context.Context, userID, id uuid.UUID) error
}
