package user

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

// ErrUserNotFound is returned when a user record is not found.
var ErrUserNotFound = errors.New("user not found")

// Repository provides operations on the users table.
type Repository interface {
	Create(ctx context.Context, u *User) error
	GetByID(ctx context.Context, id uuid.UUID) (*User, error)
	GetByGoogleID(ctx context.Context, googleID string) (*User, error)
	// List returns every user, newest first, with their profile count.
	List(ctx context.Context) ([]WithProfileCount, error)
	SetAdmin(ctx context.Context, id uuid.UUID, isAdmin bool) error
	// Delete removes the user's profiles and then the user itself in a
	// single transaction.
	Delete(ctx context.Context, id uuid.UUID) error
	Stats(ctx context.Context) (*Stats, error)
}
