package auth

import (
	"context"
	"errors"
	"time"
)

// Sentinel errors returned by Repository implementations. The service layer
// translates these into apperror types with user-facing messages.
var (
	// ErrNotFound indicates that no user matched the lookup.
	ErrNotFound = errors.New("user not found")
	// ErrDuplicateEmail indicates that the store rejected an insert because
	// the email is already registered. The unique index on the email field is
	// the source of truth for this invariant, so a race between two
	// registrations is decided by the store, not by the application.
	ErrDuplicateEmail = errors.New("email already registered")
)

// Repository is the storage contract for user documents.
type Repository interface {
	// Create inserts a new user and returns it with its assigned id.
	Create(ctx context.Context, user *User) (*User, error)
	// FindByEmail returns the user with the given (lowercased) email.
	FindByEmail(ctx context.Context, email string) (*User, error)
	// FindByID returns the user with the given id.
	FindByID(ctx context.Context, id string) (*User, error)
	// SetResetToken stores a reset token and its expiry on the user.
	SetResetToken(ctx context.Context, userID, token string, expires time.Time) error
	// ResetPassword atomically replaces the password hash of the user holding
	// the given unexpired reset token and clears both reset fields, making the
	// token single-use. Returns ErrNotFound when no user matches.
	ResetPassword(ctx context.Context, token string, now time.Time, hashedPassword string) error
}
