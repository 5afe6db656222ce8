package users

import "context"

// User mirrors the usertable relation. Token is the last-issued token and is
// overwritten on every successful signup; it is nil until the first signup
// completes.
type User struct {
	ID           int64
	Name         string
	Email        string
	PasswordHash string
	IsAdmin      bool
	Token        *string
}

type CreateParams struct {
	Name         string
	Email        string
	PasswordHash string
}

type Repository interface {
	// Create inserts a user row and returns the generated identifier and
	// admin flag. A duplicate email surfaces as a plain store error.
	Create(ctx context.Context, params CreateParams) (*User, error)
	// GetByEmail returns ErrNotFound when no row matches.
	GetByEmail(ctx context.Context, email string) (*User, error)
	// UpdateToken overwrites the user's stored token.
	UpdateToken(ctx context.Context, userID int64, token string) error
}
