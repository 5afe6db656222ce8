package users

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound indicates no user row matches the given email.
	ErrNotFound = errors.New("user not found")
	// ErrInvalidCredentials indicates the password did not match the stored digest.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// ValidationError reports a signup/signin input that failed the fixed rules.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}
