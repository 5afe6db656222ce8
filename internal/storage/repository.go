// Package storage groups data access by domain behind a single interface so
// request flows depend on behavior, not on a concrete database client.
package storage

import (
	"context"

	"github.com/gatherhub/server/internal/domain/events"
	"github.com/gatherhub/server/internal/domain/users"
)

type Repository interface {
	Users() users.Repository
	Events() events.Repository

	// WithTx runs fn against a repository bound to a single transaction,
	// committing on nil and rolling back on error.
	WithTx(ctx context.Context, fn func(context.Context, Repository) error) error
}
