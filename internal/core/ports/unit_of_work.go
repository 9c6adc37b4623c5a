package ports

import "context"

// UnitOfWorkFactory creates new UnitOfWork instances.
// Each unit of work owns its own transaction lifecycle.
type UnitOfWorkFactory interface {
	// Create returns a fresh unit of work ready for use.
	Create() UnitOfWork
}

// UnitOfWork manages a single database transaction spanning the catalogue
// repositories. Begin starts the transaction, Commit finalizes it, and
// Rollback discards it. Rollback after a successful Commit is a no-op, so
// callers can safely defer it.
type UnitOfWork interface {
	// Begin starts a new transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Calling Rollback after Commit has no effect.
	Rollback(ctx context.Context) error

	// ProviderRepository returns the provider repository bound to this unit of work.
	ProviderRepository() ProviderRepository

	// ZoneRepository returns the zone repository bound to this unit of work.
	ZoneRepository() ZoneRepository
}
