package ports

import (
	"context"
)

// UnitOfWorkFactory creates a new UnitOfWork for each command.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork is the boundary of one business transaction. Changes made through
// its repositories become visible to others only on Commit.
type UnitOfWork interface {
	// Begin starts the transaction. Other units of work wait until this one
	// commits or rolls back.
	Begin(ctx context.Context) error

	// Commit publishes the changes and ends the transaction.
	// Returns error if no transaction is active.
	Commit(ctx context.Context) error

	// Rollback discards the changes and ends the transaction.
	// Returns error if no transaction is active.
	Rollback(ctx context.Context) error

	// StockRepository returns a repository bound to the current transaction.
	StockRepository() StockRepository

	// DeliveryOrderRepository returns a repository bound to the current transaction.
	DeliveryOrderRepository() DeliveryOrderRepository
}
