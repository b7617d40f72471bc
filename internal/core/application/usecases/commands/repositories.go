// Package commands contains the use cases that modify the session state.
// Every command follows the same pattern: a validated command value, a handler
// that opens a unit of work, applies the change to the aggregate and commits.
package commands

import (
	"context"

	"sitta/internal/core/ports"
)

// Unit of Work interfaces narrowed to what each family of handlers needs.
type (
	// TxManager handles the transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// StockRepoFactory provides access to the stock repository within a transaction.
	StockRepoFactory interface {
		StockRepository() ports.StockRepository
	}

	// DeliveryOrderRepoFactory provides access to the delivery order repository
	// within a transaction.
	DeliveryOrderRepoFactory interface {
		DeliveryOrderRepository() ports.DeliveryOrderRepository
	}

	// StockUoW manages transactions for stock-only operations.
	StockUoW interface {
		TxManager
		StockRepoFactory
	}

	// StockUoWFactory creates new stock unit of work instances.
	StockUoWFactory interface {
		Create() StockUoW
	}

	// DeliveryOrderUoW manages transactions for delivery order operations.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   repo := uow.DeliveryOrderRepository()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	DeliveryOrderUoW interface {
		TxManager
		DeliveryOrderRepoFactory
	}

	// DeliveryOrderUoWFactory creates new delivery order unit of work instances.
	DeliveryOrderUoWFactory interface {
		Create() DeliveryOrderUoW
	}
)
