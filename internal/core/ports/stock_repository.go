// Package ports defines the contracts between the application core and its
// adapters: repositories, the unit of work and the change notifier.
package ports

import (
	"context"

	"sitta/internal/core/domain/model/stock"
)

// StockRepository stores stock items keyed by code.
type StockRepository interface {
	// Add stores a new item. Returns errs.ErrObjectAlreadyExists when the code is taken.
	Add(ctx context.Context, item *stock.Item) error

	// Update replaces the item with the same code. Returns errs.ErrObjectNotFound
	// when no such item exists.
	Update(ctx context.Context, item *stock.Item) error

	// Delete removes the item by code. Returns errs.ErrObjectNotFound when absent.
	Delete(ctx context.Context, code string) error

	// Get returns the item by code or errs.ErrObjectNotFound.
	Get(ctx context.Context, code string) (*stock.Item, error)

	// GetAll returns every item in insertion order.
	GetAll(ctx context.Context) ([]*stock.Item, error)
}
