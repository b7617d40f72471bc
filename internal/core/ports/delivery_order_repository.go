package ports

import (
	"context"

	"sitta/internal/core/domain/model/delivery"
)

// DeliveryOrderRepository stores delivery orders keyed by number. Orders are
// never removed.
type DeliveryOrderRepository interface {
	// Add stores a new order. Returns errs.ErrObjectAlreadyExists when the number is taken.
	Add(ctx context.Context, order *delivery.DeliveryOrder) error

	// Update replaces the stored order with the same number.
	Update(ctx context.Context, order *delivery.DeliveryOrder) error

	// Get returns the order or errs.ErrObjectNotFound.
	Get(ctx context.Context, number delivery.Number) (*delivery.DeliveryOrder, error)

	// GetAll returns every order in insertion order.
	GetAll(ctx context.Context) ([]*delivery.DeliveryOrder, error)

	// Numbers returns the numbers of all stored orders.
	Numbers(ctx context.Context) ([]delivery.Number, error)
}
