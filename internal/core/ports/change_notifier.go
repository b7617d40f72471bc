package ports

import (
	"context"
	"time"

	"sitta/internal/core/domain/model/delivery"
	"sitta/internal/core/domain/model/stock"
)

// Entity names the collection a change belongs to.
type Entity string

const (
	EntityStock         Entity = "stock"
	EntityDeliveryOrder Entity = "delivery_order"
)

// Action is what happened to the record.
type Action string

const (
	ActionCreated Action = "created"
	ActionUpdated Action = "updated"
	ActionDeleted Action = "deleted"
)

// Change describes one committed modification. Exactly one of StockItem and
// DeliveryOrder is set, except for deletions where both are nil.
type Change struct {
	Entity        Entity
	Action        Action
	Key           string
	At            time.Time
	StockItem     *stock.Item
	DeliveryOrder *delivery.DeliveryOrder
}

// ChangeNotifier acknowledges committed changes. There is no durable storage;
// a notifier stands in for the save an application backed by a server would do.
type ChangeNotifier interface {
	Notify(ctx context.Context, changes []Change) error
}
