package memory

import (
	"context"

	"sitta/internal/core/domain/model/delivery"
	"sitta/internal/core/ports"
	"sitta/internal/pkg/errs"
)

var _ ports.DeliveryOrderRepository = (*DeliveryOrderRepository)(nil)

// DeliveryOrderRepository keys orders by their formatted number.
type DeliveryOrderRepository struct {
	session session
}

func newDeliveryOrderRepository(s session) *DeliveryOrderRepository {
	return &DeliveryOrderRepository{session: s}
}

func (r *DeliveryOrderRepository) Add(ctx context.Context, order *delivery.DeliveryOrder) error {
	if err := order.Validate(); err != nil {
		return err
	}

	key := order.Number().String()
	return r.session.write(ctx, func(t *tables) (ports.Change, error) {
		if !t.orders.insert(key, order.Clone()) {
			return ports.Change{}, errs.NewObjectAlreadyExistsError("deliveryOrder", key)
		}
		return orderChange(ports.ActionCreated, order), nil
	})
}

func (r *DeliveryOrderRepository) Update(ctx context.Context, order *delivery.DeliveryOrder) error {
	if err := order.Validate(); err != nil {
		return err
	}

	key := order.Number().String()
	return r.session.write(ctx, func(t *tables) (ports.Change, error) {
		if !t.orders.replace(key, order.Clone()) {
			return ports.Change{}, errs.NewObjectNotFoundError("deliveryOrder", key)
		}
		return orderChange(ports.ActionUpdated, order), nil
	})
}

func (r *DeliveryOrderRepository) Get(ctx context.Context, number delivery.Number) (*delivery.DeliveryOrder, error) {
	if err := number.Validate(); err != nil {
		return nil, errs.NewObjectNotFoundErrorWithCause("deliveryOrder", number.String(), err)
	}

	var found *delivery.DeliveryOrder
	err := r.session.read(ctx, func(t *tables) error {
		o, ok := t.orders.get(number.String())
		if !ok {
			return errs.NewObjectNotFoundError("deliveryOrder", number.String())
		}
		found = o.Clone()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return found, nil
}

func (r *DeliveryOrderRepository) GetAll(ctx context.Context) ([]*delivery.DeliveryOrder, error) {
	var orders []*delivery.DeliveryOrder
	err := r.session.read(ctx, func(t *tables) error {
		rows := t.orders.all()
		orders = make([]*delivery.DeliveryOrder, 0, len(rows))
		for _, o := range rows {
			orders = append(orders, o.Clone())
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *DeliveryOrderRepository) Numbers(ctx context.Context) ([]delivery.Number, error) {
	var numbers []delivery.Number
	err := r.session.read(ctx, func(t *tables) error {
		rows := t.orders.all()
		numbers = make([]delivery.Number, 0, len(rows))
		for _, o := range rows {
			numbers = append(numbers, o.Number())
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return numbers, nil
}

func orderChange(action ports.Action, order *delivery.DeliveryOrder) ports.Change {
	return ports.Change{
		Entity:        ports.EntityDeliveryOrder,
		Action:        action,
		Key:           order.Number().String(),
		DeliveryOrder: order.Clone(),
	}
}
