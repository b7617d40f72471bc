package commands

import (
	"context"
	"time"

	"sitta/internal/core/domain/model/delivery"
	"sitta/internal/core/domain/model/kernel"
	"sitta/internal/core/domain/model/reference"
	"sitta/internal/core/domain/services"
	"sitta/internal/pkg/errs"
)

// orderCreator holds the steps shared by both forms that open a delivery order:
// resolve the bundle price, take the next number and store the order in one
// unit of work so the number cannot be handed out twice.
type orderCreator struct {
	uowFactory DeliveryOrderUoWFactory
	catalog    *reference.Catalog
	clock      kernel.Clock
	numbers    services.NumberGenerator
}

func newOrderCreator(uowFactory DeliveryOrderUoWFactory, catalog *reference.Catalog, clock kernel.Clock) orderCreator {
	return orderCreator{
		uowFactory: uowFactory,
		catalog:    catalog,
		clock:      clock,
		numbers:    services.NewNumberGenerator(),
	}
}

// resolve checks that courier and bundle exist and returns the bundle.
func (c orderCreator) resolve(courierCode, bundleCode string) (reference.Bundle, error) {
	if _, ok := c.catalog.Courier(courierCode); !ok {
		return reference.Bundle{}, errs.NewObjectNotFoundError("courier", courierCode)
	}
	bundle, ok := c.catalog.Bundle(bundleCode)
	if !ok {
		return reference.Bundle{}, errs.NewObjectNotFoundError("bundle", bundleCode)
	}
	return bundle, nil
}

func (c orderCreator) create(ctx context.Context, details delivery.Details, now time.Time) (*delivery.DeliveryOrder, error) {
	uow := c.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.DeliveryOrderRepository()
	existing, err := repo.Numbers(ctx)
	if err != nil {
		return nil, err
	}

	number, err := c.numbers.Next(existing, now.Year())
	if err != nil {
		return nil, err
	}

	order, err := delivery.NewDeliveryOrder(number, details, now)
	if err != nil {
		return nil, err
	}

	if err = repo.Add(ctx, order); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return order, nil
}

// dateOf drops the time of day, keeping the location.
func dateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
