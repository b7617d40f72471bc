package commands

import (
	"context"

	"sitta/internal/core/domain/model/delivery"
	"sitta/internal/core/domain/model/kernel"
	"sitta/internal/core/domain/model/reference"
)

// CreateDeliveryOrderCommandHandler opens a Pending delivery order from the
// direct form. The total is the bundle price; the number is the next free one
// for the current year.
type CreateDeliveryOrderCommandHandler struct {
	creator orderCreator
}

func NewCreateDeliveryOrderCommandHandler(
	uowFactory DeliveryOrderUoWFactory,
	catalog *reference.Catalog,
	clock kernel.Clock,
) CreateDeliveryOrderCommandHandler {
	return CreateDeliveryOrderCommandHandler{
		creator: newOrderCreator(uowFactory, catalog, clock),
	}
}

func (h *CreateDeliveryOrderCommandHandler) Handle(
	ctx context.Context,
	cmd CreateDeliveryOrderCommand,
) (*delivery.DeliveryOrder, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	bundle, err := h.creator.resolve(cmd.CourierCode(), cmd.BundleCode())
	if err != nil {
		return nil, err
	}

	details := delivery.Details{
		StudentID:     cmd.StudentID(),
		RecipientName: cmd.RecipientName(),
		CourierCode:   cmd.CourierCode(),
		BundleCode:    cmd.BundleCode(),
		ShipDate:      cmd.ShipDate(),
		Total:         bundle.Price,
	}

	return h.creator.create(ctx, details, h.creator.clock.Now())
}
