package commands

import (
	"context"

	"sitta/internal/core/domain/model/delivery"
	"sitta/internal/core/domain/model/kernel"
	"sitta/internal/core/domain/model/reference"
)

// SubmitOrderCommandHandler turns an order form into a Pending delivery order
// shipping today, priced at the bundle price.
type SubmitOrderCommandHandler struct {
	creator orderCreator
}

func NewSubmitOrderCommandHandler(
	uowFactory DeliveryOrderUoWFactory,
	catalog *reference.Catalog,
	clock kernel.Clock,
) SubmitOrderCommandHandler {
	return SubmitOrderCommandHandler{
		creator: newOrderCreator(uowFactory, catalog, clock),
	}
}

func (h *SubmitOrderCommandHandler) Handle(ctx context.Context, cmd SubmitOrderCommand) (*delivery.DeliveryOrder, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	form := cmd.Form()
	bundle, err := h.creator.resolve(form.CourierCode, form.BundleCode)
	if err != nil {
		return nil, err
	}

	now := h.creator.clock.Now()
	details := delivery.Details{
		StudentID:     form.StudentID,
		RecipientName: form.Name,
		CourierCode:   form.CourierCode,
		BundleCode:    form.BundleCode,
		ShipDate:      dateOf(now),
		Total:         bundle.Price,
	}

	return h.creator.create(ctx, details, now)
}
