package commands

import (
	"context"

	"sitta/internal/core/domain/model/delivery"
	"sitta/internal/core/domain/model/kernel"
)

// UpdateDeliveryStatusCommandHandler changes an order's status. A transition
// outside the lifecycle fails with errs.ErrValueIsInvalid; on success exactly one
// progress event describing the change is appended.
type UpdateDeliveryStatusCommandHandler struct {
	uowFactory DeliveryOrderUoWFactory
	clock      kernel.Clock
}

func NewUpdateDeliveryStatusCommandHandler(
	uowFactory DeliveryOrderUoWFactory,
	clock kernel.Clock,
) UpdateDeliveryStatusCommandHandler {
	return UpdateDeliveryStatusCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

func (h *UpdateDeliveryStatusCommandHandler) Handle(
	ctx context.Context,
	cmd UpdateDeliveryStatusCommand,
) (*delivery.DeliveryOrder, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.DeliveryOrderRepository()
	order, err := getOrder(ctx, repo, cmd.Number())
	if err != nil {
		return nil, err
	}

	if err = order.ChangeStatus(cmd.Status(), h.clock.Now()); err != nil {
		return nil, err
	}

	if err = repo.Update(ctx, order); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return order, nil
}
