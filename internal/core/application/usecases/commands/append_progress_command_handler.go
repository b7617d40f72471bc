package commands

import (
	"context"

	"sitta/internal/core/domain/model/delivery"
	"sitta/internal/core/domain/model/kernel"
	"sitta/internal/core/ports"
	"sitta/internal/pkg/errs"
)

// AppendProgressCommandHandler appends {now, description} to the order's
// history. The status is left alone and repeated calls append repeatedly.
type AppendProgressCommandHandler struct {
	uowFactory DeliveryOrderUoWFactory
	clock      kernel.Clock
}

func NewAppendProgressCommandHandler(uowFactory DeliveryOrderUoWFactory, clock kernel.Clock) AppendProgressCommandHandler {
	return AppendProgressCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

func (h *AppendProgressCommandHandler) Handle(ctx context.Context, cmd AppendProgressCommand) (*delivery.DeliveryOrder, error) {
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

	if err = order.AppendProgress(h.clock.Now(), cmd.Description()); err != nil {
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

// getOrder loads an order by its formatted number. A number that does not parse
// cannot belong to any order, so it is reported as not found.
func getOrder(ctx context.Context, repo ports.DeliveryOrderRepository, raw string) (*delivery.DeliveryOrder, error) {
	number, err := delivery.ParseNumber(raw)
	if err != nil {
		return nil, errs.NewObjectNotFoundErrorWithCause("deliveryOrder", raw, err)
	}
	return repo.Get(ctx, number)
}
