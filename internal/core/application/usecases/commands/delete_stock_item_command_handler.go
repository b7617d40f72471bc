package commands

import (
	"context"
)

// DeleteStockItemCommandHandler removes an item. A missing code fails with
// errs.ErrObjectNotFound.
type DeleteStockItemCommandHandler struct {
	uowFactory StockUoWFactory
}

func NewDeleteStockItemCommandHandler(uowFactory StockUoWFactory) DeleteStockItemCommandHandler {
	return DeleteStockItemCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h *DeleteStockItemCommandHandler) Handle(ctx context.Context, cmd DeleteStockItemCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.StockRepository().Delete(ctx, cmd.Code()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
