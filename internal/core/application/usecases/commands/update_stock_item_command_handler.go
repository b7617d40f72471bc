package commands

import (
	"context"

	"sitta/internal/core/domain/model/stock"
)

// UpdateStockItemCommandHandler updates an item in place. A missing code fails
// with errs.ErrObjectNotFound.
type UpdateStockItemCommandHandler struct {
	uowFactory StockUoWFactory
}

func NewUpdateStockItemCommandHandler(uowFactory StockUoWFactory) UpdateStockItemCommandHandler {
	return UpdateStockItemCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h *UpdateStockItemCommandHandler) Handle(ctx context.Context, cmd UpdateStockItemCommand) (*stock.Item, error) {
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

	repo := uow.StockRepository()
	item, err := repo.Get(ctx, cmd.Code())
	if err != nil {
		return nil, err
	}

	if err = item.Update(cmd.Attributes()); err != nil {
		return nil, err
	}

	if err = repo.Update(ctx, item); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return item, nil
}
