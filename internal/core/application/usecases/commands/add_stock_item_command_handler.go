package commands

import (
	"context"

	"sitta/internal/core/domain/model/stock"
)

// AddStockItemCommandHandler adds an item to the stock collection. A duplicate
// code fails with errs.ErrObjectAlreadyExists and changes nothing.
type AddStockItemCommandHandler struct {
	uowFactory StockUoWFactory
}

func NewAddStockItemCommandHandler(uowFactory StockUoWFactory) AddStockItemCommandHandler {
	return AddStockItemCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h *AddStockItemCommandHandler) Handle(ctx context.Context, cmd AddStockItemCommand) (*stock.Item, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	item, err := stock.NewItem(cmd.Code(), cmd.Attributes())
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.StockRepository().Add(ctx, item); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return item, nil
}
