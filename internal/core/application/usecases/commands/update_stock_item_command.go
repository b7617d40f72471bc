package commands

import (
	"errors"

	"sitta/internal/core/domain/model/stock"
	"sitta/internal/pkg/guard"
)

var ErrUpdateStockItemCommandIsNotConstructed = errors.New(
	"UpdateStockItemCommand must be created via NewUpdateStockItemCommand constructor",
)

// UpdateStockItemCommand replaces the attributes of the item identified by code.
// The code itself never changes.
type UpdateStockItemCommand struct { //nolint:recvcheck //using for validation
	form stockItemForm

	guard guard.ConstructorGuard
}

func NewUpdateStockItemCommand(in StockItemInput) (UpdateStockItemCommand, error) {
	form, err := newStockItemForm(in)
	if err != nil {
		return UpdateStockItemCommand{}, err
	}
	return UpdateStockItemCommand{form: form, guard: guard.NewConstructorGuard()}, nil
}

func (c UpdateStockItemCommand) Validate() error {
	return c.guard.Validate(ErrUpdateStockItemCommandIsNotConstructed)
}

func (c UpdateStockItemCommand) Code() string {
	return c.form.code
}

func (c UpdateStockItemCommand) Attributes() stock.Attributes {
	return c.form.attrs
}
