package commands

import (
	"errors"

	"sitta/internal/core/domain/model/stock"
	"sitta/internal/pkg/guard"
)

var ErrAddStockItemCommandIsNotConstructed = errors.New(
	"AddStockItemCommand must be created via NewAddStockItemCommand constructor",
)

// AddStockItemCommand registers a new stock line.
//
// Example:
//
//	cmd, err := NewAddStockItemCommand(StockItemInput{Code: "EKMA4116", ...})
//	if err != nil {
//	    return fmt.Errorf("invalid stock form: %w", err)
//	}
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return err
//	}
type AddStockItemCommand struct { //nolint:recvcheck //using for validation
	form stockItemForm

	guard guard.ConstructorGuard
}

// NewAddStockItemCommand validates the stock form. Every failing field is reported.
func NewAddStockItemCommand(in StockItemInput) (AddStockItemCommand, error) {
	form, err := newStockItemForm(in)
	if err != nil {
		return AddStockItemCommand{}, err
	}
	return AddStockItemCommand{form: form, guard: guard.NewConstructorGuard()}, nil
}

func (c AddStockItemCommand) Validate() error {
	return c.guard.Validate(ErrAddStockItemCommandIsNotConstructed)
}

func (c AddStockItemCommand) Code() string {
	return c.form.code
}

func (c AddStockItemCommand) Attributes() stock.Attributes {
	return c.form.attrs
}
