package commands

import (
	"errors"

	"sitta/internal/pkg/guard"
)

var ErrDeleteStockItemCommandIsNotConstructed = errors.New(
	"DeleteStockItemCommand must be created via NewDeleteStockItemCommand constructor",
)

// DeleteStockItemCommand removes the item identified by code.
type DeleteStockItemCommand struct { //nolint:recvcheck //using for validation
	code string

	guard guard.ConstructorGuard
}

func NewDeleteStockItemCommand(code string) (DeleteStockItemCommand, error) {
	code, err := required("code", code)
	if err != nil {
		return DeleteStockItemCommand{}, err
	}
	return DeleteStockItemCommand{code: code, guard: guard.NewConstructorGuard()}, nil
}

func (c DeleteStockItemCommand) Validate() error {
	return c.guard.Validate(ErrDeleteStockItemCommandIsNotConstructed)
}

func (c DeleteStockItemCommand) Code() string {
	return c.code
}
