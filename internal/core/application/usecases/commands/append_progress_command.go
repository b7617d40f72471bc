package commands

import (
	"errors"

	"sitta/internal/pkg/guard"
)

var ErrAppendProgressCommandIsNotConstructed = errors.New(
	"AppendProgressCommand must be created via NewAppendProgressCommand constructor",
)

// AppendProgressCommand adds a free-text progress entry to an order.
type AppendProgressCommand struct { //nolint:recvcheck //using for validation
	number      string
	description string

	guard guard.ConstructorGuard
}

func NewAppendProgressCommand(number, description string) (AppendProgressCommand, error) {
	n, numberErr := required("number", number)
	d, descriptionErr := required("description", description)
	if err := errors.Join(numberErr, descriptionErr); err != nil {
		return AppendProgressCommand{}, err
	}
	return AppendProgressCommand{number: n, description: d, guard: guard.NewConstructorGuard()}, nil
}

func (c AppendProgressCommand) Validate() error {
	return c.guard.Validate(ErrAppendProgressCommandIsNotConstructed)
}

func (c AppendProgressCommand) Number() string      { return c.number }
func (c AppendProgressCommand) Description() string { return c.description }
