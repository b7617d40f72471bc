package commands

import (
	"errors"

	"sitta/internal/core/domain/model/delivery"
	"sitta/internal/pkg/guard"
)

var ErrUpdateDeliveryStatusCommandIsNotConstructed = errors.New(
	"UpdateDeliveryStatusCommand must be created via NewUpdateDeliveryStatusCommand constructor",
)

// UpdateDeliveryStatusCommand moves an order to a new status. The status text is
// parsed here, so unknown values never reach the aggregate.
type UpdateDeliveryStatusCommand struct { //nolint:recvcheck //using for validation
	number string
	status delivery.Status

	guard guard.ConstructorGuard
}

func NewUpdateDeliveryStatusCommand(number, status string) (UpdateDeliveryStatusCommand, error) {
	n, numberErr := required("number", number)

	var parsed delivery.Status
	s, statusErr := required("status", status)
	if statusErr == nil {
		parsed, statusErr = delivery.ParseStatus(s)
	}

	if err := errors.Join(numberErr, statusErr); err != nil {
		return UpdateDeliveryStatusCommand{}, err
	}
	return UpdateDeliveryStatusCommand{number: n, status: parsed, guard: guard.NewConstructorGuard()}, nil
}

func (c UpdateDeliveryStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateDeliveryStatusCommandIsNotConstructed)
}

func (c UpdateDeliveryStatusCommand) Number() string          { return c.number }
func (c UpdateDeliveryStatusCommand) Status() delivery.Status { return c.status }
