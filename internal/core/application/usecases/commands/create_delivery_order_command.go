package commands

import (
	"errors"
	"time"

	"sitta/internal/pkg/errs"
	"sitta/internal/pkg/guard"
)

var ErrCreateDeliveryOrderCommandIsNotConstructed = errors.New(
	"CreateDeliveryOrderCommand must be created via NewCreateDeliveryOrderCommand constructor",
)

// CreateDeliveryOrderCommand is the direct delivery order form used by staff.
// The number and total are not part of it; both are derived when handled.
//
// Example:
//
//	cmd, err := NewCreateDeliveryOrderCommand("123456789", "Rina", "REG", "PAKET-UT-001", shipDate)
//	if err != nil {
//	    return fmt.Errorf("invalid delivery order: %w", err)
//	}
//	order, err := handler.Handle(ctx, cmd)
type CreateDeliveryOrderCommand struct { //nolint:recvcheck //using for validation
	studentID     string
	recipientName string
	courierCode   string
	bundleCode    string
	shipDate      time.Time

	guard guard.ConstructorGuard
}

func NewCreateDeliveryOrderCommand(
	studentID, recipientName, courierCode, bundleCode string,
	shipDate time.Time,
) (CreateDeliveryOrderCommand, error) {
	cmd := CreateDeliveryOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setStudentID(studentID),
		cmd.setRecipientName(recipientName),
		cmd.setCourierCode(courierCode),
		cmd.setBundleCode(bundleCode),
		cmd.setShipDate(shipDate),
	); err != nil {
		return CreateDeliveryOrderCommand{}, err
	}

	return cmd, nil
}

func (c CreateDeliveryOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateDeliveryOrderCommandIsNotConstructed)
}

func (c CreateDeliveryOrderCommand) StudentID() string     { return c.studentID }
func (c CreateDeliveryOrderCommand) RecipientName() string { return c.recipientName }
func (c CreateDeliveryOrderCommand) CourierCode() string   { return c.courierCode }
func (c CreateDeliveryOrderCommand) BundleCode() string    { return c.bundleCode }
func (c CreateDeliveryOrderCommand) ShipDate() time.Time   { return c.shipDate }

func (c *CreateDeliveryOrderCommand) setStudentID(studentID string) error {
	v, err := validStudentID(studentID)
	c.studentID = v
	return err
}

func (c *CreateDeliveryOrderCommand) setRecipientName(name string) error {
	v, err := required("recipientName", name)
	c.recipientName = v
	return err
}

func (c *CreateDeliveryOrderCommand) setCourierCode(code string) error {
	v, err := required("courierCode", code)
	c.courierCode = v
	return err
}

func (c *CreateDeliveryOrderCommand) setBundleCode(code string) error {
	v, err := required("bundleCode", code)
	c.bundleCode = v
	return err
}

func (c *CreateDeliveryOrderCommand) setShipDate(shipDate time.Time) error {
	if shipDate.IsZero() {
		return errs.NewValueIsRequiredError("shipDate")
	}
	c.shipDate = dateOf(shipDate)
	return nil
}
