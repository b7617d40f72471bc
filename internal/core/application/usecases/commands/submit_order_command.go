package commands

import (
	"errors"
	"strings"

	"sitta/internal/pkg/guard"
)

var ErrSubmitOrderCommandIsNotConstructed = errors.New(
	"SubmitOrderCommand must be created via NewSubmitOrderCommand constructor",
)

// OrderForm is the student-facing order form as submitted.
type OrderForm struct {
	StudentID   string
	Name        string
	Address     string
	Phone       string
	Email       string
	BundleCode  string
	CourierCode string
	Note        string
}

// SubmitOrderCommand is a validated OrderForm. Address, phone, email and note
// are checked but not carried onto the delivery order, which has no place for them.
type SubmitOrderCommand struct { //nolint:recvcheck //using for validation
	form OrderForm

	guard guard.ConstructorGuard
}

// NewSubmitOrderCommand validates the order form.
//
// Rules:
//   - student id: required, at least 9 digits
//   - name, address, bundle, courier: required
//   - phone: required, 10 to 15 of digits, '-' or '+'
//   - email: optional, must look like an address when given
func NewSubmitOrderCommand(in OrderForm) (SubmitOrderCommand, error) {
	var form OrderForm
	var errList [7]error

	form.StudentID, errList[0] = validStudentID(in.StudentID)
	form.Name, errList[1] = required("name", in.Name)
	form.Address, errList[2] = required("address", in.Address)
	form.Phone, errList[3] = validPhone(in.Phone)
	form.Email, errList[4] = validEmail(in.Email)
	form.BundleCode, errList[5] = required("bundleCode", in.BundleCode)
	form.CourierCode, errList[6] = required("courierCode", in.CourierCode)
	form.Note = strings.TrimSpace(in.Note)

	if err := errors.Join(errList[:]...); err != nil {
		return SubmitOrderCommand{}, err
	}

	return SubmitOrderCommand{form: form, guard: guard.NewConstructorGuard()}, nil
}

func (c SubmitOrderCommand) Validate() error {
	return c.guard.Validate(ErrSubmitOrderCommandIsNotConstructed)
}

// Form returns the normalised form.
func (c SubmitOrderCommand) Form() OrderForm {
	return c.form
}
