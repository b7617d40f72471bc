package delivery

import (
	"errors"
	"slices"
	"strings"
	"time"

	"sitta/internal/core/domain/model/kernel"
	"sitta/internal/pkg/errs"
	"sitta/internal/pkg/guard"
)

const (
	// InitialProgressDescription seeds the history of every new order.
	InitialProgressDescription = "order received and processing"

	statusChangedPrefix = "status changed to: "
)

// ErrDeliveryOrderIsNotConstructed is returned when an order bypassed the constructors.
var ErrDeliveryOrderIsNotConstructed = errors.New(
	"DeliveryOrder must be created via NewDeliveryOrder or RestoreDeliveryOrder",
)

// Details are the fields fixed at creation time.
type Details struct {
	StudentID     string
	RecipientName string
	CourierCode   string
	BundleCode    string
	ShipDate      time.Time
	Total         kernel.Money
}

// DeliveryOrder is the aggregate root for one dispatch.
//
// Invariants:
//   - number never changes
//   - progress is never empty for orders built by NewDeliveryOrder
//   - progress only grows, in insertion order
type DeliveryOrder struct {
	number   Number
	details  Details
	status   Status
	progress []ProgressEvent
	guard    guard.ConstructorGuard
}

// NewDeliveryOrder creates a Pending order whose history holds the initial event
// stamped at the given time.
func NewDeliveryOrder(number Number, details Details, at time.Time) (*DeliveryOrder, error) {
	initial, eventErr := NewProgressEvent(at, InitialProgressDescription)

	if err := errors.Join(
		number.Validate(),
		validateDetails(details),
		eventErr,
	); err != nil {
		return nil, err
	}

	return &DeliveryOrder{
		number:   number,
		details:  normalizeDetails(details),
		status:   Pending,
		progress: []ProgressEvent{initial},
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// RestoreDeliveryOrder rebuilds an order from stored data. Only the number is
// checked; odd values elsewhere are kept as they are.
func RestoreDeliveryOrder(
	number Number,
	details Details,
	status Status,
	progress []ProgressEvent,
) (*DeliveryOrder, error) {
	if err := number.Validate(); err != nil {
		return nil, err
	}
	if status.Validate() != nil {
		status = Unknown
	}
	if details.Total.Validate() != nil {
		details.Total = kernel.ZeroMoney()
	}

	return &DeliveryOrder{
		number:   number,
		details:  details,
		status:   status,
		progress: slices.Clone(progress),
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the order was built by a constructor.
func (o *DeliveryOrder) Validate() error {
	if o == nil {
		return ErrDeliveryOrderIsNotConstructed
	}
	return o.guard.Validate(ErrDeliveryOrderIsNotConstructed)
}

// AppendProgress adds an event to the end of the history. The status is not changed.
func (o *DeliveryOrder) AppendProgress(at time.Time, description string) error {
	event, err := NewProgressEvent(at, description)
	if err != nil {
		return err
	}
	o.progress = append(o.progress, event)
	return nil
}

// ChangeStatus moves the order to next and records the change in the history.
func (o *DeliveryOrder) ChangeStatus(next Status, at time.Time) error {
	status, err := o.status.TransitionTo(next)
	if err != nil {
		return err
	}

	event, err := NewProgressEvent(at, statusChangedPrefix+status.String())
	if err != nil {
		return err
	}

	o.status = status
	o.progress = append(o.progress, event)
	return nil
}

// Clone returns a copy that shares no history slice with the original.
func (o *DeliveryOrder) Clone() *DeliveryOrder {
	c := *o
	c.progress = slices.Clone(o.progress)
	return &c
}

func (o *DeliveryOrder) Number() Number        { return o.number }
func (o *DeliveryOrder) StudentID() string     { return o.details.StudentID }
func (o *DeliveryOrder) RecipientName() string { return o.details.RecipientName }
func (o *DeliveryOrder) CourierCode() string   { return o.details.CourierCode }
func (o *DeliveryOrder) BundleCode() string    { return o.details.BundleCode }
func (o *DeliveryOrder) ShipDate() time.Time   { return o.details.ShipDate }
func (o *DeliveryOrder) Total() kernel.Money   { return o.details.Total }
func (o *DeliveryOrder) Status() Status        { return o.status }
func (o *DeliveryOrder) Details() Details      { return o.details }

// Progress returns a copy of the history, oldest first.
func (o *DeliveryOrder) Progress() []ProgressEvent {
	return slices.Clone(o.progress)
}

// LastProgress returns the newest event, if any.
func (o *DeliveryOrder) LastProgress() (ProgressEvent, bool) {
	if len(o.progress) == 0 {
		return ProgressEvent{}, false
	}
	return o.progress[len(o.progress)-1], true
}

func validateDetails(d Details) error {
	var errList []error
	if strings.TrimSpace(d.StudentID) == "" {
		errList = append(errList, errs.NewValueIsRequiredError("studentID"))
	}
	if strings.TrimSpace(d.RecipientName) == "" {
		errList = append(errList, errs.NewValueIsRequiredError("recipientName"))
	}
	if strings.TrimSpace(d.CourierCode) == "" {
		errList = append(errList, errs.NewValueIsRequiredError("courierCode"))
	}
	if strings.TrimSpace(d.BundleCode) == "" {
		errList = append(errList, errs.NewValueIsRequiredError("bundleCode"))
	}
	if d.ShipDate.IsZero() {
		errList = append(errList, errs.NewValueIsRequiredError("shipDate"))
	}
	if err := d.Total.Validate(); err != nil {
		errList = append(errList, errs.NewValueIsRequiredErrorWithCause("total", err))
	}
	return errors.Join(errList...)
}

func normalizeDetails(d Details) Details {
	d.StudentID = strings.TrimSpace(d.StudentID)
	d.RecipientName = strings.TrimSpace(d.RecipientName)
	d.CourierCode = strings.TrimSpace(d.CourierCode)
	d.BundleCode = strings.TrimSpace(d.BundleCode)
	return d
}
