package delivery

import (
	"fmt"
	"strings"

	"sitta/internal/pkg/errs"
)

// Status represents the lifecycle state of a delivery order.
//
// State transitions:
//
//	Pending ──> InTransit ──> Delivered
//	   │            │
//	   └────────────┴──> Cancelled
//
// Unknown is only produced when loading records whose status text is not
// recognised. Such an order may be moved to any valid status.
type Status int

const (
	// Unknown represents an unrecognised status read from stored data.
	Unknown Status = iota

	// Pending is the status of every newly created order.
	Pending

	// InTransit indicates the courier has picked the bundle up.
	InTransit

	// Delivered is final.
	Delivered

	// Cancelled is final.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Pending:   "Pending",
		InTransit: "InTransit",
		Delivered: "Delivered",
		Cancelled: "Cancelled",
	}
}

func getStatusLabels() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Pending:   "Pending",
		InTransit: "Dalam Perjalanan",
		Delivered: "Terkirim",
		Cancelled: "Dibatalkan",
	}
}

func getAllowedTransitions() map[Status][]Status {
	//nolint:exhaustive // terminal statuses have no outgoing transitions
	return map[Status][]Status{
		Unknown:   {Pending, InTransit, Delivered, Cancelled},
		Pending:   {InTransit, Cancelled},
		InTransit: {Delivered, Cancelled},
	}
}

var statusAliases = map[string]Status{
	"pending":          Pending,
	"intransit":        InTransit,
	"in transit":       InTransit,
	"in_transit":       InTransit,
	"dalam perjalanan": InTransit,
	"delivered":        Delivered,
	"terkirim":         Delivered,
	"cancelled":        Cancelled,
	"canceled":         Cancelled,
	"dibatalkan":       Cancelled,
}

// ParseStatus maps English names and the Indonesian labels used in the data
// file onto a Status. Matching ignores case and surrounding spaces.
func ParseStatus(s string) (Status, error) {
	if status, ok := statusAliases[strings.ToLower(strings.TrimSpace(s))]; ok {
		return status, nil
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status",
		fmt.Errorf("%q is not a known status", s),
	)
}

// Statuses lists the valid statuses in lifecycle order.
func Statuses() []Status {
	return []Status{Pending, InTransit, Delivered, Cancelled}
}

// Validate rejects Unknown and out-of-range values.
func (s Status) Validate() error {
	if s <= Unknown || s > Cancelled {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Label is the Indonesian display text.
func (s Status) Label() string {
	if str, ok := getStatusLabels()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal is true for Delivered and Cancelled.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// CanTransitionTo reports whether next is reachable in one step.
func (s Status) CanTransitionTo(next Status) bool {
	for _, allowed := range getAllowedTransitions()[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// TransitionTo returns next if the move is allowed.
func (s Status) TransitionTo(next Status) (Status, error) {
	if err := next.Validate(); err != nil {
		return 0, err
	}
	if !s.CanTransitionTo(next) {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("cannot change status from %s to %s", s, next),
		)
	}
	return next, nil
}
