package stock

import (
	"fmt"
	"strings"

	"sitta/internal/pkg/errs"
)

// Status classifies an item's quantity against its safety threshold.
type Status int

const (
	// Unknown is the zero value; Classify never returns it.
	Unknown Status = iota

	// Empty means nothing is on hand.
	Empty

	// Low means some stock is on hand but less than the safety threshold.
	Low

	// Safe means the quantity meets or exceeds the safety threshold.
	Safe
)

var statusNames = map[Status]string{
	Empty: "empty",
	Low:   "low",
	Safe:  "safe",
}

var statusLabels = map[Status]string{
	Empty: "Kosong",
	Low:   "Menipis",
	Safe:  "Aman",
}

// statusAliases maps every accepted spelling, lower-cased, to its Status.
var statusAliases = map[string]Status{
	"empty":   Empty,
	"kosong":  Empty,
	"low":     Low,
	"menipis": Low,
	"safe":    Safe,
	"aman":    Safe,
}

// Classify derives the status, in priority order:
// quantity == 0 is Empty, quantity < safety is Low, anything else is Safe.
func Classify(quantity, safety int) Status {
	if quantity == 0 {
		return Empty
	}
	if quantity < safety {
		return Low
	}
	return Safe
}

// ParseStatus accepts the English value or the Indonesian label, ignoring case
// and surrounding spaces.
func ParseStatus(s string) (Status, error) {
	if st, ok := statusAliases[strings.ToLower(strings.TrimSpace(s))]; ok {
		return st, nil
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"stock status",
		fmt.Errorf("%q is not one of empty, low, safe", s),
	)
}

// Validate rejects Unknown and out-of-range values.
func (s Status) Validate() error {
	if _, ok := statusNames[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("stock status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return "unknown"
}

// Label is the display text of the status badge.
func (s Status) Label() string {
	if label, ok := statusLabels[s]; ok {
		return label
	}
	return s.String()
}
