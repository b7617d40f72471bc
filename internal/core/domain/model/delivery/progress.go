package delivery

import (
	"strings"
	"time"

	"sitta/internal/pkg/errs"
)

// ProgressEvent is one entry of an order's progress history.
type ProgressEvent struct {
	at          time.Time
	description string
}

// NewProgressEvent requires a timestamp and a non-blank description.
func NewProgressEvent(at time.Time, description string) (ProgressEvent, error) {
	if at.IsZero() {
		return ProgressEvent{}, errs.NewValueIsRequiredError("timestamp")
	}
	description = strings.TrimSpace(description)
	if description == "" {
		return ProgressEvent{}, errs.NewValueIsRequiredError("description")
	}
	return ProgressEvent{at: at, description: description}, nil
}

func (e ProgressEvent) At() time.Time       { return e.at }
func (e ProgressEvent) Description() string { return e.description }

// RestoreProgressEvent rebuilds a stored event without validation. Loaded
// histories may carry blank text or timestamps that failed to parse.
func RestoreProgressEvent(at time.Time, description string) ProgressEvent {
	return ProgressEvent{at: at, description: description}
}
