// Package notifier acknowledges committed changes. LogNotifier records each
// change in the service log, standing in for the save a server backend would
// perform. KafkaNotifier publishes the same changes as JSON envelopes.
package notifier

import (
	"context"
	"errors"
	"log/slog"

	"sitta/internal/core/ports"
)

var (
	_ ports.ChangeNotifier = (*LogNotifier)(nil)
	_ ports.ChangeNotifier = Notifiers(nil)
)

type LogNotifier struct {
	logger *slog.Logger
}

func NewLogNotifier(logger *slog.Logger) *LogNotifier {
	return &LogNotifier{logger: logger.With("component", "change_notifier")}
}

func (n *LogNotifier) Notify(ctx context.Context, changes []ports.Change) error {
	for _, c := range changes {
		n.logger.InfoContext(ctx, "data saved",
			"entity", string(c.Entity),
			"action", string(c.Action),
			"key", c.Key,
			"at", c.At,
		)
	}
	return nil
}

// Notifiers fans changes out to every notifier and joins their errors.
type Notifiers []ports.ChangeNotifier

func (ns Notifiers) Notify(ctx context.Context, changes []ports.Change) error {
	var errList []error
	for _, n := range ns {
		if err := n.Notify(ctx, changes); err != nil {
			errList = append(errList, err)
		}
	}
	return errors.Join(errList...)
}
