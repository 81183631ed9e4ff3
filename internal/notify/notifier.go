package notify

import "context"

// Notifier delivers a failure message to an external destination.
// The pipeline depends only on this contract, never on a concrete
// ticketing system.
type Notifier interface {
	Notify(ctx context.Context, message string) error
}

// NopNotifier discards messages. Used when no notification target is
// configured and in tests.
type NopNotifier struct{}

// Notify does nothing
func (NopNotifier) Notify(ctx context.Context, message string) error {
	return nil
}
