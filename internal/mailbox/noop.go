package mailbox

import (
	"context"

	applog "celebra/internal/log"
	"celebra/models"
)

// Noop is the mock-mode store selected when the configured backend cannot be
// initialised. Every operation logs and succeeds; subscribers receive a single
// nil state and then silence. The rest of the application stays operable.
type Noop struct{}

// NewNoop builds the mock-mode store.
func NewNoop() *Noop {
	return &Noop{}
}

// Publish implements Store.
func (*Noop) Publish(ctx context.Context, c models.Celebration) error {
	applog.Info(ctx, "mock mode: celebration not delivered", "guest", c.GuestName, "occasion", c.Occasion)
	return nil
}

// Reset implements Store.
func (*Noop) Reset(ctx context.Context) error {
	applog.Info(ctx, "mock mode: reset not delivered")
	return nil
}

// Subscribe implements Store.
func (*Noop) Subscribe(fn func(*models.State)) UnsubscribeFunc {
	fn(nil)
	return func() {}
}

// Close implements Store.
func (*Noop) Close() error {
	return nil
}
