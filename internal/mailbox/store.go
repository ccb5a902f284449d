// Package mailbox implements the single-slot celebration store shared by
// staff and display clients: whatever was written last is the one thing every
// subscriber sees.
package mailbox

import (
	"context"
	"strings"

	"celebra/internal/config"
	"celebra/internal/db"
	"celebra/internal/db/mock"
	applog "celebra/internal/log"
	"celebra/models"

	"gorm.io/gorm"
)

// UnsubscribeFunc stops delivery for one subscription. Calling it more than
// once is safe.
type UnsubscribeFunc func()

// Store is the single-slot, last-write-wins celebration mailbox.
type Store interface {
	// Publish overwrites the current slot with an active celebration and
	// notifies every subscriber.
	Publish(ctx context.Context, c models.Celebration) error
	// Reset overwrites the slot with the explicit standby sentinel, so
	// subscribers receive a deterministic "nothing to show" signal rather
	// than an ambiguous absence.
	Reset(ctx context.Context) error
	// Subscribe registers fn, invoking it once immediately with the current
	// state (nil if nothing was ever written) and again on every change.
	// Callbacks must not call back into the store.
	Subscribe(fn func(*models.State)) UnsubscribeFunc
	// Close releases any underlying resources.
	Close() error
}

// Backend names accepted by Open.
const (
	BackendMemory   = "memory"
	BackendDatabase = "database"
	BackendRedis    = "redis"
)

// Open builds the configured store. Misconfiguration never surfaces as an
// error: the caller gets a Noop store and a logged warning, keeping the rest
// of the application operable (staff can still fill the form; displays simply
// never update).
func Open(ctx context.Context, cfg config.StoreConfig) Store {
	switch strings.ToLower(strings.TrimSpace(cfg.Backend)) {
	case "", BackendMemory:
		applog.Info(ctx, "mailbox using in-memory store")
		return NewMemory()
	case BackendDatabase:
		gdb, err := openGorm(ctx, cfg.Database)
		if err != nil {
			applog.Warn(ctx, "mailbox database unavailable, running in mock mode", "error", err)
			return NewNoop()
		}
		store, err := NewDatabase(ctx, gdb)
		if err != nil {
			applog.Warn(ctx, "mailbox database slot unavailable, running in mock mode", "error", err)
			return NewNoop()
		}
		applog.Info(ctx, "mailbox using database store")
		return store
	case BackendRedis:
		store, err := NewRedis(ctx, cfg.Redis.URL)
		if err != nil {
			applog.Warn(ctx, "mailbox redis unavailable, running in mock mode", "error", err)
			return NewNoop()
		}
		applog.Info(ctx, "mailbox using redis store")
		return store
	default:
		applog.Warn(ctx, "unknown mailbox backend, running in mock mode", "backend", cfg.Backend)
		return NewNoop()
	}
}

func openGorm(ctx context.Context, cfg config.DatabaseConfig) (*gorm.DB, error) {
	if cfg.UseMock {
		return mock.New(ctx)
	}
	return db.Configure(cfg)
}
