package mailbox

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	applog "celebra/internal/log"
	"celebra/models"

	"gorm.io/gorm"
)

// Database persists the mailbox slot in a single fixed-key row and delegates
// in-process fan-out to a Memory hub. A server restart therefore keeps the
// active celebration; no history is kept, publishes overwrite the row.
type Database struct {
	db  *gorm.DB
	hub *Memory
}

// NewDatabase wraps an opened, migrated gorm handle and reloads whatever the
// slot currently holds.
func NewDatabase(ctx context.Context, gdb *gorm.DB) (*Database, error) {
	if gdb == nil {
		return nil, fmt.Errorf("mailbox: database handle is nil")
	}

	store := &Database{db: gdb, hub: NewMemory()}

	state, err := store.load(ctx)
	if err != nil {
		return nil, err
	}
	if state != nil {
		store.hub.restore(state)
		applog.Debug(ctx, "mailbox slot restored", "active", state.Active)
	}

	return store, nil
}

// Publish implements Store. A persistence failure is logged and reported, but
// connected displays are still notified so the venue keeps working through a
// transient database outage.
func (d *Database) Publish(ctx context.Context, c models.Celebration) error {
	state := models.ActiveState(c)
	err := d.save(ctx, state)
	d.hub.broadcast(&state)
	applog.Debug(ctx, "celebration published", "guest", c.GuestName, "occasion", c.Occasion, "theme", c.ThemeID)
	return err
}

// Reset implements Store.
func (d *Database) Reset(ctx context.Context) error {
	state := models.StandbyState()
	err := d.save(ctx, state)
	d.hub.broadcast(&state)
	applog.Debug(ctx, "celebration reset to standby")
	return err
}

// Subscribe implements Store.
func (d *Database) Subscribe(fn func(*models.State)) UnsubscribeFunc {
	return d.hub.Subscribe(fn)
}

// Close implements Store.
func (d *Database) Close() error {
	if err := d.hub.Close(); err != nil {
		return err
	}
	sqlDB, err := d.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func (d *Database) save(ctx context.Context, state models.State) error {
	payload, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("mailbox: encode state: %w", err)
	}

	slot := models.CelebrationSlot{
		ID:      models.CurrentSlotID,
		Payload: string(payload),
	}
	if err := d.db.WithContext(ctx).Save(&slot).Error; err != nil {
		applog.Error(ctx, "failed to persist mailbox slot", "error", err)
		return fmt.Errorf("mailbox: persist slot: %w", err)
	}
	return nil
}

func (d *Database) load(ctx context.Context) (*models.State, error) {
	var slot models.CelebrationSlot
	err := d.db.WithContext(ctx).First(&slot, models.CurrentSlotID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("mailbox: load slot: %w", err)
	}

	var state models.State
	if err := json.Unmarshal([]byte(slot.Payload), &state); err != nil {
		// A corrupt payload should not take the mailbox down; treat it
		// as never written.
		applog.Warn(ctx, "discarding unreadable mailbox slot", "error", err)
		return nil, nil
	}
	return &state, nil
}
