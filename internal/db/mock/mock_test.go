package mock

import (
	"context"
	"encoding/json"
	"testing"

	"celebra/models"
)

func TestNewSeedsCurrentSlot(t *testing.T) {
	db, err := New(context.Background())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})

	var slot models.CelebrationSlot
	if err := db.First(&slot, models.CurrentSlotID).Error; err != nil {
		t.Fatalf("expected seeded slot row: %v", err)
	}

	var state models.State
	if err := json.Unmarshal([]byte(slot.Payload), &state); err != nil {
		t.Fatalf("slot payload is not valid state JSON: %v", err)
	}
	if !state.Active || state.Celebration == nil {
		t.Fatal("expected seeded slot to hold an active celebration")
	}
	if state.Celebration.Occasion != models.OccasionBirthday {
		t.Fatalf("seeded occasion = %q", state.Celebration.Occasion)
	}
}
