package db

import (
	"testing"

	"celebra/internal/config"
	"celebra/models"
)

func TestInitializeRequiresURL(t *testing.T) {
	t.Parallel()

	if _, err := Initialize(config.DatabaseConfig{}); err == nil {
		t.Fatal("expected error for empty database URL")
	}
}

func TestConfigureOpensAndMigratesSqlite(t *testing.T) {
	t.Parallel()

	database, err := Configure(config.DatabaseConfig{URL: "file::memory:?cache=shared"})
	if err != nil {
		t.Fatalf("Configure() error = %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := database.DB(); err == nil {
			sqlDB.Close()
		}
	})

	slot := models.CelebrationSlot{ID: models.CurrentSlotID, Payload: `{"active":false}`}
	if err := database.Save(&slot).Error; err != nil {
		t.Fatalf("expected migrated slot table to accept writes: %v", err)
	}
}

func TestAutoMigrateRejectsNilHandle(t *testing.T) {
	t.Parallel()

	if err := AutoMigrate(nil); err == nil {
		t.Fatal("expected error for nil database handle")
	}
}
