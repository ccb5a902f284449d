package mock

import (
	"context"
	"encoding/json"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	applog "celebra/internal/log"
	"celebra/models"
)

// New returns an in-memory sqlite database seeded with a sample celebration,
// so a development setup shows something on the display immediately.
func New(ctx context.Context) (*gorm.DB, error) {
	applog.Debug(ctx, "initialising mock database")

	db, err := gorm.Open(sqlite.Open("file:celebra-mock?mode=memory&cache=shared"), &gorm.Config{
		Logger:                                   logger.Default.LogMode(logger.Silent),
		PrepareStmt:                              true,
		SkipDefaultTransaction:                   true,
		DisableForeignKeyConstraintWhenMigrating: true,
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(&models.CelebrationSlot{}); err != nil {
		return nil, err
	}

	if err := seed(ctx, db); err != nil {
		return nil, err
	}

	applog.Debug(ctx, "mock database ready")
	return db, nil
}

func seed(ctx context.Context, db *gorm.DB) error {
	state := models.ActiveState(models.Celebration{
		GuestName: "Avery",
		Occasion:  models.OccasionBirthday,
		Message:   "Wishing you a very happy birthday filled with joy, laughter, and unforgettable moments.",
		ThemeID:   "golden-lights",
	})

	payload, err := json.Marshal(state)
	if err != nil {
		return err
	}

	slot := models.CelebrationSlot{
		ID:      models.CurrentSlotID,
		Payload: string(payload),
	}
	if err := db.WithContext(ctx).Save(&slot).Error; err != nil {
		return err
	}

	applog.Debug(ctx, "mock database seeded")
	return nil
}
