package models

import "time"

// CelebrationSlot persists the mailbox slot in the database-backed store.
// Exactly one row (ID = CurrentSlotID) ever exists; publishes overwrite it in
// place, so no history accumulates.
type CelebrationSlot struct {
	ID        uint   `gorm:"primaryKey"`
	Payload   string `gorm:"type:text;not null"`
	UpdatedAt time.Time
}

// CurrentSlotID is the fixed primary key of the single mailbox row.
const CurrentSlotID uint = 1
