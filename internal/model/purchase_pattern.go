package model

import (
	"time"

	"github.com/google/uuid"
)

// PurchasePattern holds rolling purchase statistics per (family, item name,
// category). Updated incrementally on every archived trip — never recomputed
// from full history.
type PurchasePattern struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	FamilyID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_family_item_pattern"`
	ItemName string    `gorm:"not null;uniqueIndex:idx_family_item_pattern"`
	Category Category  `gorm:"type:varchar(20);not null;uniqueIndex:idx_family_item_pattern"`
	// PurchaseCount is the number of trips in which the item was checked.
	PurchaseCount int     `gorm:"not null;default:0"`
	AvgQuantity   float64 `gorm:"not null;default:0"`
	// AvgIntervalDays is a weighted rolling average of whole days between
	// purchases. A never-seen item starts at 7 (assumed weekly cadence).
	AvgIntervalDays float64   `gorm:"not null;default:7"`
	LastPurchased   time.Time `gorm:"not null"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
