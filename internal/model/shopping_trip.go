package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ShoppingTrip is the immutable snapshot written when a list is completed.
// Trips and their items are NEVER modified or deleted after creation.
type ShoppingTrip struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	FamilyID       uuid.UUID       `gorm:"type:uuid;not null;index"`
	ListID         uuid.UUID       `gorm:"type:uuid;not null"`
	ListName       string          `gorm:"not null"`
	EstimatedTotal decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	ActualTotal    decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	TotalItems     int             `gorm:"not null"`
	CheckedItems   int             `gorm:"not null"`
	CompletedBy    uuid.UUID       `gorm:"type:uuid;not null"`
	CompletedAt    time.Time       `gorm:"index"`
	CreatedAt      time.Time

	Items []TripItem `gorm:"foreignKey:TripID"`
}

// TripItem is one frozen line of a trip. Unchecked items are retained in
// the snapshot — they record what the family planned but did not buy.
type TripItem struct {
	ID             uuid.UUID        `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	TripID         uuid.UUID        `gorm:"type:uuid;not null;index"`
	Name           string           `gorm:"not null"`
	Category       Category         `gorm:"type:varchar(20);not null"`
	Quantity       float64          `gorm:"not null"`
	Unit           Unit             `gorm:"type:varchar(10);not null"`
	EstimatedPrice decimal.Decimal  `gorm:"type:decimal(10,2);not null"`
	ActualPrice    *decimal.Decimal `gorm:"type:decimal(10,2)"`
	Checked        bool             `gorm:"not null"`
}
