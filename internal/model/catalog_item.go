package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CatalogItem is a per-family reference entry: the template a shopping-list
// item is created from. Identity is immutable; only price and keywords
// change, via explicit update operations.
type CatalogItem struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	FamilyID        uuid.UUID `gorm:"type:uuid;not null;index"`
	Name            string    `gorm:"index;not null"`
	Category        Category  `gorm:"type:varchar(20);not null"`
	DefaultUnit     Unit      `gorm:"type:varchar(10);not null;default:'units'"`
	DefaultQuantity float64   `gorm:"not null;default:1"`
	EstimatedPrice  decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	// Keywords feed search and free-text categorization.
	Keywords []string `gorm:"serializer:json"`
	// Custom marks items added by a family member rather than the seed set.
	Custom         bool       `gorm:"not null;default:false"`
	PriceUpdatedAt *time.Time
	PriceUpdatedBy *uuid.UUID `gorm:"type:uuid"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// CatalogPriceChange records one price update of a catalog item.
// Rows are immutable — never updated or deleted.
type CatalogPriceChange struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CatalogItemID uuid.UUID       `gorm:"type:uuid;not null;index"`
	PriceBefore   decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	PriceAfter    decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	ChangedBy     uuid.UUID       `gorm:"type:uuid;not null"`
	CreatedAt     time.Time

	CatalogItem CatalogItem `gorm:"foreignKey:CatalogItemID"`
}
