package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ShoppingList lifecycle states.
// active: editable, nobody in store. shopping: at least one active shopper.
// completed: terminal — the list is retired and only the trip snapshot survives.
const (
	ListStatusActive    = "active"
	ListStatusShopping  = "shopping"
	ListStatusCompleted = "completed"
)

// ShoppingList is the single live list of a family. At most one list per
// family is in status active/shopping at a time; completing it retires it
// and the next item add creates a fresh one.
type ShoppingList struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	FamilyID uuid.UUID `gorm:"type:uuid;not null;index"`
	Name     string    `gorm:"not null"`
	Status   string    `gorm:"type:varchar(20);not null;default:'active';index"`
	// EstimatedTotal is derived (Σ quantity × estimated price) but persisted
	// redundantly so list overviews need no item scan.
	EstimatedTotal decimal.Decimal  `gorm:"type:decimal(12,2);not null;default:0"`
	ActualTotal    *decimal.Decimal `gorm:"type:decimal(12,2)"`
	CompletedAt    *time.Time
	CompletedBy    *uuid.UUID `gorm:"type:uuid"`
	CreatedAt      time.Time
	UpdatedAt      time.Time

	Items    []ShoppingListItem `gorm:"foreignKey:ListID"`
	Shoppers []ListShopper      `gorm:"foreignKey:ListID"`
}

// ListShopper is one member currently in supermarket mode on a list.
// Membership rows are added/removed by the member themself, so concurrent
// enter/exit from different devices commute without locking.
type ListShopper struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ListID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_list_shopper"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_list_shopper"`
	EnteredAt time.Time
}

// ShoppingListItem is one line of the live list. Mutated on check/edit,
// deleted on removal or clear-checked; never archived individually.
type ShoppingListItem struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ListID        uuid.UUID  `gorm:"type:uuid;not null;index"`
	CatalogItemID *uuid.UUID `gorm:"type:uuid"`
	Name          string     `gorm:"not null"`
	Category      Category   `gorm:"type:varchar(20);not null"`
	Quantity      float64    `gorm:"not null"`
	Unit          Unit       `gorm:"type:varchar(10);not null"`
	// EstimatedPrice and ActualPrice are per unit.
	EstimatedPrice decimal.Decimal  `gorm:"type:decimal(10,2);not null"`
	ActualPrice    *decimal.Decimal `gorm:"type:decimal(10,2)"`
	Checked        bool             `gorm:"not null;default:false"`
	CheckedAt      *time.Time
	CheckedBy      *uuid.UUID `gorm:"type:uuid"`
	// OrderInCategory is assigned max+1 within (list, category) on insert,
	// so within-category order is stable and reordering one category never
	// touches another.
	OrderInCategory int     `gorm:"not null;default:0"`
	Note            *string
	AddedBy         uuid.UUID `gorm:"type:uuid;not null"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
