package model

import (
	"time"

	"github.com/google/uuid"
)

// UserFavorite marks a catalog item as a staple for quick reuse by one user.
// A user may favorite a given catalog item at most once.
type UserFavorite struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID        uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_user_favorite"`
	CatalogItemID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_user_favorite"`
	// Quantity/Unit override the catalog defaults when set.
	Quantity   *float64
	Unit       *Unit `gorm:"type:varchar(10)"`
	UseCount   int   `gorm:"not null;default:0"`
	LastUsedAt *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time

	CatalogItem CatalogItem `gorm:"foreignKey:CatalogItemID"`
}
