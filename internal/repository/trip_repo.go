package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yuda85/family-ops-sub001/internal/model"
)

// TripRepository is the data access contract for archived shopping trips.
// Trips are append-only — there is no update or delete.
type TripRepository interface {
	// CreateTx persists the trip and its items inside the caller's transaction.
	CreateTx(tx *gorm.DB, trip *model.ShoppingTrip) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.ShoppingTrip, error)
	// ListByFamily returns trips newest first, without items.
	ListByFamily(ctx context.Context, familyID uuid.UUID) ([]model.ShoppingTrip, error)
	DB() *gorm.DB
}

type tripRepo struct{ db *gorm.DB }

func NewTripRepository(db *gorm.DB) TripRepository { return &tripRepo{db: db} }

func (r *tripRepo) CreateTx(tx *gorm.DB, trip *model.ShoppingTrip) error {
	return tx.Create(trip).Error
}

func (r *tripRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.ShoppingTrip, error) {
	var trip model.ShoppingTrip
	err := r.db.WithContext(ctx).Preload("Items").First(&trip, "id = ?", id).Error
	return &trip, err
}

func (r *tripRepo) ListByFamily(ctx context.Context, familyID uuid.UUID) ([]model.ShoppingTrip, error) {
	var trips []model.ShoppingTrip
	err := r.db.WithContext(ctx).
		Where("family_id = ?", familyID).
		Order("completed_at DESC").
		Find(&trips).Error
	return trips, err
}

func (r *tripRepo) DB() *gorm.DB { return r.db }
