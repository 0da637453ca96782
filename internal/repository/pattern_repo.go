package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yuda85/family-ops-sub001/internal/model"
)

// PatternRepository is the data access contract for purchase-pattern rows.
// Patterns are accumulative: created once per (family, name, category),
// then updated in place on every archived trip.
type PatternRepository interface {
	Find(ctx context.Context, familyID uuid.UUID, itemName string, category model.Category) (*model.PurchasePattern, error)
	Create(ctx context.Context, pattern *model.PurchasePattern) error
	Update(ctx context.Context, pattern *model.PurchasePattern) error
	ListByFamily(ctx context.Context, familyID uuid.UUID) ([]model.PurchasePattern, error)
}

type patternRepo struct{ db *gorm.DB }

func NewPatternRepository(db *gorm.DB) PatternRepository { return &patternRepo{db: db} }

func (r *patternRepo) Find(ctx context.Context, familyID uuid.UUID, itemName string, category model.Category) (*model.PurchasePattern, error) {
	var pattern model.PurchasePattern
	err := r.db.WithContext(ctx).
		Where("family_id = ? AND item_name = ? AND category = ?", familyID, itemName, category).
		First(&pattern).Error
	if err != nil {
		return nil, err
	}
	return &pattern, nil
}

func (r *patternRepo) Create(ctx context.Context, pattern *model.PurchasePattern) error {
	return r.db.WithContext(ctx).Create(pattern).Error
}

func (r *patternRepo) Update(ctx context.Context, pattern *model.PurchasePattern) error {
	return r.db.WithContext(ctx).Save(pattern).Error
}

func (r *patternRepo) ListByFamily(ctx context.Context, familyID uuid.UUID) ([]model.PurchasePattern, error) {
	var patterns []model.PurchasePattern
	err := r.db.WithContext(ctx).
		Where("family_id = ?", familyID).
		Order("item_name ASC").
		Find(&patterns).Error
	return patterns, err
}
