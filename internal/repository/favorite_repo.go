package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yuda85/family-ops-sub001/internal/model"
)

// FavoriteRepository is the data access contract for per-user staples.
type FavoriteRepository interface {
	Create(ctx context.Context, favorite *model.UserFavorite) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.UserFavorite, error)
	FindByUserAndItem(ctx context.Context, userID, catalogItemID uuid.UUID) (*model.UserFavorite, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]model.UserFavorite, error)
	Update(ctx context.Context, favorite *model.UserFavorite) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type favoriteRepo struct{ db *gorm.DB }

func NewFavoriteRepository(db *gorm.DB) FavoriteRepository { return &favoriteRepo{db: db} }

func (r *favoriteRepo) Create(ctx context.Context, favorite *model.UserFavorite) error {
	return r.db.WithContext(ctx).Create(favorite).Error
}

func (r *favoriteRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.UserFavorite, error) {
	var favorite model.UserFavorite
	err := r.db.WithContext(ctx).Preload("CatalogItem").First(&favorite, "id = ?", id).Error
	return &favorite, err
}

func (r *favoriteRepo) FindByUserAndItem(ctx context.Context, userID, catalogItemID uuid.UUID) (*model.UserFavorite, error) {
	var favorite model.UserFavorite
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND catalog_item_id = ?", userID, catalogItemID).
		First(&favorite).Error
	if err != nil {
		return nil, err
	}
	return &favorite, nil
}

func (r *favoriteRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]model.UserFavorite, error) {
	var favorites []model.UserFavorite
	err := r.db.WithContext(ctx).
		Preload("CatalogItem").
		Where("user_id = ?", userID).
		Order("use_count DESC, created_at ASC").
		Find(&favorites).Error
	return favorites, err
}

func (r *favoriteRepo) Update(ctx context.Context, favorite *model.UserFavorite) error {
	return r.db.WithContext(ctx).Save(favorite).Error
}

func (r *favoriteRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.UserFavorite{}, "id = ?", id).Error
}
