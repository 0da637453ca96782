package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/yuda85/family-ops-sub001/internal/model"
)

// CatalogRepository defines the data access contract for the per-family
// item catalog. Services depend on this interface, not on the concrete GORM
// implementation, enabling clean unit testing via in-memory fakes.
type CatalogRepository interface {
	Create(ctx context.Context, item *model.CatalogItem) error
	CreateInBatches(ctx context.Context, items []model.CatalogItem, batchSize int) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.CatalogItem, error)
	// ListByFamily returns items in insertion order (creation time), which
	// search relies on for tie-breaking.
	ListByFamily(ctx context.Context, familyID uuid.UUID) ([]model.CatalogItem, error)
	CountByFamily(ctx context.Context, familyID uuid.UUID) (int64, error)

	// Used inside transactions — callers must pass the tx instance.
	UpdatePriceTx(tx *gorm.DB, id uuid.UUID, price decimal.Decimal, updatedBy uuid.UUID, updatedAt time.Time) error
	CreatePriceChangeTx(tx *gorm.DB, change *model.CatalogPriceChange) error

	ListPriceChanges(ctx context.Context, itemID uuid.UUID) ([]model.CatalogPriceChange, error)

	// DB exposes the underlying *gorm.DB so services can open transactions.
	DB() *gorm.DB
}

type catalogRepo struct{ db *gorm.DB }

func NewCatalogRepository(db *gorm.DB) CatalogRepository { return &catalogRepo{db: db} }

func (r *catalogRepo) Create(ctx context.Context, item *model.CatalogItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *catalogRepo) CreateInBatches(ctx context.Context, items []model.CatalogItem, batchSize int) error {
	return r.db.WithContext(ctx).CreateInBatches(items, batchSize).Error
}

func (r *catalogRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.CatalogItem, error) {
	var item model.CatalogItem
	err := r.db.WithContext(ctx).First(&item, "id = ?", id).Error
	return &item, err
}

func (r *catalogRepo) ListByFamily(ctx context.Context, familyID uuid.UUID) ([]model.CatalogItem, error) {
	var items []model.CatalogItem
	err := r.db.WithContext(ctx).
		Where("family_id = ?", familyID).
		Order("created_at ASC").
		Find(&items).Error
	return items, err
}

func (r *catalogRepo) CountByFamily(ctx context.Context, familyID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.CatalogItem{}).
		Where("family_id = ?", familyID).
		Count(&count).Error
	return count, err
}

func (r *catalogRepo) UpdatePriceTx(tx *gorm.DB, id uuid.UUID, price decimal.Decimal, updatedBy uuid.UUID, updatedAt time.Time) error {
	return tx.Model(&model.CatalogItem{}).Where("id = ?", id).Updates(map[string]interface{}{
		"estimated_price":  price,
		"price_updated_at": updatedAt,
		"price_updated_by": updatedBy,
	}).Error
}

func (r *catalogRepo) CreatePriceChangeTx(tx *gorm.DB, change *model.CatalogPriceChange) error {
	return tx.Create(change).Error
}

func (r *catalogRepo) ListPriceChanges(ctx context.Context, itemID uuid.UUID) ([]model.CatalogPriceChange, error) {
	var changes []model.CatalogPriceChange
	err := r.db.WithContext(ctx).
		Where("catalog_item_id = ?", itemID).
		Order("created_at DESC").
		Find(&changes).Error
	return changes, err
}

func (r *catalogRepo) DB() *gorm.DB { return r.db }
