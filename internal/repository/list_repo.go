package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/yuda85/family-ops-sub001/internal/model"
)

// ListRepository is the data access contract for the live shopping list,
// its items, and the active-shopper set.
type ListRepository interface {
	CreateList(ctx context.Context, list *model.ShoppingList) error
	// FindOpenByFamily returns the family's list in status active/shopping,
	// most recently created first when duplicates exist.
	FindOpenByFamily(ctx context.Context, familyID uuid.UUID) (*model.ShoppingList, error)
	FindListByID(ctx context.Context, id uuid.UUID) (*model.ShoppingList, error)
	UpdateListStatus(ctx context.Context, id uuid.UUID, status string) error
	UpdateEstimatedTotal(ctx context.Context, id uuid.UUID, total decimal.Decimal) error

	CreateItem(ctx context.Context, item *model.ShoppingListItem) error
	FindItemByID(ctx context.Context, id uuid.UUID) (*model.ShoppingListItem, error)
	// ListItems returns items ordered by (category, order_in_category).
	ListItems(ctx context.Context, listID uuid.UUID) ([]model.ShoppingListItem, error)
	UpdateItemFields(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error
	DeleteItem(ctx context.Context, id uuid.UUID) error
	MaxOrderInCategory(ctx context.Context, listID uuid.UUID, category model.Category) (int, error)
	// SumEstimated computes Σ quantity × estimated_price over current items.
	SumEstimated(ctx context.Context, listID uuid.UUID) (decimal.Decimal, error)

	AddShopper(ctx context.Context, shopper *model.ListShopper) error
	RemoveShopper(ctx context.Context, listID, userID uuid.UUID) error
	CountShoppers(ctx context.Context, listID uuid.UUID) (int64, error)
	ListShoppers(ctx context.Context, listID uuid.UUID) ([]model.ListShopper, error)

	// Used inside transactions — callers must pass the tx instance.
	DeleteCheckedTx(tx *gorm.DB, listID uuid.UUID) error
	CompleteListTx(tx *gorm.DB, listID uuid.UUID, actualTotal decimal.Decimal, completedBy uuid.UUID, completedAt time.Time) error
	DeleteShoppersTx(tx *gorm.DB, listID uuid.UUID) error

	// DB exposes the underlying *gorm.DB so services can open transactions.
	DB() *gorm.DB
}

type listRepo struct{ db *gorm.DB }

func NewListRepository(db *gorm.DB) ListRepository { return &listRepo{db: db} }

func (r *listRepo) CreateList(ctx context.Context, list *model.ShoppingList) error {
	return r.db.WithContext(ctx).Create(list).Error
}

func (r *listRepo) FindOpenByFamily(ctx context.Context, familyID uuid.UUID) (*model.ShoppingList, error) {
	var list model.ShoppingList
	err := r.db.WithContext(ctx).
		Where("family_id = ? AND status IN ?", familyID, []string{model.ListStatusActive, model.ListStatusShopping}).
		Order("created_at DESC").
		First(&list).Error
	if err != nil {
		return nil, err
	}
	return &list, nil
}

func (r *listRepo) FindListByID(ctx context.Context, id uuid.UUID) (*model.ShoppingList, error) {
	var list model.ShoppingList
	err := r.db.WithContext(ctx).First(&list, "id = ?", id).Error
	return &list, err
}

func (r *listRepo) UpdateListStatus(ctx context.Context, id uuid.UUID, status string) error {
	return r.db.WithContext(ctx).Model(&model.ShoppingList{}).
		Where("id = ?", id).
		Update("status", status).Error
}

func (r *listRepo) UpdateEstimatedTotal(ctx context.Context, id uuid.UUID, total decimal.Decimal) error {
	return r.db.WithContext(ctx).Model(&model.ShoppingList{}).
		Where("id = ?", id).
		Update("estimated_total", total).Error
}

func (r *listRepo) CreateItem(ctx context.Context, item *model.ShoppingListItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *listRepo) FindItemByID(ctx context.Context, id uuid.UUID) (*model.ShoppingListItem, error) {
	var item model.ShoppingListItem
	err := r.db.WithContext(ctx).First(&item, "id = ?", id).Error
	return &item, err
}

func (r *listRepo) ListItems(ctx context.Context, listID uuid.UUID) ([]model.ShoppingListItem, error) {
	var items []model.ShoppingListItem
	err := r.db.WithContext(ctx).
		Where("list_id = ?", listID).
		Order("category ASC, order_in_category ASC").
		Find(&items).Error
	return items, err
}

func (r *listRepo) UpdateItemFields(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error {
	return r.db.WithContext(ctx).Model(&model.ShoppingListItem{}).
		Where("id = ?", id).
		Updates(fields).Error
}

func (r *listRepo) DeleteItem(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.ShoppingListItem{}, "id = ?", id).Error
}

func (r *listRepo) MaxOrderInCategory(ctx context.Context, listID uuid.UUID, category model.Category) (int, error) {
	var max *int
	err := r.db.WithContext(ctx).Model(&model.ShoppingListItem{}).
		Where("list_id = ? AND category = ?", listID, category).
		Select("MAX(order_in_category)").
		Scan(&max).Error
	if err != nil {
		return 0, err
	}
	if max == nil {
		return -1, nil
	}
	return *max, nil
}

func (r *listRepo) SumEstimated(ctx context.Context, listID uuid.UUID) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.db.WithContext(ctx).Model(&model.ShoppingListItem{}).
		Where("list_id = ?", listID).
		Select("COALESCE(SUM(quantity * estimated_price), 0)").
		Scan(&total).Error
	return total, err
}

func (r *listRepo) AddShopper(ctx context.Context, shopper *model.ListShopper) error {
	// Re-entering is a no-op: membership is a set.
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(shopper).Error
}

func (r *listRepo) RemoveShopper(ctx context.Context, listID, userID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Delete(&model.ListShopper{}, "list_id = ? AND user_id = ?", listID, userID).Error
}

func (r *listRepo) CountShoppers(ctx context.Context, listID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.ListShopper{}).
		Where("list_id = ?", listID).
		Count(&count).Error
	return count, err
}

func (r *listRepo) ListShoppers(ctx context.Context, listID uuid.UUID) ([]model.ListShopper, error) {
	var shoppers []model.ListShopper
	err := r.db.WithContext(ctx).
		Where("list_id = ?", listID).
		Order("entered_at ASC").
		Find(&shoppers).Error
	return shoppers, err
}

func (r *listRepo) DeleteCheckedTx(tx *gorm.DB, listID uuid.UUID) error {
	return tx.Delete(&model.ShoppingListItem{}, "list_id = ? AND checked = true", listID).Error
}

func (r *listRepo) CompleteListTx(tx *gorm.DB, listID uuid.UUID, actualTotal decimal.Decimal, completedBy uuid.UUID, completedAt time.Time) error {
	return tx.Model(&model.ShoppingList{}).Where("id = ?", listID).Updates(map[string]interface{}{
		"status":       model.ListStatusCompleted,
		"actual_total": actualTotal,
		"completed_at": completedAt,
		"completed_by": completedBy,
	}).Error
}

func (r *listRepo) DeleteShoppersTx(tx *gorm.DB, listID uuid.UUID) error {
	return tx.Delete(&model.ListShopper{}, "list_id = ?", listID).Error
}

func (r *listRepo) DB() *gorm.DB { return r.db }
