package service_test

// In-memory repository fakes. Each one implements the full repository
// interface so services run unchanged, with DB() returning nil to put
// runTx into unit-test mode.

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/yuda85/family-ops-sub001/internal/model"
	"github.com/yuda85/family-ops-sub001/internal/repository"
)

// ── Catalog ─────────────────────────────────────────────────────────

type fakeCatalogRepo struct {
	items        []model.CatalogItem
	priceChanges []model.CatalogPriceChange
}

func (r *fakeCatalogRepo) Create(_ context.Context, item *model.CatalogItem) error {
	if item.ID == uuid.Nil {
		item.ID = uuid.New()
	}
	item.CreatedAt = time.Now()
	r.items = append(r.items, *item)
	return nil
}

func (r *fakeCatalogRepo) CreateInBatches(_ context.Context, items []model.CatalogItem, _ int) error {
	for i := range items {
		if items[i].ID == uuid.Nil {
			items[i].ID = uuid.New()
		}
		r.items = append(r.items, items[i])
	}
	return nil
}

func (r *fakeCatalogRepo) FindByID(_ context.Context, id uuid.UUID) (*model.CatalogItem, error) {
	for i := range r.items {
		if r.items[i].ID == id {
			item := r.items[i]
			return &item, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeCatalogRepo) ListByFamily(_ context.Context, familyID uuid.UUID) ([]model.CatalogItem, error) {
	var out []model.CatalogItem
	for i := range r.items {
		if r.items[i].FamilyID == familyID {
			out = append(out, r.items[i])
		}
	}
	return out, nil
}

func (r *fakeCatalogRepo) CountByFamily(_ context.Context, familyID uuid.UUID) (int64, error) {
	var n int64
	for i := range r.items {
		if r.items[i].FamilyID == familyID {
			n++
		}
	}
	return n, nil
}

func (r *fakeCatalogRepo) UpdatePriceTx(_ *gorm.DB, id uuid.UUID, price decimal.Decimal, updatedBy uuid.UUID, updatedAt time.Time) error {
	for i := range r.items {
		if r.items[i].ID == id {
			r.items[i].EstimatedPrice = price
			r.items[i].PriceUpdatedAt = &updatedAt
			r.items[i].PriceUpdatedBy = &updatedBy
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (r *fakeCatalogRepo) CreatePriceChangeTx(_ *gorm.DB, change *model.CatalogPriceChange) error {
	if change.ID == uuid.Nil {
		change.ID = uuid.New()
	}
	change.CreatedAt = time.Now()
	r.priceChanges = append(r.priceChanges, *change)
	return nil
}

func (r *fakeCatalogRepo) ListPriceChanges(_ context.Context, itemID uuid.UUID) ([]model.CatalogPriceChange, error) {
	var out []model.CatalogPriceChange
	for i := range r.priceChanges {
		if r.priceChanges[i].CatalogItemID == itemID {
			out = append(out, r.priceChanges[i])
		}
	}
	return out, nil
}

func (r *fakeCatalogRepo) DB() *gorm.DB { return nil }

var _ repository.CatalogRepository = (*fakeCatalogRepo)(nil)

// ── List ────────────────────────────────────────────────────────────

type fakeListRepo struct {
	lists    map[uuid.UUID]*model.ShoppingList
	items    map[uuid.UUID]*model.ShoppingListItem
	shoppers []model.ListShopper
}

func newFakeListRepo() *fakeListRepo {
	return &fakeListRepo{
		lists: make(map[uuid.UUID]*model.ShoppingList),
		items: make(map[uuid.UUID]*model.ShoppingListItem),
	}
}

func (r *fakeListRepo) CreateList(_ context.Context, list *model.ShoppingList) error {
	if list.ID == uuid.Nil {
		list.ID = uuid.New()
	}
	list.CreatedAt = time.Now()
	r.lists[list.ID] = list
	return nil
}

func (r *fakeListRepo) FindOpenByFamily(_ context.Context, familyID uuid.UUID) (*model.ShoppingList, error) {
	var newest *model.ShoppingList
	for _, l := range r.lists {
		if l.FamilyID != familyID {
			continue
		}
		if l.Status != model.ListStatusActive && l.Status != model.ListStatusShopping {
			continue
		}
		if newest == nil || l.CreatedAt.After(newest.CreatedAt) {
			newest = l
		}
	}
	if newest == nil {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *newest
	return &copied, nil
}

func (r *fakeListRepo) FindListByID(_ context.Context, id uuid.UUID) (*model.ShoppingList, error) {
	l, ok := r.lists[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *l
	return &copied, nil
}

func (r *fakeListRepo) UpdateListStatus(_ context.Context, id uuid.UUID, status string) error {
	l, ok := r.lists[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	l.Status = status
	return nil
}

func (r *fakeListRepo) UpdateEstimatedTotal(_ context.Context, id uuid.UUID, total decimal.Decimal) error {
	l, ok := r.lists[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	l.EstimatedTotal = total
	return nil
}

func (r *fakeListRepo) CreateItem(_ context.Context, item *model.ShoppingListItem) error {
	if item.ID == uuid.Nil {
		item.ID = uuid.New()
	}
	item.CreatedAt = time.Now()
	copied := *item
	r.items[item.ID] = &copied
	return nil
}

func (r *fakeListRepo) FindItemByID(_ context.Context, id uuid.UUID) (*model.ShoppingListItem, error) {
	it, ok := r.items[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *it
	return &copied, nil
}

func (r *fakeListRepo) ListItems(_ context.Context, listID uuid.UUID) ([]model.ShoppingListItem, error) {
	var out []model.ShoppingListItem
	for _, it := range r.items {
		if it.ListID == listID {
			out = append(out, *it)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Category != out[j].Category {
			return out[i].Category < out[j].Category
		}
		return out[i].OrderInCategory < out[j].OrderInCategory
	})
	return out, nil
}

func (r *fakeListRepo) UpdateItemFields(_ context.Context, id uuid.UUID, fields map[string]interface{}) error {
	it, ok := r.items[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	for key, val := range fields {
		switch key {
		case "quantity":
			it.Quantity = val.(float64)
		case "unit":
			it.Unit = model.Unit(val.(string))
		case "estimated_price":
			it.EstimatedPrice = val.(decimal.Decimal)
		case "actual_price":
			if val == nil {
				it.ActualPrice = nil
			} else {
				p := val.(decimal.Decimal)
				it.ActualPrice = &p
			}
		case "note":
			n := val.(string)
			it.Note = &n
		case "order_in_category":
			it.OrderInCategory = val.(int)
		case "checked":
			it.Checked = val.(bool)
		case "checked_at":
			if val == nil {
				it.CheckedAt = nil
			} else {
				t := val.(time.Time)
				it.CheckedAt = &t
			}
		case "checked_by":
			if val == nil {
				it.CheckedBy = nil
			} else {
				u := val.(uuid.UUID)
				it.CheckedBy = &u
			}
		}
	}
	return nil
}

func (r *fakeListRepo) DeleteItem(_ context.Context, id uuid.UUID) error {
	delete(r.items, id)
	return nil
}

func (r *fakeListRepo) MaxOrderInCategory(_ context.Context, listID uuid.UUID, category model.Category) (int, error) {
	max := -1
	for _, it := range r.items {
		if it.ListID == listID && it.Category == category && it.OrderInCategory > max {
			max = it.OrderInCategory
		}
	}
	return max, nil
}

func (r *fakeListRepo) SumEstimated(_ context.Context, listID uuid.UUID) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, it := range r.items {
		if it.ListID == listID {
			total = total.Add(decimal.NewFromFloat(it.Quantity).Mul(it.EstimatedPrice))
		}
	}
	return total, nil
}

func (r *fakeListRepo) AddShopper(_ context.Context, shopper *model.ListShopper) error {
	for i := range r.shoppers {
		if r.shoppers[i].ListID == shopper.ListID && r.shoppers[i].UserID == shopper.UserID {
			return nil // ON CONFLICT DO NOTHING
		}
	}
	if shopper.ID == uuid.Nil {
		shopper.ID = uuid.New()
	}
	r.shoppers = append(r.shoppers, *shopper)
	return nil
}

func (r *fakeListRepo) RemoveShopper(_ context.Context, listID, userID uuid.UUID) error {
	out := r.shoppers[:0]
	for i := range r.shoppers {
		if r.shoppers[i].ListID == listID && r.shoppers[i].UserID == userID {
			continue
		}
		out = append(out, r.shoppers[i])
	}
	r.shoppers = out
	return nil
}

func (r *fakeListRepo) CountShoppers(_ context.Context, listID uuid.UUID) (int64, error) {
	var n int64
	for i := range r.shoppers {
		if r.shoppers[i].ListID == listID {
			n++
		}
	}
	return n, nil
}

func (r *fakeListRepo) ListShoppers(_ context.Context, listID uuid.UUID) ([]model.ListShopper, error) {
	var out []model.ListShopper
	for i := range r.shoppers {
		if r.shoppers[i].ListID == listID {
			out = append(out, r.shoppers[i])
		}
	}
	return out, nil
}

func (r *fakeListRepo) DeleteCheckedTx(_ *gorm.DB, listID uuid.UUID) error {
	for id, it := range r.items {
		if it.ListID == listID && it.Checked {
			delete(r.items, id)
		}
	}
	return nil
}

func (r *fakeListRepo) CompleteListTx(_ *gorm.DB, listID uuid.UUID, actualTotal decimal.Decimal, completedBy uuid.UUID, completedAt time.Time) error {
	l, ok := r.lists[listID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	l.Status = model.ListStatusCompleted
	l.ActualTotal = &actualTotal
	l.CompletedBy = &completedBy
	l.CompletedAt = &completedAt
	return nil
}

func (r *fakeListRepo) DeleteShoppersTx(_ *gorm.DB, listID uuid.UUID) error {
	out := r.shoppers[:0]
	for i := range r.shoppers {
		if r.shoppers[i].ListID == listID {
			continue
		}
		out = append(out, r.shoppers[i])
	}
	r.shoppers = out
	return nil
}

func (r *fakeListRepo) DB() *gorm.DB { return nil }

var _ repository.ListRepository = (*fakeListRepo)(nil)

// ── Trips ───────────────────────────────────────────────────────────

type fakeTripRepo struct {
	trips []model.ShoppingTrip
}

func (r *fakeTripRepo) CreateTx(_ *gorm.DB, trip *model.ShoppingTrip) error {
	if trip.ID == uuid.Nil {
		trip.ID = uuid.New()
	}
	for i := range trip.Items {
		if trip.Items[i].ID == uuid.Nil {
			trip.Items[i].ID = uuid.New()
		}
		trip.Items[i].TripID = trip.ID
	}
	trip.CreatedAt = time.Now()
	r.trips = append(r.trips, *trip)
	return nil
}

func (r *fakeTripRepo) FindByID(_ context.Context, id uuid.UUID) (*model.ShoppingTrip, error) {
	for i := range r.trips {
		if r.trips[i].ID == id {
			trip := r.trips[i]
			return &trip, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeTripRepo) ListByFamily(_ context.Context, familyID uuid.UUID) ([]model.ShoppingTrip, error) {
	var out []model.ShoppingTrip
	for i := range r.trips {
		if r.trips[i].FamilyID == familyID {
			out = append(out, r.trips[i])
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CompletedAt.After(out[j].CompletedAt) })
	return out, nil
}

func (r *fakeTripRepo) DB() *gorm.DB { return nil }

var _ repository.TripRepository = (*fakeTripRepo)(nil)

// ── Patterns ────────────────────────────────────────────────────────

type fakePatternRepo struct {
	patterns []model.PurchasePattern
}

func (r *fakePatternRepo) Find(_ context.Context, familyID uuid.UUID, itemName string, category model.Category) (*model.PurchasePattern, error) {
	for i := range r.patterns {
		p := r.patterns[i]
		if p.FamilyID == familyID && p.ItemName == itemName && p.Category == category {
			return &p, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakePatternRepo) Create(_ context.Context, pattern *model.PurchasePattern) error {
	if pattern.ID == uuid.Nil {
		pattern.ID = uuid.New()
	}
	r.patterns = append(r.patterns, *pattern)
	return nil
}

func (r *fakePatternRepo) Update(_ context.Context, pattern *model.PurchasePattern) error {
	for i := range r.patterns {
		if r.patterns[i].ID == pattern.ID {
			r.patterns[i] = *pattern
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (r *fakePatternRepo) ListByFamily(_ context.Context, familyID uuid.UUID) ([]model.PurchasePattern, error) {
	var out []model.PurchasePattern
	for i := range r.patterns {
		if r.patterns[i].FamilyID == familyID {
			out = append(out, r.patterns[i])
		}
	}
	return out, nil
}

var _ repository.PatternRepository = (*fakePatternRepo)(nil)

// ── Favorites ───────────────────────────────────────────────────────

type fakeFavoriteRepo struct {
	favorites []model.UserFavorite
}

func (r *fakeFavoriteRepo) Create(_ context.Context, favorite *model.UserFavorite) error {
	if favorite.ID == uuid.Nil {
		favorite.ID = uuid.New()
	}
	r.favorites = append(r.favorites, *favorite)
	return nil
}

func (r *fakeFavoriteRepo) FindByID(_ context.Context, id uuid.UUID) (*model.UserFavorite, error) {
	for i := range r.favorites {
		if r.favorites[i].ID == id {
			f := r.favorites[i]
			return &f, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeFavoriteRepo) FindByUserAndItem(_ context.Context, userID, catalogItemID uuid.UUID) (*model.UserFavorite, error) {
	for i := range r.favorites {
		f := r.favorites[i]
		if f.UserID == userID && f.CatalogItemID == catalogItemID {
			return &f, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeFavoriteRepo) ListByUser(_ context.Context, userID uuid.UUID) ([]model.UserFavorite, error) {
	var out []model.UserFavorite
	for i := range r.favorites {
		if r.favorites[i].UserID == userID {
			out = append(out, r.favorites[i])
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].UseCount > out[j].UseCount })
	return out, nil
}

func (r *fakeFavoriteRepo) Update(_ context.Context, favorite *model.UserFavorite) error {
	for i := range r.favorites {
		if r.favorites[i].ID == favorite.ID {
			r.favorites[i] = *favorite
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (r *fakeFavoriteRepo) Delete(_ context.Context, id uuid.UUID) error {
	out := r.favorites[:0]
	for i := range r.favorites {
		if r.favorites[i].ID == id {
			continue
		}
		out = append(out, r.favorites[i])
	}
	r.favorites = out
	return nil
}

var _ repository.FavoriteRepository = (*fakeFavoriteRepo)(nil)
