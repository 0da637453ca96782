package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yuda85/family-ops-sub001/internal/checkout"
	"github.com/yuda85/family-ops-sub001/internal/dto"
	"github.com/yuda85/family-ops-sub001/internal/model"
	"github.com/yuda85/family-ops-sub001/internal/service"
)

type listFixture struct {
	svc      service.ListService
	listRepo *fakeListRepo
	trips    *fakeTripRepo
	undo     *checkout.Manager
	sess     service.Session
}

func newListFixture() *listFixture {
	listRepo := newFakeListRepo()
	trips := &fakeTripRepo{}
	undo := checkout.NewManager()
	svc := service.NewListService(listRepo, &fakeCatalogRepo{}, trips, undo, nil, nil, "קניות שבועיות")
	return &listFixture{
		svc:      svc,
		listRepo: listRepo,
		trips:    trips,
		undo:     undo,
		sess: service.Session{
			UserID:   uuid.New(),
			FamilyID: uuid.New(),
			Role:     service.RoleEditor,
		},
	}
}

func assertDecimal(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	assert.True(t, got.Equal(decimal.RequireFromString(want)), "want %s, got %s", want, got)
}

func addItem(t *testing.T, f *listFixture, name, category string, qty float64, price string) *dto.ListItemResponse {
	t.Helper()
	p := decimal.RequireFromString(price)
	item, err := f.svc.AddItem(context.Background(), f.sess, dto.AddItemRequest{
		Name:           name,
		Category:       category,
		Quantity:       qty,
		EstimatedPrice: &p,
	})
	require.NoError(t, err)
	return item
}

func TestAddItemCreatesListLazily(t *testing.T) {
	f := newListFixture()

	item := addItem(t, f, "חלב", "dairy", 2, "7.90")
	assert.Equal(t, "dairy", item.Category)
	assert.Equal(t, 0, item.OrderInCategory)

	list, err := f.svc.GetActiveList(context.Background(), f.sess)
	require.NoError(t, err)
	assert.Equal(t, "קניות שבועיות", list.Name)
	assert.Equal(t, model.ListStatusActive, list.Status)
}

func TestAddItemOrderIsPerCategory(t *testing.T) {
	f := newListFixture()

	first := addItem(t, f, "חלב", "dairy", 1, "7.90")
	second := addItem(t, f, "גבינה לבנה", "dairy", 1, "6.50")
	third := addItem(t, f, "יוגורט", "dairy", 1, "5.00")
	other := addItem(t, f, "מלפפון", "vegetables", 1, "4.00")

	assert.Equal(t, 0, first.OrderInCategory)
	assert.Equal(t, 1, second.OrderInCategory)
	assert.Equal(t, 2, third.OrderInCategory)
	// A different category starts its own sequence.
	assert.Equal(t, 0, other.OrderInCategory)
}

func TestAddItemFreeTextCategorized(t *testing.T) {
	f := newListFixture()

	item, err := f.svc.AddItem(context.Background(), f.sess, dto.AddItemRequest{Name: "עגבניות שרי"})
	require.NoError(t, err)
	assert.Equal(t, "vegetables", item.Category)

	unknown, err := f.svc.AddItem(context.Background(), f.sess, dto.AddItemRequest{Name: "מוצר מסתורי"})
	require.NoError(t, err)
	assert.Equal(t, "pantry", unknown.Category)
	assert.Equal(t, float64(1), unknown.Quantity)
	assert.Equal(t, "units", unknown.Unit)
}

func TestEstimatedTotalTracksItems(t *testing.T) {
	f := newListFixture()
	ctx := context.Background()

	addItem(t, f, "חלב", "dairy", 2, "7.90")
	milk2 := addItem(t, f, "לחם", "bakery", 1, "8.00")

	list, err := f.svc.GetActiveList(ctx, f.sess)
	require.NoError(t, err)
	assertDecimal(t, "23.80", list.EstimatedTotal)

	// Quantity change recomputes the total.
	qty := 3.0
	_, err = f.svc.UpdateItem(ctx, f.sess, uuid.MustParse(milk2.ID), dto.UpdateItemRequest{Quantity: &qty})
	require.NoError(t, err)

	list, err = f.svc.GetActiveList(ctx, f.sess)
	require.NoError(t, err)
	assertDecimal(t, "39.80", list.EstimatedTotal)

	// Removal recomputes too.
	require.NoError(t, f.svc.RemoveItem(ctx, f.sess, uuid.MustParse(milk2.ID)))
	list, err = f.svc.GetActiveList(ctx, f.sess)
	require.NoError(t, err)
	assertDecimal(t, "15.80", list.EstimatedTotal)
}

func TestToggleSetsAuditFields(t *testing.T) {
	f := newListFixture()
	ctx := context.Background()

	item := addItem(t, f, "חלב", "dairy", 1, "7.90")

	checked, err := f.svc.ToggleItem(ctx, f.sess, uuid.MustParse(item.ID))
	require.NoError(t, err)
	assert.True(t, checked.Checked)
	require.NotNil(t, checked.CheckedBy)
	assert.Equal(t, f.sess.UserID.String(), *checked.CheckedBy)
	assert.NotNil(t, checked.CheckedAt)

	unchecked, err := f.svc.ToggleItem(ctx, f.sess, uuid.MustParse(item.ID))
	require.NoError(t, err)
	assert.False(t, unchecked.Checked)
	assert.Nil(t, unchecked.CheckedAt)
	assert.Nil(t, unchecked.CheckedBy)
}

func TestQuickCheckUndoRestoresPriorState(t *testing.T) {
	f := newListFixture()
	ctx := context.Background()

	item := addItem(t, f, "חלב", "dairy", 1, "7.90")

	checked, err := f.svc.QuickCheck(ctx, f.sess, uuid.MustParse(item.ID))
	require.NoError(t, err)
	assert.True(t, checked.Checked)

	restored, err := f.svc.UndoLastCheck(ctx, f.sess)
	require.NoError(t, err)
	require.NotNil(t, restored)
	assert.False(t, restored.Checked)
	assert.Nil(t, restored.CheckedAt)
	assert.Nil(t, restored.CheckedBy)

	// Stack is empty now — undo is a silent no-op.
	nothing, err := f.svc.UndoLastCheck(ctx, f.sess)
	require.NoError(t, err)
	assert.Nil(t, nothing)
}

func TestUndoCapacityDropsOldest(t *testing.T) {
	f := newListFixture()
	ctx := context.Background()

	ids := make([]uuid.UUID, 0, checkout.Capacity+1)
	for _, name := range []string{"חלב", "לחם", "ביצים", "גבינה", "יוגורט", "חמאה"} {
		item := addItem(t, f, name, "dairy", 1, "5.00")
		ids = append(ids, uuid.MustParse(item.ID))
	}

	for _, id := range ids {
		_, err := f.svc.QuickCheck(ctx, f.sess, id)
		require.NoError(t, err)
	}

	// Only the 5 most recent checks are undoable.
	for i := 0; i < checkout.Capacity; i++ {
		restored, err := f.svc.UndoLastCheck(ctx, f.sess)
		require.NoError(t, err)
		require.NotNil(t, restored)
	}
	nothing, err := f.svc.UndoLastCheck(ctx, f.sess)
	require.NoError(t, err)
	assert.Nil(t, nothing)

	// The first (evicted) check survives.
	first, err := f.listRepo.FindItemByID(ctx, ids[0])
	require.NoError(t, err)
	assert.True(t, first.Checked)
}

func TestSupermarketModeTransitions(t *testing.T) {
	f := newListFixture()
	ctx := context.Background()
	addItem(t, f, "חלב", "dairy", 1, "7.90")

	second := f.sess
	second.UserID = uuid.New()

	list, err := f.svc.EnterSupermarketMode(ctx, f.sess)
	require.NoError(t, err)
	assert.Equal(t, model.ListStatusShopping, list.Status)
	assert.Len(t, list.ActiveShoppers, 1)

	// Re-entering from another device is idempotent.
	list, err = f.svc.EnterSupermarketMode(ctx, f.sess)
	require.NoError(t, err)
	assert.Len(t, list.ActiveShoppers, 1)

	list, err = f.svc.EnterSupermarketMode(ctx, second)
	require.NoError(t, err)
	assert.Len(t, list.ActiveShoppers, 2)

	// One shopper leaving keeps the list in shopping.
	list, err = f.svc.ExitSupermarketMode(ctx, f.sess)
	require.NoError(t, err)
	assert.Equal(t, model.ListStatusShopping, list.Status)

	// The last one leaving reverts to active.
	list, err = f.svc.ExitSupermarketMode(ctx, second)
	require.NoError(t, err)
	assert.Equal(t, model.ListStatusActive, list.Status)
}

func TestClearCheckedItems(t *testing.T) {
	f := newListFixture()
	ctx := context.Background()

	keep := addItem(t, f, "חלב", "dairy", 1, "7.90")
	gone := addItem(t, f, "לחם", "bakery", 1, "8.00")
	_, err := f.svc.ToggleItem(ctx, f.sess, uuid.MustParse(gone.ID))
	require.NoError(t, err)

	require.NoError(t, f.svc.ClearCheckedItems(ctx, f.sess))

	list, err := f.svc.GetActiveList(ctx, f.sess)
	require.NoError(t, err)
	require.Len(t, list.Groups, 1)
	assert.Equal(t, keep.ID, list.Groups[0].Items[0].ID)
	assertDecimal(t, "7.90", list.EstimatedTotal)
}

func TestCompleteShoppingFreezesTrip(t *testing.T) {
	f := newListFixture()
	ctx := context.Background()

	milk := addItem(t, f, "חלב", "dairy", 2, "7.90")
	addItem(t, f, "לחם", "bakery", 1, "8.00") // stays unchecked
	_, err := f.svc.QuickCheck(ctx, f.sess, uuid.MustParse(milk.ID))
	require.NoError(t, err)

	actualMilk := decimal.RequireFromString("8.50")
	trip, err := f.svc.CompleteShopping(ctx, f.sess, dto.CompleteShoppingRequest{
		ActualTotal: decimal.RequireFromString("25.00"),
		ItemPrices: []dto.ItemPriceOverride{
			{ItemID: milk.ID, ActualPrice: actualMilk},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, 2, trip.TotalItems)
	assert.Equal(t, 1, trip.CheckedItems)
	assertDecimal(t, "23.80", trip.EstimatedTotal)
	assertDecimal(t, "25.00", trip.ActualTotal)
	require.Len(t, trip.Items, 2)

	// Unchecked items are retained in the snapshot, and the price override
	// is frozen on the checked line.
	var milkLine, breadLine *dto.TripItemResponse
	for i := range trip.Items {
		switch trip.Items[i].Name {
		case "חלב":
			milkLine = &trip.Items[i]
		case "לחם":
			breadLine = &trip.Items[i]
		}
	}
	require.NotNil(t, milkLine)
	require.NotNil(t, breadLine)
	assert.True(t, milkLine.Checked)
	require.NotNil(t, milkLine.ActualPrice)
	assertDecimal(t, "8.50", *milkLine.ActualPrice)
	assert.False(t, breadLine.Checked)

	// The list is retired — reads now fail until a new item arrives.
	_, err = f.svc.GetActiveList(ctx, f.sess)
	assert.ErrorIs(t, err, service.ErrNoActiveList)

	// Undo stacks do not survive checkout.
	nothing, err := f.svc.UndoLastCheck(ctx, f.sess)
	assert.ErrorIs(t, err, service.ErrNoActiveList)
	assert.Nil(t, nothing)

	// The next add starts a fresh, empty list.
	fresh := addItem(t, f, "ביצים", "dairy", 1, "12.00")
	assert.Equal(t, 0, fresh.OrderInCategory)
	list, err := f.svc.GetActiveList(ctx, f.sess)
	require.NoError(t, err)
	assertDecimal(t, "12.00", list.EstimatedTotal)
	assert.Equal(t, 0, list.Progress.CheckedItems)
}

func TestViewerCannotMutate(t *testing.T) {
	f := newListFixture()
	ctx := context.Background()
	addItem(t, f, "חלב", "dairy", 1, "7.90")

	viewer := f.sess
	viewer.Role = service.RoleViewer

	_, err := f.svc.AddItem(ctx, viewer, dto.AddItemRequest{Name: "לחם"})
	assert.ErrorIs(t, err, service.ErrNoEditPermission)

	_, err = f.svc.EnterSupermarketMode(ctx, viewer)
	assert.ErrorIs(t, err, service.ErrNoEditPermission)

	err = f.svc.ClearCheckedItems(ctx, viewer)
	assert.ErrorIs(t, err, service.ErrNoEditPermission)

	// Reads still work.
	_, err = f.svc.GetActiveList(ctx, viewer)
	assert.NoError(t, err)
}

func TestGroupedViewFollowsCategoryOrder(t *testing.T) {
	f := newListFixture()
	ctx := context.Background()

	addItem(t, f, "קפה", "pantry", 1, "30.00")
	addItem(t, f, "מלפפון", "vegetables", 1, "4.00")
	addItem(t, f, "חלב", "dairy", 1, "7.90")

	list, err := f.svc.GetActiveList(ctx, f.sess)
	require.NoError(t, err)
	require.Len(t, list.Groups, 3)
	// Fixed display order: vegetables before dairy before pantry.
	assert.Equal(t, "vegetables", list.Groups[0].Category)
	assert.Equal(t, "dairy", list.Groups[1].Category)
	assert.Equal(t, "pantry", list.Groups[2].Category)
	assert.Equal(t, float64(0), list.Progress.Percent)
}

func TestAddItemRejectsNegativePrice(t *testing.T) {
	f := newListFixture()

	price := decimal.RequireFromString("-5.00")
	_, err := f.svc.AddItem(context.Background(), f.sess, dto.AddItemRequest{
		Name:           "חלב",
		Category:       "dairy",
		Quantity:       2,
		EstimatedPrice: &price,
	})
	assert.ErrorContains(t, err, "negative")

	// Nothing was persisted — the total cannot be driven below zero.
	list, err := f.svc.GetActiveList(context.Background(), f.sess)
	require.NoError(t, err)
	assert.Empty(t, list.Groups)
	assertDecimal(t, "0", list.EstimatedTotal)
}
