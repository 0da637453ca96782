package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/yuda85/family-ops-sub001/internal/checkout"
	"github.com/yuda85/family-ops-sub001/internal/dto"
	"github.com/yuda85/family-ops-sub001/internal/model"
	"github.com/yuda85/family-ops-sub001/internal/realtime"
	"github.com/yuda85/family-ops-sub001/internal/repository"
)

// Dispatcher enqueues background jobs. Defined here so the service layer
// does not import the worker package; worker.Dispatcher satisfies it.
type Dispatcher interface {
	EnqueueArchive(ctx context.Context, tripID uuid.UUID) error
}

// ListService implements the live shopping list: item CRUD with
// auto-ordering, check/uncheck with undo, supermarket mode, and checkout
// into an immutable trip snapshot.
type ListService interface {
	GetActiveList(ctx context.Context, sess Session) (*dto.ListResponse, error)
	AddItem(ctx context.Context, sess Session, req dto.AddItemRequest) (*dto.ListItemResponse, error)
	UpdateItem(ctx context.Context, sess Session, itemID uuid.UUID, req dto.UpdateItemRequest) (*dto.ListItemResponse, error)
	ToggleItem(ctx context.Context, sess Session, itemID uuid.UUID) (*dto.ListItemResponse, error)
	QuickCheck(ctx context.Context, sess Session, itemID uuid.UUID) (*dto.ListItemResponse, error)
	UndoLastCheck(ctx context.Context, sess Session) (*dto.ListItemResponse, error)
	RemoveItem(ctx context.Context, sess Session, itemID uuid.UUID) error
	ClearCheckedItems(ctx context.Context, sess Session) error
	EnterSupermarketMode(ctx context.Context, sess Session) (*dto.ListResponse, error)
	ExitSupermarketMode(ctx context.Context, sess Session) (*dto.ListResponse, error)
	CompleteShopping(ctx context.Context, sess Session, req dto.CompleteShoppingRequest) (*dto.TripResponse, error)
}

type listService struct {
	repo        repository.ListRepository
	catalogRepo repository.CatalogRepository
	trips       repository.TripRepository
	undo        *checkout.Manager
	events      realtime.Publisher // optional
	dispatcher  Dispatcher         // optional
	listName    string
}

func NewListService(
	repo repository.ListRepository,
	catalogRepo repository.CatalogRepository,
	trips repository.TripRepository,
	undo *checkout.Manager,
	events realtime.Publisher,
	dispatcher Dispatcher,
	listName string,
) ListService {
	return &listService{
		repo:        repo,
		catalogRepo: catalogRepo,
		trips:       trips,
		undo:        undo,
		events:      events,
		dispatcher:  dispatcher,
		listName:    listName,
	}
}

func (s *listService) publish(ctx context.Context, event realtime.Event) {
	if s.events != nil {
		s.events.Publish(ctx, event)
	}
}

// ── List lifecycle ──────────────────────────────────────────────────

// ensureActiveList returns the family's open list, creating a fresh active
// one when none exists. A concurrent create from another member just means
// two lists briefly exist; FindOpenByFamily picks the newest.
func (s *listService) ensureActiveList(ctx context.Context, sess Session) (*model.ShoppingList, error) {
	list, err := s.repo.FindOpenByFamily(ctx, sess.FamilyID)
	if err == nil {
		return list, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("error loading active list: %w", err)
	}

	list = &model.ShoppingList{
		FamilyID: sess.FamilyID,
		Name:     s.listName,
		Status:   model.ListStatusActive,
	}
	if err := s.repo.CreateList(ctx, list); err != nil {
		return nil, fmt.Errorf("error creating list: %w", err)
	}

	s.publish(ctx, realtime.NewEvent(sess.FamilyID, realtime.EntityList, realtime.ActionCreated, list.ID, nil))
	return list, nil
}

// openList returns the family's open list or ErrNoActiveList. Mutations
// other than AddItem never auto-create.
func (s *listService) openList(ctx context.Context, sess Session) (*model.ShoppingList, error) {
	list, err := s.repo.FindOpenByFamily(ctx, sess.FamilyID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoActiveList
		}
		return nil, fmt.Errorf("error loading active list: %w", err)
	}
	return list, nil
}

// ownedItem loads an item and verifies it belongs to the given list.
func (s *listService) ownedItem(ctx context.Context, list *model.ShoppingList, itemID uuid.UUID) (*model.ShoppingListItem, error) {
	item, err := s.repo.FindItemByID(ctx, itemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("item not found on the active list")
		}
		return nil, fmt.Errorf("error loading item: %w", err)
	}
	if item.ListID != list.ID {
		return nil, errors.New("item not found on the active list")
	}
	return item, nil
}

// recomputeTotal re-derives the list's estimated total from current items
// and persists it. Runs after every item mutation.
func (s *listService) recomputeTotal(ctx context.Context, listID uuid.UUID) (decimal.Decimal, error) {
	total, err := s.repo.SumEstimated(ctx, listID)
	if err != nil {
		return decimal.Zero, fmt.Errorf("error computing total: %w", err)
	}
	if err := s.repo.UpdateEstimatedTotal(ctx, listID, total); err != nil {
		return decimal.Zero, fmt.Errorf("error saving total: %w", err)
	}
	return total, nil
}

func (s *listService) GetActiveList(ctx context.Context, sess Session) (*dto.ListResponse, error) {
	if err := requireFamily(sess); err != nil {
		return nil, err
	}
	list, err := s.openList(ctx, sess)
	if err != nil {
		return nil, err
	}
	return s.buildListResponse(ctx, sess, list)
}

// ── Item operations ─────────────────────────────────────────────────

func (s *listService) AddItem(ctx context.Context, sess Session, req dto.AddItemRequest) (*dto.ListItemResponse, error) {
	if err := requireEditor(sess); err != nil {
		return nil, err
	}

	list, err := s.ensureActiveList(ctx, sess)
	if err != nil {
		return nil, err
	}

	item := &model.ShoppingListItem{
		ListID:   list.ID,
		Name:     req.Name,
		Quantity: req.Quantity,
		Unit:     model.Unit(req.Unit),
		Note:     req.Note,
		AddedBy:  sess.UserID,
	}

	// A catalog reference fills in name, category, unit, quantity and price
	// defaults; explicit request fields win.
	if req.CatalogItemID != nil {
		catalogID, err := uuid.Parse(*req.CatalogItemID)
		if err != nil {
			return nil, errors.New("invalid catalog item id")
		}
		ref, err := s.catalogRepo.FindByID(ctx, catalogID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, errors.New("catalog item not found")
			}
			return nil, fmt.Errorf("error loading catalog item: %w", err)
		}
		if ref.FamilyID != sess.FamilyID {
			return nil, errors.New("catalog item not found")
		}
		item.CatalogItemID = &ref.ID
		item.Category = ref.Category
		item.EstimatedPrice = ref.EstimatedPrice
		if item.Unit == "" {
			item.Unit = ref.DefaultUnit
		}
		if item.Quantity <= 0 {
			item.Quantity = ref.DefaultQuantity
		}
	}

	if req.Category != "" {
		cat := model.Category(req.Category)
		if !cat.Valid() {
			return nil, fmt.Errorf("unknown category: %s", req.Category)
		}
		item.Category = cat
	}
	if item.Category == "" {
		item.Category = categorizeFree(ctx, s.catalogRepo, sess.FamilyID, req.Name)
	}
	if item.Unit == "" {
		item.Unit = model.UnitUnits
	}
	if item.Quantity <= 0 {
		item.Quantity = 1
	}
	if req.EstimatedPrice != nil {
		if req.EstimatedPrice.IsNegative() {
			return nil, errors.New("price cannot be negative")
		}
		item.EstimatedPrice = *req.EstimatedPrice
	}

	// Append at the end of the item's category: max existing order + 1.
	maxOrder, err := s.repo.MaxOrderInCategory(ctx, list.ID, item.Category)
	if err != nil {
		return nil, fmt.Errorf("error computing item order: %w", err)
	}
	item.OrderInCategory = maxOrder + 1

	if err := s.repo.CreateItem(ctx, item); err != nil {
		return nil, fmt.Errorf("error creating item: %w", err)
	}
	if _, err := s.recomputeTotal(ctx, list.ID); err != nil {
		return nil, err
	}

	s.publish(ctx, realtime.NewEvent(sess.FamilyID, realtime.EntityItem, realtime.ActionCreated, item.ID, nil))

	resp := toListItemResponse(item)
	return &resp, nil
}

func (s *listService) UpdateItem(ctx context.Context, sess Session, itemID uuid.UUID, req dto.UpdateItemRequest) (*dto.ListItemResponse, error) {
	if err := requireEditor(sess); err != nil {
		return nil, err
	}
	list, err := s.openList(ctx, sess)
	if err != nil {
		return nil, err
	}
	item, err := s.ownedItem(ctx, list, itemID)
	if err != nil {
		return nil, err
	}

	fields := map[string]interface{}{}
	if req.Quantity != nil {
		fields["quantity"] = *req.Quantity
		item.Quantity = *req.Quantity
	}
	if req.Unit != nil {
		unit := model.Unit(*req.Unit)
		if !unit.Valid() {
			return nil, fmt.Errorf("unknown unit: %s", *req.Unit)
		}
		fields["unit"] = string(unit)
		item.Unit = unit
	}
	if req.EstimatedPrice != nil {
		if req.EstimatedPrice.IsNegative() {
			return nil, errors.New("price cannot be negative")
		}
		fields["estimated_price"] = *req.EstimatedPrice
		item.EstimatedPrice = *req.EstimatedPrice
	}
	if req.ActualPrice != nil {
		if req.ActualPrice.IsNegative() {
			return nil, errors.New("price cannot be negative")
		}
		fields["actual_price"] = *req.ActualPrice
		item.ActualPrice = req.ActualPrice
	}
	if req.Note != nil {
		fields["note"] = *req.Note
		item.Note = req.Note
	}
	if req.OrderInCategory != nil {
		fields["order_in_category"] = *req.OrderInCategory
		item.OrderInCategory = *req.OrderInCategory
	}

	becameChecked := false
	if req.Checked != nil && *req.Checked != item.Checked {
		applyCheckFields(fields, item, *req.Checked, sess.UserID)
		becameChecked = *req.Checked
	}

	if len(fields) == 0 {
		resp := toListItemResponse(item)
		return &resp, nil
	}

	if err := s.repo.UpdateItemFields(ctx, itemID, fields); err != nil {
		return nil, fmt.Errorf("error updating item: %w", err)
	}
	if _, err := s.recomputeTotal(ctx, list.ID); err != nil {
		return nil, err
	}

	s.publish(ctx, realtime.NewEvent(sess.FamilyID, realtime.EntityItem, realtime.ActionUpdated, item.ID, nil))
	if becameChecked {
		s.publishMilestones(ctx, sess, list, item.Category)
	}

	resp := toListItemResponse(item)
	return &resp, nil
}

// applyCheckFields writes the check flag plus audit fields into both the
// update map and the in-memory item, keeping them atomic with the flag.
func applyCheckFields(fields map[string]interface{}, item *model.ShoppingListItem, checked bool, userID uuid.UUID) {
	fields["checked"] = checked
	item.Checked = checked
	if checked {
		now := time.Now().UTC()
		fields["checked_at"] = now
		fields["checked_by"] = userID
		item.CheckedAt = &now
		item.CheckedBy = &userID
	} else {
		fields["checked_at"] = nil
		fields["checked_by"] = nil
		item.CheckedAt = nil
		item.CheckedBy = nil
	}
}

func (s *listService) ToggleItem(ctx context.Context, sess Session, itemID uuid.UUID) (*dto.ListItemResponse, error) {
	if err := requireEditor(sess); err != nil {
		return nil, err
	}
	list, err := s.openList(ctx, sess)
	if err != nil {
		return nil, err
	}
	item, err := s.ownedItem(ctx, list, itemID)
	if err != nil {
		return nil, err
	}
	return s.setChecked(ctx, sess, list, item, !item.Checked)
}

// QuickCheck checks an item in one tap and records the prior state on the
// caller's undo stack. Quick-checking an already-checked item unchecks it;
// that too is undoable.
func (s *listService) QuickCheck(ctx context.Context, sess Session, itemID uuid.UUID) (*dto.ListItemResponse, error) {
	if err := requireEditor(sess); err != nil {
		return nil, err
	}
	list, err := s.openList(ctx, sess)
	if err != nil {
		return nil, err
	}
	item, err := s.ownedItem(ctx, list, itemID)
	if err != nil {
		return nil, err
	}

	s.undo.Push(list.ID, sess.UserID, checkout.Entry{
		ItemID:    item.ID,
		Checked:   item.Checked,
		CheckedAt: item.CheckedAt,
		CheckedBy: item.CheckedBy,
	})
	return s.setChecked(ctx, sess, list, item, !item.Checked)
}

// UndoLastCheck restores the state recorded by the caller's most recent
// quick-check. With nothing to undo it is a no-op returning (nil, nil).
func (s *listService) UndoLastCheck(ctx context.Context, sess Session) (*dto.ListItemResponse, error) {
	if err := requireEditor(sess); err != nil {
		return nil, err
	}
	list, err := s.openList(ctx, sess)
	if err != nil {
		return nil, err
	}

	entry, ok := s.undo.Pop(list.ID, sess.UserID)
	if !ok {
		return nil, nil
	}

	item, err := s.ownedItem(ctx, list, entry.ItemID)
	if err != nil {
		// The item was removed after the check; the undo entry is stale.
		return nil, nil
	}

	fields := map[string]interface{}{
		"checked": entry.Checked,
	}
	if entry.CheckedAt != nil {
		fields["checked_at"] = *entry.CheckedAt
	} else {
		fields["checked_at"] = nil
	}
	if entry.CheckedBy != nil {
		fields["checked_by"] = *entry.CheckedBy
	} else {
		fields["checked_by"] = nil
	}
	if err := s.repo.UpdateItemFields(ctx, item.ID, fields); err != nil {
		return nil, fmt.Errorf("error restoring item: %w", err)
	}
	item.Checked = entry.Checked
	item.CheckedAt = entry.CheckedAt
	item.CheckedBy = entry.CheckedBy

	s.publish(ctx, realtime.NewEvent(sess.FamilyID, realtime.EntityItem, realtime.ActionUpdated, item.ID, nil))

	resp := toListItemResponse(item)
	return &resp, nil
}

// setChecked flips the check state, persists it atomically with the audit
// fields, and emits sync plus milestone events.
func (s *listService) setChecked(ctx context.Context, sess Session, list *model.ShoppingList, item *model.ShoppingListItem, checked bool) (*dto.ListItemResponse, error) {
	fields := map[string]interface{}{}
	applyCheckFields(fields, item, checked, sess.UserID)
	if err := s.repo.UpdateItemFields(ctx, item.ID, fields); err != nil {
		return nil, fmt.Errorf("error updating item: %w", err)
	}

	s.publish(ctx, realtime.NewEvent(sess.FamilyID, realtime.EntityItem, realtime.ActionUpdated, item.ID, nil))
	if checked {
		s.publishMilestones(ctx, sess, list, item.Category)
	}

	resp := toListItemResponse(item)
	return &resp, nil
}

// publishMilestones emits category-complete and list-complete events after
// a check made the state worth celebrating.
func (s *listService) publishMilestones(ctx context.Context, sess Session, list *model.ShoppingList, category model.Category) {
	items, err := s.repo.ListItems(ctx, list.ID)
	if err != nil {
		log.Warn().Err(err).Msg("milestone check skipped, item load failed")
		return
	}

	allDone := len(items) > 0
	categoryDone := false
	for i := range items {
		if items[i].Category == category {
			categoryDone = items[i].Checked
			if !categoryDone {
				allDone = false
				break
			}
		}
		if !items[i].Checked {
			allDone = false
		}
	}

	if categoryDone {
		s.publish(ctx, realtime.NewEvent(sess.FamilyID, realtime.EntityList, realtime.ActionCategoryDone, list.ID,
			map[string]any{"category": string(category)}))
	}
	if allDone {
		s.publish(ctx, realtime.NewEvent(sess.FamilyID, realtime.EntityList, realtime.ActionAllDone, list.ID, nil))
	}
}

func (s *listService) RemoveItem(ctx context.Context, sess Session, itemID uuid.UUID) error {
	if err := requireEditor(sess); err != nil {
		return err
	}
	list, err := s.openList(ctx, sess)
	if err != nil {
		return err
	}
	item, err := s.ownedItem(ctx, list, itemID)
	if err != nil {
		return err
	}

	if err := s.repo.DeleteItem(ctx, item.ID); err != nil {
		return fmt.Errorf("error deleting item: %w", err)
	}
	if _, err := s.recomputeTotal(ctx, list.ID); err != nil {
		return err
	}

	s.publish(ctx, realtime.NewEvent(sess.FamilyID, realtime.EntityItem, realtime.ActionDeleted, item.ID, nil))
	return nil
}

// ClearCheckedItems bulk-deletes every checked item in one transaction.
func (s *listService) ClearCheckedItems(ctx context.Context, sess Session) error {
	if err := requireEditor(sess); err != nil {
		return err
	}
	list, err := s.openList(ctx, sess)
	if err != nil {
		return err
	}

	err = runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		return s.repo.DeleteCheckedTx(tx, list.ID)
	})
	if err != nil {
		return fmt.Errorf("error clearing checked items: %w", err)
	}
	if _, err := s.recomputeTotal(ctx, list.ID); err != nil {
		return err
	}

	s.publish(ctx, realtime.NewEvent(sess.FamilyID, realtime.EntityList, realtime.ActionUpdated, list.ID, nil))
	return nil
}

// ── Supermarket mode ────────────────────────────────────────────────

// EnterSupermarketMode adds the caller to the list's active-shopper set.
// The first shopper moves the list from active to shopping. Re-entering is
// idempotent.
func (s *listService) EnterSupermarketMode(ctx context.Context, sess Session) (*dto.ListResponse, error) {
	if err := requireEditor(sess); err != nil {
		return nil, err
	}
	list, err := s.openList(ctx, sess)
	if err != nil {
		return nil, err
	}

	shopper := &model.ListShopper{
		ListID:    list.ID,
		UserID:    sess.UserID,
		EnteredAt: time.Now().UTC(),
	}
	if err := s.repo.AddShopper(ctx, shopper); err != nil {
		return nil, fmt.Errorf("error entering supermarket mode: %w", err)
	}

	if list.Status == model.ListStatusActive {
		if err := s.repo.UpdateListStatus(ctx, list.ID, model.ListStatusShopping); err != nil {
			return nil, fmt.Errorf("error updating list status: %w", err)
		}
		list.Status = model.ListStatusShopping
	}

	s.publish(ctx, realtime.NewEvent(sess.FamilyID, realtime.EntityList, realtime.ActionUpdated, list.ID,
		map[string]any{"status": list.Status}))

	return s.buildListResponse(ctx, sess, list)
}

// ExitSupermarketMode removes the caller from the shopper set. The last
// shopper leaving reverts the list to active. Exiting when not shopping is
// idempotent.
func (s *listService) ExitSupermarketMode(ctx context.Context, sess Session) (*dto.ListResponse, error) {
	if err := requireEditor(sess); err != nil {
		return nil, err
	}
	list, err := s.openList(ctx, sess)
	if err != nil {
		return nil, err
	}

	if err := s.repo.RemoveShopper(ctx, list.ID, sess.UserID); err != nil {
		return nil, fmt.Errorf("error exiting supermarket mode: %w", err)
	}

	count, err := s.repo.CountShoppers(ctx, list.ID)
	if err != nil {
		return nil, fmt.Errorf("error counting shoppers: %w", err)
	}
	if count == 0 && list.Status == model.ListStatusShopping {
		if err := s.repo.UpdateListStatus(ctx, list.ID, model.ListStatusActive); err != nil {
			return nil, fmt.Errorf("error updating list status: %w", err)
		}
		list.Status = model.ListStatusActive
	}

	s.publish(ctx, realtime.NewEvent(sess.FamilyID, realtime.EntityList, realtime.ActionUpdated, list.ID,
		map[string]any{"status": list.Status}))

	return s.buildListResponse(ctx, sess, list)
}

// ── Checkout ────────────────────────────────────────────────────────

// CompleteShopping freezes the list into an immutable trip snapshot.
// Per-item price overrides are applied first, then the trip row, the list
// status flip and the shopper-set wipe commit in one transaction. Pattern
// folding runs asynchronously afterward.
func (s *listService) CompleteShopping(ctx context.Context, sess Session, req dto.CompleteShoppingRequest) (*dto.TripResponse, error) {
	if err := requireEditor(sess); err != nil {
		return nil, err
	}
	list, err := s.openList(ctx, sess)
	if err != nil {
		return nil, err
	}
	if req.ActualTotal.IsNegative() {
		return nil, errors.New("actual total cannot be negative")
	}

	// Overrides are individual updates, not part of the closing transaction.
	// A failure here aborts before anything irreversible happened.
	for _, override := range req.ItemPrices {
		itemID, err := uuid.Parse(override.ItemID)
		if err != nil {
			return nil, errors.New("invalid item id in price overrides")
		}
		item, err := s.ownedItem(ctx, list, itemID)
		if err != nil {
			return nil, err
		}
		if err := s.repo.UpdateItemFields(ctx, item.ID, map[string]interface{}{
			"actual_price": override.ActualPrice,
		}); err != nil {
			return nil, fmt.Errorf("error applying price override: %w", err)
		}
	}

	items, err := s.repo.ListItems(ctx, list.ID)
	if err != nil {
		return nil, fmt.Errorf("error loading items: %w", err)
	}

	estimated := decimal.Zero
	checked := 0
	tripItems := make([]model.TripItem, 0, len(items))
	for i := range items {
		it := &items[i]
		estimated = estimated.Add(decimal.NewFromFloat(it.Quantity).Mul(it.EstimatedPrice))
		if it.Checked {
			checked++
		}
		tripItems = append(tripItems, model.TripItem{
			Name:           it.Name,
			Category:       it.Category,
			Quantity:       it.Quantity,
			Unit:           it.Unit,
			EstimatedPrice: it.EstimatedPrice,
			ActualPrice:    it.ActualPrice,
			Checked:        it.Checked,
		})
	}

	now := time.Now().UTC()
	trip := &model.ShoppingTrip{
		FamilyID:       sess.FamilyID,
		ListID:         list.ID,
		ListName:       list.Name,
		EstimatedTotal: estimated,
		ActualTotal:    req.ActualTotal,
		TotalItems:     len(items),
		CheckedItems:   checked,
		CompletedBy:    sess.UserID,
		CompletedAt:    now,
		Items:          tripItems,
	}

	err = runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		if err := s.trips.CreateTx(tx, trip); err != nil {
			return fmt.Errorf("error creating trip: %w", err)
		}
		if err := s.repo.CompleteListTx(tx, list.ID, req.ActualTotal, sess.UserID, now); err != nil {
			return fmt.Errorf("error completing list: %w", err)
		}
		if err := s.repo.DeleteShoppersTx(tx, list.ID); err != nil {
			return fmt.Errorf("error clearing shoppers: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.undo.DropList(list.ID)

	if s.dispatcher != nil {
		if err := s.dispatcher.EnqueueArchive(ctx, trip.ID); err != nil {
			log.Error().Err(err).
				Str("trip_id", trip.ID.String()).
				Msg("failed to enqueue pattern archival")
		}
	}

	s.publish(ctx, realtime.NewEvent(sess.FamilyID, realtime.EntityList, realtime.ActionCompleted, list.ID,
		map[string]any{"trip_id": trip.ID.String()}))

	log.Info().
		Str("family_id", sess.FamilyID.String()).
		Str("list_id", list.ID.String()).
		Str("trip_id", trip.ID.String()).
		Int("items", len(items)).
		Int("checked", checked).
		Msg("shopping completed")

	resp := toTripResponse(trip, true)
	return &resp, nil
}

// ── View assembly ───────────────────────────────────────────────────

func (s *listService) buildListResponse(ctx context.Context, sess Session, list *model.ShoppingList) (*dto.ListResponse, error) {
	items, err := s.repo.ListItems(ctx, list.ID)
	if err != nil {
		return nil, fmt.Errorf("error loading items: %w", err)
	}
	shoppers, err := s.repo.ListShoppers(ctx, list.ID)
	if err != nil {
		return nil, fmt.Errorf("error loading shoppers: %w", err)
	}

	shopperIDs := make([]string, 0, len(shoppers))
	for i := range shoppers {
		shopperIDs = append(shopperIDs, shoppers[i].UserID.String())
	}

	resp := &dto.ListResponse{
		ID:             list.ID.String(),
		Name:           list.Name,
		Status:         list.Status,
		EstimatedTotal: list.EstimatedTotal,
		ActualTotal:    list.ActualTotal,
		ActiveShoppers: shopperIDs,
		Groups:         groupItems(items),
		Progress:       progressOf(items),
		CanUndo:        s.undo.CanUndo(list.ID, sess.UserID),
		CreatedAt:      list.CreatedAt.Format(timeFmt),
	}
	if list.CompletedAt != nil {
		t := list.CompletedAt.Format(timeFmt)
		resp.CompletedAt = &t
	}
	return resp, nil
}

// groupItems arranges items into category sections following the fixed
// display order. Empty categories are omitted.
func groupItems(items []model.ShoppingListItem) []dto.CategoryGroupResponse {
	byCategory := make(map[model.Category][]dto.ListItemResponse)
	complete := make(map[model.Category]bool)
	for i := range items {
		it := &items[i]
		if _, seen := byCategory[it.Category]; !seen {
			complete[it.Category] = true
		}
		byCategory[it.Category] = append(byCategory[it.Category], toListItemResponse(it))
		if !it.Checked {
			complete[it.Category] = false
		}
	}

	groups := make([]dto.CategoryGroupResponse, 0, len(byCategory))
	for _, cat := range model.CategoryOrder {
		section, ok := byCategory[cat]
		if !ok {
			continue
		}
		groups = append(groups, dto.CategoryGroupResponse{
			Category:   string(cat),
			Items:      section,
			IsComplete: complete[cat],
		})
	}
	return groups
}

func progressOf(items []model.ShoppingListItem) dto.ProgressResponse {
	checked := 0
	for i := range items {
		if items[i].Checked {
			checked++
		}
	}
	p := dto.ProgressResponse{CheckedItems: checked, TotalItems: len(items)}
	if len(items) > 0 {
		p.Percent = float64(checked) / float64(len(items)) * 100
	}
	return p
}

// categorizeFree resolves a free-text name with the keyword rules, then a
// catalog substring fallback, then pantry. Shared with the catalog service.
func categorizeFree(ctx context.Context, repo repository.CatalogRepository, familyID uuid.UUID, name string) model.Category {
	svc := &catalogService{repo: repo}
	return svc.categorizeName(ctx, familyID, name)
}

// ── Mapping ─────────────────────────────────────────────────────────

func toListItemResponse(item *model.ShoppingListItem) dto.ListItemResponse {
	resp := dto.ListItemResponse{
		ID:              item.ID.String(),
		Name:            item.Name,
		Category:        string(item.Category),
		Quantity:        item.Quantity,
		Unit:            string(item.Unit),
		EstimatedPrice:  item.EstimatedPrice,
		ActualPrice:     item.ActualPrice,
		Checked:         item.Checked,
		OrderInCategory: item.OrderInCategory,
		Note:            item.Note,
		AddedBy:         item.AddedBy.String(),
		AddedAt:         item.CreatedAt.Format(timeFmt),
	}
	if item.CatalogItemID != nil {
		id := item.CatalogItemID.String()
		resp.CatalogItemID = &id
	}
	if item.CheckedAt != nil {
		t := item.CheckedAt.Format(timeFmt)
		resp.CheckedAt = &t
	}
	if item.CheckedBy != nil {
		id := item.CheckedBy.String()
		resp.CheckedBy = &id
	}
	return resp
}

func toTripResponse(trip *model.ShoppingTrip, withItems bool) dto.TripResponse {
	resp := dto.TripResponse{
		ID:             trip.ID.String(),
		ListName:       trip.ListName,
		EstimatedTotal: trip.EstimatedTotal,
		ActualTotal:    trip.ActualTotal,
		TotalItems:     trip.TotalItems,
		CheckedItems:   trip.CheckedItems,
		CompletedBy:    trip.CompletedBy.String(),
		CompletedAt:    trip.CompletedAt.Format(timeFmt),
	}
	if withItems {
		resp.Items = make([]dto.TripItemResponse, 0, len(trip.Items))
		for i := range trip.Items {
			it := &trip.Items[i]
			resp.Items = append(resp.Items, dto.TripItemResponse{
				Name:           it.Name,
				Category:       string(it.Category),
				Quantity:       it.Quantity,
				Unit:           string(it.Unit),
				EstimatedPrice: it.EstimatedPrice,
				ActualPrice:    it.ActualPrice,
				Checked:        it.Checked,
			})
		}
	}
	return resp
}
