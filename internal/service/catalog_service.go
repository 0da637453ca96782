package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/yuda85/family-ops-sub001/internal/catalog"
	"github.com/yuda85/family-ops-sub001/internal/dto"
	"github.com/yuda85/family-ops-sub001/internal/model"
	"github.com/yuda85/family-ops-sub001/internal/repository"
)

const seedBatchSize = 500

// CatalogService manages the family's product catalog: search,
// auto-categorization, custom items, price tracking and first-use seeding.
type CatalogService interface {
	Search(ctx context.Context, sess Session, query string) ([]dto.CatalogItemResponse, error)
	Categorize(ctx context.Context, sess Session, name string) (model.Category, error)
	SeedIfEmpty(ctx context.Context, sess Session) (*dto.SeedResponse, error)
	AddCustomItem(ctx context.Context, sess Session, req dto.AddCatalogItemRequest) (*dto.CatalogItemResponse, error)
	UpdatePrice(ctx context.Context, sess Session, itemID uuid.UUID, req dto.UpdatePriceRequest) (*dto.CatalogItemResponse, error)
	ListPriceChanges(ctx context.Context, sess Session, itemID uuid.UUID) ([]dto.PriceChangeResponse, error)
}

type catalogService struct {
	repo repository.CatalogRepository
	rdb  *redis.Client // optional, guards concurrent seeding
}

func NewCatalogService(repo repository.CatalogRepository, rdb *redis.Client) CatalogService {
	return &catalogService{repo: repo, rdb: rdb}
}

// ── Search ──────────────────────────────────────────────────────────

// Relevance tiers, highest wins. Ties keep catalog insertion order.
const (
	scoreExact    = 4
	scorePrefix   = 3
	scoreContains = 2
	scoreKeyword  = 1
)

func (s *catalogService) Search(ctx context.Context, sess Session, query string) ([]dto.CatalogItemResponse, error) {
	if err := requireFamily(sess); err != nil {
		return nil, err
	}

	// Blank queries degrade to an empty result rather than dumping the
	// whole catalog.
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return []dto.CatalogItemResponse{}, nil
	}

	items, err := s.repo.ListByFamily(ctx, sess.FamilyID)
	if err != nil {
		return nil, fmt.Errorf("error loading catalog: %w", err)
	}

	type scored struct {
		item  *model.CatalogItem
		score int
	}
	matches := make([]scored, 0, 16)
	for i := range items {
		sc := matchScore(&items[i], q)
		if sc > 0 {
			matches = append(matches, scored{item: &items[i], score: sc})
		}
	}

	// Stable: equal scores keep insertion order from the catalog.
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].score > matches[j].score
	})

	out := make([]dto.CatalogItemResponse, 0, len(matches))
	for _, m := range matches {
		out = append(out, toCatalogItemResponse(m.item))
	}
	return out, nil
}

func matchScore(item *model.CatalogItem, q string) int {
	name := strings.ToLower(item.Name)
	switch {
	case name == q:
		return scoreExact
	case strings.HasPrefix(name, q):
		return scorePrefix
	case strings.Contains(name, q):
		return scoreContains
	}
	for _, kw := range item.Keywords {
		if strings.Contains(strings.ToLower(kw), q) {
			return scoreKeyword
		}
	}
	return 0
}

// ── Categorization ──────────────────────────────────────────────────

func (s *catalogService) Categorize(ctx context.Context, sess Session, name string) (model.Category, error) {
	if err := requireFamily(sess); err != nil {
		return "", err
	}
	return s.categorizeName(ctx, sess.FamilyID, name), nil
}

// categorizeName applies the ordered keyword rules first, then falls back
// to a substring match against the family's existing catalog. Unmatched
// names land in pantry.
func (s *catalogService) categorizeName(ctx context.Context, familyID uuid.UUID, name string) model.Category {
	if cat, ok := catalog.MatchRule(name); ok {
		return cat
	}

	items, err := s.repo.ListByFamily(ctx, familyID)
	if err != nil {
		log.Warn().Err(err).Msg("categorize: catalog lookup failed, defaulting to pantry")
		return model.CategoryPantry
	}
	normalized := catalog.Normalize(name)
	for i := range items {
		itemName := catalog.Normalize(items[i].Name)
		if strings.Contains(normalized, itemName) || strings.Contains(itemName, normalized) {
			return items[i].Category
		}
	}
	return model.CategoryPantry
}

// ── Seeding ─────────────────────────────────────────────────────────

func (s *catalogService) SeedIfEmpty(ctx context.Context, sess Session) (*dto.SeedResponse, error) {
	if err := requireFamily(sess); err != nil {
		return nil, err
	}

	count, err := s.repo.CountByFamily(ctx, sess.FamilyID)
	if err != nil {
		return nil, fmt.Errorf("error counting catalog: %w", err)
	}
	if count > 0 {
		return &dto.SeedResponse{Seeded: false}, nil
	}

	// Best-effort guard against two family members triggering the seed
	// concurrently. A failed Redis call degrades to unguarded seeding.
	if s.rdb != nil {
		key := "catalog:seed:" + sess.FamilyID.String()
		ok, err := s.rdb.SetNX(ctx, key, sess.UserID.String(), 30*time.Second).Result()
		if err != nil {
			log.Warn().Err(err).Msg("seed guard unavailable, proceeding without lock")
		} else if !ok {
			return &dto.SeedResponse{Seeded: false}, nil
		}
	}

	items := catalog.DefaultItems(sess.FamilyID)
	if err := s.repo.CreateInBatches(ctx, items, seedBatchSize); err != nil {
		return nil, fmt.Errorf("error seeding catalog: %w", err)
	}

	log.Info().
		Str("family_id", sess.FamilyID.String()).
		Int("items", len(items)).
		Msg("catalog seeded")

	return &dto.SeedResponse{Seeded: true, Inserted: len(items)}, nil
}

// ── Custom items ────────────────────────────────────────────────────

func (s *catalogService) AddCustomItem(ctx context.Context, sess Session, req dto.AddCatalogItemRequest) (*dto.CatalogItemResponse, error) {
	if err := requireEditor(sess); err != nil {
		return nil, err
	}

	category := model.Category(req.Category)
	if req.Category == "" {
		category = s.categorizeName(ctx, sess.FamilyID, req.Name)
	} else if !category.Valid() {
		return nil, fmt.Errorf("unknown category: %s", req.Category)
	}

	unit := model.Unit(req.DefaultUnit)
	if req.DefaultUnit == "" {
		unit = model.UnitUnits
	} else if !unit.Valid() {
		return nil, fmt.Errorf("unknown unit: %s", req.DefaultUnit)
	}

	qty := req.DefaultQuantity
	if qty <= 0 {
		qty = 1
	}

	item := &model.CatalogItem{
		FamilyID:        sess.FamilyID,
		Name:            strings.TrimSpace(req.Name),
		Category:        category,
		DefaultUnit:     unit,
		DefaultQuantity: qty,
		EstimatedPrice:  req.EstimatedPrice,
		Keywords:        req.Keywords,
		Custom:          true,
	}
	if err := s.repo.Create(ctx, item); err != nil {
		return nil, fmt.Errorf("error creating catalog item: %w", err)
	}

	resp := toCatalogItemResponse(item)
	return &resp, nil
}

// ── Price tracking ──────────────────────────────────────────────────

func (s *catalogService) UpdatePrice(ctx context.Context, sess Session, itemID uuid.UUID, req dto.UpdatePriceRequest) (*dto.CatalogItemResponse, error) {
	if err := requireEditor(sess); err != nil {
		return nil, err
	}
	if req.Price.IsNegative() {
		return nil, errors.New("price cannot be negative")
	}

	item, err := s.repo.FindByID(ctx, itemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("catalog item not found")
		}
		return nil, fmt.Errorf("error loading catalog item: %w", err)
	}
	if item.FamilyID != sess.FamilyID {
		return nil, errors.New("catalog item not found")
	}

	now := time.Now().UTC()
	err = runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		if err := s.repo.UpdatePriceTx(tx, itemID, req.Price, sess.UserID, now); err != nil {
			return fmt.Errorf("error updating price: %w", err)
		}
		change := &model.CatalogPriceChange{
			CatalogItemID: itemID,
			PriceBefore:   item.EstimatedPrice,
			PriceAfter:    req.Price,
			ChangedBy:     sess.UserID,
		}
		if err := s.repo.CreatePriceChangeTx(tx, change); err != nil {
			return fmt.Errorf("error recording price change: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	item.EstimatedPrice = req.Price
	item.PriceUpdatedAt = &now
	item.PriceUpdatedBy = &sess.UserID

	resp := toCatalogItemResponse(item)
	return &resp, nil
}

func (s *catalogService) ListPriceChanges(ctx context.Context, sess Session, itemID uuid.UUID) ([]dto.PriceChangeResponse, error) {
	if err := requireFamily(sess); err != nil {
		return nil, err
	}

	item, err := s.repo.FindByID(ctx, itemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("catalog item not found")
		}
		return nil, fmt.Errorf("error loading catalog item: %w", err)
	}
	if item.FamilyID != sess.FamilyID {
		return nil, errors.New("catalog item not found")
	}

	changes, err := s.repo.ListPriceChanges(ctx, itemID)
	if err != nil {
		return nil, fmt.Errorf("error loading price history: %w", err)
	}

	out := make([]dto.PriceChangeResponse, 0, len(changes))
	for i := range changes {
		c := &changes[i]
		out = append(out, dto.PriceChangeResponse{
			ID:          c.ID.String(),
			PriceBefore: c.PriceBefore,
			PriceAfter:  c.PriceAfter,
			ChangedBy:   c.ChangedBy.String(),
			ChangedAt:   c.CreatedAt.Format(timeFmt),
		})
	}
	return out, nil
}

// ── Mapping ─────────────────────────────────────────────────────────

func toCatalogItemResponse(item *model.CatalogItem) dto.CatalogItemResponse {
	resp := dto.CatalogItemResponse{
		ID:              item.ID.String(),
		Name:            item.Name,
		Category:        string(item.Category),
		DefaultUnit:     string(item.DefaultUnit),
		DefaultQuantity: item.DefaultQuantity,
		EstimatedPrice:  item.EstimatedPrice,
		Keywords:        item.Keywords,
		Custom:          item.Custom,
	}
	if item.PriceUpdatedAt != nil {
		t := item.PriceUpdatedAt.Format(timeFmt)
		resp.PriceUpdatedAt = &t
	}
	return resp
}
