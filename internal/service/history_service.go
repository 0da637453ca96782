package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/yuda85/family-ops-sub001/internal/dto"
	"github.com/yuda85/family-ops-sub001/internal/model"
	"github.com/yuda85/family-ops-sub001/internal/repository"
)

const (
	// defaultIntervalDays seeds a never-before-seen item's purchase cadence.
	defaultIntervalDays = 7
	// replenishmentDueRatio: an item is suggested once this share of its
	// average interval has elapsed since the last purchase.
	replenishmentDueRatio = 0.8
)

// HistoryService serves the read side of completed trips and maintains the
// per-item purchase patterns folded out of them.
type HistoryService interface {
	// Archive folds one completed trip into the family's purchase patterns.
	// Idempotence is not guaranteed; callers must not archive a trip twice.
	Archive(ctx context.Context, trip *model.ShoppingTrip) error

	ListTrips(ctx context.Context, sess Session) ([]dto.TripResponse, error)
	GetTrip(ctx context.Context, sess Session, tripID uuid.UUID) (*dto.TripResponse, error)
	MonthlySpend(ctx context.Context, sess Session) ([]dto.MonthlySpendResponse, error)
	Accuracy(ctx context.Context, sess Session) (*dto.AccuracyResponse, error)
	SuggestedReplenishments(ctx context.Context, sess Session) ([]dto.ReplenishmentResponse, error)
}

type historyService struct {
	trips    repository.TripRepository
	patterns repository.PatternRepository
}

func NewHistoryService(trips repository.TripRepository, patterns repository.PatternRepository) HistoryService {
	return &historyService{trips: trips, patterns: patterns}
}

// ── Pattern folding ─────────────────────────────────────────────────

// Archive updates one pattern row per checked trip item. The trip's own
// completion time is the clock — re-running a delayed job yields the same
// numbers. Unchecked items are planning noise and do not touch patterns.
func (s *historyService) Archive(ctx context.Context, trip *model.ShoppingTrip) error {
	for i := range trip.Items {
		item := &trip.Items[i]
		if !item.Checked {
			continue
		}
		if err := s.foldItem(ctx, trip, item); err != nil {
			return fmt.Errorf("error folding pattern for %q: %w", item.Name, err)
		}
	}

	log.Info().
		Str("family_id", trip.FamilyID.String()).
		Str("trip_id", trip.ID.String()).
		Msg("trip archived into purchase patterns")
	return nil
}

func (s *historyService) foldItem(ctx context.Context, trip *model.ShoppingTrip, item *model.TripItem) error {
	pattern, err := s.patterns.Find(ctx, trip.FamilyID, item.Name, item.Category)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		return s.patterns.Create(ctx, &model.PurchasePattern{
			FamilyID:        trip.FamilyID,
			ItemName:        item.Name,
			Category:        item.Category,
			PurchaseCount:   1,
			AvgQuantity:     item.Quantity,
			AvgIntervalDays: defaultIntervalDays,
			LastPurchased:   trip.CompletedAt,
		})
	}

	oldCount := float64(pattern.PurchaseCount)
	newCount := oldCount + 1
	pattern.AvgQuantity = (pattern.AvgQuantity*oldCount + item.Quantity) / newCount

	// The interval average weights by the number of intervals already seen
	// (count-1), so the first repurchase replaces the assumed cadence
	// entirely rather than blending with it.
	daysSince := wholeDays(pattern.LastPurchased, trip.CompletedAt)
	intervals := oldCount // after this purchase there are oldCount intervals
	pattern.AvgIntervalDays = (pattern.AvgIntervalDays*(oldCount-1) + float64(daysSince)) / intervals

	pattern.PurchaseCount = int(newCount)
	pattern.LastPurchased = trip.CompletedAt
	return s.patterns.Update(ctx, pattern)
}

func wholeDays(from, to time.Time) int {
	d := int(to.Sub(from).Hours() / 24)
	if d < 0 {
		return 0
	}
	return d
}

// ── Trip reads ──────────────────────────────────────────────────────

func (s *historyService) ListTrips(ctx context.Context, sess Session) ([]dto.TripResponse, error) {
	if err := requireFamily(sess); err != nil {
		return nil, err
	}
	trips, err := s.trips.ListByFamily(ctx, sess.FamilyID)
	if err != nil {
		return nil, fmt.Errorf("error loading trips: %w", err)
	}
	out := make([]dto.TripResponse, 0, len(trips))
	for i := range trips {
		out = append(out, toTripResponse(&trips[i], false))
	}
	return out, nil
}

func (s *historyService) GetTrip(ctx context.Context, sess Session, tripID uuid.UUID) (*dto.TripResponse, error) {
	if err := requireFamily(sess); err != nil {
		return nil, err
	}
	trip, err := s.trips.FindByID(ctx, tripID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("trip not found")
		}
		return nil, fmt.Errorf("error loading trip: %w", err)
	}
	if trip.FamilyID != sess.FamilyID {
		return nil, errors.New("trip not found")
	}
	resp := toTripResponse(trip, true)
	return &resp, nil
}

// ── Aggregates ──────────────────────────────────────────────────────

// MonthlySpend groups trips per calendar month, newest month first. Trips
// without a completion timestamp fall back to their creation time.
func (s *historyService) MonthlySpend(ctx context.Context, sess Session) ([]dto.MonthlySpendResponse, error) {
	if err := requireFamily(sess); err != nil {
		return nil, err
	}
	trips, err := s.trips.ListByFamily(ctx, sess.FamilyID)
	if err != nil {
		return nil, fmt.Errorf("error loading trips: %w", err)
	}

	byMonth := make(map[string]*dto.MonthlySpendResponse)
	for i := range trips {
		t := &trips[i]
		when := t.CompletedAt
		if when.IsZero() {
			when = t.CreatedAt
		}
		month := when.Format("2006-01")

		agg, ok := byMonth[month]
		if !ok {
			agg = &dto.MonthlySpendResponse{Month: month}
			byMonth[month] = agg
		}
		agg.EstimatedTotal = agg.EstimatedTotal.Add(t.EstimatedTotal)
		agg.ActualTotal = agg.ActualTotal.Add(t.ActualTotal)
		agg.TripCount++
	}

	out := make([]dto.MonthlySpendResponse, 0, len(byMonth))
	for _, agg := range byMonth {
		out = append(out, *agg)
	}
	// "2006-01" sorts lexicographically in chronological order.
	sort.Slice(out, func(i, j int) bool { return out[i].Month > out[j].Month })
	return out, nil
}

// Accuracy returns overall actual spend as a percentage of estimated spend.
// With no history, or nothing estimated, accuracy is a perfect 100.
func (s *historyService) Accuracy(ctx context.Context, sess Session) (*dto.AccuracyResponse, error) {
	if err := requireFamily(sess); err != nil {
		return nil, err
	}
	trips, err := s.trips.ListByFamily(ctx, sess.FamilyID)
	if err != nil {
		return nil, fmt.Errorf("error loading trips: %w", err)
	}

	estimated := decimal.Zero
	actual := decimal.Zero
	for i := range trips {
		estimated = estimated.Add(trips[i].EstimatedTotal)
		actual = actual.Add(trips[i].ActualTotal)
	}

	percent := decimal.NewFromInt(100)
	if !estimated.IsZero() {
		percent = actual.Div(estimated).Mul(decimal.NewFromInt(100)).Round(1)
	}
	return &dto.AccuracyResponse{Percent: percent}, nil
}

// SuggestedReplenishments lists items that are probably running out: 80% or
// more of the item's average purchase interval has passed.
func (s *historyService) SuggestedReplenishments(ctx context.Context, sess Session) ([]dto.ReplenishmentResponse, error) {
	if err := requireFamily(sess); err != nil {
		return nil, err
	}
	patterns, err := s.patterns.ListByFamily(ctx, sess.FamilyID)
	if err != nil {
		return nil, fmt.Errorf("error loading purchase patterns: %w", err)
	}

	now := time.Now().UTC()
	out := make([]dto.ReplenishmentResponse, 0)
	for i := range patterns {
		p := &patterns[i]
		days := wholeDays(p.LastPurchased, now)
		if float64(days) < replenishmentDueRatio*p.AvgIntervalDays {
			continue
		}
		out = append(out, dto.ReplenishmentResponse{
			ItemName:        p.ItemName,
			Category:        string(p.Category),
			AvgQuantity:     p.AvgQuantity,
			AvgIntervalDays: p.AvgIntervalDays,
			DaysSinceLast:   days,
			LastPurchased:   p.LastPurchased.Format(timeFmt),
		})
	}
	// Most overdue first.
	sort.SliceStable(out, func(i, j int) bool { return out[i].DaysSinceLast > out[j].DaysSinceLast })
	return out, nil
}
