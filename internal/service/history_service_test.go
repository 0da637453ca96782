package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yuda85/family-ops-sub001/internal/model"
	"github.com/yuda85/family-ops-sub001/internal/service"
)

func TestArchiveCreatesPatternForNewItem(t *testing.T) {
	trips := &fakeTripRepo{}
	patterns := &fakePatternRepo{}
	svc := service.NewHistoryService(trips, patterns)

	familyID := uuid.New()
	completedAt := time.Date(2026, 8, 20, 18, 0, 0, 0, time.UTC)
	trip := &model.ShoppingTrip{
		ID:          uuid.New(),
		FamilyID:    familyID,
		CompletedAt: completedAt,
		Items: []model.TripItem{
			{Name: "חלב", Category: model.CategoryDairy, Quantity: 2, Checked: true},
			{Name: "לחם", Category: model.CategoryBakery, Quantity: 1, Checked: false},
		},
	}

	require.NoError(t, svc.Archive(context.Background(), trip))

	// Only the checked item produced a pattern.
	require.Len(t, patterns.patterns, 1)
	p := patterns.patterns[0]
	assert.Equal(t, "חלב", p.ItemName)
	assert.Equal(t, 1, p.PurchaseCount)
	assert.Equal(t, float64(2), p.AvgQuantity)
	assert.Equal(t, float64(7), p.AvgIntervalDays)
	assert.Equal(t, completedAt, p.LastPurchased)
}

func TestArchiveFoldsExistingPattern(t *testing.T) {
	trips := &fakeTripRepo{}
	patterns := &fakePatternRepo{}
	svc := service.NewHistoryService(trips, patterns)

	familyID := uuid.New()
	last := time.Date(2026, 8, 10, 18, 0, 0, 0, time.UTC)
	patterns.patterns = append(patterns.patterns, model.PurchasePattern{
		ID:              uuid.New(),
		FamilyID:        familyID,
		ItemName:        "חלב",
		Category:        model.CategoryDairy,
		PurchaseCount:   3,
		AvgQuantity:     2,
		AvgIntervalDays: 7,
		LastPurchased:   last,
	})

	// Bought again 10 days later.
	trip := &model.ShoppingTrip{
		ID:          uuid.New(),
		FamilyID:    familyID,
		CompletedAt: last.AddDate(0, 0, 10),
		Items: []model.TripItem{
			{Name: "חלב", Category: model.CategoryDairy, Quantity: 1, Checked: true},
		},
	}
	require.NoError(t, svc.Archive(context.Background(), trip))

	p := patterns.patterns[0]
	assert.Equal(t, 4, p.PurchaseCount)
	// (2×3 + 1) / 4
	assert.InDelta(t, 1.75, p.AvgQuantity, 1e-9)
	// (7×2 + 10) / 3
	assert.InDelta(t, 8.0, p.AvgIntervalDays, 1e-9)
	assert.Equal(t, trip.CompletedAt, p.LastPurchased)
}

func TestArchiveSecondPurchaseReplacesDefaultInterval(t *testing.T) {
	trips := &fakeTripRepo{}
	patterns := &fakePatternRepo{}
	svc := service.NewHistoryService(trips, patterns)

	familyID := uuid.New()
	first := time.Date(2026, 8, 1, 18, 0, 0, 0, time.UTC)
	patterns.patterns = append(patterns.patterns, model.PurchasePattern{
		ID:              uuid.New(),
		FamilyID:        familyID,
		ItemName:        "חלב",
		Category:        model.CategoryDairy,
		PurchaseCount:   1,
		AvgQuantity:     2,
		AvgIntervalDays: 7,
		LastPurchased:   first,
	})

	// Second purchase 10 days later: the assumed 7-day cadence carries
	// weight zero, so the observed gap replaces it outright.
	trip := &model.ShoppingTrip{
		ID:          uuid.New(),
		FamilyID:    familyID,
		CompletedAt: first.AddDate(0, 0, 10),
		Items: []model.TripItem{
			{Name: "חלב", Category: model.CategoryDairy, Quantity: 2, Checked: true},
		},
	}
	require.NoError(t, svc.Archive(context.Background(), trip))

	p := patterns.patterns[0]
	assert.Equal(t, 2, p.PurchaseCount)
	// (7×0 + 10) / 1
	assert.InDelta(t, 10.0, p.AvgIntervalDays, 1e-9)
	assert.InDelta(t, 2.0, p.AvgQuantity, 1e-9)
	assert.Equal(t, trip.CompletedAt, p.LastPurchased)
}

func TestAccuracyDefaultsToHundred(t *testing.T) {
	svc := service.NewHistoryService(&fakeTripRepo{}, &fakePatternRepo{})
	sess := service.Session{UserID: uuid.New(), FamilyID: uuid.New(), Role: service.RoleViewer}

	resp, err := svc.Accuracy(context.Background(), sess)
	require.NoError(t, err)
	assertDecimal(t, "100", resp.Percent)
}

func TestAccuracyComputesRatio(t *testing.T) {
	trips := &fakeTripRepo{}
	sess := service.Session{UserID: uuid.New(), FamilyID: uuid.New(), Role: service.RoleViewer}
	trips.trips = append(trips.trips, model.ShoppingTrip{
		ID:             uuid.New(),
		FamilyID:       sess.FamilyID,
		EstimatedTotal: decimal.RequireFromString("100.00"),
		ActualTotal:    decimal.RequireFromString("120.00"),
		CompletedAt:    time.Now(),
	})
	svc := service.NewHistoryService(trips, &fakePatternRepo{})

	resp, err := svc.Accuracy(context.Background(), sess)
	require.NoError(t, err)
	assertDecimal(t, "120", resp.Percent)
}

func TestMonthlySpendGroupsByMonth(t *testing.T) {
	trips := &fakeTripRepo{}
	sess := service.Session{UserID: uuid.New(), FamilyID: uuid.New(), Role: service.RoleViewer}

	july := time.Date(2026, 7, 12, 10, 0, 0, 0, time.UTC)
	august := time.Date(2026, 8, 3, 10, 0, 0, 0, time.UTC)
	for _, tc := range []struct {
		when   time.Time
		actual string
	}{
		{july, "200.00"},
		{august, "150.00"},
		{august.AddDate(0, 0, 14), "90.00"},
	} {
		trips.trips = append(trips.trips, model.ShoppingTrip{
			ID:             uuid.New(),
			FamilyID:       sess.FamilyID,
			EstimatedTotal: decimal.RequireFromString("100.00"),
			ActualTotal:    decimal.RequireFromString(tc.actual),
			CompletedAt:    tc.when,
		})
	}
	svc := service.NewHistoryService(trips, &fakePatternRepo{})

	months, err := svc.MonthlySpend(context.Background(), sess)
	require.NoError(t, err)
	require.Len(t, months, 2)

	// Newest month first.
	assert.Equal(t, "2026-08", months[0].Month)
	assert.Equal(t, 2, months[0].TripCount)
	assertDecimal(t, "240.00", months[0].ActualTotal)
	assert.Equal(t, "2026-07", months[1].Month)
	assert.Equal(t, 1, months[1].TripCount)
	assertDecimal(t, "200.00", months[1].ActualTotal)
}

func TestSuggestedReplenishments(t *testing.T) {
	patterns := &fakePatternRepo{}
	sess := service.Session{UserID: uuid.New(), FamilyID: uuid.New(), Role: service.RoleViewer}

	now := time.Now().UTC()
	patterns.patterns = append(patterns.patterns,
		model.PurchasePattern{
			ID: uuid.New(), FamilyID: sess.FamilyID,
			ItemName: "חלב", Category: model.CategoryDairy,
			PurchaseCount: 5, AvgQuantity: 2, AvgIntervalDays: 7,
			LastPurchased: now.AddDate(0, 0, -6), // 6 of 7 days — due
		},
		model.PurchasePattern{
			ID: uuid.New(), FamilyID: sess.FamilyID,
			ItemName: "קפה", Category: model.CategoryPantry,
			PurchaseCount: 4, AvgQuantity: 1, AvgIntervalDays: 14,
			LastPurchased: now.AddDate(0, 0, -3), // 3 of 14 days — not yet
		},
	)
	svc := service.NewHistoryService(&fakeTripRepo{}, patterns)

	due, err := svc.SuggestedReplenishments(context.Background(), sess)
	require.NoError(t, err)
	require.Len(t, due, 1)
	assert.Equal(t, "חלב", due[0].ItemName)
	assert.Equal(t, 6, due[0].DaysSinceLast)
}

func TestGetTripScopedToFamily(t *testing.T) {
	trips := &fakeTripRepo{}
	sess := service.Session{UserID: uuid.New(), FamilyID: uuid.New(), Role: service.RoleViewer}
	foreign := model.ShoppingTrip{
		ID:          uuid.New(),
		FamilyID:    uuid.New(), // someone else's family
		CompletedAt: time.Now(),
	}
	trips.trips = append(trips.trips, foreign)
	svc := service.NewHistoryService(trips, &fakePatternRepo{})

	_, err := svc.GetTrip(context.Background(), sess, foreign.ID)
	assert.ErrorContains(t, err, "not found")
}
