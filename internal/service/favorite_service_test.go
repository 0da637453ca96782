package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yuda85/family-ops-sub001/internal/dto"
	"github.com/yuda85/family-ops-sub001/internal/model"
	"github.com/yuda85/family-ops-sub001/internal/service"
)

type favoriteFixture struct {
	svc         service.FavoriteService
	repo        *fakeFavoriteRepo
	catalogRepo *fakeCatalogRepo
	sess        service.Session
}

func newFavoriteFixture() *favoriteFixture {
	repo := &fakeFavoriteRepo{}
	catalogRepo := &fakeCatalogRepo{}
	return &favoriteFixture{
		svc:         service.NewFavoriteService(repo, catalogRepo),
		repo:        repo,
		catalogRepo: catalogRepo,
		sess:        service.Session{UserID: uuid.New(), FamilyID: uuid.New(), Role: service.RoleEditor},
	}
}

func (f *favoriteFixture) catalogItem(t *testing.T, name string) uuid.UUID {
	t.Helper()
	item := &model.CatalogItem{
		FamilyID: f.sess.FamilyID,
		Name:     name,
		Category: model.CategoryDairy,
	}
	require.NoError(t, f.catalogRepo.Create(context.Background(), item))
	return item.ID
}

func TestAddFavorite(t *testing.T) {
	f := newFavoriteFixture()
	itemID := f.catalogItem(t, "חלב")

	qty := 2.0
	unit := "liter"
	resp, err := f.svc.Add(context.Background(), f.sess, dto.AddFavoriteRequest{
		CatalogItemID: itemID.String(),
		Quantity:      &qty,
		Unit:          &unit,
	})
	require.NoError(t, err)
	assert.Equal(t, "חלב", resp.CatalogItem.Name)
	require.NotNil(t, resp.Quantity)
	assert.Equal(t, 2.0, *resp.Quantity)
	require.NotNil(t, resp.Unit)
	assert.Equal(t, "liter", *resp.Unit)
	assert.Equal(t, 0, resp.UseCount)
}

func TestAddFavoriteTwiceIsRejected(t *testing.T) {
	f := newFavoriteFixture()
	itemID := f.catalogItem(t, "חלב")
	ctx := context.Background()

	_, err := f.svc.Add(ctx, f.sess, dto.AddFavoriteRequest{
		CatalogItemID: itemID.String(),
	})
	require.NoError(t, err)

	_, err = f.svc.Add(ctx, f.sess, dto.AddFavoriteRequest{
		CatalogItemID: itemID.String(),
	})
	assert.ErrorContains(t, err, "already a favorite")
	assert.Len(t, f.repo.favorites, 1)

	// A different member of the same family can still favorite the item.
	other := service.Session{UserID: uuid.New(), FamilyID: f.sess.FamilyID, Role: service.RoleEditor}
	_, err = f.svc.Add(ctx, other, dto.AddFavoriteRequest{
		CatalogItemID: itemID.String(),
	})
	require.NoError(t, err)
}

func TestAddFavoriteRejectsForeignCatalogItem(t *testing.T) {
	f := newFavoriteFixture()

	foreign := &model.CatalogItem{
		FamilyID: uuid.New(),
		Name:     "חלב",
		Category: model.CategoryDairy,
	}
	require.NoError(t, f.catalogRepo.Create(context.Background(), foreign))

	_, err := f.svc.Add(context.Background(), f.sess, dto.AddFavoriteRequest{
		CatalogItemID: foreign.ID.String(),
	})
	assert.ErrorContains(t, err, "not found")
}

func TestListFavoritesMostUsedFirst(t *testing.T) {
	f := newFavoriteFixture()
	ctx := context.Background()

	milk, err := f.svc.Add(ctx, f.sess, dto.AddFavoriteRequest{
		CatalogItemID: f.catalogItem(t, "חלב").String(),
	})
	require.NoError(t, err)
	bread, err := f.svc.Add(ctx, f.sess, dto.AddFavoriteRequest{
		CatalogItemID: f.catalogItem(t, "לחם").String(),
	})
	require.NoError(t, err)

	breadID := uuid.MustParse(bread.ID)
	for i := 0; i < 3; i++ {
		_, err := f.svc.MarkUsed(ctx, f.sess, breadID)
		require.NoError(t, err)
	}
	_, err = f.svc.MarkUsed(ctx, f.sess, uuid.MustParse(milk.ID))
	require.NoError(t, err)

	list, err := f.svc.List(ctx, f.sess)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, bread.ID, list[0].ID)
	assert.Equal(t, 3, list[0].UseCount)
	assert.Equal(t, milk.ID, list[1].ID)
	assert.Equal(t, 1, list[1].UseCount)
}

func TestMarkUsedStampsLastUsed(t *testing.T) {
	f := newFavoriteFixture()
	ctx := context.Background()

	created, err := f.svc.Add(ctx, f.sess, dto.AddFavoriteRequest{
		CatalogItemID: f.catalogItem(t, "חלב").String(),
	})
	require.NoError(t, err)
	assert.Nil(t, created.LastUsedAt)

	used, err := f.svc.MarkUsed(ctx, f.sess, uuid.MustParse(created.ID))
	require.NoError(t, err)
	assert.Equal(t, 1, used.UseCount)
	assert.NotNil(t, used.LastUsedAt)
}

func TestRemoveFavoriteScopedToOwner(t *testing.T) {
	f := newFavoriteFixture()
	ctx := context.Background()

	created, err := f.svc.Add(ctx, f.sess, dto.AddFavoriteRequest{
		CatalogItemID: f.catalogItem(t, "חלב").String(),
	})
	require.NoError(t, err)
	favoriteID := uuid.MustParse(created.ID)

	other := service.Session{UserID: uuid.New(), FamilyID: f.sess.FamilyID, Role: service.RoleEditor}
	err = f.svc.Remove(ctx, other, favoriteID)
	assert.ErrorContains(t, err, "not found")

	require.NoError(t, f.svc.Remove(ctx, f.sess, favoriteID))
	assert.Empty(t, f.repo.favorites)
}
