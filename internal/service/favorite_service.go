package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yuda85/family-ops-sub001/internal/dto"
	"github.com/yuda85/family-ops-sub001/internal/model"
	"github.com/yuda85/family-ops-sub001/internal/repository"
)

// FavoriteService manages a member's personal staples: catalog items pinned
// for one-tap re-adding, with optional quantity/unit overrides.
type FavoriteService interface {
	Add(ctx context.Context, sess Session, req dto.AddFavoriteRequest) (*dto.FavoriteResponse, error)
	Remove(ctx context.Context, sess Session, favoriteID uuid.UUID) error
	List(ctx context.Context, sess Session) ([]dto.FavoriteResponse, error)
	// MarkUsed bumps the use counter when a favorite is re-added to a list,
	// keeping the most-used-first ordering honest.
	MarkUsed(ctx context.Context, sess Session, favoriteID uuid.UUID) (*dto.FavoriteResponse, error)
}

type favoriteService struct {
	repo        repository.FavoriteRepository
	catalogRepo repository.CatalogRepository
}

func NewFavoriteService(repo repository.FavoriteRepository, catalogRepo repository.CatalogRepository) FavoriteService {
	return &favoriteService{repo: repo, catalogRepo: catalogRepo}
}

func (s *favoriteService) Add(ctx context.Context, sess Session, req dto.AddFavoriteRequest) (*dto.FavoriteResponse, error) {
	if err := requireFamily(sess); err != nil {
		return nil, err
	}

	catalogID, err := uuid.Parse(req.CatalogItemID)
	if err != nil {
		return nil, errors.New("invalid catalog item id")
	}
	item, err := s.catalogRepo.FindByID(ctx, catalogID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("catalog item not found")
		}
		return nil, fmt.Errorf("error loading catalog item: %w", err)
	}
	if item.FamilyID != sess.FamilyID {
		return nil, errors.New("catalog item not found")
	}

	if _, err := s.repo.FindByUserAndItem(ctx, sess.UserID, catalogID); err == nil {
		return nil, errors.New("item is already a favorite")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("error checking favorite: %w", err)
	}

	favorite := &model.UserFavorite{
		UserID:        sess.UserID,
		CatalogItemID: catalogID,
		Quantity:      req.Quantity,
	}
	if req.Unit != nil {
		u := model.Unit(*req.Unit)
		if !u.Valid() {
			return nil, fmt.Errorf("unknown unit: %s", *req.Unit)
		}
		favorite.Unit = &u
	}
	if err := s.repo.Create(ctx, favorite); err != nil {
		return nil, fmt.Errorf("error creating favorite: %w", err)
	}

	favorite.CatalogItem = *item
	resp := toFavoriteResponse(favorite)
	return &resp, nil
}

func (s *favoriteService) Remove(ctx context.Context, sess Session, favoriteID uuid.UUID) error {
	if err := requireFamily(sess); err != nil {
		return err
	}
	favorite, err := s.repo.FindByID(ctx, favoriteID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errors.New("favorite not found")
		}
		return fmt.Errorf("error loading favorite: %w", err)
	}
	if favorite.UserID != sess.UserID {
		return errors.New("favorite not found")
	}
	if err := s.repo.Delete(ctx, favoriteID); err != nil {
		return fmt.Errorf("error deleting favorite: %w", err)
	}
	return nil
}

func (s *favoriteService) List(ctx context.Context, sess Session) ([]dto.FavoriteResponse, error) {
	if err := requireFamily(sess); err != nil {
		return nil, err
	}
	favorites, err := s.repo.ListByUser(ctx, sess.UserID)
	if err != nil {
		return nil, fmt.Errorf("error loading favorites: %w", err)
	}
	out := make([]dto.FavoriteResponse, 0, len(favorites))
	for i := range favorites {
		out = append(out, toFavoriteResponse(&favorites[i]))
	}
	return out, nil
}

func (s *favoriteService) MarkUsed(ctx context.Context, sess Session, favoriteID uuid.UUID) (*dto.FavoriteResponse, error) {
	if err := requireFamily(sess); err != nil {
		return nil, err
	}
	favorite, err := s.repo.FindByID(ctx, favoriteID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("favorite not found")
		}
		return nil, fmt.Errorf("error loading favorite: %w", err)
	}
	if favorite.UserID != sess.UserID {
		return nil, errors.New("favorite not found")
	}

	now := time.Now().UTC()
	favorite.UseCount++
	favorite.LastUsedAt = &now
	if err := s.repo.Update(ctx, favorite); err != nil {
		return nil, fmt.Errorf("error updating favorite: %w", err)
	}

	resp := toFavoriteResponse(favorite)
	return &resp, nil
}

func toFavoriteResponse(f *model.UserFavorite) dto.FavoriteResponse {
	resp := dto.FavoriteResponse{
		ID:          f.ID.String(),
		CatalogItem: toCatalogItemResponse(&f.CatalogItem),
		Quantity:    f.Quantity,
		UseCount:    f.UseCount,
	}
	if f.Unit != nil {
		u := string(*f.Unit)
		resp.Unit = &u
	}
	if f.LastUsedAt != nil {
		t := f.LastUsedAt.Format(timeFmt)
		resp.LastUsedAt = &t
	}
	return resp
}
