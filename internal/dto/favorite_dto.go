package dto

// ─── Request DTOs ────────────────────────────────────────────────────────────

type AddFavoriteRequest struct {
	CatalogItemID string   `json:"catalog_item_id" validate:"required,uuid"`
	Quantity      *float64 `json:"quantity"        validate:"omitempty,gt=0"`
	Unit          *string  `json:"unit"            validate:"omitempty,oneof=units kg gram liter pack"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type FavoriteResponse struct {
	ID          string              `json:"id"`
	CatalogItem CatalogItemResponse `json:"catalog_item"`
	Quantity    *float64            `json:"quantity,omitempty"`
	Unit        *string             `json:"unit,omitempty"`
	UseCount    int                 `json:"use_count"`
	LastUsedAt  *string             `json:"last_used_at,omitempty"`
}
