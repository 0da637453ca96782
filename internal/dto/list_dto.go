package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type AddItemRequest struct {
	CatalogItemID *string          `json:"catalog_item_id" validate:"omitempty,uuid"`
	Name          string           `json:"name"            validate:"required,min=1"`
	Category      string           `json:"category"        validate:"omitempty"`
	Quantity      float64          `json:"quantity"        validate:"omitempty,gt=0"`
	Unit          string           `json:"unit"            validate:"omitempty,oneof=units kg gram liter pack"`
	EstimatedPrice *decimal.Decimal `json:"estimated_price"`
	Note          *string          `json:"note"`
}

// UpdateItemRequest carries partial changes. Only the whitelisted fields
// below are mutable; nil means "leave unchanged".
type UpdateItemRequest struct {
	Quantity        *float64         `json:"quantity"          validate:"omitempty,gt=0"`
	Unit            *string          `json:"unit"              validate:"omitempty,oneof=units kg gram liter pack"`
	EstimatedPrice  *decimal.Decimal `json:"estimated_price"`
	ActualPrice     *decimal.Decimal `json:"actual_price"`
	Note            *string          `json:"note"`
	OrderInCategory *int             `json:"order_in_category" validate:"omitempty,min=0"`
	Checked         *bool            `json:"checked"`
}

type ItemPriceOverride struct {
	ItemID      string          `json:"item_id"      validate:"required,uuid"`
	ActualPrice decimal.Decimal `json:"actual_price" validate:"min=0"`
}

type CompleteShoppingRequest struct {
	ActualTotal decimal.Decimal     `json:"actual_total"  validate:"min=0"`
	ItemPrices  []ItemPriceOverride `json:"item_prices"   validate:"omitempty,dive"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type ListItemResponse struct {
	ID              string           `json:"id"`
	CatalogItemID   *string          `json:"catalog_item_id,omitempty"`
	Name            string           `json:"name"`
	Category        string           `json:"category"`
	Quantity        float64          `json:"quantity"`
	Unit            string           `json:"unit"`
	EstimatedPrice  decimal.Decimal  `json:"estimated_price"`
	ActualPrice     *decimal.Decimal `json:"actual_price,omitempty"`
	Checked         bool             `json:"checked"`
	CheckedAt       *string          `json:"checked_at,omitempty"`
	CheckedBy       *string          `json:"checked_by,omitempty"`
	OrderInCategory int              `json:"order_in_category"`
	Note            *string          `json:"note,omitempty"`
	AddedBy         string           `json:"added_by"`
	AddedAt         string           `json:"added_at"`
}

// CategoryGroupResponse is one section of the grouped-by-category view.
// Empty categories are never emitted, so IsComplete is well defined.
type CategoryGroupResponse struct {
	Category   string             `json:"category"`
	Items      []ListItemResponse `json:"items"`
	IsComplete bool               `json:"is_complete"`
}

type ProgressResponse struct {
	CheckedItems int     `json:"checked_items"`
	TotalItems   int     `json:"total_items"`
	Percent      float64 `json:"percent"`
}

type ListResponse struct {
	ID             string                  `json:"id"`
	Name           string                  `json:"name"`
	Status         string                  `json:"status"`
	EstimatedTotal decimal.Decimal         `json:"estimated_total"`
	ActualTotal    *decimal.Decimal        `json:"actual_total,omitempty"`
	ActiveShoppers []string                `json:"active_shoppers"`
	Groups         []CategoryGroupResponse `json:"groups"`
	Progress       ProgressResponse        `json:"progress"`
	CanUndo        bool                    `json:"can_undo"`
	CreatedAt      string                  `json:"created_at"`
	CompletedAt    *string                 `json:"completed_at,omitempty"`
}
