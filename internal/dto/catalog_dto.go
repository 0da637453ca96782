package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type AddCatalogItemRequest struct {
	Name            string          `json:"name"             validate:"required,min=1"`
	Category        string          `json:"category"         validate:"omitempty"`
	DefaultUnit     string          `json:"default_unit"     validate:"omitempty,oneof=units kg gram liter pack"`
	DefaultQuantity float64         `json:"default_quantity" validate:"omitempty,gt=0"`
	EstimatedPrice  decimal.Decimal `json:"estimated_price"  validate:"min=0"`
	Keywords        []string        `json:"keywords"`
}

type UpdatePriceRequest struct {
	Price decimal.Decimal `json:"price" validate:"required"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type CatalogItemResponse struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	Category        string          `json:"category"`
	DefaultUnit     string          `json:"default_unit"`
	DefaultQuantity float64         `json:"default_quantity"`
	EstimatedPrice  decimal.Decimal `json:"estimated_price"`
	Keywords        []string        `json:"keywords,omitempty"`
	Custom          bool            `json:"custom"`
	PriceUpdatedAt  *string         `json:"price_updated_at,omitempty"`
}

type PriceChangeResponse struct {
	ID          string          `json:"id"`
	PriceBefore decimal.Decimal `json:"price_before"`
	PriceAfter  decimal.Decimal `json:"price_after"`
	ChangedBy   string          `json:"changed_by"`
	ChangedAt   string          `json:"changed_at"`
}

type SeedResponse struct {
	Seeded   bool `json:"seeded"`
	Inserted int  `json:"inserted"`
}
