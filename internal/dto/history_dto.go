package dto

import "github.com/shopspring/decimal"

// ─── Response DTOs ───────────────────────────────────────────────────────────

type TripItemResponse struct {
	Name           string           `json:"name"`
	Category       string           `json:"category"`
	Quantity       float64          `json:"quantity"`
	Unit           string           `json:"unit"`
	EstimatedPrice decimal.Decimal  `json:"estimated_price"`
	ActualPrice    *decimal.Decimal `json:"actual_price,omitempty"`
	Checked        bool             `json:"checked"`
}

type TripResponse struct {
	ID             string             `json:"id"`
	ListName       string             `json:"list_name"`
	EstimatedTotal decimal.Decimal    `json:"estimated_total"`
	ActualTotal    decimal.Decimal    `json:"actual_total"`
	TotalItems     int                `json:"total_items"`
	CheckedItems   int                `json:"checked_items"`
	CompletedBy    string             `json:"completed_by"`
	CompletedAt    string             `json:"completed_at"`
	Items          []TripItemResponse `json:"items,omitempty"`
}

// MonthlySpendResponse aggregates trips per calendar month, newest first.
type MonthlySpendResponse struct {
	Month          string          `json:"month"` // "2026-08"
	EstimatedTotal decimal.Decimal `json:"estimated_total"`
	ActualTotal    decimal.Decimal `json:"actual_total"`
	TripCount      int             `json:"trip_count"`
}

type AccuracyResponse struct {
	// Percent is actual/estimated spend ×100; 100 when nothing estimated.
	Percent decimal.Decimal `json:"percent"`
}

type ReplenishmentResponse struct {
	ItemName        string  `json:"item_name"`
	Category        string  `json:"category"`
	AvgQuantity     float64 `json:"avg_quantity"`
	AvgIntervalDays float64 `json:"avg_interval_days"`
	DaysSinceLast   int     `json:"days_since_last"`
	LastPurchased   string  `json:"last_purchased"`
}
