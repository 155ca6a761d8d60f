package models

import "time"

// Item is a catalog entry. Invoice lines snapshot its price and tax
// rates at creation, so editing an item never changes past invoices.
type Item struct {
	ID               int       `json:"id"`
	Name             string    `json:"name"`
	Price            float64   `json:"price"`
	SGST             float64   `json:"sgst"` // percentage
	CGST             float64   `json:"cgst"` // percentage
	PriceIncludesTax bool      `json:"price_includes_tax"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// CreateItemRequest represents the request body for creating an item
type CreateItemRequest struct {
	Name             string  `json:"name" validate:"required"`
	Price            float64 `json:"price" validate:"gte=0"`
	SGST             float64 `json:"sgst" validate:"gte=0"`
	CGST             float64 `json:"cgst" validate:"gte=0"`
	PriceIncludesTax bool    `json:"price_includes_tax"`
}

// UpdateItemRequest represents the request body for updating an item
type UpdateItemRequest struct {
	Name             string  `json:"name" validate:"required"`
	Price            float64 `json:"price" validate:"gte=0"`
	SGST             float64 `json:"sgst" validate:"gte=0"`
	CGST             float64 `json:"cgst" validate:"gte=0"`
	PriceIncludesTax bool    `json:"price_includes_tax"`
}
