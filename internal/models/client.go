package models

import (
	"time"

	"billing-backend/internal/billing"
)

type Client struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Address   string    `json:"address"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreateClientRequest represents the request body for creating a client
type CreateClientRequest struct {
	Name    string `json:"name" validate:"required"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// UpdateClientRequest represents the request body for updating a client
type UpdateClientRequest struct {
	Name    string `json:"name" validate:"required"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// ClientDetails is the client page payload: the client, its invoices
// newest first, and the aggregated statistics.
type ClientDetails struct {
	Client     *Client                  `json:"client"`
	Invoices   []*InvoiceWithDetails    `json:"invoices"`
	Statistics billing.ClientStatistics `json:"statistics"`
}
