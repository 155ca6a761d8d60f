package models

import (
	"time"

	"billing-backend/internal/billing"
)

// Invoice is the stored invoice header. The issuer block is a
// denormalized snapshot of the configured company profile at creation
// time. Total is a cached figure recomputed from the lines at every
// write; the lines stay authoritative.
type Invoice struct {
	ID            int       `json:"id"`
	InvoiceNumber string    `json:"invoice_number"`
	ClientID      *int      `json:"client_id"`
	FromName      string    `json:"from_name"`
	FromAddress   string    `json:"from_address"`
	FromMobile    string    `json:"from_mobile"`
	FromGSTIN     string    `json:"from_gstin"`
	WorkName      string    `json:"work_name"`
	WorkCode      string    `json:"work_code"`
	Date          time.Time `json:"date"`
	Notes         string    `json:"notes"`
	Total         float64   `json:"total"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// InvoiceLine is one row of an invoice. ItemName, UnitPrice and the
// tax rates are snapshots taken from the item when the line was
// written; the catalog item may change or disappear afterwards.
type InvoiceLine struct {
	ID               int     `json:"id"`
	InvoiceID        int     `json:"invoice_id"`
	ItemID           *int    `json:"item_id"`
	ItemName         string  `json:"item_name"`
	Quantity         float64 `json:"quantity"`
	UnitPrice        float64 `json:"unit_price"`
	SGST             float64 `json:"sgst"`
	CGST             float64 `json:"cgst"`
	PriceIncludesTax bool    `json:"price_includes_tax"`
	Position         int     `json:"position"`
}

// Billing converts the line to its calculator inputs.
func (l *InvoiceLine) Billing() billing.Line {
	return billing.Line{
		Quantity:         l.Quantity,
		UnitPrice:        l.UnitPrice,
		SGSTRate:         l.SGST,
		CGSTRate:         l.CGST,
		PriceIncludesTax: l.PriceIncludesTax,
	}
}

// InvoiceLineRequest is one line of a create/update payload. Price and
// rates are optional overrides; when absent they are snapshotted from
// the referenced item.
type InvoiceLineRequest struct {
	ItemID    int      `json:"item_id" validate:"required"`
	Quantity  float64  `json:"quantity" validate:"gt=0"`
	UnitPrice *float64 `json:"unit_price,omitempty" validate:"omitempty,gte=0"`
	SGST      *float64 `json:"sgst,omitempty" validate:"omitempty,gte=0"`
	CGST      *float64 `json:"cgst,omitempty" validate:"omitempty,gte=0"`
}

// CreateInvoiceRequest represents the request to create an invoice
type CreateInvoiceRequest struct {
	ClientID int                  `json:"client_id" validate:"required"`
	FromName string               `json:"from_name" validate:"required"`
	WorkName string               `json:"work_name"`
	WorkCode string               `json:"work_code"`
	Date     *time.Time           `json:"date,omitempty"`
	Notes    string               `json:"notes"`
	Lines    []InvoiceLineRequest `json:"lines" validate:"required,min=1,dive"`
}

// UpdateInvoiceRequest represents the request to update an invoice
type UpdateInvoiceRequest struct {
	ClientID int                  `json:"client_id" validate:"required"`
	FromName string               `json:"from_name" validate:"required"`
	WorkName string               `json:"work_name"`
	WorkCode string               `json:"work_code"`
	Date     *time.Time           `json:"date,omitempty"`
	Notes    string               `json:"notes"`
	Lines    []InvoiceLineRequest `json:"lines" validate:"required,min=1,dive"`
}

// LineWithAmounts pairs a stored line with its computed money figures.
type LineWithAmounts struct {
	InvoiceLine
	Amounts billing.LineAmounts `json:"amounts"`
}

// InvoiceWithDetails is the full read model: header, client name,
// lines with per-line amounts, recomputed totals and the amount in
// words for printing.
type InvoiceWithDetails struct {
	Invoice
	ClientName    string                `json:"client_name"`
	Lines         []LineWithAmounts     `json:"lines"`
	Totals        billing.InvoiceTotals `json:"totals"`
	AmountInWords string                `json:"amount_in_words"`
}
