package services

import (
	"context"
	"encoding/json"
	"time"

	"billing-backend/internal/cache"
)

// DashboardSummary is the landing page counters payload.
type DashboardSummary struct {
	TotalClients  int     `json:"total_clients"`
	TotalItems    int     `json:"total_items"`
	TotalInvoices int     `json:"total_invoices"`
	TotalBilled   float64 `json:"total_billed"`
}

type DashboardService struct {
	Clients  ClientStore
	Items    ItemStore
	Invoices InvoiceStore
}

func NewDashboardService(clients ClientStore, items ItemStore, invoices InvoiceStore) *DashboardService {
	return &DashboardService{
		Clients:  clients,
		Items:    items,
		Invoices: invoices,
	}
}

// GetSummary returns the dashboard counters, served from Redis when
// fresh. Writes to clients, items or invoices invalidate the key.
func (s *DashboardService) GetSummary(ctx context.Context) (*DashboardSummary, error) {
	if data, ok := cache.GetCached(ctx, cache.DashboardSummaryKey); ok {
		var summary DashboardSummary
		if err := json.Unmarshal(data, &summary); err == nil {
			return &summary, nil
		}
	}

	clients, err := s.Clients.Count(ctx)
	if err != nil {
		return nil, err
	}
	items, err := s.Items.Count(ctx)
	if err != nil {
		return nil, err
	}
	invoices, err := s.Invoices.Count(ctx)
	if err != nil {
		return nil, err
	}
	billed, err := s.Invoices.SumTotals(ctx)
	if err != nil {
		return nil, err
	}

	summary := &DashboardSummary{
		TotalClients:  clients,
		TotalItems:    items,
		TotalInvoices: invoices,
		TotalBilled:   billed,
	}

	if data, err := json.Marshal(summary); err == nil {
		cache.SetCached(ctx, cache.DashboardSummaryKey, data, 5*time.Minute)
	}

	return summary, nil
}
