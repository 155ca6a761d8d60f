package services

import (
	"context"
	"errors"
	"fmt"

	"billing-backend/internal/billing"
	"billing-backend/internal/cache"
	"billing-backend/internal/config"
	"billing-backend/internal/metrics"
	"billing-backend/internal/models"
	"billing-backend/internal/timeutil"
)

type InvoiceService struct {
	Repo    InvoiceStore
	Items   ItemStore
	Clients ClientStore
	Config  *config.Config
}

func NewInvoiceService(repo InvoiceStore, items ItemStore, clients ClientStore, cfg *config.Config) *InvoiceService {
	return &InvoiceService{
		Repo:    repo,
		Items:   items,
		Clients: clients,
		Config:  cfg,
	}
}

// buildLines resolves each request line against the item catalog,
// snapshotting name, price and tax rates. Explicit per-line overrides
// win over the catalog values.
func (s *InvoiceService) buildLines(ctx context.Context, reqLines []models.InvoiceLineRequest) ([]models.InvoiceLine, error) {
	lines := make([]models.InvoiceLine, 0, len(reqLines))
	for i, rl := range reqLines {
		item, err := s.Items.Get(ctx, rl.ItemID)
		if err != nil {
			return nil, fmt.Errorf("line %d: item %d not found", i+1, rl.ItemID)
		}

		itemID := item.ID
		line := models.InvoiceLine{
			ItemID:           &itemID,
			ItemName:         item.Name,
			Quantity:         rl.Quantity,
			UnitPrice:        item.Price,
			SGST:             item.SGST,
			CGST:             item.CGST,
			PriceIncludesTax: item.PriceIncludesTax,
			Position:         i,
		}
		if rl.UnitPrice != nil {
			line.UnitPrice = *rl.UnitPrice
		}
		if rl.SGST != nil {
			line.SGST = *rl.SGST
		}
		if rl.CGST != nil {
			line.CGST = *rl.CGST
		}
		lines = append(lines, line)
	}
	return lines, nil
}

func linesForTotals(lines []models.InvoiceLine) []billing.Line {
	bl := make([]billing.Line, len(lines))
	for i := range lines {
		bl[i] = lines[i].Billing()
	}
	return bl
}

// CreateInvoice validates the request, snapshots the issuer profile
// and item prices, computes totals server-side and persists the lot.
func (s *InvoiceService) CreateInvoice(ctx context.Context, req *models.CreateInvoiceRequest) (*models.InvoiceWithDetails, error) {
	client, err := s.Clients.Get(ctx, req.ClientID)
	if err != nil {
		return nil, errors.New("client not found")
	}

	profile := s.Config.CompanyByName(req.FromName)
	if profile == nil {
		return nil, errors.New("unknown issuer company")
	}

	lines, err := s.buildLines(ctx, req.Lines)
	if err != nil {
		return nil, err
	}

	totals := billing.ComputeInvoiceTotals(linesForTotals(lines))

	date := timeutil.Now()
	if req.Date != nil {
		date = *req.Date
	}

	clientID := client.ID
	invoice := &models.Invoice{
		ClientID:    &clientID,
		FromName:    profile.Name,
		FromAddress: profile.Address,
		FromMobile:  profile.Mobile,
		FromGSTIN:   profile.GSTIN,
		WorkName:    req.WorkName,
		WorkCode:    req.WorkCode,
		Date:        date,
		Notes:       req.Notes,
		Total:       totals.GrandTotal.Rupees(),
	}

	if err := s.Repo.Create(ctx, invoice, lines); err != nil {
		return nil, err
	}

	metrics.InvoicesCreatedTotal.Inc()
	cache.InvalidateDashboard(ctx)

	return s.GetInvoice(ctx, invoice.ID)
}

// UpdateInvoice replaces an invoice's header fields and lines, then
// recomputes and re-caches the total.
func (s *InvoiceService) UpdateInvoice(ctx context.Context, id int, req *models.UpdateInvoiceRequest) (*models.InvoiceWithDetails, error) {
	existing, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, ErrNotFound
	}

	client, err := s.Clients.Get(ctx, req.ClientID)
	if err != nil {
		return nil, errors.New("client not found")
	}

	profile := s.Config.CompanyByName(req.FromName)
	if profile == nil {
		return nil, errors.New("unknown issuer company")
	}

	lines, err := s.buildLines(ctx, req.Lines)
	if err != nil {
		return nil, err
	}

	totals := billing.ComputeInvoiceTotals(linesForTotals(lines))

	date := existing.Date
	if req.Date != nil {
		date = *req.Date
	}

	clientID := client.ID
	invoice := &models.Invoice{
		ID:            id,
		InvoiceNumber: existing.InvoiceNumber,
		ClientID:      &clientID,
		FromName:      profile.Name,
		FromAddress:   profile.Address,
		FromMobile:    profile.Mobile,
		FromGSTIN:     profile.GSTIN,
		WorkName:      req.WorkName,
		WorkCode:      req.WorkCode,
		Date:          date,
		Notes:         req.Notes,
		Total:         totals.GrandTotal.Rupees(),
	}

	if err := s.Repo.Update(ctx, invoice, lines); err != nil {
		return nil, err
	}

	cache.InvalidateDashboard(ctx)

	return s.GetInvoice(ctx, id)
}

// GetInvoice returns the full read model with per-line amounts,
// totals and the amount in words.
func (s *InvoiceService) GetInvoice(ctx context.Context, id int) (*models.InvoiceWithDetails, error) {
	inv, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, ErrNotFound
	}
	DecorateInvoice(inv)
	return inv, nil
}

// GetInvoiceByNumber looks an invoice up by its display number.
func (s *InvoiceService) GetInvoiceByNumber(ctx context.Context, number string) (*models.InvoiceWithDetails, error) {
	inv, err := s.Repo.GetByNumber(ctx, number)
	if err != nil {
		return nil, ErrNotFound
	}
	DecorateInvoice(inv)
	return inv, nil
}

// ListInvoices returns invoice headers, newest first.
func (s *InvoiceService) ListInvoices(ctx context.Context) ([]*models.InvoiceWithDetails, error) {
	return s.Repo.List(ctx)
}

func (s *InvoiceService) DeleteInvoice(ctx context.Context, id int) error {
	if err := s.Repo.Delete(ctx, id); err != nil {
		return err
	}
	cache.InvalidateDashboard(ctx)
	return nil
}

// DecorateInvoice fills in the computed fields of a loaded invoice:
// per-line amounts, invoice totals and the grand total in words. The
// stored lines are authoritative; the cached header total is replaced
// by the recomputed figure.
func DecorateInvoice(inv *models.InvoiceWithDetails) {
	bl := make([]billing.Line, len(inv.Lines))
	for i := range inv.Lines {
		inv.Lines[i].Amounts = billing.ComputeLineTotals(inv.Lines[i].Billing())
		bl[i] = inv.Lines[i].Billing()
	}
	inv.Totals = billing.ComputeInvoiceTotals(bl)
	inv.Total = inv.Totals.GrandTotal.Rupees()
	inv.AmountInWords = billing.AmountInWords(inv.Totals.GrandTotal.Rupees())
}
