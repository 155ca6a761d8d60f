package services

import (
	"context"

	"billing-backend/internal/billing"
	"billing-backend/internal/cache"
	"billing-backend/internal/models"
)

type ClientService struct {
	Repo     ClientStore
	Invoices InvoiceStore
}

func NewClientService(repo ClientStore, invoices InvoiceStore) *ClientService {
	return &ClientService{
		Repo:     repo,
		Invoices: invoices,
	}
}

func (s *ClientService) CreateClient(ctx context.Context, req *models.CreateClientRequest) (*models.Client, error) {
	client := &models.Client{
		Name:    req.Name,
		Phone:   req.Phone,
		Address: req.Address,
	}
	if err := s.Repo.Create(ctx, client); err != nil {
		return nil, err
	}
	cache.InvalidateDashboard(ctx)
	return client, nil
}

func (s *ClientService) GetClient(ctx context.Context, id int) (*models.Client, error) {
	return s.Repo.Get(ctx, id)
}

func (s *ClientService) ListClients(ctx context.Context) ([]*models.Client, error) {
	return s.Repo.List(ctx)
}

func (s *ClientService) UpdateClient(ctx context.Context, id int, req *models.UpdateClientRequest) (*models.Client, error) {
	client, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	client.Name = req.Name
	client.Phone = req.Phone
	client.Address = req.Address

	if err := s.Repo.Update(ctx, client); err != nil {
		return nil, err
	}
	return client, nil
}

// DeleteClient removes a client. Its invoices survive with a null
// client reference (the schema sets client_id to NULL on delete).
func (s *ClientService) DeleteClient(ctx context.Context, id int) error {
	if err := s.Repo.Delete(ctx, id); err != nil {
		return err
	}
	cache.InvalidateDashboard(ctx)
	return nil
}

// GetClientDetails assembles the client page payload: the client, its
// invoices newest first with computed amounts, and the aggregated
// statistics over every line of every invoice.
func (s *ClientService) GetClientDetails(ctx context.Context, id int) (*models.ClientDetails, error) {
	client, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, ErrNotFound
	}

	invoices, err := s.Invoices.GetByClient(ctx, id)
	if err != nil {
		return nil, err
	}

	statsInvoices := make([]billing.StatsInvoice, 0, len(invoices))
	for _, inv := range invoices {
		DecorateInvoice(inv)

		si := billing.StatsInvoice{Date: inv.Date}
		for _, l := range inv.Lines {
			sl := billing.StatsLine{
				Line:     l.Billing(),
				ItemName: l.ItemName,
			}
			if l.ItemID != nil {
				sl.ItemID = *l.ItemID
			}
			si.Lines = append(si.Lines, sl)
		}
		statsInvoices = append(statsInvoices, si)
	}

	return &models.ClientDetails{
		Client:     client,
		Invoices:   invoices,
		Statistics: billing.ComputeClientStatistics(statsInvoices),
	}, nil
}
