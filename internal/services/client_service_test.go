package services

import (
	"context"
	"testing"
	"time"

	"billing-backend/internal/billing"
	"billing-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newClientFixture(t *testing.T) (*ClientService, *InvoiceService, *fakeItemStore) {
	t.Helper()
	clients := newFakeClientStore()
	items := newFakeItemStore()
	invoices := newFakeInvoiceStore(clients)
	invoiceSvc := NewInvoiceService(invoices, items, clients, testConfig())
	return NewClientService(clients, invoices), invoiceSvc, items
}

func TestClientCRUD(t *testing.T) {
	svc, _, _ := newClientFixture(t)
	ctx := context.Background()

	created, err := svc.CreateClient(ctx, &models.CreateClientRequest{
		Name:    "Acme Constructions",
		Phone:   "9811111111",
		Address: "Plot 4, Industrial Area",
	})
	require.NoError(t, err)
	require.NotZero(t, created.ID)

	updated, err := svc.UpdateClient(ctx, created.ID, &models.UpdateClientRequest{
		Name:  "Acme Constructions Pvt Ltd",
		Phone: "9822222222",
	})
	require.NoError(t, err)
	assert.Equal(t, "Acme Constructions Pvt Ltd", updated.Name)
	assert.Equal(t, "9822222222", updated.Phone)

	require.NoError(t, svc.DeleteClient(ctx, created.ID))
	_, err = svc.GetClient(ctx, created.ID)
	assert.Error(t, err)
}

func TestGetClientDetailsAggregatesStatistics(t *testing.T) {
	svc, invoiceSvc, items := newClientFixture(t)
	ctx := context.Background()

	client, err := svc.CreateClient(ctx, &models.CreateClientRequest{Name: "Acme"})
	require.NoError(t, err)

	cement := &models.Item{Name: "Cement Bag", Price: 100, SGST: 9, CGST: 9}
	require.NoError(t, items.Create(ctx, cement))
	rod := &models.Item{Name: "Steel Rod", Price: 50, SGST: 9, CGST: 9}
	require.NoError(t, items.Create(ctx, rod))

	jan := time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC)
	mar := time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC)

	// Two invoices, deliberately created newest-date first.
	_, err = invoiceSvc.CreateInvoice(ctx, &models.CreateInvoiceRequest{
		ClientID: client.ID,
		FromName: "Sharma Traders",
		Date:     &mar,
		Lines: []models.InvoiceLineRequest{
			{ItemID: rod.ID, Quantity: 10},
		},
	})
	require.NoError(t, err)

	_, err = invoiceSvc.CreateInvoice(ctx, &models.CreateInvoiceRequest{
		ClientID: client.ID,
		FromName: "Sharma Traders",
		Date:     &jan,
		Lines: []models.InvoiceLineRequest{
			{ItemID: cement.ID, Quantity: 2},
		},
	})
	require.NoError(t, err)

	details, err := svc.GetClientDetails(ctx, client.ID)
	require.NoError(t, err)

	stats := details.Statistics
	assert.Equal(t, 2, stats.TotalInvoices)
	// 2x100 -> 236; 10x50 -> 590
	assert.Equal(t, billing.Paise(70000), stats.Subtotal)
	assert.Equal(t, billing.Paise(6300), stats.TotalSGST)
	assert.Equal(t, billing.Paise(6300), stats.TotalCGST)
	assert.Equal(t, billing.Paise(82600), stats.TotalBilled)
	assert.Equal(t, billing.Paise(41300), stats.AverageInvoiceValue)
	assert.Equal(t, 12.0, stats.TotalQty)

	require.NotNil(t, stats.FirstInvoiceDate)
	require.NotNil(t, stats.LastInvoiceDate)
	assert.True(t, stats.FirstInvoiceDate.Equal(jan))
	assert.True(t, stats.LastInvoiceDate.Equal(mar))

	require.NotNil(t, stats.MostFrequentItem)
	assert.Equal(t, "Steel Rod", stats.MostFrequentItem.Name)
	assert.Equal(t, 10.0, stats.MostFrequentItem.Quantity)

	assert.Len(t, details.Invoices, 2)
}

func TestGetClientDetailsEmptyClient(t *testing.T) {
	svc, _, _ := newClientFixture(t)
	ctx := context.Background()

	client, err := svc.CreateClient(ctx, &models.CreateClientRequest{Name: "Fresh"})
	require.NoError(t, err)

	details, err := svc.GetClientDetails(ctx, client.ID)
	require.NoError(t, err)

	assert.Equal(t, 0, details.Statistics.TotalInvoices)
	assert.Equal(t, billing.Paise(0), details.Statistics.TotalBilled)
	assert.Nil(t, details.Statistics.FirstInvoiceDate)
	assert.Nil(t, details.Statistics.MostFrequentItem)
	assert.Empty(t, details.Invoices)
}

func TestGetClientDetailsUnknownClient(t *testing.T) {
	svc, _, _ := newClientFixture(t)

	_, err := svc.GetClientDetails(context.Background(), 404)
	assert.ErrorIs(t, err, ErrNotFound)
}
