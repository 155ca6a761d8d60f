package services

import (
	"context"
	"errors"
	"time"

	"billing-backend/internal/models"
)

var errFakeNotFound = errors.New("not found")

type fakeUserStore struct {
	users  map[int]*models.User
	nextID int
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: make(map[int]*models.User), nextID: 1}
}

func (f *fakeUserStore) Create(_ context.Context, u *models.User) error {
	u.ID = f.nextID
	f.nextID++
	if u.Role == "" {
		u.Role = "employee"
	}
	u.IsActive = true
	u.CreatedAt = time.Now()
	u.UpdatedAt = u.CreatedAt
	cp := *u
	f.users[u.ID] = &cp
	return nil
}

func (f *fakeUserStore) Get(_ context.Context, id int) (*models.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, errFakeNotFound
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUserStore) GetByEmail(_ context.Context, email string) (*models.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, errFakeNotFound
}

func (f *fakeUserStore) List(_ context.Context) ([]*models.User, error) {
	var out []*models.User
	for _, u := range f.users {
		cp := *u
		out = append(out, &cp)
	}
	return out, nil
}

func (f *fakeUserStore) Update(_ context.Context, u *models.User) error {
	if _, ok := f.users[u.ID]; !ok {
		return errFakeNotFound
	}
	cp := *u
	f.users[u.ID] = &cp
	return nil
}

func (f *fakeUserStore) SetActive(_ context.Context, id int, active bool) error {
	u, ok := f.users[id]
	if !ok {
		return errFakeNotFound
	}
	u.IsActive = active
	return nil
}

func (f *fakeUserStore) SetTOTP(_ context.Context, id int, secret string, enabled bool) error {
	u, ok := f.users[id]
	if !ok {
		return errFakeNotFound
	}
	u.TOTPSecret = secret
	u.TOTPEnabled = enabled
	return nil
}

func (f *fakeUserStore) Delete(_ context.Context, id int) error {
	delete(f.users, id)
	return nil
}

func (f *fakeUserStore) Count(_ context.Context) (int, error) {
	return len(f.users), nil
}

type fakeClientStore struct {
	clients map[int]*models.Client
	nextID  int
}

func newFakeClientStore() *fakeClientStore {
	return &fakeClientStore{clients: make(map[int]*models.Client), nextID: 1}
}

func (f *fakeClientStore) Create(_ context.Context, c *models.Client) error {
	c.ID = f.nextID
	f.nextID++
	c.CreatedAt = time.Now()
	c.UpdatedAt = c.CreatedAt
	cp := *c
	f.clients[c.ID] = &cp
	return nil
}

func (f *fakeClientStore) Get(_ context.Context, id int) (*models.Client, error) {
	c, ok := f.clients[id]
	if !ok {
		return nil, errFakeNotFound
	}
	cp := *c
	return &cp, nil
}

func (f *fakeClientStore) List(_ context.Context) ([]*models.Client, error) {
	var out []*models.Client
	for _, c := range f.clients {
		cp := *c
		out = append(out, &cp)
	}
	return out, nil
}

func (f *fakeClientStore) Update(_ context.Context, c *models.Client) error {
	if _, ok := f.clients[c.ID]; !ok {
		return errFakeNotFound
	}
	cp := *c
	f.clients[c.ID] = &cp
	return nil
}

func (f *fakeClientStore) Delete(_ context.Context, id int) error {
	delete(f.clients, id)
	return nil
}

func (f *fakeClientStore) Count(_ context.Context) (int, error) {
	return len(f.clients), nil
}

type fakeItemStore struct {
	items  map[int]*models.Item
	nextID int
}

func newFakeItemStore() *fakeItemStore {
	return &fakeItemStore{items: make(map[int]*models.Item), nextID: 1}
}

func (f *fakeItemStore) Create(_ context.Context, it *models.Item) error {
	it.ID = f.nextID
	f.nextID++
	cp := *it
	f.items[it.ID] = &cp
	return nil
}

func (f *fakeItemStore) Get(_ context.Context, id int) (*models.Item, error) {
	it, ok := f.items[id]
	if !ok {
		return nil, errFakeNotFound
	}
	cp := *it
	return &cp, nil
}

func (f *fakeItemStore) List(_ context.Context) ([]*models.Item, error) {
	var out []*models.Item
	for _, it := range f.items {
		cp := *it
		out = append(out, &cp)
	}
	return out, nil
}

func (f *fakeItemStore) Update(_ context.Context, it *models.Item) error {
	if _, ok := f.items[it.ID]; !ok {
		return errFakeNotFound
	}
	cp := *it
	f.items[it.ID] = &cp
	return nil
}

func (f *fakeItemStore) Delete(_ context.Context, id int) error {
	delete(f.items, id)
	return nil
}

func (f *fakeItemStore) Count(_ context.Context) (int, error) {
	return len(f.items), nil
}

type storedInvoice struct {
	invoice models.Invoice
	lines   []models.InvoiceLine
}

type fakeInvoiceStore struct {
	invoices map[int]*storedInvoice
	clients  *fakeClientStore
	nextID   int
	nextNum  int
}

func newFakeInvoiceStore(clients *fakeClientStore) *fakeInvoiceStore {
	return &fakeInvoiceStore{
		invoices: make(map[int]*storedInvoice),
		clients:  clients,
		nextID:   1,
		nextNum:  1,
	}
}

func (f *fakeInvoiceStore) Create(_ context.Context, invoice *models.Invoice, lines []models.InvoiceLine) error {
	invoice.ID = f.nextID
	f.nextID++
	if invoice.InvoiceNumber == "" {
		invoice.InvoiceNumber = invoiceNumber(f.nextNum)
		f.nextNum++
	}
	invoice.CreatedAt = time.Now()
	invoice.UpdatedAt = invoice.CreatedAt
	f.invoices[invoice.ID] = &storedInvoice{invoice: *invoice, lines: append([]models.InvoiceLine(nil), lines...)}
	return nil
}

func invoiceNumber(n int) string {
	const digits = "0123456789"
	buf := []byte("INV-000000")
	for i := len(buf) - 1; n > 0 && i >= 4; i-- {
		buf[i] = digits[n%10]
		n /= 10
	}
	return string(buf)
}

func (f *fakeInvoiceStore) Update(_ context.Context, invoice *models.Invoice, lines []models.InvoiceLine) error {
	stored, ok := f.invoices[invoice.ID]
	if !ok {
		return errFakeNotFound
	}
	invoice.CreatedAt = stored.invoice.CreatedAt
	invoice.UpdatedAt = time.Now()
	f.invoices[invoice.ID] = &storedInvoice{invoice: *invoice, lines: append([]models.InvoiceLine(nil), lines...)}
	return nil
}

func (f *fakeInvoiceStore) details(stored *storedInvoice) *models.InvoiceWithDetails {
	out := &models.InvoiceWithDetails{Invoice: stored.invoice}
	if stored.invoice.ClientID != nil {
		if c, ok := f.clients.clients[*stored.invoice.ClientID]; ok {
			out.ClientName = c.Name
		}
	}
	for _, l := range stored.lines {
		out.Lines = append(out.Lines, models.LineWithAmounts{InvoiceLine: l})
	}
	return out
}

func (f *fakeInvoiceStore) Get(_ context.Context, id int) (*models.InvoiceWithDetails, error) {
	stored, ok := f.invoices[id]
	if !ok {
		return nil, errFakeNotFound
	}
	return f.details(stored), nil
}

func (f *fakeInvoiceStore) GetByNumber(_ context.Context, number string) (*models.InvoiceWithDetails, error) {
	for _, stored := range f.invoices {
		if stored.invoice.InvoiceNumber == number {
			return f.details(stored), nil
		}
	}
	return nil, errFakeNotFound
}

func (f *fakeInvoiceStore) List(_ context.Context) ([]*models.InvoiceWithDetails, error) {
	var out []*models.InvoiceWithDetails
	for _, stored := range f.invoices {
		out = append(out, f.details(stored))
	}
	return out, nil
}

func (f *fakeInvoiceStore) GetByClient(_ context.Context, clientID int) ([]*models.InvoiceWithDetails, error) {
	var out []*models.InvoiceWithDetails
	for _, stored := range f.invoices {
		if stored.invoice.ClientID != nil && *stored.invoice.ClientID == clientID {
			out = append(out, f.details(stored))
		}
	}
	return out, nil
}

func (f *fakeInvoiceStore) Delete(_ context.Context, id int) error {
	delete(f.invoices, id)
	return nil
}

func (f *fakeInvoiceStore) Count(_ context.Context) (int, error) {
	return len(f.invoices), nil
}

func (f *fakeInvoiceStore) SumTotals(_ context.Context) (float64, error) {
	var sum float64
	for _, stored := range f.invoices {
		sum += stored.invoice.Total
	}
	return sum, nil
}
