package services

import (
	"context"
	"errors"

	"billing-backend/internal/models"
)

var ErrNotFound = errors.New("not found")

// Store interfaces cover the repository surface each service uses.
// The pgx repositories satisfy them; tests substitute fakes.

type UserStore interface {
	Create(ctx context.Context, u *models.User) error
	Get(ctx context.Context, id int) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	List(ctx context.Context) ([]*models.User, error)
	Update(ctx context.Context, u *models.User) error
	SetActive(ctx context.Context, id int, active bool) error
	SetTOTP(ctx context.Context, id int, secret string, enabled bool) error
	Delete(ctx context.Context, id int) error
	Count(ctx context.Context) (int, error)
}

type ClientStore interface {
	Create(ctx context.Context, c *models.Client) error
	Get(ctx context.Context, id int) (*models.Client, error)
	List(ctx context.Context) ([]*models.Client, error)
	Update(ctx context.Context, c *models.Client) error
	Delete(ctx context.Context, id int) error
	Count(ctx context.Context) (int, error)
}

type ItemStore interface {
	Create(ctx context.Context, it *models.Item) error
	Get(ctx context.Context, id int) (*models.Item, error)
	List(ctx context.Context) ([]*models.Item, error)
	Update(ctx context.Context, it *models.Item) error
	Delete(ctx context.Context, id int) error
	Count(ctx context.Context) (int, error)
}

type InvoiceStore interface {
	Create(ctx context.Context, invoice *models.Invoice, lines []models.InvoiceLine) error
	Update(ctx context.Context, invoice *models.Invoice, lines []models.InvoiceLine) error
	Get(ctx context.Context, id int) (*models.InvoiceWithDetails, error)
	GetByNumber(ctx context.Context, number string) (*models.InvoiceWithDetails, error)
	List(ctx context.Context) ([]*models.InvoiceWithDetails, error)
	GetByClient(ctx context.Context, clientID int) ([]*models.InvoiceWithDetails, error)
	Delete(ctx context.Context, id int) error
	Count(ctx context.Context) (int, error)
	SumTotals(ctx context.Context) (float64, error)
}
