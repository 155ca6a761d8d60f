package repositories

import (
	"context"

	"billing-backend/internal/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

type ItemRepository struct {
	DB *pgxpool.Pool
}

func NewItemRepository(db *pgxpool.Pool) *ItemRepository {
	return &ItemRepository{DB: db}
}

// Create inserts a new catalog item
func (r *ItemRepository) Create(ctx context.Context, it *models.Item) error {
	return r.DB.QueryRow(ctx,
		`INSERT INTO items(name, price, sgst, cgst, price_includes_tax)
		 VALUES($1, $2, $3, $4, $5)
		 RETURNING id, created_at, updated_at`,
		it.Name, it.Price, it.SGST, it.CGST, it.PriceIncludesTax,
	).Scan(&it.ID, &it.CreatedAt, &it.UpdatedAt)
}

// Get retrieves an item by ID
func (r *ItemRepository) Get(ctx context.Context, id int) (*models.Item, error) {
	var it models.Item
	err := r.DB.QueryRow(ctx,
		`SELECT id, name, price, sgst, cgst, price_includes_tax, created_at, updated_at
		 FROM items WHERE id = $1`, id,
	).Scan(&it.ID, &it.Name, &it.Price, &it.SGST, &it.CGST,
		&it.PriceIncludesTax, &it.CreatedAt, &it.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &it, nil
}

// List returns all items sorted by name
func (r *ItemRepository) List(ctx context.Context) ([]*models.Item, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT id, name, price, sgst, cgst, price_includes_tax, created_at, updated_at
		 FROM items ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*models.Item
	for rows.Next() {
		var it models.Item
		if err := rows.Scan(&it.ID, &it.Name, &it.Price, &it.SGST, &it.CGST,
			&it.PriceIncludesTax, &it.CreatedAt, &it.UpdatedAt); err != nil {
			return nil, err
		}
		items = append(items, &it)
	}
	return items, rows.Err()
}

// Update updates an item
func (r *ItemRepository) Update(ctx context.Context, it *models.Item) error {
	_, err := r.DB.Exec(ctx,
		`UPDATE items
		 SET name = $1, price = $2, sgst = $3, cgst = $4,
		     price_includes_tax = $5, updated_at = NOW()
		 WHERE id = $6`,
		it.Name, it.Price, it.SGST, it.CGST, it.PriceIncludesTax, it.ID)
	return err
}

// Delete removes an item. Historical invoice lines keep their
// snapshots; the FK on invoice_lines nulls the reference.
func (r *ItemRepository) Delete(ctx context.Context, id int) error {
	_, err := r.DB.Exec(ctx, `DELETE FROM items WHERE id = $1`, id)
	return err
}

// Count returns the number of items
func (r *ItemRepository) Count(ctx context.Context) (int, error) {
	var n int
	err := r.DB.QueryRow(ctx, `SELECT COUNT(*) FROM items`).Scan(&n)
	return n, err
}
