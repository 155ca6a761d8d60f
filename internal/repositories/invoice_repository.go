package repositories

import (
	"context"
	"fmt"

	"billing-backend/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type InvoiceRepository struct {
	DB *pgxpool.Pool
}

func NewInvoiceRepository(db *pgxpool.Pool) *InvoiceRepository {
	return &InvoiceRepository{DB: db}
}

// GenerateInvoiceNumber generates a unique invoice number from a
// database sequence (O(1), collision-free under concurrency).
func (r *InvoiceRepository) GenerateInvoiceNumber(ctx context.Context) (string, error) {
	var nextNum int
	err := r.DB.QueryRow(ctx, "SELECT nextval('invoice_number_sequence')").Scan(&nextNum)
	if err != nil {
		return "", fmt.Errorf("failed to get next invoice number: %w", err)
	}
	return fmt.Sprintf("INV-%06d", nextNum), nil
}

// Create creates a new invoice with its lines in one transaction.
func (r *InvoiceRepository) Create(ctx context.Context, invoice *models.Invoice, lines []models.InvoiceLine) error {
	tx, err := r.DB.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if invoice.InvoiceNumber == "" {
		invoiceNumber, err := r.GenerateInvoiceNumber(ctx)
		if err != nil {
			return err
		}
		invoice.InvoiceNumber = invoiceNumber
	}

	err = tx.QueryRow(ctx,
		`INSERT INTO invoices(invoice_number, client_id, from_name, from_address,
		                      from_mobile, from_gstin, work_name, work_code, date, notes, total)
		 VALUES($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		 RETURNING id, created_at, updated_at`,
		invoice.InvoiceNumber, invoice.ClientID, invoice.FromName, invoice.FromAddress,
		invoice.FromMobile, invoice.FromGSTIN, invoice.WorkName, invoice.WorkCode,
		invoice.Date, invoice.Notes, invoice.Total,
	).Scan(&invoice.ID, &invoice.CreatedAt, &invoice.UpdatedAt)
	if err != nil {
		return err
	}

	if err := insertLines(ctx, tx, invoice.ID, lines); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

// Update rewrites an invoice header and replaces its lines in one
// transaction. The cached total must already be recomputed from the
// new lines by the caller.
func (r *InvoiceRepository) Update(ctx context.Context, invoice *models.Invoice, lines []models.InvoiceLine) error {
	tx, err := r.DB.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	tag, err := tx.Exec(ctx,
		`UPDATE invoices
		 SET client_id = $1, from_name = $2, from_address = $3, from_mobile = $4,
		     from_gstin = $5, work_name = $6, work_code = $7, date = $8,
		     notes = $9, total = $10, updated_at = NOW()
		 WHERE id = $11`,
		invoice.ClientID, invoice.FromName, invoice.FromAddress, invoice.FromMobile,
		invoice.FromGSTIN, invoice.WorkName, invoice.WorkCode, invoice.Date,
		invoice.Notes, invoice.Total, invoice.ID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}

	if _, err := tx.Exec(ctx,
		`DELETE FROM invoice_lines WHERE invoice_id = $1`, invoice.ID); err != nil {
		return err
	}
	if err := insertLines(ctx, tx, invoice.ID, lines); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func insertLines(ctx context.Context, tx pgx.Tx, invoiceID int, lines []models.InvoiceLine) error {
	for i, line := range lines {
		_, err := tx.Exec(ctx,
			`INSERT INTO invoice_lines(invoice_id, item_id, item_name, quantity,
			                           unit_price, sgst, cgst, price_includes_tax, position)
			 VALUES($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
			invoiceID, line.ItemID, line.ItemName, line.Quantity,
			line.UnitPrice, line.SGST, line.CGST, line.PriceIncludesTax, i)
		if err != nil {
			return err
		}
	}
	return nil
}

const invoiceSelect = `
	SELECT i.id, i.invoice_number, i.client_id, i.from_name, i.from_address,
	       i.from_mobile, i.from_gstin, i.work_name, i.work_code, i.date,
	       i.notes, i.total, i.created_at, i.updated_at,
	       COALESCE(c.name, '') AS client_name
	FROM invoices i
	LEFT JOIN clients c ON i.client_id = c.id`

func scanInvoice(row interface{ Scan(...any) error }) (*models.InvoiceWithDetails, error) {
	var inv models.InvoiceWithDetails
	err := row.Scan(&inv.ID, &inv.InvoiceNumber, &inv.ClientID, &inv.FromName,
		&inv.FromAddress, &inv.FromMobile, &inv.FromGSTIN, &inv.WorkName,
		&inv.WorkCode, &inv.Date, &inv.Notes, &inv.Total,
		&inv.CreatedAt, &inv.UpdatedAt, &inv.ClientName)
	if err != nil {
		return nil, err
	}
	return &inv, nil
}

// Get retrieves an invoice by ID with its lines
func (r *InvoiceRepository) Get(ctx context.Context, id int) (*models.InvoiceWithDetails, error) {
	inv, err := scanInvoice(r.DB.QueryRow(ctx, invoiceSelect+` WHERE i.id = $1`, id))
	if err != nil {
		return nil, err
	}
	if err := r.loadLines(ctx, inv); err != nil {
		return nil, err
	}
	return inv, nil
}

// GetByNumber retrieves an invoice by its display number
func (r *InvoiceRepository) GetByNumber(ctx context.Context, number string) (*models.InvoiceWithDetails, error) {
	inv, err := scanInvoice(r.DB.QueryRow(ctx, invoiceSelect+` WHERE i.invoice_number = $1`, number))
	if err != nil {
		return nil, err
	}
	if err := r.loadLines(ctx, inv); err != nil {
		return nil, err
	}
	return inv, nil
}

func (r *InvoiceRepository) loadLines(ctx context.Context, inv *models.InvoiceWithDetails) error {
	rows, err := r.DB.Query(ctx,
		`SELECT id, invoice_id, item_id, item_name, quantity, unit_price,
		        sgst, cgst, price_includes_tax, position
		 FROM invoice_lines WHERE invoice_id = $1 ORDER BY position`, inv.ID)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var l models.InvoiceLine
		if err := rows.Scan(&l.ID, &l.InvoiceID, &l.ItemID, &l.ItemName,
			&l.Quantity, &l.UnitPrice, &l.SGST, &l.CGST,
			&l.PriceIncludesTax, &l.Position); err != nil {
			return err
		}
		inv.Lines = append(inv.Lines, models.LineWithAmounts{InvoiceLine: l})
	}
	return rows.Err()
}

// List returns all invoices (headers with client names, newest first,
// lines not loaded).
func (r *InvoiceRepository) List(ctx context.Context) ([]*models.InvoiceWithDetails, error) {
	rows, err := r.DB.Query(ctx, invoiceSelect+` ORDER BY i.created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var invoices []*models.InvoiceWithDetails
	for rows.Next() {
		inv, err := scanInvoice(rows)
		if err != nil {
			return nil, err
		}
		invoices = append(invoices, inv)
	}
	return invoices, rows.Err()
}

// GetByClient returns all invoices for a client, newest first, each
// with its lines loaded (needed for the statistics aggregation).
func (r *InvoiceRepository) GetByClient(ctx context.Context, clientID int) ([]*models.InvoiceWithDetails, error) {
	rows, err := r.DB.Query(ctx,
		invoiceSelect+` WHERE i.client_id = $1 ORDER BY i.date DESC, i.id DESC`, clientID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var invoices []*models.InvoiceWithDetails
	for rows.Next() {
		inv, err := scanInvoice(rows)
		if err != nil {
			return nil, err
		}
		invoices = append(invoices, inv)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for _, inv := range invoices {
		if err := r.loadLines(ctx, inv); err != nil {
			return nil, err
		}
	}
	return invoices, nil
}

// Delete removes an invoice (lines cascade)
func (r *InvoiceRepository) Delete(ctx context.Context, id int) error {
	_, err := r.DB.Exec(ctx, `DELETE FROM invoices WHERE id = $1`, id)
	return err
}

// Count returns the number of invoices
func (r *InvoiceRepository) Count(ctx context.Context) (int, error) {
	var n int
	err := r.DB.QueryRow(ctx, `SELECT COUNT(*) FROM invoices`).Scan(&n)
	return n, err
}

// SumTotals returns the sum of the cached invoice totals.
func (r *InvoiceRepository) SumTotals(ctx context.Context) (float64, error) {
	var sum float64
	err := r.DB.QueryRow(ctx, `SELECT COALESCE(SUM(total), 0) FROM invoices`).Scan(&sum)
	return sum, err
}
