package services

import (
	"bytes"
	"fmt"

	"billing-backend/internal/metrics"
	"billing-backend/internal/models"
	"billing-backend/internal/timeutil"

	"github.com/jung-kurt/gofpdf/v2"
)

// PDFService renders printable GST invoices.
type PDFService struct{}

func NewPDFService() *PDFService {
	return &PDFService{}
}

// GenerateInvoicePDF renders an invoice as an A4 PDF. The caller must
// pass a decorated invoice (amounts, totals and words filled in).
func (s *PDFService) GenerateInvoicePDF(inv *models.InvoiceWithDetails) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(10, 10, 10)
	pdf.AddPage()

	// Header
	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(190, 10, "TAX INVOICE", "", 1, "C", false, 0, "")
	pdf.Ln(2)

	// Issuer block
	pdf.SetFillColor(240, 240, 240)
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(190, 8, inv.FromName, "1", 1, "L", true, 0, "")

	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(190, 6, inv.FromAddress, "LR", 1, "L", false, 0, "")
	pdf.CellFormat(95, 6, fmt.Sprintf("Mobile: %s", inv.FromMobile), "LB", 0, "L", false, 0, "")
	pdf.CellFormat(95, 6, fmt.Sprintf("GSTIN: %s", inv.FromGSTIN), "RB", 1, "L", false, 0, "")
	pdf.Ln(3)

	// Invoice meta
	pdf.SetFont("Arial", "B", 11)
	pdf.CellFormat(95, 7, fmt.Sprintf("Invoice No: %s", inv.InvoiceNumber), "1", 0, "L", false, 0, "")
	pdf.CellFormat(95, 7, fmt.Sprintf("Date: %s", timeutil.FormatDate(inv.Date)), "1", 1, "L", false, 0, "")

	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(95, 7, fmt.Sprintf("Bill To: %s", inv.ClientName), "1", 0, "L", false, 0, "")
	work := inv.WorkName
	if inv.WorkCode != "" {
		work = fmt.Sprintf("%s (%s)", inv.WorkName, inv.WorkCode)
	}
	pdf.CellFormat(95, 7, fmt.Sprintf("Work: %s", work), "1", 1, "L", false, 0, "")
	pdf.Ln(3)

	// Line table header
	pdf.SetFont("Arial", "B", 10)
	pdf.SetFillColor(200, 200, 200)
	pdf.CellFormat(10, 7, "#", "1", 0, "C", true, 0, "")
	pdf.CellFormat(60, 7, "Item", "1", 0, "C", true, 0, "")
	pdf.CellFormat(20, 7, "Qty", "1", 0, "C", true, 0, "")
	pdf.CellFormat(25, 7, "Rate", "1", 0, "C", true, 0, "")
	pdf.CellFormat(25, 7, "SGST", "1", 0, "C", true, 0, "")
	pdf.CellFormat(25, 7, "CGST", "1", 0, "C", true, 0, "")
	pdf.CellFormat(25, 7, "Amount", "1", 1, "C", true, 0, "")

	// Line rows
	pdf.SetFont("Arial", "", 10)
	for i, line := range inv.Lines {
		name := line.ItemName
		if len(name) > 32 {
			name = name[:29] + "..."
		}
		pdf.CellFormat(10, 6, fmt.Sprintf("%d", i+1), "1", 0, "C", false, 0, "")
		pdf.CellFormat(60, 6, name, "1", 0, "L", false, 0, "")
		pdf.CellFormat(20, 6, fmt.Sprintf("%g", line.Quantity), "1", 0, "C", false, 0, "")
		pdf.CellFormat(25, 6, fmt.Sprintf("%.2f", line.UnitPrice), "1", 0, "R", false, 0, "")
		pdf.CellFormat(25, 6, fmt.Sprintf("%s (%g%%)", line.Amounts.SGST.String(), line.SGST), "1", 0, "R", false, 0, "")
		pdf.CellFormat(25, 6, fmt.Sprintf("%s (%g%%)", line.Amounts.CGST.String(), line.CGST), "1", 0, "R", false, 0, "")
		pdf.CellFormat(25, 6, line.Amounts.Total.String(), "1", 1, "R", false, 0, "")
	}
	pdf.Ln(3)

	// Totals block
	pdf.SetFont("Arial", "", 11)
	pdf.CellFormat(140, 7, "Subtotal", "1", 0, "R", false, 0, "")
	pdf.CellFormat(50, 7, "Rs. "+inv.Totals.Subtotal.String(), "1", 1, "R", false, 0, "")
	pdf.CellFormat(140, 7, "SGST", "1", 0, "R", false, 0, "")
	pdf.CellFormat(50, 7, "Rs. "+inv.Totals.TotalSGST.String(), "1", 1, "R", false, 0, "")
	pdf.CellFormat(140, 7, "CGST", "1", 0, "R", false, 0, "")
	pdf.CellFormat(50, 7, "Rs. "+inv.Totals.TotalCGST.String(), "1", 1, "R", false, 0, "")

	pdf.SetFont("Arial", "B", 12)
	pdf.SetFillColor(230, 230, 230)
	pdf.CellFormat(140, 8, "Grand Total", "1", 0, "R", true, 0, "")
	pdf.CellFormat(50, 8, "Rs. "+inv.Totals.GrandTotal.String(), "1", 1, "R", true, 0, "")
	pdf.Ln(2)

	pdf.SetFont("Arial", "I", 10)
	pdf.MultiCell(190, 6, inv.AmountInWords, "1", "L", false)

	if inv.Notes != "" {
		pdf.Ln(3)
		pdf.SetFont("Arial", "", 9)
		pdf.MultiCell(190, 5, "Notes: "+inv.Notes, "", "L", false)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}

	metrics.PDFsGeneratedTotal.Inc()
	return buf.Bytes(), nil
}
