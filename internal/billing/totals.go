package billing

// InvoiceTotals is the invoice-level money breakdown.
type InvoiceTotals struct {
	Subtotal   Paise `json:"subtotal"`
	TotalSGST  Paise `json:"total_sgst"`
	TotalCGST  Paise `json:"total_cgst"`
	GrandTotal Paise `json:"grand_total"`
}

// ComputeInvoiceTotals reduces an invoice's lines into totals.
//
// The sums are plain paise additions of the already-rounded per-line
// amounts. No re-rounding happens here: rounding the sums again is what
// produced the off-by-one-paisa mismatches between line items and the
// footer in earlier renditions of this calculation.
//
// An empty or nil slice yields all-zero totals.
func ComputeInvoiceTotals(lines []Line) InvoiceTotals {
	var t InvoiceTotals
	for _, l := range lines {
		a := ComputeLineTotals(l)
		t.Subtotal += a.Subtotal
		t.TotalSGST += a.SGST
		t.TotalCGST += a.CGST
	}
	t.GrandTotal = t.Subtotal + t.TotalSGST + t.TotalCGST
	return t
}
