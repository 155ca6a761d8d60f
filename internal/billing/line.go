package billing

// Line carries the numeric inputs of one invoice line. Quantity may be
// fractional. UnitPrice is the snapshotted price from the item catalog;
// whether it already includes GST is an explicit flag on the line, never
// an implicit convention of the call site.
type Line struct {
	Quantity         float64 `json:"quantity"`
	UnitPrice        float64 `json:"unit_price"`
	SGSTRate         float64 `json:"sgst"`
	CGSTRate         float64 `json:"cgst"`
	PriceIncludesTax bool    `json:"price_includes_tax"`
}

// LineAmounts is the fully rounded money breakdown of one line.
type LineAmounts struct {
	Subtotal Paise `json:"subtotal"`
	SGST     Paise `json:"sgst"`
	CGST     Paise `json:"cgst"`
	Total    Paise `json:"total"`
}

// ComputeLineTotals computes the money amounts for a single line.
//
// The subtotal (quantity x taxable unit price) is rounded half-up to
// paise before the taxes are computed, and each tax amount is rounded
// the same way. Rounding per line keeps the displayed line figures and
// the invoice footer consistent: the footer is a plain sum of these
// values and is never rounded again.
//
// Inputs are fail-soft: negative or non-numeric values count as zero.
func ComputeLineTotals(l Line) LineAmounts {
	qty := sanitize(l.Quantity)
	price := sanitize(l.UnitPrice)
	sgst := sanitize(l.SGSTRate)
	cgst := sanitize(l.CGSTRate)

	if l.PriceIncludesTax {
		// Back the GST out of the stored price to get the taxable base.
		if div := 1 + (sgst+cgst)/100; div > 0 {
			price = price / div
		}
	}

	subtotal := roundPaise(qty * price * 100)
	sgstAmt := roundPaise(float64(subtotal) * sgst / 100)
	cgstAmt := roundPaise(float64(subtotal) * cgst / 100)

	return LineAmounts{
		Subtotal: subtotal,
		SGST:     sgstAmt,
		CGST:     cgstAmt,
		Total:    subtotal + sgstAmt + cgstAmt,
	}
}
