package billing

import (
	"math"
	"time"
)

// StatsLine is one invoice line as seen by the statistics aggregator:
// the calculator inputs plus the identity of the referenced catalog
// item. ItemID zero means the line has no item reference and is
// excluded from frequency counting.
type StatsLine struct {
	Line
	ItemID   int
	ItemName string
}

// StatsInvoice is one invoice as seen by the statistics aggregator.
type StatsInvoice struct {
	Date  time.Time
	Lines []StatsLine
}

// ItemFrequency reports how often a catalog item was billed, weighted
// by quantity.
type ItemFrequency struct {
	ItemID   int     `json:"item_id"`
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"`
}

// ClientStatistics is the flat record shown on the client detail view.
type ClientStatistics struct {
	TotalInvoices       int            `json:"total_invoices"`
	TotalBilled         Paise          `json:"total_billed"`
	Subtotal            Paise          `json:"subtotal"`
	TotalSGST           Paise          `json:"total_sgst"`
	TotalCGST           Paise          `json:"total_cgst"`
	AverageInvoiceValue Paise          `json:"average_invoice_value"`
	TotalQty            float64        `json:"total_qty"`
	FirstInvoiceDate    *time.Time     `json:"first_invoice_date"`
	LastInvoiceDate     *time.Time     `json:"last_invoice_date"`
	MostFrequentItem    *ItemFrequency `json:"most_frequent_item"`
}

// ComputeClientStatistics aggregates totals across all of a client's
// invoices.
//
// Totals are the paise sums of each invoice's ComputeInvoiceTotals
// output. Date extremes are explicit min/max over the invoice dates,
// so the result does not depend on the input being sorted. The most
// frequent item is the one with the highest summed quantity; on a tie
// the item encountered first in input order wins.
//
// An empty input yields a zero record with nil dates and item.
func ComputeClientStatistics(invoices []StatsInvoice) ClientStatistics {
	var stats ClientStatistics
	stats.TotalInvoices = len(invoices)

	freq := make(map[int]*ItemFrequency)
	var order []int

	for _, inv := range invoices {
		lines := make([]Line, len(inv.Lines))
		for i, sl := range inv.Lines {
			lines[i] = sl.Line

			qty := sanitize(sl.Quantity)
			stats.TotalQty += qty
			if sl.ItemID != 0 {
				f, ok := freq[sl.ItemID]
				if !ok {
					f = &ItemFrequency{ItemID: sl.ItemID, Name: sl.ItemName}
					freq[sl.ItemID] = f
					order = append(order, sl.ItemID)
				}
				f.Quantity += qty
			}
		}

		t := ComputeInvoiceTotals(lines)
		stats.Subtotal += t.Subtotal
		stats.TotalSGST += t.TotalSGST
		stats.TotalCGST += t.TotalCGST
		stats.TotalBilled += t.GrandTotal

		if !inv.Date.IsZero() {
			d := inv.Date
			if stats.FirstInvoiceDate == nil || d.Before(*stats.FirstInvoiceDate) {
				stats.FirstInvoiceDate = &d
			}
			if stats.LastInvoiceDate == nil || d.After(*stats.LastInvoiceDate) {
				stats.LastInvoiceDate = &d
			}
		}
	}

	if stats.TotalInvoices > 0 {
		stats.AverageInvoiceValue = Paise(math.Floor(
			float64(stats.TotalBilled)/float64(stats.TotalInvoices) + 0.5))
	}

	// Strictly-greater comparison in first-seen order keeps the
	// tie-break deterministic.
	for _, id := range order {
		f := freq[id]
		if stats.MostFrequentItem == nil || f.Quantity > stats.MostFrequentItem.Quantity {
			stats.MostFrequentItem = f
		}
	}

	return stats
}
