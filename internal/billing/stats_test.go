package billing

import (
	"testing"
	"time"
)

func date(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

// invoiceOf builds a single-line invoice whose grand total is exactly
// the given rupee amount (no tax).
func invoiceOf(day string, rupees float64) StatsInvoice {
	return StatsInvoice{
		Date: date(day),
		Lines: []StatsLine{
			{Line: Line{Quantity: 1, UnitPrice: rupees}},
		},
	}
}

func TestComputeClientStatisticsEmpty(t *testing.T) {
	stats := ComputeClientStatistics(nil)
	if stats.TotalInvoices != 0 {
		t.Errorf("TotalInvoices = %d, want 0", stats.TotalInvoices)
	}
	if stats.AverageInvoiceValue != 0 {
		t.Errorf("AverageInvoiceValue = %v, want 0", stats.AverageInvoiceValue)
	}
	if stats.MostFrequentItem != nil {
		t.Errorf("MostFrequentItem = %+v, want nil", stats.MostFrequentItem)
	}
	if stats.FirstInvoiceDate != nil || stats.LastInvoiceDate != nil {
		t.Errorf("dates = %v/%v, want nil/nil", stats.FirstInvoiceDate, stats.LastInvoiceDate)
	}
}

func TestComputeClientStatisticsTotals(t *testing.T) {
	stats := ComputeClientStatistics([]StatsInvoice{
		invoiceOf("2024-03-01", 100),
		invoiceOf("2024-01-15", 200),
		invoiceOf("2024-02-10", 300),
	})

	if stats.TotalInvoices != 3 {
		t.Errorf("TotalInvoices = %d, want 3", stats.TotalInvoices)
	}
	if stats.TotalBilled != 60000 {
		t.Errorf("TotalBilled = %d paise, want 60000", stats.TotalBilled)
	}
	if stats.AverageInvoiceValue != 20000 {
		t.Errorf("AverageInvoiceValue = %d paise, want 20000", stats.AverageInvoiceValue)
	}
	if stats.TotalQty != 3 {
		t.Errorf("TotalQty = %v, want 3", stats.TotalQty)
	}
	if stats.FirstInvoiceDate == nil || !stats.FirstInvoiceDate.Equal(date("2024-01-15")) {
		t.Errorf("FirstInvoiceDate = %v, want 2024-01-15", stats.FirstInvoiceDate)
	}
	if stats.LastInvoiceDate == nil || !stats.LastInvoiceDate.Equal(date("2024-03-01")) {
		t.Errorf("LastInvoiceDate = %v, want 2024-03-01", stats.LastInvoiceDate)
	}
}

func TestComputeClientStatisticsTaxSums(t *testing.T) {
	line := StatsLine{
		Line:   Line{Quantity: 2, UnitPrice: 100, SGSTRate: 9, CGSTRate: 9},
		ItemID: 1, ItemName: "Cement",
	}
	stats := ComputeClientStatistics([]StatsInvoice{
		{Date: date("2024-05-01"), Lines: []StatsLine{line}},
		{Date: date("2024-05-02"), Lines: []StatsLine{line}},
	})

	if stats.Subtotal != 40000 || stats.TotalSGST != 3600 || stats.TotalCGST != 3600 {
		t.Errorf("tax sums = %d/%d/%d, want 40000/3600/3600",
			stats.Subtotal, stats.TotalSGST, stats.TotalCGST)
	}
	if stats.TotalBilled != 47200 {
		t.Errorf("TotalBilled = %d, want 47200", stats.TotalBilled)
	}
}

func TestComputeClientStatisticsMostFrequentItem(t *testing.T) {
	bricks := func(qty float64) StatsLine {
		return StatsLine{Line: Line{Quantity: qty, UnitPrice: 10}, ItemID: 1, ItemName: "Bricks"}
	}
	sand := func(qty float64) StatsLine {
		return StatsLine{Line: Line{Quantity: qty, UnitPrice: 50}, ItemID: 2, ItemName: "Sand"}
	}

	t.Run("weighted by quantity", func(t *testing.T) {
		stats := ComputeClientStatistics([]StatsInvoice{
			{Date: date("2024-01-01"), Lines: []StatsLine{bricks(100), sand(5)}},
			{Date: date("2024-01-02"), Lines: []StatsLine{sand(8)}},
		})
		if stats.MostFrequentItem == nil || stats.MostFrequentItem.Name != "Bricks" {
			t.Fatalf("MostFrequentItem = %+v, want Bricks", stats.MostFrequentItem)
		}
		if stats.MostFrequentItem.Quantity != 100 {
			t.Errorf("Quantity = %v, want 100", stats.MostFrequentItem.Quantity)
		}
	})

	t.Run("tie goes to first encountered", func(t *testing.T) {
		stats := ComputeClientStatistics([]StatsInvoice{
			{Date: date("2024-01-01"), Lines: []StatsLine{sand(10), bricks(10)}},
		})
		if stats.MostFrequentItem == nil || stats.MostFrequentItem.ItemID != 2 {
			t.Fatalf("MostFrequentItem = %+v, want Sand (first seen)", stats.MostFrequentItem)
		}
	})

	t.Run("lines without item reference are skipped", func(t *testing.T) {
		stats := ComputeClientStatistics([]StatsInvoice{
			{Date: date("2024-01-01"), Lines: []StatsLine{
				{Line: Line{Quantity: 99, UnitPrice: 1}},
			}},
		})
		if stats.MostFrequentItem != nil {
			t.Errorf("MostFrequentItem = %+v, want nil", stats.MostFrequentItem)
		}
		if stats.TotalQty != 99 {
			t.Errorf("TotalQty = %v, want 99", stats.TotalQty)
		}
	})
}

func TestComputeClientStatisticsSkipsZeroDates(t *testing.T) {
	stats := ComputeClientStatistics([]StatsInvoice{
		{Lines: nil}, // missing date
		invoiceOf("2024-06-01", 10),
	})
	if stats.FirstInvoiceDate == nil || !stats.FirstInvoiceDate.Equal(date("2024-06-01")) {
		t.Errorf("FirstInvoiceDate = %v, want 2024-06-01", stats.FirstInvoiceDate)
	}
	if stats.LastInvoiceDate == nil || !stats.LastInvoiceDate.Equal(date("2024-06-01")) {
		t.Errorf("LastInvoiceDate = %v, want 2024-06-01", stats.LastInvoiceDate)
	}
}
