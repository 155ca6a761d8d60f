package billing

import (
	"math"
	"testing"
)

func TestAmountInWords(t *testing.T) {
	tests := []struct {
		amount float64
		want   string
	}{
		{0, "Zero Rupees Only"},
		{1, "One Rupees Only"},
		{19, "Nineteen Rupees Only"},
		{20, "Twenty Rupees Only"},
		{45, "Forty Five Rupees Only"},
		{100, "One Hundred Rupees Only"},
		{105, "One Hundred and Five Rupees Only"},
		{999, "Nine Hundred and Ninety Nine Rupees Only"},
		{1000, "One Thousand Rupees Only"},
		{1234.50, "One Thousand Two Hundred and Thirty Four Rupees and Fifty Paise Only"},
		{100000, "One Lakh Rupees Only"},
		{2350000, "Twenty Three Lakh Fifty Thousand Rupees Only"},
		{10000000, "One Crore Rupees Only"},
		{12345678, "One Crore Twenty Three Lakh Forty Five Thousand Six Hundred and Seventy Eight Rupees Only"},
		{0.25, "Rupees and Twenty Five Paise Only"},
		{-50, "Zero Rupees Only"},
	}

	for _, tt := range tests {
		if got := AmountInWords(tt.amount); got != tt.want {
			t.Errorf("AmountInWords(%v) = %q, want %q", tt.amount, got, tt.want)
		}
	}
}

func TestAmountInWordsInvalidInput(t *testing.T) {
	for _, v := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		if got := AmountInWords(v); got != "" {
			t.Errorf("AmountInWords(%v) = %q, want empty string", v, got)
		}
	}
}

func TestAmountInWordsPaiseCarry(t *testing.T) {
	// 4.999 rounds to 100 paise, which must carry into the rupee
	// amount instead of printing "One Hundred Paise".
	if got := AmountInWords(4.999); got != "Five Rupees Only" {
		t.Errorf("AmountInWords(4.999) = %q, want %q", got, "Five Rupees Only")
	}
}
