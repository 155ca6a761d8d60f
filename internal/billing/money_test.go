package billing

import (
	"encoding/json"
	"math"
	"testing"
)

func TestFromRupees(t *testing.T) {
	tests := []struct {
		in   float64
		want Paise
	}{
		{0, 0},
		{1, 100},
		{10.01, 1001},
		{99.999, 10000},
		{-5, 0},
		{math.NaN(), 0},
		{math.Inf(1), 0},
	}
	for _, tt := range tests {
		if got := FromRupees(tt.in); got != tt.want {
			t.Errorf("FromRupees(%v) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestPaiseJSON(t *testing.T) {
	b, err := json.Marshal(Paise(23600))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(b) != "236.00" {
		t.Errorf("marshal = %s, want 236.00", b)
	}

	var p Paise
	if err := json.Unmarshal([]byte("118.50"), &p); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if p != 11850 {
		t.Errorf("unmarshal = %d, want 11850", p)
	}
}
