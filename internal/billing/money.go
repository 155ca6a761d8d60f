package billing

import (
	"math"
	"strconv"
)

// Paise is a currency amount in integer paise (1/100 rupee).
// All tax arithmetic happens in paise so that summing line amounts
// never drifts from the figures shown per line.
type Paise int64

// FromRupees converts a rupee amount to paise, rounding half-up at
// two decimals. Negative and non-finite values collapse to zero.
func FromRupees(r float64) Paise {
	return roundPaise(r * 100)
}

// roundPaise rounds a fractional paise value half-up to the nearest
// whole paisa, clamping invalid input to zero.
func roundPaise(v float64) Paise {
	if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return 0
	}
	return Paise(math.Floor(v + 0.5))
}

// Rupees returns the amount as a rupee value.
func (p Paise) Rupees() float64 {
	return float64(p) / 100
}

func (p Paise) String() string {
	return strconv.FormatFloat(p.Rupees(), 'f', 2, 64)
}

// MarshalJSON emits the amount as a rupee number with two decimals,
// which is what the frontend and PDF layer consume.
func (p Paise) MarshalJSON() ([]byte, error) {
	return []byte(p.String()), nil
}

func (p *Paise) UnmarshalJSON(b []byte) error {
	r, err := strconv.ParseFloat(string(b), 64)
	if err != nil {
		return err
	}
	*p = FromRupees(r)
	return nil
}

// sanitize clamps a calculator input to a usable non-negative number.
func sanitize(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}
