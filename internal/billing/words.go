package billing

import (
	"math"
	"strings"
)

var ones = [...]string{
	"", "One", "Two", "Three", "Four", "Five", "Six", "Seven", "Eight",
	"Nine", "Ten", "Eleven", "Twelve", "Thirteen", "Fourteen", "Fifteen",
	"Sixteen", "Seventeen", "Eighteen", "Nineteen",
}

var tens = [...]string{
	"", "", "Twenty", "Thirty", "Forty", "Fifty", "Sixty", "Seventy",
	"Eighty", "Ninety",
}

// twoDigits spells out 0..99. Returns "" for zero.
func twoDigits(n int64) string {
	if n < 20 {
		return ones[n]
	}
	s := tens[n/10]
	if n%10 != 0 {
		s += " " + ones[n%10]
	}
	return s
}

// AmountInWords renders a rupee amount in Indian-English words, the
// form printed on invoices: "One Thousand Two Hundred and Thirty Four
// Rupees and Fifty Paise Only".
//
// The integer part is decomposed into Crore / Lakh / Thousand / Hundred
// groups; "and" is inserted before a nonzero final two-digit remainder
// when the integer part exceeds 100. Paise are rounded half-up from the
// fraction; when they round to a full rupee the rupee amount carries.
//
// NaN and infinities yield "". Negative amounts count as zero.
func AmountInWords(amount float64) string {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return ""
	}
	if amount < 0 {
		amount = 0
	}

	rupees := int64(math.Floor(amount))
	paise := int64(math.Floor((amount-math.Floor(amount))*100 + 0.5))
	if paise == 100 {
		rupees++
		paise = 0
	}

	if rupees == 0 && paise == 0 {
		return "Zero Rupees Only"
	}

	var parts []string
	appendGroup := func(n int64, label string) {
		if n == 0 {
			return
		}
		parts = append(parts, twoDigits(n), label)
	}

	appendGroup((rupees/10000000)%100, "Crore")
	appendGroup((rupees/100000)%100, "Lakh")
	appendGroup((rupees/1000)%100, "Thousand")
	if h := (rupees / 100) % 10; h != 0 {
		parts = append(parts, ones[h], "Hundred")
	}
	if rem := rupees % 100; rem != 0 {
		if rupees > 100 {
			parts = append(parts, "and")
		}
		parts = append(parts, twoDigits(rem))
	}

	parts = append(parts, "Rupees")
	if paise != 0 {
		parts = append(parts, "and", twoDigits(paise), "Paise")
	}
	parts = append(parts, "Only")

	return strings.Join(parts, " ")
}
