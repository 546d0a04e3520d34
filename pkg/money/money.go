// Package money holds the rupiah helpers shared by receipts and reports.
// Amounts are integers in the smallest currency unit throughout the system;
// decimals only appear transiently for division and rounding.
package money

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Average divides total by count rounding half away from zero, returning 0
// for an empty count. Used for average order value.
func Average(total int64, count int64) int64 {
	if count == 0 {
		return 0
	}
	return decimal.NewFromInt(total).
		Div(decimal.NewFromInt(count)).
		Round(0).
		IntPart()
}

// FormatIDR renders an amount the way the receipts do: "Rp 25.000".
func FormatIDR(amount int64) string {
	negative := amount < 0
	if negative {
		amount = -amount
	}

	digits := strconv.FormatInt(amount, 10)
	var b strings.Builder
	for i, r := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(r)
	}

	if negative {
		return "-Rp " + b.String()
	}
	return "Rp " + b.String()
}
