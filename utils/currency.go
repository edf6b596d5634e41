package utils

import (
	"fmt"
	"math"
)

// RoundCents rounds a monetary amount to two decimals. Order totals are
// stored as decimal(10,2) but summed as float64, so sums are rounded
// before they are compared or persisted.
func RoundCents(amount float64) float64 {
	return math.Round(amount*100) / 100
}

// FormatAmount renders an amount the way receipts print it.
func FormatAmount(amount float64) string {
	return fmt.Sprintf("%.2f", RoundCents(amount))
}
