package reports

import (
	"fmt"
	"math"
	"strconv"

	"github.com/shopspring/decimal"
)

// formatCurrency renders an amount as "$12.35" with half-up rounding.
// decimal avoids float drift on values like 12.345.
func formatCurrency(amount float64) string {
	return "$" + decimal.NewFromFloat(amount).Round(2).StringFixed(2)
}

// formatPercent renders a 0..100 percentage with up to two decimals,
// trimming trailing zeros ("40%", "87.5%")
func formatPercent(pct float64) string {
	return strconv.FormatFloat(round2(pct), 'f', -1, 64) + "%"
}

// formatRating renders a 0..5 rating as "4.2/5"
func formatRating(rating float64) string {
	return fmt.Sprintf("%.1f/5", rating)
}

func formatCount(n int) string {
	return strconv.Itoa(n)
}

// round2 rounds to two decimals (round(v*100)/100)
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// ratio returns numerator/denominator, guarding division by zero
func ratio(numerator, denominator float64) float64 {
	if denominator == 0 {
		return 0
	}
	return numerator / denominator
}

// percentOf returns the share of part in total as a 0..100 percentage with
// two-decimal rounding, or 0 for an empty total
func percentOf(part, total float64) float64 {
	return round2(ratio(part, total) * 100)
}
