// Package format holds the presentation helpers shared by the dividers'
// reasoning strings and any rendering layer.
package format

import (
	"fmt"
	"math"
	"strings"
)

func RoundCents(v float64) float64 {
	return math.Round(v*100) / 100
}

// Currency renders a dollar amount with digit grouping, e.g. -1234567.891
// becomes "-$1,234,567.89".
func Currency(v float64) string {
	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}
	v = RoundCents(v)

	whole := int64(v)
	cents := int64(math.Round((v - float64(whole)) * 100))

	digits := fmt.Sprintf("%d", whole)
	var b strings.Builder
	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(d)
	}
	return fmt.Sprintf("%s$%s.%02d", sign, b.String(), cents)
}

// Percent returns part as a percentage of total, rounded to two decimals.
// A zero total yields 0 rather than a division by zero.
func Percent(part, total float64) float64 {
	if total == 0 {
		return 0
	}
	return RoundCents(part / total * 100)
}

// Ratio returns part/total, or 0 when total is 0.
func Ratio(part, total float64) float64 {
	if total == 0 {
		return 0
	}
	return part / total
}
