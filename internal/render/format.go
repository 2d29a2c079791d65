package render

import (
	"fmt"
	"strings"
)

// FormatCurrency formats an amount as "$1,234.56". Negative amounts keep
// the sign ahead of the currency symbol.
func FormatCurrency(v float64) string {
	neg := v < 0
	if neg {
		v = -v
	}
	s := fmt.Sprintf("%.2f", v)

	parts := strings.SplitN(s, ".", 2)
	whole := parts[0]

	var b strings.Builder
	for i, digit := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(digit)
	}

	out := "$" + b.String() + "." + parts[1]
	if neg {
		return "-" + out
	}
	return out
}

// FormatPercent formats a completion percentage, e.g. "51.3%".
func FormatPercent(v float64) string {
	return fmt.Sprintf("%.1f%%", v)
}

// FormatYoY formats a year-over-year change. An unknown prior (no
// revenue in the matching prior-year quarter) renders as "New" rather
// than a misleading 0%.
func FormatYoY(change float64, known bool) string {
	if !known {
		return "New"
	}
	return fmt.Sprintf("%+.1f%%", change)
}
