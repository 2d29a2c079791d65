package dataprocessing

import (
	"fmt"
	"strconv"
	"strings"

	apperrors "salescli/internal/errors"
)

// stripCurrency removes the currency symbol, thousands separators and
// surrounding whitespace from a raw cell value.
func stripCurrency(raw string) string {
	s := strings.ReplaceAll(raw, "$", "")
	s = strings.ReplaceAll(s, ",", "")
	return strings.TrimSpace(s)
}

// ParseCurrency parses a single authoritative currency value, such as a
// budget figure. Empty cells parse to 0; anything else that is not a
// number after stripping currency formatting is a PARSING error.
func ParseCurrency(raw string) (float64, error) {
	s := stripCurrency(raw)
	if s == "" {
		return 0, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, apperrors.NewParsingError(
			fmt.Sprintf("cannot parse %q as a currency amount", raw), err)
	}
	return v, nil
}

// CoerceCurrency parses a bulk revenue cell. Unparseable values coerce
// to 0 rather than failing the run: a monthly revenue column holds
// hundreds of cells and a stray text note should not abort the report.
func CoerceCurrency(raw string) float64 {
	s := stripCurrency(raw)
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}
