// Package pricing does all monetary arithmetic for the storefront.
//
// Amounts are carried as centavos (int64 minor units) everywhere inside the
// service; display-formatted BRL strings exist only at the two boundaries,
// catalog ingestion (ParseBRL) and rendering (FormatBRL).
package pricing

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

var oneHundred = decimal.NewFromInt(100)

// Line is one cart entry as pricing sees it.
type Line struct {
	UnitPrice int64 // centavos
	Quantity  int
}

// LineTotal is unit price times quantity, exact.
func LineTotal(unitPrice int64, quantity int) int64 {
	return unitPrice * int64(quantity)
}

// CartTotal sums the line totals. An empty slice totals zero.
func CartTotal(lines []Line) int64 {
	var total int64
	for _, l := range lines {
		total += LineTotal(l.UnitPrice, l.Quantity)
	}
	return total
}

// ParseBRL converts a display-formatted amount such as "R$ 1.234,56" to
// centavos. The currency symbol and thousands separators are stripped and
// the decimal comma is normalized before parsing; the string never touches
// a binary float. Malformed input is an error, callers do not recover it.
func ParseBRL(s string) (int64, error) {
	raw := s
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "R$")
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, ".", "")
	s = strings.ReplaceAll(s, ",", ".")

	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, fmt.Errorf("parse price %q: %w", raw, err)
	}
	if d.IsNegative() {
		return 0, fmt.Errorf("parse price %q: negative amount", raw)
	}

	cents := d.Mul(oneHundred)
	if !cents.IsInteger() {
		return 0, fmt.Errorf("parse price %q: more than two decimal places", raw)
	}
	return cents.IntPart(), nil
}

// FormatBRL renders centavos as "R$ 12,90". Rounding to two places happens
// here and nowhere else.
func FormatBRL(cents int64) string {
	d := decimal.NewFromInt(cents).Div(oneHundred)
	return "R$ " + strings.Replace(d.StringFixed(2), ".", ",", 1)
}
