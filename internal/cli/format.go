// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// FormatGrouped adds lakh-style digit separators to an integer string:
// the last three digits form one group, everything above groups in
// pairs. e.g., 1234567 -> "12,34,567", matching bn-BD conventions.
func FormatGrouped(digits string) string {
	neg := strings.HasPrefix(digits, "-")
	if neg {
		digits = digits[1:]
	}
	if len(digits) <= 3 {
		if neg {
			return "-" + digits
		}
		return digits
	}

	head := digits[:len(digits)-3]
	tail := digits[len(digits)-3:]

	var groups []string
	for len(head) > 2 {
		groups = append([]string{head[len(head)-2:]}, groups...)
		head = head[:len(head)-2]
	}
	if head != "" {
		groups = append([]string{head}, groups...)
	}
	groups = append(groups, tail)

	out := strings.Join(groups, ",")
	if neg {
		return "-" + out
	}
	return out
}

// FormatAmount formats a money amount with the currency symbol and lakh
// grouping. Fractional parts are kept only when present.
// e.g., 1234567 -> "৳12,34,567", 500.50 -> "৳500.50"
func FormatAmount(symbol string, amount decimal.Decimal) string {
	whole := amount.Truncate(0)
	grouped := FormatGrouped(whole.String())

	frac := amount.Sub(whole).Abs()
	if !frac.IsZero() {
		s := frac.StringFixed(2)
		grouped += strings.TrimPrefix(s, "0")
	}
	return symbol + grouped
}

// FormatSigned is FormatAmount with an explicit leading sign, for flow
// columns where direction matters. Income gets "+", expense "-".
func FormatSigned(symbol string, amount decimal.Decimal, income bool) string {
	if income {
		return "+" + FormatAmount(symbol, amount.Abs())
	}
	return "-" + FormatAmount(symbol, amount.Abs())
}

// FormatPercent formats a 0-100 progress value.
func FormatPercent(pct float64) string {
	return fmt.Sprintf("%.1f%%", pct)
}

// FormatDate renders a transaction date for tables.
func FormatDate(t time.Time) string {
	return t.Format("02 Jan 2006")
}

// Truncate shortens a string to max runes with an ellipsis.
func Truncate(s string, max int) string {
	if max <= 0 {
		return ""
	}
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	if max == 1 {
		return "…"
	}
	return string(r[:max-1]) + "…"
}
