package docdata

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// FormatAmount renders a money amount the Swedish way: space-grouped
// thousands, comma decimal separator, two decimals. "12345.5" becomes
// "12 345,50".
func FormatAmount(d decimal.Decimal) string {
	fixed := d.StringFixed(2)

	neg := strings.HasPrefix(fixed, "-")
	if neg {
		fixed = fixed[1:]
	}

	intPart, fracPart, _ := strings.Cut(fixed, ".")

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
	}
	b.WriteByte(',')
	b.WriteString(fracPart)
	return b.String()
}

// FormatSEK appends the currency suffix to FormatAmount.
func FormatSEK(d decimal.Decimal) string {
	return FormatAmount(d) + " kr"
}

// FormatDate renders a date as ISO yyyy-mm-dd, the conventional Swedish
// form. Zero dates render empty rather than as the zero timestamp.
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("2006-01-02")
}

// FormatQuantity trims a quantity to at most two decimals, dropping a
// trailing ",00".
func FormatQuantity(d decimal.Decimal) string {
	if d.Equal(d.Truncate(0)) {
		return d.Truncate(0).String()
	}
	return strings.ReplaceAll(d.Round(2).String(), ".", ",")
}
