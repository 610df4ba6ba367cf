// Package currencyutils provides the Indonesian-locale amount parsing and
// formatting used by the normalization pipeline and the previews.
package currencyutils

import (
	"errors"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// leadingFloat matches the numeric prefix a lenient float parser accepts:
// optional sign, digits with an optional fraction, optional exponent.
var leadingFloat = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?`)

// ParseLocaleAmount parses an amount written with "." as the thousands
// separator and "," as the decimal marker, e.g. "1.234,56" -> 1234.56.
//
// Every "." is removed before parsing, so a plain decimal such as "1234.56"
// is read as 123456. Only the first "," becomes the decimal point. Trailing
// garbage after a numeric prefix is ignored ("12 juta" -> 12). The second
// return value is false when no numeric prefix exists or when the prefix
// overflows a float64 ("1e400"). Prefixes that underflow to zero yield zero.
func ParseLocaleAmount(s string) (decimal.Decimal, bool) {
	cleaned := strings.ReplaceAll(s, ".", "")
	cleaned = strings.Replace(cleaned, ",", ".", 1)
	cleaned = strings.TrimLeft(cleaned, " \t\r\n\f\v")

	prefix := leadingFloat.FindString(cleaned)
	if prefix == "" {
		return decimal.Zero, false
	}

	// The float64 range check bounds the exponent handed to decimal, whose
	// arithmetic cost grows with it.
	f, err := strconv.ParseFloat(prefix, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return decimal.Zero, false
	}
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return decimal.Zero, false
	}
	if f == 0 {
		return decimal.Zero, true
	}

	amount, err := decimal.NewFromString(prefix)
	if err != nil {
		return decimal.Zero, false
	}
	return amount, true
}

// FormatRupiah renders an amount the way the reports show it:
// "Rp 1.234.567,89". Amounts are rounded to two decimals.
func FormatRupiah(amount decimal.Decimal) string {
	sign := ""
	if amount.IsNegative() {
		sign = "-"
		amount = amount.Abs()
	}

	fixed := amount.StringFixed(2)
	intPart, fracPart, _ := strings.Cut(fixed, ".")

	return "Rp " + sign + groupThousands(intPart) + "," + fracPart
}

// groupThousands inserts "." every three digits from the right.
func groupThousands(digits string) string {
	if len(digits) <= 3 {
		return digits
	}

	var b strings.Builder
	head := len(digits) % 3
	if head > 0 {
		b.WriteString(digits[:head])
	}
	for i := head; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte('.')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
