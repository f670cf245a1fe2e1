package dataset

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Scale is the number of fractional digits every fixed-point attribute keeps.
const Scale int32 = 3

// ParseInt parses an integer field as a signed 32-bit value. Surrounding
// space is not trimmed. Text that is not an integer, or is out of range,
// yields 0; ok reports whether the text parsed.
func ParseInt(s string) (n int64, ok bool) {
	v, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return 0, false
	}
	return v, true
}

// ParseDecimal parses a fixed-point field and rounds it half away from zero
// to Scale digits. Empty text is a null value. Text that is not a number is
// also null, with ok false.
func ParseDecimal(s string) (d decimal.NullDecimal, ok bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.NullDecimal{}, true
	}
	v, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.NullDecimal{}, false
	}
	return decimal.NewNullDecimal(v.Round(Scale)), true
}

// FormatDecimal renders a fixed-point value with exactly Scale digits, or
// the placeholder when the value is null.
func FormatDecimal(d decimal.NullDecimal, placeholder string) string {
	if !d.Valid {
		return placeholder
	}
	return d.Decimal.StringFixed(Scale)
}
