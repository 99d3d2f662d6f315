package aggregate

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Bounds on a declared amount; values outside them read as zero.
const (
	maxAmountLength   = 64
	maxIntegerDigits  = 18
	maxFractionDigits = 18
)

var amountCleaner = strings.NewReplacer(",", "", "$", "", " ", "", " ", "")

// ParseValue reads a declared USD amount. Currency markers and thousands separators are
// ignored; anything unparseable, NaN, negative or out of range is treated as zero so the
// shipment still counts.
func ParseValue(raw string) decimal.Decimal {
	s := strings.TrimSpace(raw)
	if len(s) >= 3 && strings.EqualFold(s[:3], "usd") {
		s = s[3:]
	}
	if len(s) >= 3 && strings.EqualFold(s[len(s)-3:], "usd") {
		s = s[:len(s)-3]
	}
	s = amountCleaner.Replace(s)
	if s == "" || len(s) > maxAmountLength {
		return decimal.Zero
	}

	v, err := decimal.NewFromString(s)
	if err != nil || v.IsNegative() || v.IsZero() {
		return decimal.Zero
	}
	exp := int(v.Exponent())
	if exp < -maxFractionDigits || v.NumDigits()+exp > maxIntegerDigits {
		return decimal.Zero
	}
	return v
}
