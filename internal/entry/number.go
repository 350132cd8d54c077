package entry

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Numeric coerces free-form input to a number. Empty or unparseable input
// yields 0; negative values pass through and are caught by validation.
func Numeric(s string) float64 {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	f, _ := d.Float64()
	return f
}

// Integer parses a voucher number, returning 0 when the input does not
// parse. Validation rejects such input before it reaches the payload.
func Integer(s string) int {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil || !d.IsInteger() {
		return 0
	}
	return int(d.IntPart())
}

// Round2 rounds half-up to 2 decimal places. Applied to rates and amounts
// at the payload boundary and at display time, never inside the reconciler.
func Round2(v float64) float64 {
	return roundPlaces(v, 2)
}

// Round3 rounds half-up to 3 decimal places. Applied to quantities.
func Round3(v float64) float64 {
	return roundPlaces(v, 3)
}

func roundPlaces(v float64, places int32) float64 {
	f, _ := decimal.NewFromFloat(v).Round(places).Float64()
	return f
}
